package entity

import (
	"fmt"
	"time"
)

type NotificationType string

const (
	NotificationNewRequest    NotificationType = "new_request"
	NotificationNewReview     NotificationType = "new_review"
	NotificationHireAccepted  NotificationType = "hire_accepted"
	NotificationHireRejected  NotificationType = "hire_rejected"
	NotificationHireCompleted NotificationType = "hire_completed"
)

// Notification is immutable once written except for Read, which only goes false to true.
type Notification struct {
	ID        string           `json:"id" firestore:"-"`
	UserID    string           `json:"userId" firestore:"userId"`
	Type      NotificationType `json:"type" firestore:"type"`
	Title     string           `json:"title" firestore:"title"`
	Message   string           `json:"message" firestore:"message"`
	Link      string           `json:"link" firestore:"link"`
	Read      bool             `json:"read" firestore:"read"`
	CreatedAt time.Time        `json:"createdAt" firestore:"createdAt"`
}

// NotificationFeed is one emission of a user's notification list.
type NotificationFeed struct {
	Items  []*Notification `json:"items"`
	Unread int             `json:"unread"`
}

func NewNotificationFeed(items []*Notification) NotificationFeed {
	unread := 0
	for _, n := range items {
		if !n.Read {
			unread++
		}
	}
	if items == nil {
		items = []*Notification{}
	}
	return NotificationFeed{Items: items, Unread: unread}
}

func NewReviewNotification(listing *Listing, reviewerName string, rating int, now time.Time) *Notification {
	return &Notification{
		UserID:    listing.UserID,
		Type:      NotificationNewReview,
		Title:     "Nueva reseña",
		Message:   fmt.Sprintf("%s calificó tu servicio \"%s\" con %d estrellas.", reviewerName, listing.Title, rating),
		Link:      "/service/" + listing.ID,
		CreatedAt: now,
	}
}

func NewHireRequestNotification(h *Hire, now time.Time) *Notification {
	return &Notification{
		UserID:    h.ProviderID,
		Type:      NotificationNewRequest,
		Title:     "Nueva solicitud de servicio",
		Message:   fmt.Sprintf("%s ha solicitado tu servicio: \"%s\"", h.ClientName, h.ServiceTitle),
		Link:      "/requests",
		CreatedAt: now,
	}
}

// NewHireStatusNotification returns the client-facing notice for a provider
// decision, or nil when the status does not notify anyone.
func NewHireStatusNotification(h *Hire, status HireStatus, now time.Time) *Notification {
	var title, message string
	switch status {
	case HireStatusAccepted:
		title = "¡Solicitud Aceptada!"
		message = fmt.Sprintf("Tu solicitud para el servicio \"%s\" ha sido aceptada.", h.ServiceTitle)
	case HireStatusRejected:
		title = "Solicitud Rechazada"
		message = fmt.Sprintf("Lamentablemente, tu solicitud para \"%s\" fue rechazada.", h.ServiceTitle)
	case HireStatusCompleted:
		title = "¡Servicio Completado!"
		message = fmt.Sprintf("El servicio \"%s\" ha sido marcado como completado. ¡No olvides dejar una reseña!", h.ServiceTitle)
	default:
		return nil
	}
	return &Notification{
		UserID:    h.ClientID,
		Type:      NotificationType("hire_" + string(status)),
		Title:     title,
		Message:   message,
		Link:      "/my-hires",
		CreatedAt: now,
	}
}
