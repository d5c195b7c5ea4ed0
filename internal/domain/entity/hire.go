package entity

import (
	"errors"
	"fmt"
	"time"
)

// HireStatus is the lifecycle state of a hire request.
//
//	pending ──► accepted ──► completed
//	   │
//	   ├──► rejected
//	   └──► cancelled
//
// rejected, completed and cancelled are terminal.
type HireStatus string

const (
	HireStatusPending   HireStatus = "pending"
	HireStatusAccepted  HireStatus = "accepted"
	HireStatusRejected  HireStatus = "rejected"
	HireStatusCompleted HireStatus = "completed"
	HireStatusCancelled HireStatus = "cancelled"
)

var validTransitions = map[HireStatus][]HireStatus{
	HireStatusPending:  {HireStatusAccepted, HireStatusRejected, HireStatusCancelled},
	HireStatusAccepted: {HireStatusCompleted},
}

var (
	ErrNotParticipant    = errors.New("actor is not a party to this hire")
	ErrWrongRole         = errors.New("actor's role may not set this status")
	ErrIllegalTransition = errors.New("status transition not allowed")
)

func ParseHireStatus(s string) (HireStatus, error) {
	st := HireStatus(s)
	switch st {
	case HireStatusPending, HireStatusAccepted, HireStatusRejected, HireStatusCompleted, HireStatusCancelled:
		return st, nil
	}
	return "", fmt.Errorf("unknown hire status %q", s)
}

func IsTransitionAllowed(from, to HireStatus) bool {
	for _, s := range validTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func (s HireStatus) IsTerminal() bool {
	_, ok := validTransitions[s]
	return !ok
}

// ProviderDriven reports whether the status is set by the provider. Those are
// exactly the statuses that notify the client.
func (s HireStatus) ProviderDriven() bool {
	return s == HireStatusAccepted || s == HireStatusRejected || s == HireStatusCompleted
}

// Hire is a client's request to engage a provider. Service and name fields
// are snapshots taken when the hire is created.
type Hire struct {
	ID           string     `json:"id" firestore:"-"`
	ServiceID    string     `json:"serviceId" firestore:"serviceId"`
	ServiceTitle string     `json:"serviceTitle" firestore:"serviceTitle"`
	ServicePrice float64    `json:"servicePrice" firestore:"servicePrice"`
	ServiceImage string     `json:"serviceImage,omitempty" firestore:"serviceImage"`
	ClientID     string     `json:"clientId" firestore:"clientId"`
	ClientName   string     `json:"clientName" firestore:"clientName"`
	ProviderID   string     `json:"providerId" firestore:"providerId"`
	ProviderName string     `json:"providerName" firestore:"providerName"`
	Message      string     `json:"message,omitempty" firestore:"message"`
	Date         time.Time  `json:"date" firestore:"date"`
	Status       HireStatus `json:"status" firestore:"status"`
	CreatedAt    time.Time  `json:"createdAt" firestore:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt" firestore:"updatedAt"`
}

func (h *Hire) IsParty(uid string) bool {
	return uid == h.ClientID || uid == h.ProviderID
}

// CheckTransition validates that actor may move the hire to next. Role is
// checked before the state machine, so a stranger never learns the state.
func (h *Hire) CheckTransition(actor string, next HireStatus) error {
	switch {
	case !h.IsParty(actor):
		return ErrNotParticipant
	case next.ProviderDriven() && actor != h.ProviderID:
		return ErrWrongRole
	case next == HireStatusCancelled && actor != h.ClientID:
		return ErrWrongRole
	case next == HireStatusPending:
		return ErrIllegalTransition
	}
	if !IsTransitionAllowed(h.Status, next) {
		return ErrIllegalTransition
	}
	return nil
}
