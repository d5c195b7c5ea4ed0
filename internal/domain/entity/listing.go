package entity

import (
	"strings"
	"time"
)

// Listing is a service offered by a provider. ProviderName, ProviderImage and
// ProviderVerified are copied from the owner's profile at creation time and are
// not kept in sync afterwards.
type Listing struct {
	ID          string  `json:"id" firestore:"-"`
	UserID      string  `json:"userId" firestore:"userId"`
	Title       string  `json:"title" firestore:"title"`
	Description string  `json:"description" firestore:"description"`
	Category    string  `json:"category" firestore:"category"`
	Price       float64 `json:"price" firestore:"price"`
	City        string  `json:"city" firestore:"city"`
	Zone        string  `json:"zone,omitempty" firestore:"zone"`
	ImageURL    string  `json:"imageUrl,omitempty" firestore:"imageUrl"`

	ProviderName     string `json:"providerName" firestore:"providerName"`
	ProviderImage    string `json:"providerImage,omitempty" firestore:"providerImage"`
	ProviderVerified bool   `json:"providerVerified" firestore:"providerVerified"`

	// Maintained only by the review transaction.
	ReviewCount   int     `json:"reviewCount" firestore:"reviewCount"`
	AverageRating float64 `json:"averageRating" firestore:"averageRating"`

	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// ApplyRating folds one more rating into the running mean. No rounding is applied.
func (l *Listing) ApplyRating(rating int) {
	n := float64(l.ReviewCount)
	l.AverageRating = (l.AverageRating*n + float64(rating)) / (n + 1)
	l.ReviewCount++
}

func (l *Listing) IsOwnedBy(uid string) bool {
	return l.UserID == uid
}

// Matches reports whether term occurs in the title or description, ignoring case.
func (l *Listing) Matches(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(l.Title), term) ||
		strings.Contains(strings.ToLower(l.Description), term)
}

type ListingFilter struct {
	Category string
	Search   string
	Limit    int
}

// ListingPatch carries the editable fields of a listing. Nil means unchanged.
type ListingPatch struct {
	Title       *string
	Description *string
	Category    *string
	Price       *float64
	City        *string
	Zone        *string
	ImageURL    *string
}

// Apply copies the non-nil fields into l. Aggregates and owner snapshot are never touched.
func (p ListingPatch) Apply(l *Listing) {
	if p.Title != nil {
		l.Title = *p.Title
	}
	if p.Description != nil {
		l.Description = *p.Description
	}
	if p.Category != nil {
		l.Category = *p.Category
	}
	if p.Price != nil {
		l.Price = *p.Price
	}
	if p.City != nil {
		l.City = *p.City
	}
	if p.Zone != nil {
		l.Zone = *p.Zone
	}
	if p.ImageURL != nil {
		l.ImageURL = *p.ImageURL
	}
}
