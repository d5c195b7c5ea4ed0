package entity

import (
	"time"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Review is stored under services/{listingId}/reviews/{userId}; the document
// id doubles as the one-review-per-user key.
type Review struct {
	ID         string    `json:"id" firestore:"-"`
	ListingID  string    `json:"serviceId" firestore:"-"`
	UserID     string    `json:"userId" firestore:"userId"`
	UserName   string    `json:"userName" firestore:"userName"`
	UserAvatar string    `json:"userAvatar,omitempty" firestore:"userAvatar"`
	Rating     int       `json:"rating" firestore:"rating"`
	Comment    string    `json:"comment,omitempty" firestore:"comment"`
	CreatedAt  time.Time `json:"createdAt" firestore:"createdAt"`
}

func ValidRating(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}

type ReviewSummary struct {
	ReviewCount   int         `json:"reviewCount"`
	AverageRating float64     `json:"averageRating"`
	Distribution  map[int]int `json:"distribution"`
}

// Summarize builds a per-star breakdown. Count and average come from the
// listing aggregate, not from the slice, since the slice may be a page.
func Summarize(l *Listing, reviews []*Review) ReviewSummary {
	dist := make(map[int]int, MaxRating)
	for r := MinRating; r <= MaxRating; r++ {
		dist[r] = 0
	}
	for _, rv := range reviews {
		if ValidRating(rv.Rating) {
			dist[rv.Rating]++
		}
	}
	return ReviewSummary{
		ReviewCount:   l.ReviewCount,
		AverageRating: l.AverageRating,
		Distribution:  dist,
	}
}
