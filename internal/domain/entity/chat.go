package entity

import (
	"sort"
	"strings"
	"time"
)

type Chat struct {
	ID            string    `json:"id" firestore:"-"`
	Participants  []string  `json:"participants" firestore:"participants"`
	ServiceID     string    `json:"serviceId,omitempty" firestore:"serviceId,omitempty"`
	LastMessage   string    `json:"lastMessage,omitempty" firestore:"lastMessage,omitempty"`
	LastMessageAt time.Time `json:"lastMessageAt" firestore:"lastMessageAt"`
	CreatedAt     time.Time `json:"createdAt" firestore:"createdAt"`
}

// ChatID derives a stable id for a two-party conversation so that starting
// it twice lands on the same document.
func ChatID(a, b string) string {
	ids := []string{a, b}
	sort.Strings(ids)
	return strings.Join(ids, "_")
}

func (c *Chat) HasParticipant(uid string) bool {
	for _, p := range c.Participants {
		if p == uid {
			return true
		}
	}
	return false
}
