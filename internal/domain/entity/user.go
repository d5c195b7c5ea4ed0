package entity

import (
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID               string    `json:"id" firestore:"-"`
	DisplayName      string    `json:"displayName" firestore:"displayName"`
	Email            string    `json:"email" firestore:"email"`
	Role             string    `json:"role" firestore:"role"`
	PhotoURL         string    `json:"photoURL,omitempty" firestore:"photoURL"`
	Verified         bool      `json:"verified" firestore:"verified"`
	FavoriteServices []string  `json:"favoriteServices" firestore:"favoriteServices"`
	CreatedAt        time.Time `json:"createdAt" firestore:"createdAt"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Name returns the display name, falling back to fallback when empty.
func (u *User) Name(fallback string) string {
	if u == nil || u.DisplayName == "" {
		return fallback
	}
	return u.DisplayName
}

// PublicProfile strips fields only the owner or an admin should see.
func (u *User) PublicProfile() *User {
	return &User{
		ID:          u.ID,
		DisplayName: u.DisplayName,
		PhotoURL:    u.PhotoURL,
		Verified:    u.Verified,
		Role:        u.Role,
		CreatedAt:   u.CreatedAt,
	}
}

type PlatformStats struct {
	Users       int64     `json:"users"`
	Services    int64     `json:"services"`
	Hires       int64     `json:"hires"`
	GeneratedAt time.Time `json:"generatedAt"`
}
