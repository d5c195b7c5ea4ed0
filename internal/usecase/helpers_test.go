package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"serviya/internal/domain/entity"
)

type fixture struct {
	store         *memStore
	listings      *memListingRepo
	reviews       *memReviewRepo
	hires         *memHireRepo
	notifications *memNotificationRepo
	users         *memUserRepo
	chats         *memChatRepo
	stats         *memStatsRepo
}

func newFixture() *fixture {
	s := newMemStore()
	return &fixture{
		store:         s,
		listings:      &memListingRepo{s},
		reviews:       &memReviewRepo{s},
		hires:         &memHireRepo{s},
		notifications: &memNotificationRepo{s},
		users:         &memUserRepo{s},
		chats:         &memChatRepo{s},
		stats:         &memStatsRepo{s: s},
	}
}

func (f *fixture) addUser(t *testing.T, id, name string) *entity.User {
	t.Helper()
	u, err := f.users.CreateIfMissing(context.Background(), &entity.User{
		ID: id, DisplayName: name, Role: entity.RoleUser, CreatedAt: time.Now(),
	})
	require.NoError(t, err)
	return u
}

func (f *fixture) addListing(t *testing.T, ownerID, title string) *entity.Listing {
	t.Helper()
	l := &entity.Listing{
		UserID: ownerID, Title: title, Description: "desc", Category: "Hogar",
		Price: 50, City: "Lima", CreatedAt: time.Now(),
	}
	require.NoError(t, f.listings.Create(context.Background(), l))
	return l
}

func (f *fixture) unread(t *testing.T, uid string) int64 {
	t.Helper()
	n, err := f.notifications.CountUnread(context.Background(), uid)
	require.NoError(t, err)
	return n
}
