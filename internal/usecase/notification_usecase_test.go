package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"serviya/internal/domain/entity"
	"serviya/pkg/errors"
)

func seedNotifications(t *testing.T, f *fixture, userID string, n int) []*entity.Notification {
	t.Helper()
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	var out []*entity.Notification
	for i := 0; i < n; i++ {
		notif := &entity.Notification{
			UserID: userID, Type: entity.NotificationNewReview, Title: "t",
			CreatedAt: time.Now().Add(time.Duration(i) * time.Second),
		}
		f.store.addNotification(notif)
		out = append(out, notif)
	}
	return out
}

func TestMarkAllRead_Idempotent(t *testing.T) {
	f := newFixture()
	uc := NewNotificationUseCase(f.notifications)
	ctx := context.Background()
	seedNotifications(t, f, "u1", 3)
	seedNotifications(t, f, "u2", 2)

	n, err := uc.MarkAllRead(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	unread, _ := uc.UnreadCount(ctx, "u1")
	assert.Zero(t, unread)

	n, err = uc.MarkAllRead(ctx, "u1")
	require.NoError(t, err)
	assert.Zero(t, n)

	unread, _ = uc.UnreadCount(ctx, "u1")
	assert.Zero(t, unread)
	unread, _ = uc.UnreadCount(ctx, "u2")
	assert.Equal(t, int64(2), unread)
}

func TestMarkRead(t *testing.T) {
	f := newFixture()
	uc := NewNotificationUseCase(f.notifications)
	ctx := context.Background()
	items := seedNotifications(t, f, "u1", 2)

	require.NoError(t, uc.MarkRead(ctx, "u1", items[0].ID))
	require.NoError(t, uc.MarkRead(ctx, "u1", items[0].ID))

	unread, _ := uc.UnreadCount(ctx, "u1")
	assert.Equal(t, int64(1), unread)

	err := uc.MarkRead(ctx, "intruder", items[1].ID)
	assert.True(t, errors.Is(err, errors.CodeForbidden))

	err = uc.MarkRead(ctx, "u1", "missing")
	assert.True(t, errors.Is(err, errors.CodeNotFound))
}

func TestList_UnreadCountsBeyondPage(t *testing.T) {
	f := newFixture()
	uc := NewNotificationUseCase(f.notifications)
	seedNotifications(t, f, "u1", 5)

	feed, err := uc.List(context.Background(), "u1", 2)
	require.NoError(t, err)
	assert.Len(t, feed.Items, 2)
	assert.Equal(t, 5, feed.Unread)
	assert.True(t, feed.Items[0].CreatedAt.After(feed.Items[1].CreatedAt))
}

func TestSubscribe_FollowsChanges(t *testing.T) {
	f := newFixture()
	uc := NewNotificationUseCase(f.notifications)
	ctx := context.Background()
	seedNotifications(t, f, "u1", 1)

	sub, err := uc.Subscribe(ctx, "u1", 0)
	require.NoError(t, err)

	first := <-sub.Updates()
	assert.Len(t, first.Items, 1)
	assert.Equal(t, 1, first.Unread)

	seedNotifications(t, f, "u1", 1)
	second := <-sub.Updates()
	assert.Len(t, second.Items, 2)
	assert.Equal(t, 2, second.Unread)

	_, err = uc.MarkAllRead(ctx, "u1")
	require.NoError(t, err)
	third := <-sub.Updates()
	assert.Zero(t, third.Unread)

	sub.Close()
	_, open := <-sub.Updates()
	assert.False(t, open)

	// Notifications after Close are not delivered, and a new subscription
	// starts from the full current set.
	seedNotifications(t, f, "u1", 1)
	again, err := uc.Subscribe(ctx, "u1", 0)
	require.NoError(t, err)
	defer again.Close()
	feed := <-again.Updates()
	assert.Len(t, feed.Items, 3)
	assert.Equal(t, 1, feed.Unread)
}

func TestSubscribe_HireTransitionsReachClient(t *testing.T) {
	f := newFixture()
	hires := newHireUseCase(f)
	notifications := NewNotificationUseCase(f.notifications)
	hire := createHire(t, f, hires)

	sub, err := notifications.Subscribe(context.Background(), "X", 0)
	require.NoError(t, err)
	defer sub.Close()
	assert.Empty(t, (<-sub.Updates()).Items)

	_, err = hires.UpdateHireStatus(context.Background(), hire.ID, "Y", entity.HireStatusAccepted)
	require.NoError(t, err)

	feed := <-sub.Updates()
	require.Len(t, feed.Items, 1)
	assert.Equal(t, entity.NotificationHireAccepted, feed.Items[0].Type)
}
