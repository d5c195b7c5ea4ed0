package repository

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"serviya/internal/domain/entity"
	"serviya/pkg/errors"
)

// These tests need a running emulator: FIRESTORE_EMULATOR_HOST=localhost:8081.
func newEmulatorClient(t *testing.T) *firestore.Client {
	t.Helper()
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}

	client, err := firestore.NewClient(context.Background(), "serviya-test")
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return client
}

func seedListing(t *testing.T, repo *firestoreListingRepository, owner string) *entity.Listing {
	t.Helper()
	l := &entity.Listing{
		UserID:       owner,
		Title:        "Electricista " + uuid.NewString()[:8],
		Description:  "Instalaciones y reparaciones",
		Category:     "Hogar",
		Price:        30,
		City:         "Lima",
		ProviderName: "Proveedor",
	}
	require.NoError(t, repo.Create(context.Background(), l))
	return l
}

func applyRating(rating int) func(*entity.Listing) (*entity.Notification, error) {
	return func(l *entity.Listing) (*entity.Notification, error) {
		l.ApplyRating(rating)
		return entity.NewReviewNotification(l, "Tester", rating, time.Now()), nil
	}
}

func TestReviewSubmit_Emulator(t *testing.T) {
	client := newEmulatorClient(t)
	ctx := context.Background()
	listings := &firestoreListingRepository{client: client}
	reviews := &firestoreReviewRepository{client: client}
	notifications := &firestoreNotificationRepository{client: client}

	owner := "owner-" + uuid.NewString()
	l := seedListing(t, listings, owner)

	for i, rating := range []int{4, 2, 5} {
		review := &entity.Review{UserID: uuid.NewString(), Rating: rating, CreatedAt: time.Now()}
		updated, err := reviews.Submit(ctx, l.ID, review, applyRating(rating))
		require.NoError(t, err)
		assert.Equal(t, i+1, updated.ReviewCount)
	}

	stored, err := listings.GetByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.ReviewCount)
	assert.InDelta(t, 3.67, stored.AverageRating, 0.01)

	unread, err := notifications.CountUnread(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, int64(3), unread)
}

func TestReviewSubmit_DuplicateAndMissing_Emulator(t *testing.T) {
	client := newEmulatorClient(t)
	ctx := context.Background()
	listings := &firestoreListingRepository{client: client}
	reviews := &firestoreReviewRepository{client: client}

	l := seedListing(t, listings, "owner-"+uuid.NewString())
	author := uuid.NewString()

	_, err := reviews.Submit(ctx, l.ID, &entity.Review{UserID: author, Rating: 5}, applyRating(5))
	require.NoError(t, err)

	_, err = reviews.Submit(ctx, l.ID, &entity.Review{UserID: author, Rating: 1}, applyRating(1))
	assert.True(t, errors.Is(err, errors.CodeConflict))

	stored, err := listings.GetByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.ReviewCount)
	assert.Equal(t, 5.0, stored.AverageRating)

	_, err = reviews.Submit(ctx, "missing-"+uuid.NewString(), &entity.Review{UserID: author, Rating: 3}, applyRating(3))
	assert.True(t, errors.Is(err, errors.CodeNotFound))
}

func TestReviewSubmit_Concurrent_Emulator(t *testing.T) {
	client := newEmulatorClient(t)
	ctx := context.Background()
	listings := &firestoreListingRepository{client: client}
	reviews := &firestoreReviewRepository{client: client}

	l := seedListing(t, listings, "owner-"+uuid.NewString())
	ratings := []int{1, 2, 3, 4, 5}

	var wg sync.WaitGroup
	for _, rating := range ratings {
		wg.Add(1)
		go func(rating int) {
			defer wg.Done()
			_, err := reviews.Submit(ctx, l.ID, &entity.Review{UserID: uuid.NewString(), Rating: rating}, applyRating(rating))
			assert.NoError(t, err)
		}(rating)
	}
	wg.Wait()

	stored, err := listings.GetByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, len(ratings), stored.ReviewCount)
	assert.InDelta(t, 3.0, stored.AverageRating, 1e-9)
}

func TestHireLifecycle_Emulator(t *testing.T) {
	client := newEmulatorClient(t)
	ctx := context.Background()
	hires := &firestoreHireRepository{client: client}
	notifications := &firestoreNotificationRepository{client: client}

	clientID, providerID := "client-"+uuid.NewString(), "provider-"+uuid.NewString()
	now := time.Now()
	hire := &entity.Hire{
		ServiceID: "svc", ServiceTitle: "Pintura", ClientID: clientID, ClientName: "X",
		ProviderID: providerID, ProviderName: "Y", Date: now.Add(72 * time.Hour),
		Status: entity.HireStatusPending, CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, hires.Create(ctx, hire, entity.NewHireRequestNotification(hire, now)))
	require.NotEmpty(t, hire.ID)

	unread, err := notifications.CountUnread(ctx, providerID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)

	updated, err := hires.UpdateStatus(ctx, hire.ID, func(h *entity.Hire) (*entity.Notification, error) {
		if err := h.CheckTransition(providerID, entity.HireStatusAccepted); err != nil {
			return nil, errors.InvalidTransition("not allowed", err)
		}
		h.Status = entity.HireStatusAccepted
		h.UpdatedAt = time.Now()
		return entity.NewHireStatusNotification(h, h.Status, h.UpdatedAt), nil
	})
	require.NoError(t, err)
	assert.Equal(t, entity.HireStatusAccepted, updated.Status)

	_, err = hires.UpdateStatus(ctx, hire.ID, func(h *entity.Hire) (*entity.Notification, error) {
		return nil, errors.InvalidTransition("not allowed", h.CheckTransition(providerID, entity.HireStatusRejected))
	})
	assert.True(t, errors.Is(err, errors.CodeInvalidTransition))

	mine, err := hires.ListByClient(ctx, clientID, 10)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, entity.HireStatusAccepted, mine[0].Status)
}

func TestNotifications_MarkAllReadAndSubscribe_Emulator(t *testing.T) {
	client := newEmulatorClient(t)
	ctx := context.Background()
	repo := &firestoreNotificationRepository{client: client}
	userID := "user-" + uuid.NewString()

	sub, err := repo.Subscribe(ctx, userID, 0)
	require.NoError(t, err)
	defer sub.Close()

	first := <-sub.Updates()
	assert.Empty(t, first.Items)

	batch := client.Batch()
	for i := 0; i < 3; i++ {
		batch.Create(client.Collection(colNotifications).NewDoc(), &entity.Notification{
			UserID: userID, Type: entity.NotificationNewReview, Title: "t", CreatedAt: time.Now(),
		})
	}
	_, err = batch.Commit(ctx)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		select {
		case feed := <-sub.Updates():
			return feed.Unread == 3
		default:
			return false
		}
	}, 5*time.Second, 50*time.Millisecond)

	n, err := repo.MarkAllRead(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = repo.MarkAllRead(ctx, userID)
	require.NoError(t, err)
	assert.Zero(t, n)

	unread, err := repo.CountUnread(ctx, userID)
	require.NoError(t, err)
	assert.Zero(t, unread)

	sub.Close()
	for range sub.Updates() {
	}
	assert.NoError(t, sub.Err())
}

func TestNotifications_MarkAllReadBeyondBatchLimit_Emulator(t *testing.T) {
	client := newEmulatorClient(t)
	ctx := context.Background()
	repo := &firestoreNotificationRepository{client: client}
	userID := "user-" + uuid.NewString()

	total := maxBatchWrites + 7
	for start := 0; start < total; start += maxBatchWrites {
		batch := client.Batch()
		for i := start; i < total && i < start+maxBatchWrites; i++ {
			batch.Create(client.Collection(colNotifications).NewDoc(), &entity.Notification{
				UserID: userID, Type: entity.NotificationNewRequest, Title: "t", CreatedAt: time.Now(),
			})
		}
		_, err := batch.Commit(ctx)
		require.NoError(t, err)
	}

	unread, err := repo.CountUnread(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(total), unread)

	n, err := repo.MarkAllRead(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, total, n)

	unread, err = repo.CountUnread(ctx, userID)
	require.NoError(t, err)
	assert.Zero(t, unread)
}
