package repository

import (
	"context"
	"sync"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"serviya/internal/domain/entity"
	"serviya/internal/domain/repository"
	"serviya/pkg/errors"
	"serviya/pkg/logger"
)

type firestoreNotificationRepository struct {
	client *firestore.Client
}

func NewFirestoreNotificationRepository(client *firestore.Client) repository.NotificationRepository {
	return &firestoreNotificationRepository{
		client: client,
	}
}

func (r *firestoreNotificationRepository) byUser(userID string, limit int) firestore.Query {
	query := r.client.Collection(colNotifications).
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}
	return query
}

func (r *firestoreNotificationRepository) unread(userID string) firestore.Query {
	return r.client.Collection(colNotifications).
		Where("userId", "==", userID).
		Where("read", "==", false)
}

func (r *firestoreNotificationRepository) unreadCount(userID string) *firestore.AggregationQuery {
	query := r.unread(userID)
	return query.NewAggregationQuery().WithCount(countAlias)
}

func (r *firestoreNotificationRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Notification, error) {
	docs, err := r.byUser(userID, limit).Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to list notifications", err)
	}
	return notificationsFromDocs(docs)
}

func (r *firestoreNotificationRepository) GetByID(ctx context.Context, id string) (*entity.Notification, error) {
	doc, err := r.client.Collection(colNotifications).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFound("Notification", err)
		}
		return nil, errors.Internal("Failed to get notification", err)
	}
	return notificationFromDoc(doc)
}

func (r *firestoreNotificationRepository) MarkRead(ctx context.Context, id string) error {
	_, err := r.client.Collection(colNotifications).Doc(id).Update(ctx, []firestore.Update{
		{Path: "read", Value: true},
	})
	if err != nil {
		if isNotFound(err) {
			return errors.NotFound("Notification", err)
		}
		return errors.Internal("Failed to mark notification as read", err)
	}
	return nil
}

// MarkAllRead commits one batch per maxBatchWrites unread notifications. Up to
// that many the update is atomic; past it a failed commit leaves earlier chunks
// applied and returns how many were marked along with the error.
func (r *firestoreNotificationRepository) MarkAllRead(ctx context.Context, userID string) (int, error) {
	iter := r.unread(userID).Documents(ctx)
	defer iter.Stop()

	var refs []*firestore.DocumentRef
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return 0, errors.Internal("Failed to iterate notifications", err)
		}
		refs = append(refs, doc.Ref)
	}

	for start := 0; start < len(refs); start += maxBatchWrites {
		end := start + maxBatchWrites
		if end > len(refs) {
			end = len(refs)
		}

		batch := r.client.Batch()
		for _, ref := range refs[start:end] {
			batch.Update(ref, []firestore.Update{{Path: "read", Value: true}})
		}
		if _, err := batch.Commit(ctx); err != nil {
			return start, errors.Internal("Failed to mark notifications as read", err)
		}
	}

	return len(refs), nil
}

func (r *firestoreNotificationRepository) CountUnread(ctx context.Context, userID string) (int64, error) {
	res, err := r.unreadCount(userID).Get(ctx)
	if err != nil {
		return 0, errors.Internal("Failed to count unread notifications", err)
	}

	n, err := countResult(res)
	if err != nil {
		return 0, errors.Internal("Failed to read unread count", err)
	}
	return n, nil
}

func (r *firestoreNotificationRepository) Subscribe(ctx context.Context, userID string, limit int) (repository.NotificationSubscription, error) {
	ctx, cancel := context.WithCancel(ctx)
	sub := &snapshotSubscription{
		userID:  userID,
		updates: make(chan entity.NotificationFeed, 1),
		ctx:     ctx,
		cancel:  cancel,
	}

	go sub.run(r.byUser(userID, limit).Snapshots(ctx))

	return sub, nil
}

// snapshotSubscription pumps Firestore query snapshots into a channel until
// its context is cancelled.
type snapshotSubscription struct {
	userID  string
	updates chan entity.NotificationFeed
	ctx     context.Context
	cancel  context.CancelFunc

	mu  sync.Mutex
	err error
}

func (s *snapshotSubscription) Updates() <-chan entity.NotificationFeed {
	return s.updates
}

func (s *snapshotSubscription) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *snapshotSubscription) Close() {
	s.cancel()
}

func (s *snapshotSubscription) run(it *firestore.QuerySnapshotIterator) {
	defer close(s.updates)
	defer it.Stop()

	for {
		snap, err := it.Next()
		if err != nil {
			if s.ctx.Err() == nil {
				logger.Error("Notification listener for user %s stopped: %v", s.userID, err)
				s.mu.Lock()
				s.err = err
				s.mu.Unlock()
			}
			return
		}

		docs, err := snap.Documents.GetAll()
		if err != nil {
			if s.ctx.Err() == nil {
				s.mu.Lock()
				s.err = err
				s.mu.Unlock()
			}
			return
		}

		items, err := notificationsFromDocs(docs)
		if err != nil {
			s.mu.Lock()
			s.err = err
			s.mu.Unlock()
			return
		}

		select {
		case s.updates <- entity.NewNotificationFeed(items):
		case <-s.ctx.Done():
			return
		}
	}
}

func notificationsFromDocs(docs []*firestore.DocumentSnapshot) ([]*entity.Notification, error) {
	items := make([]*entity.Notification, 0, len(docs))
	for _, doc := range docs {
		n, err := notificationFromDoc(doc)
		if err != nil {
			return nil, err
		}
		items = append(items, n)
	}
	return items, nil
}

func notificationFromDoc(doc *firestore.DocumentSnapshot) (*entity.Notification, error) {
	var n entity.Notification
	if err := doc.DataTo(&n); err != nil {
		return nil, errors.Internal("Failed to parse notification data", err)
	}
	n.ID = doc.Ref.ID
	return &n, nil
}
