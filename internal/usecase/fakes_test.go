package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"serviya/internal/domain/entity"
	"serviya/internal/domain/repository"
	"serviya/pkg/errors"
)

// memStore is an in-memory datastore. A single mutex serializes every
// operation, which gives the transactional methods their atomicity.
type memStore struct {
	mu sync.Mutex
	id int

	listings      map[string]*entity.Listing
	reviews       map[string]map[string]*entity.Review
	hires         map[string]*entity.Hire
	notifications map[string]*entity.Notification
	users         map[string]*entity.User
	chats         map[string]*entity.Chat
	messages      map[string][]*entity.Message

	subscribers map[string][]*memSubscription
	failCommit  error
}

func newMemStore() *memStore {
	return &memStore{
		listings:      map[string]*entity.Listing{},
		reviews:       map[string]map[string]*entity.Review{},
		hires:         map[string]*entity.Hire{},
		notifications: map[string]*entity.Notification{},
		users:         map[string]*entity.User{},
		chats:         map[string]*entity.Chat{},
		messages:      map[string][]*entity.Message{},
		subscribers:   map[string][]*memSubscription{},
	}
}

func (s *memStore) nextID(prefix string) string {
	s.id++
	return fmt.Sprintf("%s-%d", prefix, s.id)
}

// addNotification must be called with mu held.
func (s *memStore) addNotification(n *entity.Notification) {
	n.ID = s.nextID("notif")
	cp := *n
	s.notifications[n.ID] = &cp
	s.publish(n.UserID)
}

func (s *memStore) userNotifications(userID string, limit int) []*entity.Notification {
	var items []*entity.Notification
	for _, n := range s.notifications {
		if n.UserID == userID {
			cp := *n
			items = append(items, &cp)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].ID > items[j].ID
		}
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}

// publish must be called with mu held.
func (s *memStore) publish(userID string) {
	for _, sub := range s.subscribers[userID] {
		sub.push(entity.NewNotificationFeed(s.userNotifications(userID, sub.limit)))
	}
}

// ── listings ───────────────────────────────────────────────────────────────

type memListingRepo struct{ s *memStore }

func (r *memListingRepo) Create(ctx context.Context, l *entity.Listing) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if l.ID == "" {
		l.ID = r.s.nextID("svc")
	}
	cp := *l
	r.s.listings[l.ID] = &cp
	return nil
}

func (r *memListingRepo) GetByID(ctx context.Context, id string) (*entity.Listing, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	l, ok := r.s.listings[id]
	if !ok {
		return nil, errors.NotFound("Service", nil)
	}
	cp := *l
	return &cp, nil
}

func (r *memListingRepo) GetMany(ctx context.Context, ids []string) ([]*entity.Listing, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []*entity.Listing{}
	for _, id := range ids {
		if l, ok := r.s.listings[id]; ok {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memListingRepo) Update(ctx context.Context, l *entity.Listing) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.listings[l.ID]
	if !ok {
		return errors.NotFound("Service", nil)
	}
	stored.Title, stored.Description, stored.Category = l.Title, l.Description, l.Category
	stored.Price, stored.City, stored.Zone, stored.ImageURL = l.Price, l.City, l.Zone, l.ImageURL
	return nil
}

func (r *memListingRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.listings, id)
	return nil
}

func (r *memListingRepo) List(ctx context.Context, f entity.ListingFilter) ([]*entity.Listing, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []*entity.Listing{}
	for _, l := range r.s.listings {
		if (f.Category == "" || l.Category == f.Category) && l.Matches(f.Search) {
			cp := *l
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (r *memListingRepo) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Listing, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []*entity.Listing{}
	for _, l := range r.s.listings {
		if l.UserID == ownerID {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memListingRepo) Categories(ctx context.Context) ([]string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	seen := map[string]bool{}
	out := []string{}
	for _, l := range r.s.listings {
		if !seen[l.Category] {
			seen[l.Category] = true
			out = append(out, l.Category)
		}
	}
	sort.Strings(out)
	return out, nil
}

// ── reviews ────────────────────────────────────────────────────────────────

type memReviewRepo struct{ s *memStore }

func (r *memReviewRepo) Submit(ctx context.Context, listingID string, review *entity.Review, apply repository.ApplyReviewFunc) (*entity.Listing, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.listings[listingID]
	if !ok {
		return nil, errors.NotFound("Service", nil)
	}
	if _, dup := r.s.reviews[listingID][review.UserID]; dup {
		return nil, errors.Conflict("You have already reviewed this service")
	}

	working := *stored
	n, err := apply(&working)
	if err != nil {
		return nil, err
	}
	if r.s.failCommit != nil {
		return nil, errors.Internal("Failed to submit review", r.s.failCommit)
	}

	stored.ReviewCount = working.ReviewCount
	stored.AverageRating = working.AverageRating
	if r.s.reviews[listingID] == nil {
		r.s.reviews[listingID] = map[string]*entity.Review{}
	}
	review.ID = review.UserID
	review.ListingID = listingID
	cp := *review
	r.s.reviews[listingID][review.UserID] = &cp
	if n != nil {
		r.s.addNotification(n)
	}

	out := *stored
	return &out, nil
}

func (r *memReviewRepo) ListByListing(ctx context.Context, listingID string, limit int) ([]*entity.Review, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []*entity.Review{}
	for _, rv := range r.s.reviews[listingID] {
		cp := *rv
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memReviewRepo) Exists(ctx context.Context, listingID, userID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.reviews[listingID][userID]
	return ok, nil
}

// ── hires ──────────────────────────────────────────────────────────────────

type memHireRepo struct{ s *memStore }

func (r *memHireRepo) Create(ctx context.Context, h *entity.Hire, n *entity.Notification) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failCommit != nil {
		return errors.Internal("Failed to create hire", r.s.failCommit)
	}
	h.ID = r.s.nextID("hire")
	cp := *h
	r.s.hires[h.ID] = &cp
	if n != nil {
		r.s.addNotification(n)
	}
	return nil
}

func (r *memHireRepo) GetByID(ctx context.Context, id string) (*entity.Hire, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	h, ok := r.s.hires[id]
	if !ok {
		return nil, errors.NotFound("Hire", nil)
	}
	cp := *h
	return &cp, nil
}

func (r *memHireRepo) UpdateStatus(ctx context.Context, id string, fn repository.TransitionFunc) (*entity.Hire, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.hires[id]
	if !ok {
		return nil, errors.NotFound("Hire", nil)
	}
	working := *stored
	n, err := fn(&working)
	if err != nil {
		return nil, err
	}
	stored.Status = working.Status
	stored.UpdatedAt = working.UpdatedAt
	if n != nil {
		r.s.addNotification(n)
	}
	out := *stored
	return &out, nil
}

func (r *memHireRepo) list(match func(*entity.Hire) bool) []*entity.Hire {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []*entity.Hire{}
	for _, h := range r.s.hires {
		if match(h) {
			cp := *h
			out = append(out, &cp)
		}
	}
	return out
}

func (r *memHireRepo) ListByClient(ctx context.Context, clientID string, limit int) ([]*entity.Hire, error) {
	return r.list(func(h *entity.Hire) bool { return h.ClientID == clientID }), nil
}

func (r *memHireRepo) ListByProvider(ctx context.Context, providerID string, limit int) ([]*entity.Hire, error) {
	return r.list(func(h *entity.Hire) bool { return h.ProviderID == providerID }), nil
}

// ── notifications ──────────────────────────────────────────────────────────

type memNotificationRepo struct{ s *memStore }

func (r *memNotificationRepo) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Notification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.userNotifications(userID, limit), nil
}

func (r *memNotificationRepo) GetByID(ctx context.Context, id string) (*entity.Notification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n, ok := r.s.notifications[id]
	if !ok {
		return nil, errors.NotFound("Notification", nil)
	}
	cp := *n
	return &cp, nil
}

func (r *memNotificationRepo) MarkRead(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n, ok := r.s.notifications[id]
	if !ok {
		return errors.NotFound("Notification", nil)
	}
	n.Read = true
	r.s.publish(n.UserID)
	return nil
}

func (r *memNotificationRepo) MarkAllRead(ctx context.Context, userID string) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	count := 0
	for _, n := range r.s.notifications {
		if n.UserID == userID && !n.Read {
			n.Read = true
			count++
		}
	}
	if count > 0 {
		r.s.publish(userID)
	}
	return count, nil
}

func (r *memNotificationRepo) CountUnread(ctx context.Context, userID string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var count int64
	for _, n := range r.s.notifications {
		if n.UserID == userID && !n.Read {
			count++
		}
	}
	return count, nil
}

func (r *memNotificationRepo) Subscribe(ctx context.Context, userID string, limit int) (repository.NotificationSubscription, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sub := &memSubscription{
		store:   r.s,
		userID:  userID,
		limit:   limit,
		updates: make(chan entity.NotificationFeed, 16),
	}
	r.s.subscribers[userID] = append(r.s.subscribers[userID], sub)
	sub.push(entity.NewNotificationFeed(r.s.userNotifications(userID, limit)))
	return sub, nil
}

type memSubscription struct {
	store   *memStore
	userID  string
	limit   int
	updates chan entity.NotificationFeed
	closed  bool
}

func (m *memSubscription) push(feed entity.NotificationFeed) {
	if !m.closed {
		m.updates <- feed
	}
}

func (m *memSubscription) Updates() <-chan entity.NotificationFeed { return m.updates }
func (m *memSubscription) Err() error                           { return nil }

func (m *memSubscription) Close() {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	if m.closed {
		return
	}
	m.closed = true
	subs := m.store.subscribers[m.userID]
	for i, s := range subs {
		if s == m {
			m.store.subscribers[m.userID] = append(subs[:i], subs[i+1:]...)
			break
		}
	}
	close(m.updates)
}

// ── users ──────────────────────────────────────────────────────────────────

type memUserRepo struct{ s *memStore }

func (r *memUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	cp := *u
	cp.FavoriteServices = append([]string(nil), u.FavoriteServices...)
	return &cp, nil
}

func (r *memUserRepo) CreateIfMissing(ctx context.Context, u *entity.User) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if existing, ok := r.s.users[u.ID]; ok {
		cp := *existing
		return &cp, nil
	}
	cp := *u
	r.s.users[u.ID] = &cp
	return u, nil
}

func (r *memUserRepo) List(ctx context.Context, limit, offset int) ([]*entity.User, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []*entity.User{}
	for _, u := range r.s.users {
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	total := int64(len(out))
	if offset >= len(out) {
		return []*entity.User{}, total, nil
	}
	out = out[offset:]
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, total, nil
}

func (r *memUserRepo) SetVerified(ctx context.Context, id string, verified bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return errors.NotFound("User", nil)
	}
	u.Verified = verified
	return nil
}

func (r *memUserRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.users, id)
	return nil
}

func (r *memUserRepo) AddFavorite(ctx context.Context, userID, listingID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[userID]
	if !ok {
		return errors.NotFound("User", nil)
	}
	for _, id := range u.FavoriteServices {
		if id == listingID {
			return nil
		}
	}
	u.FavoriteServices = append(u.FavoriteServices, listingID)
	return nil
}

func (r *memUserRepo) RemoveFavorite(ctx context.Context, userID, listingID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[userID]
	if !ok {
		return errors.NotFound("User", nil)
	}
	kept := u.FavoriteServices[:0]
	for _, id := range u.FavoriteServices {
		if id != listingID {
			kept = append(kept, id)
		}
	}
	u.FavoriteServices = kept
	return nil
}

// ── chats ──────────────────────────────────────────────────────────────────

type memChatRepo struct{ s *memStore }

func (r *memChatRepo) GetOrCreate(ctx context.Context, c *entity.Chat) (*entity.Chat, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if existing, ok := r.s.chats[c.ID]; ok {
		cp := *existing
		return &cp, nil
	}
	cp := *c
	r.s.chats[c.ID] = &cp
	return c, nil
}

func (r *memChatRepo) GetByID(ctx context.Context, id string) (*entity.Chat, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.chats[id]
	if !ok {
		return nil, errors.NotFound("Chat", nil)
	}
	cp := *c
	return &cp, nil
}

func (r *memChatRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Chat, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []*entity.Chat{}
	for _, c := range r.s.chats {
		if c.HasParticipant(userID) {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memChatRepo) AddMessage(ctx context.Context, m *entity.Message) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.chats[m.ChatID]
	if !ok {
		return errors.NotFound("Chat", nil)
	}
	m.ID = r.s.nextID("msg")
	cp := *m
	r.s.messages[m.ChatID] = append(r.s.messages[m.ChatID], &cp)
	c.LastMessage = m.Content
	c.LastMessageAt = m.CreatedAt
	return nil
}

func (r *memChatRepo) ListMessages(ctx context.Context, chatID string, limit int) ([]*entity.Message, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	msgs := r.s.messages[chatID]
	if limit > 0 && len(msgs) > limit {
		msgs = msgs[len(msgs)-limit:]
	}
	return append([]*entity.Message{}, msgs...), nil
}

// ── stats ──────────────────────────────────────────────────────────────────

type memStatsRepo struct {
	s     *memStore
	calls int
}

func (r *memStatsRepo) Count(ctx context.Context) (*entity.PlatformStats, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.calls++
	return &entity.PlatformStats{
		Users:    int64(len(r.s.users)),
		Services: int64(len(r.s.listings)),
		Hires:    int64(len(r.s.hires)),
	}, nil
}
