//go:build unit || e2e

// Package memstore is an in-memory shared.UnitOfWork for use-case tests. A transaction
// buffers its writes and publishes them on commit. Admission buckets and row locks are
// held until the transaction ends, mirroring the PostgreSQL implementation closely enough
// to exercise concurrent admission.
package memstore

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/catalog"
	"travel-booking/internal/domain/customtour"
	"travel-booking/internal/domain/user"
	"travel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// Job is a committed notification job with its payload decoded.
type Job struct {
	Kind  string
	Topic string
	Event shared.NotificationEvent
	RunAt time.Time
}

type Store struct {
	mu          sync.Mutex
	users       map[uuid.UUID]*user.User
	tours       map[uuid.UUID]*catalog.Tour
	hotels      map[uuid.UUID]*catalog.Hotel
	rooms       map[uuid.UUID]*catalog.PhysicalRoom
	bookings    map[uuid.UUID]*booking.Booking
	customTours map[uuid.UUID]*customtour.Request
	jobs        []Job
	buckets     []string

	locks *keyedLocks

	// FailNotifications makes every job insert fail so callers can observe the rollback.
	FailNotifications error
}

func New() *Store {
	return &Store{
		users:       make(map[uuid.UUID]*user.User),
		tours:       make(map[uuid.UUID]*catalog.Tour),
		hotels:      make(map[uuid.UUID]*catalog.Hotel),
		rooms:       make(map[uuid.UUID]*catalog.PhysicalRoom),
		bookings:    make(map[uuid.UUID]*booking.Booking),
		customTours: make(map[uuid.UUID]*customtour.Request),
		locks:       newKeyedLocks(),
	}
}

var _ shared.UnitOfWork = (*Store)(nil)

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	tx := newTx(s)
	defer tx.releaseLocks()

	if err := fn(ctx, tx); err != nil {
		return err
	}
	s.commit(tx)
	return nil
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads shared.CommandReads) error) error {
	return fn(ctx, &reads{store: s})
}

func (s *Store) CommandReads() shared.CommandReads {
	return &reads{store: s}
}

func (s *Store) commit(tx *memTx) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, b := range tx.bookings {
		s.bookings[id] = cloneBooking(b)
	}
	for id, r := range tx.rooms {
		s.rooms[id] = cloneRoom(r)
	}
	for id, r := range tx.customTours {
		s.customTours[id] = cloneRequest(r)
	}
	s.jobs = append(s.jobs, tx.jobs...)
	s.buckets = append(s.buckets, tx.buckets...)
}

// Seeding

func (s *Store) AddUser(u *user.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID()] = u
}

func (s *Store) AddTour(t *catalog.Tour) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tours[t.ID()] = t
}

func (s *Store) AddHotel(h *catalog.Hotel, rooms ...*catalog.PhysicalRoom) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hotels[h.ID()] = h
	for _, r := range rooms {
		s.rooms[r.ID()] = cloneRoom(r)
	}
}

func (s *Store) AddBooking(b *booking.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings[b.ID()] = cloneBooking(b)
}

func (s *Store) AddCustomTour(r *customtour.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customTours[r.ID()] = cloneRequest(r)
}

// Inspection

func (s *Store) Booking(id uuid.UUID) (*booking.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil, false
	}
	return cloneBooking(b), true
}

func (s *Store) Bookings() []*booking.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*booking.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		out = append(out, cloneBooking(b))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt().Before(out[j].CreatedAt()) })
	return out
}

func (s *Store) Room(id uuid.UUID) (*catalog.PhysicalRoom, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rooms[id]
	if !ok {
		return nil, false
	}
	return cloneRoom(r), true
}

func (s *Store) CustomTour(id uuid.UUID) (*customtour.Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.customTours[id]
	if !ok {
		return nil, false
	}
	return cloneRequest(r), true
}

func (s *Store) Jobs() []Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Job(nil), s.jobs...)
}

// JobsByTopic returns committed jobs of topic in insertion order.
func (s *Store) JobsByTopic(topic string) []Job {
	var out []Job
	for _, j := range s.Jobs() {
		if j.Topic == topic {
			out = append(out, j)
		}
	}
	return out
}

// Buckets lists the admission buckets taken by committed transactions.
func (s *Store) Buckets() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.buckets...)
}

func decodeEvent(payload []byte) shared.NotificationEvent {
	var ev shared.NotificationEvent
	_ = json.Unmarshal(payload, &ev)
	return ev
}
