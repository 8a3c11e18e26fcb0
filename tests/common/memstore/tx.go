//go:build unit || e2e

package memstore

import (
	"bytes"
	"context"
	"sort"
	"sync"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/catalog"
	"travel-booking/internal/domain/customtour"
	"travel-booking/internal/infra"
	"travel-booking/internal/infra/sqlstore"
	"travel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type keyedLocks struct {
	mu   sync.Mutex
	held map[string]chan struct{}
}

func newKeyedLocks() *keyedLocks {
	return &keyedLocks{held: make(map[string]chan struct{})}
}

func (l *keyedLocks) lock(ctx context.Context, key string) error {
	for {
		l.mu.Lock()
		wait, busy := l.held[key]
		if !busy {
			l.held[key] = make(chan struct{})
			l.mu.Unlock()
			return nil
		}
		l.mu.Unlock()

		select {
		case <-wait:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (l *keyedLocks) unlock(key string) {
	l.mu.Lock()
	ch := l.held[key]
	delete(l.held, key)
	l.mu.Unlock()
	if ch != nil {
		close(ch)
	}
}

type memTx struct {
	store   *Store
	held    []string
	holding map[string]struct{}
	buckets []string

	bookings    map[uuid.UUID]*booking.Booking
	rooms       map[uuid.UUID]*catalog.PhysicalRoom
	customTours map[uuid.UUID]*customtour.Request
	jobs        []Job
}

func newTx(s *Store) *memTx {
	return &memTx{
		store:       s,
		holding:     make(map[string]struct{}),
		bookings:    make(map[uuid.UUID]*booking.Booking),
		rooms:       make(map[uuid.UUID]*catalog.PhysicalRoom),
		customTours: make(map[uuid.UUID]*customtour.Request),
	}
}

// acquire is re-entrant within the transaction, like a PostgreSQL row or advisory lock.
func (t *memTx) acquire(ctx context.Context, key string) error {
	if _, ok := t.holding[key]; ok {
		return nil
	}
	if err := t.store.locks.lock(ctx, key); err != nil {
		return err
	}
	t.holding[key] = struct{}{}
	t.held = append(t.held, key)
	return nil
}

func (t *memTx) releaseLocks() {
	for i := len(t.held) - 1; i >= 0; i-- {
		t.store.locks.unlock(t.held[i])
	}
	t.held = nil
}

func (t *memTx) Locks() shared.AdmissionLocker            { return bucketLocker{tx: t} }
func (t *memTx) Bookings() shared.BookingRepository       { return bookingRepo{tx: t} }
func (t *memTx) Rooms() shared.RoomRepository             { return roomRepo{tx: t} }
func (t *memTx) CustomTours() shared.CustomTourRepository { return customTourRepo{tx: t} }
func (t *memTx) Notifications() shared.NotificationRepository {
	return notificationRepo{tx: t}
}
func (t *memTx) Reads() shared.CommandReads { return &reads{store: t.store, tx: t} }
func (t *memTx) DB() sqlstore.DBTX          { return nil }

type bucketLocker struct{ tx *memTx }

func (l bucketLocker) Acquire(ctx context.Context, _ sqlstore.DBTX, key string) error {
	if err := l.tx.acquire(ctx, "bucket:"+key); err != nil {
		return infra.WrapRepoErr("failed to acquire admission lock "+key, err)
	}
	l.tx.buckets = append(l.tx.buckets, key)
	return nil
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

type bookingRepo struct{ tx *memTx }

func (r bookingRepo) Create(_ context.Context, _ sqlstore.DBTX, b *booking.Booking) error {
	if _, ok := r.tx.booking(b.ID()); ok {
		return infra.WrapRepoErr("failed to create booking", nil, infra.KindDuplicateKey)
	}
	r.tx.bookings[b.ID()] = cloneBooking(b)
	return nil
}

func (r bookingRepo) FindForUpdate(ctx context.Context, _ sqlstore.DBTX, id uuid.UUID) (*booking.Booking, error) {
	if err := r.tx.acquire(ctx, "booking:"+id.String()); err != nil {
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}
	b, ok := r.tx.booking(id)
	if !ok {
		return nil, notFound("failed to lock booking")
	}
	return b, nil
}

func (r bookingRepo) UpdateState(_ context.Context, _ sqlstore.DBTX, b *booking.Booking) error {
	if _, ok := r.tx.booking(b.ID()); !ok {
		return notFound("booking not found")
	}
	r.tx.bookings[b.ID()] = cloneBooking(b)
	return nil
}

type roomRepo struct{ tx *memTx }

func (r roomRepo) LockByIDs(ctx context.Context, _ sqlstore.DBTX, ids ...uuid.UUID) (map[uuid.UUID]*catalog.PhysicalRoom, error) {
	sorted := append([]uuid.UUID(nil), ids...)
	sort.Slice(sorted, func(i, j int) bool { return bytes.Compare(sorted[i][:], sorted[j][:]) < 0 })

	out := make(map[uuid.UUID]*catalog.PhysicalRoom, len(sorted))
	for _, id := range sorted {
		if err := r.tx.acquire(ctx, "room:"+id.String()); err != nil {
			return nil, infra.WrapRepoErr("failed to lock rooms", err)
		}
		if room, ok := r.tx.room(id); ok {
			out[id] = room
		}
	}
	return out, nil
}

func (r roomRepo) UpdateState(_ context.Context, _ sqlstore.DBTX, room *catalog.PhysicalRoom) error {
	if _, ok := r.tx.room(room.ID()); !ok {
		return notFound("room not found")
	}
	r.tx.rooms[room.ID()] = cloneRoom(room)
	return nil
}

type customTourRepo struct{ tx *memTx }

func (r customTourRepo) Create(_ context.Context, _ sqlstore.DBTX, req *customtour.Request) error {
	if _, ok := r.tx.customTour(req.ID()); ok {
		return infra.WrapRepoErr("failed to create custom tour request", nil, infra.KindDuplicateKey)
	}
	r.tx.customTours[req.ID()] = cloneRequest(req)
	return nil
}

func (r customTourRepo) FindForUpdate(ctx context.Context, _ sqlstore.DBTX, id uuid.UUID) (*customtour.Request, error) {
	if err := r.tx.acquire(ctx, "custom_tour:"+id.String()); err != nil {
		return nil, infra.WrapRepoErr("failed to lock custom tour request", err)
	}
	req, ok := r.tx.customTour(id)
	if !ok {
		return nil, notFound("failed to lock custom tour request")
	}
	return req, nil
}

func (r customTourRepo) Save(_ context.Context, _ sqlstore.DBTX, req *customtour.Request) error {
	if _, ok := r.tx.customTour(req.ID()); !ok {
		return notFound("custom tour request not found")
	}
	r.tx.customTours[req.ID()] = cloneRequest(req)
	return nil
}

type notificationRepo struct{ tx *memTx }

func (r notificationRepo) CreateJob(_ context.Context, _ sqlstore.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	if err := r.tx.store.FailNotifications; err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	r.tx.jobs = append(r.tx.jobs, Job{
		Kind:  kind,
		Topic: topic,
		Event: decodeEvent(payload),
		RunAt: runAt,
	})
	return nil
}

// Lookups see the transaction's own writes first, then committed state.

func (t *memTx) booking(id uuid.UUID) (*booking.Booking, bool) {
	if b, ok := t.bookings[id]; ok {
		return cloneBooking(b), true
	}
	return t.store.Booking(id)
}

func (t *memTx) room(id uuid.UUID) (*catalog.PhysicalRoom, bool) {
	if r, ok := t.rooms[id]; ok {
		return cloneRoom(r), true
	}
	return t.store.Room(id)
}

func (t *memTx) customTour(id uuid.UUID) (*customtour.Request, bool) {
	if r, ok := t.customTours[id]; ok {
		return cloneRequest(r), true
	}
	return t.store.CustomTour(id)
}
