package queries

import (
	"context"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/user"

	"github.com/google/uuid"
)

type BookingQueries interface {
	GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*BookingView, error)
	ListMine(ctx context.Context, actor user.Actor, cursor Cursor, limit int) (*BookingPage, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	ListByUser(ctx context.Context, userID uuid.UUID, afterCreatedAt *time.Time, afterID *uuid.UUID, limit int32) ([]*booking.Booking, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
}

func NewBookingQueries(readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{
		readStore: readStore,
	}
}

// GetByID is visible to the booking owner and admins.
func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*BookingView, error) {
	b, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	if b.UserID() != actor.ID && !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	view := NewBookingView(b)
	return &view, nil
}

func (q *bookingQueriesImpl) ListMine(ctx context.Context, actor user.Actor, cursor Cursor, limit int) (*BookingPage, error) {
	limit = ValidateLimit(limit)

	var afterCreatedAt *time.Time
	var afterID *uuid.UUID
	if cursor.After != "" {
		t, id, err := DecodeAfterCursor(cursor.After)
		if err != nil {
			return nil, err
		}
		afterCreatedAt, afterID = &t, &id
	}

	// one extra row tells whether another page exists
	rows, err := q.readStore.ListByUser(ctx, actor.ID, afterCreatedAt, afterID, int32(limit+1))
	if err != nil {
		return nil, translate(err)
	}

	page := &BookingPage{Items: make([]BookingView, 0, min(len(rows), limit))}
	for i, b := range rows {
		if i == limit {
			last := rows[limit-1]
			page.NextCursor = EncodeAfterCursor(last.CreatedAt(), last.ID())
			break
		}
		page.Items = append(page.Items, NewBookingView(b))
	}
	return page, nil
}
