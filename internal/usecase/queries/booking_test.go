//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/user"
	"travel-booking/internal/infra"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/queries"
	"travel-booking/tests/common/builder"
	queriesmock "travel-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookingQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	tourID := uuid.New()
	bb := builder.NewTourBookingBuilder(tourID).WithGuests(3)
	owner := user.NewActor(bb.UserID, user.RoleUser)

	testCases := []struct {
		name        string
		actor       user.Actor
		setupMock   func(*queriesmock.MockBookingReadStore)
		expectErrIs error
	}{
		{
			name:  "success: owner",
			actor: owner,
			setupMock: func(m *queriesmock.MockBookingReadStore) {
				m.EXPECT().FindByID(ctx, bb.ID).Return(bb.BuildDomain(), nil)
			},
		},
		{
			name:  "success: admin",
			actor: user.NewActor(uuid.New(), user.RoleAdmin),
			setupMock: func(m *queriesmock.MockBookingReadStore) {
				m.EXPECT().FindByID(ctx, bb.ID).Return(bb.BuildDomain(), nil)
			},
		},
		{
			name:  "error: another user",
			actor: user.NewActor(uuid.New(), user.RoleGuide),
			setupMock: func(m *queriesmock.MockBookingReadStore) {
				m.EXPECT().FindByID(ctx, bb.ID).Return(bb.BuildDomain(), nil)
			},
			expectErrIs: queries.ErrForbidden,
		},
		{
			name:  "error: not found",
			actor: owner,
			setupMock: func(m *queriesmock.MockBookingReadStore) {
				m.EXPECT().FindByID(ctx, bb.ID).Return(nil, infra.WrapRepoErr("failed to find booking", nil, infra.KindNotFound))
			},
			expectErrIs: queries.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockBookingReadStore(ctrl)
			tc.setupMock(store)

			view, err := queries.NewBookingQueries(store).GetByID(ctx, tc.actor, bb.ID)

			if tc.expectErrIs != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.expectErrIs))
				assert.Nil(t, view)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, bb.ID, view.ID)
			assert.Equal(t, "Tour", view.Type)
			assert.Equal(t, "booked", view.Status)
			require.NotNil(t, view.NumGuests)
			assert.Equal(t, 3, *view.NumGuests)
			assert.Nil(t, view.RoomTypeID)
		})
	}
}

func TestBookingQueries_ListMine(t *testing.T) {
	ctx := context.Background()
	actor := user.NewActor(uuid.New(), user.RoleUser)

	rows := func(n int) []*booking.Booking {
		out := make([]*booking.Booking, n)
		base := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
		for i := range out {
			out[i] = builder.NewTourBookingBuilder(uuid.New()).
				WithUser(actor.ID).
				CreatedAtTime(base.Add(-time.Duration(i) * time.Minute)).
				BuildDomain()
		}
		return out
	}

	t.Run("first page with more to come", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		found := rows(3)
		store.EXPECT().ListByUser(ctx, actor.ID, nil, nil, int32(3)).Return(found, nil)

		page, err := queries.NewBookingQueries(store).ListMine(ctx, actor, queries.Cursor{}, 2)

		require.NoError(t, err)
		require.Len(t, page.Items, 2)
		assert.Equal(t, found[0].ID(), page.Items[0].ID)
		assert.Equal(t, queries.EncodeAfterCursor(found[1].CreatedAt(), found[1].ID()), page.NextCursor)
	})

	t.Run("last page has no cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		store.EXPECT().ListByUser(ctx, actor.ID, nil, nil, int32(queries.DefaultListLimit+1)).Return(rows(2), nil)

		page, err := queries.NewBookingQueries(store).ListMine(ctx, actor, queries.Cursor{}, 0)

		require.NoError(t, err)
		assert.Len(t, page.Items, 2)
		assert.Empty(t, page.NextCursor)
	})

	t.Run("cursor is decoded into the keyset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		after := time.Date(2025, 4, 30, 8, 15, 0, 123000, time.UTC)
		afterID := uuid.New()
		store.EXPECT().
			ListByUser(ctx, actor.ID, gomock.Any(), gomock.Any(), int32(queries.MaxListLimit+1)).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, at *time.Time, id *uuid.UUID, _ int32) ([]*booking.Booking, error) {
				require.NotNil(t, at)
				require.NotNil(t, id)
				assert.True(t, after.Equal(*at))
				assert.Equal(t, afterID, *id)
				return nil, nil
			})

		page, err := queries.NewBookingQueries(store).ListMine(ctx, actor, queries.Cursor{After: queries.EncodeAfterCursor(after, afterID)}, 1000)

		require.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.NotNil(t, page.Items)
	})

	t.Run("invalid cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)

		_, err := queries.NewBookingQueries(store).ListMine(ctx, actor, queries.Cursor{After: "not-a-cursor"}, 10)

		assert.True(t, errs.Is(err, queries.ErrInvalidCursor))
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		store.EXPECT().ListByUser(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("failed to list bookings", errors.New("connection reset")))

		_, err := queries.NewBookingQueries(store).ListMine(ctx, actor, queries.Cursor{}, 10)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
