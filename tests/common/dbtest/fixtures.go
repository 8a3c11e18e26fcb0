//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	name := strings.SplitN(email, "@", 2)[0]
	tag, err := db.Exec(ctx, "INSERT INTO users (id, name, email, role) VALUES ($1, $2, $3, $4) ON CONFLICT (email) DO NOTHING",
		userID, name, email, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

// CreateTestTour inserts a tour. discount is a fraction, commissionRate a percentage.
func CreateTestTour(t *testing.T, db DBLike, maxPeople int, amountCents int64, discount, commissionRate float64) uuid.UUID {
	t.Helper()

	tourID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO tours (id, title, max_people, amount_cents, discount, commission_rate) VALUES ($1, $2, $3, $4, $5, $6)",
		tourID, "Tour "+tourID.String()[:8], maxPeople, amountCents, discount, commissionRate)
	require.NoError(t, err)

	return tourID
}

func CreateTestHotel(t *testing.T, db DBLike, name string, commissionRate float64) uuid.UUID {
	t.Helper()

	hotelID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO hotels (id, name, commission_rate) VALUES ($1, $2, $3)",
		hotelID, name, commissionRate)
	require.NoError(t, err)

	return hotelID
}

func CreateTestRoomType(t *testing.T, db DBLike, hotelID uuid.UUID, name string, priceCents int64) uuid.UUID {
	t.Helper()

	roomTypeID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO room_types (id, hotel_id, name, price_cents) VALUES ($1, $2, $3, $4)",
		roomTypeID, hotelID, name, priceCents)
	require.NoError(t, err)

	return roomTypeID
}

func CreateTestRoom(t *testing.T, db DBLike, hotelID, roomTypeID uuid.UUID, number string) uuid.UUID {
	t.Helper()

	roomID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO rooms (id, hotel_id, room_type_id, number) VALUES ($1, $2, $3, $4)",
		roomID, hotelID, roomTypeID, number)
	require.NoError(t, err)

	return roomID
}

func RoomStatus(t *testing.T, db DBLike, roomID uuid.UUID) (string, *uuid.UUID) {
	t.Helper()

	var (
		status  string
		current *uuid.UUID
	)
	err := db.QueryRow(context.Background(),
		"SELECT status, current_booking_id FROM rooms WHERE id = $1", roomID).Scan(&status, &current)
	require.NoError(t, err)

	return status, current
}

func CountNotificationJobs(t *testing.T, db DBLike, topic string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM notification_jobs WHERE topic = $1", topic).Scan(&n)
	require.NoError(t, err)

	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations', 'atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
