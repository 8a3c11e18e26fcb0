package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/catalog"
	"travel-booking/internal/domain/user"
	"travel-booking/internal/infra/readstore"
	"travel-booking/internal/infra/repository"
	"travel-booking/internal/infra/sqlstore"
	"travel-booking/internal/pkg/config"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool       *pgxpool.Pool
	q          *sqlstore.Queries
	maxRetries int
	locker     *repository.AdvisoryLocker
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlstore.Queries, cfg config.Config) shared.UnitOfWork {
	return &PostgresUoW{
		pool:       pool,
		q:          q,
		maxRetries: cfg.DB.MaxTxRetries,
		locker:     repository.NewAdvisoryLocker(q),
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads shared.CommandReads) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, func(ctx context.Context, db sqlstore.DBTX) error {
		return fn(ctx, &commandReads{uow: u, dbtx: db})
	})
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	maxRetries := u.maxRetries
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries && maxRetries > 0 && isRetryableError(err) {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, db sqlstore.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlstore.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	bookingRepo      shared.BookingRepository
	roomRepo         shared.RoomRepository
	customTourRepo   shared.CustomTourRepository
	notificationRepo shared.NotificationRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) DB() sqlstore.DBTX {
	return t.dbtx
}

func (t *pgTx) Locks() shared.AdmissionLocker {
	return t.uow.locker
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.uow.q, t.dbtx)
	}
	return t.bookingRepo
}

func (t *pgTx) Rooms() shared.RoomRepository {
	if t.roomRepo == nil {
		t.roomRepo = repository.NewRoomRepository(t.uow.q, t.dbtx)
	}
	return t.roomRepo
}

func (t *pgTx) CustomTours() shared.CustomTourRepository {
	if t.customTourRepo == nil {
		t.customTourRepo = repository.NewCustomTourRepository(t.uow.q, t.dbtx)
	}
	return t.customTourRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.uow.q, t.dbtx)
	}
	return t.notificationRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlstore.DBTX

	// Lazy-initialized readstores
	catalogStore *readstore.CatalogReadStore
	bookingStore *readstore.BookingReadStore
	userStore    *readstore.UserReadStore
}

func (r *commandReads) catalog() *readstore.CatalogReadStore {
	if r.catalogStore == nil {
		r.catalogStore = readstore.NewCatalogReadStore(r.uow.q, r.dbtx)
	}
	return r.catalogStore
}

func (r *commandReads) bookings() *readstore.BookingReadStore {
	if r.bookingStore == nil {
		r.bookingStore = readstore.NewBookingReadStore(r.uow.q, r.dbtx)
	}
	return r.bookingStore
}

func (r *commandReads) users() *readstore.UserReadStore {
	if r.userStore == nil {
		r.userStore = readstore.NewUserReadStore(r.uow.q, r.dbtx)
	}
	return r.userStore
}

func (r *commandReads) UserByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return r.users().FindByID(ctx, id)
}

func (r *commandReads) TourByID(ctx context.Context, id uuid.UUID) (*catalog.Tour, error) {
	return r.catalog().TourByID(ctx, id)
}

func (r *commandReads) HotelByID(ctx context.Context, id uuid.UUID) (*catalog.Hotel, error) {
	return r.catalog().HotelByID(ctx, id)
}

func (r *commandReads) RoomByID(ctx context.Context, id uuid.UUID) (*catalog.PhysicalRoom, error) {
	return r.catalog().RoomByID(ctx, id)
}

func (r *commandReads) RoomsByType(ctx context.Context, hotelID, roomTypeID uuid.UUID) ([]*catalog.PhysicalRoom, error) {
	return r.catalog().RoomsByType(ctx, hotelID, roomTypeID)
}

func (r *commandReads) TourBookingsOn(ctx context.Context, tourID uuid.UUID, date time.Time) ([]*booking.Booking, error) {
	return r.bookings().TourBookingsOn(ctx, tourID, date)
}

func (r *commandReads) OverlappingHotelBookings(ctx context.Context, hotelID, roomTypeID uuid.UUID, window booking.DateRange) ([]*booking.Booking, error) {
	return r.bookings().OverlappingHotelBookings(ctx, hotelID, roomTypeID, window)
}

func (r *commandReads) ActiveHotelBookings(ctx context.Context, hotelID, roomTypeID uuid.UUID) ([]*booking.Booking, error) {
	return r.bookings().ActiveHotelBookings(ctx, hotelID, roomTypeID)
}
