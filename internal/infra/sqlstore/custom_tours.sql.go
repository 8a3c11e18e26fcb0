package sqlstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const customTourRequestColumns = `id, user_id, destination, start_date, end_date, group_size, budget_cents,
	preferences, status, assigned_guide_id, accepted_quote_id, created_at, updated_at`

func scanCustomTourRequest(row interface{ Scan(...any) error }) (CustomTourRequests, error) {
	var i CustomTourRequests
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.Destination,
		&i.StartDate,
		&i.EndDate,
		&i.GroupSize,
		&i.BudgetCents,
		&i.Preferences,
		&i.Status,
		&i.AssignedGuideID,
		&i.AcceptedQuoteID,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createCustomTourRequest = `-- name: CreateCustomTourRequest :exec
INSERT INTO custom_tour_requests (
	id, user_id, destination, start_date, end_date, group_size, budget_cents, preferences,
	status, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
`

type CreateCustomTourRequestParams struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Destination string
	StartDate   pgtype.Date
	EndDate     pgtype.Date
	GroupSize   int32
	BudgetCents int64
	Preferences string
	Status      string
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}

func (q *Queries) CreateCustomTourRequest(ctx context.Context, db DBTX, arg CreateCustomTourRequestParams) error {
	_, err := db.Exec(ctx, createCustomTourRequest,
		arg.ID,
		arg.UserID,
		arg.Destination,
		arg.StartDate,
		arg.EndDate,
		arg.GroupSize,
		arg.BudgetCents,
		arg.Preferences,
		arg.Status,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const getCustomTourRequest = `-- name: GetCustomTourRequest :one
SELECT ` + customTourRequestColumns + `
FROM custom_tour_requests
WHERE id = $1
`

func (q *Queries) GetCustomTourRequest(ctx context.Context, db DBTX, id uuid.UUID) (CustomTourRequests, error) {
	return scanCustomTourRequest(db.QueryRow(ctx, getCustomTourRequest, id))
}

const getCustomTourRequestForUpdate = `-- name: GetCustomTourRequestForUpdate :one
SELECT ` + customTourRequestColumns + `
FROM custom_tour_requests
WHERE id = $1
FOR UPDATE
`

func (q *Queries) GetCustomTourRequestForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (CustomTourRequests, error) {
	return scanCustomTourRequest(db.QueryRow(ctx, getCustomTourRequestForUpdate, id))
}

const updateCustomTourRequest = `-- name: UpdateCustomTourRequest :execrows
UPDATE custom_tour_requests
SET status = $2, assigned_guide_id = $3, accepted_quote_id = $4, updated_at = $5
WHERE id = $1
`

type UpdateCustomTourRequestParams struct {
	ID              uuid.UUID
	Status          string
	AssignedGuideID pgtype.UUID
	AcceptedQuoteID pgtype.UUID
	UpdatedAt       pgtype.Timestamptz
}

func (q *Queries) UpdateCustomTourRequest(ctx context.Context, db DBTX, arg UpdateCustomTourRequestParams) (int64, error) {
	result, err := db.Exec(ctx, updateCustomTourRequest,
		arg.ID,
		arg.Status,
		arg.AssignedGuideID,
		arg.AcceptedQuoteID,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const listCustomTourQuotes = `-- name: ListCustomTourQuotes :many
SELECT id, request_id, guide_id, amount_cents, message, itinerary, created_at, updated_at
FROM custom_tour_quotes
WHERE request_id = $1
ORDER BY created_at, id
`

func (q *Queries) ListCustomTourQuotes(ctx context.Context, db DBTX, requestID uuid.UUID) ([]CustomTourQuotes, error) {
	rows, err := db.Query(ctx, listCustomTourQuotes, requestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []CustomTourQuotes
	for rows.Next() {
		var i CustomTourQuotes
		if err := rows.Scan(
			&i.ID,
			&i.RequestID,
			&i.GuideID,
			&i.AmountCents,
			&i.Message,
			&i.Itinerary,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const upsertCustomTourQuote = `-- name: UpsertCustomTourQuote :exec
INSERT INTO custom_tour_quotes (id, request_id, guide_id, amount_cents, message, itinerary, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (id) DO UPDATE
SET amount_cents = EXCLUDED.amount_cents,
    message = EXCLUDED.message,
    itinerary = EXCLUDED.itinerary,
    updated_at = EXCLUDED.updated_at
`

type UpsertCustomTourQuoteParams struct {
	ID          uuid.UUID
	RequestID   uuid.UUID
	GuideID     uuid.UUID
	AmountCents int64
	Message     string
	Itinerary   string
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}

func (q *Queries) UpsertCustomTourQuote(ctx context.Context, db DBTX, arg UpsertCustomTourQuoteParams) error {
	_, err := db.Exec(ctx, upsertCustomTourQuote,
		arg.ID,
		arg.RequestID,
		arg.GuideID,
		arg.AmountCents,
		arg.Message,
		arg.Itinerary,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const listCustomTourBargains = `-- name: ListCustomTourBargains :many
SELECT id, request_id, from_user_id, amount_cents, message, created_at
FROM custom_tour_bargains
WHERE request_id = $1
ORDER BY created_at, id
`

func (q *Queries) ListCustomTourBargains(ctx context.Context, db DBTX, requestID uuid.UUID) ([]CustomTourBargains, error) {
	rows, err := db.Query(ctx, listCustomTourBargains, requestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []CustomTourBargains
	for rows.Next() {
		var i CustomTourBargains
		if err := rows.Scan(
			&i.ID,
			&i.RequestID,
			&i.FromUserID,
			&i.AmountCents,
			&i.Message,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const insertCustomTourBargain = `-- name: InsertCustomTourBargain :exec
INSERT INTO custom_tour_bargains (id, request_id, from_user_id, amount_cents, message, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (id) DO NOTHING
`

type InsertCustomTourBargainParams struct {
	ID          uuid.UUID
	RequestID   uuid.UUID
	FromUserID  uuid.UUID
	AmountCents int64
	Message     string
	CreatedAt   pgtype.Timestamptz
}

func (q *Queries) InsertCustomTourBargain(ctx context.Context, db DBTX, arg InsertCustomTourBargainParams) error {
	_, err := db.Exec(ctx, insertCustomTourBargain,
		arg.ID,
		arg.RequestID,
		arg.FromUserID,
		arg.AmountCents,
		arg.Message,
		arg.CreatedAt,
	)
	return err
}
