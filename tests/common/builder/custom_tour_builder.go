//go:build unit || e2e

package builder

import (
	"time"

	"travel-booking/internal/domain/customtour"
	reqdto "travel-booking/internal/handler/dto/request"
	"travel-booking/internal/infra/sqlstore"
	"travel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CustomTourBuilder struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Details         customtour.Details
	Status          customtour.Status
	AssignedGuideID *uuid.UUID
	Quotes          []customtour.Quote
	Bargains        []customtour.Bargain
	AcceptedQuoteID *uuid.UUID
	CreatedAt       time.Time
}

func NewCustomTourBuilder() *CustomTourBuilder {
	return &CustomTourBuilder{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Details: customtour.Details{
			Destination: "Hokkaido",
			StartDate:   time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
			EndDate:     time.Date(2025, 9, 7, 0, 0, 0, 0, time.UTC),
			GroupSize:   4,
			BudgetCents: 500000,
			Preferences: "hot springs, seafood",
		},
		Status:    customtour.StatusPending,
		CreatedAt: time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *CustomTourBuilder) With(mutate func(*CustomTourBuilder)) *CustomTourBuilder {
	mutate(b)
	return b
}

func (b *CustomTourBuilder) WithOwner(userID uuid.UUID) *CustomTourBuilder {
	b.UserID = userID
	return b
}

func (b *CustomTourBuilder) AssignedTo(guideID uuid.UUID) *CustomTourBuilder {
	id := guideID
	b.AssignedGuideID = &id
	b.Status = customtour.StatusAssigned
	return b
}

// QuotedBy adds a quote from guideID and moves the request to quoted.
func (b *CustomTourBuilder) QuotedBy(guideID uuid.UUID, amountCents int64) *CustomTourBuilder {
	b.Quotes = append(b.Quotes, customtour.Quote{
		ID:          uuid.New(),
		GuideID:     guideID,
		AmountCents: amountCents,
		Message:     "all inclusive",
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.CreatedAt,
	})
	b.Status = customtour.StatusQuoted
	return b
}

func (b *CustomTourBuilder) WithStatus(status customtour.Status) *CustomTourBuilder {
	b.Status = status
	return b
}

func (b *CustomTourBuilder) BuildDomain() *customtour.Request {
	quotes := append([]customtour.Quote(nil), b.Quotes...)
	bargains := append([]customtour.Bargain(nil), b.Bargains...)
	return customtour.ReconstructRequest(
		b.ID, b.UserID,
		b.Details,
		b.Status,
		b.AssignedGuideID,
		quotes,
		bargains,
		b.AcceptedQuoteID,
		b.CreatedAt, b.CreatedAt,
	)
}

func (b *CustomTourBuilder) BuildInfra() (sqlstore.CustomTourRequests, []sqlstore.CustomTourQuotes, []sqlstore.CustomTourBargains) {
	ts := pgtype.Timestamptz{Time: b.CreatedAt, Valid: true}
	row := sqlstore.CustomTourRequests{
		ID:              b.ID,
		UserID:          b.UserID,
		Destination:     b.Details.Destination,
		StartDate:       pgconv.DateToPgtype(b.Details.StartDate),
		EndDate:         pgconv.DateToPgtype(b.Details.EndDate),
		GroupSize:       int32(b.Details.GroupSize),
		BudgetCents:     b.Details.BudgetCents,
		Preferences:     b.Details.Preferences,
		Status:          b.Status.String(),
		AssignedGuideID: pgconv.UUIDPtrToPgtype(b.AssignedGuideID),
		AcceptedQuoteID: pgconv.UUIDPtrToPgtype(b.AcceptedQuoteID),
		CreatedAt:       ts,
		UpdatedAt:       ts,
	}

	quotes := make([]sqlstore.CustomTourQuotes, 0, len(b.Quotes))
	for _, q := range b.Quotes {
		quotes = append(quotes, sqlstore.CustomTourQuotes{
			ID:          q.ID,
			RequestID:   b.ID,
			GuideID:     q.GuideID,
			AmountCents: q.AmountCents,
			Message:     q.Message,
			Itinerary:   q.Itinerary,
			CreatedAt:   pgconv.TimeToPgtype(q.CreatedAt),
			UpdatedAt:   pgconv.TimeToPgtype(q.UpdatedAt),
		})
	}
	bargains := make([]sqlstore.CustomTourBargains, 0, len(b.Bargains))
	for _, bg := range b.Bargains {
		bargains = append(bargains, sqlstore.CustomTourBargains{
			ID:          bg.ID,
			RequestID:   b.ID,
			FromUserID:  bg.FromUserID,
			AmountCents: bg.AmountCents,
			Message:     bg.Message,
			CreatedAt:   pgconv.TimeToPgtype(bg.CreatedAt),
		})
	}
	return row, quotes, bargains
}

func (b *CustomTourBuilder) BuildCreateRequestDTO() reqdto.CreateCustomTourRequest {
	start := reqdto.Date{Time: b.Details.StartDate}
	end := reqdto.Date{Time: b.Details.EndDate}
	return reqdto.CreateCustomTourRequest{
		Destination: b.Details.Destination,
		StartDate:   &start,
		EndDate:     &end,
		GroupSize:   b.Details.GroupSize,
		BudgetCents: b.Details.BudgetCents,
		Preferences: b.Details.Preferences,
	}
}
