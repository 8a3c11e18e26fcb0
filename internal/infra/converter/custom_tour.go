package converter

import (
	"fmt"

	"travel-booking/internal/domain/customtour"
	"travel-booking/internal/infra/sqlstore"
	"travel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

func CustomTourToCreateParams(req *customtour.Request) sqlstore.CreateCustomTourRequestParams {
	d := req.Details()
	return sqlstore.CreateCustomTourRequestParams{
		ID:          req.ID(),
		UserID:      req.UserID(),
		Destination: d.Destination,
		StartDate:   pgconv.DateToPgtype(d.StartDate),
		EndDate:     pgconv.DateToPgtype(d.EndDate),
		GroupSize:   int32(d.GroupSize), // #nosec G115 -- validated >= 1
		BudgetCents: d.BudgetCents,
		Preferences: d.Preferences,
		Status:      req.Status().String(),
		CreatedAt:   pgconv.TimeToPgtype(req.CreatedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(req.UpdatedAt()),
	}
}

func CustomTourToUpdateParams(req *customtour.Request) sqlstore.UpdateCustomTourRequestParams {
	return sqlstore.UpdateCustomTourRequestParams{
		ID:              req.ID(),
		Status:          req.Status().String(),
		AssignedGuideID: pgconv.UUIDPtrToPgtype(req.AssignedGuideID()),
		AcceptedQuoteID: pgconv.UUIDPtrToPgtype(req.AcceptedQuoteID()),
		UpdatedAt:       pgconv.TimeToPgtype(req.UpdatedAt()),
	}
}

func QuoteToUpsertParams(requestID uuid.UUID, q customtour.Quote) sqlstore.UpsertCustomTourQuoteParams {
	return sqlstore.UpsertCustomTourQuoteParams{
		ID:          q.ID,
		RequestID:   requestID,
		GuideID:     q.GuideID,
		AmountCents: q.AmountCents,
		Message:     q.Message,
		Itinerary:   q.Itinerary,
		CreatedAt:   pgconv.TimeToPgtype(q.CreatedAt),
		UpdatedAt:   pgconv.TimeToPgtype(q.UpdatedAt),
	}
}

func BargainToInsertParams(requestID uuid.UUID, b customtour.Bargain) sqlstore.InsertCustomTourBargainParams {
	return sqlstore.InsertCustomTourBargainParams{
		ID:          b.ID,
		RequestID:   requestID,
		FromUserID:  b.FromUserID,
		AmountCents: b.AmountCents,
		Message:     b.Message,
		CreatedAt:   pgconv.TimeToPgtype(b.CreatedAt),
	}
}

func CustomTourFromRows(row sqlstore.CustomTourRequests, quotes []sqlstore.CustomTourQuotes, bargains []sqlstore.CustomTourBargains) (*customtour.Request, error) {
	status := customtour.Status(row.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("custom tour %s: %w: %q", row.ID, customtour.ErrInvalidStatus, row.Status)
	}

	qs := make([]customtour.Quote, 0, len(quotes))
	for _, q := range quotes {
		qs = append(qs, customtour.Quote{
			ID:          q.ID,
			GuideID:     q.GuideID,
			AmountCents: q.AmountCents,
			Message:     q.Message,
			Itinerary:   q.Itinerary,
			CreatedAt:   pgconv.TimeFromPgtype(q.CreatedAt),
			UpdatedAt:   pgconv.TimeFromPgtype(q.UpdatedAt),
		})
	}

	bs := make([]customtour.Bargain, 0, len(bargains))
	for _, b := range bargains {
		bs = append(bs, customtour.Bargain{
			ID:          b.ID,
			FromUserID:  b.FromUserID,
			AmountCents: b.AmountCents,
			Message:     b.Message,
			CreatedAt:   pgconv.TimeFromPgtype(b.CreatedAt),
		})
	}

	return customtour.ReconstructRequest(
		row.ID,
		row.UserID,
		customtour.Details{
			Destination: row.Destination,
			StartDate:   pgconv.DateFromPgtype(row.StartDate),
			EndDate:     pgconv.DateFromPgtype(row.EndDate),
			GroupSize:   int(row.GroupSize),
			BudgetCents: row.BudgetCents,
			Preferences: row.Preferences,
		},
		status,
		pgconv.UUIDPtrFromPgtype(row.AssignedGuideID),
		qs,
		bs,
		pgconv.UUIDPtrFromPgtype(row.AcceptedQuoteID),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
