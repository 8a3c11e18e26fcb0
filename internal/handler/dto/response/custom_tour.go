package response

import (
	"time"

	"travel-booking/internal/usecase/commands"
	"travel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type QuoteResponse struct {
	ID          uuid.UUID `json:"id"`
	GuideID     uuid.UUID `json:"guideId"`
	AmountCents int64     `json:"amountCents"`
	Message     string    `json:"message,omitempty"`
	Itinerary   string    `json:"itinerary,omitempty"`
	Accepted    bool      `json:"accepted"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type BargainResponse struct {
	ID          uuid.UUID `json:"id"`
	FromUserID  uuid.UUID `json:"fromUserId"`
	AmountCents int64     `json:"amountCents"`
	Message     string    `json:"message,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CustomTourResponse struct {
	ID              uuid.UUID         `json:"id"`
	UserID          uuid.UUID         `json:"userId"`
	Destination     string            `json:"destination"`
	StartDate       time.Time         `json:"startDate"`
	EndDate         time.Time         `json:"endDate"`
	GroupSize       int               `json:"groupSize"`
	BudgetCents     int64             `json:"budgetCents"`
	Preferences     string            `json:"preferences,omitempty"`
	Status          string            `json:"status"`
	AssignedGuideID *uuid.UUID        `json:"assignedGuideId,omitempty"`
	AcceptedQuoteID *uuid.UUID        `json:"acceptedQuoteId,omitempty"`
	Quotes          []QuoteResponse   `json:"quotes"`
	Bargains        []BargainResponse `json:"bargains"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

func FromCustomTourView(v *queries.CustomTourView) (*CustomTourResponse, error) {
	res := CustomTourResponse{
		Quotes:   []QuoteResponse{},
		Bargains: []BargainResponse{},
	}
	if err := copier.CopyWithOption(&res, v, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	return &res, nil
}

// CustomTourActionResponse wraps the request after a negotiation step. alreadyFinal marks a
// reject or cancel that hit a closed request.
type CustomTourActionResponse struct {
	Request      *CustomTourResponse `json:"request"`
	AlreadyFinal bool                `json:"alreadyFinal"`
}

func FromCustomTourResult(r *commands.CustomTourResult) (*CustomTourActionResponse, error) {
	view := queries.NewCustomTourView(r.Request)
	req, err := FromCustomTourView(&view)
	if err != nil {
		return nil, err
	}
	return &CustomTourActionResponse{
		Request:      req,
		AlreadyFinal: r.Outcome.AlreadyFinal,
	}, nil
}
