package request

import (
	"travel-booking/internal/domain/customtour"
	"travel-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateCustomTourRequest struct {
	Destination string `json:"destination" binding:"required,max=255"`
	StartDate   *Date  `json:"startDate" binding:"required"`
	EndDate     *Date  `json:"endDate" binding:"required"`
	GroupSize   int    `json:"groupSize" binding:"required,min=1"`
	BudgetCents int64  `json:"budgetCents" binding:"min=0"`
	Preferences string `json:"preferences" binding:"max=2000"`
}

func (r *CreateCustomTourRequest) ToDomain() customtour.Details {
	return customtour.Details{
		Destination: r.Destination,
		StartDate:   r.StartDate.Time,
		EndDate:     r.EndDate.Time,
		GroupSize:   r.GroupSize,
		BudgetCents: r.BudgetCents,
		Preferences: r.Preferences,
	}
}

type AssignGuideRequest struct {
	GuideID uuid.UUID `json:"guideId" binding:"required"`
}

type QuoteRequest struct {
	AmountCents *int64 `json:"amountCents" binding:"required,min=0"`
	Message     string `json:"message" binding:"max=2000"`
	Itinerary   string `json:"itinerary" binding:"max=10000"`
}

func (r *QuoteRequest) ToInput() commands.QuoteInput {
	return commands.QuoteInput{
		AmountCents: *r.AmountCents,
		Message:     r.Message,
		Itinerary:   r.Itinerary,
	}
}

type BargainRequest struct {
	AmountCents *int64 `json:"amountCents" binding:"required,min=0"`
	Message     string `json:"message" binding:"max=2000"`
}

func (r *BargainRequest) ToInput() commands.BargainInput {
	return commands.BargainInput{
		AmountCents: *r.AmountCents,
		Message:     r.Message,
	}
}

type AcceptQuoteRequest struct {
	QuoteID uuid.UUID `json:"quoteId" binding:"required"`
}
