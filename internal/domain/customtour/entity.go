package customtour

import (
	"strings"
	"time"

	"travel-booking/internal/domain/user"

	"github.com/google/uuid"
)

// Request is a traveler's bespoke tour negotiation:
// pending -> assigned -> quoted <-> bargaining -> accepted | rejected | cancelled.
type Request struct {
	id              uuid.UUID
	userID          uuid.UUID
	details         Details
	status          Status
	assignedGuideID *uuid.UUID
	quotes          []Quote
	bargains        []Bargain
	acceptedQuoteID *uuid.UUID
	createdAt       time.Time
	updatedAt       time.Time
}

func NewRequest(userID uuid.UUID, details Details, now time.Time) (*Request, error) {
	details.Destination = strings.TrimSpace(details.Destination)
	details.Preferences = strings.TrimSpace(details.Preferences)
	if err := details.validate(); err != nil {
		return nil, err
	}
	return &Request{
		id:        uuid.New(),
		userID:    userID,
		details:   details,
		status:    StatusPending,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructRequest(
	id, userID uuid.UUID,
	details Details,
	status Status,
	assignedGuideID *uuid.UUID,
	quotes []Quote,
	bargains []Bargain,
	acceptedQuoteID *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Request {
	return &Request{
		id:              id,
		userID:          userID,
		details:         details,
		status:          status,
		assignedGuideID: assignedGuideID,
		quotes:          quotes,
		bargains:        bargains,
		acceptedQuoteID: acceptedQuoteID,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// AssignGuide is admin only and the assignee must hold the guide role. Reassigning an
// already assigned request replaces the guide.
func (r *Request) AssignGuide(actor, guide user.Actor, now time.Time) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	if guide.Role != user.RoleGuide {
		return ErrNotAGuide
	}
	if r.status != StatusPending && r.status != StatusAssigned {
		return ErrInvalidTransition
	}
	id := guide.ID
	r.assignedGuideID = &id
	r.status = StatusAssigned
	r.updatedAt = now
	return nil
}

func (r *Request) SubmitQuote(actor user.Actor, amountCents int64, message, itinerary string, now time.Time) (Quote, error) {
	if !r.isAssignedGuide(actor) {
		return Quote{}, ErrForbidden
	}
	if r.status != StatusAssigned && !r.status.inNegotiation() {
		return Quote{}, ErrInvalidTransition
	}
	if amountCents < 0 {
		return Quote{}, ErrNegativeAmount
	}
	if _, ok := r.QuoteByGuide(actor.ID); ok {
		return Quote{}, ErrDuplicateQuote
	}

	q := Quote{
		ID:          uuid.New(),
		GuideID:     actor.ID,
		AmountCents: amountCents,
		Message:     strings.TrimSpace(message),
		Itinerary:   strings.TrimSpace(itinerary),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.quotes = append(r.quotes, q)
	r.status = StatusQuoted
	r.updatedAt = now
	return q, nil
}

// UpdateQuote revises the assigned guide's own quote. The request status is left as is.
func (r *Request) UpdateQuote(actor user.Actor, amountCents int64, message string, now time.Time) (Quote, error) {
	if !r.isAssignedGuide(actor) {
		return Quote{}, ErrForbidden
	}
	idx := r.quoteIndexByGuide(actor.ID)
	if idx < 0 {
		return Quote{}, ErrQuoteNotFound
	}
	if !r.status.inNegotiation() {
		return Quote{}, ErrInvalidTransition
	}
	if amountCents < 0 {
		return Quote{}, ErrNegativeAmount
	}

	q := &r.quotes[idx]
	q.AmountCents = amountCents
	if m := strings.TrimSpace(message); m != "" {
		q.Message = m
	}
	q.UpdatedAt = now
	r.updatedAt = now
	return *q, nil
}

func (r *Request) SubmitBargain(actor user.Actor, amountCents int64, message string, now time.Time) (Bargain, error) {
	if !r.isOwner(actor) {
		return Bargain{}, ErrForbidden
	}
	if !r.status.inNegotiation() {
		return Bargain{}, ErrInvalidTransition
	}
	if amountCents < 0 {
		return Bargain{}, ErrNegativeAmount
	}

	b := Bargain{
		ID:          uuid.New(),
		FromUserID:  actor.ID,
		AmountCents: amountCents,
		Message:     strings.TrimSpace(message),
		CreatedAt:   now,
	}
	r.bargains = append(r.bargains, b)
	r.status = StatusBargaining
	r.updatedAt = now
	return b, nil
}

func (r *Request) AcceptQuote(actor user.Actor, quoteID uuid.UUID, now time.Time) error {
	if !r.isOwner(actor) {
		return ErrForbidden
	}
	if !r.status.inNegotiation() {
		return ErrInvalidTransition
	}
	if _, ok := r.Quote(quoteID); !ok {
		return ErrQuoteNotFound
	}
	id := quoteID
	r.acceptedQuoteID = &id
	r.status = StatusAccepted
	r.updatedAt = now
	return nil
}

func (r *Request) Reject(actor user.Actor, now time.Time) (Outcome, error) {
	return r.close(actor, StatusRejected, now)
}

func (r *Request) Cancel(actor user.Actor, now time.Time) (Outcome, error) {
	return r.close(actor, StatusCancelled, now)
}

func (r *Request) close(actor user.Actor, target Status, now time.Time) (Outcome, error) {
	out := Outcome{From: r.status, To: r.status}
	if !r.isOwner(actor) {
		return out, ErrForbidden
	}
	if r.status.IsTerminal() {
		out.AlreadyFinal = true
		return out, nil
	}
	r.status = target
	r.updatedAt = now
	out.To = target
	return out, nil
}

// CanView grants read access to the owner, the assigned guide, any guide who quoted and admins.
func (r *Request) CanView(actor user.Actor) bool {
	if actor.IsAdmin() || r.isOwner(actor) || r.isAssignedGuide(actor) {
		return true
	}
	_, quoted := r.QuoteByGuide(actor.ID)
	return quoted
}

func (r *Request) isOwner(actor user.Actor) bool {
	return actor.ID == r.userID
}

func (r *Request) isAssignedGuide(actor user.Actor) bool {
	return r.assignedGuideID != nil && *r.assignedGuideID == actor.ID
}

func (r *Request) quoteIndexByGuide(guideID uuid.UUID) int {
	for i := range r.quotes {
		if r.quotes[i].GuideID == guideID {
			return i
		}
	}
	return -1
}

func (r *Request) QuoteByGuide(guideID uuid.UUID) (Quote, bool) {
	if i := r.quoteIndexByGuide(guideID); i >= 0 {
		return r.quotes[i], true
	}
	return Quote{}, false
}

func (r *Request) Quote(id uuid.UUID) (Quote, bool) {
	for _, q := range r.quotes {
		if q.ID == id {
			return q, true
		}
	}
	return Quote{}, false
}

func (r *Request) AcceptedQuote() (Quote, bool) {
	if r.acceptedQuoteID == nil {
		return Quote{}, false
	}
	return r.Quote(*r.acceptedQuoteID)
}

func (r *Request) ID() uuid.UUID               { return r.id }
func (r *Request) UserID() uuid.UUID           { return r.userID }
func (r *Request) Details() Details            { return r.details }
func (r *Request) Status() Status              { return r.status }
func (r *Request) AssignedGuideID() *uuid.UUID { return r.assignedGuideID }
func (r *Request) Quotes() []Quote             { return r.quotes }
func (r *Request) Bargains() []Bargain         { return r.bargains }
func (r *Request) AcceptedQuoteID() *uuid.UUID { return r.acceptedQuoteID }
func (r *Request) CreatedAt() time.Time        { return r.createdAt }
func (r *Request) UpdatedAt() time.Time        { return r.updatedAt }
