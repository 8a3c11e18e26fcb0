package commands

import (
	"context"
	"log/slog"
	"time"

	"travel-booking/internal/domain/customtour"
	"travel-booking/internal/domain/user"
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type QuoteInput struct {
	AmountCents int64
	Message     string
	Itinerary   string
}

type BargainInput struct {
	AmountCents int64
	Message     string
}

// CustomTourResult carries the request after the command. Outcome is only set by
// reject and cancel.
type CustomTourResult struct {
	Request *customtour.Request
	Outcome customtour.Outcome
}

type CustomTourCommands interface {
	CreateRequest(ctx context.Context, actor user.Actor, details customtour.Details) (*customtour.Request, error)
	AssignGuide(ctx context.Context, actor user.Actor, requestID, guideID uuid.UUID) (*CustomTourResult, error)
	SubmitQuote(ctx context.Context, actor user.Actor, requestID uuid.UUID, in QuoteInput) (*CustomTourResult, error)
	UpdateQuote(ctx context.Context, actor user.Actor, requestID uuid.UUID, in QuoteInput) (*CustomTourResult, error)
	SubmitBargain(ctx context.Context, actor user.Actor, requestID uuid.UUID, in BargainInput) (*CustomTourResult, error)
	AcceptQuote(ctx context.Context, actor user.Actor, requestID, quoteID uuid.UUID) (*CustomTourResult, error)
	RejectRequest(ctx context.Context, actor user.Actor, requestID uuid.UUID) (*CustomTourResult, error)
	CancelRequest(ctx context.Context, actor user.Actor, requestID uuid.UUID) (*CustomTourResult, error)
}

type customTourUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCustomTourCommands(uow shared.UnitOfWork, clk clock.Clock) CustomTourCommands {
	return &customTourUseCaseImpl{uow: uow, clock: clk}
}

// notice is the notification emitted by a mutation. A nil notice means nothing changed.
type notice struct {
	topic string
	event shared.NotificationEvent
}

func (uc *customTourUseCaseImpl) CreateRequest(ctx context.Context, actor user.Actor, details customtour.Details) (*customtour.Request, error) {
	req, err := customtour.NewRequest(actor.ID, details, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.CustomTours().Create(ctx, tx.DB(), req); err != nil {
			return err
		}
		// unassigned requests go to the operations mailbox
		return enqueue(ctx, tx, shared.TopicCustomTourRequested, shared.NotificationEvent{
			SubjectID: req.ID(),
			Status:    req.Status().String(),
			Summary:   req.Details().Destination,
		}, req.CreatedAt())
	})
	if err != nil {
		return nil, translate(err)
	}

	slog.Info("custom tour requested", "request_id", req.ID(), "user_id", actor.ID)
	return req, nil
}

// AssignGuide resolves the assignee's role before touching the request.
func (uc *customTourUseCaseImpl) AssignGuide(ctx context.Context, actor user.Actor, requestID, guideID uuid.UUID) (*CustomTourResult, error) {
	if !actor.IsAdmin() {
		return nil, customtour.ErrForbidden
	}
	assignee, err := uc.uow.CommandReads().UserByID(ctx, guideID)
	if err != nil {
		return nil, translate(err)
	}
	guide := user.NewActor(assignee.ID(), assignee.Role())

	return uc.mutate(ctx, "assign guide", requestID, func(req *customtour.Request, now time.Time) (*notice, error) {
		if err := req.AssignGuide(actor, guide, now); err != nil {
			return nil, err
		}
		return &notice{topic: shared.TopicCustomTourGuide, event: shared.NotificationEvent{
			RecipientID: guideID,
			SubjectID:   req.ID(),
			Status:      req.Status().String(),
			Summary:     req.Details().Destination,
		}}, nil
	})
}

func (uc *customTourUseCaseImpl) SubmitQuote(ctx context.Context, actor user.Actor, requestID uuid.UUID, in QuoteInput) (*CustomTourResult, error) {
	return uc.mutate(ctx, "submit quote", requestID, func(req *customtour.Request, now time.Time) (*notice, error) {
		if _, err := req.SubmitQuote(actor, in.AmountCents, in.Message, in.Itinerary, now); err != nil {
			return nil, err
		}
		return ownerNotice(req, shared.TopicCustomTourQuoted), nil
	})
}

func (uc *customTourUseCaseImpl) UpdateQuote(ctx context.Context, actor user.Actor, requestID uuid.UUID, in QuoteInput) (*CustomTourResult, error) {
	return uc.mutate(ctx, "update quote", requestID, func(req *customtour.Request, now time.Time) (*notice, error) {
		if _, err := req.UpdateQuote(actor, in.AmountCents, in.Message, now); err != nil {
			return nil, err
		}
		return ownerNotice(req, shared.TopicCustomTourQuoted), nil
	})
}

func (uc *customTourUseCaseImpl) SubmitBargain(ctx context.Context, actor user.Actor, requestID uuid.UUID, in BargainInput) (*CustomTourResult, error) {
	return uc.mutate(ctx, "submit bargain", requestID, func(req *customtour.Request, now time.Time) (*notice, error) {
		if _, err := req.SubmitBargain(actor, in.AmountCents, in.Message, now); err != nil {
			return nil, err
		}
		return guideNotice(req, shared.TopicCustomTourBargained), nil
	})
}

func (uc *customTourUseCaseImpl) AcceptQuote(ctx context.Context, actor user.Actor, requestID, quoteID uuid.UUID) (*CustomTourResult, error) {
	return uc.mutate(ctx, "accept quote", requestID, func(req *customtour.Request, now time.Time) (*notice, error) {
		if err := req.AcceptQuote(actor, quoteID, now); err != nil {
			return nil, err
		}
		n := guideNotice(req, shared.TopicCustomTourClosed)
		if q, ok := req.AcceptedQuote(); ok {
			n.event.RecipientID = q.GuideID
		}
		return n, nil
	})
}

func (uc *customTourUseCaseImpl) RejectRequest(ctx context.Context, actor user.Actor, requestID uuid.UUID) (*CustomTourResult, error) {
	return uc.close(ctx, "reject request", requestID, func(req *customtour.Request, now time.Time) (customtour.Outcome, error) {
		return req.Reject(actor, now)
	})
}

func (uc *customTourUseCaseImpl) CancelRequest(ctx context.Context, actor user.Actor, requestID uuid.UUID) (*CustomTourResult, error) {
	return uc.close(ctx, "cancel request", requestID, func(req *customtour.Request, now time.Time) (customtour.Outcome, error) {
		return req.Cancel(actor, now)
	})
}

func (uc *customTourUseCaseImpl) close(
	ctx context.Context,
	op string,
	requestID uuid.UUID,
	fn func(req *customtour.Request, now time.Time) (customtour.Outcome, error),
) (*CustomTourResult, error) {
	var outcome customtour.Outcome
	res, err := uc.mutate(ctx, op, requestID, func(req *customtour.Request, now time.Time) (*notice, error) {
		o, err := fn(req, now)
		if err != nil {
			return nil, err
		}
		outcome = o
		if o.AlreadyFinal {
			return nil, nil
		}
		return guideNotice(req, shared.TopicCustomTourClosed), nil
	})
	if err != nil {
		return nil, err
	}
	res.Outcome = outcome
	return res, nil
}

// mutate locks the request, applies fn and persists the result with its notification.
func (uc *customTourUseCaseImpl) mutate(
	ctx context.Context,
	op string,
	requestID uuid.UUID,
	fn func(req *customtour.Request, now time.Time) (*notice, error),
) (*CustomTourResult, error) {
	var req *customtour.Request
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		req, err = tx.CustomTours().FindForUpdate(ctx, tx.DB(), requestID)
		if err != nil {
			return err
		}

		now := uc.clock.Now()
		n, err := fn(req, now)
		if err != nil || n == nil {
			return err
		}
		if err = tx.CustomTours().Save(ctx, tx.DB(), req); err != nil {
			return err
		}
		return enqueue(ctx, tx, n.topic, n.event, now)
	})
	if err != nil {
		return nil, translate(err)
	}

	slog.Info("custom tour "+op, "request_id", requestID, "status", req.Status())
	return &CustomTourResult{Request: req}, nil
}

func ownerNotice(req *customtour.Request, topic string) *notice {
	return &notice{topic: topic, event: shared.NotificationEvent{
		RecipientID: req.UserID(),
		SubjectID:   req.ID(),
		Status:      req.Status().String(),
	}}
}

// guideNotice addresses the assigned guide, or operations when none is assigned.
func guideNotice(req *customtour.Request, topic string) *notice {
	n := &notice{topic: topic, event: shared.NotificationEvent{
		SubjectID: req.ID(),
		Status:    req.Status().String(),
	}}
	if g := req.AssignedGuideID(); g != nil {
		n.event.RecipientID = *g
	}
	return n
}
