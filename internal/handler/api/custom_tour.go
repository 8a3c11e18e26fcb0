package api

import (
	"context"
	"net/http"

	"travel-booking/internal/domain/user"
	reqdto "travel-booking/internal/handler/dto/request"
	resdto "travel-booking/internal/handler/dto/response"
	"travel-booking/internal/usecase/commands"
	"travel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CustomTourHandler struct {
	cmds commands.CustomTourCommands
	q    queries.CustomTourQueries
}

func NewCustomTourHandler(cmds commands.CustomTourCommands, q queries.CustomTourQueries) *CustomTourHandler {
	return &CustomTourHandler{cmds: cmds, q: q}
}

// @Summary Request a custom tour
// @Tags custom-tours
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCustomTourRequest true "Custom tour request"
// @Success 201 {object} resdto.CustomTourResponse
// @Failure 400 {object} httperr.Response
// @Router /api/custom-tours [post]
func (h *CustomTourHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req reqdto.CreateCustomTourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request")
		return
	}

	created, err := h.cmds.CreateRequest(c.Request.Context(), actor, req.ToDomain())
	if err != nil {
		respondError(c, err)
		return
	}
	view := queries.NewCustomTourView(created)
	res, err := resdto.FromCustomTourView(&view)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// @Summary Get custom tour request
// @Description Visible to the requester, the assigned guide, quoting guides and admins
// @Tags custom-tours
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.CustomTourResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/custom-tours/{id} [get]
func (h *CustomTourHandler) Get(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	res, err := resdto.FromCustomTourView(view)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Assign a guide
// @Tags custom-tours
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body reqdto.AssignGuideRequest true "Guide"
// @Success 200 {object} resdto.CustomTourActionResponse
// @Router /api/custom-tours/{id}/guide [put]
func (h *CustomTourHandler) AssignGuide(c *gin.Context) {
	var req reqdto.AssignGuideRequest
	h.run(c, &req, func(ctx context.Context, actor user.Actor, id uuid.UUID) (*commands.CustomTourResult, error) {
		return h.cmds.AssignGuide(ctx, actor, id, req.GuideID)
	})
}

// @Summary Submit a quote
// @Description Assigned guide only, one quote per guide
// @Tags custom-tours
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body reqdto.QuoteRequest true "Quote"
// @Success 200 {object} resdto.CustomTourActionResponse
// @Router /api/custom-tours/{id}/quotes [post]
func (h *CustomTourHandler) SubmitQuote(c *gin.Context) {
	var req reqdto.QuoteRequest
	h.run(c, &req, func(ctx context.Context, actor user.Actor, id uuid.UUID) (*commands.CustomTourResult, error) {
		return h.cmds.SubmitQuote(ctx, actor, id, req.ToInput())
	})
}

// @Summary Revise own quote
// @Tags custom-tours
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body reqdto.QuoteRequest true "Quote"
// @Success 200 {object} resdto.CustomTourActionResponse
// @Router /api/custom-tours/{id}/quotes [put]
func (h *CustomTourHandler) UpdateQuote(c *gin.Context) {
	var req reqdto.QuoteRequest
	h.run(c, &req, func(ctx context.Context, actor user.Actor, id uuid.UUID) (*commands.CustomTourResult, error) {
		return h.cmds.UpdateQuote(ctx, actor, id, req.ToInput())
	})
}

// @Summary Counter-offer
// @Description Requester only
// @Tags custom-tours
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body reqdto.BargainRequest true "Bargain"
// @Success 200 {object} resdto.CustomTourActionResponse
// @Router /api/custom-tours/{id}/bargains [post]
func (h *CustomTourHandler) SubmitBargain(c *gin.Context) {
	var req reqdto.BargainRequest
	h.run(c, &req, func(ctx context.Context, actor user.Actor, id uuid.UUID) (*commands.CustomTourResult, error) {
		return h.cmds.SubmitBargain(ctx, actor, id, req.ToInput())
	})
}

// @Summary Accept a quote
// @Tags custom-tours
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body reqdto.AcceptQuoteRequest true "Quote to accept"
// @Success 200 {object} resdto.CustomTourActionResponse
// @Router /api/custom-tours/{id}/accept [post]
func (h *CustomTourHandler) AcceptQuote(c *gin.Context) {
	var req reqdto.AcceptQuoteRequest
	h.run(c, &req, func(ctx context.Context, actor user.Actor, id uuid.UUID) (*commands.CustomTourResult, error) {
		return h.cmds.AcceptQuote(ctx, actor, id, req.QuoteID)
	})
}

// @Summary Reject the request
// @Tags custom-tours
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.CustomTourActionResponse
// @Router /api/custom-tours/{id}/reject [post]
func (h *CustomTourHandler) Reject(c *gin.Context) {
	h.run(c, nil, h.cmds.RejectRequest)
}

// @Summary Cancel the request
// @Tags custom-tours
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.CustomTourActionResponse
// @Router /api/custom-tours/{id}/cancel [post]
func (h *CustomTourHandler) Cancel(c *gin.Context) {
	h.run(c, nil, h.cmds.CancelRequest)
}

// run resolves the actor and path id, binds body when non-nil, then renders the command result.
func (h *CustomTourHandler) run(
	c *gin.Context,
	body any,
	fn func(ctx context.Context, actor user.Actor, id uuid.UUID) (*commands.CustomTourResult, error),
) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if body != nil {
		if err := c.ShouldBindJSON(body); err != nil {
			badRequest(c, err, "Invalid request")
			return
		}
	}

	result, err := fn(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	res, err := resdto.FromCustomTourResult(result)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
