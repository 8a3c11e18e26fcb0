package api

import (
	"net/http"

	reqdto "travel-booking/internal/handler/dto/request"
	resdto "travel-booking/internal/handler/dto/response"
	"travel-booking/internal/usecase/commands"
	"travel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	cmds commands.RoomCommands
}

func NewRoomHandler(cmds commands.RoomCommands) *RoomHandler {
	return &RoomHandler{cmds: cmds}
}

// @Summary Assign a physical room
// @Description Admin only. Moves the booking off its previous room, if any.
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.AssignRoomRequest true "Room to assign"
// @Success 200 {object} resdto.RoomAssignmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/{id}/room [put]
func (h *RoomHandler) AssignRoom(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	bookingID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req reqdto.AssignRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request")
		return
	}

	result, err := h.cmds.AssignRoom(c.Request.Context(), actor, bookingID, req.RoomID)
	if err != nil {
		respondError(c, err)
		return
	}
	res, err := resdto.FromRoomAssignment(result)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Toggle room maintenance
// @Description Admin only. An occupied room cannot be put under maintenance.
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body reqdto.SetMaintenanceRequest true "Maintenance flag"
// @Success 200 {object} resdto.RoomResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/rooms/{id}/maintenance [put]
func (h *RoomHandler) SetMaintenance(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	roomID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req reqdto.SetMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request")
		return
	}

	room, err := h.cmds.SetRoomMaintenance(c.Request.Context(), actor, roomID, *req.Enabled)
	if err != nil {
		respondError(c, err)
		return
	}
	view := queries.NewRoomView(room)
	res, err := resdto.FromRoomView(&view)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
