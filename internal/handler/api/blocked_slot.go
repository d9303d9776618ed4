package api

import (
	"net/http"

	reqdto "room-reservation/internal/handler/dto/request"
	resdto "room-reservation/internal/handler/dto/response"
	"room-reservation/internal/handler/httperr"
	"room-reservation/internal/usecase/commands"
	"room-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BlockedSlotHandler struct {
	cmds commands.BlockedSlotCommands
	q    queries.BlockedSlotQueries
}

func NewBlockedSlotHandler(cmds commands.BlockedSlotCommands, q queries.BlockedSlotQueries) *BlockedSlotHandler {
	return &BlockedSlotHandler{cmds: cmds, q: q}
}

// @Summary List blocked slots
// @Description Newest first, optionally for one room
// @Tags blocked-slots
// @Produce json
// @Security BearerAuth
// @Param roomId query string false "Room ID"
// @Param limit query int false "Maximum rows"
// @Success 200 {array} resdto.BlockedSlotResponse
// @Router /blocked-slots [get]
func (h *BlockedSlotHandler) List(c *gin.Context) {
	var query reqdto.ListBlockedSlotsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithBindError(c, err)
		return
	}
	roomID, err := query.Room()
	if err != nil {
		abortWithBindError(c, err)
		return
	}

	slots, err := h.q.List(c.Request.Context(), roomID, queries.ValidateLimit(query.Limit))
	if err != nil {
		abortWithError(c, err)
		return
	}
	out, err := resdto.FromBlockedSlotViews(slots)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Create blocked slot
// @Description Blocks a room for maintenance. Existing reservations are not touched.
// @Tags blocked-slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBlockedSlotRequest true "Blocked slot"
// @Success 201 {object} resdto.BlockedSlotResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /blocked-slots [post]
func (h *BlockedSlotHandler) Create(c *gin.Context) {
	var req reqdto.CreateBlockedSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		abortWithError(c, err)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load blocked slot", nil)
		return
	}
	out, err := resdto.FromBlockedSlotView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusCreated, out)
}

// @Summary Delete blocked slot
// @Tags blocked-slots
// @Security BearerAuth
// @Param id path string true "Blocked slot ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /blocked-slots/{id} [delete]
func (h *BlockedSlotHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
