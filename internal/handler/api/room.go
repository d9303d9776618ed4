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

// CacheFlusher drops cached room reads after a room write.
type CacheFlusher interface {
	Flush()
}

type RoomHandler struct {
	cmds         commands.RoomCommands
	q            queries.RoomQueries
	availability queries.AvailabilityQueries
	schedule     queries.ScheduleQueries
	cache        CacheFlusher
}

func NewRoomHandler(
	cmds commands.RoomCommands,
	q queries.RoomQueries,
	availability queries.AvailabilityQueries,
	schedule queries.ScheduleQueries,
	cache CacheFlusher,
) *RoomHandler {
	return &RoomHandler{
		cmds:         cmds,
		q:            q,
		availability: availability,
		schedule:     schedule,
		cache:        cache,
	}
}

// @Summary List rooms
// @Description Active rooms first, then by name
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param active query bool false "Only active rooms"
// @Success 200 {array} resdto.RoomResponse
// @Router /rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	var query reqdto.ListRoomsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithBindError(c, err)
		return
	}

	rooms, err := h.q.List(c.Request.Context(), query.Active != nil && *query.Active)
	if err != nil {
		abortWithError(c, err)
		return
	}
	out, err := resdto.FromRoomViews(rooms)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Get room
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id} [get]
func (h *RoomHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	h.respondRoom(c, http.StatusOK, view)
}

// @Summary Create room
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRoomRequest true "Room"
// @Success 201 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /rooms [post]
func (h *RoomHandler) Create(c *gin.Context) {
	var req reqdto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), req.ToAttributes())
	if err != nil {
		abortWithError(c, err)
		return
	}
	h.cache.Flush()

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load room", nil)
		return
	}
	h.respondRoom(c, http.StatusCreated, view)
}

// @Summary Update room
// @Description Partial update; omitted fields keep their value
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body reqdto.UpdateRoomRequest true "Changes"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /rooms/{id} [patch]
func (h *RoomHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	if err := h.cmds.Update(c.Request.Context(), id, req.ToPatch()); err != nil {
		abortWithError(c, err)
		return
	}
	h.cache.Flush()

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load room", nil)
		return
	}
	h.respondRoom(c, http.StatusOK, view)
}

// @Summary Delete room
// @Description Refused while reservations reference the room
// @Tags rooms
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /rooms/{id} [delete]
func (h *RoomHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}
	h.cache.Flush()
	c.Status(http.StatusNoContent)
}

// @Summary Check availability
// @Description Whether a slot could be submitted now. Pending requests never block.
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param start query string true "RFC3339 start"
// @Param end query string true "RFC3339 end"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id}/availability [get]
func (h *RoomHandler) Availability(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var query reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithBindError(c, err)
		return
	}

	view, err := h.availability.Check(c.Request.Context(), id, query.Start, query.End)
	if err != nil {
		abortWithError(c, err)
		return
	}
	out, err := resdto.FromAvailabilityView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Room schedule
// @Description Approved reservations and blocked slots on one campus-local date
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param date query string true "YYYY-MM-DD"
// @Success 200 {object} resdto.ScheduleResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id}/schedule [get]
func (h *RoomHandler) Schedule(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var query reqdto.ScheduleQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithBindError(c, err)
		return
	}

	sched, err := h.schedule.RoomDay(c.Request.Context(), id, query.Date)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomSchedule(sched))
}

func (h *RoomHandler) respondRoom(c *gin.Context, status int, view *queries.RoomView) {
	out, err := resdto.FromRoomView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(status, out)
}
