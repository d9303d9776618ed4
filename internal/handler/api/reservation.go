package api

import (
	"net/http"

	"room-reservation/internal/domain/reservation"
	reqdto "room-reservation/internal/handler/dto/request"
	resdto "room-reservation/internal/handler/dto/response"
	"room-reservation/internal/handler/httperr"
	"room-reservation/internal/handler/middleware"
	"room-reservation/internal/usecase/commands"
	"room-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Submit reservation
// @Description Submit a pending reservation request for a room
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Submit(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	id, err := h.cmds.Submit(c.Request.Context(), actor.UserID, req.ToInput())
	if err != nil {
		abortWithError(c, err)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load reservation", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}

// @Summary Get reservation
// @Description Get reservation by ID (owner or admin)
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary List my reservations
// @Description The caller's reservations, newest first
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param status query string false "MENUNGGU, DISETUJUI, DITOLAK or DIBATALKAN"
// @Param limit query int false "Page size"
// @Param after query string false "Cursor from the previous page"
// @Success 200 {object} resdto.Page[resdto.ReservationListResponse]
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /reservations [get]
func (h *ReservationHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	var query reqdto.ListReservationsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithBindError(c, err)
		return
	}

	items, next, err := h.q.ListMine(c.Request.Context(), userID, query.Status, cursorOf(query.After), queries.ValidateLimit(query.Limit))
	if err != nil {
		abortWithError(c, err)
		return
	}

	out := make([]*resdto.ReservationListResponse, 0, len(items))
	for _, it := range items {
		out = append(out, resdto.FromReservationListItem(it))
	}
	c.JSON(http.StatusOK, resdto.NewPage(out, next))
}

// @Summary Pending queue
// @Description Pending reservations awaiting a decision, oldest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size"
// @Param after query string false "Cursor from the previous page"
// @Success 200 {object} resdto.Page[resdto.PendingReservationResponse]
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/reservations/pending [get]
func (h *ReservationHandler) ListPending(c *gin.Context) {
	var query reqdto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithBindError(c, err)
		return
	}

	items, next, err := h.q.ListPending(c.Request.Context(), cursorOf(query.After), queries.ValidateLimit(query.Limit))
	if err != nil {
		abortWithError(c, err)
		return
	}

	out := make([]*resdto.PendingReservationResponse, 0, len(items))
	for _, it := range items {
		out = append(out, resdto.FromPendingItem(it))
	}
	c.JSON(http.StatusOK, resdto.NewPage(out, next))
}

// @Summary Approve reservation
// @Description Approves a pending reservation and rejects every overlapping pending request of the same room
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ApproveResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/approve [post]
func (h *ReservationHandler) Approve(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	result, err := h.cmds.Approve(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), actor, result.ReservationID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load reservation", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.ApproveResponse{
		Reservation:        resdto.FromReservationView(view),
		CascadeRejectedIDs: result.CascadeRejectedIDs,
	})
}

// @Summary Reject reservation
// @Description Rejects a pending reservation with a reason. Other requests are untouched.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.RejectReservationRequest true "Rejection reason"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/reject [post]
func (h *ReservationHandler) Reject(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	var req reqdto.RejectReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	if err := h.cmds.Reject(c.Request.Context(), id, req.Reason); err != nil {
		abortWithError(c, err)
		return
	}
	h.respondWithView(c, actor, id)
}

// @Summary Cancel reservation
// @Description Cancels a pending or approved reservation whose start is still in the future (owner or admin)
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/cancel [post]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	if err := h.cmds.Cancel(c.Request.Context(), actor, id); err != nil {
		abortWithError(c, err)
		return
	}
	h.respondWithView(c, actor, id)
}

func (h *ReservationHandler) respondWithView(c *gin.Context, actor reservation.Actor, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load reservation", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func cursorOf(after string) *queries.Cursor {
	if after == "" {
		return nil
	}
	return &queries.Cursor{After: after}
}
