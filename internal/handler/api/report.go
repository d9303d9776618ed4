package api

import (
	"net/http"

	reqdto "room-reservation/internal/handler/dto/request"
	resdto "room-reservation/internal/handler/dto/response"
	"room-reservation/internal/handler/httperr"
	"room-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	q queries.ReportQueries
}

func NewReportHandler(q queries.ReportQueries) *ReportHandler {
	return &ReportHandler{q: q}
}

// @Summary Reservation summary
// @Description Counts per status and per room, filtered by reservation start
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param from query string false "RFC3339 lower bound"
// @Param to query string false "RFC3339 upper bound"
// @Param roomId query string false "Room ID"
// @Success 200 {object} resdto.ReportSummaryResponse
// @Failure 400 {object} httperr.Response
// @Router /admin/reports/summary [get]
func (h *ReportHandler) Summary(c *gin.Context) {
	var query reqdto.ReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithBindError(c, err)
		return
	}
	roomID, err := query.Room()
	if err != nil {
		abortWithBindError(c, err)
		return
	}

	summary, err := h.q.Summary(c.Request.Context(), queries.ReportFilter{
		From:   query.From,
		To:     query.To,
		RoomID: roomID,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	out, err := resdto.FromReportSummary(summary)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, out)
}
