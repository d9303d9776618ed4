package queries

import (
	"context"
	"time"

	"room-reservation/internal/domain/reservation"

	"github.com/google/uuid"
)

// ReportFilter bounds a summary by reservation start time. Nil fields are open.
type ReportFilter struct {
	From   *time.Time
	To     *time.Time
	RoomID *uuid.UUID
}

type ReportReadStore interface {
	CountByStatus(ctx context.Context, filter ReportFilter) ([]StatusCount, error)
	CountByRoom(ctx context.Context, filter ReportFilter) ([]RoomStatusRow, error)
}

// RoomStatusRow is one (room, status) bucket as counted by the store.
type RoomStatusRow struct {
	RoomID   uuid.UUID
	RoomName string
	Status   string
	Total    int64
}

type ReportQueries interface {
	Summary(ctx context.Context, filter ReportFilter) (*ReportSummary, error)
}

type reportQueriesImpl struct {
	repo ReportReadStore
}

func NewReportQueries(repo ReportReadStore) ReportQueries {
	return &reportQueriesImpl{repo: repo}
}

var reportStatuses = []reservation.Status{
	reservation.StatusPending,
	reservation.StatusApproved,
	reservation.StatusRejected,
	reservation.StatusCancelled,
}

func (q *reportQueriesImpl) Summary(ctx context.Context, filter ReportFilter) (*ReportSummary, error) {
	if filter.From != nil && filter.To != nil && !filter.From.Before(*filter.To) {
		return nil, ErrInvalidRange
	}

	statusRows, err := q.repo.CountByStatus(ctx, filter)
	if err != nil {
		return nil, err
	}
	roomRows, err := q.repo.CountByRoom(ctx, filter)
	if err != nil {
		return nil, err
	}

	summary := &ReportSummary{
		From:     filter.From,
		To:       filter.To,
		RoomID:   filter.RoomID,
		ByStatus: fillStatuses(statusRows),
		ByRoom:   []RoomStatusCount{},
	}
	for _, c := range summary.ByStatus {
		summary.Total += c.Total
	}

	index := map[uuid.UUID]int{}
	for _, row := range roomRows {
		i, ok := index[row.RoomID]
		if !ok {
			i = len(summary.ByRoom)
			index[row.RoomID] = i
			summary.ByRoom = append(summary.ByRoom, RoomStatusCount{RoomID: row.RoomID, RoomName: row.RoomName})
		}
		bucket := &summary.ByRoom[i]
		bucket.Counts = append(bucket.Counts, StatusCount{Status: row.Status, Total: row.Total})
		bucket.Total += row.Total
	}
	for i := range summary.ByRoom {
		summary.ByRoom[i].Counts = fillStatuses(summary.ByRoom[i].Counts)
	}

	return summary, nil
}

// fillStatuses returns one entry per status in lifecycle order, zero when absent.
func fillStatuses(counts []StatusCount) []StatusCount {
	byStatus := make(map[string]int64, len(counts))
	for _, c := range counts {
		byStatus[c.Status] += c.Total
	}
	out := make([]StatusCount, 0, len(reportStatuses))
	for _, s := range reportStatuses {
		out = append(out, StatusCount{Status: s.String(), Total: byStatus[s.String()]})
	}
	return out
}
