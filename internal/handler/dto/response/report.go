package response

import (
	"time"

	"room-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type StatusCountResponse struct {
	Status string `json:"status"`
	Total  int64  `json:"total"`
}

type RoomStatusCountResponse struct {
	RoomID   uuid.UUID             `json:"roomId"`
	RoomName string                `json:"roomName"`
	Counts   []StatusCountResponse `json:"counts"`
	Total    int64                 `json:"total"`
}

type ReportSummaryResponse struct {
	From     *time.Time                `json:"from,omitempty"`
	To       *time.Time                `json:"to,omitempty"`
	RoomID   *uuid.UUID                `json:"roomId,omitempty"`
	ByStatus []StatusCountResponse     `json:"byStatus"`
	ByRoom   []RoomStatusCountResponse `json:"byRoom"`
	Total    int64                     `json:"total"`
}

func FromReportSummary(v *queries.ReportSummary) (*ReportSummaryResponse, error) {
	out := ReportSummaryResponse{
		ByStatus: []StatusCountResponse{},
		ByRoom:   []RoomStatusCountResponse{},
	}
	if err := copier.CopyWithOption(&out, v, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	if out.ByRoom == nil {
		out.ByRoom = []RoomStatusCountResponse{}
	}
	return &out, nil
}
