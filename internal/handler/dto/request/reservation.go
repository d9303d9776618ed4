package request

import (
	"time"

	"room-reservation/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	RoomID        uuid.UUID `json:"roomId" binding:"required"`
	StartTime     time.Time `json:"startTime" binding:"required"`
	EndTime       time.Time `json:"endTime" binding:"required"`
	Purpose       string    `json:"purpose" binding:"required,notblank,max=500"`
	AttendeeCount int       `json:"attendeeCount" binding:"required,min=1"`
}

func (r CreateReservationRequest) ToInput() commands.SubmitReservationInput {
	return commands.SubmitReservationInput{
		RoomID:        r.RoomID,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		Purpose:       r.Purpose,
		AttendeeCount: r.AttendeeCount,
	}
}

// RejectReservationRequest leaves the blank check to the domain so a missing
// reason reports the same error however it is sent.
type RejectReservationRequest struct {
	Reason string `json:"reason"`
}

type ListReservationsQuery struct {
	Status *string `form:"status" binding:"omitempty,oneof=MENUNGGU DISETUJUI DITOLAK DIBATALKAN"`
	Limit  int     `form:"limit" binding:"omitempty,min=1,max=100"`
	After  string  `form:"after"`
}

type AvailabilityQuery struct {
	Start time.Time `form:"start" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	End   time.Time `form:"end" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
}

type ScheduleQuery struct {
	Date string `form:"date" binding:"required,datetime=2006-01-02"`
}

type PageQuery struct {
	Limit int    `form:"limit" binding:"omitempty,min=1,max=100"`
	After string `form:"after"`
}
