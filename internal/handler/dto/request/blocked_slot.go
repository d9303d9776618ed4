package request

import (
	"time"

	"room-reservation/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBlockedSlotRequest struct {
	RoomID    uuid.UUID `json:"roomId" binding:"required"`
	StartTime time.Time `json:"startTime" binding:"required"`
	EndTime   time.Time `json:"endTime" binding:"required"`
	Reason    string    `json:"reason" binding:"required,notblank,max=255"`
}

func (r CreateBlockedSlotRequest) ToInput() commands.CreateBlockedSlotInput {
	return commands.CreateBlockedSlotInput{
		RoomID:    r.RoomID,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Reason:    r.Reason,
	}
}

// Query-string room filters bind as text; the form binder cannot fill a uuid.UUID.
type ListBlockedSlotsQuery struct {
	RoomID string `form:"roomId" binding:"omitempty,uuid"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

func (q ListBlockedSlotsQuery) Room() (*uuid.UUID, error) {
	return optionalUUID(q.RoomID)
}

type ReportQuery struct {
	From   *time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To     *time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
	RoomID string     `form:"roomId" binding:"omitempty,uuid"`
}

func (q ReportQuery) Room() (*uuid.UUID, error) {
	return optionalUUID(q.RoomID)
}

func optionalUUID(raw string) (*uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
