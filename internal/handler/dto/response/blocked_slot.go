package response

import (
	"time"

	"room-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BlockedSlotResponse struct {
	ID        uuid.UUID `json:"id"`
	RoomID    uuid.UUID `json:"roomId"`
	RoomName  string    `json:"roomName"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromBlockedSlotView(v *queries.BlockedSlotView) (*BlockedSlotResponse, error) {
	var out BlockedSlotResponse
	if err := copier.Copy(&out, v); err != nil {
		return nil, err
	}
	return &out, nil
}

func FromBlockedSlotViews(vs []*queries.BlockedSlotView) ([]BlockedSlotResponse, error) {
	out := make([]BlockedSlotResponse, 0, len(vs))
	if len(vs) == 0 {
		return out, nil
	}
	if err := copier.Copy(&out, &vs); err != nil {
		return nil, err
	}
	return out, nil
}
