package response

import (
	"time"

	"room-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RoomResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Capacity    int32     `json:"capacity"`
	Location    string    `json:"location"`
	ImageURL    string    `json:"imageUrl"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type AvailabilityResponse struct {
	RoomID    uuid.UUID `json:"roomId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Available bool      `json:"available"`
	Conflict  string    `json:"conflict,omitempty"`
}

type ScheduleEntryResponse struct {
	Kind      string    `json:"kind"`
	ID        uuid.UUID `json:"id"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Label     string    `json:"label"`
	UserName  *string   `json:"userName,omitempty"`
}

type ScheduleResponse struct {
	RoomID  uuid.UUID               `json:"roomId"`
	Date    string                  `json:"date"`
	Entries []ScheduleEntryResponse `json:"entries"`
}

func FromRoomView(v *queries.RoomView) (*RoomResponse, error) {
	var out RoomResponse
	if err := copier.Copy(&out, v); err != nil {
		return nil, err
	}
	return &out, nil
}

func FromRoomViews(vs []*queries.RoomView) ([]RoomResponse, error) {
	out := make([]RoomResponse, 0, len(vs))
	if len(vs) == 0 {
		return out, nil
	}
	if err := copier.Copy(&out, &vs); err != nil {
		return nil, err
	}
	return out, nil
}

func FromAvailabilityView(v *queries.AvailabilityView) (*AvailabilityResponse, error) {
	var out AvailabilityResponse
	if err := copier.Copy(&out, v); err != nil {
		return nil, err
	}
	return &out, nil
}

func FromRoomSchedule(v *queries.RoomSchedule) *ScheduleResponse {
	out := &ScheduleResponse{
		RoomID:  v.RoomID,
		Date:    v.Date,
		Entries: make([]ScheduleEntryResponse, 0, len(v.Entries)),
	}
	for _, e := range v.Entries {
		out.Entries = append(out.Entries, ScheduleEntryResponse{
			Kind:      string(e.Kind),
			ID:        e.ID,
			StartTime: e.StartTime,
			EndTime:   e.EndTime,
			Label:     e.Label,
			UserName:  e.UserName,
		})
	}
	return out
}
