package response

import (
	"time"

	"room-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"userId"`
	UserName         string    `json:"userName"`
	UserEmail        string    `json:"userEmail"`
	RoomID           uuid.UUID `json:"roomId"`
	RoomName         string    `json:"roomName"`
	StartTime        time.Time `json:"startTime"`
	EndTime          time.Time `json:"endTime"`
	Purpose          string    `json:"purpose"`
	AttendeeCount    int32     `json:"attendeeCount"`
	Status           string    `json:"status"`
	RejectionReason  *string   `json:"rejectionReason,omitempty"`
	RejectedBySystem bool      `json:"rejectedBySystem"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type ReservationListResponse struct {
	ID              uuid.UUID `json:"id"`
	RoomID          uuid.UUID `json:"roomId"`
	RoomName        string    `json:"roomName"`
	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
	Purpose         string    `json:"purpose"`
	AttendeeCount   int32     `json:"attendeeCount"`
	Status          string    `json:"status"`
	RejectionReason *string   `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

type PendingReservationResponse struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"userId"`
	UserName      string    `json:"userName"`
	RoomID        uuid.UUID `json:"roomId"`
	RoomName      string    `json:"roomName"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
	Purpose       string    `json:"purpose"`
	AttendeeCount int32     `json:"attendeeCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ApproveResponse carries the approved reservation and the ids of the
// pending requests the approval rejected.
type ApproveResponse struct {
	Reservation        *ReservationResponse `json:"reservation"`
	CascadeRejectedIDs []uuid.UUID          `json:"cascadeRejectedIds"`
}

type Page[T any] struct {
	Items      []T     `json:"items"`
	NextCursor *string `json:"nextCursor,omitempty"`
}

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:               rm.ID,
		UserID:           rm.UserID,
		UserName:         rm.UserName,
		UserEmail:        rm.UserEmail,
		RoomID:           rm.RoomID,
		RoomName:         rm.RoomName,
		StartTime:        rm.StartTime,
		EndTime:          rm.EndTime,
		Purpose:          rm.Purpose,
		AttendeeCount:    rm.AttendeeCount,
		Status:           rm.Status,
		RejectionReason:  rm.RejectionReason,
		RejectedBySystem: rm.RejectedBySystem,
		CreatedAt:        rm.CreatedAt,
		UpdatedAt:        rm.UpdatedAt,
	}
}

func FromReservationListItem(rm *queries.ReservationListItem) *ReservationListResponse {
	return &ReservationListResponse{
		ID:              rm.ID,
		RoomID:          rm.RoomID,
		RoomName:        rm.RoomName,
		StartTime:       rm.StartTime,
		EndTime:         rm.EndTime,
		Purpose:         rm.Purpose,
		AttendeeCount:   rm.AttendeeCount,
		Status:          rm.Status,
		RejectionReason: rm.RejectionReason,
		CreatedAt:       rm.CreatedAt,
	}
}

func FromPendingItem(rm *queries.PendingItem) *PendingReservationResponse {
	return &PendingReservationResponse{
		ID:            rm.ID,
		UserID:        rm.UserID,
		UserName:      rm.UserName,
		RoomID:        rm.RoomID,
		RoomName:      rm.RoomName,
		StartTime:     rm.StartTime,
		EndTime:       rm.EndTime,
		Purpose:       rm.Purpose,
		AttendeeCount: rm.AttendeeCount,
		CreatedAt:     rm.CreatedAt,
	}
}

func NewPage[T any](items []T, next *queries.Cursor) Page[T] {
	p := Page[T]{Items: items}
	if p.Items == nil {
		p.Items = []T{}
	}
	if next != nil {
		p.NextCursor = &next.After
	}
	return p
}
