package request

import (
	"room-reservation/internal/domain/room"
	"room-reservation/internal/pkg/patch"
	"room-reservation/internal/usecase/commands"
)

type CreateRoomRequest struct {
	Name        string `json:"name" binding:"required,notblank,max=255"`
	Description string `json:"description" binding:"max=2000"`
	Capacity    int    `json:"capacity" binding:"required,min=1"`
	Location    string `json:"location" binding:"required,notblank,max=255"`
	ImageURL    string `json:"imageUrl" binding:"omitempty,url"`
	IsActive    *bool  `json:"isActive"`
}

func (r CreateRoomRequest) ToAttributes() room.Attributes {
	return room.Attributes{
		Name:        r.Name,
		Description: r.Description,
		Capacity:    r.Capacity,
		Location:    r.Location,
		ImageURL:    r.ImageURL,
		IsActive:    patch.Coalesce(r.IsActive, true),
	}
}

type UpdateRoomRequest struct {
	Name        *string `json:"name" binding:"omitempty,notblank,max=255"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	Capacity    *int    `json:"capacity" binding:"omitempty,min=1"`
	Location    *string `json:"location" binding:"omitempty,notblank,max=255"`
	ImageURL    *string `json:"imageUrl" binding:"omitempty"`
	IsActive    *bool   `json:"isActive"`
}

func (r UpdateRoomRequest) ToPatch() commands.RoomPatch {
	return commands.RoomPatch{
		Name:        r.Name,
		Description: r.Description,
		Capacity:    r.Capacity,
		Location:    r.Location,
		ImageURL:    r.ImageURL,
		IsActive:    r.IsActive,
	}
}

type ListRoomsQuery struct {
	Active *bool `form:"active"`
}
