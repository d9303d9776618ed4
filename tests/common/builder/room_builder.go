//go:build unit || e2e

package builder

import (
	"time"

	"room-reservation/internal/domain/room"
	reqdto "room-reservation/internal/handler/dto/request"
	sqlc "room-reservation/internal/infra/sqlc/generated"
	"room-reservation/internal/usecase/queries"
	"room-reservation/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RoomBuilder struct {
	Name        string
	Description string
	Capacity    int
	Location    string
	ImageURL    string
	IsActive    bool
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		Name:        "Lab Komputer 1",
		Description: "Laboratorium komputer dengan 30 PC",
		Capacity:    30,
		Location:    "Gedung B Lantai 2",
		IsActive:    true,
	}
}

func (r *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(r)
	return r
}

func (r *RoomBuilder) attributes() room.Attributes {
	return room.Attributes{
		Name:        r.Name,
		Description: r.Description,
		Capacity:    r.Capacity,
		Location:    r.Location,
		ImageURL:    r.ImageURL,
		IsActive:    r.IsActive,
	}
}

// Build methods
func (r *RoomBuilder) BuildDomain() (*room.Room, error) {
	return room.NewRoom(r.attributes())
}

func (r *RoomBuilder) BuildInfra() sqlc.Rooms {
	now := time.Now()
	var desc, image pgtype.Text
	if r.Description != "" {
		desc = pgtype.Text{String: r.Description, Valid: true}
	}
	if r.ImageURL != "" {
		image = pgtype.Text{String: r.ImageURL, Valid: true}
	}
	return sqlc.Rooms{
		ID:          uuid.New(),
		Name:        r.Name,
		Description: desc,
		Capacity:    int32(r.Capacity),
		Location:    r.Location,
		ImageUrl:    image,
		IsActive:    r.IsActive,
		CreatedAt:   pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:   pgtype.Timestamptz{Time: now, Valid: true},
	}
}

func (r *RoomBuilder) BuildSnapshot() *shared.RoomSnapshot {
	now := time.Now()
	return &shared.RoomSnapshot{
		ID:          uuid.New(),
		Name:        r.Name,
		Description: r.Description,
		Capacity:    r.Capacity,
		Location:    r.Location,
		ImageURL:    r.ImageURL,
		IsActive:    r.IsActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (r *RoomBuilder) BuildView() *queries.RoomView {
	now := time.Now()
	return &queries.RoomView{
		ID:          uuid.New(),
		Name:        r.Name,
		Description: r.Description,
		Capacity:    int32(r.Capacity),
		Location:    r.Location,
		ImageURL:    r.ImageURL,
		IsActive:    r.IsActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (r *RoomBuilder) BuildCreateRequestDTO() reqdto.CreateRoomRequest {
	active := r.IsActive
	return reqdto.CreateRoomRequest{
		Name:        r.Name,
		Description: r.Description,
		Capacity:    r.Capacity,
		Location:    r.Location,
		ImageURL:    r.ImageURL,
		IsActive:    &active,
	}
}

func (r *RoomBuilder) AsInactive() *RoomBuilder {
	r.IsActive = false
	return r
}
