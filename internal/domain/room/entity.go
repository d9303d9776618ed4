package room

import (
	"strings"
	"time"

	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyRoomName   = errs.NewKind("room name cannot be empty", errs.ErrValidation)
	ErrRoomNameTooLong = errs.NewKind("room name is too long (max 255 characters)", errs.ErrValidation)
	ErrInvalidCapacity = errs.NewKind("room capacity must be at least 1", errs.ErrValidation)
	ErrEmptyLocation   = errs.NewKind("room location cannot be empty", errs.ErrValidation)

	ErrRoomNotFound  = errs.NewKind("room not found", errs.ErrNotFound)
	ErrRoomNameTaken = errs.NewKind("room name already in use", errs.ErrDuplicate)
	ErrRoomInUse     = errs.NewKind("room has reservations and cannot be deleted", errs.ErrInUse)
)

const (
	MaxRoomNameLength = 255
)

type Room struct {
	id          uuid.UUID
	name        string
	description string
	capacity    int
	location    string
	imageURL    string
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time
}

type Attributes struct {
	Name        string
	Description string
	Capacity    int
	Location    string
	ImageURL    string
	IsActive    bool
}

func NewRoom(attrs Attributes) (*Room, error) {
	r := &Room{id: uuid.New()}
	if err := r.apply(attrs); err != nil {
		return nil, err
	}
	return r, nil
}

func ReconstructRoom(id uuid.UUID, attrs Attributes, createdAt, updatedAt time.Time) *Room {
	return &Room{
		id:          id,
		name:        attrs.Name,
		description: attrs.Description,
		capacity:    attrs.Capacity,
		location:    attrs.Location,
		imageURL:    attrs.ImageURL,
		isActive:    attrs.IsActive,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Update replaces all attributes after validating them.
func (r *Room) Update(attrs Attributes) error {
	return r.apply(attrs)
}

func (r *Room) apply(attrs Attributes) error {
	name := strings.TrimSpace(attrs.Name)
	if err := validateRoomName(name); err != nil {
		return err
	}
	if attrs.Capacity < 1 {
		return ErrInvalidCapacity
	}
	location := strings.TrimSpace(attrs.Location)
	if location == "" {
		return ErrEmptyLocation
	}

	r.name = name
	r.description = strings.TrimSpace(attrs.Description)
	r.capacity = attrs.Capacity
	r.location = location
	r.imageURL = strings.TrimSpace(attrs.ImageURL)
	r.isActive = attrs.IsActive
	return nil
}

func validateRoomName(name string) error {
	if name == "" {
		return ErrEmptyRoomName
	}
	if len(name) > MaxRoomNameLength {
		return ErrRoomNameTooLong
	}
	return nil
}

// Spec is the view of the room a reservation is checked against.
func (r *Room) Spec() reservation.RoomSpec {
	return reservation.RoomSpec{ID: r.id, Capacity: r.capacity, Active: r.isActive}
}

func (r *Room) Attributes() Attributes {
	return Attributes{
		Name:        r.name,
		Description: r.description,
		Capacity:    r.capacity,
		Location:    r.location,
		ImageURL:    r.imageURL,
		IsActive:    r.isActive,
	}
}

func (r *Room) ID() uuid.UUID        { return r.id }
func (r *Room) Name() string         { return r.name }
func (r *Room) Description() string  { return r.description }
func (r *Room) Capacity() int        { return r.capacity }
func (r *Room) Location() string     { return r.location }
func (r *Room) ImageURL() string     { return r.imageURL }
func (r *Room) IsActive() bool       { return r.isActive }
func (r *Room) CreatedAt() time.Time { return r.createdAt }
func (r *Room) UpdatedAt() time.Time { return r.updatedAt }
