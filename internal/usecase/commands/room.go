package commands

import (
	"context"
	"strings"

	"room-reservation/internal/domain/room"
	"room-reservation/internal/infra"
	"room-reservation/internal/pkg/patch"
	"room-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

// RoomPatch carries only the fields to change.
type RoomPatch struct {
	Name        *string
	Description *string
	Capacity    *int
	Location    *string
	ImageURL    *string
	IsActive    *bool
}

type RoomCommands interface {
	Create(ctx context.Context, attrs room.Attributes) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, p RoomPatch) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type roomCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewRoomCommands(uow shared.UnitOfWork) RoomCommands {
	return &roomCommandsImpl{uow: uow}
}

func (c *roomCommandsImpl) Create(ctx context.Context, attrs room.Attributes) (uuid.UUID, error) {
	r, err := room.NewRoom(attrs)
	if err != nil {
		return uuid.Nil, err
	}

	var createdID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := ensureNameFree(ctx, tx, r.Name(), uuid.Nil); derr != nil {
			return derr
		}
		id, derr := tx.Rooms().Create(ctx, tx.DB(), r)
		if derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return room.ErrRoomNameTaken
			}
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return createdID, nil
}

func (c *roomCommandsImpl) Update(ctx context.Context, id uuid.UUID, p RoomPatch) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().RoomByID(ctx, id)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return room.ErrRoomNotFound
			}
			return derr
		}

		current := room.Attributes{
			Name:        snap.Name,
			Description: snap.Description,
			Capacity:    snap.Capacity,
			Location:    snap.Location,
			ImageURL:    snap.ImageURL,
			IsActive:    snap.IsActive,
		}
		r := room.ReconstructRoom(snap.ID, current, snap.CreatedAt, snap.UpdatedAt)

		next := room.Attributes{
			Name:        patch.Coalesce(p.Name, current.Name),
			Description: patch.Coalesce(p.Description, current.Description),
			Capacity:    patch.Coalesce(p.Capacity, current.Capacity),
			Location:    patch.Coalesce(p.Location, current.Location),
			ImageURL:    patch.Coalesce(p.ImageURL, current.ImageURL),
			IsActive:    patch.Coalesce(p.IsActive, current.IsActive),
		}
		if derr = r.Update(next); derr != nil {
			return derr
		}

		if r.Name() != current.Name {
			if derr = ensureNameFree(ctx, tx, r.Name(), r.ID()); derr != nil {
				return derr
			}
		}

		if derr = tx.Rooms().Update(ctx, tx.DB(), r); derr != nil {
			switch {
			case infra.IsKind(derr, infra.KindDuplicateKey):
				return room.ErrRoomNameTaken
			case infra.IsKind(derr, infra.KindNotFound):
				return room.ErrRoomNotFound
			}
			return derr
		}
		return nil
	})
}

// Delete is refused while any reservation references the room. Its blocked
// slots go with it.
func (c *roomCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		derr := tx.Rooms().Delete(ctx, tx.DB(), id)
		switch {
		case derr == nil:
			return nil
		case infra.IsKind(derr, infra.KindNotFound):
			return room.ErrRoomNotFound
		case infra.IsKind(derr, infra.KindForeignKeyViolated):
			return room.ErrRoomInUse
		default:
			return derr
		}
	})
}

func ensureNameFree(ctx context.Context, tx shared.Tx, name string, self uuid.UUID) error {
	existing, err := tx.Reads().RoomByName(ctx, strings.TrimSpace(name))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != self {
		return room.ErrRoomNameTaken
	}
	return nil
}
