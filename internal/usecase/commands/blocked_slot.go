package commands

import (
	"context"
	"log/slog"
	"time"

	"room-reservation/internal/domain/blockedslot"
	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBlockedSlotInput struct {
	RoomID    uuid.UUID
	StartTime time.Time
	EndTime   time.Time
	Reason    string
}

type BlockedSlotCommands interface {
	Create(ctx context.Context, in CreateBlockedSlotInput) (uuid.UUID, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type blockedSlotCommandsImpl struct {
	uow    shared.UnitOfWork
	logger *slog.Logger
}

func NewBlockedSlotCommands(uow shared.UnitOfWork, logger *slog.Logger) BlockedSlotCommands {
	if logger == nil {
		logger = slog.Default()
	}
	return &blockedSlotCommandsImpl{uow: uow, logger: logger}
}

// Create takes effect for availability checks as soon as it commits. Existing
// reservations inside the window are left as they are.
func (c *blockedSlotCommandsImpl) Create(ctx context.Context, in CreateBlockedSlotInput) (uuid.UUID, error) {
	slot, err := reservation.NewTimeSlot(in.StartTime, in.EndTime)
	if err != nil {
		return uuid.Nil, err
	}
	bs, err := blockedslot.NewBlockedSlot(in.RoomID, slot, in.Reason)
	if err != nil {
		return uuid.Nil, err
	}

	var createdID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := lockRoom(ctx, tx, in.RoomID); derr != nil {
			return derr
		}
		id, derr := tx.BlockedSlots().Create(ctx, tx.DB(), bs)
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	c.logger.InfoContext(ctx, "blocked slot created", "blocked_slot_id", createdID, "room_id", in.RoomID)
	return createdID, nil
}

func (c *blockedSlotCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		deleted, derr := tx.BlockedSlots().Delete(ctx, tx.DB(), id)
		if derr != nil {
			return derr
		}
		if !deleted {
			return blockedslot.ErrBlockedSlotNotFound
		}
		return nil
	})
}
