//go:build unit || e2e

package builder

import (
	"time"

	"room-reservation/internal/domain/blockedslot"
	"room-reservation/internal/domain/reservation"
	sqlc "room-reservation/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BlockedSlotBuilder struct {
	RoomID uuid.UUID
	Start  time.Time
	End    time.Time
	Reason string
}

func NewBlockedSlotBuilder() *BlockedSlotBuilder {
	return &BlockedSlotBuilder{
		RoomID: uuid.New(),
		Start:  At(13, 0),
		End:    At(15, 0),
		Reason: "Perawatan AC",
	}
}

func (b *BlockedSlotBuilder) With(mutate func(*BlockedSlotBuilder)) *BlockedSlotBuilder {
	mutate(b)
	return b
}

func (b *BlockedSlotBuilder) BuildDomain() (*blockedslot.BlockedSlot, error) {
	slot, err := reservation.NewTimeSlot(b.Start, b.End)
	if err != nil {
		return nil, err
	}
	return blockedslot.NewBlockedSlot(b.RoomID, slot, b.Reason)
}

func (b *BlockedSlotBuilder) BuildInfra() sqlc.BlockedSlots {
	return sqlc.BlockedSlots{
		ID:        uuid.New(),
		RoomID:    b.RoomID,
		StartTime: pgtype.Timestamptz{Time: b.Start, Valid: true},
		EndTime:   pgtype.Timestamptz{Time: b.End, Valid: true},
		Reason:    b.Reason,
		CreatedAt: pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}
}
