package blockedslot

import (
	"strings"
	"time"

	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyReason         = errs.NewKind("blocked slot reason is required", errs.ErrValidation)
	ErrReasonTooLong       = errs.NewKind("blocked slot reason is too long (max 255 characters)", errs.ErrValidation)
	ErrBlockedSlotNotFound = errs.NewKind("blocked slot not found", errs.ErrNotFound)
)

const MaxReasonLength = 255

// BlockedSlot is an administrator-defined maintenance window. It has no owner
// and no lifecycle beyond create and delete.
type BlockedSlot struct {
	id        uuid.UUID
	roomID    uuid.UUID
	timeSlot  reservation.TimeSlot
	reason    string
	createdAt time.Time
}

func NewBlockedSlot(roomID uuid.UUID, slot reservation.TimeSlot, reason string) (*BlockedSlot, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ErrEmptyReason
	}
	if len([]rune(reason)) > MaxReasonLength {
		return nil, ErrReasonTooLong
	}

	return &BlockedSlot{
		id:       uuid.New(),
		roomID:   roomID,
		timeSlot: slot,
		reason:   reason,
	}, nil
}

func ReconstructBlockedSlot(id, roomID uuid.UUID, slot reservation.TimeSlot, reason string, createdAt time.Time) *BlockedSlot {
	return &BlockedSlot{
		id:        id,
		roomID:    roomID,
		timeSlot:  slot,
		reason:    reason,
		createdAt: createdAt,
	}
}

func (b *BlockedSlot) ID() uuid.UUID                  { return b.id }
func (b *BlockedSlot) RoomID() uuid.UUID              { return b.roomID }
func (b *BlockedSlot) TimeSlot() reservation.TimeSlot { return b.timeSlot }
func (b *BlockedSlot) Reason() string                 { return b.reason }
func (b *BlockedSlot) CreatedAt() time.Time           { return b.createdAt }
