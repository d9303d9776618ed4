package shared

import (
	"context"
	"time"

	"room-reservation/internal/domain/blockedslot"
	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/domain/room"
	"room-reservation/internal/domain/user"
	sqlc "room-reservation/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Rooms() RoomRepository
	Reservations() ReservationRepository
	BlockedSlots() BlockedSlotRepository
	Users() UserRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	ReservationByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
	RoomByID(ctx context.Context, id uuid.UUID) (*RoomSnapshot, error)
	RoomByName(ctx context.Context, name string) (*RoomSnapshot, error)
	UserByEmail(ctx context.Context, email string) (*UserSnapshot, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
}

// RoomRepository.LockForUpdate is the per-room serialization point: every
// writer touching a room's reservations or blocked slots calls it first.
type RoomRepository interface {
	LockForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (reservation.RoomSpec, error)
	Create(ctx context.Context, tx sqlc.DBTX, r *room.Room) (uuid.UUID, error)
	Update(ctx context.Context, tx sqlc.DBTX, r *room.Room) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

// StatusChange is a compare-and-set on the reservation status. It applies only
// while the stored status is one of From and, when StartsAfter is set, the
// reservation has not started at that instant.
type StatusChange struct {
	ID               uuid.UUID
	From             []reservation.Status
	To               reservation.Status
	Reason           *string
	RejectedBySystem bool
	StartsAfter      *time.Time
}

type ReservationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (uuid.UUID, error)
	// ChangeStatus reports false when the compare-and-set did not match.
	ChangeStatus(ctx context.Context, tx sqlc.DBTX, change StatusChange) (bool, error)
	ApprovedOverlapping(ctx context.Context, tx sqlc.DBTX, roomID uuid.UUID, slot reservation.TimeSlot, excludeID *uuid.UUID) ([]reservation.TimeSlot, error)
	PendingOverlappingForUpdate(ctx context.Context, tx sqlc.DBTX, roomID uuid.UUID, slot reservation.TimeSlot, excludeID uuid.UUID) ([]*reservation.Reservation, error)
	CountPendingOverlapping(ctx context.Context, tx sqlc.DBTX, roomID uuid.UUID, slot reservation.TimeSlot, excludeID uuid.UUID) (int64, error)
	// RejectPending rejects the listed reservations that are still pending and
	// returns the ids it actually changed.
	RejectPending(ctx context.Context, tx sqlc.DBTX, ids []uuid.UUID, reason string) ([]uuid.UUID, error)
}

type BlockedSlotRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, slot *blockedslot.BlockedSlot) (uuid.UUID, error)
	// Delete reports false when no slot had the id.
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (bool, error)
	Overlapping(ctx context.Context, tx sqlc.DBTX, roomID uuid.UUID, slot reservation.TimeSlot) ([]reservation.TimeSlot, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
}
