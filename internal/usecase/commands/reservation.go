package commands

import (
	"context"
	"log/slog"
	"time"

	"room-reservation/internal/domain/availability"
	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/domain/room"
	"room-reservation/internal/infra"
	"room-reservation/internal/pkg/clock"
	"room-reservation/internal/pkg/errs"
	"room-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

// ErrCascadeIncomplete aborts an approval whose cascade did not reject every
// overlapping pending request. It is never caused by the caller.
var ErrCascadeIncomplete = errs.NewKind("approval cascade left overlapping requests pending", errs.ErrIntegrity)

type SubmitReservationInput struct {
	RoomID        uuid.UUID
	StartTime     time.Time
	EndTime       time.Time
	Purpose       string
	AttendeeCount int
}

type ApproveResult struct {
	ReservationID      uuid.UUID
	CascadeRejectedIDs []uuid.UUID
}

type ReservationCommands interface {
	Submit(ctx context.Context, userID uuid.UUID, in SubmitReservationInput) (uuid.UUID, error)
	Approve(ctx context.Context, id uuid.UUID) (*ApproveResult, error)
	Reject(ctx context.Context, id uuid.UUID, reason string) error
	Cancel(ctx context.Context, actor reservation.Actor, id uuid.UUID) error
}

type reservationCommandsImpl struct {
	uow     shared.UnitOfWork
	factory *reservation.Factory
	clock   clock.Clock
	logger  *slog.Logger
}

func NewReservationCommands(uow shared.UnitOfWork, factory *reservation.Factory, clk clock.Clock, logger *slog.Logger) ReservationCommands {
	if logger == nil {
		logger = slog.Default()
	}
	return &reservationCommandsImpl{
		uow:     uow,
		factory: factory,
		clock:   clk,
		logger:  logger,
	}
}

func (c *reservationCommandsImpl) Submit(ctx context.Context, userID uuid.UUID, in SubmitReservationInput) (uuid.UUID, error) {
	slot, err := reservation.NewTimeSlot(in.StartTime, in.EndTime)
	if err != nil {
		return uuid.Nil, err
	}
	purpose, err := reservation.NewPurpose(in.Purpose)
	if err != nil {
		return uuid.Nil, err
	}
	attendees, err := reservation.NewAttendeeCount(in.AttendeeCount)
	if err != nil {
		return uuid.Nil, err
	}
	// fail before taking the room lock
	if err := c.factory.ValidateSlot(slot); err != nil {
		return uuid.Nil, err
	}

	var createdID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		spec, derr := lockRoom(ctx, tx, in.RoomID)
		if derr != nil {
			return derr
		}
		if derr = guard(ctx, tx, in.RoomID, slot, nil); derr != nil {
			return derr
		}

		res, derr := c.factory.CreateReservation(spec, userID, slot, purpose, attendees)
		if derr != nil {
			return derr
		}

		id, derr := tx.Reservations().Create(ctx, tx.DB(), res)
		if derr != nil {
			if infra.IsKind(derr, infra.KindForeignKeyViolated) {
				return room.ErrRoomNotFound
			}
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	c.logger.InfoContext(ctx, "reservation submitted",
		"reservation_id", createdID,
		"room_id", in.RoomID,
		"user_id", userID)
	return createdID, nil
}

// Approve flips the reservation to DISETUJUI and, in the same transaction,
// rejects every pending request in the room whose slot overlaps it.
func (c *reservationCommandsImpl) Approve(ctx context.Context, id uuid.UUID) (*ApproveResult, error) {
	var result *ApproveResult
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, derr := loadLocked(ctx, tx, id)
		if derr != nil {
			return derr
		}
		if derr = res.Approve(); derr != nil {
			return derr
		}

		self := res.ID()
		if derr = guard(ctx, tx, res.RoomID(), res.TimeSlot(), &self); derr != nil {
			return derr
		}

		applied, derr := tx.Reservations().ChangeStatus(ctx, tx.DB(), shared.StatusChange{
			ID:   id,
			From: []reservation.Status{reservation.StatusPending},
			To:   reservation.StatusApproved,
		})
		if derr != nil {
			if infra.IsKind(derr, infra.KindConflict) {
				return availability.ErrRoomBooked
			}
			return derr
		}
		if !applied {
			return reservation.ErrNotPending
		}

		rejected, derr := c.cascade(ctx, tx, res)
		if derr != nil {
			return derr
		}

		result = &ApproveResult{ReservationID: id, CascadeRejectedIDs: rejected}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.logger.InfoContext(ctx, "reservation approved",
		"reservation_id", id,
		"cascade_rejected", len(result.CascadeRejectedIDs))
	return result, nil
}

func (c *reservationCommandsImpl) cascade(ctx context.Context, tx shared.Tx, winner *reservation.Reservation) ([]uuid.UUID, error) {
	repo := tx.Reservations()

	siblings, err := repo.PendingOverlappingForUpdate(ctx, tx.DB(), winner.RoomID(), winner.TimeSlot(), winner.ID())
	if err != nil {
		return nil, err
	}
	losers, err := reservation.Cascade(winner, siblings)
	if err != nil {
		return nil, err
	}

	expected := reservation.IDs(losers)
	rejected, err := repo.RejectPending(ctx, tx.DB(), expected, reservation.SystemRejectionReason)
	if err != nil {
		return nil, err
	}
	remaining, err := repo.CountPendingOverlapping(ctx, tx.DB(), winner.RoomID(), winner.TimeSlot(), winner.ID())
	if err != nil {
		return nil, err
	}

	if len(rejected) != len(expected) || remaining > 0 {
		c.logger.ErrorContext(ctx, "approval cascade incomplete",
			"alarm", "integrity",
			"reservation_id", winner.ID(),
			"room_id", winner.RoomID(),
			"expected", len(expected),
			"rejected", len(rejected),
			"remaining", remaining)
		return nil, errs.Wrapf(ErrCascadeIncomplete, "reservation %s", winner.ID())
	}

	if rejected == nil {
		rejected = []uuid.UUID{}
	}
	return rejected, nil
}

// Reject never cascades; overlapping siblings stay pending.
func (c *reservationCommandsImpl) Reject(ctx context.Context, id uuid.UUID, reason string) error {
	rr, err := reservation.NewRejectionReason(reason)
	if err != nil {
		return err
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, derr := loadLocked(ctx, tx, id)
		if derr != nil {
			return derr
		}
		if derr = res.Reject(rr.String()); derr != nil {
			return derr
		}

		stored := rr.String()
		applied, derr := tx.Reservations().ChangeStatus(ctx, tx.DB(), shared.StatusChange{
			ID:     id,
			From:   []reservation.Status{reservation.StatusPending},
			To:     reservation.StatusRejected,
			Reason: &stored,
		})
		if derr != nil {
			return derr
		}
		if !applied {
			return reservation.ErrNotPending
		}
		return nil
	})
}

func (c *reservationCommandsImpl) Cancel(ctx context.Context, actor reservation.Actor, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, derr := loadLocked(ctx, tx, id)
		if derr != nil {
			return derr
		}

		now := c.clock.Now()
		previous := res.Status()
		if derr = res.Cancel(actor, now); derr != nil {
			return derr
		}

		applied, derr := tx.Reservations().ChangeStatus(ctx, tx.DB(), shared.StatusChange{
			ID:          id,
			From:        []reservation.Status{previous},
			To:          reservation.StatusCancelled,
			StartsAfter: &now,
		})
		if derr != nil {
			return derr
		}
		if !applied {
			return reservation.ErrNotCancellable
		}
		return nil
	})
}

func lockRoom(ctx context.Context, tx shared.Tx, roomID uuid.UUID) (reservation.RoomSpec, error) {
	spec, err := tx.Rooms().LockForUpdate(ctx, tx.DB(), roomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return reservation.RoomSpec{}, room.ErrRoomNotFound
		}
		return reservation.RoomSpec{}, err
	}
	return spec, nil
}

// loadLocked finds the reservation, locks its room and reads it again so the
// returned state cannot change until the transaction ends.
func loadLocked(ctx context.Context, tx shared.Tx, id uuid.UUID) (*reservation.Reservation, error) {
	snap, err := findReservation(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if _, err = lockRoom(ctx, tx, snap.RoomID); err != nil {
		return nil, err
	}
	if snap, err = findReservation(ctx, tx, id); err != nil {
		return nil, err
	}
	return reservationFromSnapshot(snap)
}

func findReservation(ctx context.Context, tx shared.Tx, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	snap, err := tx.Reads().ReservationByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, reservation.ErrReservationNotFound
		}
		return nil, err
	}
	return snap, nil
}

// guard runs the availability check against the locked room. exclude skips
// the reservation being approved.
func guard(ctx context.Context, tx shared.Tx, roomID uuid.UUID, slot reservation.TimeSlot, exclude *uuid.UUID) error {
	approved, err := tx.Reservations().ApprovedOverlapping(ctx, tx.DB(), roomID, slot, exclude)
	if err != nil {
		return err
	}
	blocked, err := tx.BlockedSlots().Overlapping(ctx, tx.DB(), roomID, slot)
	if err != nil {
		return err
	}
	return availability.Check(slot, availability.Occupancy{Approved: approved, Blocked: blocked}).Err()
}

func reservationFromSnapshot(s *shared.ReservationSnapshot) (*reservation.Reservation, error) {
	slot, err := reservation.NewTimeSlot(s.StartTime, s.EndTime)
	if err != nil {
		return nil, errs.Wrapf(err, "stored reservation %s", s.ID)
	}
	purpose, err := reservation.NewPurpose(s.Purpose)
	if err != nil {
		return nil, errs.Wrapf(err, "stored reservation %s", s.ID)
	}
	attendees, err := reservation.NewAttendeeCount(s.AttendeeCount)
	if err != nil {
		return nil, errs.Wrapf(err, "stored reservation %s", s.ID)
	}
	status, err := reservation.ParseStatus(s.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "stored reservation %s", s.ID)
	}

	var reason *reservation.RejectionReason
	if s.RejectionReason != nil {
		rr, rerr := reservation.NewRejectionReason(*s.RejectionReason)
		if rerr != nil {
			return nil, errs.Wrapf(rerr, "stored reservation %s", s.ID)
		}
		reason = &rr
	}

	return reservation.ReconstructReservation(
		s.ID, s.UserID, s.RoomID,
		slot, purpose, attendees, status,
		reason, s.RejectedBySystem,
		s.CreatedAt, s.UpdatedAt,
	), nil
}
