//go:build unit || e2e

package builder

import (
	"fmt"
	"time"

	"room-reservation/internal/domain/reservation"
	reqdto "room-reservation/internal/handler/dto/request"
	sqlc "room-reservation/internal/infra/sqlc/generated"
	"room-reservation/internal/usecase/queries"
	"room-reservation/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// WIB avoids depending on the tzdata of the test host.
var WIB = time.FixedZone("WIB", 7*60*60)

// FutureDay is a weekday far enough ahead that "start in the past" never fires.
var FutureDay = time.Date(2030, time.March, 4, 0, 0, 0, 0, WIB)

// At returns hh:mm on FutureDay in campus time.
func At(hour, minute int) time.Time {
	return FutureDay.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

type ReservationBuilder struct {
	UserID           uuid.UUID
	RoomID           uuid.UUID
	Start            time.Time
	End              time.Time
	Purpose          string
	Attendees        int
	Capacity         int
	RoomActive       bool
	Status           reservation.Status
	RejectionReason  *string
	RejectedBySystem bool
	CreatedAt        time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		UserID:     uuid.New(),
		RoomID:     uuid.New(),
		Start:      At(9, 0),
		End:        At(11, 0),
		Purpose:    "Rapat himpunan mahasiswa",
		Attendees:  10,
		Capacity:   30,
		RoomActive: true,
		Status:     reservation.StatusPending,
		CreatedAt:  time.Date(2030, time.March, 1, 8, 0, 0, 0, WIB),
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

func (r *ReservationBuilder) RoomSpec() reservation.RoomSpec {
	return reservation.RoomSpec{ID: r.RoomID, Capacity: r.Capacity, Active: r.RoomActive}
}

// Build methods
func (r *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	slot, err := reservation.NewTimeSlot(r.Start, r.End)
	if err != nil {
		return nil, err
	}
	purpose, err := reservation.NewPurpose(r.Purpose)
	if err != nil {
		return nil, err
	}
	attendees, err := reservation.NewAttendeeCount(r.Attendees)
	if err != nil {
		return nil, err
	}
	return reservation.NewReservation(r.RoomSpec(), r.UserID, slot, purpose, attendees)
}

// BuildStored reconstructs a persisted reservation in r.Status. It panics on
// builder values that could never have been stored.
func (r *ReservationBuilder) BuildStored() *reservation.Reservation {
	slot, err := reservation.NewTimeSlot(r.Start, r.End)
	if err != nil {
		panic(fmt.Sprintf("builder: %v", err))
	}
	purpose, err := reservation.NewPurpose(r.Purpose)
	if err != nil {
		panic(fmt.Sprintf("builder: %v", err))
	}
	attendees, err := reservation.NewAttendeeCount(r.Attendees)
	if err != nil {
		panic(fmt.Sprintf("builder: %v", err))
	}

	var reason *reservation.RejectionReason
	if r.RejectionReason != nil {
		rr, rerr := reservation.NewRejectionReason(*r.RejectionReason)
		if rerr != nil {
			panic(fmt.Sprintf("builder: %v", rerr))
		}
		reason = &rr
	}

	return reservation.ReconstructReservation(
		uuid.New(), r.UserID, r.RoomID,
		slot, purpose, attendees, r.Status,
		reason, r.RejectedBySystem,
		r.CreatedAt, r.CreatedAt,
	)
}

func (r *ReservationBuilder) BuildInfra() sqlc.Reservations {
	var reason pgtype.Text
	if r.RejectionReason != nil {
		reason = pgtype.Text{String: *r.RejectionReason, Valid: true}
	}
	return sqlc.Reservations{
		ID:               uuid.New(),
		UserID:           r.UserID,
		RoomID:           r.RoomID,
		StartTime:        pgtype.Timestamptz{Time: r.Start, Valid: true},
		EndTime:          pgtype.Timestamptz{Time: r.End, Valid: true},
		Purpose:          r.Purpose,
		AttendeeCount:    int32(r.Attendees),
		Status:           r.Status.String(),
		RejectionReason:  reason,
		RejectedBySystem: r.RejectedBySystem,
		CreatedAt:        pgtype.Timestamptz{Time: r.CreatedAt, Valid: true},
		UpdatedAt:        pgtype.Timestamptz{Time: r.CreatedAt, Valid: true},
	}
}

func (r *ReservationBuilder) BuildSnapshot() *shared.ReservationSnapshot {
	return &shared.ReservationSnapshot{
		ID:               uuid.New(),
		UserID:           r.UserID,
		RoomID:           r.RoomID,
		StartTime:        r.Start,
		EndTime:          r.End,
		Purpose:          r.Purpose,
		AttendeeCount:    r.Attendees,
		Status:           r.Status.String(),
		RejectionReason:  r.RejectionReason,
		RejectedBySystem: r.RejectedBySystem,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.CreatedAt,
	}
}

func (r *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:               uuid.New(),
		UserID:           r.UserID,
		UserName:         "Siti Rahma",
		UserEmail:        "siti@example.ac.id",
		RoomID:           r.RoomID,
		RoomName:         "Lab Komputer 1",
		StartTime:        r.Start,
		EndTime:          r.End,
		Purpose:          r.Purpose,
		AttendeeCount:    int32(r.Attendees),
		Status:           r.Status.String(),
		RejectionReason:  r.RejectionReason,
		RejectedBySystem: r.RejectedBySystem,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.CreatedAt,
	}
}

func (r *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		RoomID:        r.RoomID,
		StartTime:     r.Start,
		EndTime:       r.End,
		Purpose:       r.Purpose,
		AttendeeCount: r.Attendees,
	}
}

// Fluent builder methods
func (r *ReservationBuilder) WithSlot(start, end time.Time) *ReservationBuilder {
	r.Start = start
	r.End = end
	return r
}

func (r *ReservationBuilder) WithRoom(roomID uuid.UUID) *ReservationBuilder {
	r.RoomID = roomID
	return r
}

func (r *ReservationBuilder) WithUser(userID uuid.UUID) *ReservationBuilder {
	r.UserID = userID
	return r
}

func (r *ReservationBuilder) AsApproved() *ReservationBuilder {
	r.Status = reservation.StatusApproved
	return r
}

func (r *ReservationBuilder) AsRejected(reason string) *ReservationBuilder {
	r.Status = reservation.StatusRejected
	r.RejectionReason = &reason
	return r
}

func (r *ReservationBuilder) AsCancelled() *ReservationBuilder {
	r.Status = reservation.StatusCancelled
	return r
}
