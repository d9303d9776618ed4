package converter

import (
	"fmt"
	"math"

	"room-reservation/internal/domain/reservation"
	sqlc "room-reservation/internal/infra/sqlc/generated"
	"room-reservation/internal/pkg/pgconv"
)

func ReservationToInfra(res *reservation.Reservation) sqlc.CreateReservationParams {
	timeSlot := res.TimeSlot()

	return sqlc.CreateReservationParams{
		UserID:        res.UserID(),
		RoomID:        res.RoomID(),
		StartTime:     pgconv.TimeToPgtype(timeSlot.Start()),
		EndTime:       pgconv.TimeToPgtype(timeSlot.End()),
		Purpose:       res.Purpose().String(),
		AttendeeCount: toInt32(res.Attendees().Int()),
	}
}

// ReservationFromInfra rebuilds the aggregate from a stored row. Stored rows
// passed the same validation on the way in, so failures here mean corrupt data.
func ReservationFromInfra(row sqlc.Reservations) (*reservation.Reservation, error) {
	slot, err := reservation.NewTimeSlot(row.StartTime.Time, row.EndTime.Time)
	if err != nil {
		return nil, fmt.Errorf("reservation %s: %w", row.ID, err)
	}
	purpose, err := reservation.NewPurpose(row.Purpose)
	if err != nil {
		return nil, fmt.Errorf("reservation %s: %w", row.ID, err)
	}
	attendees, err := reservation.NewAttendeeCount(int(row.AttendeeCount))
	if err != nil {
		return nil, fmt.Errorf("reservation %s: %w", row.ID, err)
	}
	status, err := reservation.ParseStatus(row.Status)
	if err != nil {
		return nil, fmt.Errorf("reservation %s: %w", row.ID, err)
	}

	var reason *reservation.RejectionReason
	if row.RejectionReason.Valid {
		rr, rerr := reservation.NewRejectionReason(row.RejectionReason.String)
		if rerr != nil {
			return nil, fmt.Errorf("reservation %s: %w", row.ID, rerr)
		}
		reason = &rr
	}

	return reservation.ReconstructReservation(
		row.ID, row.UserID, row.RoomID,
		slot, purpose, attendees, status,
		reason, row.RejectedBySystem,
		row.CreatedAt.Time, row.UpdatedAt.Time,
	), nil
}

func toInt32(n int) int32 {
	if n > math.MaxInt32 || n < math.MinInt32 {
		panic(fmt.Sprintf("value out of int32 range: %d", n))
	}
	return int32(n)
}
