package reservation

import "github.com/google/uuid"

// SystemRejectionReason is stored on every reservation rejected by an approval cascade.
const SystemRejectionReason = "room already approved for another use during this time"

// Cascade rejects every pending candidate in the winner's room whose slot
// overlaps the winner. The winner itself and non-overlapping candidates are
// left untouched. The returned slice holds the rejected reservations.
//
// The winner wins by approval order, not by submission time.
func Cascade(winner *Reservation, candidates []*Reservation) ([]*Reservation, error) {
	var losers []*Reservation
	for _, c := range candidates {
		if !isCascadeLoser(winner, c) {
			continue
		}
		if err := c.RejectBySystem(); err != nil {
			return nil, err
		}
		losers = append(losers, c)
	}
	return losers, nil
}

func isCascadeLoser(winner, c *Reservation) bool {
	return c.id != winner.id &&
		c.roomID == winner.roomID &&
		c.status == StatusPending &&
		c.timeSlot.Overlaps(winner.timeSlot)
}

func IDs(rs []*Reservation) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(rs))
	for _, r := range rs {
		ids = append(ids, r.ID())
	}
	return ids
}
