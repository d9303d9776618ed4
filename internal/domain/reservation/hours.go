package reservation

import (
	"fmt"
	"time"

	"room-reservation/internal/pkg/errs"
)

var ErrInvalidOperatingHours = errs.NewKind("invalid operating hours", errs.ErrValidation)

// OperatingHours is the daily window, in campus local time, inside which a
// reservation must start and end.
type OperatingHours struct {
	open  time.Duration
	close time.Duration
	loc   *time.Location
}

const (
	DefaultOpen     = "07:00"
	DefaultClose    = "17:00"
	DefaultTimeZone = "Asia/Jakarta"
)

func NewOperatingHours(open, close string, loc *time.Location) (OperatingHours, error) {
	o, err := parseClock(open)
	if err != nil {
		return OperatingHours{}, err
	}
	c, err := parseClock(close)
	if err != nil {
		return OperatingHours{}, err
	}
	if o >= c {
		return OperatingHours{}, errs.Wrapf(ErrInvalidOperatingHours, "opening time %s must be before closing time %s", open, close)
	}
	if loc == nil {
		loc = time.UTC
	}
	return OperatingHours{open: o, close: c, loc: loc}, nil
}

// DefaultOperatingHours falls back to a fixed UTC+7 zone when tzdata is unavailable.
func DefaultOperatingHours() OperatingHours {
	loc, err := time.LoadLocation(DefaultTimeZone)
	if err != nil {
		loc = time.FixedZone("WIB", 7*60*60)
	}
	return MustOperatingHours(DefaultOpen, DefaultClose, loc)
}

// MustOperatingHours panics on invalid input; use it only with constants.
func MustOperatingHours(open, close string, loc *time.Location) OperatingHours {
	h, err := NewOperatingHours(open, close, loc)
	if err != nil {
		panic(err)
	}
	return h
}

func (h OperatingHours) Location() *time.Location { return h.loc }

func (h OperatingHours) Open() string  { return formatClock(h.open) }
func (h OperatingHours) Close() string { return formatClock(h.close) }

// Permits requires start and end on the same local date, both inside [open, close].
func (h OperatingHours) Permits(slot TimeSlot) bool {
	s := slot.Start().In(h.loc)
	e := slot.End().In(h.loc)

	sy, sm, sd := s.Date()
	ey, em, ed := e.Date()
	if sy != ey || sm != em || sd != ed {
		return false
	}
	return sinceMidnight(s) >= h.open && sinceMidnight(e) <= h.close
}

// Day returns the local calendar day containing t as a half-open interval.
func (h OperatingHours) Day(t time.Time) TimeSlot {
	l := t.In(h.loc)
	start := time.Date(l.Year(), l.Month(), l.Day(), 0, 0, 0, 0, h.loc)
	return TimeSlot{start: start, end: start.AddDate(0, 0, 1)}
}

func sinceMidnight(t time.Time) time.Duration {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return t.Sub(midnight)
}

func parseClock(s string) (time.Duration, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, errs.Wrapf(errs.Mark(err, ErrInvalidOperatingHours), "invalid clock time %q", s)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

func formatClock(d time.Duration) string {
	return fmt.Sprintf("%02d:%02d", int(d.Hours()), int(d.Minutes())%60)
}
