package reservation

import (
	"strings"
	"time"
	"unicode/utf8"
)

// TimeSlot is the half-open interval [start, end).
type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if !start.Before(end) {
		return TimeSlot{}, ErrInvalidTimeSlot
	}

	return TimeSlot{
		start: start,
		end:   end,
	}, nil
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

// Overlaps reports whether the two intervals share any instant.
// Back-to-back slots (a.end == b.start) do not overlap.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return ts.start.Before(other.end) && other.start.Before(ts.end)
}

// StartsAfter reports whether the slot has not begun at t.
func (ts TimeSlot) StartsAfter(t time.Time) bool {
	return ts.start.After(t)
}

const MaxPurposeLength = 500

type Purpose struct {
	value string
}

func NewPurpose(s string) (Purpose, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Purpose{}, ErrEmptyPurpose
	}
	if utf8.RuneCountInString(s) > MaxPurposeLength {
		return Purpose{}, ErrPurposeTooLong
	}
	return Purpose{value: s}, nil
}

func (p Purpose) String() string {
	return p.value
}

type AttendeeCount struct {
	value int
}

func NewAttendeeCount(n int) (AttendeeCount, error) {
	if n < 1 {
		return AttendeeCount{}, ErrInvalidAttendeeCount
	}
	return AttendeeCount{value: n}, nil
}

func (a AttendeeCount) Int() int {
	return a.value
}

// RejectionReason is always non-blank once constructed.
type RejectionReason struct {
	value string
}

func NewRejectionReason(s string) (RejectionReason, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return RejectionReason{}, ErrMissingReason
	}
	return RejectionReason{value: s}, nil
}

func (r RejectionReason) String() string {
	return r.value
}
