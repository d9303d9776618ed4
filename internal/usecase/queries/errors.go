package queries

import "room-reservation/internal/pkg/errs"

var (
	ErrInvalidCursor     = errs.NewKind("invalid cursor", errs.ErrValidation)
	ErrInvalidDate       = errs.NewKind("date must use the YYYY-MM-DD format", errs.ErrValidation)
	ErrInvalidRange      = errs.NewKind("report range end must be after its start", errs.ErrValidation)
	ErrReservationAccess = errs.NewKind("reservation belongs to another user", errs.ErrForbidden)
)
