package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the booking core. Handlers map these onto HTTP
// status codes; everything else renders as a 500.
var (
	ErrEquipmentNotFound = errors.New("equipment not found")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrNotOwner          = errors.New("forbidden")
	ErrUnauthenticated   = errors.New("missing or invalid bearer token")

	// ErrInvalidEquipment is a create-time reference failure; the original
	// API reports it as a 400, unlike a lookup of a missing equipment id.
	ErrInvalidEquipment = errors.New("invalid equipment_id")
	ErrInvalidSport     = errors.New("invalid sport_id")

	ErrInvalidStatus = errors.New("status must be 'approved' or 'rejected'")

	ErrOutsideAvailability = errors.New("requested dates are outside declared availability")
	ErrBookingConflict     = errors.New("overlaps with an existing approved/active booking")
)

// ValidationError covers missing or malformed request input.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func Validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a request-input validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
