package service

import (
	"errors"
	"fmt"
)

// ErrValidation wraps every missing/invalid-field failure. These are
// surfaced to the submitting user before any write happens.
var ErrValidation = errors.New("validation failed")

// ErrVendorBlocked means an unverified vendor tried to report while the
// policy mode is blocking. Enforced at the reporting surface, not inside
// the verification engine.
var ErrVendorBlocked = errors.New("vendor not verified")

func validationErr(field, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrValidation, field, reason)
}
