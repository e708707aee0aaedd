package verification

import (
	"errors"
	"fmt"
)

var (
	ErrVerification  error = errors.New("on-chain verification failed")
	ErrNotConfigured error = errors.New("verification contract not configured")
)

// MismatchError names the piece of on-chain evidence that contradicts a claim.
type MismatchError struct {
	Field  string
	Reason string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrVerification, e.Field, e.Reason)
}

func (e *MismatchError) Is(target error) bool {
	return target == ErrVerification
}

func mismatch(field, format string, args ...any) error {
	return &MismatchError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
