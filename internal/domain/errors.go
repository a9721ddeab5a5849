package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized      = errors.New("unauthorized access")
	ErrForbidden         = errors.New("forbidden access")
	ErrInvalidToken      = errors.New("invalid token")
	ErrDuplicateBooking  = errors.New("Already booking")
	ErrBookingInProgress = errors.New("booking for this apartment is already being processed")
	ErrNotFound          = errors.New("not found")
	ErrInvalidID         = errors.New("invalid id")
	ErrEmptyUpdate       = errors.New("update has no fields")
	ErrUserExists        = errors.New("user is already exist")
)

// StoreError wraps a document-store failure with the operation and
// collection it came from.
type StoreError struct {
	Op         string
	Collection string
	Err        error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// PaymentError wraps a failure reported by the payment processor.
type PaymentError struct {
	Err error
}

func (e *PaymentError) Error() string {
	return fmt.Sprintf("payment processor: %v", e.Err)
}

func (e *PaymentError) Unwrap() error {
	return e.Err
}
