package services

import (
	"errors"
	"fmt"
	"time"
)

// Validation failures are caller errors and must never be retried.
// Only ErrStorageConflict and ErrStorageUnavailable are retryable, and
// only by repeating the whole call.
var (
	ErrGoalNotFound       = errors.New("goal not found")
	ErrDayNotFound        = errors.New("day entry not found")
	ErrDuplicateTitle     = errors.New("goal with the same title already exists")
	ErrDayAlreadyChecked  = errors.New("day already checked")
	ErrDayOutOfRange      = errors.New("day number out of range")
	ErrOutOfSequence      = errors.New("day number out of sequence")
	ErrDateMismatch       = errors.New("day date mismatch")
	ErrInvalidTitle       = errors.New("goal title must not be empty")
	ErrInvalidTotalDays   = errors.New("goal day count must be positive")
	ErrInvalidOutcome     = errors.New("invalid day outcome")
	ErrStorageConflict    = errors.New("storage conflict")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// DayOutOfRangeError reports a day number outside 1..TotalDays.
type DayOutOfRangeError struct {
	DayNumber int
	TotalDays int
}

func (e DayOutOfRangeError) Error() string {
	return fmt.Sprintf("day %d is out of range: this goal is for %d day(s)", e.DayNumber, e.TotalDays)
}

func (e DayOutOfRangeError) Unwrap() error {
	return ErrDayOutOfRange
}

// OutOfSequenceError carries the next legal day number for the goal.
type OutOfSequenceError struct {
	Expected int
}

func (e OutOfSequenceError) Error() string {
	return fmt.Sprintf("expected day number: %d", e.Expected)
}

func (e OutOfSequenceError) Unwrap() error {
	return ErrOutOfSequence
}

// DateMismatchError carries the calendar date the proposed day number
// must fall on.
type DateMismatchError struct {
	Expected time.Time
}

func (e DateMismatchError) Error() string {
	return fmt.Sprintf("expected day date: %s", e.Expected.Format("2006-01-02"))
}

func (e DateMismatchError) Unwrap() error {
	return ErrDateMismatch
}

func storageFailure(err error) error {
	return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
}
