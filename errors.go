package splaycache

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidStep is returned when a sweep step is not positive.
	ErrInvalidStep = errors.New("step must be positive")

	// ErrInvalidRange is returned when a sweep bound is negative.
	ErrInvalidRange = errors.New("range bound must not be negative")

	// ErrInvalidCapacity is returned when a cache capacity is not positive.
	ErrInvalidCapacity = errors.New("capacity must be positive")

	// ErrInvalidWorkload is returned when a workload has no keys or operations.
	ErrInvalidWorkload = errors.New("workload size must be positive")
)

// ErrInvalidConfig reports which configuration field was rejected.
//
// The reason (one of the sentinel errors above) can be matched with errors.Is.
type ErrInvalidConfig struct {
	Field string
	Value int
	cause error
}

// NewInvalidConfig returns an *ErrInvalidConfig for field with the given cause.
func NewInvalidConfig(field string, value int, cause error) error {
	return &ErrInvalidConfig{Field: field, Value: value, cause: cause}
}

func (e *ErrInvalidConfig) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("invalid %s: %d", e.Field, e.Value)
	}
	return fmt.Sprintf("invalid %s: %d: %v", e.Field, e.Value, e.cause)
}

func (e *ErrInvalidConfig) Unwrap() error { return e.cause }
