package service

import "errors"

var (
	// ErrItemNotFound is returned when an operation names an unknown item.
	ErrItemNotFound = errors.New("item not found")

	// ErrItemLocked is returned when rescheduling a completed item.
	ErrItemLocked = errors.New("item is complete and cannot be rescheduled")

	// ErrInvalidRange is returned for a reschedule without a start date.
	ErrInvalidRange = errors.New("invalid date range")
)
