package biderrors

import "errors"

// Repository-level errors
var (
	ErrBidNotFound   = errors.New("bid not found")
	ErrItemNotFound  = errors.New("item not found")
	ErrPartyNotFound = errors.New("party not found")
	ErrPersistence   = errors.New("persistence failure")
)

// business logic errors
var (
	ErrValidation        = errors.New("invalid bid")
	ErrInvalidTransition = errors.New("status transition not allowed")
)

// ErrNotificationDelivery marks outbound notification failures. It is always
// non-fatal to the lifecycle operation that triggered the notification.
var ErrNotificationDelivery = errors.New("notification delivery failed")
