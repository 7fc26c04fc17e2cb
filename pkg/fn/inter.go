package fn

import "time"

type ValueProvider[T any] interface {
	// Value returns the successful result value
	Value() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithFailure defines an interface for types that carry either a value or a
// failure payload
type WithFailure[T, E any] interface {
	ValueProvider[T]
	// Failure returns the failure payload if the operation failed
	Failure() E
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
}
