package isovox

import "errors"

// Errors returned by New.
var (
	// ErrInvalidDimensions is returned when a volume dimension is not positive.
	ErrInvalidDimensions = errors.New("isovox: invalid dimensions")

	// ErrQueueCapacity is returned when a queue cannot hold the entries of a
	// single write.
	ErrQueueCapacity = errors.New("isovox: queue capacity too small")
)
