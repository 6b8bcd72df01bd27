package errs

import "errors"

// Sentinel errors shared across the resolution pipeline
var (
	// Validation errors — detected synchronously, never retried
	ErrDomainValidation = errors.New("domain validation error")

	// Not-found errors — definitive "no price" results
	ErrTimelineNotFound = errors.New("price timeline not found")
	ErrPriceNotFound    = errors.New("no applicable price")

	// Backing store errors — propagated, never cached
	ErrBackingStore = errors.New("backing store failure")

	// Timeout errors — caller deadline elapsed during a fetch
	ErrResolveTimeout = errors.New("price resolution timed out")
)
