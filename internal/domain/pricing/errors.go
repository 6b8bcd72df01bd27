package pricing

import "errors"

var (
	ErrInvalidProductID   = errors.New("product id must be positive")
	ErrInvalidBrandID     = errors.New("brand id must be positive")
	ErrInvalidPriceListID = errors.New("price list id must be positive")
	ErrNegativePriority   = errors.New("priority cannot be negative")
	ErrNegativeAmount     = errors.New("amount cannot be negative")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidValidity    = errors.New("validity window start must be before end")
	ErrEmptyTimeline      = errors.New("timeline requires at least one rule")
)
