package request

import (
	"time"

	"price-resolver/internal/pkg/errs"
)

// application_date accepts RFC 3339 or the second-precision form
// without offset (interpreted as UTC) that upstream batch systems emit.
var applicationDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
}

type ResolvePriceRequest struct {
	ProductID       int64  `form:"product_id" binding:"required,gt=0"`
	BrandID         int64  `form:"brand_id" binding:"required,gt=0"`
	ApplicationDate string `form:"application_date" binding:"required"`
}

func (r *ResolvePriceRequest) ParseApplicationDate() (time.Time, error) {
	for _, layout := range applicationDateLayouts {
		if t, err := time.Parse(layout, r.ApplicationDate); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errs.New("application_date must be an ISO-8601 timestamp")
}
