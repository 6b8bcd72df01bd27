package response

import (
	"time"

	"price-resolver/internal/usecase/queries"
)

type ResolvedPriceResponse struct {
	ProductID   int64  `json:"product_id"`
	BrandID     int64  `json:"brand_id"`
	PriceListID int64  `json:"price_list_id"`
	ValidFrom   string `json:"valid_from"`
	ValidTo     string `json:"valid_to"`
	Amount      string `json:"amount"`
}

func FromResolvedPriceView(v *queries.ResolvedPriceView) *ResolvedPriceResponse {
	return &ResolvedPriceResponse{
		ProductID:   v.ProductID,
		BrandID:     v.BrandID,
		PriceListID: v.PriceListID,
		ValidFrom:   v.ValidFrom.UTC().Format(time.RFC3339),
		ValidTo:     v.ValidTo.UTC().Format(time.RFC3339),
		Amount:      v.Amount.StringFixed(2),
	}
}
