package api

import (
	"errors"
	"net/http"

	reqdto "price-resolver/internal/handler/dto/request"
	resdto "price-resolver/internal/handler/dto/response"
	"price-resolver/internal/handler/httperr"
	"price-resolver/internal/pkg/errs"
	"price-resolver/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PriceHandler struct {
	q queries.PriceQueries
}

func NewPriceHandler(q queries.PriceQueries) *PriceHandler {
	return &PriceHandler{q: q}
}

// @Summary Resolve price
// @Description Resolve the applicable price for a product and brand at a given instant
// @Tags prices
// @Produce json
// @Param product_id query int true "Product ID"
// @Param brand_id query int true "Brand ID"
// @Param application_date query string true "Application date (ISO-8601)"
// @Success 200 {object} resdto.ResolvedPriceResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Failure 504 {object} map[string]string
// @Router /prices [get]
func (h *PriceHandler) Resolve(c *gin.Context) {
	var req reqdto.ResolvePriceRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	at, err := req.ParseApplicationDate()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid application_date", nil)
		return
	}

	view, err := h.q.Resolve(c.Request.Context(), at, req.ProductID, req.BrandID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		case errors.Is(err, errs.ErrPriceNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "No applicable price", nil)
		case errors.Is(err, errs.ErrResolveTimeout):
			httperr.AbortWithError(c, http.StatusGatewayTimeout, err, "Price resolution timed out", nil)
		case errors.Is(err, errs.ErrBackingStore):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Backing store unavailable", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Price resolution failed", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromResolvedPriceView(view))
}
