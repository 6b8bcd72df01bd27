//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"price-resolver/internal/handler/api"
	resdto "price-resolver/internal/handler/dto/response"
	"price-resolver/internal/pkg/errs"
	"price-resolver/internal/usecase/queries"
	queriesmock "price-resolver/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PriceHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockPriceQueries
	handler     *api.PriceHandler
}

func (s *PriceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockPriceQueries(s.mockCtrl)
	s.handler = api.NewPriceHandler(s.mockQueries)

	s.router.GET("/api/prices", s.handler.Resolve)
}

func (s *PriceHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPriceHandlerSuite(t *testing.T) {
	suite.Run(t, new(PriceHandlerTestSuite))
}

func (s *PriceHandlerTestSuite) get(query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/prices?"+query, nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *PriceHandlerTestSuite) TestResolveSuccess() {
	view := &queries.ResolvedPriceView{
		ProductID:   35455,
		BrandID:     1,
		PriceListID: 2,
		ValidFrom:   time.Date(2020, 6, 14, 15, 0, 0, 0, time.UTC),
		ValidTo:     time.Date(2020, 6, 14, 18, 30, 0, 0, time.UTC),
		Amount:      decimal.RequireFromString("25.45"),
	}
	s.mockQueries.EXPECT().
		Resolve(gomock.Any(), time.Date(2020, 6, 14, 16, 0, 0, 0, time.UTC), int64(35455), int64(1)).
		Return(view, nil)

	rec := s.get("product_id=35455&brand_id=1&application_date=2020-06-14T16:00:00")
	s.Equal(http.StatusOK, rec.Code)

	var body resdto.ResolvedPriceResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(int64(35455), body.ProductID)
	s.Equal(int64(1), body.BrandID)
	s.Equal(int64(2), body.PriceListID)
	s.Equal("25.45", body.Amount)
	s.Equal("2020-06-14T15:00:00Z", body.ValidFrom)
	s.Equal("2020-06-14T18:30:00Z", body.ValidTo)
}

func (s *PriceHandlerTestSuite) TestResolveAcceptsRFC3339() {
	s.mockQueries.EXPECT().
		Resolve(gomock.Any(), gomock.Any(), int64(35455), int64(1)).
		Return(&queries.ResolvedPriceView{
			ProductID:   35455,
			BrandID:     1,
			PriceListID: 1,
			ValidFrom:   time.Date(2020, 6, 14, 0, 0, 0, 0, time.UTC),
			ValidTo:     time.Date(2020, 12, 31, 23, 59, 59, 0, time.UTC),
			Amount:      decimal.RequireFromString("35.50"),
		}, nil)

	rec := s.get("product_id=35455&brand_id=1&application_date=2020-06-14T10:00:00Z")
	s.Equal(http.StatusOK, rec.Code)
}

func (s *PriceHandlerTestSuite) TestResolveValidation() {
	cases := []struct {
		name  string
		query string
	}{
		{name: "missing product_id", query: "brand_id=1&application_date=2020-06-14T10:00:00"},
		{name: "missing brand_id", query: "product_id=35455&application_date=2020-06-14T10:00:00"},
		{name: "missing application_date", query: "product_id=35455&brand_id=1"},
		{name: "non-positive product_id", query: "product_id=0&brand_id=1&application_date=2020-06-14T10:00:00"},
		{name: "non-numeric product_id", query: "product_id=abc&brand_id=1&application_date=2020-06-14T10:00:00"},
		{name: "malformed application_date", query: "product_id=35455&brand_id=1&application_date=june-14th"},
	}

	for _, c := range cases {
		s.Run(c.name, func() {
			// No Resolve expectation: validation fails before the usecase.
			rec := s.get(c.query)
			s.Equal(http.StatusBadRequest, rec.Code)
		})
	}
}

func (s *PriceHandlerTestSuite) TestResolveErrorMapping() {
	cases := []struct {
		name       string
		err        error
		expectCode int
	}{
		{
			name:       "validation error from usecase",
			err:        errs.Mark(errs.New("bad input"), errs.ErrDomainValidation),
			expectCode: http.StatusBadRequest,
		},
		{
			name:       "no applicable price",
			err:        errs.Mark(errs.New("nothing covers"), errs.ErrPriceNotFound),
			expectCode: http.StatusNotFound,
		},
		{
			name:       "resolution timeout",
			err:        errs.Mark(context.DeadlineExceeded, errs.ErrResolveTimeout),
			expectCode: http.StatusGatewayTimeout,
		},
		{
			name:       "backing store failure",
			err:        errs.Mark(errs.New("connection refused"), errs.ErrBackingStore),
			expectCode: http.StatusBadGateway,
		},
		{
			name:       "unclassified failure",
			err:        errs.New("boom"),
			expectCode: http.StatusInternalServerError,
		},
	}

	for _, c := range cases {
		s.Run(c.name, func() {
			s.mockQueries.EXPECT().
				Resolve(gomock.Any(), gomock.Any(), int64(35455), int64(1)).
				Return(nil, c.err)

			rec := s.get("product_id=35455&brand_id=1&application_date=2020-06-14T10:00:00")
			s.Equal(c.expectCode, rec.Code)
		})
	}
}
