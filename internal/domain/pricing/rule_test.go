//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"price-resolver/internal/domain/pricing"
	"price-resolver/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	from = time.Date(2020, 6, 14, 0, 0, 0, 0, time.UTC)
	to   = time.Date(2020, 12, 31, 23, 59, 59, 0, time.UTC)
)

func TestNewRule(t *testing.T) {
	base := builder.RuleSpec{
		PriceListID: 1,
		ValidFrom:   from,
		ValidTo:     to,
		Priority:    0,
		Amount:      "35.50",
	}

	cases := []struct {
		name   string
		mutate func(*builder.RuleSpec)
		errIs  error
	}{
		{
			name:   "valid rule",
			mutate: func(*builder.RuleSpec) {},
		},
		{
			name:   "non-positive price list id",
			mutate: func(s *builder.RuleSpec) { s.PriceListID = 0 },
			errIs:  pricing.ErrInvalidPriceListID,
		},
		{
			name:   "negative price list id",
			mutate: func(s *builder.RuleSpec) { s.PriceListID = -3 },
			errIs:  pricing.ErrInvalidPriceListID,
		},
		{
			name:   "negative priority",
			mutate: func(s *builder.RuleSpec) { s.Priority = -1 },
			errIs:  pricing.ErrNegativePriority,
		},
		{
			name:   "negative amount",
			mutate: func(s *builder.RuleSpec) { s.Amount = "-0.01" },
			errIs:  pricing.ErrNegativeAmount,
		},
		{
			name:   "malformed amount",
			mutate: func(s *builder.RuleSpec) { s.Amount = "abc" },
			errIs:  pricing.ErrInvalidAmount,
		},
		{
			name:   "window start after end",
			mutate: func(s *builder.RuleSpec) { s.ValidFrom, s.ValidTo = to, from },
			errIs:  pricing.ErrInvalidValidity,
		},
		{
			name:   "window start equals end",
			mutate: func(s *builder.RuleSpec) { s.ValidTo = s.ValidFrom },
			errIs:  pricing.ErrInvalidValidity,
		},
		{
			name:   "zero valid from",
			mutate: func(s *builder.RuleSpec) { s.ValidFrom = time.Time{} },
			errIs:  pricing.ErrInvalidValidity,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			spec := base
			c.mutate(&spec)
			rule, err := builder.BuildRule(spec)

			if c.errIs == nil {
				require.NoError(t, err)
				assert.Equal(t, spec.PriceListID, rule.PriceListID().Int64())
			} else {
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func TestRuleCoversAt(t *testing.T) {
	rule, err := builder.BuildRule(builder.RuleSpec{
		PriceListID: 1,
		ValidFrom:   from,
		ValidTo:     to,
		Priority:    0,
		Amount:      "35.50",
	})
	require.NoError(t, err)

	cases := []struct {
		name    string
		at      time.Time
		covered bool
	}{
		{name: "inside window", at: from.Add(12 * time.Hour), covered: true},
		{name: "lower bound inclusive", at: from, covered: true},
		{name: "upper bound inclusive", at: to, covered: true},
		{name: "one second before start", at: from.Add(-time.Second), covered: false},
		{name: "one second after end", at: to.Add(time.Second), covered: false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.covered, rule.CoversAt(c.at))
		})
	}
}

func TestMoneyNormalization(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "already two digits", input: "35.50", expected: "35.50"},
		{name: "rounds half up", input: "25.455", expected: "25.46"},
		{name: "rounds down below half", input: "25.454", expected: "25.45"},
		{name: "pads integer amount", input: "30", expected: "30.00"},
		{name: "zero is allowed", input: "0", expected: "0.00"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m, err := pricing.NewMoneyFromString(c.input)
			require.NoError(t, err)
			assert.Equal(t, c.expected, m.String())
		})
	}
}

func TestValueObjectValidation(t *testing.T) {
	_, err := pricing.NewProductID(0)
	assert.ErrorIs(t, err, pricing.ErrInvalidProductID)

	_, err = pricing.NewProductID(-5)
	assert.ErrorIs(t, err, pricing.ErrInvalidProductID)

	_, err = pricing.NewBrandID(0)
	assert.ErrorIs(t, err, pricing.ErrInvalidBrandID)

	_, err = pricing.NewPriority(0)
	assert.NoError(t, err)

	p1, err := pricing.NewPriority(1)
	require.NoError(t, err)
	p0, err := pricing.NewPriority(0)
	require.NoError(t, err)
	assert.True(t, p1.HigherThan(p0))
	assert.False(t, p0.HigherThan(p1))
	assert.False(t, p1.HigherThan(p1))
}
