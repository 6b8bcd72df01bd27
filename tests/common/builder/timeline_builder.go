package builder

import (
	"time"

	"price-resolver/internal/domain/pricing"
)

// RuleSpec is the raw material for one pricing rule; Build converts it
// through the validating domain constructors.
type RuleSpec struct {
	PriceListID int64
	ValidFrom   time.Time
	ValidTo     time.Time
	Priority    int
	Amount      string
}

// TimelineBuilder assembles a Timeline for tests. Defaults model the
// common two-rule shape: a base rule for the whole season and a
// higher-priority afternoon promotion on launch day.
type TimelineBuilder struct {
	productID int64
	brandID   int64
	rules     []RuleSpec
}

func NewTimelineBuilder() *TimelineBuilder {
	return &TimelineBuilder{
		productID: 35455,
		brandID:   1,
		rules: []RuleSpec{
			{
				PriceListID: 1,
				ValidFrom:   time.Date(2020, 6, 14, 0, 0, 0, 0, time.UTC),
				ValidTo:     time.Date(2020, 12, 31, 23, 59, 59, 0, time.UTC),
				Priority:    0,
				Amount:      "35.50",
			},
			{
				PriceListID: 2,
				ValidFrom:   time.Date(2020, 6, 14, 15, 0, 0, 0, time.UTC),
				ValidTo:     time.Date(2020, 6, 14, 18, 30, 0, 0, time.UTC),
				Priority:    1,
				Amount:      "25.45",
			},
		},
	}
}

func (b *TimelineBuilder) With(mutate func(*TimelineBuilder)) *TimelineBuilder {
	mutate(b)
	return b
}

func (b *TimelineBuilder) WithProductID(id int64) *TimelineBuilder {
	b.productID = id
	return b
}

func (b *TimelineBuilder) WithBrandID(id int64) *TimelineBuilder {
	b.brandID = id
	return b
}

func (b *TimelineBuilder) WithRules(rules ...RuleSpec) *TimelineBuilder {
	b.rules = rules
	return b
}

func (b *TimelineBuilder) AddRule(rule RuleSpec) *TimelineBuilder {
	b.rules = append(b.rules, rule)
	return b
}

func (b *TimelineBuilder) BuildDomain() (*pricing.Timeline, error) {
	productID, err := pricing.NewProductID(b.productID)
	if err != nil {
		return nil, err
	}
	brandID, err := pricing.NewBrandID(b.brandID)
	if err != nil {
		return nil, err
	}
	rules := make([]pricing.Rule, 0, len(b.rules))
	for _, spec := range b.rules {
		rule, err := BuildRule(spec)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return pricing.NewTimeline(productID, brandID, rules)
}

func BuildRule(spec RuleSpec) (pricing.Rule, error) {
	priceListID, err := pricing.NewPriceListID(spec.PriceListID)
	if err != nil {
		return pricing.Rule{}, err
	}
	priority, err := pricing.NewPriority(spec.Priority)
	if err != nil {
		return pricing.Rule{}, err
	}
	amount, err := pricing.NewMoneyFromString(spec.Amount)
	if err != nil {
		return pricing.Rule{}, err
	}
	return pricing.NewRule(priceListID, spec.ValidFrom, spec.ValidTo, priority, amount)
}
