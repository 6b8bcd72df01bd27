package pricing

import "time"

// Rule is one time-bounded price assertion. Pure value object; its
// lifecycle belongs to the Timeline that owns it.
type Rule struct {
	priceListID PriceListID
	validFrom   time.Time
	validTo     time.Time
	priority    Priority
	amount      Money
}

func NewRule(priceListID PriceListID, validFrom, validTo time.Time, priority Priority, amount Money) (Rule, error) {
	if priceListID.value <= 0 {
		return Rule{}, ErrInvalidPriceListID
	}
	// Strict: a window with equal bounds is rejected.
	if validFrom.IsZero() || validTo.IsZero() || !validFrom.Before(validTo) {
		return Rule{}, ErrInvalidValidity
	}
	return Rule{
		priceListID: priceListID,
		validFrom:   validFrom,
		validTo:     validTo,
		priority:    priority,
		amount:      amount,
	}, nil
}

// CoversAt reports whether t falls inside the validity window,
// both bounds inclusive.
func (r Rule) CoversAt(t time.Time) bool {
	return !t.Before(r.validFrom) && !t.After(r.validTo)
}

func (r Rule) PriceListID() PriceListID { return r.priceListID }
func (r Rule) ValidFrom() time.Time     { return r.validFrom }
func (r Rule) ValidTo() time.Time       { return r.validTo }
func (r Rule) Priority() Priority       { return r.priority }
func (r Rule) Amount() Money            { return r.amount }
