package pricing

import "time"

// Timeline holds every pricing rule for one (product, brand) pair.
// It is frozen at construction; resolution is a pure function over
// the rule list.
type Timeline struct {
	productID ProductID
	brandID   BrandID
	rules     []Rule
}

func NewTimeline(productID ProductID, brandID BrandID, rules []Rule) (*Timeline, error) {
	if productID.value <= 0 {
		return nil, ErrInvalidProductID
	}
	if brandID.value <= 0 {
		return nil, ErrInvalidBrandID
	}
	if len(rules) == 0 {
		return nil, ErrEmptyTimeline
	}
	frozen := make([]Rule, len(rules))
	copy(frozen, rules)
	return &Timeline{
		productID: productID,
		brandID:   brandID,
		rules:     frozen,
	}, nil
}

func (t *Timeline) ProductID() ProductID { return t.productID }
func (t *Timeline) BrandID() BrandID     { return t.brandID }

func (t *Timeline) Rules() []Rule {
	out := make([]Rule, len(t.rules))
	copy(out, t.rules)
	return out
}

// ResolveAt picks the applicable rule for the given instant: among the
// rules whose window covers it, the one with the highest priority.
// When priorities tie, the earliest rule in store order wins; the scan
// only replaces the candidate on a strictly higher priority, so the
// result never depends on iteration quirks.
func (t *Timeline) ResolveAt(at time.Time) (Rule, bool) {
	var best Rule
	found := false
	for _, r := range t.rules {
		if !r.CoversAt(at) {
			continue
		}
		if !found || r.priority.HigherThan(best.priority) {
			best = r
			found = true
		}
	}
	return best, found
}
