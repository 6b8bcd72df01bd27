package pricing

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// MoneyScale is the fractional precision every amount is normalized to.
const MoneyScale = 2

type ProductID struct {
	value int64
}

func NewProductID(v int64) (ProductID, error) {
	if v <= 0 {
		return ProductID{}, ErrInvalidProductID
	}
	return ProductID{value: v}, nil
}

func (id ProductID) Int64() int64   { return id.value }
func (id ProductID) String() string { return strconv.FormatInt(id.value, 10) }

type BrandID struct {
	value int64
}

func NewBrandID(v int64) (BrandID, error) {
	if v <= 0 {
		return BrandID{}, ErrInvalidBrandID
	}
	return BrandID{value: v}, nil
}

func (id BrandID) Int64() int64   { return id.value }
func (id BrandID) String() string { return strconv.FormatInt(id.value, 10) }

type PriceListID struct {
	value int64
}

func NewPriceListID(v int64) (PriceListID, error) {
	if v <= 0 {
		return PriceListID{}, ErrInvalidPriceListID
	}
	return PriceListID{value: v}, nil
}

func (id PriceListID) Int64() int64 { return id.value }

// Priority ranks rules that overlap in time; higher value wins.
type Priority struct {
	value int
}

func NewPriority(v int) (Priority, error) {
	if v < 0 {
		return Priority{}, ErrNegativePriority
	}
	return Priority{value: v}, nil
}

func (p Priority) Value() int { return p.value }

func (p Priority) HigherThan(other Priority) bool {
	return p.value > other.value
}

// Money is a non-negative amount normalized to MoneyScale digits,
// rounded half-up.
type Money struct {
	amount decimal.Decimal
}

func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, ErrNegativeAmount
	}
	return Money{amount: amount.Round(MoneyScale)}, nil
}

func NewMoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	return NewMoney(d)
}

func (m Money) Decimal() decimal.Decimal { return m.amount }

func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) String() string {
	return m.amount.StringFixed(MoneyScale)
}
