package readstore

import (
	"context"
	"time"

	"price-resolver/internal/domain/pricing"
	"price-resolver/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const findTimelineSQL = `
SELECT price_list_id, valid_from, valid_to, priority, amount::text
FROM prices
WHERE product_id = $1 AND brand_id = $2
ORDER BY id`

type priceRow struct {
	PriceListID int64
	ValidFrom   time.Time
	ValidTo     time.Time
	Priority    int
	Amount      string
}

// PriceReadStore loads a product+brand timeline from PostgreSQL. It
// implements queries.TimelineReadStore; zero rows map to KindNotFound.
type PriceReadStore struct {
	pool *pgxpool.Pool
}

func NewPriceReadStore(pool *pgxpool.Pool) *PriceReadStore {
	return &PriceReadStore{pool: pool}
}

func (r *PriceReadStore) FindByProductAndBrand(ctx context.Context, productID pricing.ProductID, brandID pricing.BrandID) (*pricing.Timeline, error) {
	rows, err := r.pool.Query(ctx, findTimelineSQL, productID.Int64(), brandID.Int64())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query prices", err)
	}

	raw, err := pgx.CollectRows(rows, pgx.RowToStructByPos[priceRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan prices", err)
	}
	if len(raw) == 0 {
		return nil, infra.WrapRepoErr("timeline not found", pgx.ErrNoRows, infra.KindNotFound)
	}

	rules := make([]pricing.Rule, 0, len(raw))
	for _, row := range raw {
		rule, err := toRule(row)
		if err != nil {
			// Rows that violate domain invariants mean corrupt data,
			// not a missing timeline.
			return nil, infra.WrapRepoErr("invalid price row", err)
		}
		rules = append(rules, rule)
	}

	timeline, err := pricing.NewTimeline(productID, brandID, rules)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid timeline", err)
	}
	return timeline, nil
}

func toRule(row priceRow) (pricing.Rule, error) {
	priceListID, err := pricing.NewPriceListID(row.PriceListID)
	if err != nil {
		return pricing.Rule{}, err
	}
	priority, err := pricing.NewPriority(row.Priority)
	if err != nil {
		return pricing.Rule{}, err
	}
	amount, err := pricing.NewMoneyFromString(row.Amount)
	if err != nil {
		return pricing.Rule{}, err
	}
	return pricing.NewRule(priceListID, row.ValidFrom, row.ValidTo, priority, amount)
}
