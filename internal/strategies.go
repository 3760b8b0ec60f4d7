package internal

import (
	"fmt"

	specs "sales-spec/specs"
)

// DefaultCalculateRevenue implements specs.CalculateRevenue:
//
//	salePrice × quantity × (1 − discountPercent/100)
//
// The discount is applied exactly as given; values outside [0, 100] are the
// caller's responsibility and simply flow through the arithmetic.
func DefaultCalculateRevenue(item specs.LineItemSpec) (string, error) {
	salePrice, err := NewDecimal(item.SalePrice)
	if err != nil {
		return "", fmt.Errorf("invalid sale price: %w", err)
	}

	discount, err := NewDecimal(item.DiscountPercent)
	if err != nil {
		return "", fmt.Errorf("invalid discount: %w", err)
	}

	one := NewDecimalFromInt64(1)
	hundred := NewDecimalFromInt64(100)
	quantity := NewDecimalFromInt64(int64(item.Quantity))

	revenue := salePrice.Mul(quantity).Mul(one.Sub(discount.Div(hundred)))
	return revenue.String(), nil
}

// DefaultCalculateBonus implements specs.CalculateBonus.
//
// Tier precedence matters: the last-place check comes after the top-3
// checks, so when totalSellers <= 3 a seller who is both top-ranked and
// last-placed gets the higher tier, never 0%.
func DefaultCalculateBonus(rank int, totalSellers int, profit string) (string, error) {
	profitValue, err := NewDecimal(profit)
	if err != nil {
		return "", fmt.Errorf("invalid profit: %w", err)
	}

	var rate string
	switch {
	case rank == 0:
		rate = "0.15"
	case rank == 1 || rank == 2:
		rate = "0.10"
	case rank == totalSellers-1:
		rate = "0"
	default:
		rate = "0.05"
	}

	rateValue, err := NewDecimal(rate)
	if err != nil {
		return "", fmt.Errorf("invalid rate: %w", err)
	}

	return profitValue.Mul(rateValue).String(), nil
}
