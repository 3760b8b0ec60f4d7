package specs

// CalculateRevenue computes the revenue earned by a single line item:
//
//	salePrice × quantity × (1 − discountPercent/100)
//
// Pure function, no side effects. The discount is expected in [0, 100];
// out-of-range values are not validated and flow through the arithmetic.
// Returns the revenue as a decimal string.
//
// See internal.DefaultCalculateRevenue for the reference implementation.
type CalculateRevenue func(item LineItemSpec) (string, error)

// CalculateBonus computes a seller's bonus from their zero-based profit
// rank, the total number of sellers, and their accumulated profit (decimal
// string). The tiers are evaluated in this exact priority order:
//
//  1. rank 0 → 15% of profit (top performer)
//  2. rank 1 or 2 → 10% of profit
//  3. rank == totalSellers−1 → 0% (last place) — checked after the top-3
//     cases, so with three or fewer sellers the higher tier wins
//  4. otherwise → 5% of profit
//
// Pure function, no side effects. Returns the bonus as a decimal string.
//
// See internal.DefaultCalculateBonus for the reference implementation.
type CalculateBonus func(rank int, totalSellers int, profit string) (string, error)

// CalculationConfigSpec carries the two injected calculation strategies.
//
// Both functions are required; aggregation validates their presence before
// any processing and fails with ErrMissingStrategies if either is nil.
type CalculationConfigSpec struct {
	// Strategy producing the revenue for one line item.
	CalculateRevenue CalculateRevenue

	// Strategy producing the bonus for one ranked seller.
	CalculateBonus CalculateBonus
}

// AggregateSales transforms a raw sales dataset into a ranked seller report.
//
// Process:
//  1. Validate the dataset and calculation config
//  2. Index sellers by ID and products by SKU
//  3. Accumulate revenue, profit, sales counts and per-SKU quantities over
//     all purchase records, in input order
//  4. Rank sellers by descending profit (stable), assign bonuses, extract
//     top products
//  5. Assemble one report per seller, rank order, money fields quantized to
//     two decimal places
//
// Returns one SellerReportSpec per input seller, rank 0 first.
// Returns error wrapping ErrInvalidInput, ErrMissingStrategies, or
// ErrUnknownReference; no partial results are produced.
//
// This is the spec-level interface using only primitive types.
// See internal.Aggregate for the reference implementation.
type AggregateSales func(dataset DatasetSpec, config CalculationConfigSpec) ([]SellerReportSpec, error)
