package internal

import (
	"fmt"
	"sort"

	specs "sales-spec/specs"
)

// Aggregate implements specs.AggregateSales.
// Converts specs to domain objects, transforms, and converts back to specs.
func Aggregate(
	datasetSpec specs.DatasetSpec,
	configSpec specs.CalculationConfigSpec,
) ([]specs.SellerReportSpec, error) {
	// Validate strategy functions before touching the data
	if configSpec.CalculateRevenue == nil {
		return nil, fmt.Errorf("%w: calculateRevenue is required", specs.ErrMissingStrategies)
	}
	if configSpec.CalculateBonus == nil {
		return nil, fmt.Errorf("%w: calculateBonus is required", specs.ErrMissingStrategies)
	}

	// Convert dataset spec to domain objects
	dataset, err := NewDataset(datasetSpec)
	if err != nil {
		return nil, err
	}

	// Perform aggregation using domain objects
	reports, err := aggregate(dataset, configSpec.CalculateRevenue, configSpec.CalculateBonus)
	if err != nil {
		return nil, err
	}

	// Convert domain objects back to specs
	reportSpecs := make([]specs.SellerReportSpec, len(reports))
	for i, report := range reports {
		reportSpecs[i] = report.ToSpec()
	}
	return reportSpecs, nil
}

// sellerTotals is the working record for one seller during accumulation.
// Totals are built fresh per invocation — the input dataset is never
// mutated, so repeated calls over the same dataset are independent.
type sellerTotals struct {
	seller       Seller
	revenue      Decimal
	profit       Decimal
	salesCount   int
	productsSold map[string]int
	skuOrder     []string
}

// aggregate runs the three-stage pipeline: index construction, a single
// accumulation pass over the purchase records, then ranking and report
// assembly. This is the private domain-level function.
func aggregate(
	dataset Dataset,
	revenueFn specs.CalculateRevenue,
	bonusFn specs.CalculateBonus,
) ([]SellerReport, error) {
	// Stage 1: index sellers by ID and products by SKU. Seller input order
	// is preserved so profit ties rank in original relative order.
	totalsByID := make(map[string]*sellerTotals, len(dataset.Sellers))
	ranking := make([]*sellerTotals, len(dataset.Sellers))
	for i, seller := range dataset.Sellers {
		totals := &sellerTotals{
			seller:       seller,
			revenue:      NewDecimalFromInt64(0),
			profit:       NewDecimalFromInt64(0),
			productsSold: make(map[string]int),
		}
		totalsByID[seller.ID.ToString()] = totals
		ranking[i] = totals
	}

	productsBySKU := make(map[string]Product, len(dataset.Products))
	for _, product := range dataset.Products {
		productsBySKU[product.SKU.ToString()] = product
	}

	// Stage 2: accumulate purchase records in input order
	for _, record := range dataset.PurchaseRecords {
		totals, ok := totalsByID[record.SellerID.ToString()]
		if !ok {
			return nil, fmt.Errorf("%w: seller %q cited by purchase record not found",
				specs.ErrUnknownReference, record.SellerID.ToString())
		}

		totals.salesCount++
		totals.revenue = totals.revenue.Add(record.TotalAmount)

		for _, item := range record.Items {
			product, ok := productsBySKU[item.SKU().ToString()]
			if !ok {
				return nil, fmt.Errorf("%w: SKU %q cited by line item not found",
					specs.ErrUnknownReference, item.SKU().ToString())
			}

			quantity := NewDecimalFromInt64(int64(item.Quantity().ToInt()))
			cost := product.PurchasePrice.Mul(quantity)

			revenueStr, err := revenueFn(item.ToSpec())
			if err != nil {
				return nil, fmt.Errorf("revenue calculation failed for SKU %q: %w",
					item.SKU().ToString(), err)
			}
			revenue, err := NewDecimal(revenueStr)
			if err != nil {
				return nil, fmt.Errorf("revenue calculation for SKU %q returned invalid value: %w",
					item.SKU().ToString(), err)
			}

			totals.profit = totals.profit.Add(revenue.Sub(cost))

			sku := item.SKU().ToString()
			if _, seen := totals.productsSold[sku]; !seen {
				totals.skuOrder = append(totals.skuOrder, sku)
			}
			totals.productsSold[sku] += item.Quantity().ToInt()
		}
	}

	// Stage 3: rank by descending profit (stable), then assemble reports
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].profit.Cmp(ranking[j].profit) > 0
	})

	reports := make([]SellerReport, len(ranking))
	for rank, totals := range ranking {
		bonusStr, err := bonusFn(rank, len(ranking), totals.profit.String())
		if err != nil {
			return nil, fmt.Errorf("bonus calculation failed for seller %q at rank %d: %w",
				totals.seller.ID.ToString(), rank, err)
		}
		bonus, err := NewDecimal(bonusStr)
		if err != nil {
			return nil, fmt.Errorf("bonus calculation for seller %q returned invalid value: %w",
				totals.seller.ID.ToString(), err)
		}

		topProducts, err := topProductsFor(totals)
		if err != nil {
			return nil, fmt.Errorf("invalid products sold for seller %q: %w",
				totals.seller.ID.ToString(), err)
		}

		salesCount, err := NewReportSalesCount(totals.salesCount)
		if err != nil {
			return nil, fmt.Errorf("invalid sales count for seller %q: %w",
				totals.seller.ID.ToString(), err)
		}

		reports[rank] = SellerReport{
			SellerID:    totals.seller.ID,
			Name:        totals.seller.DisplayName(),
			Revenue:     totals.revenue.Round2(),
			Profit:      totals.profit.Round2(),
			Bonus:       bonus.Round2(),
			SalesCount:  salesCount,
			TopProducts: topProducts,
		}
	}

	return reports, nil
}

// topProductsFor converts a seller's accumulated per-SKU quantities into the
// best-sellers list: first-seen SKU order, stable-sorted by quantity
// descending, truncated to MaxTopProducts. The stable sort over first-seen
// order makes tie ordering deterministic.
func topProductsFor(totals *sellerTotals) ([]ProductQuantity, error) {
	entries := make([]ProductQuantity, 0, len(totals.skuOrder))
	for _, sku := range totals.skuOrder {
		productSKU, err := NewProductSKU(sku)
		if err != nil {
			return nil, err
		}
		entries = append(entries, NewProductQuantity(productSKU, totals.productsSold[sku]))
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Quantity() > entries[j].Quantity()
	})

	if len(entries) > MaxTopProducts {
		entries = entries[:MaxTopProducts]
	}
	return entries, nil
}
