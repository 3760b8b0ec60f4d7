package internal

import (
	"fmt"

	specs "sales-spec/specs"
)

// MaxTopProducts caps the length of a report's best-selling products list.
const MaxTopProducts = 10

type SellerReport struct {
	SellerID    SellerID
	Name        string
	Revenue     Decimal
	Profit      Decimal
	Bonus       Decimal
	SalesCount  ReportSalesCount
	TopProducts []ProductQuantity
}

// ToSpec converts the report to its primitive spec form. Monetary fields
// are rendered from their already-quantized values, so they always carry
// exactly two decimal places.
func (r SellerReport) ToSpec() specs.SellerReportSpec {
	topProducts := make([]specs.ProductQuantitySpec, len(r.TopProducts))
	for i, pq := range r.TopProducts {
		topProducts[i] = specs.ProductQuantitySpec{
			SKU:      pq.SKU().ToString(),
			Quantity: pq.Quantity(),
		}
	}

	return specs.SellerReportSpec{
		SellerID:    r.SellerID.ToString(),
		Name:        r.Name,
		Revenue:     r.Revenue.Text(),
		Profit:      r.Profit.Text(),
		Bonus:       r.Bonus.Text(),
		SalesCount:  r.SalesCount.ToInt(),
		TopProducts: topProducts,
	}
}

// ProductQuantity pairs a SKU with the cumulative quantity a seller sold.
type ProductQuantity struct {
	sku      ProductSKU
	quantity int
}

func NewProductQuantity(sku ProductSKU, quantity int) ProductQuantity {
	return ProductQuantity{
		sku:      sku,
		quantity: quantity,
	}
}

func (p ProductQuantity) SKU() ProductSKU {
	return p.sku
}

func (p ProductQuantity) Quantity() int {
	return p.quantity
}

type ReportSalesCount struct {
	value int
}

func NewReportSalesCount(value int) (ReportSalesCount, error) {
	if value < 0 {
		return ReportSalesCount{}, fmt.Errorf("sales count cannot be negative")
	}
	return ReportSalesCount{value: value}, nil
}

func (c ReportSalesCount) ToInt() int {
	return c.value
}
