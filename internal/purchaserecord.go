package internal

import (
	"fmt"

	specs "sales-spec/specs"
)

type PurchaseRecord struct {
	SellerID    SellerID
	TotalAmount Decimal
	Items       []LineItem
}

func NewPurchaseRecord(spec specs.PurchaseRecordSpec) (PurchaseRecord, error) {
	sellerID, err := NewSellerID(spec.SellerID)
	if err != nil {
		return PurchaseRecord{}, fmt.Errorf("invalid seller ID: %w", err)
	}

	totalAmount, err := NewDecimal(spec.TotalAmount)
	if err != nil {
		return PurchaseRecord{}, fmt.Errorf("invalid total amount: %w", err)
	}

	items := make([]LineItem, len(spec.Items))
	for i, itemSpec := range spec.Items {
		item, err := NewLineItem(itemSpec)
		if err != nil {
			return PurchaseRecord{}, fmt.Errorf("invalid item[%d]: %w", i, err)
		}
		items[i] = item
	}

	return PurchaseRecord{
		SellerID:    sellerID,
		TotalAmount: totalAmount,
		Items:       items,
	}, nil
}

// LineItem is one product entry within a purchase record. The discount is
// kept exactly as provided — out-of-range percentages flow through to the
// revenue strategy unchecked.
type LineItem struct {
	sku             ProductSKU
	quantity        LineItemQuantity
	salePrice       Decimal
	discountPercent Decimal
}

func NewLineItem(spec specs.LineItemSpec) (LineItem, error) {
	sku, err := NewProductSKU(spec.SKU)
	if err != nil {
		return LineItem{}, fmt.Errorf("invalid SKU: %w", err)
	}

	quantity, err := NewLineItemQuantity(spec.Quantity)
	if err != nil {
		return LineItem{}, fmt.Errorf("invalid quantity: %w", err)
	}

	salePrice, err := NewDecimal(spec.SalePrice)
	if err != nil {
		return LineItem{}, fmt.Errorf("invalid sale price: %w", err)
	}

	discountPercent, err := NewDecimal(spec.DiscountPercent)
	if err != nil {
		return LineItem{}, fmt.Errorf("invalid discount: %w", err)
	}

	return LineItem{
		sku:             sku,
		quantity:        quantity,
		salePrice:       salePrice,
		discountPercent: discountPercent,
	}, nil
}

func (i LineItem) SKU() ProductSKU {
	return i.sku
}

func (i LineItem) Quantity() LineItemQuantity {
	return i.quantity
}

func (i LineItem) SalePrice() Decimal {
	return i.salePrice
}

func (i LineItem) DiscountPercent() Decimal {
	return i.discountPercent
}

// ToSpec converts the line item back to its primitive spec form, which is
// what the injected revenue strategy receives.
func (i LineItem) ToSpec() specs.LineItemSpec {
	return specs.LineItemSpec{
		SKU:             i.sku.ToString(),
		Quantity:        i.quantity.ToInt(),
		SalePrice:       i.salePrice.String(),
		DiscountPercent: i.discountPercent.String(),
	}
}

type LineItemQuantity struct {
	value int
}

func NewLineItemQuantity(value int) (LineItemQuantity, error) {
	if value < 0 {
		return LineItemQuantity{}, fmt.Errorf("quantity cannot be negative")
	}
	return LineItemQuantity{value: value}, nil
}

func (q LineItemQuantity) ToInt() int {
	return q.value
}
