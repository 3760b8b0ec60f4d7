package internal

import (
	"fmt"

	specs "sales-spec/specs"
)

type Product struct {
	SKU           ProductSKU
	PurchasePrice Decimal
}

func NewProduct(spec specs.ProductSpec) (Product, error) {
	sku, err := NewProductSKU(spec.SKU)
	if err != nil {
		return Product{}, fmt.Errorf("invalid SKU: %w", err)
	}

	purchasePrice, err := NewDecimal(spec.PurchasePrice)
	if err != nil {
		return Product{}, fmt.Errorf("invalid purchase price: %w", err)
	}

	return Product{
		SKU:           sku,
		PurchasePrice: purchasePrice,
	}, nil
}

type ProductSKU struct {
	value string
}

func NewProductSKU(value string) (ProductSKU, error) {
	if value == "" {
		return ProductSKU{}, fmt.Errorf("SKU is required")
	}
	return ProductSKU{value: value}, nil
}

func (s ProductSKU) ToString() string {
	return s.value
}
