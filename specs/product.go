package specs

// ProductSpec represents a product in the reference catalog.
//
// Products are read-only lookup data during aggregation: each line item
// references a product by SKU, and the product's purchase price determines
// the cost side of the profit calculation.
type ProductSpec struct {
	// Stock keeping unit — the unique key for this product.
	//
	// Every LineItemSpec.SKU must reference one of the SKUs present in the
	// dataset. Aggregation fails fast on a dangling reference.
	SKU string `json:"sku"`

	// Cost price the business paid for one unit, as a decimal string.
	//
	// Stored as string to preserve arbitrary precision across language
	// boundaries and avoid floating-point representation issues. Must be
	// parseable as a decimal number. Examples: "10", "4.99", "1250.50".
	PurchasePrice string `json:"purchasePrice"`
}
