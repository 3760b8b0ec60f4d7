package specs

// LineItemSpec represents one product entry within a purchase record.
//
// Line items drive the profit accumulation: for each item the pipeline
// computes cost (purchase price × quantity) and revenue (via the injected
// CalculateRevenue strategy) and credits the difference to the seller.
type LineItemSpec struct {
	// SKU of the product sold. Must exist in the dataset's product catalog.
	SKU string `json:"sku"`

	// Number of units sold in this line item.
	Quantity int `json:"quantity"`

	// Per-unit sale price, as a decimal string.
	SalePrice string `json:"salePrice"`

	// Discount percentage applied to this line item, as a decimal string.
	//
	// Expected range is [0, 100]. Values outside the range are not validated
	// and propagate arithmetically through the revenue calculation — range
	// enforcement is the caller's responsibility.
	DiscountPercent string `json:"discountPercent"`
}

// PurchaseRecordSpec represents a single transaction attributed to a seller.
//
// Each record contributes exactly once to its seller's sales count, its
// TotalAmount is added to the seller's revenue, and every line item is
// processed exactly once for profit and per-SKU quantity accumulation.
type PurchaseRecordSpec struct {
	// ID of the seller this transaction is attributed to.
	SellerID string `json:"sellerID"`

	// Total transaction amount, as a decimal string.
	//
	// This is the amount added to the seller's accumulated revenue. It is
	// taken as-is from the input and is not recomputed from the line items.
	TotalAmount string `json:"totalAmount"`

	// Line items of this transaction, in input order.
	Items []LineItemSpec `json:"items"`
}
