package specs

// ProductQuantitySpec is one entry in a seller's best-selling products list.
type ProductQuantitySpec struct {
	// SKU of the product.
	SKU string `json:"sku"`

	// Cumulative quantity of this SKU sold by the seller.
	Quantity int `json:"quantity"`
}

// SellerReportSpec is the final per-seller aggregate returned to the caller.
//
// Reports are ordered by rank: the seller with the highest accumulated
// profit comes first. Monetary fields are decimal strings quantized to
// exactly two decimal places.
type SellerReportSpec struct {
	// Identifier of the seller this report describes.
	SellerID string `json:"sellerID"`

	// Display name, built as "FirstName LastName".
	Name string `json:"name"`

	// Accumulated revenue (sum of attributed transaction totals), as a
	// decimal string with two decimal places.
	Revenue string `json:"revenue"`

	// Accumulated profit (sum of per-line-item revenue minus cost), as a
	// decimal string with two decimal places.
	Profit string `json:"profit"`

	// Bonus awarded from the seller's profit rank, as a decimal string with
	// two decimal places. See CalculateBonus for the tier rules.
	Bonus string `json:"bonus"`

	// Number of purchase records attributed to this seller.
	SalesCount int `json:"salesCount"`

	// Best-selling SKUs by cumulative quantity, descending, capped at ten
	// entries. Ties keep the order in which the seller first sold each SKU.
	TopProducts []ProductQuantitySpec `json:"topProducts"`
}
