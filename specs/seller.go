package specs

// SellerSpec represents a seller as it appears in the raw input dataset.
//
// Sellers are reference data: the aggregation pipeline attributes purchase
// records to sellers by ID and accumulates revenue, profit and sales counts
// per seller. The input spec carries identity only — all accumulated values
// live on the resulting SellerReportSpec.
type SellerSpec struct {
	// Unique identifier for this seller.
	//
	// Every PurchaseRecordSpec.SellerID must reference one of the seller IDs
	// present in the dataset. Aggregation fails fast on a dangling reference.
	ID string `json:"id"`

	// Seller's first name. May be empty; used only to build the report's
	// display name.
	FirstName string `json:"firstName"`

	// Seller's last name. May be empty; used only to build the report's
	// display name.
	LastName string `json:"lastName"`
}
