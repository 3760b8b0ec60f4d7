package specs

// DatasetSpec is the complete input to the sales aggregation pipeline.
//
// All three collections are required and must be non-empty; aggregation
// validates this up front and fails with ErrInvalidInput otherwise. The
// dataset is read-only input — aggregation never mutates it, so the same
// dataset value can be aggregated repeatedly with identical results.
type DatasetSpec struct {
	// Sellers eligible to receive attributed transactions.
	Sellers []SellerSpec `json:"sellers"`

	// Product catalog referenced by line items.
	Products []ProductSpec `json:"products"`

	// Transactions to aggregate, in input order.
	//
	// Input order is significant: accumulation processes records (and their
	// line items) in order, and ties in the final profit ranking are broken
	// by original relative order.
	PurchaseRecords []PurchaseRecordSpec `json:"purchaseRecords"`
}
