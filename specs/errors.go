package specs

import "errors"

// Validation and processing failures are fatal: either the full report is
// produced or the call fails with an error wrapping one of these sentinels.
// Callers discriminate with errors.Is.
var (
	// ErrInvalidInput indicates the dataset is unusable: one or more of the
	// sellers, products, or purchase-record collections is missing or empty,
	// or an element of the dataset is malformed.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrMissingStrategies indicates the calculation config does not provide
	// both required strategy functions.
	ErrMissingStrategies = errors.New("missing strategy functions")

	// ErrUnknownReference indicates a purchase record cites a seller ID, or
	// a line item cites a SKU, that does not exist in the reference
	// collections. The offending identifier is included in the error message.
	ErrUnknownReference = errors.New("unknown reference")
)
