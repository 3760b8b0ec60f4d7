package internal

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	specs "sales-spec/specs"
)

type Dataset struct {
	Sellers         []Seller
	Products        []Product
	PurchaseRecords []PurchaseRecord
}

// NewDataset validates and converts a raw dataset spec into domain objects.
//
// The three collection-presence checks are accumulated so a caller sees
// every empty collection at once, not just the first. Any failure wraps
// specs.ErrInvalidInput.
func NewDataset(spec specs.DatasetSpec) (Dataset, error) {
	var problems *multierror.Error
	if len(spec.Sellers) == 0 {
		problems = multierror.Append(problems, fmt.Errorf("sellers collection is empty"))
	}
	if len(spec.Products) == 0 {
		problems = multierror.Append(problems, fmt.Errorf("products collection is empty"))
	}
	if len(spec.PurchaseRecords) == 0 {
		problems = multierror.Append(problems, fmt.Errorf("purchase records collection is empty"))
	}
	if err := problems.ErrorOrNil(); err != nil {
		return Dataset{}, fmt.Errorf("%w: %v", specs.ErrInvalidInput, err)
	}

	sellers := make([]Seller, len(spec.Sellers))
	for i, sellerSpec := range spec.Sellers {
		seller, err := NewSeller(sellerSpec)
		if err != nil {
			return Dataset{}, fmt.Errorf("%w: invalid seller at index %d: %v", specs.ErrInvalidInput, i, err)
		}
		sellers[i] = seller
	}

	products := make([]Product, len(spec.Products))
	for i, productSpec := range spec.Products {
		product, err := NewProduct(productSpec)
		if err != nil {
			return Dataset{}, fmt.Errorf("%w: invalid product at index %d: %v", specs.ErrInvalidInput, i, err)
		}
		products[i] = product
	}

	records := make([]PurchaseRecord, len(spec.PurchaseRecords))
	for i, recordSpec := range spec.PurchaseRecords {
		record, err := NewPurchaseRecord(recordSpec)
		if err != nil {
			return Dataset{}, fmt.Errorf("%w: invalid purchase record at index %d: %v", specs.ErrInvalidInput, i, err)
		}
		records[i] = record
	}

	return Dataset{
		Sellers:         sellers,
		Products:        products,
		PurchaseRecords: records,
	}, nil
}
