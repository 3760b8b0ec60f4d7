package internal

import (
	"fmt"

	specs "sales-spec/specs"
)

type Seller struct {
	ID        SellerID
	FirstName SellerName
	LastName  SellerName
}

func NewSeller(spec specs.SellerSpec) (Seller, error) {
	id, err := NewSellerID(spec.ID)
	if err != nil {
		return Seller{}, fmt.Errorf("invalid ID: %w", err)
	}

	return Seller{
		ID:        id,
		FirstName: NewSellerName(spec.FirstName),
		LastName:  NewSellerName(spec.LastName),
	}, nil
}

// DisplayName joins first and last name with a single space. Empty name
// parts are not trimmed; the joined form is what appears on the report.
func (s Seller) DisplayName() string {
	return s.FirstName.ToString() + " " + s.LastName.ToString()
}

type SellerID struct {
	value string
}

func NewSellerID(value string) (SellerID, error) {
	if value == "" {
		return SellerID{}, fmt.Errorf("seller ID is required")
	}
	return SellerID{value: value}, nil
}

func (id SellerID) ToString() string {
	return id.value
}

// SellerName is one part of a seller's name. Unlike most value objects here
// it carries no required check — name parts may legitimately be empty.
type SellerName struct {
	value string
}

func NewSellerName(value string) SellerName {
	return SellerName{value: value}
}

func (n SellerName) ToString() string {
	return n.value
}
