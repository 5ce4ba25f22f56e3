package models

import "github.com/google/uuid"

// Address is one saved shipping address. IsDefault is store-managed:
// a non-empty address book always has exactly one default.
type Address struct {
	ID        uuid.UUID `json:"id"`
	Label     string    `json:"label"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone"`
	Street    string    `json:"street"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	ZipCode   string    `json:"zip_code"`
	Country   string    `json:"country"`
	IsDefault bool      `json:"is_default"`
}

// AddressState is the full persisted address book for one shopper.
type AddressState struct {
	Addresses []Address `json:"addresses"`
}
