package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/swiftmart-backend/pkg/enums"
)

// CompareEntry snapshots the comparison-relevant fields of a product at
// the moment it was added.
type CompareEntry struct {
	ProductID   uuid.UUID         `json:"product_id"`
	Name        string            `json:"name"`
	Price       decimal.Decimal   `json:"price"`
	Image       string            `json:"image"`
	Rating      *float64          `json:"rating,omitempty"`
	StockStatus enums.StockStatus `json:"stock_status"`
	Unit        string            `json:"unit"`
}

// CompareState is the full persisted comparison set for one shopper.
// Membership is by product id and the set is hard-capped.
type CompareState struct {
	Items []CompareEntry `json:"items"`
}

// Contains reports membership by product id.
func (c CompareState) Contains(productID uuid.UUID) bool {
	for _, item := range c.Items {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}
