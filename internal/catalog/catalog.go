package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/swiftmart-backend/pkg/enums"
)

// Product is one storefront catalog entry. Stock status is display-only
// metadata; nothing in checkout reserves or decrements it.
type Product struct {
	ID          uuid.UUID         `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	UnitPrice   decimal.Decimal   `json:"unit_price"`
	Image       string            `json:"image"`
	Unit        string            `json:"unit"`
	Rating      float64           `json:"rating"`
	StockStatus enums.StockStatus `json:"stock_status"`
}

// Service serves the static mock catalog backing the storefront.
type Service struct {
	products []Product
	byID     map[uuid.UUID]Product
}

// NewService builds a catalog over the bundled product set.
func NewService() *Service {
	return NewServiceWith(defaultProducts)
}

// NewServiceWith builds a catalog over an explicit product set.
func NewServiceWith(products []Product) *Service {
	byID := make(map[uuid.UUID]Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &Service{products: products, byID: byID}
}

// List returns all products in catalog order.
func (s *Service) List() []Product {
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

// Get looks a product up by id.
func (s *Service) Get(id uuid.UUID) (Product, bool) {
	p, ok := s.byID[id]
	return p, ok
}

func mustID(value string) uuid.UUID {
	return uuid.MustParse(value)
}

func price(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

var defaultProducts = []Product{
	{
		ID:          mustID("7d41f9a4-0b5c-4c5f-9a6e-6a1f22c3d101"),
		Name:        "Alphonso Mangoes",
		Description: "Ripened Ratnagiri alphonso, ready to eat.",
		UnitPrice:   price("349.00"),
		Image:       "/images/alphonso-mangoes.jpg",
		Unit:        "1 kg",
		Rating:      4.7,
		StockStatus: enums.StockStatusInStock,
	},
	{
		ID:          mustID("7d41f9a4-0b5c-4c5f-9a6e-6a1f22c3d102"),
		Name:        "Full Cream Milk",
		Description: "Pasteurized full cream milk pouch.",
		UnitPrice:   price("33.50"),
		Image:       "/images/full-cream-milk.jpg",
		Unit:        "500 ml",
		Rating:      4.5,
		StockStatus: enums.StockStatusInStock,
	},
	{
		ID:          mustID("7d41f9a4-0b5c-4c5f-9a6e-6a1f22c3d103"),
		Name:        "Farm Eggs",
		Description: "Free range brown eggs.",
		UnitPrice:   price("96.00"),
		Image:       "/images/farm-eggs.jpg",
		Unit:        "dozen",
		Rating:      4.6,
		StockStatus: enums.StockStatusLowStock,
	},
	{
		ID:          mustID("7d41f9a4-0b5c-4c5f-9a6e-6a1f22c3d104"),
		Name:        "Sourdough Loaf",
		Description: "Naturally leavened, baked every morning.",
		UnitPrice:   price("185.00"),
		Image:       "/images/sourdough-loaf.jpg",
		Unit:        "400 g",
		Rating:      4.8,
		StockStatus: enums.StockStatusInStock,
	},
	{
		ID:          mustID("7d41f9a4-0b5c-4c5f-9a6e-6a1f22c3d105"),
		Name:        "Basmati Rice",
		Description: "Aged long-grain basmati.",
		UnitPrice:   price("640.00"),
		Image:       "/images/basmati-rice.jpg",
		Unit:        "5 kg",
		Rating:      4.4,
		StockStatus: enums.StockStatusInStock,
	},
	{
		ID:          mustID("7d41f9a4-0b5c-4c5f-9a6e-6a1f22c3d106"),
		Name:        "Cold Pressed Groundnut Oil",
		Description: "Single origin, wood pressed.",
		UnitPrice:   price("420.00"),
		Image:       "/images/groundnut-oil.jpg",
		Unit:        "1 L",
		Rating:      4.3,
		StockStatus: enums.StockStatusOutOfStock,
	},
	{
		ID:          mustID("7d41f9a4-0b5c-4c5f-9a6e-6a1f22c3d107"),
		Name:        "Assam Tea",
		Description: "Second flush CTC leaf tea.",
		UnitPrice:   price("255.00"),
		Image:       "/images/assam-tea.jpg",
		Unit:        "250 g",
		Rating:      4.5,
		StockStatus: enums.StockStatusInStock,
	},
	{
		ID:          mustID("7d41f9a4-0b5c-4c5f-9a6e-6a1f22c3d108"),
		Name:        "Raw Forest Honey",
		Description: "Unfiltered multiflora honey.",
		UnitPrice:   price("520.00"),
		Image:       "/images/forest-honey.jpg",
		Unit:        "500 g",
		Rating:      4.6,
		StockStatus: enums.StockStatusLowStock,
	},
}
