package models

// Category is a marketplace product category.
type Category string

// Categories lists every product category supported by the catalog.
var Categories = []Category{
	"Electronics",
	"Home & Kitchen",
	"Clothing",
	"Books",
	"Toys & Games",
	"Sports & Outdoors",
	"Beauty & Personal Care",
	"Health & Household",
	"Automotive",
	"Pet Supplies",
	"Office Products",
	"Tools & Home Improvement",
	"Grocery & Gourmet",
	"Baby Products",
	"Garden & Outdoor",
}

// FulfillmentType describes who stores and ships a product.
type FulfillmentType string

const (
	FulfillmentFBA FulfillmentType = "FBA"
	FulfillmentFBM FulfillmentType = "FBM"
	FulfillmentSFP FulfillmentType = "SFP"
)

// FulfillmentTypes lists all fulfillment options.
var FulfillmentTypes = []FulfillmentType{FulfillmentFBA, FulfillmentFBM, FulfillmentSFP}

// StockStatus is derived from current stock, reorder point and max stock.
// It is never set independently of CurrentStock; see the stock package.
type StockStatus string

const (
	StatusInStock    StockStatus = "In Stock"
	StatusLowStock   StockStatus = "Low Stock"
	StatusOutOfStock StockStatus = "Out of Stock"
	StatusOverstock  StockStatus = "Overstock"
)

// Product represents one catalog SKU.
//
// Status and DaysOfStockLeft are derived fields, re-computed on every
// mutation of CurrentStock. Version increases by exactly one on every
// successful mutation and never decreases.
type Product struct {
	ID              string          `json:"id"`
	ASIN            string          `json:"asin"`
	SKU             string          `json:"sku"`
	Title           string          `json:"title"`
	Category        Category        `json:"category"`
	Price           float64         `json:"price"`
	Cost            float64         `json:"cost"`
	CurrentStock    int             `json:"currentStock"`
	ReorderPoint    int             `json:"reorderPoint"`
	MaxStock        int             `json:"maxStock"`
	Fulfillment     FulfillmentType `json:"fulfillment"`
	Status          StockStatus     `json:"status"`
	AvgDailySales   float64         `json:"avgDailySales"`
	Last7DaySales   []int           `json:"last7DaySales"`
	Last30DaySales  int             `json:"last30DaySales"`
	DaysOfStockLeft float64         `json:"daysOfStockLeft"`
	Vendor          string          `json:"vendor"`
	LastUpdated     string          `json:"lastUpdated"`
	Version         int             `json:"version"`
	Rating          float64         `json:"rating"`
	ReviewCount     int             `json:"reviewCount"`
}
