// Package seed generates the mock catalog and sales history the store is
// initialized with.
package seed

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/rogerio-castellano/inventory-dashboard/internal/models"
	"github.com/rogerio-castellano/inventory-dashboard/internal/stock"
)

var vendors = []string{
	"Shenzhen Electronics Co.", "Pacific Trade Group", "Alpine Supply Chain",
	"Eastern Distribution LLC", "WestCoast Imports", "GlobalSource Partners",
	"TechBridge Supply", "PrimePath Logistics", "OceanLink Trading", "SwiftFulfill Inc.",
}

var adjectives = []string{
	"Premium", "Ultra", "Pro", "Essential", "Advanced", "Classic", "Elite",
	"Smart", "Eco", "Max", "Plus", "Deluxe", "Compact", "Heavy-Duty", "Wireless",
}

var nounsByCategory = map[models.Category][]string{
	"Electronics":              {"Bluetooth Speaker", "USB-C Hub", "Wireless Charger", "Power Bank", "Smart Watch", "Earbuds", "Webcam", "LED Strip"},
	"Home & Kitchen":           {"Air Fryer", "Knife Set", "Blender", "Coffee Maker", "Cutting Board", "Spice Rack", "Dish Rack", "Pan Set"},
	"Clothing":                 {"T-Shirt", "Hoodie", "Jacket", "Jeans", "Sneakers", "Cap", "Socks Pack", "Belt"},
	"Books":                    {"Cookbook", "Novel", "Textbook", "Journal", "Planner", "Guide", "Workbook", "Atlas"},
	"Toys & Games":             {"Board Game", "Puzzle Set", "Action Figure", "Building Blocks", "Card Game", "Drone", "RC Car", "Dollhouse"},
	"Sports & Outdoors":        {"Yoga Mat", "Dumbbells", "Water Bottle", "Camping Tent", "Hiking Boots", "Resistance Bands", "Bike Light", "Jump Rope"},
	"Beauty & Personal Care":   {"Face Cream", "Shampoo", "Sunscreen", "Lip Balm", "Hair Dryer", "Nail Kit", "Perfume", "Eye Cream"},
	"Health & Household":       {"Vitamins", "First Aid Kit", "Thermometer", "Hand Sanitizer", "Air Purifier", "Humidifier", "Scale", "Pillow"},
	"Automotive":               {"Dash Cam", "Car Charger", "Floor Mats", "Phone Mount", "LED Bulbs", "Tire Gauge", "Seat Cover", "Air Freshener"},
	"Pet Supplies":             {"Dog Bed", "Cat Toy", "Pet Carrier", "Food Bowl", "Leash", "Grooming Kit", "Treats", "Collar"},
	"Office Products":          {"Desk Organizer", "Stapler", "Notebooks", "Markers", "Label Maker", "Paper Shredder", "Desk Lamp", "Folder Set"},
	"Tools & Home Improvement": {"Drill Set", "Screwdriver Kit", "Tape Measure", "Level", "Wrench Set", "Pliers", "Flashlight", "Toolbox"},
	"Grocery & Gourmet":        {"Olive Oil", "Protein Bars", "Tea Set", "Spice Mix", "Honey", "Granola", "Pasta", "Coffee Beans"},
	"Baby Products":            {"Baby Monitor", "Diaper Bag", "Stroller", "High Chair", "Bottle Set", "Pacifier", "Car Seat", "Crib Sheet"},
	"Garden & Outdoor":         {"Garden Hose", "Planter", "Solar Lights", "Bird Feeder", "Pruning Shears", "Compost Bin", "Trowel", "Watering Can"},
}

const asinChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func generateASIN(rng *rand.Rand) string {
	var b strings.Builder
	b.WriteString("B0")
	for i := 0; i < 8; i++ {
		b.WriteByte(asinChars[rng.Intn(len(asinChars))])
	}
	return b.String()
}

// GenerateProducts synthesizes count catalog products. Every product
// starts at version 1 with status fields consistent with its stock.
func GenerateProducts(count int, rng *rand.Rand) []models.Product {
	now := time.Now().UTC()
	products := make([]models.Product, 0, count)
	for i := 0; i < count; i++ {
		category := models.Categories[rng.Intn(len(models.Categories))]
		nouns := nounsByCategory[category]
		title := adjectives[rng.Intn(len(adjectives))] + " " + nouns[rng.Intn(len(nouns))]

		price := math.Round((rng.Float64()*200+5)*100) / 100
		cost := math.Round(price*(0.3+rng.Float64()*0.4)*100) / 100
		currentStock := rng.Intn(500)
		maxStock := rng.Intn(500) + 200
		reorderPoint := int(float64(maxStock) * 0.15)
		avgDailySales := math.Round((rng.Float64()*30+0.5)*10) / 10

		status, daysLeft := stock.DeriveStatus(currentStock, reorderPoint, maxStock, avgDailySales)

		last7 := make([]int, 7)
		for d := range last7 {
			last7[d] = int(avgDailySales * (0.5 + rng.Float64()))
		}

		products = append(products, models.Product{
			ID:              fmt.Sprintf("prod_%06d", i),
			ASIN:            generateASIN(rng),
			SKU:             fmt.Sprintf("%s-%06d", strings.ToUpper(string(category)[:3]), i),
			Title:           title,
			Category:        category,
			Price:           price,
			Cost:            cost,
			CurrentStock:    currentStock,
			ReorderPoint:    reorderPoint,
			MaxStock:        maxStock,
			Fulfillment:     models.FulfillmentTypes[rng.Intn(len(models.FulfillmentTypes))],
			Status:          status,
			AvgDailySales:   avgDailySales,
			Last7DaySales:   last7,
			Last30DaySales:  int(avgDailySales * 30 * (0.8 + rng.Float64()*0.4)),
			DaysOfStockLeft: daysLeft,
			Vendor:          vendors[rng.Intn(len(vendors))],
			LastUpdated:     now.AddDate(0, 0, -rng.Intn(30)).Format(time.RFC3339),
			Version:         1,
			Rating:          math.Round((3+rng.Float64()*2)*10) / 10,
			ReviewCount:     rng.Intn(5000),
		})
	}
	return products
}

// GenerateSalesData synthesizes the daily sales series for the last days
// days, oldest first, with a sinusoidal base plus noise.
func GenerateSalesData(days int, rng *rand.Rand) []models.SalesDataPoint {
	now := time.Now().UTC()
	data := make([]models.SalesDataPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		baseSales := 150 + math.Sin(float64(i)*0.3)*40
		sales := int(baseSales + rng.Float64()*60)
		avgPrice := 25 + rng.Float64()*15
		data = append(data, models.SalesDataPoint{
			Date:    now.AddDate(0, 0, -i).Format("2006-01-02"),
			Sales:   sales,
			Revenue: math.Round(float64(sales)*avgPrice*100) / 100,
			Orders:  int(float64(sales) * (0.6 + rng.Float64()*0.3)),
		})
	}
	return data
}
