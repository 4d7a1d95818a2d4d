package models

// DashboardStats is an aggregate projection over the catalog and the herd
// event log. It is recomputed on demand and never stored.
type DashboardStats struct {
	TotalProducts     int     `json:"totalProducts"`
	TotalValue        float64 `json:"totalValue"`
	LowStockCount     int     `json:"lowStockCount"`
	OutOfStockCount   int     `json:"outOfStockCount"`
	AvgDaysOfStock    float64 `json:"avgDaysOfStock"`
	TotalConflicts    int     `json:"totalConflicts"`
	ResolvedConflicts int     `json:"resolvedConflicts"`
	SalesVelocity     float64 `json:"salesVelocity"`
}

// SalesDataPoint is one day of the seeded sales series.
type SalesDataPoint struct {
	Date    string  `json:"date"`
	Sales   int     `json:"sales"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}
