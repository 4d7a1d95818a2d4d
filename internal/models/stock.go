package models

// StockUpdate is a vendor-submitted intent to set a product's stock level.
// Version carries the product version the vendor believed was current; a
// mismatch against the catalog signals a conflict.
type StockUpdate struct {
	ProductID string `json:"productId"`
	VendorID  string `json:"vendorId"`
	NewStock  int    `json:"newStock"`
	Version   int    `json:"version"`
}

// ResolutionStrategy names a conflict-resolution policy.
type ResolutionStrategy string

const (
	StrategyLastWriteWins ResolutionStrategy = "last-write-wins"
	StrategyHighestStock  ResolutionStrategy = "highest-stock"
	StrategyAverage       ResolutionStrategy = "average"

	// StrategyReject keeps the current stock unchanged. It is part of the
	// schema but automatic selection never picks it.
	StrategyReject ResolutionStrategy = "reject"
)

// ConflictResolution records how a set of conflicting updates for one
// product was resolved. Immutable once created.
type ConflictResolution struct {
	ProductID     string             `json:"productId"`
	Updates       []StockUpdate      `json:"updates"`
	ResolvedStock int                `json:"resolvedStock"`
	Strategy      ResolutionStrategy `json:"strategy"`
	Timestamp     string             `json:"timestamp"`
}
