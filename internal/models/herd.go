package models

// ThunderingHerdEvent summarizes one bulk-update episode: either a manual
// single-product conflict escalation or a simulated herd. Immutable once
// appended to the event log.
type ThunderingHerdEvent struct {
	ID                string             `json:"id"`
	Timestamp         string             `json:"timestamp"`
	VendorCount       int                `json:"vendorCount"`
	ProductsAffected  int                `json:"productsAffected"`
	ConflictsDetected int                `json:"conflictsDetected"`
	Resolved          bool               `json:"resolved"`
	Strategy          ResolutionStrategy `json:"strategy"`
	DurationMs        int64              `json:"duration"`
}
