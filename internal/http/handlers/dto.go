package handlers

// StockUpdateRequest is a vendor's proposal to set a product's stock.
type StockUpdateRequest struct {
	ProductID string `json:"productId"`
	VendorID  string `json:"vendorId"`
	NewStock  int    `json:"newStock"`
	Version   int    `json:"version"`
}

// MessageResponse wraps a human-readable error message.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is the liveness probe body.
type HealthResponse struct {
	Status string `json:"status"`
}
