package handlers

import "strings"

type StockUpdateValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateStockUpdate(u StockUpdateRequest) []StockUpdateValidationError {
	errs := []StockUpdateValidationError{}
	if strings.TrimSpace(u.ProductID) == "" {
		errs = append(errs, StockUpdateValidationError{Field: "ProductId", Description: "ProductId is required"})
	}
	if strings.TrimSpace(u.VendorID) == "" {
		errs = append(errs, StockUpdateValidationError{Field: "VendorId", Description: "VendorId is required"})
	}
	if u.NewStock < 0 {
		errs = append(errs, StockUpdateValidationError{Field: "NewStock", Description: "NewStock cannot be negative"})
	}
	if u.Version < 1 {
		errs = append(errs, StockUpdateValidationError{Field: "Version", Description: "Version must be at least 1"})
	}
	return errs
}
