package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	repo "github.com/rogerio-castellano/inventory-dashboard/internal/repo"
)

// GetProductsHandler godoc
// @Summary List all products
// @Description Full catalog snapshot in seed order
// @Tags products
// @Produce json
// @Success 200 {array} models.Product
// @Failure 500 {string} string "Internal error"
// @Router /api/products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := catalogRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// GetProductByIDHandler godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Product
// @Failure 404 {object} MessageResponse
// @Failure 500 {string} string "Internal error"
// @Router /api/products/{id} [get]
func GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := catalogRepo.GetByID(id)
	if err != nil {
		if err == repo.ErrProductNotFound {
			writeJSON(w, http.StatusNotFound, MessageResponse{Message: "Product not found"})
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, product)
}
