package http

import (
	"net/http"

	"rentalcar-backend/internal/service"
)

// CarHandler exposes the inventory read projection.
type CarHandler struct {
	inventorySvc service.InventoryService
}

func NewCarHandler(inventorySvc service.InventoryService) *CarHandler {
	return &CarHandler{inventorySvc: inventorySvc}
}

// HandleListCars handles GET /cars
func (h *CarHandler) HandleListCars(w http.ResponseWriter, r *http.Request) {
	cars, err := h.inventorySvc.ListCars(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cars)
}
