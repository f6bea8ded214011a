package http

import (
	"net/http"

	"rentalcar-backend/internal/service"
)

// CustomerHandler exposes the customer read projection.
type CustomerHandler struct {
	customerSvc service.CustomerService
}

func NewCustomerHandler(customerSvc service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerSvc: customerSvc}
}

// HandleListCustomers handles GET /customers
func (h *CustomerHandler) HandleListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customerSvc.ListCustomers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customers)
}
