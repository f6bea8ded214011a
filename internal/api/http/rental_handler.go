package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"rentalcar-backend/internal/domain"
	"rentalcar-backend/internal/service"

	"github.com/gorilla/mux"
)

const dateLayout = "2006-01-02"

// RentalHandler exposes the rental workflows and the rental history
// listing over HTTP.
type RentalHandler struct {
	rentalSvc service.RentalService
}

func NewRentalHandler(rentalSvc service.RentalService) *RentalHandler {
	return &RentalHandler{rentalSvc: rentalSvc}
}

type openRentalRequest struct {
	CustomerID int64 `json:"customerId"`
	CarID      int64 `json:"carId"`
	Days       int   `json:"days"`
}

// HandleOpenRental handles POST /rentals
func (h *RentalHandler) HandleOpenRental(w http.ResponseWriter, r *http.Request) {
	var req openRentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.NewValidationError("invalid request body"))
		return
	}

	result, err := h.rentalSvc.OpenRental(r.Context(), req.CustomerID, req.CarID, req.Days)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type closeRentalRequest struct {
	ActualReturnDate string `json:"actualReturnDate"`
}

// HandleCloseRental handles POST /rentals/{id}/return
func (h *RentalHandler) HandleCloseRental(w http.ResponseWriter, r *http.Request) {
	rentalID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, domain.NewValidationError("invalid rental id"))
		return
	}

	var req closeRentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.NewValidationError("invalid request body"))
		return
	}
	actualReturnDate, err := time.Parse(dateLayout, req.ActualReturnDate)
	if err != nil {
		writeError(w, domain.NewValidationError("actualReturnDate must be formatted as yyyy-mm-dd"))
		return
	}

	result, err := h.rentalSvc.CloseRental(r.Context(), rentalID, actualReturnDate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// HandleListRentals handles GET /rentals?status=OPEN|RETURNED&customerId=1
func (h *RentalHandler) HandleListRentals(w http.ResponseWriter, r *http.Request) {
	var filter service.ListRentalsFilter
	if v := r.URL.Query().Get("customerId"); v != "" {
		customerID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			writeError(w, domain.NewValidationError("invalid customerId"))
			return
		}
		filter.CustomerID = &customerID
	}
	if v := r.URL.Query().Get("status"); v != "" {
		filter.Status = &v
	}

	views, err := h.rentalSvc.ListRentals(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}
