package http

import (
	"rentalcar-backend/internal/service"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires all HTTP endpoints.
func NewRouter(rentalSvc service.RentalService, inventorySvc service.InventoryService, customerSvc service.CustomerService) *mux.Router {
	rentalHandler := NewRentalHandler(rentalSvc)
	carHandler := NewCarHandler(inventorySvc)
	customerHandler := NewCustomerHandler(customerSvc)

	router := mux.NewRouter()
	router.Use(RequestLogging)

	router.HandleFunc("/rentals", rentalHandler.HandleOpenRental).Methods("POST")
	router.HandleFunc("/rentals/{id}/return", rentalHandler.HandleCloseRental).Methods("POST")
	router.HandleFunc("/rentals", rentalHandler.HandleListRentals).Methods("GET")
	router.HandleFunc("/cars", carHandler.HandleListCars).Methods("GET")
	router.HandleFunc("/customers", customerHandler.HandleListCustomers).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	return router
}
