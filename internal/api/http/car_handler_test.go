package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"rentalcar-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestHandleListCars(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		inventorySvc := &mockInventoryService{}
		inventorySvc.On("ListCars", mock.Anything).Return([]domain.Car{
			{ID: 1, Brand: "BMW", Model: "7", Category: domain.CarCategoryPremium, Available: true},
			{ID: 2, Brand: "Seat", Model: "Ibiza", Category: domain.CarCategorySmall, Available: false},
		}, nil)

		router := NewRouter(&mockRentalService{}, inventorySvc, &mockCustomerService{})
		req := httptest.NewRequest("GET", "/cars", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var cars []domain.Car
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cars))
		assert.Len(t, cars, 2)
		assert.Equal(t, "BMW", cars[0].Brand)
	})

	t.Run("Backend failure maps to 500", func(t *testing.T) {
		inventorySvc := &mockInventoryService{}
		inventorySvc.On("ListCars", mock.Anything).Return(nil, errors.New("connection refused"))

		router := NewRouter(&mockRentalService{}, inventorySvc, &mockCustomerService{})
		req := httptest.NewRequest("GET", "/cars", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestHandleListCustomers(t *testing.T) {
	customerSvc := &mockCustomerService{}
	customerSvc.On("ListCustomers", mock.Anything).Return([]domain.Customer{
		{ID: 1, Name: "Alice", Points: 8},
	}, nil)

	router := NewRouter(&mockRentalService{}, &mockInventoryService{}, customerSvc)
	req := httptest.NewRequest("GET", "/customers", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var customers []domain.Customer
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &customers))
	assert.Len(t, customers, 1)
	assert.Equal(t, "Alice", customers[0].Name)
}
