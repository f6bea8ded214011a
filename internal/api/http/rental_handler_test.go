package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rentalcar-backend/internal/domain"
	"rentalcar-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestRouter(rentalSvc *mockRentalService) http.Handler {
	return NewRouter(rentalSvc, &mockInventoryService{}, &mockCustomerService{})
}

func doRequest(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("error marshalling request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleOpenRental(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		rentalSvc := &mockRentalService{}
		rentalSvc.On("OpenRental", mock.Anything, int64(1), int64(2), 10).
			Return(&service.OpenRentalResult{RentalID: 42, PrepaidAmount: 1410, LoyaltyPointsAwarded: 3}, nil)

		rec := doRequest(t, newTestRouter(rentalSvc), "POST", "/rentals",
			map[string]any{"customerId": 1, "carId": 2, "days": 10})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

		var result service.OpenRentalResult
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Equal(t, int64(42), result.RentalID)
		assert.Equal(t, 1410.0, result.PrepaidAmount)
		assert.Equal(t, 3, result.LoyaltyPointsAwarded)
		rentalSvc.AssertExpectations(t)
	})

	t.Run("Malformed body", func(t *testing.T) {
		rentalSvc := &mockRentalService{}
		req := httptest.NewRequest("POST", "/rentals", bytes.NewReader([]byte("{not json")))
		rec := httptest.NewRecorder()
		newTestRouter(rentalSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		rentalSvc.AssertNotCalled(t, "OpenRental", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Validation failure maps to 400", func(t *testing.T) {
		rentalSvc := &mockRentalService{}
		rentalSvc.On("OpenRental", mock.Anything, int64(1), int64(2), 0).
			Return(nil, domain.NewValidationError("days must be greater than zero"))

		rec := doRequest(t, newTestRouter(rentalSvc), "POST", "/rentals",
			map[string]any{"customerId": 1, "carId": 2, "days": 0})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var resp errorResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "bad_request", resp.Error)
		assert.Equal(t, "days must be greater than zero", resp.Message)
	})

	t.Run("Missing car maps to 404", func(t *testing.T) {
		rentalSvc := &mockRentalService{}
		rentalSvc.On("OpenRental", mock.Anything, int64(1), int64(7), 3).
			Return(nil, domain.NewNotFoundError("Car", 7))

		rec := doRequest(t, newTestRouter(rentalSvc), "POST", "/rentals",
			map[string]any{"customerId": 1, "carId": 7, "days": 3})

		assert.Equal(t, http.StatusNotFound, rec.Code)
		var resp errorResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "not_found", resp.Error)
		assert.Equal(t, "Car not found: 7", resp.Message)
	})

	t.Run("Unavailable car maps to 409", func(t *testing.T) {
		rentalSvc := &mockRentalService{}
		rentalSvc.On("OpenRental", mock.Anything, int64(1), int64(2), 3).
			Return(nil, domain.NewConflictError("car is not available"))

		rec := doRequest(t, newTestRouter(rentalSvc), "POST", "/rentals",
			map[string]any{"customerId": 1, "carId": 2, "days": 3})

		assert.Equal(t, http.StatusConflict, rec.Code)
		var resp errorResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "conflict", resp.Error)
		assert.Equal(t, "car is not available", resp.Message)
	})

	t.Run("Unexpected failure maps to 500", func(t *testing.T) {
		rentalSvc := &mockRentalService{}
		rentalSvc.On("OpenRental", mock.Anything, int64(1), int64(2), 3).
			Return(nil, errors.New("connection refused"))

		rec := doRequest(t, newTestRouter(rentalSvc), "POST", "/rentals",
			map[string]any{"customerId": 1, "carId": 2, "days": 3})

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		var resp errorResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "internal", resp.Error)
		assert.Equal(t, "internal server error", resp.Message)
	})
}

func TestHandleCloseRental(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		rentalSvc := &mockRentalService{}
		returnDate := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
		rentalSvc.On("CloseRental", mock.Anything, int64(42), returnDate).
			Return(&service.CloseRentalResult{RentalID: 42, Surcharge: 130}, nil)

		rec := doRequest(t, newTestRouter(rentalSvc), "POST", "/rentals/42/return",
			map[string]any{"actualReturnDate": "2026-09-10"})

		assert.Equal(t, http.StatusOK, rec.Code)
		var result service.CloseRentalResult
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Equal(t, int64(42), result.RentalID)
		assert.Equal(t, 130.0, result.Surcharge)
		rentalSvc.AssertExpectations(t)
	})

	t.Run("Invalid date format", func(t *testing.T) {
		rentalSvc := &mockRentalService{}
		rec := doRequest(t, newTestRouter(rentalSvc), "POST", "/rentals/42/return",
			map[string]any{"actualReturnDate": "10/09/2026"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		rentalSvc.AssertNotCalled(t, "CloseRental", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Missing rental maps to 404", func(t *testing.T) {
		rentalSvc := &mockRentalService{}
		rentalSvc.On("CloseRental", mock.Anything, int64(99), mock.Anything).
			Return(nil, domain.NewNotFoundError("Rental", 99))

		rec := doRequest(t, newTestRouter(rentalSvc), "POST", "/rentals/99/return",
			map[string]any{"actualReturnDate": "2026-09-10"})

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandleListRentals(t *testing.T) {
	t.Run("Passes filters through", func(t *testing.T) {
		rentalSvc := &mockRentalService{}
		customerID := int64(1)
		status := "OPEN"
		rentalSvc.On("ListRentals", mock.Anything, service.ListRentalsFilter{CustomerID: &customerID, Status: &status}).
			Return([]service.RentalView{{ID: 1, CustomerID: 1, Status: "OPEN"}}, nil)

		rec := doRequest(t, newTestRouter(rentalSvc), "GET", "/rentals?customerId=1&status=OPEN", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		var views []service.RentalView
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &views))
		assert.Len(t, views, 1)
		rentalSvc.AssertExpectations(t)
	})

	t.Run("Unfiltered", func(t *testing.T) {
		rentalSvc := &mockRentalService{}
		rentalSvc.On("ListRentals", mock.Anything, service.ListRentalsFilter{}).
			Return([]service.RentalView{}, nil)

		rec := doRequest(t, newTestRouter(rentalSvc), "GET", "/rentals", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Invalid customerId", func(t *testing.T) {
		rentalSvc := &mockRentalService{}
		rec := doRequest(t, newTestRouter(rentalSvc), "GET", "/rentals?customerId=abc", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		rentalSvc.AssertNotCalled(t, "ListRentals", mock.Anything, mock.Anything)
	})
}
