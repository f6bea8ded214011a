package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rentalcar_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "rentalcar_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	rentalsOpenedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rentalcar_rentals_opened_total",
		Help: "Count of rentals opened, by car category",
	}, []string{"category"})

	prepaidAmountTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rentalcar_prepaid_amount_total",
		Help: "Sum of prepaid amounts charged at booking time, by car category",
	}, []string{"category"})

	rentalsClosedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rentalcar_rentals_closed_total",
		Help: "Count of rentals closed, by car category and whether the return was late",
	}, []string{"category", "late"})

	overdueOpenRentals = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "rentalcar_overdue_open_rentals",
		Help: "Number of OPEN rentals past their planned return date, per the last report run",
	})
)

// ObserveHTTPRequest records an HTTP request metric
func ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// ObserveRentalOpened records a successful booking.
func ObserveRentalOpened(category string, prepaid float64) {
	rentalsOpenedTotal.WithLabelValues(category).Inc()
	prepaidAmountTotal.WithLabelValues(category).Add(prepaid)
}

// ObserveRentalClosed records a completed return.
func ObserveRentalClosed(category string, late bool) {
	lateLabel := "false"
	if late {
		lateLabel = "true"
	}
	rentalsClosedTotal.WithLabelValues(category, lateLabel).Inc()
}

// SetOverdueOpenRentals publishes the latest overdue-rental report count.
func SetOverdueOpenRentals(n int) {
	overdueOpenRentals.Set(float64(n))
}
