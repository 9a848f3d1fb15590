package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/talx-hub/rez-booking/internal/model"
)

const namespace = "rez"

// Metrics holds the service collectors. Each instance registers on its own registerer.
type Metrics struct {
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	bookings        *prometheus.CounterVec
	cashbackCoins   prometheus.Counter
	creditedCoins   prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests by route, method and status code",
			},
			[]string{"route", "method", "code"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Latency in seconds of HTTP requests by route",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
		bookings: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "bookings_created_total",
				Help:      "Total number of confirmed bookings by merchant",
			},
			[]string{"merchant"},
		),
		cashbackCoins: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cashback_coins_total",
				Help:      "Total ReZ Coins credited as booking cashback",
			},
		),
		creditedCoins: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "credited_coins_total",
				Help:      "Sum of ReZ Coins added through direct wallet credits",
			},
		),
	}

	reg.MustRegister(
		m.requests,
		m.requestDuration,
		m.bookings,
		m.cashbackCoins,
		m.creditedCoins,
	)
	return m
}

func (m *Metrics) ObserveRequest(route, method string, code int, elapsed time.Duration) {
	m.requests.WithLabelValues(route, method, strconv.Itoa(code)).Inc()
	m.requestDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

func (m *Metrics) BookingCreated(merchantName string, cashback model.Coins) {
	m.bookings.WithLabelValues(merchantName).Inc()
	if f := cashback.ToFloat64(); f > 0 {
		m.cashbackCoins.Add(f)
	}
}

// WalletCredited ignores negative credits since counters only grow.
func (m *Metrics) WalletCredited(amount model.Coins) {
	if f := amount.ToFloat64(); f > 0 {
		m.creditedCoins.Add(f)
	}
}
