package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talx-hub/rez-booking/internal/model"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.BookingCreated("FitZone Gym", model.NewCoins(200))
	m.BookingCreated("FitZone Gym", model.NewCoins(200))
	m.BookingCreated("Zen Spa Retreat", model.NewCoins(180))
	m.WalletCredited(model.NewCoins(50))
	m.WalletCredited(model.NewCoins(-20))
	m.ObserveRequest("/api/book", "POST", 200, 10*time.Millisecond)

	assert.InDelta(t, 2.0, testutil.ToFloat64(m.bookings.WithLabelValues("FitZone Gym")), 0.001)
	assert.InDelta(t, 580.0, testutil.ToFloat64(m.cashbackCoins), 0.001)
	assert.InDelta(t, 50.0, testutil.ToFloat64(m.creditedCoins), 0.001)
	assert.InDelta(t, 1.0,
		testutil.ToFloat64(m.requests.WithLabelValues("/api/book", "POST", "200")), 0.001)

	n, err := testutil.GatherAndCount(reg, "rez_http_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestNew_separateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New(prometheus.NewRegistry())
		New(prometheus.NewRegistry())
	})
}
