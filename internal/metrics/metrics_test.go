package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveAdjustment(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.ObserveAdjustment("tip_percent", 1)
	m.ObserveAdjustment("tip_percent", 10)
	m.ObserveAdjustment("tip_percent", -1)
	m.ObserveAdjustment("tip_percent", 0)

	if got := testutil.ToFloat64(m.Adjustments.WithLabelValues("tip_percent", "up")); got != 2 {
		t.Errorf("up adjustments = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.Adjustments.WithLabelValues("tip_percent", "down")); got != 1 {
		t.Errorf("down adjustments = %v, want 1", got)
	}
}

func TestHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	m.Resets.Inc()

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), "tipcalc_resets_total 1") {
		t.Errorf("body does not contain reset counter:\n%s", rec.Body.String())
	}
}
