package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulerService/pkg/metrics"
)

// Сборщик из pkg/metrics должен удовлетворять контракту middleware
var _ MetricsCollector = (*metrics.Metrics)(nil)

type fakeCollector struct {
	calls    int
	method   string
	path     string
	status   string
	duration time.Duration
}

func (f *fakeCollector) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	f.calls++
	f.method = method
	f.path = path
	f.status = status
	f.duration = duration
}

func TestMetrics_ObservesRequest(t *testing.T) {
	collector := &fakeCollector{}

	r := mux.NewRouter()
	r.Use(Metrics(collector))
	r.HandleFunc("/api/v1/slots/{slotId}", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/slots/42", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, 1, collector.calls)
	assert.Equal(t, http.MethodGet, collector.method)
	// В метрику уходит шаблон роута, а не сырой URL
	assert.Equal(t, "/api/v1/slots/{slotId}", collector.path)
	assert.Equal(t, "404", collector.status)
}

func TestMetrics_DefaultsToOKStatus(t *testing.T) {
	collector := &fakeCollector{}

	r := mux.NewRouter()
	r.Use(Metrics(collector))
	r.HandleFunc("/api/v1/slots", func(w http.ResponseWriter, req *http.Request) {
		// Хендлер не вызывает WriteHeader явно
	}).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/slots", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)

	require.Equal(t, 1, collector.calls)
	assert.Equal(t, "200", collector.status)
}
