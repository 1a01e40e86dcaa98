package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/QuestCraft_Go/internal/metrics"
)

type fixedClients int

func (f fixedClients) ClientCount() int { return int(f) }

type failingGatherer struct{}

func (failingGatherer) Gather() ([]*dto.MetricFamily, error) {
	return nil, errors.New("collector exploded")
}

func newStatsRegistry(t *testing.T) *prometheus.Registry {
	t.Helper()
	reg := prometheus.NewRegistry()

	completed := prometheus.NewCounterVec(prometheus.CounterOpts{Name: metrics.MetricNameQuestsCompleted}, []string{metrics.LabelKind})
	bought := prometheus.NewCounterVec(prometheus.CounterOpts{Name: metrics.MetricNameItemsBought}, []string{metrics.LabelItem})
	relayed := prometheus.NewCounterVec(prometheus.CounterOpts{Name: metrics.MetricNameRelayDispatches}, []string{metrics.LabelOutcome})
	earned := prometheus.NewCounter(prometheus.CounterOpts{Name: metrics.MetricNamePointsEarned})
	balance := prometheus.NewGauge(prometheus.GaugeOpts{Name: metrics.MetricNamePointsBalance})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    metrics.MetricNameHTTPRequestDuration,
		Buckets: []float64{0.01, 0.1, 1},
	}, []string{metrics.LabelMethod, metrics.LabelPath})

	reg.MustRegister(completed, bought, relayed, earned, balance, latency)

	completed.WithLabelValues("daily").Add(2)
	completed.WithLabelValues("timed").Inc()
	bought.WithLabelValues("STONE").Inc()
	relayed.WithLabelValues("sent").Inc()
	relayed.WithLabelValues("failed").Add(2)
	earned.Add(45)
	balance.Set(35)
	for i := 0; i < 19; i++ {
		latency.WithLabelValues("GET", "/api/v1/state").Observe(0.005)
	}
	latency.WithLabelValues("POST", "/api/v1/shop/buy").Observe(0.5)

	return reg
}

func TestHandleGetStats(t *testing.T) {
	h := NewStatsHandler(newStatsRegistry(t), fixedClients(3))

	rec := httptest.NewRecorder()
	h.HandleGetStats(rec, httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp StatsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, 2.0, resp.Game.QuestsCompletedByKind["daily"])
	assert.Equal(t, 1.0, resp.Game.QuestsCompletedByKind["timed"])
	assert.Equal(t, 1.0, resp.Game.ItemsBought["STONE"])
	assert.Equal(t, 45.0, resp.Game.PointsEarned)
	assert.Equal(t, 35.0, resp.Game.PointsBalance)
	assert.Equal(t, 1.0, resp.Relay.DispatchesByOutcome["sent"])
	assert.Equal(t, 2.0, resp.Relay.DispatchesByOutcome["failed"])
	assert.Equal(t, 3, resp.LiveFeed.ClientCount)

	assert.InDelta(t, (0.005*19+0.5)/20*1000, resp.HTTP.AvgLatencyMs, 0.001)
	assert.InDelta(t, 10.0, resp.HTTP.P95LatencyMs, 0.001)
}

func TestHandleGetStats_NoClients(t *testing.T) {
	h := NewStatsHandler(prometheus.NewRegistry(), nil)

	rec := httptest.NewRecorder()
	h.HandleGetStats(rec, httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp StatsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Zero(t, resp.LiveFeed.ClientCount)
	assert.Empty(t, resp.Game.ItemsBought)
}

func TestHandleGetStats_GatherError(t *testing.T) {
	h := NewStatsHandler(failingGatherer{}, nil)

	rec := httptest.NewRecorder()
	h.HandleGetStats(rec, httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrMsgGatherStats)
}

func TestEstimateQuantile(t *testing.T) {
	upper := []float64{0.1, 0.5, 1}
	counts := []uint64{50, 90, 100}
	total := uint64(100)
	hist := &dto.Histogram{SampleCount: &total}
	for i := range upper {
		hist.Bucket = append(hist.Bucket, &dto.Bucket{UpperBound: &upper[i], CumulativeCount: &counts[i]})
	}

	assert.Equal(t, 0.1, estimateQuantile(hist, 0.5))
	assert.Equal(t, 1.0, estimateQuantile(hist, 0.95))
	assert.Zero(t, estimateQuantile(&dto.Histogram{}, 0.95))
}
