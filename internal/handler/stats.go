package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/osse101/QuestCraft_Go/internal/metrics"
)

// StatsResponse contains JSON-formatted metrics for dashboards
type StatsResponse struct {
	HTTP     HTTPStats     `json:"http"`
	Events   EventStats    `json:"events"`
	Game     GameStats     `json:"game"`
	Relay    RelayStats    `json:"relay"`
	LiveFeed LiveFeedStats `json:"live_feed"`
}

type HTTPStats struct {
	RequestsTotalByStatus map[string]float64 `json:"requests_total_by_status"`
	AvgLatencyMs          float64            `json:"avg_latency_ms"`
	P95LatencyMs          float64            `json:"p95_latency_ms"`
	InFlight              float64            `json:"in_flight"`
}

type EventStats struct {
	PublishedTotalByType map[string]float64 `json:"published_total_by_type"`
}

type GameStats struct {
	QuestsCompletedByKind map[string]float64 `json:"quests_completed_by_kind"`
	QuestsCancelled       float64            `json:"quests_cancelled"`
	ItemsBought           map[string]float64 `json:"items_bought"`
	PointsEarned          float64            `json:"points_earned"`
	PointsSpent           float64            `json:"points_spent"`
	PointsBalance         float64            `json:"points_balance"`
	DailyCompletedToday   float64            `json:"daily_completed_today"`
	MilestonesReached     map[string]float64 `json:"milestones_reached"`
	GamesCompleted        float64            `json:"games_completed"`
}

type RelayStats struct {
	DispatchesByOutcome map[string]float64 `json:"dispatches_by_outcome"`
}

type LiveFeedStats struct {
	ClientCount int `json:"client_count"`
}

// ClientCounter reports connected live-feed clients
type ClientCounter interface {
	ClientCount() int
}

// StatsHandler serves process counters as JSON
type StatsHandler struct {
	gatherer prometheus.Gatherer
	clients  ClientCounter // optional
}

// NewStatsHandler creates a stats handler. A nil gatherer uses the default registry.
func NewStatsHandler(gatherer prometheus.Gatherer, clients ClientCounter) *StatsHandler {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return &StatsHandler{gatherer: gatherer, clients: clients}
}

// HandleGetStats returns counters gathered from Prometheus
// GET /api/v1/stats
func (h *StatsHandler) HandleGetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := gatherStats(h.gatherer)
	if err != nil {
		loggerFor(r).Error(LogMsgGatherStatsFailed, "error", err)
		respondError(w, http.StatusInternalServerError, ErrMsgGatherStats)
		return
	}

	if h.clients != nil {
		stats.LiveFeed.ClientCount = h.clients.ClientCount()
	}

	respondJSON(w, http.StatusOK, stats)
}

func gatherStats(g prometheus.Gatherer) (*StatsResponse, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, err
	}

	resp := &StatsResponse{
		HTTP:   HTTPStats{RequestsTotalByStatus: make(map[string]float64)},
		Events: EventStats{PublishedTotalByType: make(map[string]float64)},
		Game: GameStats{
			QuestsCompletedByKind: make(map[string]float64),
			ItemsBought:           make(map[string]float64),
			MilestonesReached:     make(map[string]float64),
		},
		Relay: RelayStats{DispatchesByOutcome: make(map[string]float64)},
	}

	for _, mf := range families {
		switch mf.GetName() {
		case metrics.MetricNameHTTPRequestsTotal:
			sumByLabel(mf, metrics.LabelStatus, resp.HTTP.RequestsTotalByStatus)
		case metrics.MetricNameHTTPRequestDuration:
			var count uint64
			var sum float64
			var merged *dto.Histogram
			for _, m := range mf.GetMetric() {
				hist := m.GetHistogram()
				if hist == nil {
					continue
				}
				count += hist.GetSampleCount()
				sum += hist.GetSampleSum()
				merged = mergeHistogram(merged, hist)
			}
			if count > 0 {
				resp.HTTP.AvgLatencyMs = sum / float64(count) * 1000
				resp.HTTP.P95LatencyMs = estimateQuantile(merged, 0.95) * 1000
			}
		case metrics.MetricNameHTTPRequestsInFlight:
			resp.HTTP.InFlight = sumValues(mf)
		case metrics.MetricNameEventsPublished:
			sumByLabel(mf, metrics.LabelType, resp.Events.PublishedTotalByType)
		case metrics.MetricNameQuestsCompleted:
			sumByLabel(mf, metrics.LabelKind, resp.Game.QuestsCompletedByKind)
		case metrics.MetricNameQuestsCancelled:
			resp.Game.QuestsCancelled = sumValues(mf)
		case metrics.MetricNameItemsBought:
			sumByLabel(mf, metrics.LabelItem, resp.Game.ItemsBought)
		case metrics.MetricNamePointsEarned:
			resp.Game.PointsEarned = sumValues(mf)
		case metrics.MetricNamePointsSpent:
			resp.Game.PointsSpent = sumValues(mf)
		case metrics.MetricNamePointsBalance:
			resp.Game.PointsBalance = sumValues(mf)
		case metrics.MetricNameDailyCompletedToday:
			resp.Game.DailyCompletedToday = sumValues(mf)
		case metrics.MetricNameMilestonesReached:
			sumByLabel(mf, metrics.LabelThreshold, resp.Game.MilestonesReached)
		case metrics.MetricNameGamesCompleted:
			resp.Game.GamesCompleted = sumValues(mf)
		case metrics.MetricNameRelayDispatches:
			sumByLabel(mf, metrics.LabelOutcome, resp.Relay.DispatchesByOutcome)
		}
	}

	return resp, nil
}

func metricValue(m *dto.Metric) float64 {
	if c := m.GetCounter(); c != nil {
		return c.GetValue()
	}
	return m.GetGauge().GetValue()
}

func sumValues(mf *dto.MetricFamily) float64 {
	var total float64
	for _, m := range mf.GetMetric() {
		total += metricValue(m)
	}
	return total
}

func sumByLabel(mf *dto.MetricFamily, label string, into map[string]float64) {
	for _, m := range mf.GetMetric() {
		if v := getLabelValue(m, label); v != "" {
			into[v] += metricValue(m)
		}
	}
}

func getLabelValue(m *dto.Metric, labelName string) string {
	for _, label := range m.GetLabel() {
		if label.GetName() == labelName {
			return label.GetValue()
		}
	}
	return ""
}

// mergeHistogram adds the cumulative bucket counts of h into acc.
// All series of one family share the same bucket layout.
func mergeHistogram(acc, h *dto.Histogram) *dto.Histogram {
	if acc == nil {
		acc = &dto.Histogram{}
		for _, b := range h.GetBucket() {
			upper := b.GetUpperBound()
			count := uint64(0)
			acc.Bucket = append(acc.Bucket, &dto.Bucket{UpperBound: &upper, CumulativeCount: &count})
		}
	}
	total := acc.GetSampleCount() + h.GetSampleCount()
	acc.SampleCount = &total
	for i, b := range h.GetBucket() {
		if i < len(acc.Bucket) {
			c := acc.Bucket[i].GetCumulativeCount() + b.GetCumulativeCount()
			acc.Bucket[i].CumulativeCount = &c
		}
	}
	return acc
}

// estimateQuantile approximates the given quantile from a histogram
func estimateQuantile(hist *dto.Histogram, quantile float64) float64 {
	totalCount := hist.GetSampleCount()
	if totalCount == 0 {
		return 0
	}

	targetCount := float64(totalCount) * quantile

	buckets := hist.GetBucket()
	for _, bucket := range buckets {
		if float64(bucket.GetCumulativeCount()) >= targetCount {
			return bucket.GetUpperBound()
		}
	}

	if len(buckets) > 0 {
		return buckets[len(buckets)-1].GetUpperBound()
	}
	return 0
}
