package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Exported series names, used by the stats endpoint to read them back
const (
	MetricNameHTTPRequestsTotal    = "questcraft_http_requests_total"
	MetricNameHTTPRequestDuration  = "questcraft_http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "questcraft_http_requests_in_flight"
	MetricNameEventsPublished      = "questcraft_events_published_total"
	MetricNameQuestsCompleted      = "questcraft_quests_completed_total"
	MetricNameQuestsCancelled      = "questcraft_quests_cancelled_total"
	MetricNameItemsBought          = "questcraft_items_bought_total"
	MetricNamePointsEarned         = "questcraft_points_earned_total"
	MetricNamePointsSpent          = "questcraft_points_spent_total"
	MetricNamePointsBalance        = "questcraft_points_balance"
	MetricNameDailyCompletedToday  = "questcraft_daily_completed_today"
	MetricNameMilestonesReached    = "questcraft_milestones_reached_total"
	MetricNameGamesCompleted       = "questcraft_games_completed_total"
	MetricNameRelayDispatches      = "questcraft_relay_dispatches_total"
)

// Label names
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelKind      = "kind"
	LabelItem      = "item"
	LabelThreshold = "threshold"
	LabelOutcome   = "outcome"
)

// Values of the kind label on completed quests
const (
	KindDaily = "daily"
	KindTimed = "timed"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: MetricNameHTTPRequestsTotal,
		Help: "HTTP requests by route and status.",
	}, []string{LabelMethod, LabelPath, LabelStatus})

	// 1ms to 10s; the live feed stream is excluded by route
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    MetricNameHTTPRequestDuration,
		Help:    "HTTP request latency.",
		Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{LabelMethod, LabelPath})

	HTTPRequestsInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Name: MetricNameHTTPRequestsInFlight,
		Help: "Requests currently being served.",
	})

	EventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: MetricNameEventsPublished,
		Help: "Game events seen on the bus.",
	}, []string{LabelType})
)

var (
	QuestsCompleted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: MetricNameQuestsCompleted,
		Help: "Completed quests by kind.",
	}, []string{LabelKind})

	QuestsCancelled = promauto.NewCounter(prometheus.CounterOpts{
		Name: MetricNameQuestsCancelled,
		Help: "Cancelled custom quest timers.",
	})

	ItemsBought = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: MetricNameItemsBought,
		Help: "Shop purchases by item.",
	}, []string{LabelItem})

	PointsEarned = promauto.NewCounter(prometheus.CounterOpts{
		Name: MetricNamePointsEarned,
		Help: "Points credited by quest completions.",
	})

	PointsSpent = promauto.NewCounter(prometheus.CounterOpts{
		Name: MetricNamePointsSpent,
		Help: "Points spent in the shop.",
	})

	PointsBalance = promauto.NewGauge(prometheus.GaugeOpts{
		Name: MetricNamePointsBalance,
		Help: "Point balance after the latest purchase or reset.",
	})

	DailyCompletedToday = promauto.NewGauge(prometheus.GaugeOpts{
		Name: MetricNameDailyCompletedToday,
		Help: "Daily quests checked so far today.",
	})

	MilestonesReached = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: MetricNameMilestonesReached,
		Help: "Milestone notices raised.",
	}, []string{LabelThreshold, LabelKind})

	GamesCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: MetricNameGamesCompleted,
		Help: "End-game purchases.",
	})

	RelayDispatches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: MetricNameRelayDispatches,
		Help: "Relay give commands by outcome.",
	}, []string{LabelOutcome})
)

// RelayRecorder counts relay dispatch outcomes
type RelayRecorder struct{}

// RecordRelayDispatch increments the outcome counter
func (RelayRecorder) RecordRelayDispatch(outcome string) {
	RelayDispatches.WithLabelValues(outcome).Inc()
}
