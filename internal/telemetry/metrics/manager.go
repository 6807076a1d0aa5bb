package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterRequests            *prometheus.CounterVec
	CounterChatTurns           prometheus.Counter
	CounterCardsCreated        prometheus.Counter
	CounterCardsConfirmed      prometheus.Counter
	CounterCardsDiscarded      prometheus.Counter
	CounterSummariesCreated    prometheus.Counter
	CounterSummaryFailures     prometheus.Counter
	CounterModelCallErrors     prometheus.Counter
	CounterHandleRequestPanic  prometheus.Counter
	CounterRateLimitedRequests prometheus.Counter

	// gauges
	GaugeRequests   prometheus.Gauge
	GaugeLifeSignal prometheus.Gauge

	// histograms
	HistModelCallDuration    prometheus.Histogram
	HistogramRequestDuration *prometheus.HistogramVec
}

func NewTestManager() *Manager {
	return NewManager("ecochat", "test_server", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("ecochat", "test_server", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request",
		Help:      "The total number of incoming requests",
	}, []string{"method", "status"})
	counterChatTurns := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "chat_turns",
		Help:      "The total number of stored chat turns",
	})
	counterCardsCreated := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "workout_cards_created",
		Help:      "The total number of workout cards proposed to users",
	})
	counterCardsConfirmed := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "workout_cards_confirmed",
		Help:      "The total number of confirmed workout cards",
	})
	counterCardsDiscarded := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "workout_cards_discarded",
		Help:      "The total number of discarded workout cards",
	})
	counterSummariesCreated := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "conversation_summaries_created",
		Help:      "The total number of created conversation summaries",
	})
	counterSummaryFailures := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "conversation_summary_failures",
		Help:      "The total number of failed conversation summarizations",
	})
	counterModelCallErrors := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "model_call_errors",
		Help:      "The total number of failed model calls",
	})
	counterHandleRequestPanic := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "handle_request_panic",
		Help:      "The total number of serve request panics",
	})
	counterRateLimitedRequests := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "rate_limited_requests",
		Help:      "The total number of rate limited requests",
	})

	gaugeRequests := factory.NewGauge(prometheus.GaugeOpts{
		Namespace:   namespace,
		Subsystem:   subsystem,
		Name:        "current_requests",
		Help:        "Current number of requests served",
		ConstLabels: nil,
	})
	gaugeLifeSignal := factory.NewGauge(prometheus.GaugeOpts{
		Namespace:   namespace,
		Subsystem:   subsystem,
		Name:        "life_signal",
		Help:        "Shows whether the service is alive",
		ConstLabels: nil,
	})

	histModelCallDuration := factory.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Buckets: []float64{
				0.1, 0.25, 0.5, 1, 2, 5, 10, 20, 30, 60,
			},
			Name: "model_call_duration_seconds",
			Help: "Duration of a single model call in seconds",
		},
	)

	histogramRequestDuration := factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request_duration_seconds",
		Help:      "Histogram of response time for requests in seconds",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"route", "method", "status_code"})

	return &Manager{
		CounterRequests:            counterRequests,
		CounterChatTurns:           counterChatTurns,
		CounterCardsCreated:        counterCardsCreated,
		CounterCardsConfirmed:      counterCardsConfirmed,
		CounterCardsDiscarded:      counterCardsDiscarded,
		CounterSummariesCreated:    counterSummariesCreated,
		CounterSummaryFailures:     counterSummaryFailures,
		CounterModelCallErrors:     counterModelCallErrors,
		CounterHandleRequestPanic:  counterHandleRequestPanic,
		CounterRateLimitedRequests: counterRateLimitedRequests,
		GaugeRequests:              gaugeRequests,
		GaugeLifeSignal:            gaugeLifeSignal,
		HistModelCallDuration:      histModelCallDuration,
		HistogramRequestDuration:   histogramRequestDuration,
	}
}
