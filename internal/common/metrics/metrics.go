package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	Namespace = "wa_media_bot"

	BotSubsystem = "bot"
)

// Общие метрики исходящих HTTP запросов к внешним API.
var (
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "api_requests_total",
			Help:      "Total number of outgoing API requests",
		},
		[]string{"service", "operation", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "api_request_duration_seconds",
			Help:      "Outgoing API request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "operation"},
	)
)

// Метрики диспетчеризации.
var (
	MessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: BotSubsystem,
			Name:      "messages_total",
			Help:      "Total number of inbound messages by type",
		},
		[]string{"message_type"},
	)

	CommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: BotSubsystem,
			Name:      "commands_total",
			Help:      "Total number of dispatched commands",
		},
		[]string{"command", "status"},
	)

	PermissionDenialsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: BotSubsystem,
			Name:      "permission_denials_total",
			Help:      "Total number of permission denials by reason",
		},
		[]string{"reason"},
	)

	SelectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: BotSubsystem,
			Name:      "selections_total",
			Help:      "Total number of numeric selection replies by outcome",
		},
		[]string{"kind", "outcome"},
	)

	HandlerDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: BotSubsystem,
			Name:      "handler_duration_seconds",
			Help:      "Command handler duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"command"},
	)

	ActiveSelections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: BotSubsystem,
			Name:      "active_selections",
			Help:      "Number of pending selections currently held in memory",
		},
	)

	DownloadEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: BotSubsystem,
			Name:      "download_events_total",
			Help:      "Total number of download-ready events processed",
		},
		[]string{"status"},
	)
)

func RecordAPIRequest(service, operation string, statusCode int, duration time.Duration) {
	status := "success"
	if statusCode >= 400 {
		status = "error"
	}

	APIRequestsTotal.WithLabelValues(service, operation, status).Inc()
	APIRequestDuration.WithLabelValues(service, operation).Observe(duration.Seconds())
}

func RecordMessage(messageType string) {
	MessagesTotal.WithLabelValues(messageType).Inc()
}

func RecordCommand(command, status string, duration time.Duration) {
	CommandsTotal.WithLabelValues(command, status).Inc()
	HandlerDuration.WithLabelValues(command).Observe(duration.Seconds())
}

func RecordPermissionDenial(reason string) {
	PermissionDenialsTotal.WithLabelValues(reason).Inc()
}

func RecordSelection(kind, outcome string) {
	SelectionsTotal.WithLabelValues(kind, outcome).Inc()
}

func SetActiveSelections(count float64) {
	ActiveSelections.Set(count)
}

func RecordDownloadEvent(status string) {
	DownloadEventsTotal.WithLabelValues(status).Inc()
}
