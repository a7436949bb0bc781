// Package metrics содержит Prometheus-метрики сервиса рекомендаций.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	namespace = "chelwa"
	subsystem = "recommender"
)

// Отдельный реестр, чтобы не отдавать стандартные метрики Go
var registry = prometheus.NewRegistry()

var (
	auto = promauto.With(registry)

	recommendations = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "recommendations_total",
		Help:      "Total number of recommendation cycles by eating time and trigger",
	}, []string{"eating_time", "trigger"})

	recommendedVenues = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "recommended_venues",
		Help:      "Number of venues left after the eating-time filter",
		Buckets:   []float64{0, 1, 2, 5, 10, 20, 40, 60},
	})

	refetchDecisions = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "refetch_decisions_total",
		Help:      "Location observations by refetch decision",
	}, []string{"refetch"})

	placesLatency = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "places_request_duration_seconds",
		Help:      "Latency of calls to the places service",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"})

	placesErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "places_errors_total",
		Help:      "Failed calls to the places service",
	}, []string{"operation"})

	cacheLookups = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "cache_lookups_total",
		Help:      "Redis cache lookups by cache and result",
	}, []string{"cache", "result"})

	events = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "session_events_total",
		Help:      "Session events processed by type",
	}, []string{"type"})

	eventQueueSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "session_event_queue_size",
		Help:      "Current number of queued session events",
	})

	activeSessions = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "active_sessions",
		Help:      "Sessions with movement state held in memory",
	})

	evictedSessions = auto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "evicted_sessions_total",
		Help:      "Idle sessions removed from memory",
	})

	httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests by endpoint and method",
	}, []string{"endpoint", "method", "status_code"})

	httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request duration in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"endpoint", "method", "status_code"})

	webhookDeliveries = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "webhook_deliveries_total",
		Help:      "Webhook delivery attempts by outcome",
	}, []string{"outcome"})
)

func RecordRecommendation(eatingTime, trigger string, venueCount int) {
	recommendations.WithLabelValues(eatingTime, trigger).Inc()
	recommendedVenues.Observe(float64(venueCount))
}

func RecordRefetchDecision(refetch bool) {
	if refetch {
		refetchDecisions.WithLabelValues("true").Inc()
		return
	}
	refetchDecisions.WithLabelValues("false").Inc()
}

func ObservePlacesLatency(operation string, started time.Time) {
	placesLatency.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}

func RecordPlacesError(operation string) {
	placesErrors.WithLabelValues(operation).Inc()
}

func RecordCacheLookup(cache string, hit bool) {
	if hit {
		cacheLookups.WithLabelValues(cache, "hit").Inc()
		return
	}
	cacheLookups.WithLabelValues(cache, "miss").Inc()
}

func RecordEvent(eventType string) {
	events.WithLabelValues(eventType).Inc()
}

func SetEventQueueSize(size int) {
	eventQueueSize.Set(float64(size))
}

// SetActiveSessions выставляет число сессий в памяти и учитывает вытесненные
func SetActiveSessions(active, evicted int) {
	activeSessions.Set(float64(active))
	evictedSessions.Add(float64(evicted))
}

func RecordWebhookDelivery(outcome string) {
	webhookDeliveries.WithLabelValues(outcome).Inc()
}

// GetRegistry возвращает реестр метрик сервиса
func GetRegistry() *prometheus.Registry {
	return registry
}

// Handler отдает метрики в формате Prometheus
func Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}

// Middleware учитывает количество и длительность HTTP-запросов
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		httpRequests.WithLabelValues(endpoint, c.Request.Method, status).Inc()
		httpRequestDuration.WithLabelValues(endpoint, c.Request.Method, status).Observe(time.Since(start).Seconds())
	}
}
