package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Business metrics
	LeadsCreated    *prometheus.CounterVec
	StageChanges    *prometheus.CounterVec
	EmailsSent      prometheus.Counter
	SweepsRun       prometheus.Counter
	SweepAdvanced   prometheus.Counter
	FollowupsSent   prometheus.Counter
	WebhookEvents   *prometheus.CounterVec
	DraftsGenerated prometheus.Counter
	LoginAttempts   *prometheus.CounterVec
}

// New creates a new Metrics instance with all metrics registered
func New() *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),

		LeadsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "leads_created_total",
				Help: "Total number of leads created",
			},
			[]string{"source"},
		),
		StageChanges: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lead_stage_changes_total",
				Help: "Total number of lead stage transitions",
			},
			[]string{"to_stage"},
		),
		EmailsSent: promauto.NewCounter(prometheus.CounterOpts{
			Name: "emails_sent_total",
			Help: "Total number of emails sent to leads",
		}),
		SweepsRun: promauto.NewCounter(prometheus.CounterOpts{
			Name: "response_sweeps_total",
			Help: "Total number of response detection sweeps",
		}),
		SweepAdvanced: promauto.NewCounter(prometheus.CounterOpts{
			Name: "response_sweep_advanced_total",
			Help: "Total number of leads advanced by response sweeps",
		}),
		FollowupsSent: promauto.NewCounter(prometheus.CounterOpts{
			Name: "followups_sent_total",
			Help: "Total number of automated follow-up emails sent",
		}),
		WebhookEvents: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "webhook_events_total",
				Help: "Total number of webhook events received",
			},
			[]string{"object"}, // page, instagram
		),
		DraftsGenerated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ai_drafts_generated_total",
			Help: "Total number of AI email drafts generated",
		}),
		LoginAttempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "login_attempts_total",
				Help: "Total number of login attempts",
			},
			[]string{"status"}, // success, failed
		),
	}

	return m
}

// Middleware creates an Echo middleware for Prometheus metrics
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()
			path := c.Path() // Use route pattern, not actual path (e.g., /api/v1/leads/:id)

			err := next(c)

			status := c.Response().Status
			duration := time.Since(start).Seconds()

			m.HTTPRequestsTotal.WithLabelValues(req.Method, path, strconv.Itoa(status)).Inc()
			m.HTTPRequestDuration.WithLabelValues(req.Method, path, strconv.Itoa(status)).Observe(duration)

			return err
		}
	}
}

// RecordLeadCreated increments the lead counter for a source
func (m *Metrics) RecordLeadCreated(source string) {
	m.LeadsCreated.WithLabelValues(source).Inc()
}

// RecordStageChange increments the stage transition counter
func (m *Metrics) RecordStageChange(toStage string) {
	m.StageChanges.WithLabelValues(toStage).Inc()
}

// RecordEmailSent increments the outbound email counter
func (m *Metrics) RecordEmailSent() {
	m.EmailsSent.Inc()
}

// RecordSweep records a sweep run and how many leads it advanced
func (m *Metrics) RecordSweep(advanced int) {
	m.SweepsRun.Inc()
	m.SweepAdvanced.Add(float64(advanced))
}

// RecordFollowups adds sent follow-up emails to the counter
func (m *Metrics) RecordFollowups(count int) {
	m.FollowupsSent.Add(float64(count))
}

// RecordWebhookEvent increments the webhook counter for an object type
func (m *Metrics) RecordWebhookEvent(object string) {
	m.WebhookEvents.WithLabelValues(object).Inc()
}

// RecordDraftGenerated increments the AI draft counter
func (m *Metrics) RecordDraftGenerated() {
	m.DraftsGenerated.Inc()
}

// RecordLoginAttempt increments login attempts counter
func (m *Metrics) RecordLoginAttempt(success bool) {
	status := "failed"
	if success {
		status = "success"
	}
	m.LoginAttempts.WithLabelValues(status).Inc()
}
