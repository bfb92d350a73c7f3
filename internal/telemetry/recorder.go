package telemetry

import (
	"context"
	"fmt"

	"github.com/BerryBytes/ssoctl/models"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Recorder logs refresh outcomes and counts them in a private registry that
// can be exported as a node_exporter textfile.
type Recorder struct {
	logger   *zap.SugaredLogger
	registry *prometheus.Registry
	refresh  *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewRecorder(logger *zap.SugaredLogger) *Recorder {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	r := &Recorder{
		logger:   logger,
		registry: prometheus.NewRegistry(),
		refresh: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ssoctl",
			Name:      "token_refresh_total",
			Help:      "Token refresh attempts by result, reason and credential source.",
		}, []string{"result", "reason", "credential_source"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "ssoctl",
			Name:      "session_duration_seconds",
			Help:      "Age of the SSO session when a refresh was attempted.",
			Buckets:   []float64{60, 600, 3600, 4 * 3600, 8 * 3600, 24 * 3600, 7 * 24 * 3600},
		}, []string{"credential_source"}),
	}
	r.registry.MustRegister(r.refresh, r.duration)
	return r
}

func (r *Recorder) RecordRefresh(_ context.Context, event models.RefreshEvent) {
	r.logger.Infow("token refresh",
		"result", event.Result,
		"reason", event.Reason,
		"requestId", event.RequestID,
		"sessionDuration", event.SessionDuration,
		"credentialType", event.CredentialType,
		"credentialSourceId", event.CredentialSourceID,
	)

	r.refresh.WithLabelValues(event.Result, event.Reason, event.CredentialSourceID).Inc()
	if event.SessionDuration > 0 {
		r.duration.WithLabelValues(event.CredentialSourceID).Observe(event.SessionDuration.Seconds())
	}
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile writes all recorded metrics to path in the text exposition
// format.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics file: %w", err)
	}
	return nil
}
