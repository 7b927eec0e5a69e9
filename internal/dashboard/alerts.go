package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/siga-angola/envrisk-cli/internal/config"
	"github.com/siga-angola/envrisk-cli/internal/model"
	"github.com/siga-angola/envrisk-cli/internal/resilience"
)

// Alert is a single severe-risk notification.
type Alert struct {
	ID        string         `json:"id"`
	Region    string         `json:"region"`
	Kind      model.RiskKind `json:"kind"`
	Severity  model.Level    `json:"severity"`
	Score     int            `json:"score"`
	Message   string         `json:"message"`
	Timestamp time.Time      `json:"timestamp"`
}

// FromAssessments converts HIGH and CRITICAL assessments into alerts.
func FromAssessments(loc *model.LocationProfile, assessments []model.RiskAssessment, now time.Time) []Alert {
	var alerts []Alert
	for _, a := range assessments {
		if a.Level != model.LevelHigh && a.Level != model.LevelCritical {
			continue
		}
		alerts = append(alerts, Alert{
			ID:       uuid.NewString(),
			Region:   loc.ID,
			Kind:     a.Kind,
			Severity: a.Level,
			Score:    a.Score,
			Message: fmt.Sprintf("%s risk is %s in %s (score %d, confidence %.0f%%)",
				a.Kind, a.Level, loc.Name, a.Score, a.Confidence*100),
			Timestamp: now,
		})
	}
	return alerts
}

// Notifier delivers alerts to a webhook behind a rate limiter so a
// burst of CRITICAL regions cannot flood the receiving channel.
type Notifier struct {
	url     string
	client  *http.Client
	limiter *rate.Limiter
	retry   resilience.RetryConfig
}

// NewNotifier builds a Notifier from the alerts config. An empty
// webhook URL yields a no-op notifier.
func NewNotifier(cfg config.AlertsConfig) *Notifier {
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	perMinute := cfg.RatePerMinute
	if perMinute <= 0 {
		perMinute = 30
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}
	retry := resilience.DefaultRetryConfig()
	retry.OnRetry = resilience.RetryLogger("webhook", "send_alert")
	return &Notifier{
		url:     cfg.WebhookURL,
		client:  &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Limit(perMinute/60.0), burst),
		retry:   retry,
	}
}

// Send delivers alerts to the configured webhook URL.
// Returns the number of alerts successfully sent.
func (n *Notifier) Send(ctx context.Context, alerts []Alert) int {
	if n.url == "" || len(alerts) == 0 {
		return 0
	}

	log := zap.L().With(zap.String("component", "dashboard.notifier"))
	sent := 0
	for _, alert := range alerts {
		if err := n.limiter.Wait(ctx); err != nil {
			log.Warn("alert delivery cancelled", zap.Error(err))
			return sent
		}
		err := resilience.Do(ctx, n.retry, func(ctx context.Context) error {
			return n.post(ctx, alert)
		})
		if err != nil {
			log.Error("failed to send alert",
				zap.String("region", alert.Region),
				zap.String("kind", string(alert.Kind)),
				zap.Error(err),
			)
			continue
		}
		log.Info("alert sent",
			zap.String("region", alert.Region),
			zap.String("kind", string(alert.Kind)),
			zap.String("severity", string(alert.Severity)),
		)
		sent++
	}
	return sent
}

// post delivers a single alert to the webhook URL.
func (n *Notifier) post(ctx context.Context, alert Alert) error {
	payload, err := json.Marshal(alert)
	if err != nil {
		return eris.Wrap(err, "dashboard: marshal alert")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(payload))
	if err != nil {
		return eris.Wrap(err, "dashboard: create webhook request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return eris.Wrap(err, "dashboard: webhook request")
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode >= 400 {
		err := eris.Errorf("dashboard: webhook returned status %d", resp.StatusCode)
		if resilience.IsTransientHTTPStatus(resp.StatusCode) {
			return resilience.NewTransientError(err, resp.StatusCode)
		}
		return err
	}
	return nil
}
