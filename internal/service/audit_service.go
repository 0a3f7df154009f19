package service

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/alegonzalezz/ATS-backend/internal/config"
	"github.com/alegonzalezz/ATS-backend/internal/events"
)

// AuditService records every record change as a structured log entry and,
// when a webhook is configured, forwards the event to it.
type AuditService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.AuditConfig
	client     *http.Client
}

// NewAuditService creates the service.
func NewAuditService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.AuditConfig) *AuditService {
	return &AuditService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
		client:     &http.Client{Timeout: 5 * time.Second},
	}
}

// RegisterHandlers subscribes the audit trail to every event type.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	for _, t := range []events.EventType{
		events.EventEntityCreated,
		events.EventEntityUpdated,
		events.EventEntityDeleted,
		events.EventEntityDeactivated,
		events.EventEntityReactivated,
		events.EventJobStatusChanged,
		events.EventRecruiterAssigned,
		events.EventRecruiterUnassigned,
	} {
		a.dispatcher.Subscribe(t, a.record)
	}
}

func (a *AuditService) record(ctx context.Context, event events.Event) error {
	a.logger.Info("audit",
		zap.String("event", string(event.Type)),
		zap.String("table", event.Table),
		zap.String("entity_id", event.EntityID),
		zap.Time("at", event.Timestamp),
		zap.Any("payload", event.Payload))
	a.forwardWebhook(ctx, event)
	return nil
}

// forwardWebhook posts the event to the configured sink. Delivery is best
// effort; failures are logged and never fail the mutation that emitted
// the event.
func (a *AuditService) forwardWebhook(ctx context.Context, event events.Event) {
	url := strings.TrimSpace(a.cfg.WebhookURL)
	if url == "" {
		return
	}
	body, err := json.Marshal(event)
	if err != nil {
		a.logger.Warn("audit webhook encode failed", zap.Error(err))
		return
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		a.logger.Warn("audit webhook request failed", zap.Error(err))
		return
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := a.client.Do(req)
	if err != nil {
		a.logger.Warn("audit webhook delivery failed", zap.Error(err))
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusMultipleChoices {
		a.logger.Warn("audit webhook rejected event",
			zap.Int("status", resp.StatusCode),
			zap.String("event", string(event.Type)))
	}
}
