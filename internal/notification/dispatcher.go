package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/manikantxampleserv/dcc-sfa-sub007/internal/config"

	"github.com/sirupsen/logrus"
)

// Message is one rendered notification ready for delivery
type Message struct {
	To       string            `json:"to"`
	Subject  string            `json:"subject"`
	Body     string            `json:"body"`
	Template string            `json:"template,omitempty"`
	Data     map[string]string `json:"data,omitempty"`
}

// Dispatcher delivers rendered notifications. Delivery is best effort:
// callers log a returned error and continue.
type Dispatcher interface {
	Dispatch(ctx context.Context, message *Message) error
}

// HTTPDispatcher posts notifications to the external notification service
type HTTPDispatcher struct {
	httpClient *http.Client
	config     *config.NotificationConfig
	logger     *logrus.Logger
}

// NewHTTPDispatcher creates a new HTTPDispatcher instance
func NewHTTPDispatcher(cfg *config.NotificationConfig, logger *logrus.Logger) *HTTPDispatcher {
	timeout := 15 * time.Second
	if cfg.Timeout > 0 {
		timeout = cfg.Timeout
	}

	return &HTTPDispatcher{
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		config: cfg,
		logger: logger,
	}
}

// Dispatch posts one message to the notification service
func (d *HTTPDispatcher) Dispatch(ctx context.Context, message *Message) error {
	// Skip if notification service is not configured
	if d.config.BaseURL == "" {
		d.logger.Debug("Notification service not configured, skipping dispatch")
		return nil
	}

	url := d.config.BaseURL + d.config.SendPath

	jsonData, err := json.Marshal(message)
	if err != nil {
		d.logger.WithError(err).Error("Failed to marshal notification")
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		d.logger.WithError(err).Error("Failed to create notification request")
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if correlationID, ok := ctx.Value("correlationID").(string); ok {
		req.Header.Set("X-Correlation-ID", correlationID)
	}

	startTime := time.Now()
	resp, err := d.httpClient.Do(req)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.WithError(err).WithField("duration", duration).Error("Notification dispatch failed")
		return fmt.Errorf("notification dispatch failed: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		d.logger.WithFields(logrus.Fields{
			"statusCode": resp.StatusCode,
			"response":   string(body),
			"to":         message.To,
		}).Warn("Notification service returned non-success status")
		return fmt.Errorf("notification service returned status %d", resp.StatusCode)
	}

	d.logger.WithFields(logrus.Fields{
		"to":       message.To,
		"template": message.Template,
		"duration": duration,
	}).Debug("Notification dispatched")

	return nil
}

// Close closes the HTTP client connections
func (d *HTTPDispatcher) Close() {
	if d.httpClient != nil {
		d.httpClient.CloseIdleConnections()
	}
}

// NoopDispatcher drops every message. Used when notifications are disabled.
type NoopDispatcher struct{}

// Dispatch discards the message
func (NoopDispatcher) Dispatch(_ context.Context, _ *Message) error {
	return nil
}
