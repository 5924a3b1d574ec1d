// Package notify dispatches contact-form messages through an external
// transactional email endpoint.
//
// Delivery is a single attempt with no retry or backoff: a failed send is
// surfaced to the user, who resubmits manually. That is a deliberate
// simplicity choice for a contact form, not a gap.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Abhi22shek/portfolio-core/internal/models"
	"go.uber.org/zap"
)

// ErrNotConfigured is returned by Send when no endpoint was configured.
// The contact flow is disabled in that case; nothing goes over the wire.
var ErrNotConfigured = errors.New("notification endpoint is not configured")

// Result reports the outcome of a send as seen by the endpoint.
type Result struct {
	// OK is true when the endpoint accepted the message.
	OK bool `json:"ok"`
	// Reason explains a rejection; empty on success.
	Reason string `json:"reason,omitempty"`
}

// Sender is the capability consumed by the contact flow.
type Sender interface {
	// Send delivers the message once. A non-nil error means the attempt
	// itself failed (network, timeout); a Result with OK=false means the
	// endpoint rejected it.
	Send(ctx context.Context, msg models.ContactMessage) (Result, error)
}

// HTTPSender posts messages as JSON to a fixed endpoint.
type HTTPSender struct {
	client   *http.Client
	endpoint string
	log      *zap.Logger
}

// NewHTTPSender creates a sender posting to endpoint with the given client.
// A nil client falls back to http.DefaultClient; callers wanting a timeout
// supply their own client or a context deadline.
func NewHTTPSender(client *http.Client, endpoint string, log *zap.Logger) *HTTPSender {
	if client == nil {
		client = http.DefaultClient
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &HTTPSender{client: client, endpoint: endpoint, log: log}
}

// Send posts the message and decodes the endpoint's {ok, reason} reply.
// A non-2xx status without a decodable body becomes an OK=false result
// carrying the HTTP status. With no endpoint configured, Send fails with
// ErrNotConfigured before any network activity.
func (s *HTTPSender) Send(ctx context.Context, msg models.ContactMessage) (Result, error) {
	if s.endpoint == "" {
		return Result{}, ErrNotConfigured
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return Result{}, fmt.Errorf("encode message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.Warn("notification send failed", zap.Error(err))
		return Result{}, fmt.Errorf("send message: %w", err)
	}
	defer resp.Body.Close()

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return Result{OK: true}, nil
		}
		return Result{OK: false, Reason: resp.Status}, nil
	}
	if !result.OK && result.Reason == "" {
		result.Reason = resp.Status
	}
	return result, nil
}
