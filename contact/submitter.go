// Package contact handles contact-form submissions. Two strategies exist:
// forwarding the post to a form backend without any user-facing message,
// and intercepting it to acknowledge locally. The strategy is selected by
// configuration.
package contact

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"goflare.io/storefront/models"
	"goflare.io/storefront/models/enum"
)

// Submitter delivers a contact message. The returned string is the
// user-facing acknowledgement; a silent strategy returns an empty string.
type Submitter interface {
	Submit(ctx context.Context, msg models.ContactMessage) (string, error)
}

// NewSubmitter selects the strategy for the configured mode. endpoint is the
// form backend URL used by the silent strategy. client may be nil.
func NewSubmitter(mode enum.ContactSubmitMode, endpoint string, client *http.Client, logger *zap.Logger) Submitter {
	if mode == enum.ContactSubmitModeSilent {
		return NewSilent(endpoint, client, logger)
	}
	return NewIntercept(logger)
}

var _ Submitter = (*Silent)(nil)

// Silent forwards the message to a form backend (Formspree-style endpoint)
// and surfaces nothing to the user on success.
type Silent struct {
	endpoint string
	client   *http.Client
	logger   *zap.Logger
}

func NewSilent(endpoint string, client *http.Client, logger *zap.Logger) *Silent {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Silent{endpoint: endpoint, client: client, logger: logger}
}

func (s *Silent) Submit(ctx context.Context, msg models.ContactMessage) (string, error) {
	if err := msg.Validate(); err != nil {
		return "", err
	}

	form := url.Values{}
	form.Set("name", msg.Name)
	form.Set("email", msg.Email)
	form.Set("message", msg.Message)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build contact request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error("Failed to forward contact message", zap.Error(err))
		return "", fmt.Errorf("forward contact message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		s.logger.Error("Contact backend rejected message", zap.Int("status", resp.StatusCode))
		return "", fmt.Errorf("contact backend returned status %d", resp.StatusCode)
	}

	return "", nil
}

var _ Submitter = (*Intercept)(nil)

// Intercept validates the message and acknowledges it locally without
// forwarding anywhere.
type Intercept struct {
	logger *zap.Logger
}

func NewIntercept(logger *zap.Logger) *Intercept {
	return &Intercept{logger: logger}
}

func (i *Intercept) Submit(_ context.Context, msg models.ContactMessage) (string, error) {
	if err := msg.Validate(); err != nil {
		return "", err
	}

	i.logger.Info("Contact message received",
		zap.String("name", msg.Name),
		zap.String("email", msg.Email))

	return "Thanks for your message! We'll get back to you soon.", nil
}
