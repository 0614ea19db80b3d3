package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"bid-exchange/internal/biderrors"
	"bid-exchange/utils"
)

// Gateway defaults, matching the messaging provider's conventions.
const (
	DefaultSender      = "SMCITY"
	DefaultCountry     = 91
	DefaultFromAddress = "no-reply@bid-exchange.io"
	DefaultTimeout     = 5 * time.Second

	// transactional SMS route
	smsRoute = "4"
)

// GatewayConfig configures the outbound SMS/email gateway client.
type GatewayConfig struct {
	SMSURL      string
	EmailURL    string
	AuthKey     string
	Sender      string
	FromAddress string
	Country     int
	Timeout     time.Duration
}

// Gateway formats and sends SMS/email requests to the external messaging
// provider. Every failure is wrapped in ErrNotificationDelivery; callers log
// and drop it, the lifecycle transition that triggered the send never waits
// on or rolls back for it.
type Gateway struct {
	cfg    GatewayConfig
	client *http.Client
}

// NewGateway creates a gateway client with a bounded request timeout.
func NewGateway(cfg GatewayConfig) *Gateway {
	if cfg.Sender == "" {
		cfg.Sender = DefaultSender
	}
	if cfg.FromAddress == "" {
		cfg.FromAddress = DefaultFromAddress
	}
	if cfg.Country == 0 {
		cfg.Country = DefaultCountry
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Gateway{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

type smsEntry struct {
	Message string   `json:"message"`
	To      []string `json:"to"`
}

type smsRequest struct {
	Sender  string     `json:"sender"`
	Route   string     `json:"route"`
	Country string     `json:"country"`
	SMS     []smsEntry `json:"sms"`
}

// SendSMS sends one batched gateway call carrying one message entry per
// recipient. Empty sender and zero country fall back to the configured
// defaults.
func (g *Gateway) SendSMS(ctx context.Context, message, sender string, recipients []string, country int) error {
	if len(recipients) == 0 {
		return fmt.Errorf("send sms: no recipients: %w", biderrors.ErrNotificationDelivery)
	}
	if sender == "" {
		sender = g.cfg.Sender
	}
	if country == 0 {
		country = g.cfg.Country
	}

	body := smsRequest{
		Sender:  sender,
		Route:   smsRoute,
		Country: strconv.Itoa(country),
		SMS:     make([]smsEntry, 0, len(recipients)),
	}
	for _, to := range recipients {
		body.SMS = append(body.SMS, smsEntry{Message: message, To: []string{to}})
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("send sms: encode request: %w: %w", biderrors.ErrNotificationDelivery, err)
	}

	endpoint := fmt.Sprintf("%s?country=%d", g.cfg.SMSURL, country)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("send sms: build request: %w: %w", biderrors.ErrNotificationDelivery, err)
	}
	req.Header.Set("authkey", g.cfg.AuthKey)
	req.Header.Set("Content-Type", "application/json")

	return g.do(req, "sms", len(recipients))
}

// SendEmail sends a single message through the gateway's email endpoint.
// All fields travel as query parameters, properly encoded.
func (g *Gateway) SendEmail(ctx context.Context, message, subject, from, to string) error {
	if to == "" {
		return fmt.Errorf("send email: no recipient: %w", biderrors.ErrNotificationDelivery)
	}
	if from == "" {
		from = g.cfg.FromAddress
	}

	params := url.Values{}
	params.Set("authkey", g.cfg.AuthKey)
	params.Set("to", to)
	params.Set("from", from)
	params.Set("body", message)
	params.Set("subject", subject)

	endpoint := fmt.Sprintf("%s?%s", g.cfg.EmailURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return fmt.Errorf("send email: build request: %w: %w", biderrors.ErrNotificationDelivery, err)
	}

	return g.do(req, "email", 1)
}

// do executes the gateway request and logs the raw response. The gateway's
// response body is not interpreted beyond the status code.
func (g *Gateway) do(req *http.Request, channel string, recipients int) error {
	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("send %s: %w: %w", channel, biderrors.ErrNotificationDelivery, err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	utils.Info("notification gateway response", map[string]any{
		"channel":    channel,
		"status":     resp.StatusCode,
		"recipients": recipients,
		"response":   string(raw),
	})

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("send %s: gateway returned %d: %w", channel, resp.StatusCode, biderrors.ErrNotificationDelivery)
	}
	return nil
}
