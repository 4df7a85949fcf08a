// Package tracker forwards submissions to an external spreadsheet webhook.
// Tracking is best effort: a failure is reported to the caller and never
// retried.
package tracker

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"writeyourmep/internal/platform/tracer"
)

// DefaultTimeout bounds a single webhook call.
const DefaultTimeout = 10 * time.Second

const maxResponseBytes = 1 << 20

// HTTPDoer is the minimal interface needed from an HTTP client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Submission is forwarded verbatim to the webhook.
type Submission struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	UserEmail string `json:"user_email"`
	Country   string `json:"country"`
	MEPName   string `json:"mep_name"`
	MEPEmail  string `json:"mep_email"`
}

type webhookResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Config configures a Tracker. An empty URL disables tracking.
type Config struct {
	URL        string
	Timeout    time.Duration
	HTTPClient HTTPDoer
	Tracer     tracer.Tracer
	Metrics    *Metrics
}

// Tracker posts submissions to the configured webhook.
type Tracker struct {
	url     string
	timeout time.Duration
	client  HTTPDoer
	tracer  tracer.Tracer
	metrics *Metrics
	logger  *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Tracker {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Tracer == nil {
		cfg.Tracer = tracer.NewNoop()
	}

	return &Tracker{
		url:     cfg.URL,
		timeout: cfg.Timeout,
		client:  selectHTTPClient(cfg),
		tracer:  cfg.Tracer,
		metrics: cfg.Metrics,
		logger:  logger,
	}
}

func selectHTTPClient(cfg Config) HTTPDoer {
	if cfg.HTTPClient != nil {
		return cfg.HTTPClient
	}
	return &http.Client{Timeout: cfg.Timeout}
}

// Enabled reports whether a webhook URL is configured.
func (t *Tracker) Enabled() bool {
	return t.url != ""
}

// Record posts the submission once. The call completes even if ctx is
// cancelled by a departing client; the tracker timeout still bounds it.
func (t *Tracker) Record(ctx context.Context, sub Submission) Result {
	ctx, span := t.tracer.Start(ctx, tracer.SpanTrackerRecord,
		tracer.String(tracer.AttrCountry, sub.Country),
	)

	start := time.Now()
	result := t.record(ctx, sub)
	elapsed := time.Since(start)

	span.SetAttributes(
		tracer.String(tracer.AttrOutcome, string(result.Outcome)),
		tracer.Duration(tracer.AttrDuration, elapsed),
	)
	if result.StatusCode != 0 {
		span.SetAttributes(tracer.Int(tracer.AttrStatusCode, result.StatusCode))
	}
	span.End(result.Error())

	t.metrics.observe(result.Outcome)
	if result.Outcome != OutcomeDisabled {
		t.metrics.observeLatency(elapsed.Seconds())
	}
	t.log(ctx, sub, result)
	return result
}

func (t *Tracker) record(ctx context.Context, sub Submission) Result {
	if !t.Enabled() {
		return Result{Outcome: OutcomeDisabled}
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), t.timeout)
	defer cancel()

	payload, err := json.Marshal(sub)
	if err != nil {
		return Result{Outcome: OutcomeTransport, Err: fmt.Errorf("marshal submission: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.url, bytes.NewReader(payload))
	if err != nil {
		return Result{Outcome: OutcomeTransport, Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		if isTimeout(ctx, err) {
			return Result{Outcome: OutcomeTimeout, Err: err}
		}
		return Result{Outcome: OutcomeTransport, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{Outcome: OutcomeHTTPStatus, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		if isTimeout(ctx, err) {
			return Result{Outcome: OutcomeTimeout, StatusCode: resp.StatusCode, Err: err}
		}
		return Result{Outcome: OutcomeTransport, StatusCode: resp.StatusCode, Err: err}
	}

	var decoded webhookResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return Result{Outcome: OutcomeBadResponse, StatusCode: resp.StatusCode, Err: err}
	}
	if !decoded.Success {
		message := decoded.Error
		if message == "" {
			message = "Unknown error"
		}
		return Result{Outcome: OutcomeRejected, StatusCode: resp.StatusCode, Message: message}
	}

	return Result{Outcome: OutcomeRecorded, StatusCode: resp.StatusCode}
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func (t *Tracker) log(ctx context.Context, sub Submission, result Result) {
	switch result.Outcome {
	case OutcomeRecorded:
		t.logger.InfoContext(ctx, "submission recorded", "country", sub.Country)
	case OutcomeDisabled:
		t.logger.DebugContext(ctx, "submission tracking disabled")
	case OutcomeTimeout:
		t.logger.WarnContext(ctx, "timeout recording submission", "timeout", t.timeout.String(), "error", result.Err)
	case OutcomeHTTPStatus:
		t.logger.WarnContext(ctx, "tracking webhook returned an error status", "status", result.StatusCode)
	case OutcomeRejected:
		t.logger.WarnContext(ctx, "tracking webhook rejected submission", "webhook_error", result.Message)
	case OutcomeBadResponse:
		t.logger.WarnContext(ctx, "tracking webhook response could not be decoded", "status", result.StatusCode, "error", result.Err)
	default:
		t.logger.ErrorContext(ctx, "error recording submission", "error", result.Err)
	}
}
