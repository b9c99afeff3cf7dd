// pkg/telemetry/publisher.go
package telemetry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"github.com/opd-ai/go-flighttrainer/pkg/engine"
	"github.com/opd-ai/go-flighttrainer/pkg/logging"
)

// Publisher pushes flight snapshots to a remote collector. A circuit
// breaker isolates the simulation from collector outages: once the
// collector starts failing, pushes are dropped instead of piling up
// retries behind the tick loop.
type Publisher struct {
	url     string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
	logger  *logging.Logger
}

// NewPublisher creates a Publisher targeting url.
func NewPublisher(url string) *Publisher {
	logger := logging.NewLogger()

	settings := gobreaker.Settings{
		Name:        "telemetry-collector",
		MaxRequests: 2,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info(context.Background(), "circuit breaker state changed",
				"name", name,
				"from", from,
				"to", to,
			)
		},
	}

	return &Publisher{
		url:     url,
		client:  &http.Client{Timeout: 10 * time.Second},
		breaker: gobreaker.NewCircuitBreaker(settings),
		logger:  logger,
	}
}

// Push sends one snapshot through the circuit breaker. If the circuit
// is open the snapshot is dropped and an error returned immediately.
func (p *Publisher) Push(ctx context.Context, params engine.FlightParameters) error {
	_, err := p.breaker.Execute(func() (interface{}, error) {
		return nil, p.post(ctx, params)
	})
	if err != nil {
		p.logger.LogWithContext(ctx, slog.LevelWarn, "telemetry push failed",
			"error", err,
			"state", p.breaker.State(),
		)
		return fmt.Errorf("telemetry push: %w", err)
	}
	return nil
}

// PushWithRetry sends one snapshot with exponential backoff. Retries
// stop early when the circuit opens or the context is cancelled.
func (p *Publisher) PushWithRetry(ctx context.Context, params engine.FlightParameters) error {
	const maxRetries = 3
	baseDelay := 500 * time.Millisecond

	for attempt := 0; attempt < maxRetries; attempt++ {
		err := p.Push(ctx, params)
		if err == nil {
			return nil
		}

		if p.breaker.State() == gobreaker.StateOpen {
			return err
		}

		if attempt == maxRetries-1 {
			return fmt.Errorf("max retries (%d) exceeded: %w", maxRetries, err)
		}

		delay := time.Duration(attempt+1) * baseDelay
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return fmt.Errorf("push cancelled: %w", ctx.Err())
		}
	}

	return fmt.Errorf("unexpected exit from retry loop")
}

// Run pushes the holder's latest snapshot every interval until the
// context is cancelled. Intended to run in its own goroutine beside
// the tick loop.
func (p *Publisher) Run(ctx context.Context, holder *Holder, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			params, ok := holder.Latest()
			if !ok {
				continue
			}
			// Errors are already logged; a missed push is not fatal.
			_ = p.Push(ctx, params)
		}
	}
}

// State returns the circuit breaker state for monitoring.
func (p *Publisher) State() gobreaker.State {
	return p.breaker.State()
}

func (p *Publisher) post(ctx context.Context, params engine.FlightParameters) error {
	body, err := json.Marshal(params)
	if err != nil {
		return logging.WrapError(err, "marshal snapshot")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return logging.WrapError(err, "build collector request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return logging.WrapError(err, "post snapshot")
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("collector returned status %d", resp.StatusCode)
	}
	return nil
}
