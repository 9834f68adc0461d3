package scheduler

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/jobboardhq/jobboard/pkg/logger"
	"github.com/jobboardhq/jobboard/pkg/metrics"
)

const (
	// DefaultSpec fires once a day at 11:40 in the configured timezone.
	DefaultSpec     = "40 11 * * *"
	DefaultTimezone = "Asia/Kolkata"

	requestTimeout = 30 * time.Second
)

// DefaultTargets are the paths warmed on every run when none are configured.
var DefaultTargets = []string{"/users/filter?skip=0&limit=10"}

// Warmup periodically issues GET requests against the running API so that the
// query cache is populated before interactive traffic arrives. Failures are
// logged and dropped; a broken warm-up never affects the serving path.
type Warmup struct {
	baseURL string
	targets []string
	spec    string
	client  *http.Client
	cron    *cron.Cron
	log     *zap.Logger
}

// Option customises a Warmup.
type Option func(*Warmup)

// WithHTTPClient overrides the HTTP client used for warm-up requests.
func WithHTTPClient(client *http.Client) Option {
	return func(w *Warmup) {
		if client != nil {
			w.client = client
		}
	}
}

// WithSpec overrides the cron expression.
func WithSpec(spec string) Option {
	return func(w *Warmup) {
		if strings.TrimSpace(spec) != "" {
			w.spec = spec
		}
	}
}

// WithTargets overrides the warmed paths.
func WithTargets(targets []string) Option {
	return func(w *Warmup) {
		if len(targets) > 0 {
			w.targets = targets
		}
	}
}

// NewWarmup creates a warm-up scheduler targeting baseURL in the given
// timezone. An empty timezone falls back to DefaultTimezone.
func NewWarmup(baseURL, timezone string, opts ...Option) (*Warmup, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("scheduler: base url must be provided")
	}
	if strings.TrimSpace(timezone) == "" {
		timezone = DefaultTimezone
	}

	location, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("scheduler: load timezone %q: %w", timezone, err)
	}

	w := &Warmup{
		baseURL: baseURL,
		targets: DefaultTargets,
		spec:    DefaultSpec,
		client:  &http.Client{Timeout: requestTimeout},
		cron:    cron.New(cron.WithLocation(location)),
		log:     logger.WithModule("scheduler"),
	}
	for _, opt := range opts {
		opt(w)
	}

	if _, err := w.cron.AddFunc(w.spec, w.run); err != nil {
		return nil, fmt.Errorf("scheduler: invalid cron spec %q: %w", w.spec, err)
	}

	return w, nil
}

// Start launches the cron loop in the background.
func (w *Warmup) Start() {
	w.cron.Start()
	w.log.Info("cache warm-up scheduled",
		zap.String("spec", w.spec),
		zap.Strings("targets", w.targets))
}

// Stop halts the cron loop and waits for any in-flight run to finish.
func (w *Warmup) Stop() {
	ctx := w.cron.Stop()
	<-ctx.Done()
}

func (w *Warmup) run() {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	if err := w.RunOnce(ctx); err != nil {
		metrics.WarmupRuns.WithLabelValues("failure").Inc()
		w.log.Error("cache warm-up failed", zap.Error(err))
		return
	}
	metrics.WarmupRuns.WithLabelValues("success").Inc()
	w.log.Info("cache warm-up completed", zap.Int("targets", len(w.targets)))
}

// RunOnce warms every configured target and aggregates per-target failures.
// One failing target does not stop the rest from being warmed.
func (w *Warmup) RunOnce(ctx context.Context) error {
	var errs error
	for _, target := range w.targets {
		if err := w.warm(ctx, target); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("warm %s: %w", target, err))
		}
	}
	return errs
}

func (w *Warmup) warm(ctx context.Context, target string) error {
	url := w.baseURL + "/" + strings.TrimLeft(target, "/")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	// Drain so the connection can be reused.
	n, _ := io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	w.log.Info("warmed target",
		zap.String("target", target),
		zap.Int("status", resp.StatusCode),
		zap.Int64("body_bytes", n))
	return nil
}
