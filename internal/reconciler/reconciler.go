package reconciler

import (
	"context"
	"time"

	"github.com/goliatone/go-catalog/pkg/catalog"
	"github.com/goliatone/go-catalog/pkg/interfaces/logger"
	"github.com/goliatone/go-catalog/pkg/retry"
)

// Config controls where the source workbook lives and how often it is
// reconciled against the live catalog.
type Config struct {
	SourcePath  string
	SheetName   string
	Interval    time.Duration
	BackoffBase time.Duration
	BackoffMax  time.Duration
}

// Reconciler periodically diffs the source workbook against the live
// catalog and converges the catalog toward the workbook. A failing run is
// retried with bounded exponential backoff instead of the steady interval.
type Reconciler struct {
	service *catalog.Service
	logger  logger.Logger
	config  Config
	policy  *retry.Policy
}

func New(service *catalog.Service, config Config, log logger.Logger) *Reconciler {
	if log == nil {
		log = &logger.Nop{}
	}
	return &Reconciler{
		service: service,
		logger:  log,
		config:  config,
		policy: &retry.Policy{
			Interval: config.Interval,
			Backoff: retry.ExponentialBackoff{
				Base: config.BackoffBase,
				Max:  config.BackoffMax,
			},
		},
	}
}

// RunOnce performs a single reconciliation pass.
func (r *Reconciler) RunOnce(ctx context.Context) error {
	desired, err := ParseSheet(r.config.SourcePath, r.config.SheetName)
	if err != nil {
		return err
	}

	tree, err := r.service.Preview(ctx)
	if err != nil {
		return err
	}

	return apply(ctx, r.service, desired, FromPreview(tree))
}

// Run reconciles until ctx is done.
func (r *Reconciler) Run(ctx context.Context) error {
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}

		var delay time.Duration
		if err := r.RunOnce(ctx); err != nil {
			delay = r.policy.Fail()
			r.logger.Error("reconciliation failed",
				logger.Field{Key: "error", Value: err},
				logger.Field{Key: "failures", Value: r.policy.Failures()},
				logger.Field{Key: "retry_in", Value: delay})
		} else {
			delay = r.policy.Succeed()
			r.logger.Debug("reconciliation complete",
				logger.Field{Key: "next_in", Value: delay})
		}
		timer.Reset(delay)
	}
}
