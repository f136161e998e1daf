// Package scheduler runs the periodic admin jobs on cron schedules.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"landshare/config"
	"landshare/internal/delivery"
	deliverycontext "landshare/internal/delivery/context"
	"landshare/internal/domain/lifecycle"
	"landshare/internal/errors"
	"landshare/internal/usecase"
	"landshare/internal/util"

	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// Job names, also used as log fields
const (
	JobQueueScan   = "queue_scan"
	JobQueueSweep  = "queue_sweep"
	JobAutoApprove = "auto_approve"
	JobReconcile   = "referral_reconcile"
)

// Params holds dependencies for the Scheduler, injected by Fx.
// A job is registered only when its usecase is provided and its schedule is set.
type Params struct {
	fx.In

	Lc         fx.Lifecycle
	Config     *config.Config
	Logger     *slog.Logger
	QueueUC    usecase.QueueUsecase    `optional:"true"`
	BulkUC     usecase.BulkUsecase     `optional:"true"`
	ReferralUC usecase.ReferralUsecase `optional:"true"`
}

// Scheduler owns the cron runner and the jobs registered on it.
type Scheduler struct {
	cron       *cron.Cron
	cfg        *config.QueueConfig
	logger     *slog.Logger
	queueUC    usecase.QueueUsecase
	bulkUC     usecase.BulkUsecase
	referralUC usecase.ReferralUsecase

	// jobs maps registered job names to their cron entries
	jobs map[string]cron.EntryID

	baseCtx context.Context
	cancel  context.CancelFunc
}

// NewScheduler builds the scheduler delivery. An invalid schedule fails startup.
func NewScheduler(params Params) (delivery.Delivery, error) {
	s, err := newScheduler(params)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

func newScheduler(params Params) (*Scheduler, error) {
	cronLog := cronLogger{logger: params.Logger}
	baseCtx, cancel := context.WithCancel(context.Background())

	s := &Scheduler{
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithLogger(cronLog),
			cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
		),
		cfg:        params.Config.Queue,
		logger:     params.Logger,
		queueUC:    params.QueueUC,
		bulkUC:     params.BulkUC,
		referralUC: params.ReferralUC,
		jobs:       make(map[string]cron.EntryID),
		baseCtx:    baseCtx,
		cancel:     cancel,
	}

	if err := s.registerJobs(); err != nil {
		cancel()

		return nil, err
	}

	return s, nil
}

// registerJobs registers every job whose dependencies and schedule are present
func (s *Scheduler) registerJobs() error {
	schedules := s.cfg.Schedules

	if s.queueUC != nil {
		if err := s.register(JobQueueScan, schedules.Scan, s.runQueueScan); err != nil {
			return err
		}
		if err := s.register(JobQueueSweep, schedules.Sweep, s.runQueueSweep); err != nil {
			return err
		}
	}

	if s.bulkUC != nil && s.cfg.AutoApproveThreshold > 0 {
		if err := s.register(JobAutoApprove, schedules.AutoApprove, s.runAutoApprove); err != nil {
			return err
		}
	}

	if s.referralUC != nil {
		if err := s.register(JobReconcile, schedules.Reconcile, s.runReconcile); err != nil {
			return err
		}
	}

	return nil
}

func (s *Scheduler) register(name, spec string, run func(ctx context.Context) error) error {
	if spec == "" {
		s.logger.Info("Scheduled job disabled", slog.String("job", name))

		return nil
	}

	id, err := s.cron.AddFunc(spec, func() { s.execute(name, run) })
	if err != nil {
		return errors.Wrapf(err, "invalid schedule %q for job %s", spec, name)
	}
	s.jobs[name] = id

	now := time.Now()
	s.logger.Info("Scheduled job registered",
		slog.String("job", name),
		slog.String("schedule", spec),
		slog.String("first_run_in", util.FormatDuration(s.cron.Entry(id).Schedule.Next(now).Sub(now))),
	)

	return nil
}

// execute runs one job with its own request id and logger, like an inbound request.
func (s *Scheduler) execute(name string, run func(ctx context.Context) error) {
	ctx, jobLogger := deliverycontext.Scope(s.baseCtx, s.logger, deliverycontext.OriginScheduler,
		deliverycontext.NewRequestID(name), slog.String("job", name))

	start := time.Now()
	if err := run(ctx); err != nil {
		jobLogger.Error("Scheduled job failed", slog.Any("error", err), slog.Duration("elapsed", time.Since(start)))

		return
	}

	jobLogger.Info("Scheduled job finished", slog.Duration("elapsed", time.Since(start)))
}

func (s *Scheduler) runQueueScan(ctx context.Context) error {
	_, err := s.queueUC.AutoQueueRequests(ctx)

	return err
}

func (s *Scheduler) runQueueSweep(ctx context.Context) error {
	items, err := s.queueUC.ListPendingItems(ctx, s.cfg.SweepLimit)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}

	_, err = s.queueUC.ProcessBatch(ctx, items, s.cfg.SystemAdminID, 0)

	return err
}

func (s *Scheduler) runAutoApprove(ctx context.Context) error {
	threshold := decimal.NewFromFloat(s.cfg.AutoApproveThreshold)
	_, err := s.bulkUC.AutoProcessLowValueRequests(ctx, threshold, s.cfg.SystemAdminID)

	return err
}

func (s *Scheduler) runReconcile(ctx context.Context) error {
	_, err := s.referralUC.ReconcileUnresolved(ctx, s.cfg.ReconcileLimit)

	return err
}

// Serve starts the cron runner and blocks until the scheduler is stopped.
func (s *Scheduler) Serve(ctx context.Context) error {
	s.logger.Info("Starting job scheduler", slog.Int("jobs", len(s.jobs)))
	s.cron.Start()

	select {
	case <-ctx.Done():
	case <-s.baseCtx.Done():
	}

	return nil
}

// stop cancels running jobs and waits for them to return.
func (s *Scheduler) stop(ctx context.Context) error {
	s.logger.Info("Stopping job scheduler")

	s.cancel()
	stopped := s.cron.Stop()

	waitCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	select {
	case <-stopped.Done():
		return nil
	case <-waitCtx.Done():
		return errors.Wrap(waitCtx.Err(), "scheduled jobs did not finish")
	}
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("[Cron] "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("[Cron] "+msg, append(keysAndValues, slog.Any("error", err))...)
}
