package scheduler

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"landshare/config"
	deliverycontext "landshare/internal/delivery/context"
	"landshare/internal/domain/entity"
	"landshare/internal/errors"
	mockusecase "landshare/internal/mocks/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func testConfig() *config.Config {
	cfg := &config.Config{Queue: &config.QueueConfig{
		SweepLimit:           25,
		AutoApproveThreshold: 5000,
		SystemAdminID:        "system",
		ReconcileLimit:       40,
	}}
	cfg.Queue.Schedules.Scan = "@every 5m"
	cfg.Queue.Schedules.Sweep = "@every 10m"
	cfg.Queue.Schedules.AutoApprove = "0 3 * * *"
	cfg.Queue.Schedules.Reconcile = "@every 15m"

	return cfg
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestNewScheduler_RegistersAvailableJobs(t *testing.T) {
	t.Run("admin process", func(t *testing.T) {
		s, err := newScheduler(Params{
			Config:  testConfig(),
			Logger:  discardLogger(),
			QueueUC: mockusecase.NewMockQueueUsecase(t),
			BulkUC:  mockusecase.NewMockBulkUsecase(t),
		})
		require.NoError(t, err)

		assert.Len(t, s.cron.Entries(), 3)
		assert.Contains(t, s.jobs, JobQueueScan)
		assert.Contains(t, s.jobs, JobQueueSweep)
		assert.Contains(t, s.jobs, JobAutoApprove)
		assert.NotContains(t, s.jobs, JobReconcile)
	})

	t.Run("worker process", func(t *testing.T) {
		s, err := newScheduler(Params{
			Config:     testConfig(),
			Logger:     discardLogger(),
			ReferralUC: mockusecase.NewMockReferralUsecase(t),
		})
		require.NoError(t, err)

		assert.Len(t, s.jobs, 1)
		assert.Contains(t, s.jobs, JobReconcile)
	})

	t.Run("zero threshold disables auto approval", func(t *testing.T) {
		cfg := testConfig()
		cfg.Queue.AutoApproveThreshold = 0

		s, err := newScheduler(Params{Config: cfg, Logger: discardLogger(), BulkUC: mockusecase.NewMockBulkUsecase(t)})
		require.NoError(t, err)

		assert.Empty(t, s.jobs)
	})

	t.Run("empty schedule disables a job", func(t *testing.T) {
		cfg := testConfig()
		cfg.Queue.Schedules.Sweep = ""

		s, err := newScheduler(Params{Config: cfg, Logger: discardLogger(), QueueUC: mockusecase.NewMockQueueUsecase(t)})
		require.NoError(t, err)

		assert.Contains(t, s.jobs, JobQueueScan)
		assert.NotContains(t, s.jobs, JobQueueSweep)
	})

	t.Run("invalid schedule fails", func(t *testing.T) {
		cfg := testConfig()
		cfg.Queue.Schedules.Scan = "every now and then"

		_, err := newScheduler(Params{Config: cfg, Logger: discardLogger(), QueueUC: mockusecase.NewMockQueueUsecase(t)})
		assert.ErrorContains(t, err, "queue_scan")
	})
}

func TestScheduler_QueueSweep(t *testing.T) {
	items := []*entity.QueueItem{{ID: "q-1"}, {ID: "q-2"}}

	queueUC := mockusecase.NewMockQueueUsecase(t)
	queueUC.EXPECT().ListPendingItems(mock.Anything, 25).Return(items, nil).Once()
	queueUC.EXPECT().ProcessBatch(mock.Anything, items, "system", 0).
		Return(&entity.BulkResult{Success: true, Processed: 2}, nil).Once()

	s, err := newScheduler(Params{Config: testConfig(), Logger: discardLogger(), QueueUC: queueUC})
	require.NoError(t, err)

	assert.NoError(t, s.runQueueSweep(context.Background()))
}

func TestScheduler_QueueSweepNothingPending(t *testing.T) {
	queueUC := mockusecase.NewMockQueueUsecase(t)
	queueUC.EXPECT().ListPendingItems(mock.Anything, 25).Return(nil, nil).Once()

	s, err := newScheduler(Params{Config: testConfig(), Logger: discardLogger(), QueueUC: queueUC})
	require.NoError(t, err)

	assert.NoError(t, s.runQueueSweep(context.Background()))
}

func TestScheduler_AutoApproveUsesThreshold(t *testing.T) {
	bulkUC := mockusecase.NewMockBulkUsecase(t)
	bulkUC.EXPECT().
		AutoProcessLowValueRequests(mock.Anything, mock.MatchedBy(func(threshold decimal.Decimal) bool {
			return threshold.Equal(decimal.NewFromInt(5000))
		}), "system").
		Return(&entity.BulkResult{Success: true}, nil).Once()

	s, err := newScheduler(Params{Config: testConfig(), Logger: discardLogger(), BulkUC: bulkUC})
	require.NoError(t, err)

	assert.NoError(t, s.runAutoApprove(context.Background()))
}

func TestScheduler_ExecuteScopesContext(t *testing.T) {
	s, err := newScheduler(Params{Config: testConfig(), Logger: discardLogger()})
	require.NoError(t, err)

	var requestID string
	var origin deliverycontext.Origin
	s.execute(JobReconcile, func(ctx context.Context) error {
		requestID = deliverycontext.GetRequestIDFromContext(ctx)
		origin = deliverycontext.GetOrigin(ctx)

		return errors.New("logged, not returned")
	})

	assert.Contains(t, requestID, JobReconcile+"-")
	assert.Equal(t, deliverycontext.OriginScheduler, origin)
}

func TestScheduler_ReconcileAndLifecycle(t *testing.T) {
	referralUC := mockusecase.NewMockReferralUsecase(t)
	referralUC.EXPECT().ReconcileUnresolved(mock.Anything, 40).Return(3, nil).Once()

	lc := fxtest.NewLifecycle(t)
	d, err := NewScheduler(Params{Lc: lc, Config: testConfig(), Logger: discardLogger(), ReferralUC: referralUC})
	require.NoError(t, err)

	s := d.(*Scheduler)
	assert.NoError(t, s.runReconcile(context.Background()))

	lc.RequireStart()

	done := make(chan error, 1)
	go func() { done <- s.Serve(context.Background()) }()

	lc.RequireStop()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Serve did not return after stop")
	}
}
