package main

import (
	"context"
	"log/slog"
	"os"

	"landshare/config"
	"landshare/internal/delivery"
	"landshare/internal/delivery/api"
	apimiddleware "landshare/internal/delivery/api/middleware"
	"landshare/internal/delivery/api/router/handler"
	"landshare/internal/delivery/scheduler"
	"landshare/internal/domain/service"
	"landshare/internal/infra/auth"
	"landshare/internal/infra/firebase"
	"landshare/internal/infra/lock"
	logs "landshare/internal/infra/log"
	"landshare/internal/infra/metrics"
	"landshare/internal/infra/persistence/document"
	"landshare/internal/infra/pubsub"
	"landshare/internal/infra/referral"
	"landshare/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(appOptions()).Run()
}

func appOptions() fx.Option {
	return fx.Options(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			impl.RegisterApprovalQueueHandler,
			startServer,
		),
	)
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		firebase.NewAppProvider,
		metrics.NewRecorder,
		func(recorder *metrics.Recorder) service.Metrics {
			return recorder
		},
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		document.Module,
	)
}

func injectService() fx.Option {
	return fx.Options(
		referral.Module,
		pubsub.Module,
		fx.Provide(
			lock.NewScanLock,
			auth.NewTokenVerifier,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewApprovalService,
			impl.NewBulkService,
			impl.NewQueueService,
			impl.NewApprovalQueueHandler,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAdminAuthMiddleware,
			handler.NewRequestHandler,
			handler.NewBulkHandler,
			handler.NewQueueHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				scheduler.NewScheduler,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
