package document

import (
	"context"
	"log/slog"

	"landshare/config"
	"landshare/internal/domain/lifecycle"
	"landshare/internal/errors"
	"landshare/internal/infra/firebase"
	"landshare/internal/infra/persistence/docstore"
	firestorestore "landshare/internal/infra/persistence/firestore"
	"landshare/internal/infra/persistence/memory"
	"landshare/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// StoreParams defines the dependencies of the entity store.
type StoreParams struct {
	fx.In

	Lifecycle   fx.Lifecycle
	Config      *config.Config
	Logger      *slog.Logger
	AppProvider *firebase.AppProvider
}

// NewStore opens the entity store selected by store.driver.
func NewStore(params StoreParams) (docstore.Store, error) {
	maxAttempts := params.Config.Store.MaxAttempts

	switch params.Config.Store.Driver {
	case config.StoreDriverMemory:
		params.Logger.Warn("Using in-memory entity store; data is lost on restart")

		return memory.New(maxAttempts), nil

	case config.StoreDriverPostgres:
		if params.Config.Postgres == nil {
			return nil, errors.New("postgres driver selected but postgres config is missing")
		}

		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}

		return postgres.NewStore(db, maxAttempts, params.Logger), nil

	case config.StoreDriverFirestore:
		ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()

		client, err := params.AppProvider.Firestore(ctx)
		if err != nil {
			return nil, err
		}

		params.Lifecycle.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})

		return firestorestore.NewStore(client, maxAttempts, params.Logger), nil

	default:
		return nil, errors.Errorf("unknown store driver: %s", params.Config.Store.Driver)
	}
}

// Module provides the entity store and every document-backed repository.
var Module = fx.Options(
	fx.Provide(
		NewStore,
		NewTransactionManager,
		NewBatchFactory,
		NewInvestmentRequestRepository,
		NewInvestmentRepository,
		NewPlotRepository,
		NewProjectRepository,
		NewUserProfileRepository,
		NewReferralRepository,
		NewQueueRepository,
	),
)
