package document

import (
	"context"

	"landshare/internal/domain/entity"
	domainerrors "landshare/internal/domain/errors"
	"landshare/internal/domain/repository"
	"landshare/internal/errors"
	"landshare/internal/infra/persistence/docstore"
)

// transactionManager implements the repository.TransactionManager interface.
type transactionManager struct {
	store docstore.Store
}

// NewTransactionManager creates a new transaction manager.
func NewTransactionManager(store docstore.Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

// Execute runs fn inside a store transaction with transaction-bound repositories.
func (tm *transactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	err := tm.store.RunTransaction(ctx, func(tx docstore.Tx) error {
		return fn(&txRepositoryFactory{tx: tx, store: tm.store})
	})
	if err != nil {
		if errors.Is(err, docstore.ErrConflict) {
			return domainerrors.ErrTransactionFailed.WithDetails(err.Error())
		}

		return err
	}

	return nil
}

// txRepositoryFactory implements the repository.RepositoryFactory interface for one transaction.
type txRepositoryFactory struct {
	tx    docstore.Tx
	store docstore.Store
}

func (f *txRepositoryFactory) NewInvestmentRequestRepository() repository.InvestmentRequestTxRepository {
	return &txInvestmentRequestRepository{tx: f.tx}
}

func (f *txRepositoryFactory) NewInvestmentRepository() repository.InvestmentTxRepository {
	return &txInvestmentRepository{tx: f.tx, store: f.store}
}

func (f *txRepositoryFactory) NewPlotRepository() repository.PlotTxRepository {
	return &txPlotRepository{tx: f.tx}
}

func (f *txRepositoryFactory) NewUserProfileRepository() repository.UserProfileTxRepository {
	return &txUserProfileRepository{tx: f.tx}
}

func (f *txRepositoryFactory) NewProjectRepository() repository.ProjectTxRepository {
	return &txProjectRepository{tx: f.tx}
}

func (f *txRepositoryFactory) NewReferralRepository() repository.ReferralTxRepository {
	return &txReferralRepository{tx: f.tx, store: f.store}
}

type txInvestmentRequestRepository struct {
	tx docstore.Tx
}

func (repo *txInvestmentRequestRepository) FindByID(id string) (*entity.InvestmentRequest, error) {
	doc, err := repo.tx.Get(CollectionInvestmentRequests, id)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, domainerrors.ErrInvestmentRequestNotFound.WithDetails(id)
		}

		return nil, errors.Wrap(err, "failed to read investment request")
	}

	return decodeRequest(id, doc), nil
}

func (repo *txInvestmentRequestRepository) Update(id string, patch entity.RequestPatch) error {
	return errors.Wrap(repo.tx.Update(CollectionInvestmentRequests, id, encodeRequestPatch(patch)), "failed to stage investment request update")
}

type txInvestmentRepository struct {
	tx    docstore.Tx
	store docstore.Store
}

func (repo *txInvestmentRepository) NewID() string {
	return repo.store.NewID(CollectionInvestments)
}

func (repo *txInvestmentRepository) Create(investment *entity.Investment) error {
	if investment.ID == "" {
		investment.ID = repo.NewID()
	}

	return errors.Wrap(repo.tx.Create(CollectionInvestments, investment.ID, encodeInvestment(investment)), "failed to stage investment")
}

func (repo *txInvestmentRepository) Update(id string, patch entity.InvestmentPatch) error {
	return errors.Wrap(repo.tx.Update(CollectionInvestments, id, encodeInvestmentPatch(patch)), "failed to stage investment update")
}

type txPlotRepository struct {
	tx docstore.Tx
}

func (repo *txPlotRepository) FindByID(id string) (*entity.Plot, error) {
	doc, err := repo.tx.Get(CollectionPlots, id)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, repository.ErrPlotNotFound
		}

		return nil, errors.Wrap(err, "failed to read plot")
	}

	return decodePlot(id, doc), nil
}

func (repo *txPlotRepository) UpdateInventory(plot *entity.Plot) error {
	return errors.Wrap(repo.tx.Update(CollectionPlots, plot.ID, encodePlotInventory(plot)), "failed to stage plot update")
}

type txUserProfileRepository struct {
	tx docstore.Tx
}

func (repo *txUserProfileRepository) FindByID(id string) (*entity.UserProfile, error) {
	doc, err := repo.tx.Get(CollectionUserProfiles, id)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, repository.ErrUserProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to read user profile")
	}

	return decodeUserProfile(id, doc), nil
}

func (repo *txUserProfileRepository) UpdatePortfolio(user *entity.UserProfile) error {
	return errors.Wrap(repo.tx.Update(CollectionUserProfiles, user.ID, encodeUserPortfolio(user)), "failed to stage user update")
}

type txProjectRepository struct {
	tx docstore.Tx
}

func (repo *txProjectRepository) FindByID(id string) (*entity.Project, error) {
	doc, err := repo.tx.Get(CollectionProjects, id)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, repository.ErrProjectNotFound
		}

		return nil, errors.Wrap(err, "failed to read project")
	}

	return decodeProject(id, doc), nil
}

func (repo *txProjectRepository) UpdateTotals(project *entity.Project) error {
	return errors.Wrap(repo.tx.Update(CollectionProjects, project.ID, encodeProjectTotals(project)), "failed to stage project update")
}

type txReferralRepository struct {
	tx    docstore.Tx
	store docstore.Store
}

func (repo *txReferralRepository) NewID() string {
	return repo.store.NewID(CollectionReferrals)
}

func (repo *txReferralRepository) Create(referral *entity.Referral) error {
	if referral.ID == "" {
		referral.ID = repo.NewID()
	}

	return errors.Wrap(repo.tx.Create(CollectionReferrals, referral.ID, encodeReferral(referral)), "failed to stage referral")
}
