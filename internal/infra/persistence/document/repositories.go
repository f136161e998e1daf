package document

import (
	"context"
	"time"

	"landshare/internal/domain/entity"
	domainerrors "landshare/internal/domain/errors"
	"landshare/internal/domain/repository"
	"landshare/internal/infra/persistence/docstore"

	"landshare/internal/errors"
)

// investmentRepository implements the repository.InvestmentRepository interface.
type investmentRepository struct {
	store docstore.Store
}

// NewInvestmentRepository is the constructor for investmentRepository.
func NewInvestmentRepository(store docstore.Store) repository.InvestmentRepository {
	return &investmentRepository{store: store}
}

func (repo *investmentRepository) FindByID(ctx context.Context, id string) (*entity.Investment, error) {
	doc, err := repo.store.Get(ctx, CollectionInvestments, id)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, domainerrors.ErrInvestmentNotFound.WithDetails(id)
		}

		return nil, domainerrors.NewStoreExecuteError(err, "failed to find investment")
	}

	return decodeInvestment(id, doc), nil
}

// plotRepository implements the repository.PlotRepository interface.
type plotRepository struct {
	store docstore.Store
}

// NewPlotRepository is the constructor for plotRepository.
func NewPlotRepository(store docstore.Store) repository.PlotRepository {
	return &plotRepository{store: store}
}

func (repo *plotRepository) FindByID(ctx context.Context, id string) (*entity.Plot, error) {
	doc, err := repo.store.Get(ctx, CollectionPlots, id)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, repository.ErrPlotNotFound
		}

		return nil, domainerrors.NewStoreExecuteError(err, "failed to find plot")
	}

	return decodePlot(id, doc), nil
}

func (repo *plotRepository) Save(ctx context.Context, plot *entity.Plot) error {
	if plot.ID == "" {
		plot.ID = repo.store.NewID(CollectionPlots)
	}

	return wrapStore(repo.store.Set(ctx, CollectionPlots, plot.ID, encodePlot(plot)), "failed to save plot")
}

// projectRepository implements the repository.ProjectRepository interface.
type projectRepository struct {
	store docstore.Store
}

// NewProjectRepository is the constructor for projectRepository.
func NewProjectRepository(store docstore.Store) repository.ProjectRepository {
	return &projectRepository{store: store}
}

func (repo *projectRepository) FindByID(ctx context.Context, id string) (*entity.Project, error) {
	doc, err := repo.store.Get(ctx, CollectionProjects, id)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, repository.ErrProjectNotFound
		}

		return nil, domainerrors.NewStoreExecuteError(err, "failed to find project")
	}

	return decodeProject(id, doc), nil
}

func (repo *projectRepository) Save(ctx context.Context, project *entity.Project) error {
	if project.ID == "" {
		project.ID = repo.store.NewID(CollectionProjects)
	}

	return wrapStore(repo.store.Set(ctx, CollectionProjects, project.ID, encodeProject(project)), "failed to save project")
}

// userProfileRepository implements the repository.UserProfileRepository interface.
type userProfileRepository struct {
	store docstore.Store
}

// NewUserProfileRepository is the constructor for userProfileRepository.
func NewUserProfileRepository(store docstore.Store) repository.UserProfileRepository {
	return &userProfileRepository{store: store}
}

func (repo *userProfileRepository) FindByID(ctx context.Context, id string) (*entity.UserProfile, error) {
	doc, err := repo.store.Get(ctx, CollectionUserProfiles, id)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, repository.ErrUserProfileNotFound
		}

		return nil, domainerrors.NewStoreExecuteError(err, "failed to find user profile")
	}

	return decodeUserProfile(id, doc), nil
}

func (repo *userProfileRepository) FindByReferralCode(ctx context.Context, code string) (*entity.UserProfile, error) {
	q := docstore.Query{Collection: CollectionUserProfiles, Limit: 1}.
		Where("referral_code", docstore.OpEqual, code)

	snaps, err := queryEitherSpelling(ctx, repo.store, q)
	if err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to find user profile by referral code")
	}
	if len(snaps) == 0 {
		return nil, repository.ErrUserProfileNotFound
	}

	return decodeUserProfile(snaps[0].ID, snaps[0].Data), nil
}

func (repo *userProfileRepository) Save(ctx context.Context, user *entity.UserProfile) error {
	if user.ID == "" {
		user.ID = repo.store.NewID(CollectionUserProfiles)
	}

	return wrapStore(repo.store.Set(ctx, CollectionUserProfiles, user.ID, encodeUserProfile(user)), "failed to save user profile")
}

// referralRepository implements the repository.ReferralRepository interface.
type referralRepository struct {
	store docstore.Store
}

// NewReferralRepository is the constructor for referralRepository.
func NewReferralRepository(store docstore.Store) repository.ReferralRepository {
	return &referralRepository{store: store}
}

func (repo *referralRepository) FindByID(ctx context.Context, id string) (*entity.Referral, error) {
	doc, err := repo.store.Get(ctx, CollectionReferrals, id)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, domainerrors.ErrReferralNotFound.WithDetails(id)
		}

		return nil, domainerrors.NewStoreExecuteError(err, "failed to find referral")
	}

	return decodeReferral(id, doc), nil
}

func (repo *referralRepository) AssignReferrer(ctx context.Context, id, referrerID string) error {
	w := newWriter()
	w.str("referrer_id", referrerID)
	w.timestamp("updated_at", now())

	if err := repo.store.Update(ctx, CollectionReferrals, id, w.doc()); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return domainerrors.ErrReferralNotFound.WithDetails(id)
		}

		return domainerrors.NewStoreExecuteError(err, "failed to assign referrer")
	}

	return nil
}

func (repo *referralRepository) DeferResolution(ctx context.Context, id string, until time.Time) error {
	w := newWriter()
	w.timestamp("resolve_after", until)
	w.timestamp("updated_at", now())

	if err := repo.store.Update(ctx, CollectionReferrals, id, w.doc()); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return domainerrors.ErrReferralNotFound.WithDetails(id)
		}

		return domainerrors.NewStoreExecuteError(err, "failed to defer referral resolution")
	}

	return nil
}

func (repo *referralRepository) FindUnresolved(ctx context.Context, asOf time.Time, limit int) ([]*entity.Referral, error) {
	q := docstore.Query{Collection: CollectionReferrals, Limit: limit}.
		Where("referrer_id", docstore.OpEqual, "").
		Where("resolve_after", docstore.OpLessEqual, asOf.UTC()).
		OrderBy("resolve_after", docstore.Asc)

	snaps, err := queryEitherSpelling(ctx, repo.store, q)
	if err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to list unresolved referrals")
	}

	referrals := make([]*entity.Referral, 0, len(snaps))
	for _, snap := range snaps {
		referrals = append(referrals, decodeReferral(snap.ID, snap.Data))
	}

	return referrals, nil
}

func wrapStore(err error, details string) error {
	if err == nil {
		return nil
	}

	return domainerrors.NewStoreExecuteError(err, details)
}
