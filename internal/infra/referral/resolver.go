// Package referral provides the referrer resolution strategies.
package referral

import (
	"context"
	"log/slog"

	"landshare/config"
	"landshare/internal/domain/repository"
	"landshare/internal/domain/service"
	"landshare/internal/errors"

	"go.uber.org/fx"
)

// deferredResolver leaves every code for the asynchronous reconciler.
type deferredResolver struct{}

// NewDeferredResolver returns a resolver that never resolves synchronously.
func NewDeferredResolver() service.ReferrerResolver {
	return deferredResolver{}
}

func (deferredResolver) Resolve(context.Context, string) (string, error) {
	return "", nil
}

// lookupResolver finds the user whose own referral code matches.
type lookupResolver struct {
	users repository.UserProfileRepository
}

// NewLookupResolver returns a resolver that queries user profiles by referral code.
func NewLookupResolver(users repository.UserProfileRepository) service.ReferrerResolver {
	return &lookupResolver{users: users}
}

func (r *lookupResolver) Resolve(ctx context.Context, code string) (string, error) {
	if code == "" {
		return "", nil
	}

	user, err := r.users.FindByReferralCode(ctx, code)
	if errors.Is(err, repository.ErrUserProfileNotFound) {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to look up referral code")
	}

	return user.ID, nil
}

// ResolverParams holds dependencies for the configured resolver, injected by Fx.
type ResolverParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Lookup service.ReferrerResolver `name:"lookupResolver"`
}

// NewConfiguredResolver picks the approval-time resolver from referral.resolver.
func NewConfiguredResolver(params ResolverParams) (service.ReferrerResolver, error) {
	switch params.Config.Referral.Resolver {
	case config.ResolverDeferred:
		params.Logger.Info("Referrers are resolved asynchronously")

		return NewDeferredResolver(), nil
	case config.ResolverLookup:
		params.Logger.Info("Referrers are resolved during approval")

		return params.Lookup, nil
	default:
		return nil, errors.Errorf("unknown referral resolver: %s", params.Config.Referral.Resolver)
	}
}

// Module provides the lookup resolver under its name and the configured resolver as the default.
var Module = fx.Options(
	fx.Provide(
		fx.Annotate(
			NewLookupResolver,
			fx.ResultTags(`name:"lookupResolver"`),
		),
		NewConfiguredResolver,
	),
)
