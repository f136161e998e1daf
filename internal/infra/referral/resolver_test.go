package referral

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"landshare/config"
	"landshare/internal/domain/entity"
	"landshare/internal/infra/persistence/document"
	"landshare/internal/infra/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupResolver(t *testing.T) {
	ctx := context.Background()
	users := document.NewUserProfileRepository(memory.New(3))
	require.NoError(t, users.Save(ctx, &entity.UserProfile{ID: "referrer-1", ReferralCode: "ADA-1"}))

	resolver := NewLookupResolver(users)

	id, err := resolver.Resolve(ctx, "ADA-1")
	require.NoError(t, err)
	assert.Equal(t, "referrer-1", id)

	id, err = resolver.Resolve(ctx, "UNKNOWN")
	require.NoError(t, err)
	assert.Empty(t, id)

	id, err = resolver.Resolve(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, id)
}

func TestDeferredResolver_NeverResolves(t *testing.T) {
	id, err := NewDeferredResolver().Resolve(context.Background(), "ADA-1")
	require.NoError(t, err)
	assert.Empty(t, id)
}

func TestNewConfiguredResolver(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	lookup := NewLookupResolver(document.NewUserProfileRepository(memory.New(3)))

	newResolver := func(name string) (any, error) {
		return NewConfiguredResolver(ResolverParams{
			Config: &config.Config{Referral: &config.ReferralConfig{Resolver: name}},
			Logger: logger,
			Lookup: lookup,
		})
	}

	got, err := newResolver(config.ResolverLookup)
	require.NoError(t, err)
	assert.Same(t, lookup, got)

	got, err = newResolver(config.ResolverDeferred)
	require.NoError(t, err)
	assert.IsType(t, deferredResolver{}, got)

	_, err = newResolver("psychic")
	assert.Error(t, err)
}
