// Package firebase builds the Firebase app shared by the Firestore store and the token verifier.
package firebase

import (
	"context"
	"sync"

	"landshare/config"
	"landshare/internal/errors"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// AppProvider lazily initializes one Firebase app per process.
// Deployments that use neither Firestore nor Firebase auth never touch Google credentials.
type AppProvider struct {
	cfg *config.FirebaseConfig

	once sync.Once
	app  *firebase.App
	err  error
}

// NewAppProvider creates a new AppProvider from the firebase config section.
func NewAppProvider(cfg *config.Config) *AppProvider {
	return &AppProvider{cfg: cfg.Firebase}
}

// App returns the shared Firebase app, initializing it on first use.
func (p *AppProvider) App(ctx context.Context) (*firebase.App, error) {
	p.once.Do(func() {
		var opts []option.ClientOption
		if p.cfg.CredentialsPath != "" {
			opts = append(opts, option.WithCredentialsFile(p.cfg.CredentialsPath))
		}

		var fbConfig *firebase.Config
		if p.cfg.ProjectID != "" {
			fbConfig = &firebase.Config{ProjectID: p.cfg.ProjectID}
		}

		p.app, p.err = firebase.NewApp(ctx, fbConfig, opts...)
		if p.err != nil {
			p.err = errors.Wrap(p.err, "failed to initialize Firebase app")
		}
	})

	return p.app, p.err
}

// Firestore returns a Firestore client bound to the shared app.
func (p *AppProvider) Firestore(ctx context.Context) (*firestore.Client, error) {
	app, err := p.App(ctx)
	if err != nil {
		return nil, err
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firestore client")
	}

	return client, nil
}

// Auth returns a Firebase Auth client bound to the shared app.
func (p *AppProvider) Auth(ctx context.Context) (*auth.Client, error) {
	app, err := p.App(ctx)
	if err != nil {
		return nil, err
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firebase auth client")
	}

	return client, nil
}
