package repository

import (
	"context"

	"landshare/internal/domain/entity"
)

// PlotRepository defines the interface for plot persistence outside transactions.
type PlotRepository interface {
	FindByID(ctx context.Context, id string) (*entity.Plot, error)
	Save(ctx context.Context, plot *entity.Plot) error
}

// ProjectRepository defines the interface for project persistence outside transactions.
type ProjectRepository interface {
	FindByID(ctx context.Context, id string) (*entity.Project, error)
	Save(ctx context.Context, project *entity.Project) error
}
