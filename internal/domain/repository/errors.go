// Package repository defines the interfaces for the persistence layer.
package repository

import "github.com/pkg/errors"

// Domain-specific errors for entity persistence.
var (
	// ErrPlotNotFound is returned when a plot is not found.
	ErrPlotNotFound = errors.New("plot not found")
	// ErrUserProfileNotFound is returned when a user profile is not found.
	ErrUserProfileNotFound = errors.New("user profile not found")
	// ErrProjectNotFound is returned when a project is not found.
	ErrProjectNotFound = errors.New("project not found")
	// ErrQueueItemNotFound is returned when a queue item is not found.
	ErrQueueItemNotFound = errors.New("queue item not found")
)
