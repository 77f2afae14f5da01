package repository

import (
	"context"

	"rentnest/internal/domain/entity"
)

type RentalRepository interface {
	Create(ctx context.Context, rental *entity.Rental) error
	GetByID(ctx context.Context, id string) (*entity.Rental, error)
	ListByTenant(ctx context.Context, tenantID string) ([]*entity.Rental, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.Rental, error)
	// FindActive returns the tenant's pending or accepted request for the
	// property, or NOT_FOUND.
	FindActive(ctx context.Context, propertyID, tenantID string) (*entity.Rental, error)
	// UpdateStatus persists the rental's status and, when effect demands it,
	// the property's availability flag in the same transaction.
	UpdateStatus(ctx context.Context, rental *entity.Rental, effect entity.AvailabilityEffect) error
}
