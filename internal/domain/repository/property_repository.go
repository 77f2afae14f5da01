package repository

import (
	"context"

	"rentnest/internal/domain/entity"
)

// PropertySort selects the ordering of public listing queries.
type PropertySort string

const (
	PropertySortRecent    PropertySort = ""
	PropertySortPriceAsc  PropertySort = "priceAsc"
	PropertySortPriceDesc PropertySort = "priceDesc"
)

type PropertyRepository interface {
	Create(ctx context.Context, property *entity.Property) error
	GetByID(ctx context.Context, id string) (*entity.Property, error)
	Update(ctx context.Context, property *entity.Property) error
	// List returns all non-deleted properties in the given order.
	List(ctx context.Context, sort PropertySort) ([]*entity.Property, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.Property, error)
}
