package repository

import (
	"context"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"rentnest/internal/domain/entity"
	"rentnest/internal/domain/repository"
	"rentnest/pkg/errors"
)

type firestorePropertyRepository struct {
	client *firestore.Client
}

func NewFirestorePropertyRepository(client *firestore.Client) repository.PropertyRepository {
	return &firestorePropertyRepository{
		client: client,
	}
}

func (r *firestorePropertyRepository) Create(ctx context.Context, property *entity.Property) error {
	if property.ID == "" {
		property.ID = r.client.Collection("properties").NewDoc().ID
	}

	now := time.Now()
	property.CreatedAt = now
	property.UpdatedAt = now

	_, err := r.client.Collection("properties").Doc(property.ID).Set(ctx, property)
	if err != nil {
		return errors.Internal("Failed to create property", err)
	}

	return nil
}

func (r *firestorePropertyRepository) GetByID(ctx context.Context, id string) (*entity.Property, error) {
	doc, err := r.client.Collection("properties").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Property", err)
		}
		return nil, errors.Internal("Failed to get property", err)
	}

	var property entity.Property
	if err := doc.DataTo(&property); err != nil {
		return nil, errors.Internal("Failed to parse property data", err)
	}

	return &property, nil
}

func (r *firestorePropertyRepository) Update(ctx context.Context, property *entity.Property) error {
	property.UpdatedAt = time.Now()

	_, err := r.client.Collection("properties").Doc(property.ID).Set(ctx, property)
	if err != nil {
		return errors.Internal("Failed to update property", err)
	}

	return nil
}

// List fetches everything and filters soft-deleted documents in memory.
// Firestore cannot combine a "!=" filter with an order on another field
// without an awkward composite index, and the listing set is small.
func (r *firestorePropertyRepository) List(ctx context.Context, sortBy repository.PropertySort) ([]*entity.Property, error) {
	docs, err := r.client.Collection("properties").Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to fetch properties", err)
	}

	var properties []*entity.Property
	for _, doc := range docs {
		var property entity.Property
		if err := doc.DataTo(&property); err != nil {
			continue
		}
		if property.Status == entity.PropertyStatusDeleted {
			continue
		}
		properties = append(properties, &property)
	}

	switch sortBy {
	case repository.PropertySortPriceAsc:
		sort.Slice(properties, func(i, j int) bool { return properties[i].Price < properties[j].Price })
	case repository.PropertySortPriceDesc:
		sort.Slice(properties, func(i, j int) bool { return properties[i].Price > properties[j].Price })
	default:
		sort.Slice(properties, func(i, j int) bool { return properties[i].CreatedAt.After(properties[j].CreatedAt) })
	}

	return properties, nil
}

func (r *firestorePropertyRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Property, error) {
	query := r.client.Collection("properties").
		Where("ownerId", "==", ownerID).
		OrderBy("createdAt", firestore.Desc)

	iter := query.Documents(ctx)
	var properties []*entity.Property

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate properties", err)
		}

		var property entity.Property
		if err := doc.DataTo(&property); err != nil {
			return nil, errors.Internal("Failed to parse property data", err)
		}
		properties = append(properties, &property)
	}

	return properties, nil
}
