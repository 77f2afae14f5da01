package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"rentnest/internal/domain/entity"
	"rentnest/internal/domain/repository"
	"rentnest/pkg/errors"
)

type firestoreRentalRepository struct {
	client *firestore.Client
}

func NewFirestoreRentalRepository(client *firestore.Client) repository.RentalRepository {
	return &firestoreRentalRepository{
		client: client,
	}
}

func (r *firestoreRentalRepository) Create(ctx context.Context, rental *entity.Rental) error {
	if rental.ID == "" {
		rental.ID = r.client.Collection("rentals").NewDoc().ID
	}

	now := time.Now()
	rental.CreatedAt = now
	rental.UpdatedAt = now

	_, err := r.client.Collection("rentals").Doc(rental.ID).Set(ctx, rental)
	if err != nil {
		return errors.Internal("Failed to create rental request", err)
	}

	return nil
}

func (r *firestoreRentalRepository) GetByID(ctx context.Context, id string) (*entity.Rental, error) {
	doc, err := r.client.Collection("rentals").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Rental request", err)
		}
		return nil, errors.Internal("Failed to get rental request", err)
	}

	var rental entity.Rental
	if err := doc.DataTo(&rental); err != nil {
		return nil, errors.Internal("Failed to parse rental data", err)
	}

	return &rental, nil
}

func (r *firestoreRentalRepository) ListByTenant(ctx context.Context, tenantID string) ([]*entity.Rental, error) {
	return r.listByField(ctx, "tenantId", tenantID)
}

func (r *firestoreRentalRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Rental, error) {
	return r.listByField(ctx, "ownerId", ownerID)
}

func (r *firestoreRentalRepository) listByField(ctx context.Context, field, value string) ([]*entity.Rental, error) {
	query := r.client.Collection("rentals").
		Where(field, "==", value).
		OrderBy("createdAt", firestore.Desc)

	iter := query.Documents(ctx)
	var rentals []*entity.Rental

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate rental requests", err)
		}

		var rental entity.Rental
		if err := doc.DataTo(&rental); err != nil {
			return nil, errors.Internal("Failed to parse rental data", err)
		}
		rentals = append(rentals, &rental)
	}

	return rentals, nil
}

func (r *firestoreRentalRepository) FindActive(ctx context.Context, propertyID, tenantID string) (*entity.Rental, error) {
	query := r.client.Collection("rentals").
		Where("propertyId", "==", propertyID).
		Where("tenantId", "==", tenantID).
		Where("status", "in", []string{
			string(entity.RentalStatusPending),
			string(entity.RentalStatusAccepted),
		}).
		Limit(1)

	iter := query.Documents(ctx)
	doc, err := iter.Next()
	if err != nil {
		if err == iterator.Done {
			return nil, errors.NotFound("Rental request", nil)
		}
		return nil, errors.Internal("Failed to query rental requests", err)
	}

	var rental entity.Rental
	if err := doc.DataTo(&rental); err != nil {
		return nil, errors.Internal("Failed to parse rental data", err)
	}

	return &rental, nil
}

// UpdateStatus writes the rental and, when the transition flips availability,
// the property document in a single Firestore transaction so a crash cannot
// leave the pair half-applied.
func (r *firestoreRentalRepository) UpdateStatus(ctx context.Context, rental *entity.Rental, effect entity.AvailabilityEffect) error {
	rental.UpdatedAt = time.Now()

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		rentalRef := r.client.Collection("rentals").Doc(rental.ID)
		if err := tx.Set(rentalRef, rental); err != nil {
			return err
		}

		if effect == entity.AvailabilityUnchanged {
			return nil
		}

		propertyRef := r.client.Collection("properties").Doc(rental.PropertyID)
		return tx.Update(propertyRef, []firestore.Update{
			{Path: "isAvailable", Value: effect == entity.AvailabilityRelease},
			{Path: "updatedAt", Value: time.Now()},
		})
	})
	if err != nil {
		return errors.Internal("Failed to update rental status", err)
	}

	return nil
}
