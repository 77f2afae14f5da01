package usecase

import (
	"context"

	"rentnest/internal/domain/entity"
	"rentnest/internal/domain/repository"
	"rentnest/pkg/errors"
)

type RentalUseCase struct {
	rentalRepo   repository.RentalRepository
	propertyRepo repository.PropertyRepository
	userRepo     repository.UserRepository
}

func NewRentalUseCase(
	rentalRepo repository.RentalRepository,
	propertyRepo repository.PropertyRepository,
	userRepo repository.UserRepository,
) *RentalUseCase {
	return &RentalUseCase{
		rentalRepo:   rentalRepo,
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
	}
}

// RentalResponse is a rental with its property and participant summaries
// populated.
type RentalResponse struct {
	*entity.Rental
	Property *entity.PropertySummary `json:"property,omitempty"`
	Tenant   *entity.UserSummary     `json:"tenant,omitempty"`
	Owner    *entity.UserSummary     `json:"owner,omitempty"`
}

// Create opens a pending request. The owner reference is copied from the
// property at this moment and never refreshed.
func (uc *RentalUseCase) Create(ctx context.Context, tenantID, propertyID string) (*RentalResponse, error) {
	property, err := uc.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if property.Status == entity.PropertyStatusDeleted {
		return nil, errors.NotFound("Property", nil)
	}
	if !property.IsAvailable {
		return nil, errors.BadRequest("Property is not available", nil)
	}

	existing, err := uc.rentalRepo.FindActive(ctx, propertyID, tenantID)
	if err != nil && !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}
	if existing != nil {
		return nil, errors.BadRequest("You already have an active request for this property", nil)
	}

	rental := &entity.Rental{
		PropertyID: propertyID,
		TenantID:   tenantID,
		OwnerID:    property.OwnerID,
		Status:     entity.RentalStatusPending,
	}

	if err := uc.rentalRepo.Create(ctx, rental); err != nil {
		return nil, err
	}

	return uc.populate(ctx, rental)
}

func (uc *RentalUseCase) ListMine(ctx context.Context, tenantID string) ([]*RentalResponse, error) {
	rentals, err := uc.rentalRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return uc.populateAll(ctx, rentals)
}

func (uc *RentalUseCase) ListIncoming(ctx context.Context, ownerID string) ([]*RentalResponse, error) {
	rentals, err := uc.rentalRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return uc.populateAll(ctx, rentals)
}

// UpdateStatus drives the request lifecycle. Only edges in the transition
// table are accepted; everything else leaves the rental untouched.
func (uc *RentalUseCase) UpdateStatus(ctx context.Context, callerID, rentalID string, to entity.RentalStatus) (*RentalResponse, error) {
	if !to.Valid() {
		return nil, errors.BadRequest("Invalid status", nil)
	}

	rental, err := uc.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}

	if !rental.IsParticipant(callerID) {
		return nil, errors.Unauthorized("Not authorized", nil)
	}

	effect, ok := rental.Transition(callerID, to)
	if !ok {
		return nil, errors.BadRequest("Invalid status transition", nil)
	}

	rental.Status = to
	if err := uc.rentalRepo.UpdateStatus(ctx, rental, effect); err != nil {
		return nil, err
	}

	return uc.populate(ctx, rental)
}

func (uc *RentalUseCase) populate(ctx context.Context, rental *entity.Rental) (*RentalResponse, error) {
	resp := &RentalResponse{Rental: rental}

	property, err := uc.propertyRepo.GetByID(ctx, rental.PropertyID)
	if err != nil && !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}
	if property != nil {
		resp.Property = property.Summary()
	}

	tenant, err := uc.userRepo.GetByID(ctx, rental.TenantID)
	if err != nil && !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}
	if tenant != nil {
		resp.Tenant = tenant.Summary()
	}

	owner, err := uc.userRepo.GetByID(ctx, rental.OwnerID)
	if err != nil && !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}
	if owner != nil {
		resp.Owner = owner.Summary()
	}

	return resp, nil
}

func (uc *RentalUseCase) populateAll(ctx context.Context, rentals []*entity.Rental) ([]*RentalResponse, error) {
	responses := make([]*RentalResponse, 0, len(rentals))
	for _, rental := range rentals {
		resp, err := uc.populate(ctx, rental)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}
