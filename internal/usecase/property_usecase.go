package usecase

import (
	"context"

	"rentnest/internal/domain/entity"
	"rentnest/internal/domain/repository"
	"rentnest/pkg/errors"
)

type PropertyUseCase struct {
	propertyRepo repository.PropertyRepository
	userRepo     repository.UserRepository
}

func NewPropertyUseCase(propertyRepo repository.PropertyRepository, userRepo repository.UserRepository) *PropertyUseCase {
	return &PropertyUseCase{
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
	}
}

type CreatePropertyInput struct {
	Title            string
	Description      string
	Address          string
	Images           []string
	Price            float64
	PricingFrequency entity.PricingFrequency
	AllowBargaining  bool
}

// UpdatePropertyInput merges non-empty values over the stored document.
// AllowBargaining is a pointer so a caller-supplied false is distinguishable
// from an omitted field.
type UpdatePropertyInput struct {
	Title            string
	Description      string
	Address          string
	Images           []string
	Price            float64
	PricingFrequency entity.PricingFrequency
	Status           entity.PropertyStatus
	AllowBargaining  *bool
}

// PropertyResponse is a property with its owner populated.
type PropertyResponse struct {
	*entity.Property
	Owner *entity.UserSummary `json:"owner,omitempty"`
}

func hasImage(images []string) bool {
	return len(images) > 0 && images[0] != ""
}

func (uc *PropertyUseCase) Create(ctx context.Context, ownerID string, input CreatePropertyInput) (*PropertyResponse, error) {
	if !hasImage(input.Images) {
		return nil, errors.BadRequest("Please add at least one image URL", nil)
	}

	frequency := input.PricingFrequency
	if frequency == "" {
		frequency = entity.PricingMonthly
	}
	if !frequency.Valid() {
		return nil, errors.BadRequest("Invalid pricing frequency", nil)
	}

	property := &entity.Property{
		OwnerID:          ownerID,
		Title:            input.Title,
		Description:      input.Description,
		Address:          input.Address,
		Images:           input.Images,
		Price:            input.Price,
		PricingFrequency: frequency,
		AllowBargaining:  input.AllowBargaining,
		Status:           entity.PropertyStatusActive,
		IsAvailable:      true,
	}

	if err := uc.propertyRepo.Create(ctx, property); err != nil {
		return nil, err
	}

	return uc.populate(ctx, property)
}

func (uc *PropertyUseCase) Update(ctx context.Context, id, callerID string, input UpdatePropertyInput) (*PropertyResponse, error) {
	property, err := uc.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if property.OwnerID != callerID {
		return nil, errors.Unauthorized("Not authorized", nil)
	}
	if property.Status == entity.PropertyStatusDeleted {
		return nil, errors.BadRequest("Cannot update a deleted property", nil)
	}

	if input.Title != "" {
		property.Title = input.Title
	}
	if input.Description != "" {
		property.Description = input.Description
	}
	if input.Address != "" {
		property.Address = input.Address
	}
	if hasImage(input.Images) {
		property.Images = input.Images
	}
	if input.Price > 0 {
		property.Price = input.Price
	}
	if input.PricingFrequency != "" {
		if !input.PricingFrequency.Valid() {
			return nil, errors.BadRequest("Invalid pricing frequency", nil)
		}
		property.PricingFrequency = input.PricingFrequency
	}
	if input.Status != "" {
		if !input.Status.Valid() {
			return nil, errors.BadRequest("Invalid property status", nil)
		}
		property.Status = input.Status
	}
	if input.AllowBargaining != nil {
		property.AllowBargaining = *input.AllowBargaining
	}

	if err := uc.propertyRepo.Update(ctx, property); err != nil {
		return nil, err
	}

	return uc.populate(ctx, property)
}

// Delete is a soft status transition; the document stays behind.
func (uc *PropertyUseCase) Delete(ctx context.Context, id, callerID string) error {
	property, err := uc.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if property.OwnerID != callerID {
		return errors.Unauthorized("Not authorized", nil)
	}
	if property.Status == entity.PropertyStatusDeleted {
		return errors.BadRequest("Property already deleted", nil)
	}

	property.Status = entity.PropertyStatusDeleted
	return uc.propertyRepo.Update(ctx, property)
}

func (uc *PropertyUseCase) GetByID(ctx context.Context, id string) (*PropertyResponse, error) {
	property, err := uc.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if property.Status == entity.PropertyStatusDeleted {
		return nil, errors.NotFound("Property", nil)
	}

	return uc.populate(ctx, property)
}

func (uc *PropertyUseCase) List(ctx context.Context, sortBy string) ([]*PropertyResponse, error) {
	sort := repository.PropertySortRecent
	switch sortBy {
	case string(repository.PropertySortPriceAsc):
		sort = repository.PropertySortPriceAsc
	case string(repository.PropertySortPriceDesc):
		sort = repository.PropertySortPriceDesc
	}

	properties, err := uc.propertyRepo.List(ctx, sort)
	if err != nil {
		return nil, err
	}

	return uc.populateAll(ctx, properties)
}

func (uc *PropertyUseCase) ListMine(ctx context.Context, ownerID string) ([]*PropertyResponse, error) {
	properties, err := uc.propertyRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return uc.populateAll(ctx, properties)
}

func (uc *PropertyUseCase) populate(ctx context.Context, property *entity.Property) (*PropertyResponse, error) {
	resp := &PropertyResponse{Property: property}

	owner, err := uc.userRepo.GetByID(ctx, property.OwnerID)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return resp, nil
		}
		return nil, err
	}
	resp.Owner = owner.Summary()

	return resp, nil
}

func (uc *PropertyUseCase) populateAll(ctx context.Context, properties []*entity.Property) ([]*PropertyResponse, error) {
	owners := make(map[string]*entity.UserSummary)
	responses := make([]*PropertyResponse, 0, len(properties))

	for _, property := range properties {
		summary, seen := owners[property.OwnerID]
		if !seen {
			owner, err := uc.userRepo.GetByID(ctx, property.OwnerID)
			if err != nil && !errors.Is(err, "NOT_FOUND") {
				return nil, err
			}
			if owner != nil {
				summary = owner.Summary()
			}
			owners[property.OwnerID] = summary
		}
		responses = append(responses, &PropertyResponse{Property: property, Owner: summary})
	}

	return responses, nil
}
