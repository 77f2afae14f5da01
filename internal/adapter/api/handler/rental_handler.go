package handler

import (
	"github.com/labstack/echo/v4"

	"rentnest/internal/domain/entity"
	"rentnest/internal/usecase"
	"rentnest/pkg/response"
)

type RentalHandler struct {
	rentalUseCase *usecase.RentalUseCase
}

func NewRentalHandler(rentalUseCase *usecase.RentalUseCase) *RentalHandler {
	return &RentalHandler{
		rentalUseCase: rentalUseCase,
	}
}

type createRentalRequest struct {
	PropertyID string `json:"property_id" validate:"required"`
}

type updateRentalStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending accepted denied cancelled cancellationRequested"`
}

func (h *RentalHandler) CreateRentalRequest(c echo.Context) error {
	var req createRentalRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	tenantID := c.Get("uid").(string)

	rental, err := h.rentalUseCase.Create(c.Request().Context(), tenantID, req.PropertyID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, rental)
}

func (h *RentalHandler) GetMyRequests(c echo.Context) error {
	tenantID := c.Get("uid").(string)

	rentals, err := h.rentalUseCase.ListMine(c.Request().Context(), tenantID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, rentals)
}

func (h *RentalHandler) GetIncomingRequests(c echo.Context) error {
	ownerID := c.Get("uid").(string)

	rentals, err := h.rentalUseCase.ListIncoming(c.Request().Context(), ownerID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, rentals)
}

func (h *RentalHandler) UpdateRentalStatus(c echo.Context) error {
	var req updateRentalStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	callerID := c.Get("uid").(string)

	rental, err := h.rentalUseCase.UpdateStatus(c.Request().Context(), callerID, c.Param("id"), entity.RentalStatus(req.Status))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, rental)
}
