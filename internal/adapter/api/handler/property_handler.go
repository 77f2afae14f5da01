package handler

import (
	"github.com/labstack/echo/v4"

	"rentnest/internal/domain/entity"
	"rentnest/internal/usecase"
	"rentnest/pkg/response"
)

type PropertyHandler struct {
	propertyUseCase *usecase.PropertyUseCase
}

func NewPropertyHandler(propertyUseCase *usecase.PropertyUseCase) *PropertyHandler {
	return &PropertyHandler{
		propertyUseCase: propertyUseCase,
	}
}

type createPropertyRequest struct {
	Title            string   `json:"title" validate:"required"`
	Description      string   `json:"description" validate:"required"`
	Address          string   `json:"address" validate:"required"`
	Images           []string `json:"images"`
	Price            float64  `json:"price" validate:"required,gt=0"`
	PricingFrequency string   `json:"pricing_frequency" validate:"omitempty,oneof=monthly weekly quarterly yearly"`
	AllowBargaining  bool     `json:"allow_bargaining"`
}

type updatePropertyRequest struct {
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Address          string   `json:"address"`
	Images           []string `json:"images"`
	Price            float64  `json:"price" validate:"omitempty,gt=0"`
	PricingFrequency string   `json:"pricing_frequency" validate:"omitempty,oneof=monthly weekly quarterly yearly"`
	Status           string   `json:"status" validate:"omitempty,oneof=active hidden deleted"`
	AllowBargaining  *bool    `json:"allow_bargaining"`
}

func (h *PropertyHandler) CreateProperty(c echo.Context) error {
	var req createPropertyRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	ownerID := c.Get("uid").(string)

	property, err := h.propertyUseCase.Create(c.Request().Context(), ownerID, usecase.CreatePropertyInput{
		Title:            req.Title,
		Description:      req.Description,
		Address:          req.Address,
		Images:           req.Images,
		Price:            req.Price,
		PricingFrequency: entity.PricingFrequency(req.PricingFrequency),
		AllowBargaining:  req.AllowBargaining,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, property)
}

func (h *PropertyHandler) ListProperties(c echo.Context) error {
	properties, err := h.propertyUseCase.List(c.Request().Context(), c.QueryParam("sortBy"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, properties)
}

func (h *PropertyHandler) GetProperty(c echo.Context) error {
	property, err := h.propertyUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, property)
}

func (h *PropertyHandler) ListMyProperties(c echo.Context) error {
	ownerID := c.Get("uid").(string)

	properties, err := h.propertyUseCase.ListMine(c.Request().Context(), ownerID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, properties)
}

func (h *PropertyHandler) UpdateProperty(c echo.Context) error {
	var req updatePropertyRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	callerID := c.Get("uid").(string)

	property, err := h.propertyUseCase.Update(c.Request().Context(), c.Param("id"), callerID, usecase.UpdatePropertyInput{
		Title:            req.Title,
		Description:      req.Description,
		Address:          req.Address,
		Images:           req.Images,
		Price:            req.Price,
		PricingFrequency: entity.PricingFrequency(req.PricingFrequency),
		Status:           entity.PropertyStatus(req.Status),
		AllowBargaining:  req.AllowBargaining,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, property)
}

func (h *PropertyHandler) DeleteProperty(c echo.Context) error {
	callerID := c.Get("uid").(string)

	if err := h.propertyUseCase.Delete(c.Request().Context(), c.Param("id"), callerID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, echo.Map{"message": "Property deleted successfully"})
}
