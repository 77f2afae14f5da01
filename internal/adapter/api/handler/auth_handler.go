package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"rentnest/internal/domain/entity"
	"rentnest/internal/usecase"
	"rentnest/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type registerSendOTPRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	UserType  string `json:"user_type" validate:"required,oneof=tenant owner"`
}

type verifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,len=6"`
}

type loginSendOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type googleAuthRequest struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	GoogleID  string `json:"google_id" validate:"required"`
	UserType  string `json:"user_type" validate:"required,oneof=tenant owner"`
}

func (h *AuthHandler) SendRegistrationOTP(c echo.Context) error {
	var req registerSendOTPRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	err := h.authUseCase.SendRegistrationOTP(c.Request().Context(), usecase.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		UserType:  entity.UserType(req.UserType),
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, echo.Map{"message": fmt.Sprintf("OTP sent to %s", req.Email)})
}

func (h *AuthHandler) VerifyRegistrationOTP(c echo.Context) error {
	var req verifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.VerifyRegistrationOTP(c.Request().Context(), req.Email, req.OTP)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, result)
}

func (h *AuthHandler) SendLoginOTP(c echo.Context) error {
	var req loginSendOTPRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.authUseCase.SendLoginOTP(c.Request().Context(), req.Email); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, echo.Map{"message": fmt.Sprintf("OTP sent to %s", req.Email)})
}

func (h *AuthHandler) VerifyLoginOTP(c echo.Context) error {
	var req verifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.VerifyLoginOTP(c.Request().Context(), req.Email, req.OTP)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

func (h *AuthHandler) GoogleAuth(c echo.Context) error {
	var req googleAuthRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.GoogleAuth(c.Request().Context(), usecase.GoogleAuthInput{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		GoogleID:  req.GoogleID,
		UserType:  entity.UserType(req.UserType),
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}
