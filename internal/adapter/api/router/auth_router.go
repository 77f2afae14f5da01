package router

import (
	"github.com/labstack/echo/v4"

	"rentnest/internal/adapter/api/handler"
)

// SetupAuthRouter registers the public two-step OTP challenges and the
// Google side channel.
func SetupAuthRouter(e *echo.Echo) {
	authHandler := handler.GetAuthHandler()

	auth := e.Group("/api/auth")
	auth.POST("/register-send-otp", authHandler.SendRegistrationOTP)
	auth.POST("/register-verify-otp", authHandler.VerifyRegistrationOTP)
	auth.POST("/login-send-otp", authHandler.SendLoginOTP)
	auth.POST("/login-verify-otp", authHandler.VerifyLoginOTP)
	auth.POST("/google-auth", authHandler.GoogleAuth)
}
