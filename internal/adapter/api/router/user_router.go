package router

import (
	"github.com/labstack/echo/v4"

	"rentnest/internal/adapter/api/handler"
	"rentnest/internal/adapter/api/middleware"
)

func SetupUserRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	userHandler := handler.GetUserHandler()

	user := e.Group("/api/user")
	user.Use(authMiddleware.Authenticate)
	user.GET("/profile", userHandler.GetProfile)
	user.PUT("/profile", userHandler.UpdateProfile)
}
