package router

import (
	"github.com/labstack/echo/v4"

	"rentnest/internal/adapter/api/handler"
	"rentnest/internal/adapter/api/middleware"
)

func SetupRentalRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, ownerMiddleware *middleware.OwnerMiddleware) {
	rentalHandler := handler.GetRentalHandler()

	rentals := e.Group("/api/rentals")
	rentals.Use(authMiddleware.Authenticate)
	rentals.POST("", rentalHandler.CreateRentalRequest)
	rentals.GET("/my-requests", rentalHandler.GetMyRequests)
	rentals.GET("/incoming-requests", rentalHandler.GetIncomingRequests, ownerMiddleware.RequireOwner)
	rentals.PUT("/:id/status", rentalHandler.UpdateRentalStatus)
}
