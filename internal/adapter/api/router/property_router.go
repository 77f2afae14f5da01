package router

import (
	"github.com/labstack/echo/v4"

	"rentnest/internal/adapter/api/handler"
	"rentnest/internal/adapter/api/middleware"
)

func SetupPropertyRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, ownerMiddleware *middleware.OwnerMiddleware) {
	propertyHandler := handler.GetPropertyHandler()

	// Public listing reads.
	e.GET("/api/properties", propertyHandler.ListProperties)
	e.GET("/api/properties/:id", propertyHandler.GetProperty)

	owned := e.Group("/api/properties")
	owned.Use(authMiddleware.Authenticate)
	owned.Use(ownerMiddleware.RequireOwner)
	owned.POST("", propertyHandler.CreateProperty)
	owned.GET("/my-properties", propertyHandler.ListMyProperties)
	owned.PUT("/:id", propertyHandler.UpdateProperty)
	owned.DELETE("/:id", propertyHandler.DeleteProperty)
}
