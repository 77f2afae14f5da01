package router

import (
	"github.com/labstack/echo/v4"

	"rentnest/internal/adapter/api/handler"
	"rentnest/internal/adapter/api/middleware"
)

func SetupUploadRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	fileHandler := handler.GetFileHandler()

	e.POST("/api/upload", fileHandler.UploadImage, authMiddleware.Authenticate)
}
