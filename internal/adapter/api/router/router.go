package router

import (
	"github.com/labstack/echo/v4"

	"rentnest/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, ownerMiddleware *middleware.OwnerMiddleware) {
	SetupAuthRouter(e)
	SetupUserRouter(e, authMiddleware)
	SetupPropertyRouter(e, authMiddleware, ownerMiddleware)
	SetupRentalRouter(e, authMiddleware, ownerMiddleware)
	SetupChatRouter(e, authMiddleware)
	SetupUploadRouter(e, authMiddleware)
}
