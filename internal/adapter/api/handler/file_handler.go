package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"rentnest/internal/infrastructure/storage"
	"rentnest/pkg/errors"
	"rentnest/pkg/logger"
	"rentnest/pkg/response"
)

type FileHandler struct {
	storageClient *storage.CloudStorageClient
	maxFileSize   int64
}

func NewFileHandler(storageClient *storage.CloudStorageClient) *FileHandler {
	return &FileHandler{
		storageClient: storageClient,
		maxFileSize:   5 * 1024 * 1024,
	}
}

var fileHandler *FileHandler

func SetupFileHandler(storageClient *storage.CloudStorageClient) {
	fileHandler = NewFileHandler(storageClient)
}

func GetFileHandler() *FileHandler {
	return fileHandler
}

func isAllowedImageType(contentType string) bool {
	switch contentType {
	case "image/jpeg", "image/jpg", "image/png", "image/gif", "image/webp":
		return true
	}
	return false
}

// UploadImage accepts a single multipart image and returns its public URL.
func (h *FileHandler) UploadImage(c echo.Context) error {
	file, err := c.FormFile("image")
	if err != nil {
		return response.Error(c, errors.BadRequest("No file uploaded", err))
	}

	if file.Size > h.maxFileSize {
		return response.Error(c, errors.BadRequest(
			fmt.Sprintf("File size exceeds maximum allowed (%dMB)", h.maxFileSize/(1024*1024)), nil))
	}

	contentType := file.Header.Get("Content-Type")
	if !isAllowedImageType(contentType) {
		return response.Error(c, errors.BadRequest("File type not supported", nil))
	}

	src, err := file.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Failed to open uploaded file", err))
	}
	defer src.Close()

	url, err := h.storageClient.UploadImage(c.Request().Context(), src, contentType)
	if err != nil {
		logger.Error("Upload to storage failed: %v", err)
		return response.Error(c, errors.Internal("Failed to store image", err))
	}

	return response.Created(c, echo.Map{"image_url": url})
}
