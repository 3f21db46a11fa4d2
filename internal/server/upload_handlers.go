package server

import (
	"path/filepath"
	"strings"

	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/models"

	"github.com/gofiber/fiber/v2"
)

const maxUploadBytes = 10 << 20 // 10 MiB

// UploadPhoto accepts a multipart photo upload and returns its public URL.
func (s *Server) UploadPhoto(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("A file upload is required"))
	}
	if fileHeader.Size > maxUploadBytes {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("File exceeds the 10 MB limit"))
	}

	switch strings.ToLower(filepath.Ext(fileHeader.Filename)) {
	case ".jpg", ".jpeg", ".png", ".webp", ".gif":
	default:
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Only jpg, png, webp and gif uploads are allowed"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	defer file.Close()

	path, err := s.store.Upload(c.UserContext(), fileHeader.Filename, file)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"path": path,
		"url":  s.store.PublicURL(path),
	})
}

// ServePhoto streams a stored photo by its storage path. The local backend's
// default public URLs resolve here; S3 setups normally serve straight from
// the bucket via STORAGE_URL instead.
func (s *Server) ServePhoto(c *fiber.Ctx) error {
	storagePath := c.Params("*")
	if storagePath == "" || strings.Contains(storagePath, "..") {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid photo path"))
	}

	file, err := s.store.Download(c.UserContext(), storagePath)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Photo", storagePath))
	}
	defer file.Close()

	c.Type(strings.TrimPrefix(filepath.Ext(storagePath), "."))
	return c.SendStream(file)
}
