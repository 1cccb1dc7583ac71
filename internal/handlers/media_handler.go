package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"portfolio-service/internal/repository"
	"portfolio-service/internal/services"
)

type MediaHandler struct {
	mediaService *services.MediaService
}

func NewMediaHandler(mediaService *services.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

// UploadMedia stores an uploaded image
// @Summary Upload an image
// @Description Upload a portfolio image (jpg, png, gif, webp or svg) and receive its metadata record including the download URL
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 201 {object} models.MediaObject "Image stored"
// @Failure 400 {object} map[string]interface{} "Bad request - missing file or unsupported format"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security AdminSession
// @Router /media [post]
func (h *MediaHandler) UploadMedia(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Missing file upload",
			"details": err.Error(),
		})
	}

	media, err := h.mediaService.UploadImage(c.Context(), fileHeader)
	if errors.Is(err, services.ErrUnsupportedFormat) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Unsupported image format",
			"details": err.Error(),
		})
	}
	if err != nil {
		log.Printf("Error uploading media: filename=%s, Error=%v", fileHeader.Filename, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   true,
			"message": "Failed to upload image",
			"details": err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(media)
}

// DownloadMedia streams a stored image
// @Summary Download an image
// @Description Stream a stored image by its canonical id
// @Tags media
// @Produce octet-stream
// @Param id path string true "Media id"
// @Success 200 {file} file "Image bytes"
// @Failure 404 {object} map[string]interface{} "Image not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /media/{id}/download [get]
func (h *MediaHandler) DownloadMedia(c *fiber.Ctx) error {
	identifier := c.Params("id")

	stream, media, err := h.mediaService.DownloadImage(c.Context(), identifier)
	if errors.Is(err, repository.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   true,
			"message": "Image not found",
			"id":      identifier,
		})
	}
	if err != nil {
		log.Printf("Error downloading media: ID=%s, Error=%v", identifier, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   true,
			"message": "Failed to fetch image",
			"details": err.Error(),
		})
	}

	c.Set(fiber.HeaderContentType, media.ContentType)
	return c.SendStream(stream)
}
