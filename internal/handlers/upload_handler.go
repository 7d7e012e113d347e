package handlers

import (
	"movie-catalog/internal/services"
	"movie-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type UploadHandler struct {
	storage services.TrailerStorage
	logger  *logrus.Logger
}

// NewUploadHandler builds the upload handler. storage may be nil, in which
// case uploads answer 503.
func NewUploadHandler(storage services.TrailerStorage, logger *logrus.Logger) *UploadHandler {
	return &UploadHandler{
		storage: storage,
		logger:  logger,
	}
}

// GetTrailerPresignedURL godoc
// @Summary Get presigned URL for a trailer upload
// @Description Generate a presigned PUT URL; store the returned public_url as the movie trailer
// @Tags uploads
// @Produce json
// @Param filename query string true "Filename"
// @Success 200 {object} map[string]string
// @Failure 400 {string} string "filename is required"
// @Failure 503 {string} string "Trailer storage is not configured"
// @Router /uploads/trailers/presign [get]
func (h *UploadHandler) GetTrailerPresignedURL(c *fiber.Ctx) error {
	if h.storage == nil {
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, "Trailer storage is not configured")
	}

	filename := c.Query("filename")
	if filename == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "filename is required")
	}

	presignedURL, publicURL, err := h.storage.GeneratePresignedURL(c.Context(), filename)
	if err != nil {
		h.logger.WithError(err).Error("Failed to generate presigned URL")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to generate presigned URL")
	}

	return utils.JSONResponse(c, fiber.StatusOK, fiber.Map{
		"presigned_url": presignedURL,
		"public_url":    publicURL,
	})
}
