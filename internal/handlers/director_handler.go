package handlers

import (
	"fmt"

	"movie-catalog/internal/services"
	"movie-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type DirectorHandler struct {
	service services.DirectorService
	logger  *logrus.Logger
}

func NewDirectorHandler(service services.DirectorService, logger *logrus.Logger) *DirectorHandler {
	return &DirectorHandler{
		service: service,
		logger:  logger,
	}
}

// GetAllDirectors godoc
// @Summary List directors
// @Tags directors
// @Produce json
// @Success 200 {array} models.Director
// @Failure 500 {string} string "Internal server error"
// @Router /directors/ [get]
func (h *DirectorHandler) GetAllDirectors(c *fiber.Ctx) error {
	directors, err := h.service.ListDirectors(c.Context())
	if err != nil {
		return respondError(c, h.logger, err, "Failed to retrieve directors")
	}
	return utils.JSONResponse(c, fiber.StatusOK, directors)
}

// GetDirectorByID godoc
// @Summary Get director by ID
// @Tags directors
// @Produce json
// @Param id path int true "Director ID"
// @Success 200 {object} models.Director
// @Failure 400 {string} string "Invalid director ID"
// @Failure 404 {string} string "Director not found"
// @Failure 500 {string} string "Internal server error"
// @Router /directors/{id} [get]
func (h *DirectorHandler) GetDirectorByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid director ID")
	}

	director, err := h.service.GetDirectorByID(c.Context(), id)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to get director")
	}
	return utils.JSONResponse(c, fiber.StatusOK, director)
}

// CreateDirector godoc
// @Summary Create a director
// @Tags directors
// @Accept json
// @Param director body NamedRequest true "Director"
// @Success 201 "Created"
// @Header 201 {string} Location "/directors/{id}"
// @Failure 400 {string} string "Invalid request body"
// @Failure 409 {string} string "Duplicate director ID"
// @Failure 500 {string} string "Internal server error"
// @Router /directors/ [post]
func (h *DirectorHandler) CreateDirector(c *fiber.Ctx) error {
	var req NamedRequest
	if err := decodeBody(c, &req, true); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	director := req.director()
	if err := h.service.CreateDirector(c.Context(), director); err != nil {
		return respondError(c, h.logger, err, "Failed to create director")
	}

	c.Location(fmt.Sprintf("/directors/%d", director.ID))
	return utils.EmptyResponse(c, fiber.StatusCreated)
}

// UpdateDirector godoc
// @Summary Replace a director
// @Tags directors
// @Accept json
// @Param id path int true "Director ID"
// @Param director body NamedRequest true "Director"
// @Success 204 "No Content"
// @Failure 400 {string} string "Invalid request"
// @Failure 404 {string} string "Director not found"
// @Failure 500 {string} string "Internal server error"
// @Router /directors/{id} [put]
func (h *DirectorHandler) UpdateDirector(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid director ID")
	}

	var req NamedRequest
	if err := decodeBody(c, &req, false); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.UpdateDirector(c.Context(), id, req.director()); err != nil {
		return respondError(c, h.logger, err, "Failed to update director")
	}
	return utils.EmptyResponse(c, fiber.StatusNoContent)
}

// DeleteDirector godoc
// @Summary Delete a director and its movies
// @Tags directors
// @Param id path int true "Director ID"
// @Success 204 "No Content"
// @Failure 400 {string} string "Invalid director ID"
// @Failure 404 {string} string "Director not found"
// @Failure 500 {string} string "Internal server error"
// @Router /directors/{id} [delete]
func (h *DirectorHandler) DeleteDirector(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid director ID")
	}

	removed, err := h.service.DeleteDirector(c.Context(), id)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to delete director")
	}

	h.logger.WithFields(logrus.Fields{
		"id":             id,
		"movies_removed": removed,
	}).Info("Director deleted")
	return utils.EmptyResponse(c, fiber.StatusNoContent)
}
