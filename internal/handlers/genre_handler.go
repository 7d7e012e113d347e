package handlers

import (
	"fmt"

	"movie-catalog/internal/services"
	"movie-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type GenreHandler struct {
	service services.GenreService
	logger  *logrus.Logger
}

func NewGenreHandler(service services.GenreService, logger *logrus.Logger) *GenreHandler {
	return &GenreHandler{
		service: service,
		logger:  logger,
	}
}

// GetAllGenres godoc
// @Summary List genres
// @Tags genres
// @Produce json
// @Success 200 {array} models.Genre
// @Failure 500 {string} string "Internal server error"
// @Router /genres/ [get]
func (h *GenreHandler) GetAllGenres(c *fiber.Ctx) error {
	genres, err := h.service.ListGenres(c.Context())
	if err != nil {
		return respondError(c, h.logger, err, "Failed to retrieve genres")
	}
	return utils.JSONResponse(c, fiber.StatusOK, genres)
}

// GetGenreByID godoc
// @Summary Get genre by ID
// @Tags genres
// @Produce json
// @Param id path int true "Genre ID"
// @Success 200 {object} models.Genre
// @Failure 400 {string} string "Invalid genre ID"
// @Failure 404 {string} string "Genre not found"
// @Failure 500 {string} string "Internal server error"
// @Router /genres/{id} [get]
func (h *GenreHandler) GetGenreByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid genre ID")
	}

	genre, err := h.service.GetGenreByID(c.Context(), id)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to get genre")
	}
	return utils.JSONResponse(c, fiber.StatusOK, genre)
}

// CreateGenre godoc
// @Summary Create a genre
// @Tags genres
// @Accept json
// @Param genre body NamedRequest true "Genre"
// @Success 201 "Created"
// @Header 201 {string} Location "/genres/{id}"
// @Failure 400 {string} string "Invalid request body"
// @Failure 409 {string} string "Duplicate genre ID"
// @Failure 500 {string} string "Internal server error"
// @Router /genres/ [post]
func (h *GenreHandler) CreateGenre(c *fiber.Ctx) error {
	var req NamedRequest
	if err := decodeBody(c, &req, true); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	genre := req.genre()
	if err := h.service.CreateGenre(c.Context(), genre); err != nil {
		return respondError(c, h.logger, err, "Failed to create genre")
	}

	c.Location(fmt.Sprintf("/genres/%d", genre.ID))
	return utils.EmptyResponse(c, fiber.StatusCreated)
}

// UpdateGenre godoc
// @Summary Replace a genre
// @Tags genres
// @Accept json
// @Param id path int true "Genre ID"
// @Param genre body NamedRequest true "Genre"
// @Success 204 "No Content"
// @Failure 400 {string} string "Invalid request"
// @Failure 404 {string} string "Genre not found"
// @Failure 500 {string} string "Internal server error"
// @Router /genres/{id} [put]
func (h *GenreHandler) UpdateGenre(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid genre ID")
	}

	var req NamedRequest
	if err := decodeBody(c, &req, false); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.UpdateGenre(c.Context(), id, req.genre()); err != nil {
		return respondError(c, h.logger, err, "Failed to update genre")
	}
	return utils.EmptyResponse(c, fiber.StatusNoContent)
}

// DeleteGenre godoc
// @Summary Delete a genre and its movies
// @Tags genres
// @Param id path int true "Genre ID"
// @Success 204 "No Content"
// @Failure 400 {string} string "Invalid genre ID"
// @Failure 404 {string} string "Genre not found"
// @Failure 500 {string} string "Internal server error"
// @Router /genres/{id} [delete]
func (h *GenreHandler) DeleteGenre(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid genre ID")
	}

	removed, err := h.service.DeleteGenre(c.Context(), id)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to delete genre")
	}

	h.logger.WithFields(logrus.Fields{
		"id":             id,
		"movies_removed": removed,
	}).Info("Genre deleted")
	return utils.EmptyResponse(c, fiber.StatusNoContent)
}
