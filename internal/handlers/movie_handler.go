package handlers

import (
	"fmt"
	"strconv"

	"movie-catalog/internal/models"
	"movie-catalog/internal/services"
	"movie-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type MovieHandler struct {
	service services.MovieService
	logger  *logrus.Logger
}

func NewMovieHandler(service services.MovieService, logger *logrus.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		logger:  logger,
	}
}

// GetAllMovies godoc
// @Summary List movies
// @Description List movies four per page, ordered by id, optionally filtered by director and genre
// @Tags movies
// @Produce json
// @Param director_id query string false "Director ID"
// @Param genre_id query string false "Genre ID"
// @Param page query int false "Page number" default(1)
// @Success 200 {array} models.Movie
// @Header 200 {integer} X-Total-Count "Movies matching the filter"
// @Failure 400 {string} string "Invalid page"
// @Failure 500 {string} string "Internal server error"
// @Router /movies/ [get]
func (h *MovieHandler) GetAllMovies(c *fiber.Ctx) error {
	ctx := c.Context()

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "page must be a positive integer")
	}

	filter := models.MovieFilter{
		DirectorID: c.Query("director_id"),
		GenreID:    c.Query("genre_id"),
		Page:       page,
	}

	movies, total, err := h.service.ListMovies(ctx, filter)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to retrieve movies")
	}

	utils.SetPaginationHeaders(c, utils.CreatePaginationMeta(page, filter.Limit(), total))
	return utils.JSONResponse(c, fiber.StatusOK, movies)
}

// GetMovieByID godoc
// @Summary Get movie by ID
// @Description Get a single movie with its director and genre expanded
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} models.Movie
// @Failure 400 {string} string "Invalid movie ID"
// @Failure 404 {string} string "Movie not found"
// @Failure 500 {string} string "Internal server error"
// @Router /movies/{id} [get]
func (h *MovieHandler) GetMovieByID(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	movie, err := h.service.GetMovieByID(ctx, id)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to get movie")
	}

	return utils.JSONResponse(c, fiber.StatusOK, movie)
}

// CreateMovie godoc
// @Summary Create a movie
// @Description Create a movie from the request body; unknown fields are rejected
// @Tags movies
// @Accept json
// @Param movie body MovieRequest true "Movie"
// @Success 201 "Created"
// @Header 201 {string} Location "/movies/{id}"
// @Failure 400 {string} string "Invalid request body"
// @Failure 409 {string} string "Duplicate movie ID"
// @Failure 500 {string} string "Internal server error"
// @Router /movies/ [post]
func (h *MovieHandler) CreateMovie(c *fiber.Ctx) error {
	ctx := c.Context()

	var req MovieRequest
	if err := decodeBody(c, &req, true); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	movie := req.toModel()
	if err := h.service.CreateMovie(ctx, movie); err != nil {
		return respondError(c, h.logger, err, "Failed to create movie")
	}

	h.logger.WithField("id", movie.ID).Debug("Movie created")
	c.Location(fmt.Sprintf("/movies/%d", movie.ID))
	return utils.EmptyResponse(c, fiber.StatusCreated)
}

// UpdateMovie godoc
// @Summary Replace a movie
// @Description Overwrite every field of a movie; fields missing from the body become null
// @Tags movies
// @Accept json
// @Param id path int true "Movie ID"
// @Param movie body MovieRequest true "Movie"
// @Success 204 "No Content"
// @Failure 400 {string} string "Invalid request"
// @Failure 404 {string} string "Movie not found"
// @Failure 500 {string} string "Internal server error"
// @Router /movies/{id} [put]
func (h *MovieHandler) UpdateMovie(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	var req MovieRequest
	if err := decodeBody(c, &req, false); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.UpdateMovie(ctx, id, req.toModel()); err != nil {
		return respondError(c, h.logger, err, "Failed to update movie")
	}

	return utils.EmptyResponse(c, fiber.StatusNoContent)
}

// DeleteMovie godoc
// @Summary Delete a movie
// @Tags movies
// @Param id path int true "Movie ID"
// @Success 204 "No Content"
// @Failure 400 {string} string "Invalid movie ID"
// @Failure 404 {string} string "Movie not found"
// @Failure 500 {string} string "Internal server error"
// @Router /movies/{id} [delete]
func (h *MovieHandler) DeleteMovie(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	if err := h.service.DeleteMovie(ctx, id); err != nil {
		return respondError(c, h.logger, err, "Failed to delete movie")
	}

	h.logger.WithField("id", id).Info("Movie deleted")
	return utils.EmptyResponse(c, fiber.StatusNoContent)
}
