package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"movie-catalog/internal/models"

	"github.com/gofiber/fiber/v2"
)

// MovieRequest is the body accepted by POST and PUT /movies. Absent fields
// decode to nil and are stored as NULL.
type MovieRequest struct {
	ID          *uint    `json:"id,omitempty" example:"1"`
	Title       *string  `json:"title" example:"Tenet"`
	Description *string  `json:"description" example:"Armed with only one word, Tenet..."`
	Trailer     *string  `json:"trailer" example:"https://www.youtube.com/watch?v=LdOM0x0XDMo"`
	Year        *int     `json:"year" example:"2020"`
	Rating      *float64 `json:"rating" example:"7.8"`
	GenreID     *uint    `json:"genre_id" example:"2"`
	DirectorID  *uint    `json:"director_id" example:"1"`
}

func (r *MovieRequest) toModel() *models.Movie {
	movie := &models.Movie{
		Title:       r.Title,
		Description: r.Description,
		Trailer:     r.Trailer,
		Year:        r.Year,
		Rating:      r.Rating,
		GenreID:     r.GenreID,
		DirectorID:  r.DirectorID,
	}
	if r.ID != nil {
		movie.ID = *r.ID
	}
	return movie
}

func (r *MovieRequest) validate() error {
	if err := checkID("id", r.ID); err != nil {
		return err
	}
	if err := checkID("genre_id", r.GenreID); err != nil {
		return err
	}
	return checkID("director_id", r.DirectorID)
}

// NamedRequest is the body accepted by the director and genre endpoints.
type NamedRequest struct {
	ID   *uint   `json:"id,omitempty" example:"1"`
	Name *string `json:"name" example:"Christopher Nolan"`
}

func (r *NamedRequest) director() *models.Director {
	director := &models.Director{Name: r.Name}
	if r.ID != nil {
		director.ID = *r.ID
	}
	return director
}

func (r *NamedRequest) genre() *models.Genre {
	genre := &models.Genre{Name: r.Name}
	if r.ID != nil {
		genre.ID = *r.ID
	}
	return genre
}

func (r *NamedRequest) validate() error {
	return checkID("id", r.ID)
}

// maxID is the largest id a path or filter parameter can address.
const maxID = math.MaxUint32

func checkID(field string, id *uint) error {
	if id != nil && uint64(*id) > maxID {
		return fmt.Errorf("invalid request body: %s must not exceed %d", field, uint64(maxID))
	}
	return nil
}

// decodeBody decodes the JSON request body into dst. With strict set, fields
// that do not map to a column are rejected instead of being dropped.
func decodeBody(c *fiber.Ctx, dst interface{}, strict bool) error {
	dec := json.NewDecoder(bytes.NewReader(c.Body()))
	if strict {
		dec.DisallowUnknownFields()
	}

	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body must be a JSON object")
		}
		return fmt.Errorf("invalid request body: %w", err)
	}
	if dec.More() {
		return errors.New("invalid request body: unexpected data after JSON object")
	}
	if v, ok := dst.(interface{ validate() error }); ok {
		return v.validate()
	}
	return nil
}
