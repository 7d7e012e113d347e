package utils

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// PaginationMeta represents pagination metadata
type PaginationMeta struct {
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
}

// JSONResponse sends data as the JSON body
func JSONResponse(c *fiber.Ctx, code int, data interface{}) error {
	return c.Status(code).JSON(data)
}

// EmptyResponse sends a status code without a body
func EmptyResponse(c *fiber.Ctx, code int) error {
	c.Status(code)
	return nil
}

// ErrorResponse sends a plain-text error message
func ErrorResponse(c *fiber.Ctx, code int, message string) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(code).SendString(message)
}

// CreatePaginationMeta creates pagination metadata
func CreatePaginationMeta(page, limit int, total int64) PaginationMeta {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	if totalPages == 0 {
		totalPages = 1
	}

	return PaginationMeta{
		Page:        page,
		Limit:       limit,
		Total:       total,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}
}

// SetPaginationHeaders exposes pagination metadata without wrapping the body
func SetPaginationHeaders(c *fiber.Ctx, meta PaginationMeta) {
	c.Set("X-Total-Count", strconv.FormatInt(meta.Total, 10))
	c.Set("X-Page", strconv.Itoa(meta.Page))
	c.Set("X-Page-Size", strconv.Itoa(meta.Limit))
	c.Set("X-Total-Pages", strconv.Itoa(meta.TotalPages))
}
