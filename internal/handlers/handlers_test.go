package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"movie-catalog/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStorage struct {
	err error
}

func (s *stubStorage) GeneratePresignedURL(_ context.Context, filename string) (string, string, error) {
	if s.err != nil {
		return "", "", s.err
	}
	return "http://minio:9000/trailers/trailers/" + filename + "?X-Amz-Signature=abc",
		"http://localhost:9000/trailers/trailers/" + filename, nil
}

func (s *stubStorage) Owns(string) bool { return true }

func (s *stubStorage) DeleteFile(context.Context, string) error { return nil }

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func send(t *testing.T, app *fiber.App, method, target, body string) (int, string) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	resp, err := app.Test(httptest.NewRequest(method, target, reader), -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(raw)
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("movie with ID 1: %w", services.ErrNotFound), fiber.StatusNotFound},
		{fmt.Errorf("genre with ID 1: %w", services.ErrConflict), fiber.StatusConflict},
		{fmt.Errorf("movies: %w", services.ErrStorage), fiber.StatusInternalServerError},
		{errors.New("unexpected"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, statusFor(tt.err), tt.err.Error())
	}
}

func TestRespondErrorHidesStorageDetails(t *testing.T) {
	logger, hook := test.NewNullLogger()

	app := fiber.New()
	app.Get("/missing", func(c *fiber.Ctx) error {
		return respondError(c, logger, fmt.Errorf("movie with ID 9: %w", services.ErrNotFound), "Failed to get movie")
	})
	app.Get("/broken", func(c *fiber.Ctx) error {
		return respondError(c, logger, fmt.Errorf("movies: %w: database is locked", services.ErrStorage), "Failed to retrieve movies")
	})

	status, body := send(t, app, fiber.MethodGet, "/missing", "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "movie with ID 9: not found", body)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)

	status, body = send(t, app, fiber.MethodGet, "/broken", "")
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "Failed to retrieve movies", body)
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	assert.Equal(t, "/broken", hook.LastEntry().Data["path"])
	assert.Equal(t, fiber.StatusInternalServerError, hook.LastEntry().Data["status"])
}

func TestParseID(t *testing.T) {
	app := fiber.New()
	app.Get("/:id", func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return c.SendStatus(fiber.StatusBadRequest)
		}
		return c.SendString(fmt.Sprint(id))
	})

	status, body := send(t, app, fiber.MethodGet, "/12", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "12", body)

	for _, raw := range []string{"abc", "-3", "1e3", "99999999999"} {
		status, _ := send(t, app, fiber.MethodGet, "/"+raw, "")
		assert.Equal(t, fiber.StatusBadRequest, status, raw)
	}
}

func TestDecodeBody(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		strict  bool
		wantErr string
	}{
		{name: "valid", body: `{"title":"Tenet","year":2020}`, strict: true},
		{name: "unknown field lenient", body: `{"title":"Tenet","budget":1}`},
		{name: "unknown field strict", body: `{"title":"Tenet","budget":1}`, strict: true, wantErr: `unknown field "budget"`},
		{name: "empty", body: ``, wantErr: "request body must be a JSON object"},
		{name: "wrong type", body: `{"rating":"high"}`, wantErr: "invalid request body"},
		{name: "trailing data", body: `{"title":"a"}{"title":"b"}`, wantErr: "unexpected data"},
		{name: "largest id", body: `{"id":4294967295,"director_id":4294967295}`, strict: true},
		{name: "id out of range", body: `{"id":4294967296}`, strict: true, wantErr: "id must not exceed 4294967295"},
		{name: "director_id out of range", body: `{"director_id":4294967296}`, wantErr: "director_id must not exceed"},
		{name: "genre_id out of range", body: `{"genre_id":18446744073709551615}`, wantErr: "genre_id must not exceed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Post("/", func(c *fiber.Ctx) error {
				var req MovieRequest
				if err := decodeBody(c, &req, tt.strict); err != nil {
					return c.Status(fiber.StatusBadRequest).SendString(err.Error())
				}
				return c.SendStatus(fiber.StatusOK)
			})

			status, body := send(t, app, fiber.MethodPost, "/", tt.body)
			if tt.wantErr == "" {
				assert.Equal(t, fiber.StatusOK, status, body)
				return
			}
			assert.Equal(t, fiber.StatusBadRequest, status)
			assert.Contains(t, body, tt.wantErr)
		})
	}
}

func TestMovieRequestToModel(t *testing.T) {
	var req MovieRequest
	require.NoError(t, json.Unmarshal([]byte(`{"id":5,"title":"Tenet","director_id":1}`), &req))

	movie := req.toModel()
	assert.Equal(t, uint(5), movie.ID)
	assert.Equal(t, "Tenet", *movie.Title)
	assert.Equal(t, uint(1), *movie.DirectorID)
	assert.Nil(t, movie.GenreID)
	assert.Nil(t, movie.Year)
	assert.Nil(t, movie.Director)
}

func TestGetTrailerPresignedURL(t *testing.T) {
	tests := []struct {
		name       string
		storage    services.TrailerStorage
		target     string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "storage not configured",
			target:     "/presign?filename=tenet.mp4",
			wantStatus: fiber.StatusServiceUnavailable,
			wantBody:   "Trailer storage is not configured",
		},
		{
			name:       "missing filename",
			storage:    &stubStorage{},
			target:     "/presign",
			wantStatus: fiber.StatusBadRequest,
			wantBody:   "filename is required",
		},
		{
			name:       "storage failure",
			storage:    &stubStorage{err: errors.New("connection refused")},
			target:     "/presign?filename=tenet.mp4",
			wantStatus: fiber.StatusInternalServerError,
			wantBody:   "Failed to generate presigned URL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/presign", NewUploadHandler(tt.storage, quietLogger()).GetTrailerPresignedURL)

			status, body := send(t, app, fiber.MethodGet, tt.target, "")
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantBody, body)
		})
	}

	t.Run("success", func(t *testing.T) {
		app := fiber.New()
		app.Get("/presign", NewUploadHandler(&stubStorage{}, quietLogger()).GetTrailerPresignedURL)

		status, body := send(t, app, fiber.MethodGet, "/presign?filename=tenet.mp4", "")
		require.Equal(t, fiber.StatusOK, status)

		var out map[string]string
		require.NoError(t, json.Unmarshal([]byte(body), &out))
		assert.Contains(t, out["presigned_url"], "X-Amz-Signature")
		assert.Equal(t, "http://localhost:9000/trailers/trailers/tenet.mp4", out["public_url"])
	})
}
