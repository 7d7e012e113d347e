package routes

import (
	"movie-catalog/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Movies    *handlers.MovieHandler
	Directors *handlers.DirectorHandler
	Genres    *handlers.GenreHandler
	Uploads   *handlers.UploadHandler
}

func Setup(app *fiber.App, h Handlers) {
	movies := app.Group("/movies")
	{
		movies.Get("/", h.Movies.GetAllMovies)
		movies.Post("/", h.Movies.CreateMovie)
		movies.Get("/:id", h.Movies.GetMovieByID)
		movies.Put("/:id", h.Movies.UpdateMovie)
		movies.Delete("/:id", h.Movies.DeleteMovie)
	}

	directors := app.Group("/directors")
	{
		directors.Get("/", h.Directors.GetAllDirectors)
		directors.Post("/", h.Directors.CreateDirector)
		directors.Get("/:id", h.Directors.GetDirectorByID)
		directors.Put("/:id", h.Directors.UpdateDirector)
		directors.Delete("/:id", h.Directors.DeleteDirector)
	}

	genres := app.Group("/genres")
	{
		genres.Get("/", h.Genres.GetAllGenres)
		genres.Post("/", h.Genres.CreateGenre)
		genres.Get("/:id", h.Genres.GetGenreByID)
		genres.Put("/:id", h.Genres.UpdateGenre)
		genres.Delete("/:id", h.Genres.DeleteGenre)
	}

	uploads := app.Group("/uploads")
	{
		uploads.Get("/trailers/presign", h.Uploads.GetTrailerPresignedURL)
	}
}
