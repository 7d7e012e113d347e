package services

import (
	"context"

	"movie-catalog/internal/models"

	"github.com/sirupsen/logrus"
)

// trailerCleaner removes stored trailer objects of movies that no longer
// reference them. Failures are logged and never returned.
type trailerCleaner struct {
	storage TrailerStorage
	logger  *logrus.Logger
}

func newTrailerCleaner(storage TrailerStorage, logger *logrus.Logger) *trailerCleaner {
	return &trailerCleaner{storage: storage, logger: logger}
}

func (c *trailerCleaner) remove(ctx context.Context, movies ...*models.Movie) {
	if c.storage == nil {
		return
	}

	for _, movie := range movies {
		if movie == nil || movie.Trailer == nil || !c.storage.Owns(*movie.Trailer) {
			continue
		}
		if err := c.storage.DeleteFile(ctx, *movie.Trailer); err != nil {
			c.logger.WithError(err).WithFields(logrus.Fields{
				"movie_id": movie.ID,
				"trailer":  *movie.Trailer,
			}).Warn("Failed to delete trailer from storage")
		}
	}
}

func (c *trailerCleaner) removeAll(ctx context.Context, movies []models.Movie) {
	for i := range movies {
		c.remove(ctx, &movies[i])
	}
}
