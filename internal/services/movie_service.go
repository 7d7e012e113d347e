package services

import (
	"context"

	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"

	"github.com/sirupsen/logrus"
)

type MovieService interface {
	ListMovies(ctx context.Context, filter models.MovieFilter) ([]models.Movie, int64, error)
	GetMovieByID(ctx context.Context, id uint) (*models.Movie, error)
	CreateMovie(ctx context.Context, movie *models.Movie) error
	// UpdateMovie replaces every field of the movie with the given values.
	UpdateMovie(ctx context.Context, id uint, movie *models.Movie) error
	DeleteMovie(ctx context.Context, id uint) error
}

type movieService struct {
	repo     repository.MovieRepository
	trailers *trailerCleaner
}

// NewMovieService builds the movie service. storage may be nil when trailer
// uploads are not configured.
func NewMovieService(repo repository.MovieRepository, storage TrailerStorage, logger *logrus.Logger) MovieService {
	return &movieService{
		repo:     repo,
		trailers: newTrailerCleaner(storage, logger),
	}
}

func (s *movieService) ListMovies(ctx context.Context, filter models.MovieFilter) ([]models.Movie, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}

	movies, total, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, classify(err, "movies", 0)
	}
	return movies, total, nil
}

func (s *movieService) GetMovieByID(ctx context.Context, id uint) (*models.Movie, error) {
	movie, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, classify(err, "movie", id)
	}
	return movie, nil
}

func (s *movieService) CreateMovie(ctx context.Context, movie *models.Movie) error {
	return classify(s.repo.Create(ctx, movie), "movie", movie.ID)
}

func (s *movieService) UpdateMovie(ctx context.Context, id uint, movie *models.Movie) error {
	movie.ID = id

	previous, err := s.repo.Update(ctx, movie)
	if err != nil {
		return classify(err, "movie", id)
	}

	if !sameTrailer(previous.Trailer, movie.Trailer) {
		s.trailers.remove(ctx, previous)
	}
	return nil
}

func (s *movieService) DeleteMovie(ctx context.Context, id uint) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return classify(err, "movie", id)
	}

	s.trailers.remove(ctx, deleted)
	return nil
}

func sameTrailer(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
