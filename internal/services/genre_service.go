package services

import (
	"context"

	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"

	"github.com/sirupsen/logrus"
)

type GenreService interface {
	ListGenres(ctx context.Context) ([]models.Genre, error)
	GetGenreByID(ctx context.Context, id uint) (*models.Genre, error)
	CreateGenre(ctx context.Context, genre *models.Genre) error
	UpdateGenre(ctx context.Context, id uint, genre *models.Genre) error
	// DeleteGenre removes the genre and every movie that references it.
	DeleteGenre(ctx context.Context, id uint) (int, error)
}

type genreService struct {
	repo     repository.GenreRepository
	trailers *trailerCleaner
}

func NewGenreService(repo repository.GenreRepository, storage TrailerStorage, logger *logrus.Logger) GenreService {
	return &genreService{
		repo:     repo,
		trailers: newTrailerCleaner(storage, logger),
	}
}

func (s *genreService) ListGenres(ctx context.Context) ([]models.Genre, error) {
	genres, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, classify(err, "genres", 0)
	}
	return genres, nil
}

func (s *genreService) GetGenreByID(ctx context.Context, id uint) (*models.Genre, error) {
	genre, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, classify(err, "genre", id)
	}
	return genre, nil
}

func (s *genreService) CreateGenre(ctx context.Context, genre *models.Genre) error {
	return classify(s.repo.Create(ctx, genre), "genre", genre.ID)
}

func (s *genreService) UpdateGenre(ctx context.Context, id uint, genre *models.Genre) error {
	genre.ID = id
	return classify(s.repo.Update(ctx, genre), "genre", id)
}

func (s *genreService) DeleteGenre(ctx context.Context, id uint) (int, error) {
	movies, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, classify(err, "genre", id)
	}

	s.trailers.removeAll(ctx, movies)
	return len(movies), nil
}
