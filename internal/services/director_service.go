package services

import (
	"context"

	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"

	"github.com/sirupsen/logrus"
)

type DirectorService interface {
	ListDirectors(ctx context.Context) ([]models.Director, error)
	GetDirectorByID(ctx context.Context, id uint) (*models.Director, error)
	CreateDirector(ctx context.Context, director *models.Director) error
	UpdateDirector(ctx context.Context, id uint, director *models.Director) error
	// DeleteDirector removes the director and every movie that references it.
	DeleteDirector(ctx context.Context, id uint) (int, error)
}

type directorService struct {
	repo     repository.DirectorRepository
	trailers *trailerCleaner
}

func NewDirectorService(repo repository.DirectorRepository, storage TrailerStorage, logger *logrus.Logger) DirectorService {
	return &directorService{
		repo:     repo,
		trailers: newTrailerCleaner(storage, logger),
	}
}

func (s *directorService) ListDirectors(ctx context.Context) ([]models.Director, error) {
	directors, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, classify(err, "directors", 0)
	}
	return directors, nil
}

func (s *directorService) GetDirectorByID(ctx context.Context, id uint) (*models.Director, error) {
	director, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, classify(err, "director", id)
	}
	return director, nil
}

func (s *directorService) CreateDirector(ctx context.Context, director *models.Director) error {
	return classify(s.repo.Create(ctx, director), "director", director.ID)
}

func (s *directorService) UpdateDirector(ctx context.Context, id uint, director *models.Director) error {
	director.ID = id
	return classify(s.repo.Update(ctx, director), "director", id)
}

func (s *directorService) DeleteDirector(ctx context.Context, id uint) (int, error) {
	movies, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, classify(err, "director", id)
	}

	s.trailers.removeAll(ctx, movies)
	return len(movies), nil
}
