package repository

import (
	"context"
	"errors"
	"time"

	"movie-catalog/internal/database"
	"movie-catalog/internal/models"

	"gorm.io/gorm"
)

type MovieRepository interface {
	Create(ctx context.Context, movie *models.Movie) error
	// Update overwrites every column of the movie and returns the row as it was
	// before the update.
	Update(ctx context.Context, movie *models.Movie) (*models.Movie, error)
	Delete(ctx context.Context, id uint) (*models.Movie, error)
	FindByID(ctx context.Context, id uint) (*models.Movie, error)
	FindAll(ctx context.Context, filter models.MovieFilter) ([]models.Movie, int64, error)
}

type movieRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewMovieRepository(db *database.Database) MovieRepository {
	return &movieRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *movieRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *movieRepository) Create(ctx context.Context, movie *models.Movie) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Omit("Director", "Genre").Create(movie).Error
}

func (r *movieRepository) Update(ctx context.Context, movie *models.Movie) (*models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var existing models.Movie
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&existing, movie.ID).Error; err != nil {
			return err
		}
		return tx.Model(&models.Movie{ID: movie.ID}).
			Select(models.MovieColumns).
			Updates(movie).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &existing, nil
}

func (r *movieRepository) Delete(ctx context.Context, id uint) (*models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movie models.Movie
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&movie, id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Movie{}, id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepository) FindByID(ctx context.Context, id uint) (*models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movie models.Movie
	err := r.db.WithContext(ctx).Preload("Director").Preload("Genre").First(&movie, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &movie, nil
}

// FindAll returns one page of movies ordered by id, plus the number of movies
// matching the filter across all pages.
func (r *movieRepository) FindAll(ctx context.Context, filter models.MovieFilter) ([]models.Movie, int64, error) {
	directorID, genreID, ok := filter.ForeignKeys()
	if !ok {
		return []models.Movie{}, 0, nil
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	movies := []models.Movie{}
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Movie{})
	if directorID != nil {
		query = query.Where("director_id = ?", *directorID)
	}
	if genreID != nil {
		query = query.Where("genre_id = ?", *genreID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if int64(filter.Offset()) >= total {
		return movies, total, nil
	}

	if err := query.Preload("Director").Preload("Genre").
		Order("id ASC").
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&movies).Error; err != nil {
		return nil, 0, err
	}

	return movies, total, nil
}
