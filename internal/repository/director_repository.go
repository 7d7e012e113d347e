package repository

import (
	"context"
	"errors"
	"time"

	"movie-catalog/internal/database"
	"movie-catalog/internal/models"

	"gorm.io/gorm"
)

type DirectorRepository interface {
	Create(ctx context.Context, director *models.Director) error
	Update(ctx context.Context, director *models.Director) error
	// Delete removes the director together with its movies and returns the
	// movies removed by the cascade.
	Delete(ctx context.Context, id uint) ([]models.Movie, error)
	FindByID(ctx context.Context, id uint) (*models.Director, error)
	FindAll(ctx context.Context) ([]models.Director, error)
}

type directorRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewDirectorRepository(db *database.Database) DirectorRepository {
	return &directorRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *directorRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *directorRepository) Create(ctx context.Context, director *models.Director) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(director).Error
}

func (r *directorRepository) Update(ctx context.Context, director *models.Director) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Director
		if err := tx.First(&existing, director.ID).Error; err != nil {
			return err
		}
		return tx.Model(&existing).Select("name").Updates(director).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrRecordNotFound
	}
	return err
}

func (r *directorRepository) Delete(ctx context.Context, id uint) ([]models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movies []models.Movie
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var director models.Director
		if err := tx.First(&director, id).Error; err != nil {
			return err
		}
		if err := tx.Where("director_id = ?", id).Find(&movies).Error; err != nil {
			return err
		}
		if err := tx.Where("director_id = ?", id).Delete(&models.Movie{}).Error; err != nil {
			return err
		}
		return tx.Delete(&director).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return movies, nil
}

func (r *directorRepository) FindByID(ctx context.Context, id uint) (*models.Director, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var director models.Director
	err := r.db.WithContext(ctx).First(&director, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &director, nil
}

func (r *directorRepository) FindAll(ctx context.Context) ([]models.Director, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	directors := []models.Director{}
	err := r.db.WithContext(ctx).Order("id ASC").Find(&directors).Error
	return directors, err
}
