package repository

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"movie-catalog/internal/config"
	"movie-catalog/internal/database"
	"movie-catalog/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDatabase(t *testing.T) *database.Database {
	t.Helper()

	db, err := database.Connect(config.DatabaseConfig{
		Driver:       config.DriverSQLite,
		SQLitePath:   ":memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		QueryTimeout: 5 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func ptr[T any](v T) *T {
	return &v
}

func seedDirector(t *testing.T, repo DirectorRepository, name string) *models.Director {
	t.Helper()
	director := &models.Director{Name: ptr(name)}
	require.NoError(t, repo.Create(context.Background(), director))
	return director
}

func seedGenre(t *testing.T, repo GenreRepository, name string) *models.Genre {
	t.Helper()
	genre := &models.Genre{Name: ptr(name)}
	require.NoError(t, repo.Create(context.Background(), genre))
	return genre
}

func seedMovie(t *testing.T, repo MovieRepository, title string, directorID, genreID *uint) *models.Movie {
	t.Helper()
	movie := &models.Movie{Title: ptr(title), DirectorID: directorID, GenreID: genreID}
	require.NoError(t, repo.Create(context.Background(), movie))
	return movie
}

func TestMovieRepositoryFindByIDPreloadsRelations(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()
	movies := NewMovieRepository(db)
	director := seedDirector(t, NewDirectorRepository(db), "Nolan")
	genre := seedGenre(t, NewGenreRepository(db), "Sci-Fi")

	created := seedMovie(t, movies, "Tenet", &director.ID, &genre.ID)
	orphan := seedMovie(t, movies, "Untitled", nil, nil)

	got, err := movies.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Director)
	require.NotNil(t, got.Genre)
	assert.Equal(t, "Nolan", *got.Director.Name)
	assert.Equal(t, "Sci-Fi", *got.Genre.Name)

	got, err = movies.FindByID(ctx, orphan.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Director)
	assert.Nil(t, got.Genre)

	_, err = movies.FindByID(ctx, 9999)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestMovieRepositoryFindAllPaginatesInIDOrder(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()
	movies := NewMovieRepository(db)

	var ids []uint
	for _, title := range []string{"a", "b", "c", "d", "e", "f"} {
		ids = append(ids, seedMovie(t, movies, title, nil, nil).ID)
	}

	page1, total, err := movies.FindAll(ctx, models.MovieFilter{Page: 1})
	require.NoError(t, err)
	assert.EqualValues(t, 6, total)
	require.Len(t, page1, 4)
	for i, m := range page1 {
		assert.Equal(t, ids[i], m.ID)
	}

	page2, _, err := movies.FindAll(ctx, models.MovieFilter{Page: 2})
	require.NoError(t, err)
	require.Len(t, page2, 2)
	assert.Equal(t, ids[4], page2[0].ID)
	assert.Equal(t, ids[5], page2[1].ID)

	page3, total, err := movies.FindAll(ctx, models.MovieFilter{Page: 3})
	require.NoError(t, err)
	assert.EqualValues(t, 6, total)
	assert.NotNil(t, page3)
	assert.Empty(t, page3)

	for _, page := range []int{math.MaxInt/models.MoviePageSize + 2, math.MaxInt} {
		past, total, err := movies.FindAll(ctx, models.MovieFilter{Page: page})
		require.NoError(t, err)
		assert.EqualValues(t, 6, total)
		assert.NotNil(t, past)
		assert.Empty(t, past, "page %d", page)
	}
}

func TestMovieRepositoryFindAllFilters(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()
	movies := NewMovieRepository(db)
	nolan := seedDirector(t, NewDirectorRepository(db), "Nolan")
	scott := seedDirector(t, NewDirectorRepository(db), "Scott")
	drama := seedGenre(t, NewGenreRepository(db), "Drama")

	seedMovie(t, movies, "Tenet", &nolan.ID, nil)
	seedMovie(t, movies, "Memento", &nolan.ID, &drama.ID)
	seedMovie(t, movies, "Alien", &scott.ID, nil)

	got, total, err := movies.FindAll(ctx, models.MovieFilter{DirectorID: "1", Page: 1})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, got, 2)
	for _, m := range got {
		assert.Equal(t, nolan.ID, *m.DirectorID)
	}

	got, total, err = movies.FindAll(ctx, models.MovieFilter{DirectorID: "1", GenreID: "1", Page: 1})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, got, 1)
	assert.Equal(t, "Memento", *got[0].Title)

	got, total, err = movies.FindAll(ctx, models.MovieFilter{DirectorID: "nolan", Page: 1})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, got)
}

func TestMovieRepositoryUpdateReplacesAllColumns(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()
	movies := NewMovieRepository(db)
	director := seedDirector(t, NewDirectorRepository(db), "Nolan")

	created := &models.Movie{
		Title:      ptr("Tenet"),
		Trailer:    ptr("https://example.com/tenet.mp4"),
		Year:       ptr(2020),
		Rating:     ptr(7.8),
		DirectorID: &director.ID,
	}
	require.NoError(t, movies.Create(ctx, created))

	previous, err := movies.Update(ctx, &models.Movie{ID: created.ID, Title: ptr("Tenet (IMAX)")})
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/tenet.mp4", *previous.Trailer)

	got, err := movies.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tenet (IMAX)", *got.Title)
	assert.Nil(t, got.Trailer)
	assert.Nil(t, got.Year)
	assert.Nil(t, got.Rating)
	assert.Nil(t, got.DirectorID)
	assert.Nil(t, got.Director)

	_, err = movies.Update(ctx, &models.Movie{ID: 404})
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestMovieRepositoryDelete(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()
	movies := NewMovieRepository(db)
	created := seedMovie(t, movies, "Tenet", nil, nil)

	deleted, err := movies.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)

	_, err = movies.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrRecordNotFound)

	_, err = movies.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestDirectorRepositoryDeleteCascadesToMovies(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()
	movies := NewMovieRepository(db)
	directors := NewDirectorRepository(db)
	nolan := seedDirector(t, directors, "Nolan")
	scott := seedDirector(t, directors, "Scott")

	tenet := seedMovie(t, movies, "Tenet", &nolan.ID, nil)
	memento := seedMovie(t, movies, "Memento", &nolan.ID, nil)
	alien := seedMovie(t, movies, "Alien", &scott.ID, nil)

	removed, err := directors.Delete(ctx, nolan.ID)
	require.NoError(t, err)
	require.Len(t, removed, 2)

	for _, id := range []uint{tenet.ID, memento.ID} {
		_, err := movies.FindByID(ctx, id)
		assert.ErrorIs(t, err, ErrRecordNotFound)
	}
	_, err = movies.FindByID(ctx, alien.ID)
	assert.NoError(t, err)

	_, err = directors.FindByID(ctx, nolan.ID)
	assert.ErrorIs(t, err, ErrRecordNotFound)

	_, err = directors.Delete(ctx, nolan.ID)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestGenreRepositoryLifecycle(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()
	genres := NewGenreRepository(db)
	movies := NewMovieRepository(db)

	drama := seedGenre(t, genres, "Drama")
	comedy := seedGenre(t, genres, "Comedy")
	film := seedMovie(t, movies, "Parasite", nil, &drama.ID)

	all, err := genres.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, drama.ID, all[0].ID)
	assert.Equal(t, comedy.ID, all[1].ID)

	require.NoError(t, genres.Update(ctx, &models.Genre{ID: comedy.ID}))
	got, err := genres.FindByID(ctx, comedy.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Name)

	assert.ErrorIs(t, genres.Update(ctx, &models.Genre{ID: 99}), ErrRecordNotFound)

	removed, err := genres.Delete(ctx, drama.ID)
	require.NoError(t, err)
	require.Len(t, removed, 1)
	assert.Equal(t, film.ID, removed[0].ID)

	_, err = movies.FindByID(ctx, film.ID)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestMovieRepositorySurfacesStorageErrors(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	repo := NewMovieRepository(database.New(gdb, config.DatabaseConfig{QueryTimeout: time.Second}))

	connErr := errors.New("connection reset by peer")
	mock.ExpectQuery(`SELECT \* FROM "movies"`).WillReturnError(connErr)

	_, err = repo.FindByID(context.Background(), 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, connErr)
	assert.NotErrorIs(t, err, ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
