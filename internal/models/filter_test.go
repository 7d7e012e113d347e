package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovieFilterWindow(t *testing.T) {
	tests := []struct {
		page       int
		wantOffset int
	}{
		{page: 0, wantOffset: 0},
		{page: 1, wantOffset: 0},
		{page: 2, wantOffset: 4},
		{page: 7, wantOffset: 24},
		{page: math.MaxInt/MoviePageSize + 1, wantOffset: math.MaxInt / MoviePageSize * MoviePageSize},
		{page: math.MaxInt/MoviePageSize + 2, wantOffset: math.MaxInt},
		{page: math.MaxInt, wantOffset: math.MaxInt},
	}

	for _, tt := range tests {
		f := MovieFilter{Page: tt.page}
		assert.Equal(t, tt.wantOffset, f.Offset(), "page %d", tt.page)
		assert.Equal(t, MoviePageSize, f.Limit())
	}
}

func TestMovieFilterForeignKeys(t *testing.T) {
	directorID, genreID, ok := MovieFilter{}.ForeignKeys()
	require.True(t, ok)
	assert.Nil(t, directorID)
	assert.Nil(t, genreID)

	directorID, genreID, ok = MovieFilter{DirectorID: "3", GenreID: "12"}.ForeignKeys()
	require.True(t, ok)
	require.NotNil(t, directorID)
	require.NotNil(t, genreID)
	assert.Equal(t, uint(3), *directorID)
	assert.Equal(t, uint(12), *genreID)

	for _, raw := range []string{"abc", "-1", "1.5", " 2"} {
		_, _, ok = MovieFilter{DirectorID: raw}.ForeignKeys()
		assert.False(t, ok, "director_id %q", raw)
		_, _, ok = MovieFilter{GenreID: raw}.ForeignKeys()
		assert.False(t, ok, "genre_id %q", raw)
	}
}
