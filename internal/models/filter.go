package models

import (
	"math"
	"strconv"
)

// MoviePageSize is the fixed number of movies returned per listing page.
const MoviePageSize = 4

// MovieFilter narrows the movie listing. DirectorID and GenreID hold the raw
// query string values; an empty value means no filter.
type MovieFilter struct {
	DirectorID string
	GenreID    string
	Page       int
}

func (f MovieFilter) Limit() int {
	return MoviePageSize
}

// Offset is the number of movies before the requested page. It saturates at
// math.MaxInt for pages too large to address.
func (f MovieFilter) Offset() int {
	if f.Page < 1 {
		return 0
	}
	if f.Page-1 > math.MaxInt/MoviePageSize {
		return math.MaxInt
	}
	return (f.Page - 1) * MoviePageSize
}

// ForeignKeys parses the director and genre filters. ok is false when a
// supplied value is not a valid id, in which case nothing can match.
func (f MovieFilter) ForeignKeys() (directorID, genreID *uint, ok bool) {
	if f.DirectorID != "" {
		id, err := strconv.ParseUint(f.DirectorID, 10, 32)
		if err != nil {
			return nil, nil, false
		}
		v := uint(id)
		directorID = &v
	}
	if f.GenreID != "" {
		id, err := strconv.ParseUint(f.GenreID, 10, 32)
		if err != nil {
			return nil, nil, false
		}
		v := uint(id)
		genreID = &v
	}
	return directorID, genreID, true
}
