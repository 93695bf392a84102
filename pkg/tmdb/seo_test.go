package tmdb

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSEOData(t *testing.T) {
	movie := &Movie{
		Title:       "Inception",
		Overview:    "A thief who steals corporate secrets.",
		ReleaseDate: "2010-07-16",
		Genres:      []Genre{{ID: 28, Name: "Action"}, {ID: 878, Name: "Science Fiction"}},
	}
	cast := []CastMember{
		{Name: "Leonardo DiCaprio"},
		{Name: "Joseph Gordon-Levitt"},
		{Name: "Elliot Page"},
	}

	seo := GenerateSEOData(movie, cast)

	assert.Equal(t, "Inception (2010) - Download HD Movies", seo.Title)
	assert.Equal(t, movie.Overview, seo.Description)
	assert.Contains(t, seo.Keywords, "Inception")
	assert.Contains(t, seo.Keywords, "Action")
	assert.Contains(t, seo.Keywords, "Leonardo DiCaprio")
	assert.Contains(t, seo.Keywords, "download")
}

func TestGenerateSEODataEmptyOverview(t *testing.T) {
	movie := &Movie{
		Title:       "Some Movie",
		ReleaseDate: "1999-01-01",
		Genres:      []Genre{{Name: "Drama"}},
	}
	cast := []CastMember{{Name: "Actor One"}, {Name: "Actor Two"}}

	seo := GenerateSEOData(movie, cast)

	assert.Equal(t, "Watch and download Some Movie in high quality. Drama movie featuring Actor One, Actor Two.", seo.Description)
}

func TestGenerateSEODataMissingReleaseDate(t *testing.T) {
	movie := &Movie{Title: "Undated"}

	seo := GenerateSEOData(movie, nil)

	assert.Equal(t, fmt.Sprintf("Undated (%d) - Download HD Movies", time.Now().Year()), seo.Title)
}
