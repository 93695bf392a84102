package tmdb

import (
	"fmt"
	"strings"
	"time"
)

// GenerateSEOData derives the title/description/keywords block from a
// details record and its cast. Pure function, no I/O.
func GenerateSEOData(movie *Movie, cast []CastMember) SEOData {
	year := time.Now().Year()
	if movie.ReleaseDate != "" {
		if parsed, err := time.Parse("2006-01-02", movie.ReleaseDate); err == nil {
			year = parsed.Year()
		}
	}

	genreNames := make([]string, 0, len(movie.Genres))
	for _, genre := range movie.Genres {
		genreNames = append(genreNames, genre.Name)
	}

	description := movie.Overview
	if description == "" {
		description = fmt.Sprintf("Watch and download %s in high quality. %s movie featuring %s.",
			movie.Title,
			strings.Join(genreNames, ", "),
			strings.Join(castNames(cast, 3), ", "))
	}

	keywords := []string{movie.Title}
	keywords = append(keywords, genreNames...)
	keywords = append(keywords, castNames(cast, 5)...)
	keywords = append(keywords, "download", "HD", "movie")

	return SEOData{
		Title:       fmt.Sprintf("%s (%d) - Download HD Movies", movie.Title, year),
		Description: description,
		Keywords:    strings.Join(keywords, ", "),
	}
}

func castNames(cast []CastMember, limit int) []string {
	if len(cast) < limit {
		limit = len(cast)
	}
	names := make([]string, 0, limit)
	for _, member := range cast[:limit] {
		names = append(names, member.Name)
	}
	return names
}
