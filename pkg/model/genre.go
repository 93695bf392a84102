package model

// genreNames is the static TMDB movie genre table. The catalog stores raw
// genre ids and maps them to names at read time.
var genreNames = map[int64]string{
	28:    "Action",
	12:    "Adventure",
	16:    "Animation",
	35:    "Comedy",
	80:    "Crime",
	99:    "Documentary",
	18:    "Drama",
	10751: "Family",
	14:    "Fantasy",
	36:    "History",
	27:    "Horror",
	10402: "Music",
	9648:  "Mystery",
	10749: "Romance",
	878:   "Science Fiction",
	10770: "TV Movie",
	53:    "Thriller",
	10752: "War",
	37:    "Western",
}

// GenreName resolves a TMDB genre id to its display name.
func GenreName(id int64) string {
	if name, ok := genreNames[id]; ok {
		return name
	}
	return "Unknown"
}

// GenreNames maps a list of genre ids to display names, preserving order.
func GenreNames(ids []int64) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, GenreName(id))
	}
	return names
}
