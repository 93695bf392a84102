package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenreName(t *testing.T) {
	tests := []struct {
		name string
		id   int64
		want string
	}{
		{name: "known genre", id: 28, want: "Action"},
		{name: "another known genre", id: 878, want: "Science Fiction"},
		{name: "unknown id falls back", id: 999, want: "Unknown"},
		{name: "zero id falls back", id: 0, want: "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenreName(tt.id))
		})
	}
}

func TestGenreNames(t *testing.T) {
	got := GenreNames([]int64{28, 999, 35})
	assert.Equal(t, []string{"Action", "Unknown", "Comedy"}, got)

	assert.Empty(t, GenreNames(nil))
}
