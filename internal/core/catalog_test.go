package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAllowedMediaName(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		want bool
	}{
		{"mkv", "show.s01e01.mkv", true},
		{"mp4", "movie.mp4", true},
		{"zip archive", "bundle.zip", true},
		{"uppercase suffix", "MOVIE.MKV", true},
		{"mixed case", "Movie.Mp4", true},
		{"plain text", "readme.txt", false},
		{"no suffix", "movie", false},
		{"suffix only part of name", "mkv", false},
		{"double suffix takes the last", "movie.mkv.txt", false},
		{"dotted name ending allowed", "a.b.c.avi", true},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAllowedMediaName(tt.ref))
		})
	}
}

func TestCatalogCollectionName(t *testing.T) {
	assert.Equal(t, MongoCollection("catalog_42"), CatalogCollectionName(42))
	assert.Equal(t, MongoCollection("catalog_-7"), CatalogCollectionName(-7))
}
