package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAndParseAccess(t *testing.T) {
	tok := BuildAccess(123456789)
	assert.Equal(t, "access_123456789", tok)

	id, err := ParseAccess(tok)
	require.NoError(t, err)
	assert.Equal(t, int64(123456789), id)
}

func TestParseAccessRejectsGarbage(t *testing.T) {
	tests := []struct {
		name string
		tok  string
	}{
		{"empty", ""},
		{"prefix only", "access_"},
		{"wrong prefix", "grant_42"},
		{"non numeric id", "access_fourtytwo"},
		{"trailing junk", "access_42x"},
		{"embedded space", "access_ 42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAccess(tt.tok)
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestIsAccess(t *testing.T) {
	assert.True(t, IsAccess("access_42"))
	assert.True(t, IsAccess("access_broken"))
	assert.False(t, IsAccess("/start"))
	assert.False(t, IsAccess(""))
}

func TestBuildDeepLink(t *testing.T) {
	link := BuildDeepLink("https://t.me/", "mediadex_bot", 42)
	assert.Equal(t, "https://t.me/mediadex_bot?start=access_42", link)
}
