package pkgbuild

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeRecipe writes a PKGBUILD with the given content into a temp dir.
func writeRecipe(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "PKGBUILD")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseVersionStatic(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Version
	}{
		{
			name:    "basic",
			content: "pkgver=1.2.3\npkgrel=1\n",
			want:    Version{Pkgver: "1.2.3", Pkgrel: "1"},
		},
		{
			name:    "double and single quotes",
			content: "pkgver=\"1.2.3\"\npkgrel='1'\n",
			want:    Version{Pkgver: "1.2.3", Pkgrel: "1"},
		},
		{
			name:    "surrounding whitespace",
			content: "pkgver=  1.2.3  \npkgrel= 1 \n",
			want:    Version{Pkgver: "1.2.3", Pkgrel: "1"},
		},
		{
			name:    "comments and blank lines",
			content: "# maintainer notes\n\npkgver=1.2.3\n# another comment\npkgrel=1\n",
			want:    Version{Pkgver: "1.2.3", Pkgrel: "1"},
		},
		{
			name:    "later assignment wins",
			content: "pkgver=1.0.0\npkgrel=1\npkgver=2.0.0\n",
			want:    Version{Pkgver: "2.0.0", Pkgrel: "1"},
		},
		{
			name:    "only one quote pair stripped",
			content: "pkgver=\"\"1.2.3\"\"\npkgrel=1\n",
			want:    Version{Pkgver: "\"1.2.3\"", Pkgrel: "1"},
		},
		{
			name:    "unevaluated expression kept verbatim",
			content: "pkgver=${_base}.3\npkgrel=1\n",
			want:    Version{Pkgver: "${_base}.3", Pkgrel: "1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVersionStatic(writeRecipe(t, tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseVersionStaticMissingFields(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing pkgver", "pkgrel=1\n"},
		{"missing pkgrel", "pkgver=1.2.3\n"},
		{"empty file", ""},
		{"commented out", "#pkgver=1.2.3\n#pkgrel=1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseVersionStatic(writeRecipe(t, tt.content))
			require.Error(t, err)

			var recipeErr *RecipeError
			assert.True(t, errors.As(err, &recipeErr))
		})
	}
}

func TestParseVersionStaticMissingFile(t *testing.T) {
	_, err := ParseVersionStatic(filepath.Join(t.TempDir(), "PKGBUILD"))
	require.Error(t, err)

	var recipeErr *RecipeError
	assert.True(t, errors.As(err, &recipeErr))
}

func TestExtractValue(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"1.2.3", "1.2.3"},
		{"\"1.2.3\"", "1.2.3"},
		{"'1.2.3'", "1.2.3"},
		{"  1.2.3  ", "1.2.3"},
		{"\"1.2.3'", "\"1.2.3'"}, // mismatched quotes left alone
		{"\"\"", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, extractValue(tt.raw))
	}
}
