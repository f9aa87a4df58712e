// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package display

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalog_Embedded(t *testing.T) {
	cat, err := LoadCatalog()
	require.NoError(t, err)
	assert.Equal(t, []string{"en-US", "ru-RU"}, cat.Locales())
}

func TestCatalogMatch(t *testing.T) {
	cat, err := LoadCatalog()
	require.NoError(t, err)

	tests := []struct {
		name   string
		locale string
		want   string
	}{
		{name: "empty uses base", locale: "", want: "en-US"},
		{name: "exact base", locale: "en-US", want: "en-US"},
		{name: "russian language only", locale: "ru", want: "ru-RU"},
		{name: "exact russian", locale: "ru-RU", want: "ru-RU"},
		{name: "unsupported falls back", locale: "ja-JP", want: "en-US"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag, err := cat.Match(tt.locale)
			require.NoError(t, err)
			assert.Equal(t, tt.want, tag.String())
		})
	}
}

func TestCatalogMatch_Malformed(t *testing.T) {
	cat, err := LoadCatalog()
	require.NoError(t, err)

	_, err = cat.Match("not a locale!!")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownLocale))
}

func TestLoadCatalogFS_Errors(t *testing.T) {
	base := "locale: en-US\nmessages:\n  screen.title: T\n"

	tests := []struct {
		name  string
		files fstest.MapFS
	}{
		{
			name:  "no files",
			files: fstest.MapFS{},
		},
		{
			name: "missing base locale",
			files: fstest.MapFS{
				"locales/ru-RU/cells.yaml": {Data: []byte("locale: ru-RU\nmessages:\n  screen.title: T\n")},
			},
		},
		{
			name: "locale mismatch with directory",
			files: fstest.MapFS{
				"locales/en-US/cells.yaml": {Data: []byte("locale: en-GB\nmessages:\n  screen.title: T\n")},
			},
		},
		{
			name: "unknown field",
			files: fstest.MapFS{
				"locales/en-US/cells.yaml": {Data: []byte(base + "extra: true\n")},
			},
		},
		{
			name: "empty messages",
			files: fstest.MapFS{
				"locales/en-US/cells.yaml": {Data: []byte("locale: en-US\n")},
			},
		},
		{
			name: "duplicate key across files",
			files: fstest.MapFS{
				"locales/en-US/a.yaml": {Data: []byte(base)},
				"locales/en-US/b.yaml": {Data: []byte(base)},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCatalogFS(tt.files)
			assert.Error(t, err)
		})
	}
}

func TestLoadCatalogFS_MultipleFilesPerLocale(t *testing.T) {
	files := fstest.MapFS{
		"locales/en-US/a.yaml": {Data: []byte("locale: en-US\nmessages:\n  screen.title: Title\n")},
		"locales/en-US/b.yaml": {Data: []byte("locale: en-US\nmessages:\n  screen.button: Go\n")},
	}
	cat, err := LoadCatalogFS(files)
	require.NoError(t, err)

	p, err := NewPresenter(cat, "en-US")
	require.NoError(t, err)
	assert.Equal(t, "Title", p.Title())
	assert.Equal(t, "Go", p.Button())
}
