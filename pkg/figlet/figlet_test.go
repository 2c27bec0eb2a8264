package figlet

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmptyName(t *testing.T) {
	_, err := Load("  ")
	assert.ErrorIs(t, err, ErrNoFont)
}

func TestLoad_BundledFont(t *testing.T) {
	e, err := Load("standard")
	require.NoError(t, err)
	assert.Equal(t, "standard", e.Font())

	rows, err := e.Render("HI")
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	assert.NotEmpty(t, strings.TrimSpace(rows[0]))
	assert.NotEmpty(t, strings.TrimSpace(rows[len(rows)-1]))
}

func TestLoad_UnknownBundledFont(t *testing.T) {
	_, err := Load("definitely-not-a-font")
	assert.Error(t, err)
}

func TestLoad_MissingFontFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.flf"))
	assert.Error(t, err)
}

func TestTrimBlankEdges(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"no blanks", []string{"a", "b"}, []string{"a", "b"}},
		{"edges trimmed", []string{"  ", "", "a", "", "b", "   ", ""}, []string{"a", "", "b"}},
		{"all blank", []string{" ", ""}, []string{}},
		{"nil", nil, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TrimBlankEdges(tt.in)
			assert.Equal(t, len(tt.want), len(got))
			if len(tt.want) > 0 {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
