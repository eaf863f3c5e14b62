package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/doc-doctor/internal/core/domain"
)

// TestParseFormat tests format names.
func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatYAML, false},
		{"yaml", FormatYAML, false},
		{"yml", FormatYAML, false},
		{"toml", FormatTOML, false},
		{"ini", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestStarterPath_Project tests the project starter location.
func TestStarterPath_Project(t *testing.T) {
	got, err := StarterPath(true, "/work/repo", FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/work/repo", ".doc-doctor.toml"), got)
}

// TestWriteStarter_RoundTrip tests that a starter file loads back as the defaults.
func TestWriteStarter_RoundTrip(t *testing.T) {
	for _, format := range []Format{FormatYAML, FormatTOML} {
		t.Run(string(format), func(t *testing.T) {
			root := t.TempDir()
			path, err := StarterPath(true, root, format)
			require.NoError(t, err)

			require.NoError(t, WriteStarter(path, format, nil))

			l := Load(Options{UserDir: t.TempDir(), StartDir: root})
			require.NoError(t, l.Err)
			assert.Equal(t, []string{path}, l.Sources)
			assert.Equal(t, domain.DefaultConfig(), l.Config())
		})
	}
}

// TestWriteStarter_Content tests the rendered YAML.
func TestWriteStarter_Content(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	require.NoError(t, WriteStarter(path, FormatYAML, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "refinement_weight: 0.7")
	assert.Contains(t, content, "canonical: never")
	assert.Contains(t, content, "stable: 90")
	assert.NotContains(t, content, "default_urgency")
}

// TestWriteStarter_RefusesOverwrite tests that existing files are kept.
func TestWriteStarter_RefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".doc-doctor.yaml")
	require.NoError(t, os.WriteFile(path, []byte("keep: me\n"), 0o644))

	err := WriteStarter(path, FormatYAML, nil)

	require.ErrorIs(t, err, ErrExists)
	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, "keep: me\n", string(data))
}
