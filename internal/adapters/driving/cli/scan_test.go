package cli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTree creates files (relative path to content) under a fresh directory.
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

func TestCollectMarkdown(t *testing.T) {
	root := writeTree(t, map[string]string{
		"b.md":             guideDoc,
		"a/notes.markdown": guideDoc,
		"a/image.png":      "png",
		".git/HEAD.md":     "hidden",
		"c/.drafts/x.md":   "hidden",
		"c/README.MD":      "# upper-case extension\n",
	})

	files, err := collectMarkdown(root)
	require.NoError(t, err)

	want := []string{
		filepath.Join(root, "a/notes.markdown"),
		filepath.Join(root, "b.md"),
		filepath.Join(root, "c/README.MD"),
	}
	assert.Equal(t, want, files)
}

func TestCollectMarkdown_Ignored(t *testing.T) {
	root := writeTree(t, map[string]string{
		".gitignore":               "drafts/\nprivate.md\n*.tmp.md\n",
		"keep.md":                  guideDoc,
		"private.md":               guideDoc,
		"notes.tmp.md":             guideDoc,
		"drafts/wip.md":            guideDoc,
		"docs/private.md":          guideDoc,
		"docs/ok.md":               guideDoc,
		"node_modules/pkg/READ.md": guideDoc,
		"dist/site.md":             guideDoc,
	})

	files, err := collectMarkdown(root)
	require.NoError(t, err)

	want := []string{
		filepath.Join(root, "docs/ok.md"),
		filepath.Join(root, "keep.md"),
	}
	assert.Equal(t, want, files)
}

func TestCollectMarkdown_MissingRoot(t *testing.T) {
	_, err := collectMarkdown(filepath.Join(t.TempDir(), "nope"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "walking")
}

func TestScanFiles(t *testing.T) {
	root := writeTree(t, map[string]string{
		"1.md": guideDoc,
		"2.md": "# no header\n",
		"3.md": "---\ntitle: [broken\n---\n",
		"4.md": guideDoc,
	})
	files, err := collectMarkdown(root)
	require.NoError(t, err)
	files = append(files, filepath.Join(root, "missing.md"))

	cache, err := newAnalysisCache(newCountingSwitchboard(), 8)
	require.NoError(t, err)

	results := scanFiles(context.Background(), cache, files, 3)

	require.Len(t, results, 5)
	for i, r := range results {
		assert.Equal(t, files[i], r.Path)
	}
	assert.NotNil(t, results[0].Analysis)
	assert.True(t, results[1].Skipped)
	assert.NotEmpty(t, results[2].Error)
	assert.NotNil(t, results[3].Analysis)
	assert.NotEmpty(t, results[4].Error)
}

func TestScanFiles_CancelledContext(t *testing.T) {
	root := writeTree(t, map[string]string{"1.md": guideDoc})
	cache, err := newAnalysisCache(newCountingSwitchboard(), 8)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results := scanFiles(ctx, cache, []string{filepath.Join(root, "1.md")}, 0)

	require.Len(t, results, 1)
	assert.Contains(t, results[0].Error, "context canceled")
}

func TestScanCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	root := writeTree(t, map[string]string{
		"guide.md": guideDoc,
		"plain.md": "# plain\n",
	})

	out, err := execute("scan", root, "--workers", "2")

	require.NoError(t, err)
	assert.Contains(t, out, "HEALTH  USEFUL  STUBS  BLOCKING  PATH")
	assert.Contains(t, out, "skipped (no header)")
	assert.Contains(t, out, "1 analysed, 1 skipped, 0 failed, mean health 0.82")
}

func TestScanCmd_SkipsIgnored(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	root := writeTree(t, map[string]string{
		".gitignore": "broken.md\n",
		"guide.md":   guideDoc,
		"broken.md":  "---\ntitle: [broken\n---\n",
	})

	out, err := execute("scan", root)

	require.NoError(t, err)
	assert.NotContains(t, out, "broken.md")
	assert.Contains(t, out, "1 analysed, 0 skipped, 0 failed")
}

func TestScanCmd_Empty(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute("scan", t.TempDir())

	require.NoError(t, err)
	assert.Contains(t, out, "No Markdown files found.")
}

func TestScanCmd_JSON(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	root := writeTree(t, map[string]string{"guide.md": guideDoc})

	out, err := execute("scan", "--json", root)
	require.NoError(t, err)

	var got []scanResult
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	require.NotNil(t, got[0].Analysis)
	assert.InDelta(t, 0.824, got[0].Analysis.Health.Score, 1e-9)
}
