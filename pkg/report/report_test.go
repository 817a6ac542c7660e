package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hellenic-development/site-style-extractor/pkg/extractor"
)

func TestPrepareCreatesLayout(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "site-copy-example.com")
	layout := NewLayout(root)

	require.NoError(t, layout.Prepare())
	for _, dir := range []string{layout.Root, layout.Original, layout.Replica, layout.Comparison, layout.Data} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir(), dir)
	}

	// Preparing an existing layout is a no-op.
	require.NoError(t, layout.Prepare())
}

func TestPrepareFailsOnFile(t *testing.T) {
	root := filepath.Join(t.TempDir(), "occupied")
	require.NoError(t, os.WriteFile(root, []byte("x"), 0644))

	assert.Error(t, NewLayout(root).Prepare())
}

func TestWriteScreenshot(t *testing.T) {
	layout := NewLayout(t.TempDir())
	require.NoError(t, layout.Prepare())

	bp := extractor.Breakpoint{Name: "tablet", Width: 768, Height: 1024}
	path, err := layout.WriteScreenshot(bp, []byte("\x89PNG"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(layout.Root, "original", "tablet-768px.png"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), data)
}

func TestWriteSnapshots(t *testing.T) {
	layout := NewLayout(t.TempDir())
	require.NoError(t, layout.Prepare())

	id := "cta"
	snap := &extractor.StyleSnapshot{
		URL:        "https://example.com/",
		Title:      "Example",
		Viewport:   extractor.Viewport{Width: 320, Height: 568},
		Breakpoint: "mobile",
		Components: []extractor.StyledElementRecord{{
			Index:   2,
			Tag:     "button",
			ID:      &id,
			Classes: []string{"btn"},
			Type:    extractor.Button,
			Styles:  map[string]string{"margin": "8px"},
		}},
		Colors:  []string{},
		Fonts:   []string{},
		Spacing: []string{"8px"},
		Shadows: []string{},
	}

	path, err := layout.WriteSnapshot(snap)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(layout.Root, "data", "mobile-styles.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "mobile", decoded["breakpoint"])
	assert.Equal(t, []any{"8px"}, decoded["spacing"])
	assert.Equal(t, []any{}, decoded["colors"])

	component := decoded["components"].([]any)[0].(map[string]any)
	assert.Equal(t, float64(2), component["index"])
	assert.Equal(t, "cta", component["id"])
	assert.Nil(t, component["text"])
	assert.Equal(t, "button", component["type"])

	path, err = layout.WriteCompleteExtraction([]*extractor.StyleSnapshot{snap, snap})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(layout.Root, "data", "complete-extraction.json"), path)

	data, err = os.ReadFile(path)
	require.NoError(t, err)
	var all []extractor.StyleSnapshot
	require.NoError(t, json.Unmarshal(data, &all))
	assert.Len(t, all, 2)
}

func TestWriteCompleteExtractionEmpty(t *testing.T) {
	layout := NewLayout(t.TempDir())
	require.NoError(t, layout.Prepare())

	path, err := layout.WriteCompleteExtraction(nil)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestWriteMarkdown(t *testing.T) {
	layout := NewLayout(t.TempDir())
	require.NoError(t, layout.Prepare())

	path, err := layout.WriteStyleGuide("# Style Guide\n")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(layout.Root, StyleGuideFile), path)

	path, err = layout.WriteReadme("# Site Copy\n")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(layout.Root, ReadmeFile), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# Site Copy\n", string(data))
}

func TestWriteWithoutPrepare(t *testing.T) {
	layout := NewLayout(filepath.Join(t.TempDir(), "missing"))

	_, err := layout.WriteSnapshot(&extractor.StyleSnapshot{Breakpoint: "mobile"})
	assert.Error(t, err)
}
