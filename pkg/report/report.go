package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hellenic-development/site-style-extractor/pkg/extractor"
)

const (
	StyleGuideFile         = "STYLE_GUIDE.md"
	ReadmeFile             = "README.md"
	CompleteExtractionFile = "complete-extraction.json"
)

// Layout is the directory structure of an extraction's output.
type Layout struct {
	Root       string
	Original   string // screenshots of the source site
	Replica    string // left empty for the user's replica screenshots
	Comparison string // left empty for the user's comparison notes
	Data       string // JSON snapshots
}

// NewLayout returns the layout rooted at root. Nothing is created on disk.
func NewLayout(root string) Layout {
	return Layout{
		Root:       root,
		Original:   filepath.Join(root, "original"),
		Replica:    filepath.Join(root, "replica"),
		Comparison: filepath.Join(root, "comparison"),
		Data:       filepath.Join(root, "data"),
	}
}

// Prepare creates every directory of the layout, including missing parents.
func (l Layout) Prepare() error {
	for _, dir := range []string{l.Root, l.Original, l.Replica, l.Comparison, l.Data} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %q: %w", dir, err)
		}
	}
	return nil
}

// ScreenshotPath returns original/<name>-<width>px.png.
func (l Layout) ScreenshotPath(bp extractor.Breakpoint) string {
	return filepath.Join(l.Original, fmt.Sprintf("%s-%dpx.png", bp.Name, bp.Width))
}

// SnapshotPath returns data/<name>-styles.json.
func (l Layout) SnapshotPath(breakpointName string) string {
	return filepath.Join(l.Data, breakpointName+"-styles.json")
}

// WriteScreenshot stores a full-page PNG for bp and returns its path.
func (l Layout) WriteScreenshot(bp extractor.Breakpoint, png []byte) (string, error) {
	path := l.ScreenshotPath(bp)
	if err := writeFile(path, png); err != nil {
		return "", err
	}
	return path, nil
}

// WriteSnapshot stores one breakpoint snapshot and returns its path.
func (l Layout) WriteSnapshot(snap *extractor.StyleSnapshot) (string, error) {
	path := l.SnapshotPath(snap.Breakpoint)
	if err := writeJSON(path, snap); err != nil {
		return "", err
	}
	return path, nil
}

// WriteCompleteExtraction stores all snapshots as one JSON array and returns its path.
func (l Layout) WriteCompleteExtraction(snapshots []*extractor.StyleSnapshot) (string, error) {
	if snapshots == nil {
		snapshots = []*extractor.StyleSnapshot{}
	}
	path := filepath.Join(l.Data, CompleteExtractionFile)
	if err := writeJSON(path, snapshots); err != nil {
		return "", err
	}
	return path, nil
}

// WriteStyleGuide stores the rendered style guide and returns its path.
func (l Layout) WriteStyleGuide(markdown string) (string, error) {
	path := filepath.Join(l.Root, StyleGuideFile)
	if err := writeFile(path, []byte(markdown)); err != nil {
		return "", err
	}
	return path, nil
}

// WriteReadme stores the workflow README and returns its path.
func (l Layout) WriteReadme(markdown string) (string, error) {
	path := filepath.Join(l.Root, ReadmeFile)
	if err := writeFile(path, []byte(markdown)); err != nil {
		return "", err
	}
	return path, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %q: %w", path, err)
	}
	return writeFile(path, data)
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file %q: %w", path, err)
	}
	return nil
}
