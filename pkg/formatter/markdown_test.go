package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/hellenic-development/site-style-extractor/pkg/extractor"
)

var generatedAt = time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)

func sampleTokens() *extractor.DesignTokenSet {
	return &extractor.DesignTokenSet{
		Colors:  []string{"rgb(26, 43, 60)", "rgba(0, 0, 0, 0.5)"},
		Fonts:   []string{"Inter, sans-serif"},
		Spacing: []string{"2px", "10px", "100px"},
		Shadows: []string{"rgba(0, 0, 0, 0.1) 0px 1px 2px 0px", "rgb(0, 0, 0) 0px 4px 8px 0px"},
	}
}

func TestHostLabel(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{url: "https://www.example.com/about", want: "example.com"},
		{url: "https://example.com", want: "example.com"},
		{url: "http://shop.www.example.com:8080/", want: "shop.www.example.com"},
		{url: "https://wwwexample.com", want: "wwwexample.com"},
		{url: "not a url", want: "not a url"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			if got := HostLabel(tt.url); got != tt.want {
				t.Errorf("HostLabel(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestStyleGuideSections(t *testing.T) {
	md := StyleGuide(sampleTokens(), extractor.Breakpoints(), "https://www.example.com/", generatedAt)

	sections := []string{
		"# Style Guide: example.com\n",
		"**Source**: https://www.example.com/\n",
		"**Extracted**: 2024-05-01T12:30:00Z\n",
		"## Color Palette\n",
		"## Typography\n",
		"### Font Families\n",
		"## Spacing System\n",
		"## Shadows & Elevation\n",
		"## Responsive Breakpoints\n",
		"## Component Details\n",
	}

	last := -1
	for _, section := range sections {
		idx := strings.Index(md, section)
		if idx < 0 {
			t.Fatalf("missing section %q in:\n%s", section, md)
		}
		if idx <= last {
			t.Errorf("section %q out of order", section)
		}
		last = idx
	}
}

func TestStyleGuideContent(t *testing.T) {
	md := StyleGuide(sampleTokens(), extractor.Breakpoints(), "https://www.example.com/", generatedAt)

	wants := []string{
		"- `#1a2b3c` - rgb(26, 43, 60)\n",
		"- `#000000 (50% opacity)` - rgba(0, 0, 0, 0.5)\n",
		"- Inter, sans-serif\n",
		"- 2px\n- 10px\n- 100px\n",
		"### Shadow 1\n```css\nbox-shadow: rgba(0, 0, 0, 0.1) 0px 1px 2px 0px;\n```\n",
		"### Shadow 2\n```css\nbox-shadow: rgb(0, 0, 0) 0px 4px 8px 0px;\n```\n",
		"- **mobile**: 320x568px\n",
		"- **desktop-xl**: 1920x1080px\n",
		"`data/complete-extraction.json`",
	}
	for _, want := range wants {
		if !strings.Contains(md, want) {
			t.Errorf("style guide missing %q", want)
		}
	}

	if strings.Contains(md, "### Shadow 3") {
		t.Error("unexpected third shadow")
	}
}

func TestStyleGuideIsDeterministic(t *testing.T) {
	a := StyleGuide(sampleTokens(), extractor.Breakpoints(), "https://example.com", generatedAt)
	b := StyleGuide(sampleTokens(), extractor.Breakpoints(), "https://example.com", generatedAt)
	if a != b {
		t.Fatal("rendering the same tokens twice produced different output")
	}

	c := StyleGuide(sampleTokens(), extractor.Breakpoints(), "https://example.com", generatedAt.Add(time.Hour))
	diff := 0
	al, cl := strings.Split(a, "\n"), strings.Split(c, "\n")
	if len(al) != len(cl) {
		t.Fatalf("line count differs: %d vs %d", len(al), len(cl))
	}
	for i := range al {
		if al[i] != cl[i] {
			diff++
			if !strings.HasPrefix(al[i], "**Extracted**") {
				t.Errorf("unexpected difference on line %d: %q vs %q", i, al[i], cl[i])
			}
		}
	}
	if diff != 1 {
		t.Errorf("expected exactly the timestamp line to differ, got %d lines", diff)
	}
}

func TestStyleGuideEmptyTokens(t *testing.T) {
	md := StyleGuide(extractor.Aggregate(nil), nil, "https://example.com", generatedAt)
	if !strings.Contains(md, "## Color Palette\n\n\n## Typography") {
		t.Errorf("empty palette not rendered as an empty section:\n%s", md)
	}
	if strings.Contains(md, "### Shadow") {
		t.Error("shadow rendered for empty token set")
	}
}

func TestReadme(t *testing.T) {
	md := Readme("https://www.example.com", generatedAt)

	wants := []string{
		"# Site Copy: example.com\n",
		"`original/`",
		"`replica/`",
		"`comparison/`",
		"`data/`",
		"`STYLE_GUIDE.md`",
		"`data/complete-extraction.json`",
		"**Extracted**: 2024-05-01T12:30:00Z",
	}
	for _, want := range wants {
		if !strings.Contains(md, want) {
			t.Errorf("README missing %q", want)
		}
	}
}
