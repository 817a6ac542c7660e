package formatter

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/hellenic-development/site-style-extractor/pkg/extractor"
)

// CompleteExtractionFile is the data file, relative to the output directory, that holds
// every breakpoint snapshot.
const CompleteExtractionFile = "data/complete-extraction.json"

// StyleGuide renders the aggregated design tokens as a markdown style guide.
// The output depends only on its arguments, so equal inputs render identical documents.
func StyleGuide(tokens *extractor.DesignTokenSet, breakpoints []extractor.Breakpoint, sourceURL string, generatedAt time.Time) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Style Guide: %s\n\n", HostLabel(sourceURL)))
	sb.WriteString(fmt.Sprintf("**Source**: %s\n", sourceURL))
	sb.WriteString(fmt.Sprintf("**Extracted**: %s\n\n", timestamp(generatedAt)))

	// Colors
	sb.WriteString("## Color Palette\n\n")
	for _, color := range tokens.Colors {
		sb.WriteString(fmt.Sprintf("- `%s` - %s\n", extractor.NormalizeColor(color), color))
	}
	sb.WriteString("\n")

	// Typography
	sb.WriteString("## Typography\n\n")
	sb.WriteString("### Font Families\n")
	for _, font := range tokens.Fonts {
		sb.WriteString(fmt.Sprintf("- %s\n", font))
	}
	sb.WriteString("\n")

	// Spacing
	sb.WriteString("## Spacing System\n\n")
	sb.WriteString("Detected spacing values:\n")
	for _, space := range tokens.Spacing {
		sb.WriteString(fmt.Sprintf("- %s\n", space))
	}
	sb.WriteString("\n")

	// Shadows
	sb.WriteString("## Shadows & Elevation\n\n")
	for i, shadow := range tokens.Shadows {
		sb.WriteString(fmt.Sprintf("### Shadow %d\n```css\nbox-shadow: %s;\n```\n\n", i+1, shadow))
	}

	sb.WriteString("## Responsive Breakpoints\n\n")
	sb.WriteString("Analyzed at the following breakpoints:\n")
	for _, bp := range breakpoints {
		sb.WriteString(fmt.Sprintf("- **%s**: %dx%dpx\n", bp.Name, bp.Width, bp.Height))
	}
	sb.WriteString("\n")

	sb.WriteString("## Component Details\n\n")
	sb.WriteString(fmt.Sprintf("See `%s` for complete component-level style extraction.\n\n", CompleteExtractionFile))

	sb.WriteString("---\n\n")
	sb.WriteString("*Generated by Site Style Extractor*\n")

	return sb.String()
}

// Readme renders the workflow notes placed at the root of the output directory.
func Readme(sourceURL string, generatedAt time.Time) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Site Copy: %s\n\n", HostLabel(sourceURL)))
	sb.WriteString(fmt.Sprintf("**Source**: %s\n", sourceURL))
	sb.WriteString(fmt.Sprintf("**Extracted**: %s\n\n", timestamp(generatedAt)))

	sb.WriteString("## Structure\n\n")
	sb.WriteString("- `original/` - Screenshots of original site at various breakpoints\n")
	sb.WriteString("- `replica/` - Screenshots of your replica implementation\n")
	sb.WriteString("- `comparison/` - Side-by-side comparisons and notes\n")
	sb.WriteString("- `data/` - Extracted style data in JSON format\n")
	sb.WriteString("- `STYLE_GUIDE.md` - Generated style guide with design system\n\n")

	sb.WriteString("## Workflow\n\n")
	sb.WriteString("1. Review `STYLE_GUIDE.md` for design system details\n")
	sb.WriteString(fmt.Sprintf("2. Review `%s` for component-level styles\n", CompleteExtractionFile))
	sb.WriteString("3. Implement replica using Tailwind CSS\n")
	sb.WriteString("4. Take screenshots of replica and save to `replica/`\n")
	sb.WriteString("5. Compare original vs replica screenshots\n")
	sb.WriteString("6. Document differences in `comparison/notes.md`\n")

	return sb.String()
}

// HostLabel returns the host of rawURL without a leading "www.".
// Unparseable input is returned as is.
func HostLabel(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return rawURL
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}

func timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
