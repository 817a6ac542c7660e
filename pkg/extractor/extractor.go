package extractor

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

// StyleSnapshot represents the complete style extraction of a page rendered at one breakpoint.
// It includes the styled elements in document order and the design token buckets observed on the page.
type StyleSnapshot struct {
	URL        string                `json:"url"`
	Title      string                `json:"title"`
	Viewport   Viewport              `json:"viewport"`
	Breakpoint string                `json:"breakpoint"`
	Components []StyledElementRecord `json:"components"`
	Colors     []string              `json:"colors"`
	Fonts      []string              `json:"fonts"`
	Spacing    []string              `json:"spacing"`
	Shadows    []string              `json:"shadows"`
}

// Viewport is the inner window size reported by the page.
type Viewport struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// StyledElementRecord describes a single sampled element with its informative computed styles.
// Index is the position among all selector matches, so filtered-out elements leave gaps.
type StyledElementRecord struct {
	Index       int               `json:"index"`
	Tag         string            `json:"tag"`
	ID          *string           `json:"id"`
	Classes     []string          `json:"classes"`
	Text        *string           `json:"text"`
	Type        ComponentType     `json:"type"`
	Styles      map[string]string `json:"styles"`
	BoundingBox Box               `json:"boundingBox"`
}

// Box is an element's bounding client rect in CSS pixels.
type Box struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Document is a rendered page that can evaluate a script and decode its JSON result into out.
type Document interface {
	Evaluate(expression string, out any) error
}

// Selectors lists the significant elements sampled on every page.
var Selectors = []string{
	"header", "nav", "main", "footer", "aside", "section", "article",
	"button", "a", "input", "textarea", "select",
	"h1", "h2", "h3", "h4", "h5", "h6", "p",
	`[class*="hero"]`, `[class*="card"]`, `[class*="container"]`,
	`[class*="button"]`, `[class*="nav"]`, `[class*="menu"]`,
}

// StyleProperties is the allow-list of computed style properties read from each element.
var StyleProperties = []string{
	// Typography
	"font-family", "font-size", "font-weight", "line-height", "letter-spacing",
	"text-align", "text-transform", "text-decoration", "font-style",

	// Colors
	"color", "background-color", "border-color", "opacity",

	// Box model
	"width", "height", "margin", "margin-top", "margin-right", "margin-bottom", "margin-left",
	"padding", "padding-top", "padding-right", "padding-bottom", "padding-left",
	"border", "border-width", "border-style", "border-radius",

	// Layout
	"display", "position", "top", "right", "bottom", "left", "z-index",
	"flex-direction", "flex-wrap", "justify-content", "align-items", "align-content",
	"flex-grow", "flex-shrink", "flex-basis", "gap", "row-gap", "column-gap",
	"grid-template-columns", "grid-template-rows", "grid-gap",

	// Visual effects
	"box-shadow", "text-shadow", "filter", "backdrop-filter", "transform",
	"transition", "animation",

	// Overflow & visibility
	"overflow", "overflow-x", "overflow-y", "visibility",
}

const maxTextExcerpt = 50

// rawDocument is the payload returned by the sampling script.
type rawDocument struct {
	URL      string       `json:"url"`
	Title    string       `json:"title"`
	Viewport Viewport     `json:"viewport"`
	Elements []rawElement `json:"elements"`
}

type rawElement struct {
	Tag     string            `json:"tag"`
	ID      string            `json:"id"`
	Role    string            `json:"role"`
	Classes []string          `json:"classes"`
	Text    string            `json:"text"`
	Styles  map[string]string `json:"styles"`
	Box     Box               `json:"box"`
}

// samplingScript reads every allow-listed property of every matched element. A property
// lookup that throws is reported as an empty value.
const samplingScript = `(() => {
  const selectors = %s;
  const properties = %s;
  const read = (computed, prop) => {
    try {
      return computed.getPropertyValue(prop) || '';
    } catch (e) {
      return '';
    }
  };
  const elements = Array.from(document.querySelectorAll(selectors.join(', ')));
  return {
    url: window.location.href,
    title: document.title,
    viewport: { width: window.innerWidth, height: window.innerHeight },
    elements: elements.map((el) => {
      let computed = null;
      try {
        computed = window.getComputedStyle(el);
      } catch (e) {}
      const styles = {};
      properties.forEach((prop) => {
        styles[prop] = computed ? read(computed, prop) : '';
      });
      const rect = el.getBoundingClientRect();
      return {
        tag: el.tagName.toLowerCase(),
        id: typeof el.id === 'string' ? el.id : '',
        role: el.getAttribute('role') || '',
        classes: Array.from(el.classList || []),
        text: (el.textContent || '').substring(0, %d),
        styles,
        box: { x: rect.x, y: rect.y, width: rect.width, height: rect.height },
      };
    }),
  };
})()`

// SamplingScript returns the in-page expression used by Sample.
func SamplingScript() string {
	selectors, _ := json.Marshal(Selectors)
	properties, _ := json.Marshal(StyleProperties)
	return fmt.Sprintf(samplingScript, selectors, properties, maxTextExcerpt)
}

// Sample extracts the computed styles of all significant elements of a rendered page and
// collects the design token buckets (colors, fonts, spacing, shadows) they contribute.
// The returned snapshot carries no breakpoint name; the caller tags it.
func Sample(doc Document) (*StyleSnapshot, error) {
	var raw rawDocument
	if err := doc.Evaluate(SamplingScript(), &raw); err != nil {
		return nil, fmt.Errorf("sample page: %w", err)
	}

	snap := &StyleSnapshot{
		URL:        raw.URL,
		Title:      raw.Title,
		Viewport:   raw.Viewport,
		Components: []StyledElementRecord{},
	}
	buckets := newBuckets()

	for index, el := range raw.Elements {
		styles := make(map[string]string)

		for _, prop := range StyleProperties {
			value, ok := el.Styles[prop]
			if !ok || !IsInformative(value) {
				continue
			}
			styles[prop] = value
			buckets.add(prop, value)
		}

		if len(styles) == 0 {
			continue
		}

		classes := el.Classes
		if classes == nil {
			classes = []string{}
		}

		snap.Components = append(snap.Components, StyledElementRecord{
			Index:       index,
			Tag:         strings.ToLower(el.Tag),
			ID:          optional(el.ID),
			Classes:     classes,
			Text:        optional(excerpt(el.Text)),
			Type:        ClassifyElement(el.Tag, el.Role, classes),
			Styles:      styles,
			BoundingBox: el.Box,
		})
	}

	snap.Colors = buckets[Colors].values()
	snap.Fonts = buckets[Fonts].values()
	snap.Spacing = SortSpacing(buckets[Spacing].values())
	snap.Shadows = buckets[Shadows].values()

	return snap, nil
}

// IsInformative reports whether a computed value carries visual information.
// Empty values and the "none", "auto" and "normal" sentinels do not.
func IsInformative(value string) bool {
	switch value {
	case "", "none", "auto", "normal":
		return false
	}
	return true
}

// excerpt truncates text to its first maxTextExcerpt characters and trims surrounding whitespace.
func excerpt(text string) string {
	if utf8.RuneCountInString(text) > maxTextExcerpt {
		text = string([]rune(text)[:maxTextExcerpt])
	}
	return strings.TrimSpace(text)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
