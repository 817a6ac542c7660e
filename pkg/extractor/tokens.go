package extractor

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// DesignTokenSet is the union of the token buckets of all snapshots of a run.
// Colors, fonts and shadows keep first-seen order; spacing is ordered by pixel magnitude.
type DesignTokenSet struct {
	Colors  []string `json:"colors"`
	Fonts   []string `json:"fonts"`
	Spacing []string `json:"spacing"`
	Shadows []string `json:"shadows"`
}

// Bucket names the design token collection a style property contributes to.
type Bucket int

const (
	NoBucket Bucket = iota
	Colors
	Fonts
	Spacing
	Shadows
)

func (b Bucket) String() string {
	switch b {
	case Colors:
		return "colors"
	case Fonts:
		return "fonts"
	case Spacing:
		return "spacing"
	case Shadows:
		return "shadows"
	default:
		return "none"
	}
}

var spacingPattern = regexp.MustCompile(`^\d+(\.\d+)?px$`)

// BucketFor returns the bucket a property is routed to, or NoBucket.
func BucketFor(property string) Bucket {
	switch {
	case property == "color" || property == "background-color" || property == "border-color":
		return Colors
	case property == "font-family":
		return Fonts
	case strings.Contains(property, "margin") || strings.Contains(property, "padding") || property == "gap":
		return Spacing
	case property == "box-shadow" || property == "text-shadow":
		return Shadows
	default:
		return NoBucket
	}
}

// Classify returns the bucket a property value contributes to. The second result is false
// when the value is not a token: colors must be rgb()/rgba() literals and spacing must be an
// exact <number>px literal.
func Classify(property, value string) (Bucket, bool) {
	bucket := BucketFor(property)
	switch bucket {
	case Colors:
		return bucket, strings.HasPrefix(value, "rgb")
	case Spacing:
		return bucket, spacingPattern.MatchString(value)
	case Fonts, Shadows:
		return bucket, true
	default:
		return NoBucket, false
	}
}

// tokenSet is an insertion-ordered set of strings.
type tokenSet struct {
	seen  map[string]struct{}
	order []string
}

func newTokenSet() *tokenSet {
	return &tokenSet{seen: make(map[string]struct{})}
}

func (s *tokenSet) add(v string) {
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.order = append(s.order, v)
}

func (s *tokenSet) addAll(vs []string) {
	for _, v := range vs {
		s.add(v)
	}
}

func (s *tokenSet) values() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

type buckets map[Bucket]*tokenSet

func newBuckets() buckets {
	return buckets{
		Colors:  newTokenSet(),
		Fonts:   newTokenSet(),
		Spacing: newTokenSet(),
		Shadows: newTokenSet(),
	}
}

func (b buckets) add(property, value string) {
	if bucket, ok := Classify(property, value); ok {
		b[bucket].add(value)
	}
}

// SpacingPixels parses the numeric magnitude of a <number>px literal.
// Values that do not parse sort as zero.
func SpacingPixels(value string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSuffix(value, "px"), 64)
	if err != nil {
		return 0
	}
	return f
}

// SortSpacing sorts spacing literals in place by ascending pixel magnitude and returns them.
// Equal magnitudes ("8px", "8.0px") are ordered lexicographically.
func SortSpacing(values []string) []string {
	sort.SliceStable(values, func(i, j int) bool {
		pi, pj := SpacingPixels(values[i]), SpacingPixels(values[j])
		if pi != pj {
			return pi < pj
		}
		return values[i] < values[j]
	})
	return values
}

// Aggregate merges the token buckets of every snapshot into one deduplicated DesignTokenSet.
// Nil snapshots are skipped.
func Aggregate(snapshots []*StyleSnapshot) *DesignTokenSet {
	all := newBuckets()

	for _, snap := range snapshots {
		if snap == nil {
			continue
		}
		all[Colors].addAll(snap.Colors)
		all[Fonts].addAll(snap.Fonts)
		all[Spacing].addAll(snap.Spacing)
		all[Shadows].addAll(snap.Shadows)
	}

	return &DesignTokenSet{
		Colors:  all[Colors].values(),
		Fonts:   all[Fonts].values(),
		Spacing: SortSpacing(all[Spacing].values()),
		Shadows: all[Shadows].values(),
	}
}
