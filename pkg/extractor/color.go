package extractor

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

var rgbPattern = regexp.MustCompile(`^rgba?\((\d+),\s*(\d+),\s*(\d+)(?:,\s*(\d+(?:\.\d+)?))?\)$`)

// NormalizeColor converts a computed rgb()/rgba() color to lowercase hexadecimal (#rrggbb).
// Translucent colors are annotated with their opacity, e.g. "#1a2b3c (50% opacity)".
// Anything else, including channels above 255, is returned unchanged.
func NormalizeColor(value string) string {
	m := rgbPattern.FindStringSubmatch(value)
	if m == nil {
		return value
	}

	var channels [3]int
	for i := range channels {
		c, err := strconv.Atoi(m[i+1])
		if err != nil || c > 255 {
			return value
		}
		channels[i] = c
	}

	hex := fmt.Sprintf("#%02x%02x%02x", channels[0], channels[1], channels[2])

	alpha := 1.0
	if m[4] != "" {
		a, err := strconv.ParseFloat(m[4], 64)
		if err != nil {
			return value
		}
		alpha = a
	}

	if alpha < 1 {
		return fmt.Sprintf("%s (%d%% opacity)", hex, int(math.Round(alpha*100)))
	}

	return hex
}
