package extractor

import (
	"fmt"
	"testing"
)

func TestNormalizeColor(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "rgb", input: "rgb(26, 43, 60)", want: "#1a2b3c"},
		{name: "rgb without spaces", input: "rgb(26,43,60)", want: "#1a2b3c"},
		{name: "zero padding", input: "rgb(0, 5, 10)", want: "#00050a"},
		{name: "white", input: "rgb(255, 255, 255)", want: "#ffffff"},
		{name: "half transparent", input: "rgba(26, 43, 60, 0.5)", want: "#1a2b3c (50% opacity)"},
		{name: "opacity rounds", input: "rgba(0, 0, 0, 0.125)", want: "#000000 (13% opacity)"},
		{name: "fully transparent", input: "rgba(0, 0, 0, 0)", want: "#000000 (0% opacity)"},
		{name: "alpha one is not annotated", input: "rgba(26, 43, 60, 1)", want: "#1a2b3c"},
		{name: "alpha 1.0 is not annotated", input: "rgba(26, 43, 60, 1.0)", want: "#1a2b3c"},
		{name: "keyword passthrough", input: "currentColor", want: "currentColor"},
		{name: "hex passthrough", input: "#fff", want: "#fff"},
		{name: "channel out of range", input: "rgb(256, 0, 0)", want: "rgb(256, 0, 0)"},
		{name: "trailing text", input: "rgb(1, 2, 3) none", want: "rgb(1, 2, 3) none"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeColor(tt.input); got != tt.want {
				t.Errorf("NormalizeColor(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeColorAllChannels(t *testing.T) {
	for c := 0; c <= 255; c++ {
		input := fmt.Sprintf("rgb(%d, %d, %d)", c, c, c)
		want := fmt.Sprintf("#%02x%02x%02x", c, c, c)
		if got := NormalizeColor(input); got != want {
			t.Fatalf("NormalizeColor(%q) = %q, want %q", input, got, want)
		}
	}
}
