package extractor

import (
	"fmt"
	"strings"
)

// Breakpoint is a named viewport size at which a page is sampled.
type Breakpoint struct {
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

var breakpoints = [...]Breakpoint{
	{Name: "mobile", Width: 320, Height: 568},
	{Name: "mobile-large", Width: 375, Height: 667},
	{Name: "tablet", Width: 768, Height: 1024},
	{Name: "desktop", Width: 1024, Height: 768},
	{Name: "desktop-large", Width: 1440, Height: 900},
	{Name: "desktop-xl", Width: 1920, Height: 1080},
}

// Breakpoints returns the breakpoint catalog ordered from smallest to largest.
// Each call returns a fresh slice.
func Breakpoints() []Breakpoint {
	out := make([]Breakpoint, len(breakpoints))
	copy(out, breakpoints[:])
	return out
}

// SelectBreakpoints returns the catalog entries with the given names, in catalog order.
// An empty names list selects the whole catalog. Unknown names are an error.
func SelectBreakpoints(names []string) ([]Breakpoint, error) {
	if len(names) == 0 {
		return Breakpoints(), nil
	}

	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		wanted[strings.ToLower(strings.TrimSpace(name))] = true
	}

	var selected []Breakpoint
	for _, bp := range breakpoints {
		if wanted[bp.Name] {
			selected = append(selected, bp)
			delete(wanted, bp.Name)
		}
	}

	if len(wanted) > 0 {
		unknown := make([]string, 0, len(wanted))
		for _, name := range names {
			name = strings.ToLower(strings.TrimSpace(name))
			if wanted[name] {
				unknown = append(unknown, name)
				delete(wanted, name)
			}
		}
		return nil, fmt.Errorf("unknown breakpoint(s): %s", strings.Join(unknown, ", "))
	}

	return selected, nil
}
