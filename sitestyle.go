package sitestyle

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/multierr"

	"github.com/hellenic-development/site-style-extractor/pkg/browser"
	"github.com/hellenic-development/site-style-extractor/pkg/extractor"
	"github.com/hellenic-development/site-style-extractor/pkg/formatter"
	"github.com/hellenic-development/site-style-extractor/pkg/report"
)

// Version is the released version of the extractor.
const Version = "0.3.0"

// DefaultNavigationTimeout bounds each page load, including the wait for network idle.
const DefaultNavigationTimeout = 30 * time.Second

// Options configures the extraction.
type Options struct {
	URL               string        // absolute http(s) URL of the page to analyze
	OutputDir         string        // "" = ./site-copy-<host without www>
	Breakpoints       []string      // breakpoint names; empty = full catalog
	NavigationTimeout time.Duration // 0 = DefaultNavigationTimeout
	Browser           browser.Config
	Launcher          Launcher // nil = headless Chrome via chromedp
	Logger            Logger   // nil = no logging
	Now               func() time.Time
}

// Logger receives progress messages. A nil Logger means silent operation.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Launcher starts the rendering engine used for one run.
type Launcher func(ctx context.Context, cfg browser.Config) (Browser, error)

// Browser is a running rendering engine. Run closes it on every exit path.
type Browser interface {
	NewPage() (Page, error)
	Close() error
}

// Page is one isolated tab of a Browser.
type Page interface {
	extractor.Document
	SetViewport(width, height int) error
	Navigate(url string, timeout time.Duration) error
	Screenshot() ([]byte, error)
	Close() error
}

// Result contains the extraction output.
type Result struct {
	OutputDir   string
	Breakpoints []extractor.Breakpoint
	Snapshots   []*extractor.StyleSnapshot // catalog order
	Tokens      *extractor.DesignTokenSet
	StyleGuide  string // rendered markdown, also written to STYLE_GUIDE.md
	Files       []string
}

func (o *Options) logInfo(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Infof(f, a...)
	}
}

func (o *Options) logWarn(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Warnf(f, a...)
	}
}

func (o *Options) logError(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Errorf(f, a...)
	}
}

// DefaultOutputDir returns ./site-copy-<host without www> for rawURL.
func DefaultOutputDir(rawURL string) string {
	return "./site-copy-" + formatter.HostLabel(rawURL)
}

// Run samples the page at every breakpoint, aggregates the design tokens and writes the
// screenshots, JSON snapshots, style guide and README below Options.OutputDir.
//
// Breakpoints are processed one at a time. Any failure aborts the run; files written for
// earlier breakpoints are left in place.
func Run(ctx context.Context, opts Options) (result *Result, err error) {
	// Apply defaults.
	if _, err := browser.ParseTargetURL(opts.URL); err != nil {
		return nil, err
	}
	if opts.OutputDir == "" {
		opts.OutputDir = DefaultOutputDir(opts.URL)
	}
	if opts.NavigationTimeout <= 0 {
		opts.NavigationTimeout = DefaultNavigationTimeout
	}
	if opts.Launcher == nil {
		opts.Launcher = launchChrome
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	breakpoints, err := extractor.SelectBreakpoints(opts.Breakpoints)
	if err != nil {
		return nil, err
	}

	layout := report.NewLayout(opts.OutputDir)
	if err := layout.Prepare(); err != nil {
		return nil, err
	}

	opts.logInfo("Starting extraction for %s", opts.URL)
	opts.logInfo("Output directory: %s", opts.OutputDir)

	b, err := opts.Launcher(ctx, opts.Browser)
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w", err)
	}
	defer func() {
		if closeErr := b.Close(); closeErr != nil {
			err = multierr.Append(err, fmt.Errorf("close browser: %w", closeErr))
		}
		if err != nil {
			result = nil
		}
	}()

	result = &Result{OutputDir: opts.OutputDir, Breakpoints: breakpoints}

	for _, bp := range breakpoints {
		opts.logInfo("Analyzing %s (%dx%d)...", bp.Name, bp.Width, bp.Height)

		snap, files, err := captureBreakpoint(&opts, b, layout, bp)
		if err != nil {
			opts.logError("Breakpoint %s failed: %v", bp.Name, err)
			return nil, fmt.Errorf("breakpoint %s: %w", bp.Name, err)
		}
		result.Snapshots = append(result.Snapshots, snap)
		result.Files = append(result.Files, files...)
	}

	generatedAt := opts.Now()
	result.Tokens = extractor.Aggregate(result.Snapshots)
	result.StyleGuide = formatter.StyleGuide(result.Tokens, breakpoints, opts.URL, generatedAt)

	guidePath, err := layout.WriteStyleGuide(result.StyleGuide)
	if err != nil {
		return nil, err
	}
	opts.logInfo("Style guide generated: %s", guidePath)

	dataPath, err := layout.WriteCompleteExtraction(result.Snapshots)
	if err != nil {
		return nil, err
	}
	opts.logInfo("Complete data saved: %s", dataPath)

	readmePath, err := layout.WriteReadme(formatter.Readme(opts.URL, generatedAt))
	if err != nil {
		return nil, err
	}

	result.Files = append(result.Files, guidePath, dataPath, readmePath)
	return result, nil
}

// captureBreakpoint samples one breakpoint in its own page. The screenshot is written
// before the snapshot, and the page is closed on every path.
func captureBreakpoint(opts *Options, b Browser, layout report.Layout, bp extractor.Breakpoint) (snap *extractor.StyleSnapshot, files []string, err error) {
	page, err := b.NewPage()
	if err != nil {
		return nil, nil, err
	}
	defer func() {
		if closeErr := page.Close(); closeErr != nil {
			err = multierr.Append(err, closeErr)
		}
		if err != nil {
			snap, files = nil, nil
		}
	}()

	if err := page.SetViewport(bp.Width, bp.Height); err != nil {
		return nil, nil, err
	}
	if err := page.Navigate(opts.URL, opts.NavigationTimeout); err != nil {
		return nil, nil, err
	}

	opts.logInfo("Extracting styles from %s...", opts.URL)
	snap, err = extractor.Sample(page)
	if err != nil {
		return nil, nil, err
	}
	snap.Breakpoint = bp.Name
	if len(snap.Components) == 0 {
		opts.logWarn("No styled elements found at %s", bp.Name)
	}

	png, err := page.Screenshot()
	if err != nil {
		return nil, nil, err
	}
	shotPath, err := layout.WriteScreenshot(bp, png)
	if err != nil {
		return nil, nil, err
	}
	opts.logInfo("Screenshot saved: %s", shotPath)

	dataPath, err := layout.WriteSnapshot(snap)
	if err != nil {
		return nil, nil, err
	}

	return snap, []string{shotPath, dataPath}, nil
}

// chromeBrowser adapts *browser.Browser to the Browser interface.
type chromeBrowser struct {
	*browser.Browser
}

func (c chromeBrowser) NewPage() (Page, error) {
	p, err := c.Browser.NewPage()
	if err != nil {
		return nil, err
	}
	return p, nil
}

func launchChrome(ctx context.Context, cfg browser.Config) (Browser, error) {
	b, err := browser.Launch(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return chromeBrowser{b}, nil
}

// ParseBreakpointNames parses a comma-separated list of breakpoint names, dropping empty entries.
func ParseBreakpointNames(namesStr string) []string {
	parts := strings.Split(namesStr, ",")
	result := make([]string, 0, len(parts))

	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
