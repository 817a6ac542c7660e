// Package sitestyle extracts the visual design of a live web page by rendering it in
// headless Chrome at a fixed set of breakpoints and sampling the computed styles of its
// significant elements. The samples are aggregated into design tokens (colors, fonts,
// spacing, shadows) and written out as a markdown style guide plus JSON data.
//
// The CLI lives in cmd/site-style-extractor; this root package exposes the same
// pipeline as a Go API.
//
// # Quick start
//
//	result, err := sitestyle.Run(context.Background(), sitestyle.Options{
//	    URL:       "https://www.example.com",
//	    OutputDir: "./site-copy-example.com",
//	    Browser:   browser.DefaultConfig(),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Tokens.Colors)
//
// # Output
//
// Below the output directory Run writes:
//
//	original/<breakpoint>-<width>px.png   full-page screenshot per breakpoint
//	data/<breakpoint>-styles.json         snapshot per breakpoint
//	data/complete-extraction.json         all snapshots, in breakpoint order
//	STYLE_GUIDE.md                        aggregated design tokens
//	README.md                             replication workflow notes
//
// The replica/ and comparison/ directories are created empty.
//
// # Logging
//
// Pass a [Logger] implementation in [Options.Logger] to receive progress
// messages. A nil Logger silences all output.
//
// # Testing without a browser
//
// [Options.Launcher] replaces the chromedp-backed browser. Any type implementing
// [Browser] and [Page] can drive the pipeline.
package sitestyle
