package browser

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"github.com/chromedp/chromedp"
)

// Config controls how the headless Chrome process is started.
type Config struct {
	Headless  bool
	NoSandbox bool   // pass --no-sandbox and --disable-setuid-sandbox
	ExecPath  string // empty = look up Chrome/Chromium on PATH
}

// DefaultConfig mirrors the flags commonly required to run Chrome inside containers.
func DefaultConfig() Config {
	return Config{Headless: true, NoSandbox: true}
}

// Browser owns a single headless Chrome process. It must be released with Close.
type Browser struct {
	ctx         context.Context
	cancel      context.CancelFunc
	allocCancel context.CancelFunc

	closeOnce sync.Once
	closeErr  error
}

// Launch starts a browser process bound to ctx. The process is running when Launch returns.
func Launch(ctx context.Context, cfg Config) (*Browser, error) {
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, allocatorOptions(cfg)...)
	browserCtx, cancel := chromedp.NewContext(allocCtx)

	// The first Run allocates the browser; it must not use a deadline-bound context.
	if err := chromedp.Run(browserCtx); err != nil {
		cancel()
		allocCancel()
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}

	return &Browser{ctx: browserCtx, cancel: cancel, allocCancel: allocCancel}, nil
}

func allocatorOptions(cfg Config) []chromedp.ExecAllocatorOption {
	opts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
	if !cfg.Headless {
		opts = append(opts, chromedp.Flag("headless", false))
	}
	if cfg.NoSandbox {
		opts = append(opts, chromedp.NoSandbox, chromedp.Flag("disable-setuid-sandbox", true))
	}
	if cfg.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(cfg.ExecPath))
	}
	return opts
}

// NewPage opens a new tab in its own target.
func (b *Browser) NewPage() (*Page, error) {
	tabCtx, cancel := chromedp.NewContext(b.ctx)
	if err := chromedp.Run(tabCtx); err != nil {
		cancel()
		return nil, fmt.Errorf("failed to open page: %w", err)
	}
	return &Page{ctx: tabCtx, cancel: cancel}, nil
}

// Close shuts the browser down and waits for the process to exit. It is safe to call more than once.
func (b *Browser) Close() error {
	b.closeOnce.Do(func() {
		if err := chromedp.Cancel(b.ctx); err != nil {
			b.closeErr = fmt.Errorf("failed to close browser: %w", err)
		}
		b.cancel()
		b.allocCancel()
	})
	return b.closeErr
}

// ParseTargetURL validates that rawURL is an absolute http(s) URL with a host.
func ParseTargetURL(rawURL string) (*url.URL, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL %q: %w", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid URL %q: must be absolute with an http or https scheme", rawURL)
	}
	if u.Hostname() == "" {
		return nil, fmt.Errorf("invalid URL %q: missing host", rawURL)
	}
	return u, nil
}
