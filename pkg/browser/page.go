package browser

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// networkAlmostIdle is the lifecycle event fired once no more than two connections
// have been active for 500ms.
const networkAlmostIdle = "networkAlmostIdle"

// StatusError reports a main document loaded with a non-2xx HTTP status.
type StatusError struct {
	URL        string
	StatusCode int64
	StatusText string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("navigation to %s failed with status %d %s", e.URL, e.StatusCode, e.StatusText)
}

// Page is a single browser tab.
type Page struct {
	ctx    context.Context
	cancel context.CancelFunc

	closeOnce sync.Once
	closeErr  error
}

// SetViewport resizes the page to width x height CSS pixels.
func (p *Page) SetViewport(width, height int) error {
	if err := chromedp.Run(p.ctx, chromedp.EmulateViewport(int64(width), int64(height))); err != nil {
		return fmt.Errorf("failed to set viewport %dx%d: %w", width, height, err)
	}
	return nil
}

// Navigate loads url and waits until network activity settles. The whole navigation,
// including the idle wait, must complete within timeout.
func (p *Page) Navigate(url string, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(p.ctx, timeout)
	defer cancel()

	tracker := newLifecycleTracker()
	chromedp.ListenTarget(ctx, tracker.handle)

	resp, err := chromedp.RunResponse(ctx,
		page.SetLifecycleEventsEnabled(true),
		chromedp.Navigate(url),
	)
	if err != nil {
		return navigationError(url, timeout, err)
	}
	if err := checkStatus(url, resp); err != nil {
		return err
	}

	var loaderID cdp.LoaderID
	if err := chromedp.Run(ctx, chromedp.ActionFunc(func(ctx context.Context) error {
		tree, err := page.GetFrameTree().Do(ctx)
		if err != nil {
			return err
		}
		loaderID = tree.Frame.LoaderID
		return nil
	})); err != nil {
		return navigationError(url, timeout, err)
	}

	if err := tracker.wait(ctx, loaderID); err != nil {
		return navigationError(url, timeout, err)
	}
	return nil
}

// lifecycleTracker records which document loaders have reached networkAlmostIdle.
// Events for the previous document are keyed by its own loader and never match.
type lifecycleTracker struct {
	mu     sync.Mutex
	idle   map[cdp.LoaderID]bool
	notify chan struct{}
}

func newLifecycleTracker() *lifecycleTracker {
	return &lifecycleTracker{
		idle:   make(map[cdp.LoaderID]bool),
		notify: make(chan struct{}, 1),
	}
}

func (t *lifecycleTracker) handle(ev any) {
	e, ok := ev.(*page.EventLifecycleEvent)
	if !ok || e.Name != networkAlmostIdle {
		return
	}

	t.mu.Lock()
	t.idle[e.LoaderID] = true
	t.mu.Unlock()

	select {
	case t.notify <- struct{}{}:
	default:
	}
}

func (t *lifecycleTracker) wait(ctx context.Context, loaderID cdp.LoaderID) error {
	for {
		t.mu.Lock()
		done := t.idle[loaderID]
		t.mu.Unlock()
		if done {
			return nil
		}

		select {
		case <-t.notify:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func checkStatus(url string, resp *network.Response) error {
	// Responses for non-HTTP documents (about:, data:, file:) carry no status.
	if resp == nil || resp.Status == 0 {
		return nil
	}
	if resp.Status < 200 || resp.Status > 299 {
		return &StatusError{URL: url, StatusCode: resp.Status, StatusText: resp.StatusText}
	}
	return nil
}

func navigationError(url string, timeout time.Duration, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("navigation to %s timed out after %s: %w", url, timeout, err)
	}
	return fmt.Errorf("navigation to %s failed: %w", url, err)
}

// Evaluate runs expression in the page and decodes its JSON-serializable result into out.
func (p *Page) Evaluate(expression string, out any) error {
	if err := chromedp.Run(p.ctx, chromedp.Evaluate(expression, out)); err != nil {
		return fmt.Errorf("failed to evaluate script: %w", err)
	}
	return nil
}

// Screenshot captures the full scrollable page as PNG.
func (p *Page) Screenshot() ([]byte, error) {
	var buf []byte
	// Quality 100 selects lossless PNG encoding.
	if err := chromedp.Run(p.ctx, chromedp.FullScreenshot(&buf, 100)); err != nil {
		return nil, fmt.Errorf("failed to capture screenshot: %w", err)
	}
	return buf, nil
}

// Close closes the tab. It is safe to call more than once.
func (p *Page) Close() error {
	p.closeOnce.Do(func() {
		if err := chromedp.Cancel(p.ctx); err != nil && !errors.Is(err, context.Canceled) {
			p.closeErr = fmt.Errorf("failed to close page: %w", err)
		}
		p.cancel()
	})
	return p.closeErr
}
