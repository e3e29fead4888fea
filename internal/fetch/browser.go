package fetch

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/chromedp/chromedp"
)

// DefaultBrowserTimeout bounds a headless browser render.
const DefaultBrowserTimeout = 45 * time.Second

// MinContentLength is the shortest extracted text accepted without a browser render.
const MinContentLength = 500

// NeedsRender reports whether text is short enough that the page is probably
// rendered client-side.
func NeedsRender(text string) bool {
	return utf8.RuneCountInString(text) < MinContentLength
}

// Render loads urlStr in headless Chrome and returns the rendered HTML.
// Chrome or Chromium must be installed.
func Render(ctx context.Context, urlStr string, timeout time.Duration) (string, error) {
	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(urlStr),
		chromedp.WaitReady("body"),
		// Give client-side rendering time to populate the posting.
		chromedp.Sleep(3*time.Second),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("browser rendering failed: %w", err)
	}
	return html, nil
}
