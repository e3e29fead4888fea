// Package fetch retrieves job postings from the web and turns their HTML into
// line-structured plain text suitable for keyword extraction.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for HTTP requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; resume-gap/1.0)"

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 5 << 20

// Result holds the raw content from a URL fetch.
type Result struct {
	URL         string
	HTML        string
	ContentType string
	StatusCode  int
}

// Error represents an error during URL fetching.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures the fetch behavior.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	Headers   map[string]string
	// Browser enables the headless browser fallback for pages whose HTML
	// carries too little text (JavaScript-rendered job boards).
	Browser        bool
	BrowserTimeout time.Duration
	Logger         *zap.Logger
}

// DefaultOptions returns sensible defaults for fetching.
func DefaultOptions() *Options {
	return &Options{
		Timeout:        DefaultTimeout,
		UserAgent:      DefaultUserAgent,
		BrowserTimeout: DefaultBrowserTimeout,
		Logger:         zap.NewNop(),
	}
}

// withDefaults returns a copy of o with zero fields filled in.
func (o *Options) withDefaults() Options {
	out := *DefaultOptions()
	if o == nil {
		return out
	}
	merged := *o
	if merged.Timeout <= 0 {
		merged.Timeout = out.Timeout
	}
	if merged.UserAgent == "" {
		merged.UserAgent = out.UserAgent
	}
	if merged.BrowserTimeout <= 0 {
		merged.BrowserTimeout = out.BrowserTimeout
	}
	if merged.Logger == nil {
		merged.Logger = out.Logger
	}
	return merged
}

// IsURL reports whether s is an absolute http(s) URL.
func IsURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// URL retrieves HTML content from a URL.
func URL(ctx context.Context, urlStr string, opts *Options) (*Result, error) {
	o := opts.withDefaults()

	if !IsURL(urlStr) {
		return nil, &Error{URL: urlStr, Message: "invalid URL"}
	}

	client := &http.Client{Timeout: o.Timeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", o.UserAgent)
	for key, value := range o.Headers {
		req.Header.Set(key, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "failed to read response body", Cause: err}
	}

	result := &Result{
		URL:         urlStr,
		HTML:        string(body),
		ContentType: resp.Header.Get("Content-Type"),
		StatusCode:  resp.StatusCode,
	}

	if resp.StatusCode != http.StatusOK {
		return result, &Error{URL: urlStr, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	return result, nil
}

// Posting is the text of a job posting fetched from the web.
type Posting struct {
	URL      string
	Platform Platform
	Text     string
	// Rendered is set when the text came from the headless browser.
	Rendered bool
}

// JobPosting fetches urlStr and extracts the job description text using the
// selectors of the detected job board.
func JobPosting(ctx context.Context, urlStr string, opts *Options) (*Posting, error) {
	o := opts.withDefaults()
	platform := DetectPlatform(urlStr)

	res, err := URL(ctx, urlStr, &o)
	if err != nil {
		return nil, err
	}

	text, err := PostingText(res.HTML, platform)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "failed to parse HTML", Cause: err}
	}
	posting := &Posting{URL: urlStr, Platform: platform, Text: text}

	if o.Browser && NeedsRender(text) {
		o.Logger.Info("page text too short, rendering in headless browser",
			zap.String("url", urlStr),
			zap.String("platform", string(platform)),
			zap.Int("text_length", len(text)),
		)
		html, err := Render(ctx, urlStr, o.BrowserTimeout)
		if err != nil {
			return nil, &Error{URL: urlStr, Message: "browser rendering failed", Cause: err}
		}
		if rendered, err := PostingText(html, platform); err == nil && len(rendered) > len(text) {
			posting.Text = rendered
			posting.Rendered = true
		}
	}

	if strings.TrimSpace(posting.Text) == "" {
		return nil, &Error{URL: urlStr, Message: "no job description text found"}
	}
	return posting, nil
}

// PostingText extracts job description text from a posting page.
func PostingText(html string, platform Platform) (string, error) {
	return HTMLToText(html, PlatformContentSelectors(platform), PlatformNoiseSelectors(platform)...)
}
