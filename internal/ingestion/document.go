// Package ingestion reads resumes and job descriptions from disk or the web
// and returns their cleaned plain text.
package ingestion

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-gap/internal/fetch"
)

// Format is a supported document format.
type Format string

// Supported formats.
const (
	FormatText     Format = "txt"
	FormatMarkdown Format = "md"
	FormatPDF      Format = "pdf"
	FormatDOCX     Format = "docx"
	FormatHTML     Format = "html"
)

// maxConcurrentReads bounds IngestSources.
const maxConcurrentReads = 4

// Document is a cleaned document ready for keyword extraction.
type Document struct {
	Path     string    `json:"path"`
	Text     string    `json:"text"`
	Metadata *Metadata `json:"metadata"`
}

// DetectFormat maps a file extension to a Format.
func DetectFormat(path string) (Format, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "txt", "text", "":
		return FormatText, nil
	case "md", "markdown":
		return FormatMarkdown, nil
	case "pdf":
		return FormatPDF, nil
	case "docx":
		return FormatDOCX, nil
	case "html", "htm":
		return FormatHTML, nil
	default:
		return "", &UnsupportedFormatError{Path: path, Format: ext}
	}
}

// ExtractText pulls plain text out of raw document bytes. path is only used in errors.
func ExtractText(path string, format Format, data []byte) (string, error) {
	switch format {
	case FormatText, FormatMarkdown:
		return string(data), nil
	case FormatPDF:
		text, err := extractPDFText(data)
		if err != nil {
			return "", &ExtractionError{Path: path, Format: format, Cause: err}
		}
		return text, nil
	case FormatDOCX:
		text, err := extractDOCXText(data)
		if err != nil {
			return "", &ExtractionError{Path: path, Format: format, Cause: err}
		}
		return text, nil
	case FormatHTML:
		text, err := fetch.HTMLToText(string(data), fetch.JobPostingSelectors())
		if err != nil {
			return "", &ExtractionError{Path: path, Format: format, Cause: err}
		}
		return text, nil
	default:
		return "", &UnsupportedFormatError{Path: path, Format: string(format)}
	}
}

// IngestFromFile reads a document, extracts and cleans its text, and returns it with metadata.
func IngestFromFile(ctx context.Context, path string) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %w", err)
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	raw, err := ExtractText(path, format, content)
	if err != nil {
		return nil, err
	}

	cleaned := CleanText(raw)
	return &Document{
		Path:     path,
		Text:     cleaned,
		Metadata: NewMetadata(cleaned, path, format),
	}, nil
}

// IngestFromURL fetches a job posting and returns its cleaned text.
func IngestFromURL(ctx context.Context, url string, opts *fetch.Options) (*Document, error) {
	posting, err := fetch.JobPosting(ctx, url, opts)
	if err != nil {
		return nil, err
	}

	cleaned := CleanText(posting.Text)
	return &Document{
		Path:     url,
		Text:     cleaned,
		Metadata: NewMetadata(cleaned, url, FormatHTML),
	}, nil
}

// Ingest reads source as a URL when it is one and as a file otherwise.
func Ingest(ctx context.Context, source string, opts *fetch.Options) (*Document, error) {
	if fetch.IsURL(source) {
		return IngestFromURL(ctx, source, opts)
	}
	return IngestFromFile(ctx, source)
}

// IngestFiles ingests several documents concurrently. Results keep the
// order of paths; the first failure cancels the rest.
func IngestFiles(ctx context.Context, paths []string) ([]*Document, error) {
	return IngestSources(ctx, paths, nil)
}

// IngestSources is IngestFiles for a mix of file paths and URLs.
func IngestSources(ctx context.Context, paths []string, opts *fetch.Options) ([]*Document, error) {
	docs := make([]*Document, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentReads)
	for i, path := range paths {
		g.Go(func() error {
			doc, err := Ingest(ctx, path, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}
