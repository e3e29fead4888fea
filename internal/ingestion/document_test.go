package ingestion

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"resume.txt", FormatText},
		{"resume", FormatText},
		{"job.MD", FormatMarkdown},
		{"resume.pdf", FormatPDF},
		{"resume.docx", FormatDOCX},
		{"posting.HTM", FormatHTML},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := DetectFormat(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectFormat_Unsupported(t *testing.T) {
	_, err := DetectFormat("resume.odt")

	var formatErr *UnsupportedFormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, "odt", formatErr.Format)
	assert.Contains(t, err.Error(), "resume.odt")
}

func TestExtractText_InvalidBinaryFormats(t *testing.T) {
	for _, format := range []Format{FormatPDF, FormatDOCX} {
		t.Run(string(format), func(t *testing.T) {
			_, err := ExtractText("broken."+string(format), format, []byte("not a real document"))

			var extractErr *ExtractionError
			require.ErrorAs(t, err, &extractErr)
			assert.Equal(t, format, extractErr.Format)
			assert.NotNil(t, errors.Unwrap(err))
		})
	}
}

func TestIngestFromFile_Markdown(t *testing.T) {
	doc, err := IngestFromFile(context.Background(), filepath.Join("testdata", "job_description.md"))
	require.NoError(t, err)

	assert.Contains(t, doc.Text, "# Senior Backend Engineer")
	assert.Contains(t, doc.Text, "- Python and SQL")
	assert.Contains(t, doc.Text, "- Strong communication skills")
	assert.Equal(t, FormatMarkdown, doc.Metadata.Format)
	assert.Len(t, doc.Metadata.Hash, 64)
	assert.Positive(t, doc.Metadata.Words)
	assert.NotEmpty(t, doc.Metadata.Timestamp)
}

func TestIngestFromFile_FileNotFound(t *testing.T) {
	doc, err := IngestFromFile(context.Background(), "/nonexistent/file.txt")

	assert.Nil(t, doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")
}

func TestIngestFromFile_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := IngestFromFile(ctx, filepath.Join("testdata", "job_description.md"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestIngestFromFile_HashFollowsContent(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.txt")
	second := filepath.Join(dir, "b.txt")
	same := filepath.Join(dir, "c.txt")
	require.NoError(t, os.WriteFile(first, []byte("Content 1"), 0644))
	require.NoError(t, os.WriteFile(second, []byte("Content 2"), 0644))
	require.NoError(t, os.WriteFile(same, []byte("Content   1\n\n"), 0644))

	docs, err := IngestFiles(context.Background(), []string{first, second, same})
	require.NoError(t, err)
	require.Len(t, docs, 3)

	assert.Equal(t, first, docs[0].Path)
	assert.NotEqual(t, docs[0].Metadata.Hash, docs[1].Metadata.Hash)
	assert.Equal(t, docs[0].Metadata.Hash, docs[2].Metadata.Hash)
}

func TestIngestFiles_FailsOnAnyError(t *testing.T) {
	_, err := IngestFiles(context.Background(), []string{
		filepath.Join("testdata", "job_description.md"),
		"missing.txt",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.txt")
}

func TestMetadata_ToJSON(t *testing.T) {
	meta := NewMetadata("python and sql", "resume.txt", FormatText)

	data, err := meta.ToJSON()
	require.NoError(t, err)

	assert.Contains(t, string(data), `"format": "txt"`)
	assert.Contains(t, string(data), `"words": 3`)
	assert.Equal(t, ContentHash("python and sql"), meta.Hash)
}

const postingHTML = `<html><body>
<nav>Careers</nav>
<div class="job-description">
<h2>Data Engineer</h2>
<h3>Requirements</h3>
<ul><li>Python and Spark</li><li>3+ years experience</li></ul>
</div>
</body></html>`

func TestIngestFromFile_HTML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "posting.html")
	require.NoError(t, os.WriteFile(path, []byte(postingHTML), 0644))

	doc, err := IngestFromFile(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "Data Engineer\nRequirements\n- Python and Spark\n- 3+ years experience", doc.Text)
	assert.Equal(t, FormatHTML, doc.Metadata.Format)
}

func TestIngestSources_MixedFilesAndURLs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(postingHTML))
	}))
	defer server.Close()

	file := filepath.Join("testdata", "job_description.md")
	docs, err := IngestSources(context.Background(), []string{file, server.URL + "/jobs/42"}, nil)
	require.NoError(t, err)
	require.Len(t, docs, 2)

	assert.Equal(t, FormatMarkdown, docs[0].Metadata.Format)
	assert.Equal(t, server.URL+"/jobs/42", docs[1].Path)
	assert.Equal(t, FormatHTML, docs[1].Metadata.Format)
	assert.Contains(t, docs[1].Text, "- Python and Spark")
	assert.NotContains(t, docs[1].Text, "Careers")
}

func TestIngestFromURL_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusGone)
	}))
	defer server.Close()

	doc, err := IngestFromURL(context.Background(), server.URL, nil)
	assert.Nil(t, doc)
	assert.ErrorContains(t, err, "410")
}
