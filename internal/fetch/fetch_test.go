package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body>hello</body></html>"))
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Contains(t, result.HTML, "hello")
	assert.Contains(t, result.ContentType, "text/html")
}

func TestURL_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)

	require.Error(t, err)
	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Message, "404")
	require.NotNil(t, result)
	assert.Equal(t, http.StatusNotFound, result.StatusCode)
}

func TestURL_Invalid(t *testing.T) {
	_, err := URL(context.Background(), "not-a-url", nil)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "invalid URL", fetchErr.Message)
}

func TestExtractJobText_JobSelector(t *testing.T) {
	html := `<html><body>
		<nav>Site nav</nav>
		<div class="job-description">Python and SQL developer wanted.</div>
		<footer>Footer junk</footer>
	</body></html>`

	text, err := ExtractJobText(html)

	require.NoError(t, err)
	assert.Equal(t, "Python and SQL developer wanted.", text)
}

func TestExtractJobText_BodyFallback(t *testing.T) {
	html := `<html><body><script>var x = 1;</script><p>Plain posting text.</p></body></html>`

	text, err := ExtractJobText(html)

	require.NoError(t, err)
	assert.Equal(t, "Plain posting text.", text)
	assert.NotContains(t, text, "var x")
}

func TestExtractJobText_CollapsesBlankLines(t *testing.T) {
	html := "<html><body><main>line one\n\n\n   line two  \n</main></body></html>"

	text, err := ExtractJobText(html)

	require.NoError(t, err)
	assert.Equal(t, "line one\nline two", text)
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser("short"))
	assert.True(t, ShouldUseBrowser("   "))
	assert.False(t, ShouldUseBrowser(strings.Repeat("job content ", 50)))
}

func TestJobDescription_StaticPage(t *testing.T) {
	long := strings.Repeat("Seeking a backend developer with Python experience. ", 20)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><div class="job-description">` + long + `</div></body></html>`))
	}))
	defer server.Close()

	text, err := JobDescription(context.Background(), server.URL, nil)

	require.NoError(t, err)
	assert.Contains(t, text, "backend developer")
}
