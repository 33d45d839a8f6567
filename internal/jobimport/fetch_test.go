package jobimport

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText_StripsNoise(t *testing.T) {
	html := `<html><body>
		<nav>Home | Jobs | About</nav>
		<script>trackVisit();</script>
		<main>
			<h1>Backend Engineer</h1>
			<p>We build payment infrastructure.</p>
		</main>
		<footer>© Example Corp</footer>
	</body></html>`

	text, err := extractText(html)
	require.NoError(t, err)

	assert.Contains(t, text, "Backend Engineer")
	assert.Contains(t, text, "payment infrastructure")
	assert.NotContains(t, text, "Home | Jobs")
	assert.NotContains(t, text, "trackVisit")
	assert.NotContains(t, text, "Example Corp")
}

func TestExtractText_PrefersJobDescriptionBlock(t *testing.T) {
	html := `<html><body>
		<div class="related-jobs">Other openings you might like</div>
		<div class="job-description-body">Design and run Go services.</div>
	</body></html>`

	text, err := extractText(html)
	require.NoError(t, err)
	assert.Contains(t, text, "Design and run Go services.")
	assert.NotContains(t, text, "Other openings")
}

func TestExtractText_FallsBackToBody(t *testing.T) {
	text, err := extractText(`<html><body><p>Plain posting text.</p></body></html>`)
	require.NoError(t, err)
	assert.Equal(t, "Plain posting text.", text)
}

func TestExtractText_CollapsesBlankLines(t *testing.T) {
	text, err := extractText("<html><body><main>line one\n\n\n   line two   \n</main></body></html>")
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two", text)
}

func TestFetchPostingText_InvalidURL(t *testing.T) {
	_, err := FetchPostingText(context.Background(), "not-a-url")
	assert.Error(t, err)

	_, err = FetchPostingText(context.Background(), "")
	assert.Error(t, err)
}

func TestFetchPostingText_HTTPErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := FetchPostingText(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestFetchPostingText_StaticContentServed(t *testing.T) {
	body := "<html><body><main>" + strings.Repeat("A senior Go engineer builds reliable systems. ", 20) + "</main></body></html>"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("User-Agent"), "HireLoop")
		fmt.Fprint(w, body)
	}))
	defer srv.Close()

	text, err := FetchPostingText(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Contains(t, text, "senior Go engineer")
	assert.GreaterOrEqual(t, len(text), minContentLength)
}
