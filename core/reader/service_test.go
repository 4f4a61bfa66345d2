package reader

import (
	"context"
	"strings"
	"testing"
	"time"

	coreerrors "lakeshow-api/core/errors"
	"lakeshow-api/core/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articleURL = "https://news.example.com/lakers/ot-win"

func articleHTML() string {
	paragraph := "<p>The Lakers outlasted the Warriors in overtime on Monday night, " +
		"leaning on a late defensive stand and a pair of clutch free throws to " +
		"close out a game that swung back and forth for four quarters.</p>"
	return `<!DOCTYPE html><html><head>
<title>Lakers win in overtime | Example News</title>
<meta property="og:site_name" content="Example News">
<meta name="author" content="Jane Reporter">
</head><body>
<nav><a href="/">Home</a><a href="/nba">NBA</a></nav>
<article><h1>Lakers win in overtime</h1>` + strings.Repeat(paragraph, 6) + `</article>
<footer>Copyright Example News</footer>
</body></html>`
}

func pageClient(status int, body string, calls *int) *mockHTTPClient {
	return &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			*calls++
			return &mockResponse{statusCode: status, body: body}, nil
		},
	}
}

func TestService_Extract(t *testing.T) {
	calls := 0
	svc := NewService(interfaces.Dependencies{HTTPClient: pageClient(200, articleHTML(), &calls)}, time.Hour)

	view, err := svc.Extract(context.Background(), articleURL+"#comments")

	require.NoError(t, err)
	assert.Equal(t, articleURL, view.URL)
	assert.Contains(t, view.TextContent, "clutch free throws")
	assert.NotContains(t, view.TextContent, "Copyright")
	assert.Equal(t, "Example News", view.SiteName)
	assert.Greater(t, view.Length, 0)
	assert.Contains(t, view.Markdown, "clutch free throws")
	assert.NotContains(t, view.Markdown, "\n\n\n")
}

func TestService_Extract_Cached(t *testing.T) {
	calls := 0
	cache := &mockCache{
		getFunc: func(ctx context.Context, key string) ([]byte, error) {
			assert.Equal(t, "reader:"+articleURL, key)
			return []byte(`{"url":"` + articleURL + `","title":"cached"}`), nil
		},
	}
	svc := NewService(interfaces.Dependencies{HTTPClient: pageClient(200, "", &calls), Cache: cache}, time.Hour)

	view, err := svc.Extract(context.Background(), articleURL)

	require.NoError(t, err)
	assert.Equal(t, "cached", view.Title)
	assert.Zero(t, calls)
}

func TestService_Extract_InvalidURL(t *testing.T) {
	calls := 0
	svc := NewService(interfaces.Dependencies{HTTPClient: pageClient(200, "", &calls)}, time.Hour)

	for _, raw := range []string{"", "   ", "not a url", "ftp://example.com/file", "/relative/path"} {
		_, err := svc.Extract(context.Background(), raw)
		assert.True(t, coreerrors.IsValidation(err), "expected validation error for %q, got %v", raw, err)
	}
	assert.Zero(t, calls)
}

func TestService_Extract_UpstreamError(t *testing.T) {
	calls := 0
	svc := NewService(interfaces.Dependencies{HTTPClient: pageClient(404, "gone", &calls)}, time.Hour)

	_, err := svc.Extract(context.Background(), articleURL)

	apiErr, ok := coreerrors.AsExternalAPI(err)
	require.True(t, ok)
	assert.Equal(t, 404, apiErr.StatusCode)
	assert.Equal(t, "news.example.com", apiErr.API)
}

func TestBuildMarkdown(t *testing.T) {
	got := buildMarkdown("Title", "Author", "Site", "Body\r\n\n\n\nMore  \nText")

	assert.Equal(t, "# Title\n\n**Author:** Author | **Source:** Site\n\n---\n\nBody\n\nMore\nText", got)
}

func TestBuildMarkdown_NoMetadata(t *testing.T) {
	assert.Equal(t, "Body", buildMarkdown("", "", "", "  Body  "))
}
