// ABOUTME: Service layer implementation for reader view extraction
// ABOUTME: Fetches an article through the shared HTTP client and cleans it with go-readability

package reader

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"regexp"
	"strings"
	"time"

	"lakeshow-api/core/domain"
	coreerrors "lakeshow-api/core/errors"
	"lakeshow-api/core/interfaces"

	md "github.com/JohannesKaufmann/html-to-markdown"
	readability "github.com/go-shiori/go-readability"
)

// maxPageBytes caps how much of a page is read before parsing
const maxPageBytes = 5 << 20

var (
	excessNewlines = regexp.MustCompile(`\n{3,}`)
	trailingSpace  = regexp.MustCompile(`[ \t]+\n`)
)

// Service extracts readable articles
type Service struct {
	deps interfaces.Dependencies
	ttl  time.Duration
}

// NewService creates a reader service caching extractions for ttl
func NewService(deps interfaces.Dependencies, ttl time.Duration) *Service {
	return &Service{
		deps: deps,
		ttl:  ttl,
	}
}

// Extract returns the reader view of the page at rawURL
func (s *Service) Extract(ctx context.Context, rawURL string) (*domain.ReaderView, error) {
	pageURL, err := validateURL(rawURL)
	if err != nil {
		return nil, err
	}

	key := "reader:" + pageURL.String()
	if view, ok := s.cached(ctx, key); ok {
		return view, nil
	}

	if s.deps.HTTPClient == nil {
		return nil, errors.New("HTTP client not configured")
	}

	resp, err := s.deps.HTTPClient.Get(ctx, pageURL.String())
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to fetch article")
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    "article returned non-200 status code",
			API:        pageURL.Host,
		}
	}

	article, err := readability.FromReader(io.LimitReader(resp.Body(), maxPageBytes), pageURL)
	if err != nil {
		s.deps.Log().Error("Failed to parse reader view", map[string]interface{}{
			"url":   pageURL.String(),
			"error": err.Error(),
		})
		return nil, coreerrors.WrapError(err, "failed to parse article")
	}

	view := &domain.ReaderView{
		URL:         pageURL.String(),
		Title:       article.Title,
		Byline:      article.Byline,
		Excerpt:     article.Excerpt,
		Content:     article.Content,
		TextContent: article.TextContent,
		SiteName:    article.SiteName,
		Image:       article.Image,
		Favicon:     article.Favicon,
		Length:      article.Length,
	}

	if view.Content != "" {
		converter := md.NewConverter("", true, nil)
		markdown, err := converter.ConvertString(view.Content)
		if err != nil {
			// Markdown is optional; the HTML is still served
			s.deps.Log().Debug("Failed to convert HTML to markdown", map[string]interface{}{
				"url":   view.URL,
				"error": err.Error(),
			})
		} else {
			view.Markdown = buildMarkdown(view.Title, view.Byline, view.SiteName, markdown)
		}
	}

	s.store(ctx, key, view)
	return view, nil
}

func validateURL(rawURL string) (*url.URL, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, &coreerrors.ValidationError{Field: "url", Message: "url is required"}
	}

	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, &coreerrors.ValidationError{Field: "url", Message: "must be an absolute http(s) URL"}
	}
	u.Fragment = ""
	return u, nil
}

// buildMarkdown prefixes the converted article with a title and a metadata line
func buildMarkdown(title, author, siteName, content string) string {
	var b strings.Builder

	if title != "" {
		b.WriteString("# ")
		b.WriteString(title)
		b.WriteString("\n\n")
	}

	var meta []string
	if author != "" {
		meta = append(meta, fmt.Sprintf("**Author:** %s", author))
	}
	if siteName != "" {
		meta = append(meta, fmt.Sprintf("**Source:** %s", siteName))
	}
	if len(meta) > 0 {
		b.WriteString(strings.Join(meta, " | "))
		b.WriteString("\n\n---\n\n")
	}

	b.WriteString(cleanMarkdown(content))
	return b.String()
}

// cleanMarkdown normalizes line endings and collapses runs of blank lines
func cleanMarkdown(markdown string) string {
	markdown = strings.ReplaceAll(markdown, "\r\n", "\n")
	markdown = strings.ReplaceAll(markdown, "\r", "\n")
	markdown = trailingSpace.ReplaceAllString(markdown, "\n")
	markdown = excessNewlines.ReplaceAllString(markdown, "\n\n")
	return strings.TrimSpace(markdown)
}

func (s *Service) cached(ctx context.Context, key string) (*domain.ReaderView, bool) {
	if s.deps.Cache == nil {
		return nil, false
	}

	data, err := s.deps.Cache.Get(ctx, key)
	if err != nil || len(data) == 0 {
		return nil, false
	}

	var view domain.ReaderView
	if err := json.Unmarshal(data, &view); err != nil {
		return nil, false
	}
	return &view, true
}

func (s *Service) store(ctx context.Context, key string, view *domain.ReaderView) {
	if s.deps.Cache == nil {
		return
	}

	data, err := json.Marshal(view)
	if err != nil {
		return
	}
	_ = s.deps.Cache.Set(ctx, key, data, s.ttl)
}
