// ABOUTME: Domain models and types for reader view functionality
// ABOUTME: Defines the structure for articles extracted from aggregated news links

package domain

// ReaderView represents extracted article content from a webpage
type ReaderView struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Byline      string `json:"byline,omitempty"`
	Excerpt     string `json:"excerpt,omitempty"`
	Content     string `json:"content"`     // HTML content
	TextContent string `json:"textContent"` // Plain text content
	SiteName    string `json:"siteName"`
	Image       string `json:"image"`
	Favicon     string `json:"favicon"`
	Length      int    `json:"length"`

	// Markdown is the article rendered as Markdown with a metadata header
	Markdown string `json:"markdown,omitempty"`
}
