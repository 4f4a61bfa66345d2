// ABOUTME: Request DTOs for the AI-assisted editorial endpoints
// ABOUTME: Maps request bodies onto the assist service's request types

package requests

import (
	"lakeshow-api/core/assist"
	"lakeshow-api/core/domain"
)

// SummaryRequest asks for a summary of pasted text or an article URL
type SummaryRequest struct {
	Text string `json:"text,omitempty" maxLength:"100000" doc:"Text to summarize"`
	URL  string `json:"url,omitempty" doc:"Article URL to read and summarize when no text is given"`
}

// CaptionRequest asks for a social caption for a piece of content
type CaptionRequest struct {
	Title    string `json:"title" maxLength:"500" doc:"Title of the episode, video or article"`
	Text     string `json:"text,omitempty" maxLength:"100000" doc:"Optional body or description"`
	Platform string `json:"platform" enum:"x,instagram,facebook,threads" doc:"Target social platform"`
}

// FormatRequest asks for rough notes to be tidied into Markdown
type FormatRequest struct {
	Text string `json:"text" minLength:"1" maxLength:"100000" doc:"Notes to format"`
}

// ToService converts the body into the service request
func (r SummaryRequest) ToService() assist.SummaryRequest {
	return assist.SummaryRequest{Text: r.Text, URL: r.URL}
}

// ToService converts the body into the service request
func (r CaptionRequest) ToService() assist.CaptionRequest {
	return assist.CaptionRequest{
		Title:    r.Title,
		Text:     r.Text,
		Platform: domain.Platform(r.Platform),
	}
}
