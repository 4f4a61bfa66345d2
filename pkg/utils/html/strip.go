// ABOUTME: HTML utilities for turning feed markup into plain text
// ABOUTME: Uses goquery so entities, scripts and nested markup are handled by a real parser

package html

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// StripHTML returns the visible text of an HTML fragment with whitespace collapsed
func StripHTML(fragment string) string {
	if strings.TrimSpace(fragment) == "" {
		return ""
	}
	if !strings.Contains(fragment, "<") && !strings.Contains(fragment, "&") {
		return collapseSpace(fragment)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return collapseSpace(fragment)
	}
	doc.Find("script, style, noscript").Remove()
	// keep words in adjacent block elements apart
	doc.Find("p, br, div, li, h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml(" ")
	})

	return collapseSpace(doc.Text())
}

// FirstImage returns the src of the first <img> in an HTML fragment
func FirstImage(fragment string) string {
	if !strings.Contains(fragment, "<img") {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return ""
	}
	src, _ := doc.Find("img[src]").First().Attr("src")
	return strings.TrimSpace(src)
}

// Truncate shortens text to at most max runes including the appended
// ellipsis, cutting at a word boundary when one falls in the back half
func Truncate(text string, max int) string {
	runes := []rune(text)
	if max <= 0 || len(runes) <= max {
		return text
	}
	if max <= len(ellipsis) {
		return string(runes[:max])
	}

	limit := max - len(ellipsis)
	cut := runes[:limit]
	// a word ending exactly at the cut is kept whole
	if runes[limit] != ' ' {
		for i := limit - 1; i > limit/2; i-- {
			if cut[i] == ' ' {
				cut = cut[:i]
				break
			}
		}
	}
	return strings.TrimRight(string(cut), " ,;:.-") + ellipsis
}

const ellipsis = "..."

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
