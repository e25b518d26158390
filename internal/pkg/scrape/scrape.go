// Package scrape provides small helpers for best-effort HTML extraction
// from third-party pages whose markup is outside our control.
package scrape

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DefaultUserAgent identifies the site to upstream sources.
const DefaultUserAgent = "Mozilla/5.0 (compatible; OMPH-Chaplaincy-Website/1.0)"

// Candidate is one CSS selector to try, with a minimum acceptable text
// length. Candidates are evaluated in order; the first selector whose
// trimmed text meets MinLen wins. MinLen 0 accepts any non-empty match.
type Candidate struct {
	Selector string
	MinLen   int
}

// FetchDocument fetches a URL and parses it as an HTML document.
// Non-2xx statuses are returned as errors so callers can fall back.
func FetchDocument(ctx context.Context, client *http.Client, url string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", DefaultUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetching %s: HTTP %d", url, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML from %s: %w", url, err)
	}
	return doc, nil
}

// ExtractFirst evaluates candidates in order and returns the first
// acceptable match, or "" when no candidate yields usable text.
func ExtractFirst(doc *goquery.Document, candidates []Candidate) string {
	for _, cand := range candidates {
		text := strings.TrimSpace(doc.Find(cand.Selector).First().Text())
		if text == "" {
			continue
		}
		if len(text) >= cand.MinLen {
			return normalizeWhitespace(text)
		}
	}
	return ""
}

// ExtractBlocks returns the trimmed text of every element matched by
// the selector, in document order, skipping empty blocks. Used for
// sources where readings are distinguished only by position.
func ExtractBlocks(doc *goquery.Document, selector string) []string {
	var blocks []string
	doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if text != "" {
			blocks = append(blocks, normalizeWhitespace(text))
		}
	})
	return blocks
}

// Truncate cuts text to at most limit characters, appending an ellipsis
// only when truncation actually occurred. Limit counts runes so a
// multi-byte character is never split.
func Truncate(text string, limit int) string {
	if limit <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}

func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
