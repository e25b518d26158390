package scrape

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func docFromHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(html))
	}))
	defer srv.Close()
	doc, err := FetchDocument(context.Background(), srv.Client(), srv.URL)
	if err != nil {
		t.Fatalf("FetchDocument failed: %v", err)
	}
	return doc
}

func TestFetchDocumentRejectsNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	if _, err := FetchDocument(context.Background(), srv.Client(), srv.URL); err == nil {
		t.Fatal("expected an error for a 503 response")
	}
}

func TestExtractFirstHonorsMinLen(t *testing.T) {
	doc := docFromHTML(t, `<div class="a">tiny</div><div class="b">a considerably longer block of text</div>`)

	got := ExtractFirst(doc, []Candidate{
		{Selector: ".a", MinLen: 20},
		{Selector: ".b", MinLen: 20},
	})
	if got != "a considerably longer block of text" {
		t.Errorf("ExtractFirst = %q", got)
	}

	if got := ExtractFirst(doc, []Candidate{{Selector: ".missing"}}); got != "" {
		t.Errorf("expected empty result for missing selector, got %q", got)
	}
}

func TestExtractFirstNormalizesWhitespace(t *testing.T) {
	doc := docFromHTML(t, "<p class=\"x\">  broken\n\nacross \t lines  </p>")
	if got := ExtractFirst(doc, []Candidate{{Selector: ".x"}}); got != "broken across lines" {
		t.Errorf("ExtractFirst = %q", got)
	}
}

func TestExtractBlocksKeepsDocumentOrder(t *testing.T) {
	doc := docFromHTML(t, `<div class="v">one</div><p>noise</p><div class="v">two</div><div class="v">  </div><div class="v">three</div>`)
	got := ExtractBlocks(doc, ".v")
	want := []string{"one", "two", "three"}
	if len(got) != len(want) {
		t.Fatalf("got %d blocks, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("block[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate(short) = %q", got)
	}
	if got := Truncate("exactly10!", 10); got != "exactly10!" {
		t.Errorf("text at the limit must not gain an ellipsis: %q", got)
	}
	if got := Truncate("0123456789X", 10); got != "0123456789..." {
		t.Errorf("Truncate = %q", got)
	}

	// Multibyte text must be cut between runes.
	got := Truncate(strings.Repeat("é", 20), 10)
	if trimmed := strings.TrimSuffix(got, "..."); len([]rune(trimmed)) != 10 {
		t.Errorf("rune count = %d, want 10", len([]rune(trimmed)))
	}
	if got := Truncate("anything", 0); got != "anything" {
		t.Errorf("limit 0 should disable truncation, got %q", got)
	}
}
