package daily

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func mustDay(t *testing.T, date string) time.Time {
	t.Helper()
	day, err := ParseCivilDate(date)
	if err != nil {
		t.Fatalf("ParseCivilDate(%q) failed: %v", date, err)
	}
	return day
}

func TestDateResolverUsesFixedOffset(t *testing.T) {
	r := NewDateResolver(1)
	// 23:30 UTC is already the next day at UTC+1.
	r.now = func() time.Time {
		return time.Date(2026, 3, 14, 23, 30, 0, 0, time.UTC)
	}
	if got := r.Today(); got != "2026-03-15" {
		t.Errorf("Today() = %q, want 2026-03-15", got)
	}

	r.now = func() time.Time {
		return time.Date(2026, 3, 14, 22, 59, 0, 0, time.UTC)
	}
	if got := r.Today(); got != "2026-03-14" {
		t.Errorf("Today() = %q, want 2026-03-14", got)
	}
}

func TestParseCivilDateRejectsBadInput(t *testing.T) {
	for _, bad := range []string{"", "2026/03/14", "14-03-2026", "2026-13-40", "tomorrow"} {
		if _, err := ParseCivilDate(bad); err == nil {
			t.Errorf("ParseCivilDate(%q) accepted invalid input", bad)
		}
	}
}

func TestSourceDatePaths(t *testing.T) {
	day := mustDay(t, "2026-03-05")
	if got := ewtnDatePath(day); got != "2026/03/05" {
		t.Errorf("ewtnDatePath = %q, want 2026/03/05", got)
	}
	if got := usccbDatePath(day); got != "030526" {
		t.Errorf("usccbDatePath = %q, want 030526", got)
	}
}

func TestCalendarLookupSkipsBareWeekdayEntries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"season": "ordinary",
			"celebrations": [
				{"title": "Weekday", "rank": "ferial"},
				{"title": "Saint Scholastica, virgin", "rank": "memorial"}
			]
		}`))
	}))
	defer srv.Close()

	lookup := NewCalendarLookup(srv.URL, srv.Client(), zap.NewNop())
	day := lookup.Lookup(context.Background(), mustDay(t, "2026-02-10"))

	if day.Fallback {
		t.Fatal("expected a real calendar day, got fallback")
	}
	if len(day.Celebrations) != 1 {
		t.Fatalf("got %d celebrations, want 1", len(day.Celebrations))
	}
	if day.Celebrations[0].Title != "Saint Scholastica, virgin" {
		t.Errorf("celebration = %q", day.Celebrations[0].Title)
	}
	if day.Season != "Ordinary Time" {
		t.Errorf("season = %q, want Ordinary Time", day.Season)
	}
}

func TestCalendarLookupFallsBackOnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	lookup := NewCalendarLookup(srv.URL, srv.Client(), zap.NewNop())
	day := lookup.Lookup(context.Background(), mustDay(t, "2026-02-10"))

	if !day.Fallback {
		t.Fatal("expected fallback calendar day")
	}
	if len(day.Celebrations) != 1 || day.Celebrations[0].Title != fallbackCelebration {
		t.Errorf("fallback celebrations = %+v", day.Celebrations)
	}
}

func TestCalendarSeasonObjectShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"season": {"name": "Lent"},
			"celebrations": [{"title": "Ash Wednesday", "rank": "solemnity"}]
		}`))
	}))
	defer srv.Close()

	lookup := NewCalendarLookup(srv.URL, srv.Client(), zap.NewNop())
	day := lookup.Lookup(context.Background(), mustDay(t, "2026-02-18"))
	if day.Season != "Lent" {
		t.Errorf("season = %q, want Lent", day.Season)
	}
}

func TestWeekdaySaintRotation(t *testing.T) {
	// 2026-03-15 is a Sunday.
	tests := []struct {
		date string
		name string
	}{
		{"2026-03-15", "Saint Joseph"},
		{"2026-03-16", "Saint Michael the Archangel"},
		{"2026-03-17", "Saint John the Baptist"},
		{"2026-03-18", "Saint Peter the Apostle"},
		{"2026-03-19", "Saint Paul the Apostle"},
		{"2026-03-20", "Saint Mary Magdalene"},
		{"2026-03-21", "Blessed Virgin Mary"},
	}
	for _, tt := range tests {
		saint := WeekdaySaint(mustDay(t, tt.date))
		if saint.Name != tt.name {
			t.Errorf("WeekdaySaint(%s) = %q, want %q", tt.date, saint.Name, tt.name)
		}
		if saint.Rank != "Commemoration" || saint.Type != "Commemoration" {
			t.Errorf("WeekdaySaint(%s) rank/type = %q/%q", tt.date, saint.Rank, saint.Type)
		}
		if saint.Bio == "" {
			t.Errorf("WeekdaySaint(%s) has empty bio", tt.date)
		}
	}
}

func TestBioFetcherTruncatesLongBio(t *testing.T) {
	long := strings.Repeat("A holy life. ", 60)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("saint_id"); got != "Scholastica" {
			t.Errorf("saint_id = %q, want the name without the Saint prefix", got)
		}
		w.Write([]byte(`<html><body><div class="saint-bio">` + long + `</div></body></html>`))
	}))
	defer srv.Close()

	f := NewBioFetcher(srv.URL, srv.Client(), zap.NewNop())
	bio := f.FetchBio(context.Background(), "Saint Scholastica")

	if !strings.HasSuffix(bio, "...") {
		t.Errorf("long bio not truncated: %q", bio)
	}
	if n := len([]rune(strings.TrimSuffix(bio, "..."))); n != saintBioMaxLen {
		t.Errorf("truncated bio length = %d, want %d", n, saintBioMaxLen)
	}
}

func TestBioFetcherRejectsShortBio(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><div class="saint-bio">Too short.</div></body></html>`))
	}))
	defer srv.Close()

	f := NewBioFetcher(srv.URL, srv.Client(), zap.NewNop())
	bio := f.FetchBio(context.Background(), "St. Ambrose")
	if !strings.Contains(bio, "heroic virtue") {
		t.Errorf("short bio should fall back to the generic text, got %q", bio)
	}
	if !strings.HasPrefix(bio, "St. Ambrose") {
		t.Errorf("generic bio should open with the saint name, got %q", bio)
	}
}

func TestBioFetcherFallsBackWhenUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewBioFetcher(srv.URL, srv.Client(), zap.NewNop())
	bio := f.FetchBio(context.Background(), "Saint Monica")
	if !strings.Contains(bio, "commemorated today") {
		t.Errorf("unreachable source should use the commemoration text, got %q", bio)
	}
}

const ewtnPage = `<html><body>
<h3>First Reading</h3><p>A reading from the book of Genesis. In the beginning God created the heavens and the earth, and the earth was without form and void, and darkness was over the face of the deep, and the Spirit of God was hovering over the face of the waters while God spoke light into being.</p>
<div class="psalm">The Lord is my shepherd; there is nothing I shall want.</div>
<div class="gospel">A reading from the holy Gospel according to John. In the beginning was the Word.</div>
</body></html>`

func TestFetchReadingsPrefersFirstSource(t *testing.T) {
	ewtn := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(ewtnPage))
	}))
	defer ewtn.Close()
	usccb := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("second source should not be queried when the first succeeds")
	}))
	defer usccb.Close()

	f := NewReadingsFetcher(ewtn.URL, usccb.URL, ewtn.Client(), zap.NewNop())
	result := f.Fetch(context.Background(), mustDay(t, "2026-03-16"))

	if result.Source != "ewtn" {
		t.Fatalf("source = %q, want ewtn", result.Source)
	}
	if !strings.Contains(result.Readings.FirstReading.Text, "book of Genesis") {
		t.Errorf("first reading = %q", result.Readings.FirstReading.Text)
	}
	if !strings.Contains(result.Readings.Psalm.Text, "my shepherd") {
		t.Errorf("psalm = %q", result.Readings.Psalm.Text)
	}
	if result.Readings.SecondReading != nil {
		t.Error("weekday page should not yield a second reading")
	}
	if result.Readings.Reflection == "" {
		t.Error("reflection must not be empty")
	}
}

func TestFetchReadingsFallsThroughToSecondSource(t *testing.T) {
	ewtn := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Page loads but carries the unavailable sentinel.
		w.Write([]byte(`<html><body><div class="first-reading">Reading not available</div></body></html>`))
	}))
	defer ewtn.Close()
	usccb := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "031626.cfm") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(`<html><body>
			<div class="b-verse">First reading text from the prophet Isaiah about comfort for the people.</div>
			<div class="b-verse">Psalm response text, the Lord is kind and merciful.</div>
			<div class="b-verse">Gospel text, Jesus went up the mountain to pray.</div>
		</body></html>`))
	}))
	defer usccb.Close()

	f := NewReadingsFetcher(ewtn.URL, usccb.URL, ewtn.Client(), zap.NewNop())
	result := f.Fetch(context.Background(), mustDay(t, "2026-03-16"))

	if result.Source != "usccb" {
		t.Fatalf("source = %q, want usccb", result.Source)
	}
	if !strings.Contains(result.Readings.FirstReading.Text, "Isaiah") {
		t.Errorf("first reading = %q", result.Readings.FirstReading.Text)
	}
	if !strings.Contains(result.Readings.Gospel.Text, "mountain") {
		t.Errorf("gospel should be the last block, got %q", result.Readings.Gospel.Text)
	}
	if result.Readings.SecondReading != nil {
		t.Error("three blocks should not yield a second reading")
	}
}

func TestFetchReadingsPositionalSecondReading(t *testing.T) {
	ewtn := httptest.NewServer(http.NotFoundHandler())
	defer ewtn.Close()
	usccb := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body>
			<div class="b-verse">First reading.</div>
			<div class="b-verse">Psalm.</div>
			<div class="b-verse">Second reading from Saint Paul.</div>
			<div class="b-verse">Gospel according to Luke.</div>
		</body></html>`))
	}))
	defer usccb.Close()

	f := NewReadingsFetcher(ewtn.URL, usccb.URL, usccb.Client(), zap.NewNop())
	result := f.Fetch(context.Background(), mustDay(t, "2026-03-15"))

	if result.Readings.SecondReading == nil {
		t.Fatal("four blocks should yield a second reading")
	}
	if !strings.Contains(result.Readings.SecondReading.Text, "Saint Paul") {
		t.Errorf("second reading = %q", result.Readings.SecondReading.Text)
	}
	if !strings.Contains(result.Readings.Gospel.Text, "Luke") {
		t.Errorf("gospel = %q", result.Readings.Gospel.Text)
	}
}

func TestFetchReadingsStructuredFallback(t *testing.T) {
	down := httptest.NewServer(http.NotFoundHandler())
	defer down.Close()

	f := NewReadingsFetcher(down.URL, down.URL, down.Client(), zap.NewNop())

	// Monday: no second reading.
	weekday := f.Fetch(context.Background(), mustDay(t, "2026-03-16"))
	if weekday.Source != "fallback" {
		t.Fatalf("source = %q, want fallback", weekday.Source)
	}
	if weekday.Readings.SecondReading != nil {
		t.Error("weekday fallback should not carry a second reading")
	}

	// Sunday: second reading present.
	sunday := f.Fetch(context.Background(), mustDay(t, "2026-03-15"))
	if sunday.Readings.SecondReading == nil {
		t.Error("Sunday fallback should carry a second reading")
	}

	// Patronal feast on a Saturday.
	patronal := f.Fetch(context.Background(), mustDay(t, "2026-06-27"))
	if patronal.Readings.SecondReading == nil {
		t.Error("patronal feast fallback should carry a second reading")
	}

	for name, r := range map[string]string{
		"first":      weekday.Readings.FirstReading.Text,
		"psalm":      weekday.Readings.Psalm.Text,
		"gospel":     weekday.Readings.Gospel.Text,
		"reflection": weekday.Readings.Reflection,
	} {
		if r == "" {
			t.Errorf("fallback %s reading is empty", name)
		}
	}
}

func TestPreviewIsTruncatedPrefix(t *testing.T) {
	long := strings.Repeat("word ", 100)
	r := buildReading("First Reading", long, "", readingPreviewLen)
	if !strings.HasSuffix(r.Preview, "...") {
		t.Fatalf("long preview should end with an ellipsis: %q", r.Preview)
	}
	prefix := strings.TrimSuffix(r.Preview, "...")
	if !strings.HasPrefix(r.Text, prefix) {
		t.Errorf("preview %q is not a prefix of the text", prefix)
	}
	if n := len([]rune(prefix)); n != readingPreviewLen {
		t.Errorf("preview length = %d, want %d", n, readingPreviewLen)
	}

	short := buildReading("Psalm", "Short text.", "", psalmPreviewLen)
	if short.Preview != "Short text." {
		t.Errorf("short preview should equal the text, got %q", short.Preview)
	}
}

func TestGetRejectsMalformedDateParam(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(&Service{}, zap.NewNop()).RegisterRoutes(r.Group("/api"))

	req := httptest.NewRequest(http.MethodGet, "/api/daily-content?date=03-16-2026", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestMajorFeasts(t *testing.T) {
	feasts := []string{"2026-12-25", "2026-01-01", "2026-01-06", "2026-08-15", "2026-11-01", "2026-06-27"}
	for _, d := range feasts {
		if !isMajorFeast(mustDay(t, d)) {
			t.Errorf("%s should be a major feast", d)
		}
	}
	if isMajorFeast(mustDay(t, "2026-03-16")) {
		t.Error("2026-03-16 should not be a major feast")
	}
}
