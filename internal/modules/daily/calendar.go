package daily

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Celebration is one liturgical celebration on a calendar day.
type Celebration struct {
	Title string
	Rank  string
}

// CalendarDay is the liturgical calendar lookup result for one date.
type CalendarDay struct {
	Season       string
	Celebrations []Celebration
	Fallback     bool
}

const fallbackCelebration = "Weekday in Ordinary Time"

// CalendarLookup queries the liturgical calendar API for a given day.
type CalendarLookup struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

func NewCalendarLookup(baseURL string, client *http.Client, logger *zap.Logger) *CalendarLookup {
	return &CalendarLookup{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		logger:  logger,
	}
}

type calendarAPIResponse struct {
	Season       json.RawMessage `json:"season"`
	Celebrations []struct {
		Title string `json:"title"`
		Rank  string `json:"rank"`
	} `json:"celebrations"`
}

// Lookup fetches celebrations for a civil day. A failed or empty lookup
// returns the generic weekday fallback instead of an error so the
// pipeline always produces a celebration.
func (l *CalendarLookup) Lookup(ctx context.Context, day time.Time) CalendarDay {
	url := fmt.Sprintf("%s/%s", l.baseURL, day.Format("2006/1/2"))

	result, err := l.fetch(ctx, url)
	if err != nil {
		l.logger.Warn("calendar lookup failed, using weekday fallback",
			zap.String("url", url), zap.Error(err))
		return fallbackCalendarDay()
	}

	celebrations := make([]Celebration, 0, len(result.Celebrations))
	for _, c := range result.Celebrations {
		title := strings.TrimSpace(c.Title)
		// Bare "Weekday" entries carry no feast of their own.
		if title == "" || strings.EqualFold(title, "Weekday") {
			continue
		}
		celebrations = append(celebrations, Celebration{
			Title: title,
			Rank:  strings.TrimSpace(c.Rank),
		})
	}
	if len(celebrations) == 0 {
		return fallbackCalendarDay()
	}

	return CalendarDay{
		Season:       seasonName(result.Season),
		Celebrations: celebrations,
	}
}

func (l *CalendarLookup) fetch(ctx context.Context, url string) (*calendarAPIResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("calendar API returned HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var result calendarAPIResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decoding calendar response: %w", err)
	}
	return &result, nil
}

// seasonName accepts both shapes the calendar API has used over time:
// a bare string ("ordinary") and an object ({"name": "Ordinary Time"}).
func seasonName(raw json.RawMessage) string {
	if len(raw) == 0 {
		return "Ordinary Time"
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil && s != "" {
		return titleCaseSeason(s)
	}
	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil && obj.Name != "" {
		return obj.Name
	}
	return "Ordinary Time"
}

func titleCaseSeason(s string) string {
	switch strings.ToLower(s) {
	case "ordinary":
		return "Ordinary Time"
	case "advent":
		return "Advent"
	case "christmas":
		return "Christmas"
	case "lent":
		return "Lent"
	case "easter":
		return "Easter"
	default:
		return s
	}
}

func fallbackCalendarDay() CalendarDay {
	return CalendarDay{
		Season:       "Ordinary Time",
		Celebrations: []Celebration{{Title: fallbackCelebration, Rank: "Weekday"}},
		Fallback:     true,
	}
}
