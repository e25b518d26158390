package daily

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/omph-chaplaincy/parish-core/internal/models"
	"github.com/omph-chaplaincy/parish-core/internal/pkg/scrape"
)

const (
	readingPreviewLen = 150
	psalmPreviewLen   = 100

	readingUnavailable = "Reading not available"

	defaultFirstReadingText = "A reading from Sacred Scripture"
	defaultPsalmText        = "Lord, you have the words of everlasting life"
	defaultGospelText       = "A reading from the holy Gospel"

	ewtnReflection  = "Today's readings invite us to reflect deeply on God's word and apply it to our daily lives. Through Scripture, we encounter Christ and are transformed by His love."
	usccbReflection = "The Word of God speaks to our hearts today, calling us to deeper faith and love."
)

// ReadingsResult carries the assembled readings and which source
// produced them.
type ReadingsResult struct {
	Readings models.Readings
	Source   string
}

// ReadingsFetcher assembles the day's Mass readings from two scraped
// sources, falling back to structured liturgical text when both fail.
type ReadingsFetcher struct {
	ewtnBaseURL  string
	usccbBaseURL string
	client       *http.Client
	logger       *zap.Logger
}

func NewReadingsFetcher(ewtnBaseURL, usccbBaseURL string, client *http.Client, logger *zap.Logger) *ReadingsFetcher {
	return &ReadingsFetcher{
		ewtnBaseURL:  strings.TrimRight(ewtnBaseURL, "/"),
		usccbBaseURL: strings.TrimRight(usccbBaseURL, "/"),
		client:       client,
		logger:       logger,
	}
}

// Fetch tries EWTN first, then USCCB, then synthesizes structured
// readings. Every field of the result is guaranteed non-empty.
func (f *ReadingsFetcher) Fetch(ctx context.Context, day time.Time) ReadingsResult {
	if readings, ok := f.fetchEWTN(ctx, day); ok {
		return ReadingsResult{Readings: *readings, Source: "ewtn"}
	}
	if readings, ok := f.fetchUSCCB(ctx, day); ok {
		return ReadingsResult{Readings: *readings, Source: "usccb"}
	}
	return ReadingsResult{Readings: structuredReadings(day), Source: "fallback"}
}

// fetchEWTN scrapes the EWTN daily-readings page. The page is accepted
// only when a usable first reading was extracted.
func (f *ReadingsFetcher) fetchEWTN(ctx context.Context, day time.Time) (*models.Readings, bool) {
	url := fmt.Sprintf("%s/%s", f.ewtnBaseURL, ewtnDatePath(day))
	doc, err := scrape.FetchDocument(ctx, f.client, url)
	if err != nil {
		f.logger.Warn("ewtn readings fetch failed", zap.String("url", url), zap.Error(err))
		return nil, false
	}

	firstReading := extractLabeled(doc, []scrape.Candidate{
		{Selector: ".first-reading"},
		{Selector: ".reading-first"},
	}, "First Reading")
	psalm := extractLabeled(doc, []scrape.Candidate{
		{Selector: ".psalm"},
		{Selector: ".responsorial-psalm"},
	}, "Psalm")
	secondReading := extractLabeled(doc, []scrape.Candidate{
		{Selector: ".second-reading"},
		{Selector: ".reading-second"},
	}, "Second Reading")
	gospel := extractLabeled(doc, []scrape.Candidate{
		{Selector: ".gospel"},
		{Selector: ".gospel-reading"},
	}, "Gospel")

	if firstReading == "" || firstReading == readingUnavailable {
		return nil, false
	}

	readings := &models.Readings{
		FirstReading: buildReading("First Reading", firstReading, defaultFirstReadingText, readingPreviewLen),
		Psalm:        buildReading("Responsorial Psalm", psalm, defaultPsalmText, psalmPreviewLen),
		Gospel:       buildReading("Gospel", gospel, defaultGospelText, readingPreviewLen),
		Reflection:   ewtnReflection,
	}
	if secondReading != "" {
		second := buildReading("Second Reading", secondReading, "", readingPreviewLen)
		readings.SecondReading = &second
	}
	return readings, true
}

// fetchUSCCB scrapes the USCCB readings page, where readings are
// distinguished only by document position: first block is the first
// reading, second the psalm, third the second reading when four or more
// blocks are present, and the last is always the gospel.
func (f *ReadingsFetcher) fetchUSCCB(ctx context.Context, day time.Time) (*models.Readings, bool) {
	url := fmt.Sprintf("%s/%s.cfm", f.usccbBaseURL, usccbDatePath(day))
	doc, err := scrape.FetchDocument(ctx, f.client, url)
	if err != nil {
		f.logger.Warn("usccb readings fetch failed", zap.String("url", url), zap.Error(err))
		return nil, false
	}

	blocks := scrape.ExtractBlocks(doc, ".b-verse, .reading-text, .content-body")
	if len(blocks) == 0 {
		return nil, false
	}

	block := func(i int) string {
		if i < len(blocks) {
			return blocks[i]
		}
		return ""
	}

	readings := &models.Readings{
		FirstReading: buildReading("First Reading", block(0), defaultFirstReadingText, readingPreviewLen),
		Psalm:        buildReading("Responsorial Psalm", block(1), defaultPsalmText, psalmPreviewLen),
		Gospel:       buildReading("Gospel", blocks[len(blocks)-1], defaultGospelText, readingPreviewLen),
		Reflection:   usccbReflection,
	}
	if len(blocks) >= 4 {
		second := buildReading("Second Reading", block(2), "", readingPreviewLen)
		readings.SecondReading = &second
	}
	return readings, true
}

// structuredReadings synthesizes liturgically appropriate text when both
// scraped sources are unavailable. Sundays and the major feasts carry a
// second reading.
func structuredReadings(day time.Time) models.Readings {
	readings := models.Readings{
		FirstReading: buildReading(
			"Reading from the Old Testament",
			"The Word of the Lord proclaimed through the prophets and sacred writers of old, calling us to faithfulness and trust in God's covenant love.",
			"", readingPreviewLen),
		Psalm: buildReading(
			"Responsorial Psalm",
			"Lord, you have the words of everlasting life. Your word is a lamp for my feet and a light for my path.",
			"", psalmPreviewLen),
		Gospel: buildReading(
			"Gospel Reading",
			"The Good News of Jesus Christ, who speaks to us today through His words and actions recorded in the Gospels.",
			"", readingPreviewLen),
		Reflection: "In today's readings, we are invited to encounter Christ and respond to His call with open hearts, allowing His word to transform our lives and guide our actions.",
	}
	if day.Weekday() == time.Sunday || isMajorFeast(day) {
		second := buildReading(
			"Reading from the New Testament",
			"The apostolic teaching that guides us in Christian living and deepens our understanding of Christ's message.",
			"", readingPreviewLen)
		readings.SecondReading = &second
	}
	return readings
}

// majorFeasts are days that carry a second reading even on a weekday.
// June 27 is the patronal feast of Our Mother of Perpetual Help.
var majorFeasts = [][2]int{
	{12, 25}, // Christmas
	{1, 1},   // Mary, Mother of God
	{1, 6},   // Epiphany
	{8, 15},  // Assumption
	{11, 1},  // All Saints
	{6, 27},  // Our Mother of Perpetual Help
}

func isMajorFeast(day time.Time) bool {
	month, d := int(day.Month()), day.Day()
	for _, f := range majorFeasts {
		if f[0] == month && f[1] == d {
			return true
		}
	}
	return false
}

// buildReading fills a reading with its default text when extraction
// came back empty, and derives the preview as a truncated prefix.
func buildReading(citation, text, defaultText string, previewLen int) models.Reading {
	if text == "" {
		text = defaultText
	}
	return models.Reading{
		Citation: citation,
		Text:     text,
		Preview:  scrape.Truncate(text, previewLen),
	}
}

// extractLabeled tries class selectors first, then the element following
// an h3 heading that contains the label.
func extractLabeled(doc *goquery.Document, candidates []scrape.Candidate, heading string) string {
	if text := scrape.ExtractFirst(doc, candidates); text != "" {
		return text
	}
	sel := fmt.Sprintf("h3:contains('%s')", heading)
	text := strings.TrimSpace(doc.Find(sel).First().Next().Text())
	return strings.Join(strings.Fields(text), " ")
}
