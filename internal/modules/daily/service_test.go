package daily

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/omph-chaplaincy/parish-core/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	// each :memory: connection is its own database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	if err := db.AutoMigrate(&models.DailyContentModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTestService(t *testing.T, db *gorm.DB, calendarURL, bioURL, ewtnURL, usccbURL string) *Service {
	t.Helper()
	client := &http.Client{Timeout: 2 * time.Second}
	logger := zap.NewNop()
	return &Service{
		db:       db,
		logger:   logger,
		resolver: NewDateResolver(1),
		calendar: NewCalendarLookup(calendarURL, client, logger),
		bios:     NewBioFetcher(bioURL, client, logger),
		readings: NewReadingsFetcher(ewtnURL, usccbURL, client, logger),
	}
}

func TestGetContentServesStoredRecordWithoutRefetch(t *testing.T) {
	var calendarHits atomic.Int64
	calendar := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calendarHits.Add(1)
		w.Write([]byte(`{
			"season": "ordinary",
			"celebrations": [{"title": "Saint Scholastica, virgin", "rank": "memorial"}]
		}`))
	}))
	defer calendar.Close()

	longBio := strings.Repeat("She founded a community of nuns near Monte Cassino. ", 4)
	bios := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><div class="saint-bio">` + longBio + `</div></body></html>`))
	}))
	defer bios.Close()

	readings := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(ewtnPage))
	}))
	defer readings.Close()

	svc := newTestService(t, openTestDB(t), calendar.URL, bios.URL, readings.URL, readings.URL)

	first, err := svc.GetContent(context.Background(), "2026-02-10")
	if err != nil {
		t.Fatalf("first GetContent: %v", err)
	}
	second, err := svc.GetContent(context.Background(), "2026-02-10")
	if err != nil {
		t.Fatalf("second GetContent: %v", err)
	}

	if n := calendarHits.Load(); n != 1 {
		t.Errorf("calendar fetched %d times, want 1", n)
	}
	if !reflect.DeepEqual(first.Saints, second.Saints) {
		t.Errorf("saints changed between calls:\nfirst:  %+v\nsecond: %+v", first.Saints, second.Saints)
	}
	if !reflect.DeepEqual(first.Readings, second.Readings) {
		t.Errorf("readings changed between calls:\nfirst:  %+v\nsecond: %+v", first.Readings, second.Readings)
	}
	if second.Celebration != "Ordinary Time" {
		t.Errorf("celebration = %q, want Ordinary Time", second.Celebration)
	}
	if len(second.Saints) != 1 || second.Saints[0].Name != "Saint Scholastica, virgin" {
		t.Errorf("saints = %+v", second.Saints)
	}
}

func TestGetContentSurvivesTotalUpstreamFailure(t *testing.T) {
	down := httptest.NewServer(http.NotFoundHandler())
	defer down.Close()

	svc := newTestService(t, openTestDB(t), down.URL, down.URL, down.URL, down.URL)

	content, err := svc.GetContent(context.Background(), "2026-03-16")
	if err != nil {
		t.Fatalf("GetContent with all sources down: %v", err)
	}

	if content.Celebration != fallbackCelebration {
		t.Errorf("celebration = %q, want %q", content.Celebration, fallbackCelebration)
	}
	if len(content.Saints) != 1 {
		t.Fatalf("got %d saints, want 1 from the weekday rotation", len(content.Saints))
	}
	if content.Saints[0].Name == "" || content.Saints[0].Bio == "" {
		t.Errorf("rotation saint incomplete: %+v", content.Saints[0])
	}
	for name, r := range map[string]models.Reading{
		"first reading": content.Readings.FirstReading,
		"psalm":         content.Readings.Psalm,
		"gospel":        content.Readings.Gospel,
	} {
		if r.Citation == "" || r.Text == "" || r.Preview == "" {
			t.Errorf("%s incomplete: %+v", name, r)
		}
	}
	if content.Source != "rotation+fallback" {
		t.Errorf("source = %q, want rotation+fallback", content.Source)
	}
}

func TestGetContentRebuildsStaleRecordInPlace(t *testing.T) {
	var calendarHits atomic.Int64
	calendar := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calendarHits.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer calendar.Close()

	down := httptest.NewServer(http.NotFoundHandler())
	defer down.Close()

	db := openTestDB(t)
	svc := newTestService(t, db, calendar.URL, down.URL, down.URL, down.URL)

	if _, err := svc.GetContent(context.Background(), "2026-03-16"); err != nil {
		t.Fatalf("initial GetContent: %v", err)
	}

	stale := time.Now().UTC().Add(-FreshFor - time.Hour)
	err := db.Model(&models.DailyContentModel{}).
		Where("date = ?", "2026-03-16").
		Update("last_updated", stale).Error
	if err != nil {
		t.Fatalf("age stored record: %v", err)
	}

	if _, err := svc.GetContent(context.Background(), "2026-03-16"); err != nil {
		t.Fatalf("GetContent after staleness: %v", err)
	}

	if n := calendarHits.Load(); n != 2 {
		t.Errorf("calendar fetched %d times, want 2 (stale record must rebuild)", n)
	}
	var rows int64
	if err := db.Model(&models.DailyContentModel{}).Where("date = ?", "2026-03-16").Count(&rows).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if rows != 1 {
		t.Errorf("got %d rows for the date, want 1 (rebuild must upsert)", rows)
	}
}
