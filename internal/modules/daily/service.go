package daily

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/omph-chaplaincy/parish-core/internal/config"
	"github.com/omph-chaplaincy/parish-core/internal/models"
)

// FreshFor is how long a stored daily record is served without
// re-running the aggregation pipeline.
const FreshFor = 24 * time.Hour

// Service aggregates the daily liturgical content record: calendar
// celebrations, saint biographies and Mass readings, merged into one
// row per civil date.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger

	resolver *DateResolver
	calendar *CalendarLookup
	bios     *BioFetcher
	readings *ReadingsFetcher
}

func NewService(db *gorm.DB, cfg *config.AppConfig, logger *zap.Logger) *Service {
	client := &http.Client{Timeout: time.Duration(cfg.FetchTimeoutSeconds) * time.Second}
	return &Service{
		db:       db,
		logger:   logger,
		resolver: NewDateResolver(cfg.UTCOffsetHours),
		calendar: NewCalendarLookup(cfg.Sources.CalendarAPI, client, logger),
		bios:     NewBioFetcher(cfg.Sources.SaintBio, client, logger),
		readings: NewReadingsFetcher(cfg.Sources.ReadingsEWTN, cfg.Sources.ReadingsUSCCB, client, logger),
	}
}

// Today returns the current civil date key.
func (s *Service) Today() string { return s.resolver.Today() }

// GetContent returns the daily record for a civil date, serving the
// stored row when it is still fresh and rebuilding it otherwise.
func (s *Service) GetContent(ctx context.Context, date string) (*models.DailyContentModel, error) {
	day, err := ParseCivilDate(date)
	if err != nil {
		return nil, err
	}

	var stored models.DailyContentModel
	findErr := s.db.WithContext(ctx).Where("date = ?", date).First(&stored).Error
	if findErr == nil && time.Since(stored.LastUpdated) < FreshFor {
		return &stored, nil
	}
	if findErr != nil && !errors.Is(findErr, gorm.ErrRecordNotFound) {
		return nil, findErr
	}

	return s.rebuild(ctx, date, day)
}

// Refresh rebuilds today's record unconditionally. Used by the cron job
// and the POST endpoint.
func (s *Service) Refresh(ctx context.Context) (*models.DailyContentModel, error) {
	date := s.resolver.Today()
	day, err := ParseCivilDate(date)
	if err != nil {
		return nil, err
	}
	return s.rebuild(ctx, date, day)
}

// rebuild runs the aggregation pipeline and upserts the result. The
// readings chain runs alongside the calendar and bio fetches since the
// two halves share no data.
func (s *Service) rebuild(ctx context.Context, date string, day time.Time) (*models.DailyContentModel, error) {
	var (
		wg       sync.WaitGroup
		readings ReadingsResult
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		readings = s.readings.Fetch(ctx, day)
	}()

	calDay := s.calendar.Lookup(ctx, day)
	saints := s.collectSaints(ctx, day, calDay)
	celebration := fallbackCelebration
	if !calDay.Fallback {
		celebration = calDay.Season
	}

	wg.Wait()

	content := &models.DailyContentModel{
		Date:        date,
		Celebration: celebration,
		Saints:      saints,
		Readings:    readings.Readings,
		Source:      sourceLabel(calDay, readings),
		LastUpdated: time.Now().UTC(),
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"celebration", "saints", "readings", "source", "last_updated", "updated_at",
		}),
	}).Create(content).Error
	if err != nil {
		return nil, err
	}

	s.logger.Info("daily content rebuilt",
		zap.String("date", date),
		zap.String("source", content.Source),
		zap.Int("saints", len(saints)))
	return content, nil
}

func (s *Service) collectSaints(ctx context.Context, day time.Time, calDay CalendarDay) []models.Saint {
	if calDay.Fallback {
		return []models.Saint{WeekdaySaint(day)}
	}
	saints := make([]models.Saint, 0, len(calDay.Celebrations))
	for _, c := range calDay.Celebrations {
		rank := c.Rank
		if rank == "" {
			rank = "Memorial"
		}
		saints = append(saints, models.Saint{
			Name: c.Title,
			Type: rank,
			Rank: rank,
			Bio:  s.bios.FetchBio(ctx, c.Title),
		})
	}
	if len(saints) == 0 {
		return []models.Saint{WeekdaySaint(day)}
	}
	return saints
}

func sourceLabel(calDay CalendarDay, readings ReadingsResult) string {
	cal := "calapi"
	if calDay.Fallback {
		cal = "rotation"
	}
	return cal + "+" + readings.Source
}
