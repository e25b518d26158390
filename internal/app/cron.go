package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/omph-chaplaincy/parish-core/internal/modules/daily"
	"github.com/omph-chaplaincy/parish-core/internal/modules/prayer"
	pkgcron "github.com/omph-chaplaincy/parish-core/internal/pkg/cron"
)

// rejectedRetention is how long rejected prayer intentions are kept
// before the cleanup job drops them for good.
const rejectedRetention = 30 * 24 * time.Hour

// registerCronJobs registers the scheduled background jobs.
func (a *App) registerCronJobs() {
	cronLogger := a.logger.Named("cron")
	dailySvc := daily.NewService(a.db, a.cfg, a.logger)
	prayerSvc := prayer.NewService(a.db)

	a.sched.Register(pkgcron.Job{
		Name:        "refresh_daily_content",
		Description: "Prefetch the day's liturgical content so the first visitor never waits on upstream sources",
		Interval:    24 * time.Hour,
		Fn: func(ctx context.Context) error {
			content, err := dailySvc.Refresh(ctx)
			if err != nil {
				cronLogger.Warn("daily content refresh failed", zap.Error(err))
				return err
			}
			cronLogger.Info("daily content refreshed",
				zap.String("date", content.Date),
				zap.String("source", content.Source))
			return nil
		},
	})

	a.sched.Register(pkgcron.Job{
		Name:        "purge_rejected_prayers",
		Description: "Drop rejected prayer intentions once their retention window passes",
		Interval:    24 * time.Hour,
		Fn: func(ctx context.Context) error {
			n, err := prayerSvc.PurgeRejected(rejectedRetention)
			if err != nil {
				cronLogger.Warn("prayer queue cleanup failed", zap.Error(err))
				return err
			}
			if n > 0 {
				cronLogger.Info("prayer queue cleaned", zap.Int64("purged", n))
			}
			return nil
		},
	})
}
