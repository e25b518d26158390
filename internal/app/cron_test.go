package app

import (
	"testing"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/omph-chaplaincy/parish-core/internal/config"
	pkgcron "github.com/omph-chaplaincy/parish-core/internal/pkg/cron"
)

func TestRegisterCronJobs(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	a := &App{
		cfg:    &config.AppConfig{UTCOffsetHours: 1, FetchTimeoutSeconds: 5},
		db:     db,
		logger: zap.NewNop(),
		sched:  pkgcron.New(),
	}

	a.registerCronJobs()

	jobs := make(map[string]pkgcron.ListItem)
	for _, item := range a.sched.List() {
		jobs[item.Name] = item
	}
	for _, name := range []string{"refresh_daily_content", "purge_rejected_prayers"} {
		if _, ok := jobs[name]; !ok {
			t.Errorf("job %q not registered, have %v", name, jobs)
		}
	}
}
