package prayer

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/omph-chaplaincy/parish-core/internal/models"
)

func openTestService(t *testing.T) *Service {
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
	if err := db.AutoMigrate(&models.PrayerRequestModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewService(db)
}

func TestSubmitDefaultsToAnonymousAndPending(t *testing.T) {
	svc := openTestService(t)

	m, err := svc.Submit("  ", "For the sick of the parish.")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if m.Name != anonymousName {
		t.Errorf("name = %q, want %q", m.Name, anonymousName)
	}
	if m.Status != models.SubmissionPending {
		t.Errorf("status = %q, want %q", m.Status, models.SubmissionPending)
	}
}

func TestModerateRejectsUnknownStatus(t *testing.T) {
	svc := openTestService(t)
	if _, err := svc.Moderate("any-id", "archived"); err != errInvalidStatus {
		t.Errorf("err = %v, want errInvalidStatus", err)
	}
}

func TestPurgeRejectedRemovesOnlyOldRejected(t *testing.T) {
	svc := openTestService(t)

	oldRejected, err := svc.Submit("A", "old rejected")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := svc.Moderate(oldRejected.ID, models.SubmissionRejected); err != nil {
		t.Fatalf("moderate: %v", err)
	}
	aged := time.Now().UTC().Add(-45 * 24 * time.Hour)
	if err := svc.db.Model(oldRejected).Update("created_at", aged).Error; err != nil {
		t.Fatalf("age record: %v", err)
	}

	freshRejected, err := svc.Submit("B", "fresh rejected")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := svc.Moderate(freshRejected.ID, models.SubmissionRejected); err != nil {
		t.Fatalf("moderate: %v", err)
	}

	oldApproved, err := svc.Submit("C", "old approved")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := svc.Moderate(oldApproved.ID, models.SubmissionApproved); err != nil {
		t.Fatalf("moderate: %v", err)
	}
	if err := svc.db.Model(oldApproved).Update("created_at", aged).Error; err != nil {
		t.Fatalf("age record: %v", err)
	}

	purged, err := svc.PurgeRejected(30 * 24 * time.Hour)
	if err != nil {
		t.Fatalf("purge: %v", err)
	}
	if purged != 1 {
		t.Errorf("purged %d rows, want 1", purged)
	}

	var remaining []models.PrayerRequestModel
	if err := svc.db.Unscoped().Find(&remaining).Error; err != nil {
		t.Fatalf("list remaining: %v", err)
	}
	if len(remaining) != 2 {
		t.Fatalf("got %d remaining rows, want 2", len(remaining))
	}
	for _, m := range remaining {
		if m.ID == oldRejected.ID {
			t.Errorf("old rejected intention survived the purge: %+v", m)
		}
	}
}
