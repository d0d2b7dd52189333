package service

import (
	"testing"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"wedding/guesthub/internal/model"
	"wedding/guesthub/internal/repository"
)

type testRepos struct {
	invitees repository.InviteeRepository
	rsvps    repository.RSVPRepository
	guests   repository.AdditionalGuestRepository
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// A second pooled connection would see its own empty :memory: database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := model.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTestRepos(t *testing.T) testRepos {
	t.Helper()
	db := newTestDB(t)
	return testRepos{
		invitees: repository.NewPGInviteeRepository(db),
		rsvps:    repository.NewPGRSVPRepository(db),
		guests:   repository.NewPGAdditionalGuestRepository(db),
	}
}

func testLogger() *zap.Logger { return zap.NewNop() }
