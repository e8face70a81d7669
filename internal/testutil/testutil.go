package testutil

import (
	"testing"

	"github.com/hyrind/role-recommender/internal/logger"
	"github.com/hyrind/role-recommender/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// DB opens a fresh in-memory sqlite database with the full schema. Each call
// returns an isolated database, so tests never share state.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		tb.Fatalf("open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		tb.Fatalf("get sql db: %v", err)
	}
	// A pooled :memory: connection would be a second, empty database.
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&model.IntakeForm{},
		&model.JobRole{},
		&model.SkillProfile{},
		&model.RoleRecommendation{},
		&model.RecommendationFeedback{},
	)
	if err != nil {
		tb.Fatalf("migrate test db: %v", err)
	}
	return db
}

func Logger(tb testing.TB) *logger.Logger {
	tb.Helper()
	return logger.NewNop()
}
