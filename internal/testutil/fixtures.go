package testutil

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hyrind/role-recommender/internal/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SeedRole inserts an active catalog role with the given skill requirements.
func SeedRole(tb testing.TB, db *gorm.DB, title, category string, required, preferred []string) *model.JobRole {
	tb.Helper()
	role := &model.JobRole{
		ID:              uuid.New(),
		Title:           title,
		Category:        category,
		RequiredSkills:  datatypes.NewJSONSlice(required),
		PreferredSkills: datatypes.NewJSONSlice(preferred),
		IsActive:        true,
	}
	if err := db.Create(role).Error; err != nil {
		tb.Fatalf("seed role: %v", err)
	}
	return role
}

// SeedIntakeForm inserts an intake form for a user.
func SeedIntakeForm(tb testing.TB, db *gorm.DB, userID uuid.UUID, mutate func(*model.IntakeForm)) *model.IntakeForm {
	tb.Helper()
	form := &model.IntakeForm{
		ID:     uuid.New(),
		UserID: userID,
	}
	if mutate != nil {
		mutate(form)
	}
	if err := db.Create(form).Error; err != nil {
		tb.Fatalf("seed intake form: %v", err)
	}
	return form
}

// Date builds a date pointer for intake employment periods.
func Date(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

// Float returns a pointer, for nullable numeric columns.
func Float(v float64) *float64 {
	return &v
}
