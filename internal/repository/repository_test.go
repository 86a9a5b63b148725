package repository

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/haminhduc/studygate/internal/model"
	"github.com/haminhduc/studygate/internal/query"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database per test. TranslateError
// mirrors the production postgres setup so duplicate-key detection behaves
// the same.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// A second pooled connection to :memory: would see a fresh, empty
	// database; keep everything on one connection.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Subject{},
		&model.Test{},
		&model.Task{},
		&model.Attempt{},
		&model.Session{},
		&model.AnswerRecord{},
	))
	return db
}

func newTestQueries() *query.Provider {
	return query.NewProvider()
}

// seedCatalog inserts one subject and one test so attempt rows have titles
// to join against.
func seedCatalog(t *testing.T, db *gorm.DB) (subjectID, testID uint) {
	t.Helper()

	subject := model.Subject{Title: "Mathematics"}
	require.NoError(t, db.Create(&subject).Error)

	test := model.Test{SubjectID: subject.ID, Title: "Algebra Midterm"}
	require.NoError(t, db.Create(&test).Error)

	return subject.ID, test.ID
}
