// Package testutil holds helpers shared by package tests.
package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"teranga_match/internal/models"
)

// NewDB opens a migrated in-memory sqlite database private to t.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := "file:" + name + "?mode=memory&cache=shared&_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

// CreateUser inserts a user with a placeholder password hash.
func CreateUser(t *testing.T, db *gorm.DB, email string, role models.UserRole) models.User {
	t.Helper()
	u := models.User{Email: email, PasswordHash: "x", Role: role}
	require.NoError(t, db.Create(&u).Error)
	return u
}
