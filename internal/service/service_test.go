package service

import (
	"DocVault/config"
	"DocVault/internal/repo"
	"DocVault/model"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// setupTestDB points repo.Db at a fresh in-memory SQLite database. A single
// connection keeps the database (and the foreign_keys pragma) alive for the
// whole test.
func setupTestDB(t *testing.T) {
	t.Helper()
	config.InitConfig()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db failed: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("enable foreign keys failed: %v", err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.FileSystemItem{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	repo.Db = db
	repo.SeedDemoUsers(db)
}

// testUser returns the first seeded demo user.
func testUser(t *testing.T) *model.User {
	t.Helper()
	var user model.User
	if err := repo.Db.Order("id").First(&user).Error; err != nil {
		t.Fatalf("load seeded user failed: %v", err)
	}
	return &user
}

func strPtr(s string) *string { return &s }

func int64Ptr(n int64) *int64 { return &n }

// mustCreateItem inserts an item row directly, bypassing the service.
func mustCreateItem(t *testing.T, item *model.FileSystemItem) *model.FileSystemItem {
	t.Helper()
	if err := repo.Db.Create(item).Error; err != nil {
		t.Fatalf("create item %q failed: %v", item.Name, err)
	}
	return item
}
