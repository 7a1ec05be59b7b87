package checkins

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yuchialin/gymdesk-backend/pkg/db"
	"github.com/yuchialin/gymdesk-backend/pkg/db/models"
)

func openTestDB(t *testing.T) (*gorm.DB, *db.Client) {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := conn.AutoMigrate(&models.Member{}, &models.CheckinRecord{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	return conn, db.NewFromGorm(conn)
}
