package controller

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// The schema mirrors what the model tags declare: the unique index on the
// slug only covers rows whose deleted_at is NULL.
func newConfigApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatal(err)
	}
	ddl := `CREATE TABLE configs (
		config_id         TEXT PRIMARY KEY DEFAULT (lower(hex(randomblob(16)))),
		config_name       TEXT NOT NULL,
		config_slug       TEXT NOT NULL,
		config_options    TEXT NOT NULL DEFAULT '[]',
		config_status     TEXT NOT NULL DEFAULT 'active',
		config_created_at DATETIME,
		config_updated_at DATETIME,
		config_deleted_at DATETIME
	);
	CREATE UNIQUE INDEX uq_configs_slug ON configs (config_slug) WHERE config_deleted_at IS NULL;`
	if err := db.Exec(ddl).Error; err != nil {
		t.Fatal(err)
	}

	app := fiber.New()
	ctrl := NewConfigController(db)
	app.Post("/configs", ctrl.CreateConfig)
	return app, db
}

func postConfig(t *testing.T, app *fiber.App, name string) (int, string) {
	t.Helper()
	body, err := json.Marshal(fiber.Map{"config_name": name})
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest("POST", "/configs", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var envelope struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatal(err)
	}
	return resp.StatusCode, envelope.Message
}

func TestCreateConfigDuplicateSlug(t *testing.T) {
	app, _ := newConfigApp(t)

	code, _ := postConfig(t, app, "Shipping")
	if code != fiber.StatusCreated {
		t.Fatalf("first create = %d, want %d", code, fiber.StatusCreated)
	}

	code, msg := postConfig(t, app, "shipping!")
	if code != fiber.StatusBadRequest {
		t.Fatalf("duplicate create = %d, want %d", code, fiber.StatusBadRequest)
	}
	if msg != "Config slug already exists" {
		t.Fatalf("message = %q", msg)
	}
}

// A slug held only by a trashed row must be free again: the pre-check skips
// trashed rows and the partial unique index must let the insert through.
func TestCreateConfigReusesTrashedSlug(t *testing.T) {
	app, db := newConfigApp(t)

	if err := db.Exec(`INSERT INTO configs
		(config_id, config_name, config_slug, config_deleted_at)
		VALUES ('3b241101-e2bb-4255-8caf-4136c566a962', 'Shipping', 'shipping', CURRENT_TIMESTAMP)`,
	).Error; err != nil {
		t.Fatal(err)
	}

	code, msg := postConfig(t, app, "Shipping")
	if code != fiber.StatusCreated {
		t.Fatalf("create over trashed slug = %d (%s), want %d", code, msg, fiber.StatusCreated)
	}

	var live, trashed int64
	if err := db.Table("configs").
		Where("config_slug = ? AND config_deleted_at IS NULL", "shipping").
		Count(&live).Error; err != nil {
		t.Fatal(err)
	}
	if err := db.Table("configs").
		Where("config_slug = ? AND config_deleted_at IS NOT NULL", "shipping").
		Count(&trashed).Error; err != nil {
		t.Fatal(err)
	}
	if live != 1 || trashed != 1 {
		t.Fatalf("rows for slug: live=%d trashed=%d, want 1 and 1", live, trashed)
	}
}
