package controller

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"storeadmin_backend/internals/features/catalog/brands/model"
)

const testBrandID = "3b241101-e2bb-4255-8caf-4136c566a962"

func newBrandApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatal(err)
	}
	ddl := `CREATE TABLE brands (
		brand_id          TEXT PRIMARY KEY,
		brand_name        TEXT NOT NULL,
		brand_slug        TEXT NOT NULL,
		brand_description TEXT,
		brand_website     TEXT,
		brand_logo_url    TEXT,
		brand_status      TEXT NOT NULL DEFAULT 'active',
		brand_created_at  DATETIME,
		brand_updated_at  DATETIME,
		brand_deleted_at  DATETIME
	);`
	if err := db.Exec(ddl).Error; err != nil {
		t.Fatal(err)
	}

	app := fiber.New()
	ctrl := NewBrandController(db)
	app.Put("/brands/:id", ctrl.UpdateBrand)
	return app, db
}

func seedBrandWithLogo(t *testing.T, db *gorm.DB, uploadDir string) string {
	t.Helper()
	logoRel := "brands/old-logo.png"
	full := filepath.Join(uploadDir, filepath.FromSlash(logoRel))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(full, pngLogoBytes(t), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := db.Exec(`INSERT INTO brands
		(brand_id, brand_name, brand_slug, brand_logo_url, brand_created_at, brand_updated_at)
		VALUES (?, 'Acme', 'acme', ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)`,
		testBrandID, logoRel,
	).Error; err != nil {
		t.Fatal(err)
	}
	return full
}

func pngLogoBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func putBrandLogo(t *testing.T, app *fiber.App) int {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("brand_logo", "logo.png")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write(pngLogoBytes(t)); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest("PUT", "/brands/"+testBrandID, &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := app.Test(req, 10000)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	return resp.StatusCode
}

func TestUpdateBrandReplacesLogoAfterSave(t *testing.T) {
	uploadDir := t.TempDir()
	t.Setenv("UPLOAD_DIR", uploadDir)

	app, db := newBrandApp(t)
	oldFull := seedBrandWithLogo(t, db, uploadDir)

	if code := putBrandLogo(t, app); code != fiber.StatusOK {
		t.Fatalf("update = %d, want %d", code, fiber.StatusOK)
	}

	if _, err := os.Stat(oldFull); !os.IsNotExist(err) {
		t.Fatalf("old logo still on disk after successful update: %v", err)
	}

	var m model.BrandModel
	if err := db.First(&m, "brand_id = ?", testBrandID).Error; err != nil {
		t.Fatal(err)
	}
	if m.BrandLogoURL == nil || *m.BrandLogoURL == "brands/old-logo.png" {
		t.Fatalf("logo url not replaced: %v", m.BrandLogoURL)
	}
	newFull := filepath.Join(uploadDir, filepath.FromSlash(*m.BrandLogoURL))
	if _, err := os.Stat(newFull); err != nil {
		t.Fatalf("new logo missing: %v", err)
	}
}

// When the row cannot be saved the stored logo must stay on disk; only a
// successful save may remove it.
func TestUpdateBrandKeepsOldLogoWhenSaveFails(t *testing.T) {
	uploadDir := t.TempDir()
	t.Setenv("UPLOAD_DIR", uploadDir)

	app, db := newBrandApp(t)
	oldFull := seedBrandWithLogo(t, db, uploadDir)

	if err := db.Exec(`CREATE TRIGGER brands_block BEFORE UPDATE ON brands
		BEGIN SELECT RAISE(ABORT, 'update blocked'); END`).Error; err != nil {
		t.Fatal(err)
	}

	if code := putBrandLogo(t, app); code != fiber.StatusInternalServerError {
		t.Fatalf("update = %d, want %d", code, fiber.StatusInternalServerError)
	}

	if _, err := os.Stat(oldFull); err != nil {
		t.Fatalf("old logo removed although save failed: %v", err)
	}

	var m model.BrandModel
	if err := db.First(&m, "brand_id = ?", testBrandID).Error; err != nil {
		t.Fatal(err)
	}
	if m.BrandLogoURL == nil || *m.BrandLogoURL != "brands/old-logo.png" {
		t.Fatalf("logo url changed although save failed: %v", m.BrandLogoURL)
	}
}
