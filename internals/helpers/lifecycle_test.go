package helper

import (
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var itemLifecycle = Lifecycle{
	Table:           "items",
	IDColumn:        "item_id",
	StatusColumn:    "item_status",
	DeletedAtColumn: "item_deleted_at",
}

func openItemDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatal(err)
	}
	ddl := `CREATE TABLE items (
		item_id         TEXT PRIMARY KEY,
		item_slug       TEXT NOT NULL,
		item_status     TEXT NOT NULL DEFAULT 'active',
		item_deleted_at DATETIME
	);
	CREATE UNIQUE INDEX uq_items_slug ON items (item_slug) WHERE item_deleted_at IS NULL;`
	if err := db.Exec(ddl).Error; err != nil {
		t.Fatal(err)
	}
	return db
}

func seedItem(t *testing.T, db *gorm.DB, id, slug, status string) {
	t.Helper()
	if err := db.Exec(
		"INSERT INTO items (item_id, item_slug, item_status) VALUES (?, ?, ?)",
		id, slug, status,
	).Error; err != nil {
		t.Fatal(err)
	}
}

func fiberStatus(t *testing.T, err error) int {
	t.Helper()
	var fe *fiber.Error
	if !errors.As(err, &fe) {
		t.Fatalf("expected *fiber.Error, got %v", err)
	}
	return fe.Code
}

func TestToggleRoundTrip(t *testing.T) {
	db := openItemDB(t)
	seedItem(t, db, "a1", "alpha", StatusActive)

	next, err := itemLifecycle.Toggle(db, "a1")
	if err != nil {
		t.Fatal(err)
	}
	if next != StatusInactive {
		t.Fatalf("first toggle = %q, want %q", next, StatusInactive)
	}

	next, err = itemLifecycle.Toggle(db, "a1")
	if err != nil {
		t.Fatal(err)
	}
	if next != StatusActive {
		t.Fatalf("second toggle = %q, want %q", next, StatusActive)
	}
}

func TestToggleTrashedRejected(t *testing.T) {
	db := openItemDB(t)
	seedItem(t, db, "a1", "alpha", StatusActive)
	if err := itemLifecycle.SoftDelete(db, "a1"); err != nil {
		t.Fatal(err)
	}

	_, err := itemLifecycle.Toggle(db, "a1")
	if code := fiberStatus(t, err); code != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want %d", code, fiber.StatusBadRequest)
	}
}

func TestSoftDeleteMovesToTrash(t *testing.T) {
	db := openItemDB(t)
	seedItem(t, db, "a1", "alpha", StatusActive)
	seedItem(t, db, "b2", "beta", StatusInactive)

	if err := itemLifecycle.SoftDelete(db, "a1"); err != nil {
		t.Fatal(err)
	}

	var live int64
	if err := db.Table("items").Where("item_deleted_at IS NULL").Count(&live).Error; err != nil {
		t.Fatal(err)
	}
	if live != 1 {
		t.Fatalf("live rows = %d, want 1", live)
	}

	var trashed int64
	if err := db.Table("items").Where("item_deleted_at IS NOT NULL").Count(&trashed).Error; err != nil {
		t.Fatal(err)
	}
	if trashed != 1 {
		t.Fatalf("trashed rows = %d, want 1", trashed)
	}

	err := itemLifecycle.SoftDelete(db, "a1")
	if code := fiberStatus(t, err); code != fiber.StatusBadRequest {
		t.Fatalf("second soft delete status = %d, want %d", code, fiber.StatusBadRequest)
	}
}

func TestRestoreResetsToActive(t *testing.T) {
	db := openItemDB(t)
	seedItem(t, db, "a1", "alpha", StatusInactive)

	if err := itemLifecycle.SoftDelete(db, "a1"); err != nil {
		t.Fatal(err)
	}
	if err := itemLifecycle.Restore(db, "a1"); err != nil {
		t.Fatal(err)
	}

	var row struct {
		ItemStatus    string
		ItemDeletedAt *time.Time
	}
	if err := db.Table("items").
		Select("item_status, item_deleted_at").
		Where("item_id = ?", "a1").
		Take(&row).Error; err != nil {
		t.Fatal(err)
	}
	if row.ItemStatus != StatusActive {
		t.Fatalf("status after restore = %q, want %q", row.ItemStatus, StatusActive)
	}
	if row.ItemDeletedAt != nil {
		t.Fatalf("deleted_at after restore = %v, want NULL", *row.ItemDeletedAt)
	}
}

func TestRestoreNotTrashedRejected(t *testing.T) {
	db := openItemDB(t)
	seedItem(t, db, "a1", "alpha", StatusActive)

	err := itemLifecycle.Restore(db, "a1")
	if code := fiberStatus(t, err); code != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want %d", code, fiber.StatusBadRequest)
	}
}

func TestHardDeleteRemovesRow(t *testing.T) {
	db := openItemDB(t)
	seedItem(t, db, "a1", "alpha", StatusActive)

	if err := itemLifecycle.HardDelete(db, "a1"); err != nil {
		t.Fatal(err)
	}

	var n int64
	if err := db.Table("items").Count(&n).Error; err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatalf("rows after hard delete = %d, want 0", n)
	}

	if err := itemLifecycle.HardDelete(db, "a1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestLifecycleNotFound(t *testing.T) {
	db := openItemDB(t)

	if _, err := itemLifecycle.Toggle(db, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Toggle err = %v, want ErrNotFound", err)
	}
	if err := itemLifecycle.SoftDelete(db, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("SoftDelete err = %v, want ErrNotFound", err)
	}
	if err := itemLifecycle.Restore(db, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Restore err = %v, want ErrNotFound", err)
	}
}

func TestCounts(t *testing.T) {
	db := openItemDB(t)
	seedItem(t, db, "a1", "alpha", StatusActive)
	seedItem(t, db, "b2", "beta", StatusActive)
	seedItem(t, db, "c3", "gamma", StatusInactive)
	seedItem(t, db, "d4", "delta", StatusActive)
	if err := itemLifecycle.SoftDelete(db, "d4"); err != nil {
		t.Fatal(err)
	}

	stats, err := itemLifecycle.Counts(db)
	if err != nil {
		t.Fatal(err)
	}
	want := LifecycleStats{Total: 3, Active: 2, Inactive: 1, Trashed: 1}
	if stats != want {
		t.Fatalf("stats = %+v, want %+v", stats, want)
	}
}

// A slug held by a trashed row must be free for a new record; the unique
// index on every slug/code column is scoped to rows whose deleted_at is
// NULL for exactly this reason.
func TestSlugFreedBySoftDelete(t *testing.T) {
	db := openItemDB(t)
	seedItem(t, db, "a1", "shipping", StatusActive)

	check := UniqueCheck{
		Table:            "items",
		Column:           "item_slug",
		SoftDeleteColumn: "item_deleted_at",
		IDColumn:         "item_id",
	}

	taken, err := IsTaken(db, check, "shipping")
	if err != nil {
		t.Fatal(err)
	}
	if !taken {
		t.Fatal("slug of a live row should be taken")
	}

	if err := itemLifecycle.SoftDelete(db, "a1"); err != nil {
		t.Fatal(err)
	}

	taken, err = IsTaken(db, check, "shipping")
	if err != nil {
		t.Fatal(err)
	}
	if taken {
		t.Fatal("slug of a trashed row should be free")
	}

	// The insert must also clear the scoped unique index.
	seedItem(t, db, "b2", "shipping", StatusActive)
}
