package helper

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Lifecycle states shared by every back-office resource.
// A row is Trashed when its deleted_at column is set; otherwise its status
// column holds active or inactive.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusTrashed  = "trashed"
)

// Lifecycle describes where a resource keeps its state columns, so every
// feature reuses the same transition set instead of hand-rolling flags.
type Lifecycle struct {
	Table           string
	IDColumn        string
	StatusColumn    string
	DeletedAtColumn string
}

type LifecycleStats struct {
	Total    int64 `json:"total"`
	Active   int64 `json:"active"`
	Inactive int64 `json:"inactive"`
	Trashed  int64 `json:"trashed"`
}

var ErrNotFound = errors.New("record not found")

// current returns (status, trashed) for the row, or ErrNotFound.
func (l Lifecycle) current(db *gorm.DB, id string) (string, bool, error) {
	var row struct {
		Status    string
		DeletedAt *time.Time
	}
	err := db.Table(l.Table).
		Select(fmt.Sprintf("%s AS status, %s AS deleted_at", l.StatusColumn, l.DeletedAtColumn)).
		Where(fmt.Sprintf("%s = ?", l.IDColumn), id).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, ErrNotFound
	}
	if err != nil {
		return "", false, err
	}
	return row.Status, row.DeletedAt != nil, nil
}

// Toggle flips active/inactive and returns the new status.
// Trashed rows must be restored first.
func (l Lifecycle) Toggle(db *gorm.DB, id string) (string, error) {
	status, trashed, err := l.current(db, id)
	if err != nil {
		return "", err
	}
	if trashed {
		return "", fiber.NewError(fiber.StatusBadRequest, "Cannot toggle a trashed record")
	}
	next := StatusActive
	if status == StatusActive {
		next = StatusInactive
	}
	if err := db.Table(l.Table).
		Where(fmt.Sprintf("%s = ?", l.IDColumn), id).
		Update(l.StatusColumn, next).Error; err != nil {
		return "", err
	}
	return next, nil
}

// SoftDelete moves an active or inactive row to the trash.
func (l Lifecycle) SoftDelete(db *gorm.DB, id string) error {
	_, trashed, err := l.current(db, id)
	if err != nil {
		return err
	}
	if trashed {
		return fiber.NewError(fiber.StatusBadRequest, "Record is already in trash")
	}
	return db.Table(l.Table).
		Where(fmt.Sprintf("%s = ?", l.IDColumn), id).
		Update(l.DeletedAtColumn, time.Now()).Error
}

// Restore brings a trashed row back; status resets to active.
func (l Lifecycle) Restore(db *gorm.DB, id string) error {
	_, trashed, err := l.current(db, id)
	if err != nil {
		return err
	}
	if !trashed {
		return fiber.NewError(fiber.StatusBadRequest, "Record is not in trash")
	}
	return db.Table(l.Table).
		Where(fmt.Sprintf("%s = ?", l.IDColumn), id).
		Updates(map[string]any{
			l.DeletedAtColumn: nil,
			l.StatusColumn:    StatusActive,
		}).Error
}

// HardDelete removes the row outright.
func (l Lifecycle) HardDelete(db *gorm.DB, id string) error {
	_, _, err := l.current(db, id)
	if err != nil {
		return err
	}
	return db.Exec(fmt.Sprintf("DELETE FROM %s WHERE %s = ?", l.Table, l.IDColumn), id).Error
}

// Counts reports the stats block the admin dashboard cards consume.
func (l Lifecycle) Counts(db *gorm.DB) (LifecycleStats, error) {
	var s LifecycleStats
	alive := db.Table(l.Table).Where(fmt.Sprintf("%s IS NULL", l.DeletedAtColumn))
	if err := alive.Session(&gorm.Session{}).Count(&s.Total).Error; err != nil {
		return s, err
	}
	if err := alive.Session(&gorm.Session{}).
		Where(fmt.Sprintf("%s = ?", l.StatusColumn), StatusActive).
		Count(&s.Active).Error; err != nil {
		return s, err
	}
	s.Inactive = s.Total - s.Active
	if err := db.Table(l.Table).
		Where(fmt.Sprintf("%s IS NOT NULL", l.DeletedAtColumn)).
		Count(&s.Trashed).Error; err != nil {
		return s, err
	}
	return s, nil
}
