package helper

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"gorm.io/gorm"
)

const DefaultSlugMaxLen = 160

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// GenerateSlug normalizes a display name into a slug:
// lower-case, non-alphanumerics collapsed into single dashes, trimmed.
func GenerateSlug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	lastDash := false
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastDash = false
		} else if !lastDash {
			b.WriteRune('-')
			lastDash = true
		}
	}
	out := strings.Trim(b.String(), "-")
	if len(out) > DefaultSlugMaxLen {
		out = strings.Trim(out[:DefaultSlugMaxLen], "-")
	}
	return out
}

// ValidSlug reports whether s already satisfies the slug pattern.
func ValidSlug(s string) bool {
	return slugPattern.MatchString(s)
}

// UniqueCheck describes how to check a unique column for a resource.
type UniqueCheck struct {
	Table  string
	Column string

	// Soft-delete column; rows with it set do not count against uniqueness.
	SoftDeleteColumn string

	// Row to exclude, for updates re-checking against themselves.
	IDColumn  string
	ExcludeID string
}

// IsTaken checks whether value is already used (case-insensitive) by a
// non-trashed row other than ExcludeID.
func IsTaken(db *gorm.DB, opt UniqueCheck, value string) (bool, error) {
	if opt.Table == "" || opt.Column == "" {
		return false, errors.New("unique check: table/column required")
	}
	q := db.Table(opt.Table).
		Where(fmt.Sprintf("lower(%s) = lower(?)", opt.Column), value)
	if opt.SoftDeleteColumn != "" {
		q = q.Where(fmt.Sprintf("%s IS NULL", opt.SoftDeleteColumn))
	}
	if opt.ExcludeID != "" && opt.IDColumn != "" {
		q = q.Where(fmt.Sprintf("%s <> ?", opt.IDColumn), opt.ExcludeID)
	}
	var cnt int64
	if err := q.Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}
