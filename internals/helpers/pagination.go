package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

type Paging struct {
	Page   int
	Limit  int
	Offset int
}

// ResolvePaging reads ?page= & ?limit= (alias ?per_page=) and normalizes.
func ResolvePaging(c *fiber.Ctx) Paging {
	page, _ := strconv.Atoi(strings.TrimSpace(c.Query("page", "1")))
	if page < 1 {
		page = DefaultPage
	}

	limitStr := strings.TrimSpace(c.Query("limit"))
	if limitStr == "" {
		limitStr = strings.TrimSpace(c.Query("per_page", strconv.Itoa(DefaultLimit)))
	}
	limit, _ := strconv.Atoi(limitStr)
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return Paging{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

// ResolveStatusFilter reads ?status= and maps it to a listing filter.
// Valid values: active, inactive, total (default).
func ResolveStatusFilter(c *fiber.Ctx) string {
	switch strings.ToLower(strings.TrimSpace(c.Query("status", "total"))) {
	case StatusActive:
		return StatusActive
	case StatusInactive:
		return StatusInactive
	default:
		return "total"
	}
}
