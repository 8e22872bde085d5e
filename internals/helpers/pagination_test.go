package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func resolveVia(t *testing.T, target string) Paging {
	t.Helper()
	app := fiber.New()
	var got Paging
	app.Get("/", func(c *fiber.Ctx) error {
		got = ResolvePaging(c)
		return c.SendStatus(fiber.StatusOK)
	})
	if _, err := app.Test(httptest.NewRequest("GET", target, nil)); err != nil {
		t.Fatal(err)
	}
	return got
}

func TestResolvePaging(t *testing.T) {
	cases := []struct {
		target string
		page   int
		limit  int
		offset int
	}{
		{"/", 1, 10, 0},
		{"/?page=3&limit=20", 3, 20, 40},
		{"/?page=0", 1, 10, 0},
		{"/?page=-5&limit=-1", 1, 10, 0},
		{"/?limit=1000", 1, 100, 0},
		{"/?per_page=25", 1, 25, 0},
		{"/?limit=5&per_page=25", 1, 5, 0},
		{"/?page=abc&limit=xyz", 1, 10, 0},
	}
	for _, tc := range cases {
		p := resolveVia(t, tc.target)
		if p.Page != tc.page || p.Limit != tc.limit || p.Offset != tc.offset {
			t.Errorf("%s => %+v, want page=%d limit=%d offset=%d", tc.target, p, tc.page, tc.limit, tc.offset)
		}
	}
}

func TestResolveStatusFilter(t *testing.T) {
	cases := []struct {
		target string
		want   string
	}{
		{"/", "total"},
		{"/?status=active", StatusActive},
		{"/?status=ACTIVE", StatusActive},
		{"/?status=inactive", StatusInactive},
		{"/?status=trashed", "total"},
		{"/?status=garbage", "total"},
	}
	for _, tc := range cases {
		app := fiber.New()
		var got string
		app.Get("/", func(c *fiber.Ctx) error {
			got = ResolveStatusFilter(c)
			return c.SendStatus(fiber.StatusOK)
		})
		if _, err := app.Test(httptest.NewRequest("GET", tc.target, nil)); err != nil {
			t.Fatal(err)
		}
		if got != tc.want {
			t.Errorf("%s => %q, want %q", tc.target, got, tc.want)
		}
	}
}
