package helper

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestBuildPagination(t *testing.T) {
	cases := []struct {
		name       string
		total      int64
		page       int
		limit      int
		totalPages int
		hasNext    bool
		hasPrev    bool
	}{
		{"empty set reports one page", 0, 1, 10, 1, false, false},
		{"exact fit", 20, 1, 10, 2, true, false},
		{"remainder rounds up", 21, 1, 10, 3, true, false},
		{"last page", 21, 3, 10, 3, false, true},
		{"middle page", 50, 3, 10, 5, true, true},
		{"single row", 1, 1, 10, 1, false, false},
		{"zero limit falls back", 25, 1, 0, 3, true, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := BuildPagination(tc.total, tc.page, tc.limit)
			if p.TotalPages != tc.totalPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tc.totalPages)
			}
			if p.HasNext != tc.hasNext {
				t.Errorf("HasNext = %v, want %v", p.HasNext, tc.hasNext)
			}
			if p.HasPrev != tc.hasPrev {
				t.Errorf("HasPrev = %v, want %v", p.HasPrev, tc.hasPrev)
			}
			if p.Total != tc.total {
				t.Errorf("Total = %d, want %d", p.Total, tc.total)
			}
		})
	}
}

func decodeBody(t *testing.T, r io.Reader) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.NewDecoder(r).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}

func TestJsonEnvelopes(t *testing.T) {
	app := fiber.New()
	app.Get("/ok", func(c *fiber.Ctx) error {
		return JsonOK(c, "done", fiber.Map{"x": 1})
	})
	app.Get("/ok-nomsg", func(c *fiber.Ctx) error {
		return JsonOK(c, "", fiber.Map{"x": 1})
	})
	app.Get("/created", func(c *fiber.Ctx) error {
		return JsonCreated(c, "created", nil)
	})
	app.Get("/fail", func(c *fiber.Ctx) error {
		return JsonError(c, fiber.StatusBadRequest, "nope")
	})
	app.Get("/list", func(c *fiber.Ctx) error {
		return JsonList(c, []int{1, 2}, BuildPagination(2, 1, 10))
	})

	t.Run("success with message", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != 200 {
			t.Fatalf("status = %d", resp.StatusCode)
		}
		body := decodeBody(t, resp.Body)
		if body["status"] != "success" || body["message"] != "done" {
			t.Errorf("unexpected body %v", body)
		}
	})

	t.Run("empty message omitted", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest("GET", "/ok-nomsg", nil))
		body := decodeBody(t, resp.Body)
		if _, ok := body["message"]; ok {
			t.Errorf("message should be omitted, got %v", body)
		}
	})

	t.Run("created is 201", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest("GET", "/created", nil))
		if resp.StatusCode != 201 {
			t.Fatalf("status = %d", resp.StatusCode)
		}
	})

	t.Run("fail envelope", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest("GET", "/fail", nil))
		if resp.StatusCode != 400 {
			t.Fatalf("status = %d", resp.StatusCode)
		}
		body := decodeBody(t, resp.Body)
		if body["status"] != "fail" || body["message"] != "nope" {
			t.Errorf("unexpected body %v", body)
		}
	})

	t.Run("list carries pagination", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest("GET", "/list", nil))
		body := decodeBody(t, resp.Body)
		pg, ok := body["pagination"].(map[string]any)
		if !ok {
			t.Fatalf("no pagination block in %v", body)
		}
		if pg["total_pages"] != float64(1) {
			t.Errorf("total_pages = %v", pg["total_pages"])
		}
	})
}
