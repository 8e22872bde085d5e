package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Pagination meta
=================================*/

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// BuildPagination computes the meta block for a page of results.
// TotalPages = ceil(total/limit); an empty result set still reports page 1 of 1.
func BuildPagination(total int64, page, limit int) Pagination {
	if limit <= 0 {
		limit = 10
	}
	if page <= 0 {
		page = 1
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	if totalPages == 0 {
		totalPages = 1
	}
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

/* ===============================
   Response envelope
   {status: "success"|"fail", data?, message?}
=================================*/

func JsonOK(c *fiber.Ctx, message string, data any) error {
	return jsonSuccess(c, fiber.StatusOK, message, data)
}

func JsonCreated(c *fiber.Ctx, message string, data any) error {
	return jsonSuccess(c, fiber.StatusCreated, message, data)
}

func JsonUpdated(c *fiber.Ctx, message string, data any) error {
	return jsonSuccess(c, fiber.StatusOK, message, data)
}

func JsonDeleted(c *fiber.Ctx, message string, data any) error {
	return jsonSuccess(c, fiber.StatusOK, message, data)
}

// JsonList: paginated listing response.
func JsonList(c *fiber.Ctx, data any, pagination Pagination) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":     "success",
		"data":       data,
		"pagination": pagination,
	})
}

func jsonSuccess(c *fiber.Ctx, status int, message string, data any) error {
	body := fiber.Map{
		"status": "success",
		"data":   data,
	}
	if strings.TrimSpace(message) != "" {
		body["message"] = message
	}
	return c.Status(status).JSON(body)
}

func JsonError(c *fiber.Ctx, status int, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	if strings.TrimSpace(message) == "" {
		message = "Internal Server Error"
	}
	return c.Status(status).JSON(fiber.Map{
		"status":  "fail",
		"message": message,
	})
}

// FromFiberError converts an error bubbled out of a transaction (usually a
// *fiber.Error) into the standard envelope; anything else becomes a 500.
func FromFiberError(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return JsonError(c, fe.Code, fe.Message)
	}
	return JsonError(c, fiber.StatusInternalServerError, err.Error())
}
