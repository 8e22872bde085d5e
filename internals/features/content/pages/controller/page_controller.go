package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"storeadmin_backend/internals/features/content/pages/dto"
	"storeadmin_backend/internals/features/content/pages/model"
	helper "storeadmin_backend/internals/helpers"
)

type PageController struct {
	DB *gorm.DB
}

func NewPageController(db *gorm.DB) *PageController {
	return &PageController{DB: db}
}

var pageLifecycle = helper.Lifecycle{
	Table:           "pages",
	IDColumn:        "page_id",
	StatusColumn:    "page_status",
	DeletedAtColumn: "page_deleted_at",
}

func pageSlugCheck(excludeID string) helper.UniqueCheck {
	return helper.UniqueCheck{
		Table:            "pages",
		Column:           "page_slug",
		SoftDeleteColumn: "page_deleted_at",
		IDColumn:         "page_id",
		ExcludeID:        excludeID,
	}
}

// POST /api/a/pages
func (ctrl *PageController) CreatePage(c *fiber.Ctx) error {
	var req dto.CreatePageRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}

	req.PageTitle = strings.TrimSpace(req.PageTitle)
	if req.PageSlug == "" {
		req.PageSlug = helper.GenerateSlug(req.PageTitle)
	} else {
		req.PageSlug = helper.GenerateSlug(req.PageSlug)
	}

	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if !helper.ValidSlug(req.PageSlug) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Slug must contain only lowercase letters, numbers and hyphens")
	}

	taken, err := helper.IsTaken(ctrl.DB, pageSlugCheck(""), req.PageSlug)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check slug")
	}
	if taken {
		return helper.JsonError(c, fiber.StatusBadRequest, "Page slug already exists")
	}

	m := req.ToModel()
	if err := ctrl.DB.Create(&m).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return helper.JsonError(c, fiber.StatusBadRequest, "Page slug already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create page")
	}

	return helper.JsonCreated(c, "Page created", dto.ToPageDTO(m))
}

// GET /api/a/pages?page&limit&status
func (ctrl *PageController) GetPages(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c)
	filter := helper.ResolveStatusFilter(c)

	q := ctrl.DB.Model(&model.PageModel{})
	if filter != "total" {
		q = q.Where("page_status = ?", filter)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count pages")
	}

	var rows []model.PageModel
	if err := q.Session(&gorm.Session{}).
		Order("page_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve pages")
	}

	return helper.JsonList(c, dto.ToPageDTOs(rows), helper.BuildPagination(total, paging.Page, paging.Limit))
}

// GET /api/a/pages/:id
func (ctrl *PageController) GetPageByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m model.PageModel
	if err := ctrl.DB.First(&m, "page_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Page not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve page")
	}
	return helper.JsonOK(c, "", dto.ToPageDTO(m))
}

// PUT /api/a/pages/:id
func (ctrl *PageController) UpdatePage(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m model.PageModel
	if err := ctrl.DB.First(&m, "page_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Page not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve page")
	}

	var req dto.UpdatePageRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if req.PageTitle != nil {
		trimmed := strings.TrimSpace(*req.PageTitle)
		req.PageTitle = &trimmed
	}
	if req.PageSlug != nil {
		s := helper.GenerateSlug(*req.PageSlug)
		req.PageSlug = &s
	} else if req.PageTitle != nil {
		s := helper.GenerateSlug(*req.PageTitle)
		req.PageSlug = &s
	}

	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if req.PageSlug != nil {
		if !helper.ValidSlug(*req.PageSlug) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Slug must contain only lowercase letters, numbers and hyphens")
		}
		taken, err := helper.IsTaken(ctrl.DB, pageSlugCheck(id), *req.PageSlug)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check slug")
		}
		if taken {
			return helper.JsonError(c, fiber.StatusBadRequest, "Page slug already exists")
		}
	}

	req.ApplyTo(&m)

	if err := ctrl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update page")
	}

	return helper.JsonUpdated(c, "Page updated", dto.ToPageDTO(m))
}

// PATCH /api/a/pages/:id/togglestatus
func (ctrl *PageController) TogglePageStatus(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if _, err := pageLifecycle.Toggle(ctrl.DB, id); err != nil {
		if errors.Is(err, helper.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Page not found")
		}
		return helper.FromFiberError(c, err)
	}

	var m model.PageModel
	if err := ctrl.DB.First(&m, "page_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve page")
	}
	return helper.JsonUpdated(c, "Page status updated", dto.ToPageDTO(m))
}

// DELETE /api/a/pages/:id/soft
func (ctrl *PageController) SoftDeletePage(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := pageLifecycle.SoftDelete(ctrl.DB, id); err != nil {
		if errors.Is(err, helper.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Page not found")
		}
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Page moved to trash", fiber.Map{"page_id": id})
}

// PATCH /api/a/pages/:id/restore
func (ctrl *PageController) RestorePage(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := pageLifecycle.Restore(ctrl.DB, id); err != nil {
		if errors.Is(err, helper.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Page not found")
		}
		return helper.FromFiberError(c, err)
	}

	var m model.PageModel
	if err := ctrl.DB.First(&m, "page_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve page")
	}
	return helper.JsonUpdated(c, "Page restored", dto.ToPageDTO(m))
}

// DELETE /api/a/pages/:id/permanent
func (ctrl *PageController) PermanentDeletePage(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m model.PageModel
	if err := ctrl.DB.Unscoped().First(&m, "page_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Page not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve page")
	}

	if err := pageLifecycle.HardDelete(ctrl.DB, id); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete page")
	}
	return helper.JsonDeleted(c, "Page permanently deleted", fiber.Map{"page_id": id})
}

// GET /api/a/pages/trash?page&limit
func (ctrl *PageController) GetTrashedPages(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c)

	q := ctrl.DB.Unscoped().Model(&model.PageModel{}).
		Where("page_deleted_at IS NOT NULL")

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count trashed pages")
	}

	var rows []model.PageModel
	if err := q.Session(&gorm.Session{}).
		Order("page_deleted_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve trashed pages")
	}

	return helper.JsonList(c, dto.ToPageDTOs(rows), helper.BuildPagination(total, paging.Page, paging.Limit))
}

// GET /api/a/pages/stats
func (ctrl *PageController) GetPageStats(c *fiber.Ctx) error {
	stats, err := pageLifecycle.Counts(ctrl.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count pages")
	}
	return helper.JsonOK(c, "", stats)
}
