package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"storeadmin_backend/internals/features/marketing/newsletters/dto"
	"storeadmin_backend/internals/features/marketing/newsletters/model"
	"storeadmin_backend/internals/features/marketing/newsletters/service"
	helper "storeadmin_backend/internals/helpers"
)

type NewsletterController struct {
	DB *gorm.DB
}

func NewNewsletterController(db *gorm.DB) *NewsletterController {
	return &NewsletterController{DB: db}
}

var newsletterLifecycle = helper.Lifecycle{
	Table:           "newsletters",
	IDColumn:        "newsletter_id",
	StatusColumn:    "newsletter_status",
	DeletedAtColumn: "newsletter_deleted_at",
}

func newsletterSlugCheck(excludeID string) helper.UniqueCheck {
	return helper.UniqueCheck{
		Table:            "newsletters",
		Column:           "newsletter_slug",
		SoftDeleteColumn: "newsletter_deleted_at",
		IDColumn:         "newsletter_id",
		ExcludeID:        excludeID,
	}
}

// POST /api/a/newsletters
func (ctrl *NewsletterController) CreateNewsletter(c *fiber.Ctx) error {
	var req dto.CreateNewsletterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}

	req.NewsletterTitle = strings.TrimSpace(req.NewsletterTitle)
	if req.NewsletterSlug == "" {
		req.NewsletterSlug = helper.GenerateSlug(req.NewsletterTitle)
	} else {
		req.NewsletterSlug = helper.GenerateSlug(req.NewsletterSlug)
	}

	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if !helper.ValidSlug(req.NewsletterSlug) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Slug must contain only lowercase letters, numbers and hyphens")
	}

	taken, err := helper.IsTaken(ctrl.DB, newsletterSlugCheck(""), req.NewsletterSlug)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check slug")
	}
	if taken {
		return helper.JsonError(c, fiber.StatusBadRequest, "Newsletter slug already exists")
	}

	m := req.ToModel()

	if file, err := c.FormFile("newsletter_cover"); err == nil && file != nil {
		path, err := helper.SaveUploadedImage("newsletters", file)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		m.NewsletterCoverImageURL = &path
	}

	if err := ctrl.DB.Create(&m).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return helper.JsonError(c, fiber.StatusBadRequest, "Newsletter slug already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create newsletter")
	}

	// Materialization failure does not fail the request.
	service.WriteNewsletterHTML(m.NewsletterSlug, m.NewsletterTitle, m.NewsletterDescription)

	return helper.JsonCreated(c, "Newsletter created", dto.ToNewsletterDTO(m))
}

// GET /api/a/newsletters?page&limit&status
func (ctrl *NewsletterController) GetNewsletters(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c)
	filter := helper.ResolveStatusFilter(c)

	q := ctrl.DB.Model(&model.NewsletterModel{})
	if filter != "total" {
		q = q.Where("newsletter_status = ?", filter)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count newsletters")
	}

	var rows []model.NewsletterModel
	if err := q.Session(&gorm.Session{}).
		Order("newsletter_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve newsletters")
	}

	return helper.JsonList(c, dto.ToNewsletterDTOs(rows), helper.BuildPagination(total, paging.Page, paging.Limit))
}

// GET /api/a/newsletters/:id
func (ctrl *NewsletterController) GetNewsletterByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m model.NewsletterModel
	if err := ctrl.DB.First(&m, "newsletter_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Newsletter not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve newsletter")
	}
	return helper.JsonOK(c, "", dto.ToNewsletterDTO(m))
}

// PUT /api/a/newsletters/:id
func (ctrl *NewsletterController) UpdateNewsletter(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m model.NewsletterModel
	if err := ctrl.DB.First(&m, "newsletter_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Newsletter not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve newsletter")
	}
	oldSlug := m.NewsletterSlug

	var req dto.UpdateNewsletterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if req.NewsletterTitle != nil {
		trimmed := strings.TrimSpace(*req.NewsletterTitle)
		req.NewsletterTitle = &trimmed
	}
	if req.NewsletterSlug != nil {
		s := helper.GenerateSlug(*req.NewsletterSlug)
		req.NewsletterSlug = &s
	} else if req.NewsletterTitle != nil {
		s := helper.GenerateSlug(*req.NewsletterTitle)
		req.NewsletterSlug = &s
	}

	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if req.NewsletterSlug != nil {
		if !helper.ValidSlug(*req.NewsletterSlug) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Slug must contain only lowercase letters, numbers and hyphens")
		}
		taken, err := helper.IsTaken(ctrl.DB, newsletterSlugCheck(id), *req.NewsletterSlug)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check slug")
		}
		if taken {
			return helper.JsonError(c, fiber.StatusBadRequest, "Newsletter slug already exists")
		}
	}

	req.ApplyTo(&m)

	// The old file is only removed once the row is saved, so a failed save
	// never leaves it pointing at a missing file.
	var oldCover *string
	if file, err := c.FormFile("newsletter_cover"); err == nil && file != nil {
		path, err := helper.SaveUploadedImage("newsletters", file)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		oldCover = m.NewsletterCoverImageURL
		m.NewsletterCoverImageURL = &path
	}

	if err := ctrl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update newsletter")
	}

	if oldCover != nil {
		helper.DeleteUploadedImage(*oldCover)
	}

	if m.NewsletterSlug != oldSlug {
		service.RenameNewsletterHTML(oldSlug, m.NewsletterSlug, m.NewsletterTitle, m.NewsletterDescription)
	} else {
		service.WriteNewsletterHTML(m.NewsletterSlug, m.NewsletterTitle, m.NewsletterDescription)
	}

	return helper.JsonUpdated(c, "Newsletter updated", dto.ToNewsletterDTO(m))
}

// PATCH /api/a/newsletters/:id/togglestatus
func (ctrl *NewsletterController) ToggleNewsletterStatus(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if _, err := newsletterLifecycle.Toggle(ctrl.DB, id); err != nil {
		if errors.Is(err, helper.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Newsletter not found")
		}
		return helper.FromFiberError(c, err)
	}

	var m model.NewsletterModel
	if err := ctrl.DB.First(&m, "newsletter_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve newsletter")
	}
	return helper.JsonUpdated(c, "Newsletter status updated", dto.ToNewsletterDTO(m))
}

// DELETE /api/a/newsletters/:id/soft
func (ctrl *NewsletterController) SoftDeleteNewsletter(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := newsletterLifecycle.SoftDelete(ctrl.DB, id); err != nil {
		if errors.Is(err, helper.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Newsletter not found")
		}
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Newsletter moved to trash", fiber.Map{"newsletter_id": id})
}

// PATCH /api/a/newsletters/:id/restore
func (ctrl *NewsletterController) RestoreNewsletter(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := newsletterLifecycle.Restore(ctrl.DB, id); err != nil {
		if errors.Is(err, helper.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Newsletter not found")
		}
		return helper.FromFiberError(c, err)
	}

	var m model.NewsletterModel
	if err := ctrl.DB.First(&m, "newsletter_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve newsletter")
	}
	return helper.JsonUpdated(c, "Newsletter restored", dto.ToNewsletterDTO(m))
}

// DELETE /api/a/newsletters/:id/permanent
func (ctrl *NewsletterController) PermanentDeleteNewsletter(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m model.NewsletterModel
	if err := ctrl.DB.Unscoped().First(&m, "newsletter_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Newsletter not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve newsletter")
	}

	if err := newsletterLifecycle.HardDelete(ctrl.DB, id); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete newsletter")
	}
	if m.NewsletterCoverImageURL != nil {
		helper.DeleteUploadedImage(*m.NewsletterCoverImageURL)
	}
	service.RemoveNewsletterHTML(m.NewsletterSlug)

	return helper.JsonDeleted(c, "Newsletter permanently deleted", fiber.Map{"newsletter_id": id})
}

// GET /api/a/newsletters/trash?page&limit
func (ctrl *NewsletterController) GetTrashedNewsletters(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c)

	q := ctrl.DB.Unscoped().Model(&model.NewsletterModel{}).
		Where("newsletter_deleted_at IS NOT NULL")

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count trashed newsletters")
	}

	var rows []model.NewsletterModel
	if err := q.Session(&gorm.Session{}).
		Order("newsletter_deleted_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve trashed newsletters")
	}

	return helper.JsonList(c, dto.ToNewsletterDTOs(rows), helper.BuildPagination(total, paging.Page, paging.Limit))
}

// GET /api/a/newsletters/stats
func (ctrl *NewsletterController) GetNewsletterStats(c *fiber.Ctx) error {
	stats, err := newsletterLifecycle.Counts(ctrl.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count newsletters")
	}
	return helper.JsonOK(c, "", stats)
}
