package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"storeadmin_backend/internals/features/content/faqs/dto"
	"storeadmin_backend/internals/features/content/faqs/model"
	helper "storeadmin_backend/internals/helpers"
)

type FaqController struct {
	DB *gorm.DB
}

func NewFaqController(db *gorm.DB) *FaqController {
	return &FaqController{DB: db}
}

var faqLifecycle = helper.Lifecycle{
	Table:           "faqs",
	IDColumn:        "faq_id",
	StatusColumn:    "faq_status",
	DeletedAtColumn: "faq_deleted_at",
}

func faqQuestionCheck(excludeID string) helper.UniqueCheck {
	return helper.UniqueCheck{
		Table:            "faqs",
		Column:           "faq_question",
		SoftDeleteColumn: "faq_deleted_at",
		IDColumn:         "faq_id",
		ExcludeID:        excludeID,
	}
}

// POST /api/a/faqs
func (ctrl *FaqController) CreateFaq(c *fiber.Ctx) error {
	var req dto.CreateFaqRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}

	req.FaqQuestion = strings.TrimSpace(req.FaqQuestion)

	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	taken, err := helper.IsTaken(ctrl.DB, faqQuestionCheck(""), req.FaqQuestion)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check question")
	}
	if taken {
		return helper.JsonError(c, fiber.StatusBadRequest, "Faq question already exists")
	}

	m := req.ToModel()
	if err := ctrl.DB.Create(&m).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return helper.JsonError(c, fiber.StatusBadRequest, "Faq question already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create faq")
	}

	return helper.JsonCreated(c, "Faq created", dto.ToFaqDTO(m))
}

// GET /api/a/faqs?page&limit&status
func (ctrl *FaqController) GetFaqs(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c)
	filter := helper.ResolveStatusFilter(c)

	q := ctrl.DB.Model(&model.FaqModel{})
	if filter != "total" {
		q = q.Where("faq_status = ?", filter)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count faqs")
	}

	var rows []model.FaqModel
	if err := q.Session(&gorm.Session{}).
		Order("faq_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve faqs")
	}

	return helper.JsonList(c, dto.ToFaqDTOs(rows), helper.BuildPagination(total, paging.Page, paging.Limit))
}

// GET /api/a/faqs/:id
func (ctrl *FaqController) GetFaqByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m model.FaqModel
	if err := ctrl.DB.First(&m, "faq_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Faq not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve faq")
	}
	return helper.JsonOK(c, "", dto.ToFaqDTO(m))
}

// PUT /api/a/faqs/:id
func (ctrl *FaqController) UpdateFaq(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m model.FaqModel
	if err := ctrl.DB.First(&m, "faq_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Faq not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve faq")
	}

	var req dto.UpdateFaqRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if req.FaqQuestion != nil {
		trimmed := strings.TrimSpace(*req.FaqQuestion)
		req.FaqQuestion = &trimmed
	}

	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if req.FaqQuestion != nil {
		taken, err := helper.IsTaken(ctrl.DB, faqQuestionCheck(id), *req.FaqQuestion)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check question")
		}
		if taken {
			return helper.JsonError(c, fiber.StatusBadRequest, "Faq question already exists")
		}
	}

	req.ApplyTo(&m)

	if err := ctrl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update faq")
	}

	return helper.JsonUpdated(c, "Faq updated", dto.ToFaqDTO(m))
}

// PATCH /api/a/faqs/:id/togglestatus
func (ctrl *FaqController) ToggleFaqStatus(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if _, err := faqLifecycle.Toggle(ctrl.DB, id); err != nil {
		if errors.Is(err, helper.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Faq not found")
		}
		return helper.FromFiberError(c, err)
	}

	var m model.FaqModel
	if err := ctrl.DB.First(&m, "faq_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve faq")
	}
	return helper.JsonUpdated(c, "Faq status updated", dto.ToFaqDTO(m))
}

// DELETE /api/a/faqs/:id/soft
func (ctrl *FaqController) SoftDeleteFaq(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := faqLifecycle.SoftDelete(ctrl.DB, id); err != nil {
		if errors.Is(err, helper.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Faq not found")
		}
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Faq moved to trash", fiber.Map{"faq_id": id})
}

// PATCH /api/a/faqs/:id/restore
func (ctrl *FaqController) RestoreFaq(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := faqLifecycle.Restore(ctrl.DB, id); err != nil {
		if errors.Is(err, helper.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Faq not found")
		}
		return helper.FromFiberError(c, err)
	}

	var m model.FaqModel
	if err := ctrl.DB.First(&m, "faq_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve faq")
	}
	return helper.JsonUpdated(c, "Faq restored", dto.ToFaqDTO(m))
}

// DELETE /api/a/faqs/:id/permanent
func (ctrl *FaqController) PermanentDeleteFaq(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m model.FaqModel
	if err := ctrl.DB.Unscoped().First(&m, "faq_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Faq not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve faq")
	}

	if err := faqLifecycle.HardDelete(ctrl.DB, id); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete faq")
	}
	return helper.JsonDeleted(c, "Faq permanently deleted", fiber.Map{"faq_id": id})
}

// GET /api/a/faqs/trash?page&limit
func (ctrl *FaqController) GetTrashedFaqs(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c)

	q := ctrl.DB.Unscoped().Model(&model.FaqModel{}).
		Where("faq_deleted_at IS NOT NULL")

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count trashed faqs")
	}

	var rows []model.FaqModel
	if err := q.Session(&gorm.Session{}).
		Order("faq_deleted_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve trashed faqs")
	}

	return helper.JsonList(c, dto.ToFaqDTOs(rows), helper.BuildPagination(total, paging.Page, paging.Limit))
}

// GET /api/a/faqs/stats
func (ctrl *FaqController) GetFaqStats(c *fiber.Ctx) error {
	stats, err := faqLifecycle.Counts(ctrl.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count faqs")
	}
	return helper.JsonOK(c, "", stats)
}
