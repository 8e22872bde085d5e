package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"storeadmin_backend/internals/features/catalog/categories/dto"
	"storeadmin_backend/internals/features/catalog/categories/model"
	helper "storeadmin_backend/internals/helpers"
)

type CategoryController struct {
	DB *gorm.DB
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{DB: db}
}

var categoryLifecycle = helper.Lifecycle{
	Table:           "categories",
	IDColumn:        "category_id",
	StatusColumn:    "category_status",
	DeletedAtColumn: "category_deleted_at",
}

func categorySlugCheck(excludeID string) helper.UniqueCheck {
	return helper.UniqueCheck{
		Table:            "categories",
		Column:           "category_slug",
		SoftDeleteColumn: "category_deleted_at",
		IDColumn:         "category_id",
		ExcludeID:        excludeID,
	}
}

// POST /api/a/categories
func (ctrl *CategoryController) CreateCategory(c *fiber.Ctx) error {
	var req dto.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}

	req.CategoryName = strings.TrimSpace(req.CategoryName)
	if req.CategorySlug != "" {
		req.CategorySlug = helper.GenerateSlug(req.CategorySlug)
	} else {
		req.CategorySlug = helper.GenerateSlug(req.CategoryName)
	}

	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if !helper.ValidSlug(req.CategorySlug) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Slug must contain only lowercase letters, numbers and hyphens")
	}

	taken, err := helper.IsTaken(ctrl.DB, categorySlugCheck(""), req.CategorySlug)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check slug")
	}
	if taken {
		return helper.JsonError(c, fiber.StatusBadRequest, "Category slug already exists")
	}

	m := req.ToModel()

	if file, err := c.FormFile("category_image"); err == nil && file != nil {
		path, err := helper.SaveUploadedImage("categories", file)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		m.CategoryImageURL = &path
	}

	if err := ctrl.DB.Create(&m).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return helper.JsonError(c, fiber.StatusBadRequest, "Category slug already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create category")
	}

	return helper.JsonCreated(c, "Category created", dto.ToCategoryDTO(m))
}

// GET /api/a/categories?page&limit&status
func (ctrl *CategoryController) GetCategories(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c)
	filter := helper.ResolveStatusFilter(c)

	q := ctrl.DB.Model(&model.CategoryModel{})
	if filter != "total" {
		q = q.Where("category_status = ?", filter)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count categories")
	}

	var rows []model.CategoryModel
	if err := q.Session(&gorm.Session{}).
		Order("category_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve categories")
	}

	return helper.JsonList(c, dto.ToCategoryDTOs(rows), helper.BuildPagination(total, paging.Page, paging.Limit))
}

// GET /api/a/categories/:id
func (ctrl *CategoryController) GetCategoryByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m model.CategoryModel
	if err := ctrl.DB.First(&m, "category_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Category not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve category")
	}
	return helper.JsonOK(c, "", dto.ToCategoryDTO(m))
}

// PUT /api/a/categories/:id
func (ctrl *CategoryController) UpdateCategory(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m model.CategoryModel
	if err := ctrl.DB.First(&m, "category_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Category not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve category")
	}

	var req dto.UpdateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if req.CategoryName != nil {
		trimmed := strings.TrimSpace(*req.CategoryName)
		req.CategoryName = &trimmed
	}
	if req.CategorySlug != nil {
		s := helper.GenerateSlug(*req.CategorySlug)
		req.CategorySlug = &s
	} else if req.CategoryName != nil {
		s := helper.GenerateSlug(*req.CategoryName)
		req.CategorySlug = &s
	}

	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if req.CategorySlug != nil {
		if !helper.ValidSlug(*req.CategorySlug) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Slug must contain only lowercase letters, numbers and hyphens")
		}
		taken, err := helper.IsTaken(ctrl.DB, categorySlugCheck(id), *req.CategorySlug)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check slug")
		}
		if taken {
			return helper.JsonError(c, fiber.StatusBadRequest, "Category slug already exists")
		}
	}

	req.ApplyTo(&m)

	// The old file is only removed once the row is saved, so a failed save
	// never leaves it pointing at a missing file.
	var oldImage *string
	if file, err := c.FormFile("category_image"); err == nil && file != nil {
		path, err := helper.SaveUploadedImage("categories", file)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		oldImage = m.CategoryImageURL
		m.CategoryImageURL = &path
	}

	if err := ctrl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update category")
	}

	if oldImage != nil {
		helper.DeleteUploadedImage(*oldImage)
	}

	return helper.JsonUpdated(c, "Category updated", dto.ToCategoryDTO(m))
}

// PATCH /api/a/categories/:id/togglestatus
func (ctrl *CategoryController) ToggleCategoryStatus(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if _, err := categoryLifecycle.Toggle(ctrl.DB, id); err != nil {
		if errors.Is(err, helper.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Category not found")
		}
		return helper.FromFiberError(c, err)
	}

	var m model.CategoryModel
	if err := ctrl.DB.First(&m, "category_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve category")
	}
	return helper.JsonUpdated(c, "Category status updated", dto.ToCategoryDTO(m))
}

// DELETE /api/a/categories/:id/soft
func (ctrl *CategoryController) SoftDeleteCategory(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := categoryLifecycle.SoftDelete(ctrl.DB, id); err != nil {
		if errors.Is(err, helper.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Category not found")
		}
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Category moved to trash", fiber.Map{"category_id": id})
}

// PATCH /api/a/categories/:id/restore
func (ctrl *CategoryController) RestoreCategory(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := categoryLifecycle.Restore(ctrl.DB, id); err != nil {
		if errors.Is(err, helper.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Category not found")
		}
		return helper.FromFiberError(c, err)
	}

	var m model.CategoryModel
	if err := ctrl.DB.First(&m, "category_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve category")
	}
	return helper.JsonUpdated(c, "Category restored", dto.ToCategoryDTO(m))
}

// DELETE /api/a/categories/:id/permanent
func (ctrl *CategoryController) PermanentDeleteCategory(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m model.CategoryModel
	if err := ctrl.DB.Unscoped().First(&m, "category_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Category not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve category")
	}

	if err := categoryLifecycle.HardDelete(ctrl.DB, id); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete category")
	}
	if m.CategoryImageURL != nil {
		helper.DeleteUploadedImage(*m.CategoryImageURL)
	}
	return helper.JsonDeleted(c, "Category permanently deleted", fiber.Map{"category_id": id})
}

// GET /api/a/categories/trash?page&limit
func (ctrl *CategoryController) GetTrashedCategories(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c)

	q := ctrl.DB.Unscoped().Model(&model.CategoryModel{}).
		Where("category_deleted_at IS NOT NULL")

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count trashed categories")
	}

	var rows []model.CategoryModel
	if err := q.Session(&gorm.Session{}).
		Order("category_deleted_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve trashed categories")
	}

	return helper.JsonList(c, dto.ToCategoryDTOs(rows), helper.BuildPagination(total, paging.Page, paging.Limit))
}

// GET /api/a/categories/stats
func (ctrl *CategoryController) GetCategoryStats(c *fiber.Ctx) error {
	stats, err := categoryLifecycle.Counts(ctrl.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count categories")
	}
	return helper.JsonOK(c, "", stats)
}
