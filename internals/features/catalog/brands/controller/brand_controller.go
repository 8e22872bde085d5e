package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"storeadmin_backend/internals/features/catalog/brands/dto"
	"storeadmin_backend/internals/features/catalog/brands/model"
	helper "storeadmin_backend/internals/helpers"
)

type BrandController struct {
	DB *gorm.DB
}

func NewBrandController(db *gorm.DB) *BrandController {
	return &BrandController{DB: db}
}

var brandLifecycle = helper.Lifecycle{
	Table:           "brands",
	IDColumn:        "brand_id",
	StatusColumn:    "brand_status",
	DeletedAtColumn: "brand_deleted_at",
}

// POST /api/a/brands
func (ctrl *BrandController) CreateBrand(c *fiber.Ctx) error {
	var req dto.CreateBrandRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}

	req.BrandName = strings.TrimSpace(req.BrandName)
	if req.BrandSlug == "" {
		req.BrandSlug = helper.GenerateSlug(req.BrandName)
	} else {
		req.BrandSlug = helper.GenerateSlug(req.BrandSlug)
	}

	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if !helper.ValidSlug(req.BrandSlug) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Slug must contain only lowercase letters, numbers and hyphens")
	}

	taken, err := helper.IsTaken(ctrl.DB, helper.UniqueCheck{
		Table:            "brands",
		Column:           "brand_slug",
		SoftDeleteColumn: "brand_deleted_at",
	}, req.BrandSlug)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check slug")
	}
	if taken {
		return helper.JsonError(c, fiber.StatusBadRequest, "Brand slug already exists")
	}

	m := req.ToModel()

	if file, err := c.FormFile("brand_logo"); err == nil && file != nil {
		path, err := helper.SaveUploadedImage("brands", file)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		m.BrandLogoURL = &path
	}

	if err := ctrl.DB.Create(&m).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return helper.JsonError(c, fiber.StatusBadRequest, "Brand slug already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create brand")
	}

	return helper.JsonCreated(c, "Brand created", dto.ToBrandDTO(m))
}

// GET /api/a/brands?page&limit&status
func (ctrl *BrandController) GetBrands(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c)
	filter := helper.ResolveStatusFilter(c)

	q := ctrl.DB.Model(&model.BrandModel{})
	if filter != "total" {
		q = q.Where("brand_status = ?", filter)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count brands")
	}

	var rows []model.BrandModel
	if err := q.Session(&gorm.Session{}).
		Order("brand_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve brands")
	}

	return helper.JsonList(c, dto.ToBrandDTOs(rows), helper.BuildPagination(total, paging.Page, paging.Limit))
}

// GET /api/a/brands/:id
func (ctrl *BrandController) GetBrandByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m model.BrandModel
	if err := ctrl.DB.First(&m, "brand_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Brand not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve brand")
	}
	return helper.JsonOK(c, "", dto.ToBrandDTO(m))
}

// PUT /api/a/brands/:id
func (ctrl *BrandController) UpdateBrand(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m model.BrandModel
	if err := ctrl.DB.First(&m, "brand_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Brand not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve brand")
	}

	var req dto.UpdateBrandRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if req.BrandName != nil {
		trimmed := strings.TrimSpace(*req.BrandName)
		req.BrandName = &trimmed
	}
	if req.BrandSlug != nil {
		s := helper.GenerateSlug(*req.BrandSlug)
		req.BrandSlug = &s
	} else if req.BrandName != nil {
		s := helper.GenerateSlug(*req.BrandName)
		req.BrandSlug = &s
	}

	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if req.BrandSlug != nil {
		if !helper.ValidSlug(*req.BrandSlug) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Slug must contain only lowercase letters, numbers and hyphens")
		}
		taken, err := helper.IsTaken(ctrl.DB, helper.UniqueCheck{
			Table:            "brands",
			Column:           "brand_slug",
			SoftDeleteColumn: "brand_deleted_at",
			IDColumn:         "brand_id",
			ExcludeID:        id,
		}, *req.BrandSlug)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check slug")
		}
		if taken {
			return helper.JsonError(c, fiber.StatusBadRequest, "Brand slug already exists")
		}
	}

	req.ApplyTo(&m)

	// The old file is only removed once the row is saved, so a failed save
	// never leaves it pointing at a missing file.
	var oldLogo *string
	if file, err := c.FormFile("brand_logo"); err == nil && file != nil {
		path, err := helper.SaveUploadedImage("brands", file)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		oldLogo = m.BrandLogoURL
		m.BrandLogoURL = &path
	}

	if err := ctrl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update brand")
	}

	if oldLogo != nil {
		helper.DeleteUploadedImage(*oldLogo)
	}

	return helper.JsonUpdated(c, "Brand updated", dto.ToBrandDTO(m))
}

// PATCH /api/a/brands/:id/togglestatus
func (ctrl *BrandController) ToggleBrandStatus(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if _, err := brandLifecycle.Toggle(ctrl.DB, id); err != nil {
		if errors.Is(err, helper.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Brand not found")
		}
		return helper.FromFiberError(c, err)
	}

	var m model.BrandModel
	if err := ctrl.DB.First(&m, "brand_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve brand")
	}
	return helper.JsonUpdated(c, "Brand status updated", dto.ToBrandDTO(m))
}

// DELETE /api/a/brands/:id/soft
func (ctrl *BrandController) SoftDeleteBrand(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := brandLifecycle.SoftDelete(ctrl.DB, id); err != nil {
		if errors.Is(err, helper.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Brand not found")
		}
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Brand moved to trash", fiber.Map{"brand_id": id})
}

// PATCH /api/a/brands/:id/restore
func (ctrl *BrandController) RestoreBrand(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := brandLifecycle.Restore(ctrl.DB, id); err != nil {
		if errors.Is(err, helper.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Brand not found")
		}
		return helper.FromFiberError(c, err)
	}

	var m model.BrandModel
	if err := ctrl.DB.First(&m, "brand_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve brand")
	}
	return helper.JsonUpdated(c, "Brand restored", dto.ToBrandDTO(m))
}

// DELETE /api/a/brands/:id/permanent
func (ctrl *BrandController) PermanentDeleteBrand(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m model.BrandModel
	if err := ctrl.DB.Unscoped().First(&m, "brand_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Brand not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve brand")
	}

	if err := brandLifecycle.HardDelete(ctrl.DB, id); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete brand")
	}
	if m.BrandLogoURL != nil {
		helper.DeleteUploadedImage(*m.BrandLogoURL)
	}
	return helper.JsonDeleted(c, "Brand permanently deleted", fiber.Map{"brand_id": id})
}

// GET /api/a/brands/trash?page&limit
func (ctrl *BrandController) GetTrashedBrands(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c)

	q := ctrl.DB.Unscoped().Model(&model.BrandModel{}).
		Where("brand_deleted_at IS NOT NULL")

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count trashed brands")
	}

	var rows []model.BrandModel
	if err := q.Session(&gorm.Session{}).
		Order("brand_deleted_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve trashed brands")
	}

	return helper.JsonList(c, dto.ToBrandDTOs(rows), helper.BuildPagination(total, paging.Page, paging.Limit))
}

// GET /api/a/brands/stats
func (ctrl *BrandController) GetBrandStats(c *fiber.Ctx) error {
	stats, err := brandLifecycle.Counts(ctrl.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count brands")
	}
	return helper.JsonOK(c, "", stats)
}
