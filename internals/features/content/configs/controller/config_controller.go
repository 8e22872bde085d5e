package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"storeadmin_backend/internals/features/content/configs/dto"
	"storeadmin_backend/internals/features/content/configs/model"
	helper "storeadmin_backend/internals/helpers"
)

type ConfigController struct {
	DB *gorm.DB
}

func NewConfigController(db *gorm.DB) *ConfigController {
	return &ConfigController{DB: db}
}

var configLifecycle = helper.Lifecycle{
	Table:           "configs",
	IDColumn:        "config_id",
	StatusColumn:    "config_status",
	DeletedAtColumn: "config_deleted_at",
}

func configSlugCheck(excludeID string) helper.UniqueCheck {
	return helper.UniqueCheck{
		Table:            "configs",
		Column:           "config_slug",
		SoftDeleteColumn: "config_deleted_at",
		IDColumn:         "config_id",
		ExcludeID:        excludeID,
	}
}

// POST /api/a/configs
//
// The slug is always derived from the name, there is no slug field on
// the request.
func (ctrl *ConfigController) CreateConfig(c *fiber.Ctx) error {
	var req dto.CreateConfigRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}

	req.ConfigName = strings.TrimSpace(req.ConfigName)

	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	slug := helper.GenerateSlug(req.ConfigName)
	if !helper.ValidSlug(slug) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Name must contain at least one letter or number")
	}

	taken, err := helper.IsTaken(ctrl.DB, configSlugCheck(""), slug)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check slug")
	}
	if taken {
		return helper.JsonError(c, fiber.StatusBadRequest, "Config slug already exists")
	}

	m := req.ToModel()
	m.ConfigSlug = slug

	if err := ctrl.DB.Create(&m).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return helper.JsonError(c, fiber.StatusBadRequest, "Config slug already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create config")
	}

	return helper.JsonCreated(c, "Config created", dto.ToConfigDTO(m))
}

// GET /api/a/configs?page&limit&status
func (ctrl *ConfigController) GetConfigs(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c)
	filter := helper.ResolveStatusFilter(c)

	q := ctrl.DB.Model(&model.ConfigModel{})
	if filter != "total" {
		q = q.Where("config_status = ?", filter)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count configs")
	}

	var rows []model.ConfigModel
	if err := q.Session(&gorm.Session{}).
		Order("config_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve configs")
	}

	return helper.JsonList(c, dto.ToConfigDTOs(rows), helper.BuildPagination(total, paging.Page, paging.Limit))
}

// GET /api/a/configs/:id
func (ctrl *ConfigController) GetConfigByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m model.ConfigModel
	if err := ctrl.DB.First(&m, "config_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Config not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve config")
	}
	return helper.JsonOK(c, "", dto.ToConfigDTO(m))
}

// PUT /api/a/configs/:id
func (ctrl *ConfigController) UpdateConfig(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m model.ConfigModel
	if err := ctrl.DB.First(&m, "config_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Config not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve config")
	}

	var req dto.UpdateConfigRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if req.ConfigName != nil {
		trimmed := strings.TrimSpace(*req.ConfigName)
		req.ConfigName = &trimmed
	}

	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if req.ConfigName != nil {
		slug := helper.GenerateSlug(*req.ConfigName)
		if !helper.ValidSlug(slug) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Name must contain at least one letter or number")
		}
		taken, err := helper.IsTaken(ctrl.DB, configSlugCheck(id), slug)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check slug")
		}
		if taken {
			return helper.JsonError(c, fiber.StatusBadRequest, "Config slug already exists")
		}
		m.ConfigSlug = slug
	}

	req.ApplyTo(&m)

	if err := ctrl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update config")
	}

	return helper.JsonUpdated(c, "Config updated", dto.ToConfigDTO(m))
}

// PATCH /api/a/configs/:id/togglestatus
func (ctrl *ConfigController) ToggleConfigStatus(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if _, err := configLifecycle.Toggle(ctrl.DB, id); err != nil {
		if errors.Is(err, helper.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Config not found")
		}
		return helper.FromFiberError(c, err)
	}

	var m model.ConfigModel
	if err := ctrl.DB.First(&m, "config_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve config")
	}
	return helper.JsonUpdated(c, "Config status updated", dto.ToConfigDTO(m))
}

// DELETE /api/a/configs/:id/soft
func (ctrl *ConfigController) SoftDeleteConfig(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := configLifecycle.SoftDelete(ctrl.DB, id); err != nil {
		if errors.Is(err, helper.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Config not found")
		}
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Config moved to trash", fiber.Map{"config_id": id})
}

// PATCH /api/a/configs/:id/restore
func (ctrl *ConfigController) RestoreConfig(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := configLifecycle.Restore(ctrl.DB, id); err != nil {
		if errors.Is(err, helper.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Config not found")
		}
		return helper.FromFiberError(c, err)
	}

	var m model.ConfigModel
	if err := ctrl.DB.First(&m, "config_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve config")
	}
	return helper.JsonUpdated(c, "Config restored", dto.ToConfigDTO(m))
}

// DELETE /api/a/configs/:id/permanent
func (ctrl *ConfigController) PermanentDeleteConfig(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m model.ConfigModel
	if err := ctrl.DB.Unscoped().First(&m, "config_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Config not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve config")
	}

	if err := configLifecycle.HardDelete(ctrl.DB, id); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete config")
	}
	return helper.JsonDeleted(c, "Config permanently deleted", fiber.Map{"config_id": id})
}

// GET /api/a/configs/trash?page&limit
func (ctrl *ConfigController) GetTrashedConfigs(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c)

	q := ctrl.DB.Unscoped().Model(&model.ConfigModel{}).
		Where("config_deleted_at IS NOT NULL")

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count trashed configs")
	}

	var rows []model.ConfigModel
	if err := q.Session(&gorm.Session{}).
		Order("config_deleted_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve trashed configs")
	}

	return helper.JsonList(c, dto.ToConfigDTOs(rows), helper.BuildPagination(total, paging.Page, paging.Limit))
}

// GET /api/a/configs/stats
func (ctrl *ConfigController) GetConfigStats(c *fiber.Ctx) error {
	stats, err := configLifecycle.Counts(ctrl.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count configs")
	}
	return helper.JsonOK(c, "", stats)
}
