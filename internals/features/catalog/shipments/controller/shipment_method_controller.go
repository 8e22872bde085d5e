package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"storeadmin_backend/internals/features/catalog/shipments/dto"
	"storeadmin_backend/internals/features/catalog/shipments/model"
	helper "storeadmin_backend/internals/helpers"
)

type ShipmentMethodController struct {
	DB *gorm.DB
}

func NewShipmentMethodController(db *gorm.DB) *ShipmentMethodController {
	return &ShipmentMethodController{DB: db}
}

var shipmentLifecycle = helper.Lifecycle{
	Table:           "shipment_methods",
	IDColumn:        "shipment_method_id",
	StatusColumn:    "shipment_method_status",
	DeletedAtColumn: "shipment_method_deleted_at",
}

func shipmentNameCheck(excludeID string) helper.UniqueCheck {
	return helper.UniqueCheck{
		Table:            "shipment_methods",
		Column:           "shipment_method_name",
		SoftDeleteColumn: "shipment_method_deleted_at",
		IDColumn:         "shipment_method_id",
		ExcludeID:        excludeID,
	}
}

// POST /api/a/shipments
func (ctrl *ShipmentMethodController) CreateShipmentMethod(c *fiber.Ctx) error {
	var req dto.CreateShipmentMethodRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}

	req.ShipmentMethodName = strings.TrimSpace(req.ShipmentMethodName)

	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	taken, err := helper.IsTaken(ctrl.DB, shipmentNameCheck(""), req.ShipmentMethodName)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check name")
	}
	if taken {
		return helper.JsonError(c, fiber.StatusBadRequest, "Shipment method name already exists")
	}

	m := req.ToModel()
	if err := ctrl.DB.Create(&m).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return helper.JsonError(c, fiber.StatusBadRequest, "Shipment method name already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create shipment method")
	}

	return helper.JsonCreated(c, "Shipment method created", dto.ToShipmentMethodDTO(m))
}

// GET /api/a/shipments?page&limit&status
func (ctrl *ShipmentMethodController) GetShipmentMethods(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c)
	filter := helper.ResolveStatusFilter(c)

	q := ctrl.DB.Model(&model.ShipmentMethodModel{})
	if filter != "total" {
		q = q.Where("shipment_method_status = ?", filter)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count shipment methods")
	}

	var rows []model.ShipmentMethodModel
	if err := q.Session(&gorm.Session{}).
		Order("shipment_method_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve shipment methods")
	}

	return helper.JsonList(c, dto.ToShipmentMethodDTOs(rows), helper.BuildPagination(total, paging.Page, paging.Limit))
}

// GET /api/a/shipments/:id
func (ctrl *ShipmentMethodController) GetShipmentMethodByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m model.ShipmentMethodModel
	if err := ctrl.DB.First(&m, "shipment_method_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Shipment method not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve shipment method")
	}
	return helper.JsonOK(c, "", dto.ToShipmentMethodDTO(m))
}

// PUT /api/a/shipments/:id
func (ctrl *ShipmentMethodController) UpdateShipmentMethod(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m model.ShipmentMethodModel
	if err := ctrl.DB.First(&m, "shipment_method_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Shipment method not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve shipment method")
	}

	var req dto.UpdateShipmentMethodRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if req.ShipmentMethodName != nil {
		trimmed := strings.TrimSpace(*req.ShipmentMethodName)
		req.ShipmentMethodName = &trimmed
	}

	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if req.ShipmentMethodName != nil {
		taken, err := helper.IsTaken(ctrl.DB, shipmentNameCheck(id), *req.ShipmentMethodName)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check name")
		}
		if taken {
			return helper.JsonError(c, fiber.StatusBadRequest, "Shipment method name already exists")
		}
	}

	req.ApplyTo(&m)

	if err := ctrl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update shipment method")
	}

	return helper.JsonUpdated(c, "Shipment method updated", dto.ToShipmentMethodDTO(m))
}

// PATCH /api/a/shipments/:id/togglestatus
func (ctrl *ShipmentMethodController) ToggleShipmentMethodStatus(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if _, err := shipmentLifecycle.Toggle(ctrl.DB, id); err != nil {
		if errors.Is(err, helper.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Shipment method not found")
		}
		return helper.FromFiberError(c, err)
	}

	var m model.ShipmentMethodModel
	if err := ctrl.DB.First(&m, "shipment_method_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve shipment method")
	}
	return helper.JsonUpdated(c, "Shipment method status updated", dto.ToShipmentMethodDTO(m))
}

// DELETE /api/a/shipments/:id/soft
func (ctrl *ShipmentMethodController) SoftDeleteShipmentMethod(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := shipmentLifecycle.SoftDelete(ctrl.DB, id); err != nil {
		if errors.Is(err, helper.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Shipment method not found")
		}
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Shipment method moved to trash", fiber.Map{"shipment_method_id": id})
}

// PATCH /api/a/shipments/:id/restore
func (ctrl *ShipmentMethodController) RestoreShipmentMethod(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := shipmentLifecycle.Restore(ctrl.DB, id); err != nil {
		if errors.Is(err, helper.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Shipment method not found")
		}
		return helper.FromFiberError(c, err)
	}

	var m model.ShipmentMethodModel
	if err := ctrl.DB.First(&m, "shipment_method_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve shipment method")
	}
	return helper.JsonUpdated(c, "Shipment method restored", dto.ToShipmentMethodDTO(m))
}

// DELETE /api/a/shipments/:id/permanent
func (ctrl *ShipmentMethodController) PermanentDeleteShipmentMethod(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m model.ShipmentMethodModel
	if err := ctrl.DB.Unscoped().First(&m, "shipment_method_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Shipment method not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve shipment method")
	}

	if err := shipmentLifecycle.HardDelete(ctrl.DB, id); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete shipment method")
	}
	return helper.JsonDeleted(c, "Shipment method permanently deleted", fiber.Map{"shipment_method_id": id})
}

// GET /api/a/shipments/trash?page&limit
func (ctrl *ShipmentMethodController) GetTrashedShipmentMethods(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c)

	q := ctrl.DB.Unscoped().Model(&model.ShipmentMethodModel{}).
		Where("shipment_method_deleted_at IS NOT NULL")

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count trashed shipment methods")
	}

	var rows []model.ShipmentMethodModel
	if err := q.Session(&gorm.Session{}).
		Order("shipment_method_deleted_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve trashed shipment methods")
	}

	return helper.JsonList(c, dto.ToShipmentMethodDTOs(rows), helper.BuildPagination(total, paging.Page, paging.Limit))
}

// GET /api/a/shipments/stats
func (ctrl *ShipmentMethodController) GetShipmentMethodStats(c *fiber.Ctx) error {
	stats, err := shipmentLifecycle.Counts(ctrl.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count shipment methods")
	}
	return helper.JsonOK(c, "", stats)
}
