package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"storeadmin_backend/internals/features/marketing/coupons/dto"
	"storeadmin_backend/internals/features/marketing/coupons/model"
	helper "storeadmin_backend/internals/helpers"
)

type CouponController struct {
	DB *gorm.DB
}

func NewCouponController(db *gorm.DB) *CouponController {
	return &CouponController{DB: db}
}

var couponLifecycle = helper.Lifecycle{
	Table:           "coupons",
	IDColumn:        "coupon_id",
	StatusColumn:    "coupon_status",
	DeletedAtColumn: "coupon_deleted_at",
}

func couponCodeCheck(excludeID string) helper.UniqueCheck {
	return helper.UniqueCheck{
		Table:            "coupons",
		Column:           "coupon_code",
		SoftDeleteColumn: "coupon_deleted_at",
		IDColumn:         "coupon_id",
		ExcludeID:        excludeID,
	}
}

// POST /api/a/coupons
func (ctrl *CouponController) CreateCoupon(c *fiber.Ctx) error {
	var req dto.CreateCouponRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}

	req.CouponCode = strings.ToUpper(strings.TrimSpace(req.CouponCode))

	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := req.ValidateDates(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	taken, err := helper.IsTaken(ctrl.DB, couponCodeCheck(""), req.CouponCode)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check code")
	}
	if taken {
		return helper.JsonError(c, fiber.StatusBadRequest, "Coupon code already exists")
	}

	m := req.ToModel()
	if err := ctrl.DB.Create(&m).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return helper.JsonError(c, fiber.StatusBadRequest, "Coupon code already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create coupon")
	}

	return helper.JsonCreated(c, "Coupon created", dto.ToCouponDTO(m))
}

// GET /api/a/coupons?page&limit&status
func (ctrl *CouponController) GetCoupons(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c)
	filter := helper.ResolveStatusFilter(c)

	q := ctrl.DB.Model(&model.CouponModel{})
	if filter != "total" {
		q = q.Where("coupon_status = ?", filter)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count coupons")
	}

	var rows []model.CouponModel
	if err := q.Session(&gorm.Session{}).
		Order("coupon_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve coupons")
	}

	return helper.JsonList(c, dto.ToCouponDTOs(rows), helper.BuildPagination(total, paging.Page, paging.Limit))
}

// GET /api/a/coupons/:id
func (ctrl *CouponController) GetCouponByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m model.CouponModel
	if err := ctrl.DB.First(&m, "coupon_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Coupon not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve coupon")
	}
	return helper.JsonOK(c, "", dto.ToCouponDTO(m))
}

// PUT /api/a/coupons/:id
func (ctrl *CouponController) UpdateCoupon(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m model.CouponModel
	if err := ctrl.DB.First(&m, "coupon_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Coupon not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve coupon")
	}

	var req dto.UpdateCouponRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if req.CouponCode != nil {
		code := strings.ToUpper(strings.TrimSpace(*req.CouponCode))
		req.CouponCode = &code
	}

	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := req.ValidateDates(m); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if req.CouponCode != nil {
		taken, err := helper.IsTaken(ctrl.DB, couponCodeCheck(id), *req.CouponCode)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check code")
		}
		if taken {
			return helper.JsonError(c, fiber.StatusBadRequest, "Coupon code already exists")
		}
	}

	req.ApplyTo(&m)

	if err := ctrl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update coupon")
	}

	return helper.JsonUpdated(c, "Coupon updated", dto.ToCouponDTO(m))
}

// PATCH /api/a/coupons/:id/togglestatus
func (ctrl *CouponController) ToggleCouponStatus(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if _, err := couponLifecycle.Toggle(ctrl.DB, id); err != nil {
		if errors.Is(err, helper.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Coupon not found")
		}
		return helper.FromFiberError(c, err)
	}

	var m model.CouponModel
	if err := ctrl.DB.First(&m, "coupon_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve coupon")
	}
	return helper.JsonUpdated(c, "Coupon status updated", dto.ToCouponDTO(m))
}

// DELETE /api/a/coupons/:id/soft
func (ctrl *CouponController) SoftDeleteCoupon(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := couponLifecycle.SoftDelete(ctrl.DB, id); err != nil {
		if errors.Is(err, helper.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Coupon not found")
		}
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Coupon moved to trash", fiber.Map{"coupon_id": id})
}

// PATCH /api/a/coupons/:id/restore
func (ctrl *CouponController) RestoreCoupon(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := couponLifecycle.Restore(ctrl.DB, id); err != nil {
		if errors.Is(err, helper.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Coupon not found")
		}
		return helper.FromFiberError(c, err)
	}

	var m model.CouponModel
	if err := ctrl.DB.First(&m, "coupon_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve coupon")
	}
	return helper.JsonUpdated(c, "Coupon restored", dto.ToCouponDTO(m))
}

// DELETE /api/a/coupons/:id/permanent
func (ctrl *CouponController) PermanentDeleteCoupon(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m model.CouponModel
	if err := ctrl.DB.Unscoped().First(&m, "coupon_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Coupon not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve coupon")
	}

	if err := couponLifecycle.HardDelete(ctrl.DB, id); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete coupon")
	}
	return helper.JsonDeleted(c, "Coupon permanently deleted", fiber.Map{"coupon_id": id})
}

// GET /api/a/coupons/trash?page&limit
func (ctrl *CouponController) GetTrashedCoupons(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c)

	q := ctrl.DB.Unscoped().Model(&model.CouponModel{}).
		Where("coupon_deleted_at IS NOT NULL")

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count trashed coupons")
	}

	var rows []model.CouponModel
	if err := q.Session(&gorm.Session{}).
		Order("coupon_deleted_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve trashed coupons")
	}

	return helper.JsonList(c, dto.ToCouponDTOs(rows), helper.BuildPagination(total, paging.Page, paging.Limit))
}

// GET /api/a/coupons/stats
func (ctrl *CouponController) GetCouponStats(c *fiber.Ctx) error {
	stats, err := couponLifecycle.Counts(ctrl.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count coupons")
	}
	return helper.JsonOK(c, "", stats)
}
