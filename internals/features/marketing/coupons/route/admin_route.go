package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"storeadmin_backend/internals/features/marketing/coupons/controller"
)

func CouponAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCouponController(db)

	r := api.Group("/coupons")
	r.Post("/", ctrl.CreateCoupon)
	r.Get("/", ctrl.GetCoupons)
	r.Get("/trash", ctrl.GetTrashedCoupons)
	r.Get("/stats", ctrl.GetCouponStats)
	r.Get("/:id", ctrl.GetCouponByID)
	r.Put("/:id", ctrl.UpdateCoupon)
	r.Patch("/:id/togglestatus", ctrl.ToggleCouponStatus)
	r.Delete("/:id/soft", ctrl.SoftDeleteCoupon)
	r.Patch("/:id/restore", ctrl.RestoreCoupon)
	r.Delete("/:id/permanent", ctrl.PermanentDeleteCoupon)
}
