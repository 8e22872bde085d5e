package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"storeadmin_backend/internals/features/catalog/brands/controller"
)

func BrandAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewBrandController(db)

	r := api.Group("/brands")
	r.Post("/", ctrl.CreateBrand)
	r.Get("/", ctrl.GetBrands)
	r.Get("/trash", ctrl.GetTrashedBrands)
	r.Get("/stats", ctrl.GetBrandStats)
	r.Get("/:id", ctrl.GetBrandByID)
	r.Put("/:id", ctrl.UpdateBrand)
	r.Patch("/:id/togglestatus", ctrl.ToggleBrandStatus)
	r.Delete("/:id/soft", ctrl.SoftDeleteBrand)
	r.Patch("/:id/restore", ctrl.RestoreBrand)
	r.Delete("/:id/permanent", ctrl.PermanentDeleteBrand)
}
