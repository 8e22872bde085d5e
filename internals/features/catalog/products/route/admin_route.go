package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"storeadmin_backend/internals/features/catalog/products/controller"
)

func ProductAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewProductController(db)

	r := api.Group("/products")
	r.Post("/", ctrl.CreateProduct)
	r.Get("/", ctrl.GetProducts)
	r.Get("/trash", ctrl.GetTrashedProducts)
	r.Get("/stats", ctrl.GetProductStats)
	r.Get("/:id", ctrl.GetProductByID)
	r.Put("/:id", ctrl.UpdateProduct)
	r.Patch("/:id/togglestatus", ctrl.ToggleProductStatus)
	r.Delete("/:id/soft", ctrl.SoftDeleteProduct)
	r.Patch("/:id/restore", ctrl.RestoreProduct)
	r.Delete("/:id/permanent", ctrl.PermanentDeleteProduct)
}
