package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"storeadmin_backend/internals/features/catalog/categories/controller"
)

func CategoryAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCategoryController(db)

	r := api.Group("/categories")
	r.Post("/", ctrl.CreateCategory)
	r.Get("/", ctrl.GetCategories)
	r.Get("/trash", ctrl.GetTrashedCategories)
	r.Get("/stats", ctrl.GetCategoryStats)
	r.Get("/:id", ctrl.GetCategoryByID)
	r.Put("/:id", ctrl.UpdateCategory)
	r.Patch("/:id/togglestatus", ctrl.ToggleCategoryStatus)
	r.Delete("/:id/soft", ctrl.SoftDeleteCategory)
	r.Patch("/:id/restore", ctrl.RestoreCategory)
	r.Delete("/:id/permanent", ctrl.PermanentDeleteCategory)
}
