package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"storeadmin_backend/internals/features/content/pages/controller"
)

func PageAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPageController(db)

	r := api.Group("/pages")
	r.Post("/", ctrl.CreatePage)
	r.Get("/", ctrl.GetPages)
	r.Get("/trash", ctrl.GetTrashedPages)
	r.Get("/stats", ctrl.GetPageStats)
	r.Get("/:id", ctrl.GetPageByID)
	r.Put("/:id", ctrl.UpdatePage)
	r.Patch("/:id/togglestatus", ctrl.TogglePageStatus)
	r.Delete("/:id/soft", ctrl.SoftDeletePage)
	r.Patch("/:id/restore", ctrl.RestorePage)
	r.Delete("/:id/permanent", ctrl.PermanentDeletePage)
}
