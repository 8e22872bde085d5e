package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"storeadmin_backend/internals/features/content/configs/controller"
)

func ConfigAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewConfigController(db)

	r := api.Group("/configs")
	r.Post("/", ctrl.CreateConfig)
	r.Get("/", ctrl.GetConfigs)
	r.Get("/trash", ctrl.GetTrashedConfigs)
	r.Get("/stats", ctrl.GetConfigStats)
	r.Get("/:id", ctrl.GetConfigByID)
	r.Put("/:id", ctrl.UpdateConfig)
	r.Patch("/:id/togglestatus", ctrl.ToggleConfigStatus)
	r.Delete("/:id/soft", ctrl.SoftDeleteConfig)
	r.Patch("/:id/restore", ctrl.RestoreConfig)
	r.Delete("/:id/permanent", ctrl.PermanentDeleteConfig)
}
