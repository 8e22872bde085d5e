package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"storeadmin_backend/internals/features/catalog/shipments/controller"
)

func ShipmentMethodAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewShipmentMethodController(db)

	r := api.Group("/shipments")
	r.Post("/", ctrl.CreateShipmentMethod)
	r.Get("/", ctrl.GetShipmentMethods)
	r.Get("/trash", ctrl.GetTrashedShipmentMethods)
	r.Get("/stats", ctrl.GetShipmentMethodStats)
	r.Get("/:id", ctrl.GetShipmentMethodByID)
	r.Put("/:id", ctrl.UpdateShipmentMethod)
	r.Patch("/:id/togglestatus", ctrl.ToggleShipmentMethodStatus)
	r.Delete("/:id/soft", ctrl.SoftDeleteShipmentMethod)
	r.Patch("/:id/restore", ctrl.RestoreShipmentMethod)
	r.Delete("/:id/permanent", ctrl.PermanentDeleteShipmentMethod)
}
