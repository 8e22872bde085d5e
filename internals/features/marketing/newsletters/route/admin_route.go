package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"storeadmin_backend/internals/features/marketing/newsletters/controller"
)

func NewsletterAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNewsletterController(db)

	r := api.Group("/newsletters")
	r.Post("/", ctrl.CreateNewsletter)
	r.Get("/", ctrl.GetNewsletters)
	r.Get("/trash", ctrl.GetTrashedNewsletters)
	r.Get("/stats", ctrl.GetNewsletterStats)
	r.Get("/:id", ctrl.GetNewsletterByID)
	r.Put("/:id", ctrl.UpdateNewsletter)
	r.Patch("/:id/togglestatus", ctrl.ToggleNewsletterStatus)
	r.Delete("/:id/soft", ctrl.SoftDeleteNewsletter)
	r.Patch("/:id/restore", ctrl.RestoreNewsletter)
	r.Delete("/:id/permanent", ctrl.PermanentDeleteNewsletter)
}
