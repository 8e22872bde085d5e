package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"storeadmin_backend/internals/features/content/faqs/controller"
)

func FaqAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewFaqController(db)

	r := api.Group("/faqs")
	r.Post("/", ctrl.CreateFaq)
	r.Get("/", ctrl.GetFaqs)
	r.Get("/trash", ctrl.GetTrashedFaqs)
	r.Get("/stats", ctrl.GetFaqStats)
	r.Get("/:id", ctrl.GetFaqByID)
	r.Put("/:id", ctrl.UpdateFaq)
	r.Patch("/:id/togglestatus", ctrl.ToggleFaqStatus)
	r.Delete("/:id/soft", ctrl.SoftDeleteFaq)
	r.Patch("/:id/restore", ctrl.RestoreFaq)
	r.Delete("/:id/permanent", ctrl.PermanentDeleteFaq)
}
