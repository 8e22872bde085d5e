package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"storeadmin_backend/internals/features/users/auth/controller"
	"storeadmin_backend/internals/middlewares"
	authMiddleware "storeadmin_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	api := app.Group("/api/auth")
	api.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	api.Post("/logout", authMiddleware.AuthMiddleware(db), ctrl.Logout)
	api.Get("/me", authMiddleware.AuthMiddleware(db), ctrl.Me)
}
