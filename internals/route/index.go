package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "storeadmin_backend/internals/features/users/auth/route"
	authMiddleware "storeadmin_backend/internals/middlewares/auth"

	brandRoute "storeadmin_backend/internals/features/catalog/brands/route"
	categoryRoute "storeadmin_backend/internals/features/catalog/categories/route"
	productRoute "storeadmin_backend/internals/features/catalog/products/route"
	shipmentRoute "storeadmin_backend/internals/features/catalog/shipments/route"

	couponRoute "storeadmin_backend/internals/features/marketing/coupons/route"
	newsletterRoute "storeadmin_backend/internals/features/marketing/newsletters/route"

	configRoute "storeadmin_backend/internals/features/content/configs/route"
	faqRoute "storeadmin_backend/internals/features/content/faqs/route"
	pageRoute "storeadmin_backend/internals/features/content/pages/route"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// Everything under /api/a requires an admin token.
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a", authMiddleware.AuthMiddleware(db))

	log.Println("[INFO] Mounting catalog routes...")
	categoryRoute.CategoryAdminRoutes(admin, db)
	brandRoute.BrandAdminRoutes(admin, db)
	productRoute.ProductAdminRoutes(admin, db)
	shipmentRoute.ShipmentMethodAdminRoutes(admin, db)

	log.Println("[INFO] Mounting marketing routes...")
	couponRoute.CouponAdminRoutes(admin, db)
	newsletterRoute.NewsletterAdminRoutes(admin, db)

	log.Println("[INFO] Mounting content routes...")
	faqRoute.FaqAdminRoutes(admin, db)
	pageRoute.PageAdminRoutes(admin, db)
	configRoute.ConfigAdminRoutes(admin, db)
}
