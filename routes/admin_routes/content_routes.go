package admin_routes

import (
	"github.com/Savoria-Hospitality/savoria-admin-backend/controllers/admin/event_controller"
	"github.com/Savoria-Hospitality/savoria-admin-backend/controllers/admin/faq_controller"
	"github.com/Savoria-Hospitality/savoria-admin-backend/controllers/admin/gallery_controller"
	"github.com/Savoria-Hospitality/savoria-admin-backend/controllers/admin/offer_controller"
	"github.com/Savoria-Hospitality/savoria-admin-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupContentRoutes sets up site-content routes: gallery, offers, FAQs and
// event inquiries.
func SetupContentRoutes(rg *gin.RouterGroup) {
	content := rg.Group("")
	content.Use(middleware.AdminAuthMiddleware())

	// ════════════════════════════════════════════════════════════
	// Read Routes (Auth Only)
	// ════════════════════════════════════════════════════════════

	content.GET("/gallery", gallery_controller.GetGalleryImages)
	content.GET("/offers", offer_controller.GetOffers)
	content.GET("/faqs", faq_controller.GetFAQs)
	content.GET("/events", event_controller.GetEventInquiries)

	// ════════════════════════════════════════════════════════════
	// Write Routes (Auth + Activity Logging)
	// ════════════════════════════════════════════════════════════

	logged := content.Group("")
	logged.Use(middleware.ActivityLoggingMiddleware())
	{
		// Gallery
		logged.POST("/gallery", gallery_controller.CreateGalleryImage)
		logged.PATCH("/gallery/:id", gallery_controller.UpdateGalleryImage)
		logged.DELETE("/gallery/:id", gallery_controller.DeleteGalleryImage)

		// Offers
		logged.POST("/offers", offer_controller.CreateOffer)
		logged.PATCH("/offers/:id", offer_controller.UpdateOffer)
		logged.DELETE("/offers/:id", offer_controller.DeleteOffer)

		// FAQs
		logged.POST("/faqs", faq_controller.CreateFAQ)
		logged.PATCH("/faqs/reorder", faq_controller.ReorderFAQs)
		logged.PATCH("/faqs/:id", faq_controller.UpdateFAQ)
		logged.DELETE("/faqs/:id", faq_controller.DeleteFAQ)

		// Event inquiries
		logged.PATCH("/events/:id/status", event_controller.UpdateEventInquiryStatus)
		logged.DELETE("/events/:id", event_controller.DeleteEventInquiry)
	}
}
