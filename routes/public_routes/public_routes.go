package public_routes

import (
	"github.com/Savoria-Hospitality/savoria-admin-backend/controllers/public/public_event_controller"
	"github.com/Savoria-Hospitality/savoria-admin-backend/controllers/public/public_menu_controller"
	"github.com/Savoria-Hospitality/savoria-admin-backend/controllers/public/public_reservation_controller"
	"github.com/Savoria-Hospitality/savoria-admin-backend/controllers/public/public_site_controller"
	"github.com/gin-gonic/gin"
)

// SetupPublicRoutes sets up the unauthenticated routes for the customer-facing
// site and QR menu traffic.
func SetupPublicRoutes(rg *gin.RouterGroup) {
	public := rg.Group("/public")

	// Menu (QR traffic)
	public.GET("/menu/featured", public_menu_controller.GetFeaturedItems)
	public.GET("/menu/:slug", public_menu_controller.GetPublicMenu)

	// Site content
	public.GET("/branches", public_site_controller.GetPublicBranches)
	public.GET("/offers", public_site_controller.GetPublicOffers)
	public.GET("/faqs", public_site_controller.GetPublicFAQs)
	public.GET("/gallery", public_site_controller.GetPublicGallery)

	// Customer submissions
	public.POST("/reservations", public_reservation_controller.CreatePublicReservation)
	public.POST("/events", public_event_controller.CreatePublicEventInquiry)
}
