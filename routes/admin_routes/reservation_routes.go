package admin_routes

import (
	"github.com/Savoria-Hospitality/savoria-admin-backend/controllers/admin/reservation_controller"
	"github.com/Savoria-Hospitality/savoria-admin-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupReservationRoutes sets up reservation management routes
func SetupReservationRoutes(rg *gin.RouterGroup) {
	reservations := rg.Group("/reservations")
	reservations.Use(middleware.AdminAuthMiddleware())

	reservations.GET("", reservation_controller.GetReservations)
	reservations.GET("/stats", reservation_controller.GetReservationStats)
	reservations.GET("/:id", reservation_controller.GetReservationByID)

	logged := reservations.Group("")
	logged.Use(middleware.ActivityLoggingMiddleware())
	{
		// Staff-created reservations (walk-ins, phone bookings)
		logged.POST("", reservation_controller.CreateReservation)
		logged.PATCH("/:id/status", reservation_controller.UpdateReservationStatus)
	}
}
