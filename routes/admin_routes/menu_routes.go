package admin_routes

import (
	"github.com/Savoria-Hospitality/savoria-admin-backend/controllers/admin/menu_category_controller"
	"github.com/Savoria-Hospitality/savoria-admin-backend/controllers/admin/menu_controller"
	"github.com/Savoria-Hospitality/savoria-admin-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupMenuRoutes sets up menu item and category routes. All menu management
// needs auth; writes also get activity logging.
func SetupMenuRoutes(rg *gin.RouterGroup) {
	menu := rg.Group("/menu")
	menu.Use(middleware.AdminAuthMiddleware())

	// ════════════════════════════════════════════════════════════
	// Read Routes (Auth Only)
	// ════════════════════════════════════════════════════════════

	menu.GET("/items", menu_controller.GetMenuItems)
	menu.GET("/items/:id", menu_controller.GetMenuItemByID)
	menu.GET("/stats", menu_controller.GetMenuStats)
	menu.GET("/categories", menu_category_controller.GetMenuCategories)

	// ════════════════════════════════════════════════════════════
	// Write Routes (Auth + Activity Logging)
	// ════════════════════════════════════════════════════════════

	logged := menu.Group("")
	logged.Use(middleware.ActivityLoggingMiddleware())
	{
		// Items
		logged.POST("/items", menu_controller.CreateMenuItem)
		logged.PATCH("/items/:id", menu_controller.UpdateMenuItem)
		logged.PATCH("/items/:id/availability", menu_controller.ToggleMenuItemAvailability)
		logged.DELETE("/items/:id", menu_controller.DeleteMenuItem)

		// Categories
		logged.POST("/categories", menu_category_controller.CreateMenuCategory)
		logged.PATCH("/categories/:id", menu_category_controller.UpdateMenuCategory)
		logged.DELETE("/categories/:id", menu_category_controller.DeleteMenuCategory)

		// Utility (cleanup - still needs auth + logging)
		logged.POST("/cleanup-folder", menu_controller.CleanupOrphanedFolder)
	}
}
