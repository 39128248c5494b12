package admin_routes

import (
	"github.com/Savoria-Hospitality/savoria-admin-backend/controllers/admin/admin_controller"
	admin_auth "github.com/Savoria-Hospitality/savoria-admin-backend/controllers/admin/admin_controller/auth"
	"github.com/Savoria-Hospitality/savoria-admin-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes sets up auth, profile and admin-management routes
func SetupAdminRoutes(rg *gin.RouterGroup) {
	// ════════════════════════════════════════════════════════════
	// Base Admin Group
	// ════════════════════════════════════════════════════════════

	admin := rg.Group("/admin")

	// ════════════════════════════════════════════════════════════
	// Public Routes (No Auth Required)
	// ════════════════════════════════════════════════════════════

	admin.POST("/login", admin_auth.AdminLogin)
	admin.POST("/accept-invite", admin_auth.AcceptAdminInvite)

	// ════════════════════════════════════════════════════════════
	// Protected Routes (Auth Required)
	// ════════════════════════════════════════════════════════════

	protected := admin.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	{
		// Auth
		protected.POST("/logout", admin_auth.AdminLogout)
		protected.GET("/me", admin_auth.GetAdminMe)

		// Profile
		protected.PATCH("/profile", admin_controller.UpdateAdminProfile)

		// Admins
		protected.GET("/admins", admin_controller.GetAdmins)
		protected.GET("/admins/stats", admin_controller.GetAdminStats)

		// Activity logs
		protected.GET("/activity-logs", admin_controller.GetActivityLogs)
	}

	// ════════════════════════════════════════════════════════════
	// Super Admin Only Routes
	// ════════════════════════════════════════════════════════════

	superAdmin := admin.Group("")
	superAdmin.Use(
		middleware.AdminAuthMiddleware(),
		middleware.RequireSuperAdminMiddleware(),
	)
	{
		// Invitations
		superAdmin.POST("/invite", admin_auth.CreateAdminInvite)

		// Admin management
		superAdmin.PATCH("/admins/:id/status", admin_controller.UpdateAdminStatus)
	}
}
