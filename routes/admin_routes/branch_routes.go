package admin_routes

import (
	"github.com/Savoria-Hospitality/savoria-admin-backend/controllers/admin/branch_controller"
	"github.com/Savoria-Hospitality/savoria-admin-backend/controllers/admin/qrcode_controller"
	"github.com/Savoria-Hospitality/savoria-admin-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupBranchRoutes sets up branch and QR code routes
func SetupBranchRoutes(rg *gin.RouterGroup) {
	branches := rg.Group("/branches")
	branches.Use(middleware.AdminAuthMiddleware())

	branches.GET("", branch_controller.GetBranches)

	loggedBranches := branches.Group("")
	loggedBranches.Use(middleware.ActivityLoggingMiddleware())
	{
		loggedBranches.POST("", branch_controller.CreateBranch)
		loggedBranches.PATCH("/:id", branch_controller.UpdateBranch)
		loggedBranches.DELETE("/:id", branch_controller.DeleteBranch)
	}

	qrcodes := rg.Group("/qrcodes")
	qrcodes.Use(middleware.AdminAuthMiddleware())

	qrcodes.GET("", qrcode_controller.GetQRCodes)

	loggedQRCodes := qrcodes.Group("")
	loggedQRCodes.Use(middleware.ActivityLoggingMiddleware())
	{
		loggedQRCodes.POST("", qrcode_controller.GenerateQRCode)
		loggedQRCodes.DELETE("/:id", qrcode_controller.DeleteQRCode)
	}
}
