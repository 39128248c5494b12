package admin_routes

import (
	"github.com/Savoria-Hospitality/savoria-admin-backend/controllers/admin/transaction_controller"
	"github.com/Savoria-Hospitality/savoria-admin-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupTransactionRoutes sets up payment, order and analytics routes.
// Everything here is read-only, so no activity logging.
func SetupTransactionRoutes(rg *gin.RouterGroup) {
	transactions := rg.Group("/transactions")
	transactions.Use(middleware.AdminAuthMiddleware())
	{
		transactions.GET("/payments", transaction_controller.GetPayments)
		transactions.GET("/orders", transaction_controller.GetOrders)
		transactions.GET("/analytics", transaction_controller.GetAnalytics)
		transactions.GET("/report/pdf", transaction_controller.DownloadTransactionsReportPDF)
	}
}
