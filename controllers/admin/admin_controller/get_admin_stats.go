package admin_controller

import (
	"log"
	"net/http"

	"github.com/Savoria-Hospitality/savoria-admin-backend/config"
	"github.com/Savoria-Hospitality/savoria-admin-backend/models"
	"github.com/Savoria-Hospitality/savoria-admin-backend/services"
	"github.com/gin-gonic/gin"
)

// GetAdminStats godoc
// @Summary Get admin account statistics
// @Description Returns counts of admin accounts by status plus currently active sessions
// @Tags Admin - Admins
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.AdminStatsResponse}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/admins/stats [get]
func GetAdminStats(c *gin.Context) {
	log.Printf("[admin.admin-stats] start")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	type statusRow struct {
		Status string
		Count  int
	}
	var rows []statusRow
	if err := config.Gorm.WithContext(ctx).
		Model(&models.Admin{}).
		Select("status, COUNT(*)::int AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		log.Printf("[admin.admin-stats] ERROR status counts err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch admin stats"))
		return
	}

	stats := models.AdminStatsResponse{}
	for _, row := range rows {
		stats.TotalAdmins += row.Count
		switch row.Status {
		case "active":
			stats.ActiveAdmins = row.Count
		case "inactive":
			stats.InactiveAdmins = row.Count
		case "suspended":
			stats.SuspendedAdmins = row.Count
		}
	}

	sessionService := services.GetAdminSessionService()
	activeSessions, err := sessionService.CountActiveSessions(ctx)
	if err != nil {
		log.Printf("[admin.admin-stats] WARN session count err=%v", err)
	}
	stats.ActiveSessions = int(activeSessions)

	log.Printf("[admin.admin-stats] respond 200 total=%d sessions=%d", stats.TotalAdmins, stats.ActiveSessions)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Admin stats retrieved successfully", stats))
}
