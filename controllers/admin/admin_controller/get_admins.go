package admin_controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/Savoria-Hospitality/savoria-admin-backend/config"
	"github.com/Savoria-Hospitality/savoria-admin-backend/models"
	"github.com/gin-gonic/gin"
)

// GetAdmins godoc
// @Summary Get admin accounts
// @Description Retrieve all dashboard admin accounts, optionally filtered by role or status
// @Tags Admin - Admins
// @Produce json
// @Security BearerAuth
// @Param role query string false "Filter by role (super_admin, manager, staff)"
// @Param status query string false "Filter by status (active, inactive, suspended)"
// @Success 200 {object} models.ApiResponse{data=[]models.Admin}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/admins [get]
func GetAdmins(c *gin.Context) {
	role := strings.TrimSpace(c.Query("role"))
	status := strings.TrimSpace(c.Query("status"))

	ctx, cancel := config.WithTimeout()
	defer cancel()

	db := config.Gorm.WithContext(ctx).Model(&models.Admin{})
	if role != "" {
		db = db.Where("role = ?", role)
	}
	if status != "" {
		db = db.Where("status = ?", status)
	}

	var admins []models.Admin
	if err := db.Order("joined_at ASC").Find(&admins).Error; err != nil {
		log.Printf("[admin.admins] ERROR query failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch admins"))
		return
	}

	log.Printf("[admin.admins] respond 200 count=%d", len(admins))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Admins retrieved successfully", admins))
}
