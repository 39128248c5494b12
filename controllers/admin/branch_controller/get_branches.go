package branch_controller

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/Savoria-Hospitality/savoria-admin-backend/config"
	"github.com/Savoria-Hospitality/savoria-admin-backend/models"
	"github.com/gin-gonic/gin"
)

// GetBranches godoc
// @Summary Get branches
// @Description Retrieve all restaurant locations, optionally filtered by active state
// @Tags Admin - Branches
// @Produce json
// @Security BearerAuth
// @Param active query bool false "Filter by active state"
// @Success 200 {object} models.ApiResponse{data=[]models.Branch}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/branches [get]
func GetBranches(c *gin.Context) {
	active := strings.TrimSpace(c.Query("active"))

	ctx, cancel := config.WithTimeout()
	defer cancel()

	db := config.Gorm.WithContext(ctx).Model(&models.Branch{})
	if active != "" {
		if v, err := strconv.ParseBool(active); err == nil {
			db = db.Where("is_active = ?", v)
		}
	}

	var branches []models.Branch
	if err := db.Order("name ASC").Find(&branches).Error; err != nil {
		log.Printf("[admin.branches] ERROR query failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch branches"))
		return
	}

	log.Printf("[admin.branches] respond 200 count=%d", len(branches))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Branches retrieved successfully", branches))
}
