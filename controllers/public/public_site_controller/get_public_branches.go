package public_site_controller

import (
	"log"
	"net/http"

	"github.com/Savoria-Hospitality/savoria-admin-backend/config"
	"github.com/Savoria-Hospitality/savoria-admin-backend/models"
	"github.com/gin-gonic/gin"
)

// GetPublicBranches godoc
// @Summary Get restaurant locations
// @Description Get all active branches for the public locations page and the reservation form
// @Tags Public - Site
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.Branch}
// @Failure 500 {object} models.ApiResponse
// @Router /public/branches [get]
func GetPublicBranches(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var branches []models.Branch
	if err := config.Gorm.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&branches).Error; err != nil {
		log.Printf("[public.branches] ERROR fetch err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch branches"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Branches fetched successfully", branches))
}
