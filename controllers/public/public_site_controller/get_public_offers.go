package public_site_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/Savoria-Hospitality/savoria-admin-backend/config"
	"github.com/Savoria-Hospitality/savoria-admin-backend/models"
	"github.com/gin-gonic/gin"
)

// GetPublicOffers godoc
// @Summary Get current offers
// @Description Get active offers whose validity window covers today
// @Tags Public - Site
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.Offer}
// @Failure 500 {object} models.ApiResponse
// @Router /public/offers [get]
func GetPublicOffers(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	now := time.Now()

	var offers []models.Offer
	if err := config.Gorm.WithContext(ctx).
		Where("is_active = ? AND valid_from <= ? AND valid_to >= ?", true, now, now).
		Order("valid_to ASC").
		Find(&offers).Error; err != nil {
		log.Printf("[public.offers] ERROR fetch err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch offers"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Offers fetched successfully", offers))
}
