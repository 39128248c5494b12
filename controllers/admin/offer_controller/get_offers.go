package offer_controller

import (
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Savoria-Hospitality/savoria-admin-backend/config"
	"github.com/Savoria-Hospitality/savoria-admin-backend/models"
	"github.com/gin-gonic/gin"
)

// GetOffers godoc
// @Summary Get offers
// @Description Retrieve offers ordered by validity start, optionally filtered by active flag or current validity
// @Tags Admin - Offers
// @Produce json
// @Security BearerAuth
// @Param active query bool false "Filter by active flag"
// @Param current query bool false "Only offers valid right now"
// @Success 200 {object} models.ApiResponse{data=[]models.Offer}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/offers [get]
func GetOffers(c *gin.Context) {
	active := strings.TrimSpace(c.Query("active"))
	current := strings.TrimSpace(c.Query("current"))

	ctx, cancel := config.WithTimeout()
	defer cancel()

	db := config.Gorm.WithContext(ctx).Model(&models.Offer{})

	if active != "" {
		if v, err := strconv.ParseBool(active); err == nil {
			db = db.Where("is_active = ?", v)
		}
	}
	if current != "" {
		if v, err := strconv.ParseBool(current); err == nil && v {
			now := time.Now()
			db = db.Where("valid_from <= ? AND valid_to >= ?", now, now)
		}
	}

	var offers []models.Offer
	if err := db.Order("valid_from DESC").Find(&offers).Error; err != nil {
		log.Printf("[admin.offers] ERROR query failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch offers"))
		return
	}

	log.Printf("[admin.offers] respond 200 count=%d", len(offers))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Offers retrieved successfully", offers))
}
