package menu_controller

import (
	"log"
	"net/http"

	"github.com/Savoria-Hospitality/savoria-admin-backend/config"
	"github.com/Savoria-Hospitality/savoria-admin-backend/models"
	"github.com/gin-gonic/gin"
)

// GetMenuStats godoc
// @Summary Get menu statistics
// @Description Returns item counts, availability percentage, average price and category count
// @Tags Admin - Menu
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.MenuStatsResponse}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/menu-items/stats [get]
func GetMenuStats(c *gin.Context) {
	log.Printf("[admin.menu-stats] start")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var totalItems int64
	if err := config.Gorm.WithContext(ctx).
		Model(&models.MenuItem{}).
		Count(&totalItems).Error; err != nil {
		log.Printf("[admin.menu-stats] ERROR total items err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch menu stats"))
		return
	}

	var availableItems int64
	if err := config.Gorm.WithContext(ctx).
		Model(&models.MenuItem{}).
		Where("is_available = ?", true).
		Count(&availableItems).Error; err != nil {
		log.Printf("[admin.menu-stats] ERROR available items err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch menu stats"))
		return
	}

	var featuredItems int64
	if err := config.Gorm.WithContext(ctx).
		Model(&models.MenuItem{}).
		Where("is_featured = ?", true).
		Count(&featuredItems).Error; err != nil {
		log.Printf("[admin.menu-stats] ERROR featured items err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch menu stats"))
		return
	}

	var averagePrice float64
	if err := config.Gorm.WithContext(ctx).
		Model(&models.MenuItem{}).
		Select("COALESCE(AVG(price), 0)").
		Scan(&averagePrice).Error; err != nil {
		log.Printf("[admin.menu-stats] ERROR average price err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch menu stats"))
		return
	}

	var totalCategories int64
	if err := config.Gorm.WithContext(ctx).
		Model(&models.MenuCategory{}).
		Count(&totalCategories).Error; err != nil {
		log.Printf("[admin.menu-stats] ERROR total categories err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch menu stats"))
		return
	}

	percentageAvailable := 0.0
	if totalItems > 0 {
		percentageAvailable = (float64(availableItems) / float64(totalItems)) * 100
	}

	stats := models.MenuStatsResponse{
		TotalItems:          int(totalItems),
		AvailableItems:      int(availableItems),
		UnavailableItems:    int(totalItems - availableItems),
		FeaturedItems:       int(featuredItems),
		PercentageAvailable: percentageAvailable,
		AveragePrice:        averagePrice,
		TotalCategories:     int(totalCategories),
	}

	log.Printf("[admin.menu-stats] respond 200 total=%d available=%d categories=%d",
		totalItems, availableItems, totalCategories)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Menu stats retrieved successfully", stats))
}
