package public_menu_controller

import (
	"log"
	"net/http"

	menu_cache "github.com/Savoria-Hospitality/savoria-admin-backend/cache"
	"github.com/Savoria-Hospitality/savoria-admin-backend/config"
	"github.com/Savoria-Hospitality/savoria-admin-backend/models"
	"github.com/gin-gonic/gin"
)

// GetFeaturedItems godoc
// @Summary Get featured menu items
// @Description Get the chef's picks shown on the public landing page
// @Tags Public - Menu
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.MenuItem}
// @Failure 500 {object} models.ApiResponse
// @Router /public/menu/featured [get]
func GetFeaturedItems(c *gin.Context) {
	items, hit := menu_cache.GetFeatured()
	if !hit {
		ctx, cancel := config.WithTimeout()
		defer cancel()

		if err := config.Gorm.WithContext(ctx).
			Where("is_featured = ? AND is_available = ?", true, true).
			Order("display_order ASC, name ASC").
			Find(&items).Error; err != nil {
			log.Printf("[public.menu.featured] ERROR fetch err=%v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch featured items"))
			return
		}

		menu_cache.SetFeatured(items)
	}

	if items == nil {
		items = []models.MenuItem{}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Featured items fetched successfully", items))
}
