package menu_controller

import (
	"log"
	"net/http"

	menu_cache "github.com/Savoria-Hospitality/savoria-admin-backend/cache"
	"github.com/Savoria-Hospitality/savoria-admin-backend/config"
	"github.com/Savoria-Hospitality/savoria-admin-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ToggleMenuItemAvailability godoc
// @Summary Toggle menu item availability
// @Description Flip the 86'd state of a menu item (available <-> unavailable)
// @Tags Admin - Menu
// @Produce json
// @Security BearerAuth
// @Param id path string true "Menu item ID"
// @Success 200 {object} models.ApiResponse{data=models.MenuItem}
// @Failure 400 {object} models.ApiResponse "Invalid menu item ID"
// @Failure 404 {object} models.ApiResponse "Menu item not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/menu-items/{id}/toggle-availability [patch]
func ToggleMenuItemAvailability(c *gin.Context) {
	itemID := c.Param("id")

	if _, err := uuid.Parse(itemID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid menu item ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var item models.MenuItem
	if err := config.Gorm.WithContext(ctx).
		First(&item, "id = ?", itemID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Menu item not found"))
			return
		}
		log.Printf("[admin.menu-items.toggle] ERROR database err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch menu item"))
		return
	}

	newState := !item.IsAvailable
	if err := config.Gorm.WithContext(ctx).
		Model(&item).
		Update("is_available", newState).Error; err != nil {
		log.Printf("[admin.menu-items.toggle] ERROR update failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update menu item"))
		return
	}

	item.IsAvailable = newState
	menu_cache.Invalidate()

	c.Set("activityResourceName", item.Name)
	c.Set("activityResourceID", item.ID.String())

	log.Printf("[admin.menu-items.toggle] ✅ id=%s name=%q available=%t", itemID, item.Name, newState)

	message := "Menu item marked unavailable"
	if newState {
		message = "Menu item marked available"
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, message, item))
}
