package menu_controller

import (
	"context"
	"log"
	"net/http"
	"time"

	menu_cache "github.com/Savoria-Hospitality/savoria-admin-backend/cache"
	"github.com/Savoria-Hospitality/savoria-admin-backend/config"
	"github.com/Savoria-Hospitality/savoria-admin-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeleteMenuItem godoc
// @Summary Delete a menu item
// @Description Delete a menu item and remove its image from Cloudinary
// @Tags Admin - Menu
// @Produce json
// @Security BearerAuth
// @Param id path string true "Menu item ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid menu item ID"
// @Failure 404 {object} models.ApiResponse "Menu item not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/menu-items/{id} [delete]
func DeleteMenuItem(c *gin.Context) {
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
		log.Printf("[admin.menu-items.delete] ERROR database err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch menu item"))
		return
	}

	if err := config.Gorm.WithContext(ctx).Delete(&item).Error; err != nil {
		log.Printf("[admin.menu-items.delete] ERROR delete failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete menu item"))
		return
	}

	// Remove the asset in the background; the row is already gone
	if item.Image.PublicID != "" {
		go func(publicID string) {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if err := cloudinaryService.DeleteImage(ctx, publicID); err != nil {
				log.Printf("[admin.menu-items.delete] ❌ failed to delete Cloudinary asset %s: %v", publicID, err)
			} else {
				log.Printf("[admin.menu-items.delete] ✅ deleted Cloudinary asset %s", publicID)
			}
		}(item.Image.PublicID)
	}

	menu_cache.Invalidate()

	c.Set("activityResourceName", item.Name)
	c.Set("activityResourceID", item.ID.String())

	log.Printf("[admin.menu-items.delete] ✅ deleted id=%s name=%q", itemID, item.Name)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Menu item deleted successfully", map[string]string{
		"id": itemID,
	}))
}
