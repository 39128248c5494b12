package menu_controller

import (
	"log"
	"net/http"

	"github.com/Savoria-Hospitality/savoria-admin-backend/config"
	"github.com/Savoria-Hospitality/savoria-admin-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMenuItemByID godoc
// @Summary Get menu item by ID
// @Description Retrieve a single menu item with its category
// @Tags Admin - Menu
// @Produce json
// @Security BearerAuth
// @Param id path string true "Menu item ID"
// @Success 200 {object} models.ApiResponse{data=models.MenuItem}
// @Failure 400 {object} models.ApiResponse "Invalid menu item ID"
// @Failure 404 {object} models.ApiResponse "Menu item not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/menu-items/{id} [get]
func GetMenuItemByID(c *gin.Context) {
	itemID := c.Param("id")

	if _, err := uuid.Parse(itemID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid menu item ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var item models.MenuItem
	if err := config.Gorm.WithContext(ctx).
		Preload("Category").
		First(&item, "id = ?", itemID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Menu item not found"))
			return
		}
		log.Printf("[admin.menu-items.get] ERROR database err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch menu item"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Menu item retrieved successfully", item))
}
