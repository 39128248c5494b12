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

// UpdateMenuItem godoc
// @Summary Update a menu item
// @Description Partially update a menu item. Only provided fields are changed.
// @Tags Admin - Menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Menu item ID"
// @Param item body models.UpdateMenuItemRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse{data=models.MenuItem}
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 404 {object} models.ApiResponse "Menu item not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/menu-items/{id} [patch]
func UpdateMenuItem(c *gin.Context) {
	itemID := c.Param("id")

	if _, err := uuid.Parse(itemID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid menu item ID"))
		return
	}

	var req models.UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
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
		log.Printf("[admin.menu-items.update] ERROR database err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch menu item"))
		return
	}

	updates := map[string]interface{}{}

	if req.CategoryID != nil {
		var category models.MenuCategory
		if err := config.Gorm.WithContext(ctx).
			Select("id").
			First(&category, "id = ?", *req.CategoryID).Error; err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category_id"))
			return
		}
		updates["category_id"] = *req.CategoryID
	}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if req.DietaryTags != nil {
		updates["dietary_tags"] = models.DietaryTagsList(*req.DietaryTags)
	}
	if req.Variants != nil {
		updates["variants"] = models.MenuVariantsList(*req.Variants)
	}
	if req.IsAvailable != nil {
		updates["is_available"] = *req.IsAvailable
	}
	if req.IsFeatured != nil {
		updates["is_featured"] = *req.IsFeatured
	}
	if req.DisplayOrder != nil {
		updates["display_order"] = *req.DisplayOrder
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No fields to update"))
		return
	}

	if err := config.Gorm.WithContext(ctx).
		Model(&item).
		Updates(updates).Error; err != nil {
		log.Printf("[admin.menu-items.update] ERROR update failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update menu item"))
		return
	}

	// Reload with category for the response
	if err := config.Gorm.WithContext(ctx).
		Preload("Category").
		First(&item, "id = ?", itemID).Error; err != nil {
		log.Printf("[admin.menu-items.update] WARN reload failed err=%v", err)
	}

	menu_cache.Invalidate()

	c.Set("activityResourceName", item.Name)
	c.Set("activityResourceID", item.ID.String())

	log.Printf("[admin.menu-items.update] ✅ updated id=%s fields=%d", itemID, len(updates))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Menu item updated successfully", item))
}
