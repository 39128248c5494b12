package menu_category_controller

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

// DeleteMenuCategory godoc
// @Summary Delete a menu category
// @Description Delete a menu category. Fails with 409 if the category still has items.
// @Tags Admin - Menu Categories
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid category ID"
// @Failure 404 {object} models.ApiResponse "Category not found"
// @Failure 409 {object} models.ApiResponse "Category still has items"
// @Failure 500 {object} models.ApiResponse
// @Router /admin/menu-categories/{id} [delete]
func DeleteMenuCategory(c *gin.Context) {
	categoryID := c.Param("id")

	if _, err := uuid.Parse(categoryID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var category models.MenuCategory
	if err := config.Gorm.WithContext(ctx).
		First(&category, "id = ?", categoryID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Category not found"))
			return
		}
		log.Printf("[admin.menu-categories.delete] ERROR database err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch category"))
		return
	}

	var itemCount int64
	if err := config.Gorm.WithContext(ctx).
		Model(&models.MenuItem{}).
		Where("category_id = ?", categoryID).
		Count(&itemCount).Error; err != nil {
		log.Printf("[admin.menu-categories.delete] ERROR item count err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}
	if itemCount > 0 {
		log.Printf("[admin.menu-categories.delete] blocked id=%s items=%d", categoryID, itemCount)
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Category still has menu items; move or delete them first"))
		return
	}

	if err := config.Gorm.WithContext(ctx).Delete(&category).Error; err != nil {
		log.Printf("[admin.menu-categories.delete] ERROR delete failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete category"))
		return
	}

	menu_cache.Invalidate()

	c.Set("activityResourceName", category.Name)
	c.Set("activityResourceID", category.ID.String())

	log.Printf("[admin.menu-categories.delete] ✅ deleted id=%s name=%q", categoryID, category.Name)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category deleted successfully", map[string]string{
		"id": categoryID,
	}))
}
