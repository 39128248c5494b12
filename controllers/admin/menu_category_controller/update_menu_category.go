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

type UpdateMenuCategoryRequest struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	DisplayOrder *int    `json:"display_order" binding:"omitempty,min=0"`
	IsActive     *bool   `json:"is_active"`
}

// UpdateMenuCategory godoc
// @Summary Update a menu category
// @Description Partially update a menu category. Only provided fields are changed.
// @Tags Admin - Menu Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Param category body UpdateMenuCategoryRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse{data=models.MenuCategory}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Category not found"
// @Failure 500 {object} models.ApiResponse
// @Router /admin/menu-categories/{id} [patch]
func UpdateMenuCategory(c *gin.Context) {
	categoryID := c.Param("id")

	if _, err := uuid.Parse(categoryID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category ID"))
		return
	}

	var req UpdateMenuCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
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
		log.Printf("[admin.menu-categories.update] ERROR database err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch category"))
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.DisplayOrder != nil {
		updates["display_order"] = *req.DisplayOrder
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No fields to update"))
		return
	}

	if err := config.Gorm.WithContext(ctx).
		Model(&category).
		Updates(updates).Error; err != nil {
		log.Printf("[admin.menu-categories.update] ERROR update failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update category"))
		return
	}

	menu_cache.Invalidate()

	c.Set("activityResourceName", category.Name)
	c.Set("activityResourceID", category.ID.String())

	log.Printf("[admin.menu-categories.update] ✅ updated id=%s fields=%d", categoryID, len(updates))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category updated successfully", category))
}
