package menu_category_controller

import (
	"log"
	"net/http"

	menu_cache "github.com/Savoria-Hospitality/savoria-admin-backend/cache"
	"github.com/Savoria-Hospitality/savoria-admin-backend/config"
	"github.com/Savoria-Hospitality/savoria-admin-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateMenuCategory godoc
// @Summary Create a new menu category
// @Description Create a menu category for a branch (e.g. Starters, Mains, Desserts)
// @Tags Admin - Menu Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param category body models.MenuCategoryRequest true "Category details"
// @Success 201 {object} models.ApiResponse{data=models.MenuCategory}
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse "Category name already exists for branch"
// @Failure 500 {object} models.ApiResponse
// @Router /admin/menu-categories [post]
func CreateMenuCategory(c *gin.Context) {
	log.Printf("[admin.menu-categories.create] start")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var req models.MenuCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	var branch models.Branch
	if err := config.Gorm.WithContext(ctx).
		Select("id").
		First(&branch, "id = ?", req.BranchID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid branch_id"))
		} else {
			log.Printf("[admin.menu-categories.create] ERROR database err=%v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	// One name per branch
	var existing int64
	if err := config.Gorm.WithContext(ctx).
		Model(&models.MenuCategory{}).
		Where("branch_id = ? AND LOWER(name) = LOWER(?)", req.BranchID, req.Name).
		Count(&existing).Error; err != nil {
		log.Printf("[admin.menu-categories.create] ERROR duplicate check err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}
	if existing > 0 {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "A category with this name already exists for the branch"))
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	category := models.MenuCategory{
		BranchID:     req.BranchID,
		Name:         req.Name,
		Description:  req.Description,
		DisplayOrder: req.DisplayOrder,
		IsActive:     isActive,
	}

	if err := config.Gorm.WithContext(ctx).Create(&category).Error; err != nil {
		log.Printf("[admin.menu-categories.create] ERROR insert failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create category"))
		return
	}

	menu_cache.Invalidate()

	c.Set("activityResourceName", category.Name)
	c.Set("activityResourceID", category.ID.String())

	log.Printf("[admin.menu-categories.create] ✅ created id=%s name=%q", category.ID, category.Name)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Category created successfully", category))
}
