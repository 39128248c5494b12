package menu_controller

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	menu_cache "github.com/Savoria-Hospitality/savoria-admin-backend/cache"
	"github.com/Savoria-Hospitality/savoria-admin-backend/config"
	"github.com/Savoria-Hospitality/savoria-admin-backend/models"
	"github.com/Savoria-Hospitality/savoria-admin-backend/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var cloudinaryService *services.CloudinaryService

func InitCloudinary(cloudName, apiKey, apiSecret string) error {
	var err error
	cloudinaryService, err = services.NewCloudinaryService(cloudName, apiKey, apiSecret)
	return err
}

// CloudinaryService exposes the shared client to other admin controllers.
func CloudinaryService() *services.CloudinaryService {
	return cloudinaryService
}

// CreateMenuItem godoc
// @Summary Create a new menu item
// @Description Create a menu item with Cloudinary image URLs (image uploaded client-side first)
// @Tags Admin - Menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param item body models.MenuItemRequest true "Menu item details with Cloudinary URL"
// @Success 201 {object} models.ApiResponse{data=models.MenuItem}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/menu-items [post]
func CreateMenuItem(c *gin.Context) {
	log.Printf("[admin.menu-items.create] start")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var req models.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[admin.menu-items.create] ERROR invalid request err=%v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	// Category must exist before the item can hang off it
	var category models.MenuCategory
	if err := config.Gorm.WithContext(ctx).
		Select("id, name").
		First(&category, "id = ?", req.CategoryID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			log.Printf("[admin.menu-items.create] ERROR invalid category_id=%s", req.CategoryID)
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category_id"))
		} else {
			log.Printf("[admin.menu-items.create] ERROR database err=%v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	if req.Image.URL == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Image URL is required"))
		return
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}
	isFeatured := false
	if req.IsFeatured != nil {
		isFeatured = *req.IsFeatured
	}

	item := models.MenuItem{
		CategoryID:   req.CategoryID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Image:        req.Image,
		DietaryTags:  models.DietaryTagsList(req.DietaryTags),
		Variants:     models.MenuVariantsList(req.Variants),
		IsAvailable:  isAvailable,
		IsFeatured:   isFeatured,
		DisplayOrder: req.DisplayOrder,
	}

	if err := config.Gorm.WithContext(ctx).Create(&item).Error; err != nil {
		log.Printf("[admin.menu-items.create] ERROR insert failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create menu item"))
		return
	}

	item.CategoryName = &category.Name
	menu_cache.Invalidate()

	// For the activity log middleware
	c.Set("activityResourceName", item.Name)
	c.Set("activityResourceID", item.ID.String())

	log.Printf("[admin.menu-items.create] ✅ created id=%s name=%q category=%q", item.ID, item.Name, category.Name)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Menu item created successfully", item))
}

// ════════════════════════════════════════════════════════════
// CLEANUP ENDPOINT
// ════════════════════════════════════════════════════════════

// CleanupFolderRequest represents the request to delete an orphaned upload folder
type CleanupFolderRequest struct {
	FolderPath string `json:"folder_path" binding:"required"`
}

// CleanupOrphanedFolder godoc
// @Summary Delete orphaned menu upload folder from Cloudinary
// @Description Deletes the upload folder when the backend save fails after the client-side upload succeeded
// @Tags Admin - Menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CleanupFolderRequest true "Folder path to delete"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 403 {object} models.ApiResponse
// @Router /admin/menu-items/cleanup-folder [post]
func CleanupOrphanedFolder(c *gin.Context) {
	var req CleanupFolderRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	// Security: only menu upload folders may be removed this way
	if !strings.HasPrefix(req.FolderPath, "savoria/menu/") {
		log.Printf("[admin.menu-items.cleanup] ⚠️  blocked attempt to delete non-menu folder: %s", req.FolderPath)
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Can only cleanup menu folders"))
		return
	}

	parts := strings.Split(req.FolderPath, "/")
	if len(parts) != 3 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid folder path format"))
		return
	}

	log.Printf("[admin.menu-items.cleanup] folder deletion requested: %s", req.FolderPath)

	go func(folderPath string) {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := cloudinaryService.DeleteFolder(ctx, folderPath); err != nil {
			log.Printf("[admin.menu-items.cleanup] ❌ failed to delete folder %s: %v", folderPath, err)
		} else {
			log.Printf("[admin.menu-items.cleanup] ✅ deleted orphaned folder: %s", folderPath)
		}
	}(req.FolderPath)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Folder cleanup initiated", map[string]string{
		"folder": req.FolderPath,
		"status": "deleting",
	}))
}
