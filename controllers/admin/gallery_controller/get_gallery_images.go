package gallery_controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/Savoria-Hospitality/savoria-admin-backend/config"
	"github.com/Savoria-Hospitality/savoria-admin-backend/models"
	"github.com/gin-gonic/gin"
)

// GetGalleryImages godoc
// @Summary Get gallery images
// @Description Retrieve gallery images ordered by display order, optionally filtered by category
// @Tags Admin - Gallery
// @Produce json
// @Security BearerAuth
// @Param category query string false "Filter by category (food, interior, events, general)"
// @Success 200 {object} models.ApiResponse{data=[]models.GalleryImage}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/gallery [get]
func GetGalleryImages(c *gin.Context) {
	category := strings.TrimSpace(c.Query("category"))

	ctx, cancel := config.WithTimeout()
	defer cancel()

	db := config.Gorm.WithContext(ctx).Model(&models.GalleryImage{})
	if category != "" {
		db = db.Where("category = ?", category)
	}

	var images []models.GalleryImage
	if err := db.Order("display_order ASC, created_at DESC").Find(&images).Error; err != nil {
		log.Printf("[admin.gallery] ERROR query failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch gallery images"))
		return
	}

	log.Printf("[admin.gallery] respond 200 count=%d category=%q", len(images), category)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Gallery images retrieved successfully", images))
}
