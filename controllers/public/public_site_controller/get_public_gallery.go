package public_site_controller

import (
	"log"
	"net/http"

	"github.com/Savoria-Hospitality/savoria-admin-backend/config"
	"github.com/Savoria-Hospitality/savoria-admin-backend/models"
	"github.com/gin-gonic/gin"
)

// GetPublicGallery godoc
// @Summary Get gallery images
// @Description Get gallery images for the public site, optionally filtered by category
// @Tags Public - Site
// @Produce json
// @Param category query string false "Category (food, interior, events, general)"
// @Success 200 {object} models.ApiResponse{data=[]models.GalleryImage}
// @Failure 500 {object} models.ApiResponse
// @Router /public/gallery [get]
func GetPublicGallery(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := config.Gorm.WithContext(ctx).Model(&models.GalleryImage{})
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var images []models.GalleryImage
	if err := query.
		Order("display_order ASC, created_at DESC").
		Find(&images).Error; err != nil {
		log.Printf("[public.gallery] ERROR fetch err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch gallery"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Gallery fetched successfully", images))
}
