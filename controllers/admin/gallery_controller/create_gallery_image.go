package gallery_controller

import (
	"log"
	"net/http"

	"github.com/Savoria-Hospitality/savoria-admin-backend/config"
	"github.com/Savoria-Hospitality/savoria-admin-backend/models"
	"github.com/gin-gonic/gin"
)

// CreateGalleryImage godoc
// @Summary Add a gallery image
// @Description Register a Cloudinary-hosted image in the public gallery
// @Tags Admin - Gallery
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param image body models.GalleryImageRequest true "Image details with Cloudinary URL"
// @Success 201 {object} models.ApiResponse{data=models.GalleryImage}
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse "Image already registered"
// @Failure 500 {object} models.ApiResponse
// @Router /admin/gallery [post]
func CreateGalleryImage(c *gin.Context) {
	log.Printf("[admin.gallery.create] start")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var req models.GalleryImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	if req.Category == "" {
		req.Category = "general"
	}

	var existing int64
	if err := config.Gorm.WithContext(ctx).
		Model(&models.GalleryImage{}).
		Where("public_id = ?", req.PublicID).
		Count(&existing).Error; err != nil {
		log.Printf("[admin.gallery.create] ERROR duplicate check err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}
	if existing > 0 {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "This image is already in the gallery"))
		return
	}

	image := models.GalleryImage{
		URL:          req.URL,
		PublicID:     req.PublicID,
		Caption:      req.Caption,
		Category:     req.Category,
		DisplayOrder: req.DisplayOrder,
	}

	if err := config.Gorm.WithContext(ctx).Create(&image).Error; err != nil {
		log.Printf("[admin.gallery.create] ERROR insert failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to add gallery image"))
		return
	}

	c.Set("activityResourceName", image.PublicID)
	c.Set("activityResourceID", image.ID.String())

	log.Printf("[admin.gallery.create] ✅ created id=%s public_id=%s category=%s", image.ID, image.PublicID, image.Category)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Gallery image added successfully", image))
}
