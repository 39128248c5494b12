package gallery_controller

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/Savoria-Hospitality/savoria-admin-backend/config"
	"github.com/Savoria-Hospitality/savoria-admin-backend/controllers/admin/menu_controller"
	"github.com/Savoria-Hospitality/savoria-admin-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeleteGalleryImage godoc
// @Summary Delete a gallery image
// @Description Delete a gallery image and destroy the Cloudinary asset
// @Tags Admin - Gallery
// @Produce json
// @Security BearerAuth
// @Param id path string true "Gallery image ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid gallery image ID"
// @Failure 404 {object} models.ApiResponse "Gallery image not found"
// @Failure 500 {object} models.ApiResponse
// @Router /admin/gallery/{id} [delete]
func DeleteGalleryImage(c *gin.Context) {
	imageID := c.Param("id")

	if _, err := uuid.Parse(imageID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid gallery image ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var image models.GalleryImage
	if err := config.Gorm.WithContext(ctx).
		First(&image, "id = ?", imageID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Gallery image not found"))
			return
		}
		log.Printf("[admin.gallery.delete] ERROR database err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch gallery image"))
		return
	}

	if err := config.Gorm.WithContext(ctx).Delete(&image).Error; err != nil {
		log.Printf("[admin.gallery.delete] ERROR delete failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete gallery image"))
		return
	}

	go func(publicID string) {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := menu_controller.CloudinaryService().DeleteImage(ctx, publicID); err != nil {
			log.Printf("[admin.gallery.delete] ❌ failed to delete Cloudinary asset %s: %v", publicID, err)
		} else {
			log.Printf("[admin.gallery.delete] ✅ deleted Cloudinary asset %s", publicID)
		}
	}(image.PublicID)

	c.Set("activityResourceName", image.PublicID)
	c.Set("activityResourceID", image.ID.String())

	log.Printf("[admin.gallery.delete] ✅ deleted id=%s public_id=%s", imageID, image.PublicID)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Gallery image deleted successfully", map[string]string{
		"id": imageID,
	}))
}
