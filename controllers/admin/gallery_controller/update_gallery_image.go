package gallery_controller

import (
	"log"
	"net/http"

	"github.com/Savoria-Hospitality/savoria-admin-backend/config"
	"github.com/Savoria-Hospitality/savoria-admin-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UpdateGalleryImage godoc
// @Summary Update a gallery image
// @Description Update the caption, category or display order of a gallery image
// @Tags Admin - Gallery
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Gallery image ID"
// @Param image body models.UpdateGalleryImageRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse{data=models.GalleryImage}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Gallery image not found"
// @Failure 500 {object} models.ApiResponse
// @Router /admin/gallery/{id} [patch]
func UpdateGalleryImage(c *gin.Context) {
	imageID := c.Param("id")

	if _, err := uuid.Parse(imageID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid gallery image ID"))
		return
	}

	var req models.UpdateGalleryImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
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
		log.Printf("[admin.gallery.update] ERROR database err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch gallery image"))
		return
	}

	updates := map[string]interface{}{}
	if req.Caption != nil {
		updates["caption"] = *req.Caption
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.DisplayOrder != nil {
		updates["display_order"] = *req.DisplayOrder
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No fields to update"))
		return
	}

	if err := config.Gorm.WithContext(ctx).
		Model(&image).
		Updates(updates).Error; err != nil {
		log.Printf("[admin.gallery.update] ERROR update failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update gallery image"))
		return
	}

	c.Set("activityResourceName", image.PublicID)
	c.Set("activityResourceID", image.ID.String())

	log.Printf("[admin.gallery.update] ✅ updated id=%s fields=%d", imageID, len(updates))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Gallery image updated successfully", image))
}
