package qrcode_controller

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

// DeleteQRCode godoc
// @Summary Delete a QR code
// @Description Delete a QR code record and destroy the Cloudinary asset
// @Tags Admin - QR Codes
// @Produce json
// @Security BearerAuth
// @Param id path string true "QR code ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid QR code ID"
// @Failure 404 {object} models.ApiResponse "QR code not found"
// @Failure 500 {object} models.ApiResponse
// @Router /admin/qrcodes/{id} [delete]
func DeleteQRCode(c *gin.Context) {
	qrID := c.Param("id")

	if _, err := uuid.Parse(qrID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid QR code ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var qrCode models.QRCode
	if err := config.Gorm.WithContext(ctx).
		First(&qrCode, "id = ?", qrID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "QR code not found"))
			return
		}
		log.Printf("[admin.qrcodes.delete] ERROR database err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch QR code"))
		return
	}

	if err := config.Gorm.WithContext(ctx).Delete(&qrCode).Error; err != nil {
		log.Printf("[admin.qrcodes.delete] ERROR delete failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete QR code"))
		return
	}

	go func(publicID string) {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := menu_controller.CloudinaryService().DeleteImage(ctx, publicID); err != nil {
			log.Printf("[admin.qrcodes.delete] ❌ failed to delete Cloudinary asset %s: %v", publicID, err)
		} else {
			log.Printf("[admin.qrcodes.delete] ✅ deleted Cloudinary asset %s", publicID)
		}
	}(qrCode.PublicID)

	c.Set("activityResourceName", qrCode.PublicID)
	c.Set("activityResourceID", qrCode.ID.String())

	log.Printf("[admin.qrcodes.delete] ✅ deleted id=%s", qrID)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "QR code deleted successfully", map[string]string{
		"id": qrID,
	}))
}
