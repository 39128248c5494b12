package qrcode_controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/Savoria-Hospitality/savoria-admin-backend/config"
	"github.com/Savoria-Hospitality/savoria-admin-backend/models"
	"github.com/gin-gonic/gin"
)

// GetQRCodes godoc
// @Summary Get QR codes
// @Description Retrieve generated QR codes with their branch, optionally filtered by branch ID
// @Tags Admin - QR Codes
// @Produce json
// @Security BearerAuth
// @Param branch_id query string false "Filter by branch ID"
// @Success 200 {object} models.ApiResponse{data=[]models.QRCode}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/qrcodes [get]
func GetQRCodes(c *gin.Context) {
	branchID := strings.TrimSpace(c.Query("branch_id"))

	ctx, cancel := config.WithTimeout()
	defer cancel()

	db := config.Gorm.WithContext(ctx).Model(&models.QRCode{})
	if branchID != "" {
		db = db.Where("branch_id = ?", branchID)
	}

	var qrCodes []models.QRCode
	if err := db.
		Preload("Branch").
		Order("created_at DESC").
		Find(&qrCodes).Error; err != nil {
		log.Printf("[admin.qrcodes] ERROR query failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch QR codes"))
		return
	}

	log.Printf("[admin.qrcodes] respond 200 count=%d", len(qrCodes))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "QR codes retrieved successfully", qrCodes))
}
