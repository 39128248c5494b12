package qrcode_controller

import (
	"fmt"
	"log"
	"net/http"

	"github.com/Savoria-Hospitality/savoria-admin-backend/config"
	"github.com/Savoria-Hospitality/savoria-admin-backend/controllers/admin/menu_controller"
	"github.com/Savoria-Hospitality/savoria-admin-backend/models"
	"github.com/Savoria-Hospitality/savoria-admin-backend/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var qrService *services.QRService

func InitQRService(baseURL string) error {
	var err error
	qrService, err = services.NewQRService(baseURL)
	return err
}

// GenerateQRCode godoc
// @Summary Generate a branch/table QR code
// @Description Generate a QR code PNG pointing at the branch menu URL, optionally scoped to a table. By default the PNG is uploaded to Cloudinary and the record persisted; with download=true the PNG bytes are streamed back instead.
// @Tags Admin - QR Codes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.GenerateQRCodeRequest true "QR code parameters"
// @Success 200 "PNG file (download mode)"
// @Success 201 {object} models.ApiResponse{data=models.QRCode}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/qrcodes [post]
func GenerateQRCode(c *gin.Context) {
	log.Printf("[admin.qrcodes.generate] start")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var req models.GenerateQRCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	if req.Size == 0 {
		req.Size = 512
	}

	var branch models.Branch
	if err := config.Gorm.WithContext(ctx).
		Select("id, name, slug").
		First(&branch, "id = ? AND is_active = ?", req.BranchID, true).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid branch_id"))
		} else {
			log.Printf("[admin.qrcodes.generate] ERROR database err=%v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	targetURL := qrService.MenuURL(branch.Slug, req.TableNumber)

	png, err := qrService.GeneratePNG(targetURL, req.Size)
	if err != nil {
		log.Printf("[admin.qrcodes.generate] ERROR encode failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate QR code"))
		return
	}

	if req.Download {
		filename := fmt.Sprintf("qr-%s.png", branch.Slug)
		if req.TableNumber != nil {
			filename = fmt.Sprintf("qr-%s-table-%d.png", branch.Slug, *req.TableNumber)
		}
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		c.Header("Content-Length", fmt.Sprintf("%d", len(png)))
		c.Data(http.StatusOK, "image/png", png)

		log.Printf("[admin.qrcodes.generate] ✅ streamed %s bytes=%d", filename, len(png))
		return
	}

	publicID := fmt.Sprintf("qr-%s", branch.Slug)
	if req.TableNumber != nil {
		publicID = fmt.Sprintf("qr-%s-table-%d", branch.Slug, *req.TableNumber)
	}

	secureURL, uploadedID, err := menu_controller.CloudinaryService().UploadPNGBytes(ctx, png, publicID, "savoria/qrcodes")
	if err != nil {
		log.Printf("[admin.qrcodes.generate] ERROR upload failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload QR code"))
		return
	}

	qrCode := models.QRCode{
		BranchID:    req.BranchID,
		TableNumber: req.TableNumber,
		TargetURL:   targetURL,
		ImageURL:    secureURL,
		PublicID:    uploadedID,
		Size:        req.Size,
	}

	if err := config.Gorm.WithContext(ctx).Create(&qrCode).Error; err != nil {
		log.Printf("[admin.qrcodes.generate] ERROR insert failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save QR code"))
		return
	}

	c.Set("activityResourceName", publicID)
	c.Set("activityResourceID", qrCode.ID.String())

	log.Printf("[admin.qrcodes.generate] ✅ created id=%s target=%s size=%d", qrCode.ID, targetURL, req.Size)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "QR code generated successfully", qrCode))
}
