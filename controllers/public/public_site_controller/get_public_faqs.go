package public_site_controller

import (
	"log"
	"net/http"

	"github.com/Savoria-Hospitality/savoria-admin-backend/config"
	"github.com/Savoria-Hospitality/savoria-admin-backend/models"
	"github.com/gin-gonic/gin"
)

// GetPublicFAQs godoc
// @Summary Get published FAQs
// @Description Get published FAQs in display order
// @Tags Public - Site
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.FAQ}
// @Failure 500 {object} models.ApiResponse
// @Router /public/faqs [get]
func GetPublicFAQs(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var faqs []models.FAQ
	if err := config.Gorm.WithContext(ctx).
		Where("is_published = ?", true).
		Order("display_order ASC, created_at ASC").
		Find(&faqs).Error; err != nil {
		log.Printf("[public.faqs] ERROR fetch err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch FAQs"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "FAQs fetched successfully", faqs))
}
