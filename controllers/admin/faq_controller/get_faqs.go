package faq_controller

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/Savoria-Hospitality/savoria-admin-backend/config"
	"github.com/Savoria-Hospitality/savoria-admin-backend/models"
	"github.com/gin-gonic/gin"
)

// GetFAQs godoc
// @Summary Get FAQ entries
// @Description Retrieve FAQ entries in display order, optionally filtered by published flag
// @Tags Admin - FAQs
// @Produce json
// @Security BearerAuth
// @Param published query bool false "Filter by published flag"
// @Success 200 {object} models.ApiResponse{data=[]models.FAQ}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/faqs [get]
func GetFAQs(c *gin.Context) {
	published := strings.TrimSpace(c.Query("published"))

	ctx, cancel := config.WithTimeout()
	defer cancel()

	db := config.Gorm.WithContext(ctx).Model(&models.FAQ{})
	if published != "" {
		if v, err := strconv.ParseBool(published); err == nil {
			db = db.Where("is_published = ?", v)
		}
	}

	var faqs []models.FAQ
	if err := db.Order("display_order ASC, created_at ASC").Find(&faqs).Error; err != nil {
		log.Printf("[admin.faqs] ERROR query failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch FAQs"))
		return
	}

	log.Printf("[admin.faqs] respond 200 count=%d", len(faqs))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "FAQs retrieved successfully", faqs))
}
