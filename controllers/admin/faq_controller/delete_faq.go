package faq_controller

import (
	"log"
	"net/http"

	"github.com/Savoria-Hospitality/savoria-admin-backend/config"
	"github.com/Savoria-Hospitality/savoria-admin-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeleteFAQ godoc
// @Summary Delete an FAQ entry
// @Description Delete an FAQ entry permanently
// @Tags Admin - FAQs
// @Produce json
// @Security BearerAuth
// @Param id path string true "FAQ ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid FAQ ID"
// @Failure 404 {object} models.ApiResponse "FAQ not found"
// @Failure 500 {object} models.ApiResponse
// @Router /admin/faqs/{id} [delete]
func DeleteFAQ(c *gin.Context) {
	faqID := c.Param("id")

	if _, err := uuid.Parse(faqID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid FAQ ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var faq models.FAQ
	if err := config.Gorm.WithContext(ctx).
		First(&faq, "id = ?", faqID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "FAQ not found"))
			return
		}
		log.Printf("[admin.faqs.delete] ERROR database err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch FAQ"))
		return
	}

	if err := config.Gorm.WithContext(ctx).Delete(&faq).Error; err != nil {
		log.Printf("[admin.faqs.delete] ERROR delete failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete FAQ"))
		return
	}

	c.Set("activityResourceName", faq.Question)
	c.Set("activityResourceID", faq.ID.String())

	log.Printf("[admin.faqs.delete] ✅ deleted id=%s", faqID)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "FAQ deleted successfully", map[string]string{
		"id": faqID,
	}))
}
