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

// UpdateFAQ godoc
// @Summary Update an FAQ entry
// @Description Partially update an FAQ entry
// @Tags Admin - FAQs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "FAQ ID"
// @Param faq body models.UpdateFAQRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse{data=models.FAQ}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "FAQ not found"
// @Failure 500 {object} models.ApiResponse
// @Router /admin/faqs/{id} [patch]
func UpdateFAQ(c *gin.Context) {
	faqID := c.Param("id")

	if _, err := uuid.Parse(faqID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid FAQ ID"))
		return
	}

	var req models.UpdateFAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
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
		log.Printf("[admin.faqs.update] ERROR database err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch FAQ"))
		return
	}

	updates := map[string]interface{}{}
	if req.Question != nil {
		updates["question"] = *req.Question
	}
	if req.Answer != nil {
		updates["answer"] = *req.Answer
	}
	if req.DisplayOrder != nil {
		updates["display_order"] = *req.DisplayOrder
	}
	if req.IsPublished != nil {
		updates["is_published"] = *req.IsPublished
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No fields to update"))
		return
	}

	if err := config.Gorm.WithContext(ctx).
		Model(&faq).
		Updates(updates).Error; err != nil {
		log.Printf("[admin.faqs.update] ERROR update failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update FAQ"))
		return
	}

	c.Set("activityResourceName", faq.Question)
	c.Set("activityResourceID", faq.ID.String())

	log.Printf("[admin.faqs.update] ✅ updated id=%s fields=%d", faqID, len(updates))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "FAQ updated successfully", faq))
}
