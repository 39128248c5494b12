package faq_controller

import (
	"log"
	"net/http"

	"github.com/Savoria-Hospitality/savoria-admin-backend/config"
	"github.com/Savoria-Hospitality/savoria-admin-backend/models"
	"github.com/gin-gonic/gin"
)

// CreateFAQ godoc
// @Summary Create an FAQ entry
// @Description Create a question/answer pair for the public FAQ section
// @Tags Admin - FAQs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param faq body models.FAQRequest true "FAQ details"
// @Success 201 {object} models.ApiResponse{data=models.FAQ}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/faqs [post]
func CreateFAQ(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var req models.FAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	isPublished := true
	if req.IsPublished != nil {
		isPublished = *req.IsPublished
	}

	faq := models.FAQ{
		Question:     req.Question,
		Answer:       req.Answer,
		DisplayOrder: req.DisplayOrder,
		IsPublished:  isPublished,
	}

	if err := config.Gorm.WithContext(ctx).Create(&faq).Error; err != nil {
		log.Printf("[admin.faqs.create] ERROR insert failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create FAQ"))
		return
	}

	c.Set("activityResourceName", faq.Question)
	c.Set("activityResourceID", faq.ID.String())

	log.Printf("[admin.faqs.create] ✅ created id=%s", faq.ID)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "FAQ created successfully", faq))
}
