package faq_controller

import (
	"log"
	"net/http"

	"github.com/Savoria-Hospitality/savoria-admin-backend/config"
	"github.com/Savoria-Hospitality/savoria-admin-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ReorderFAQs godoc
// @Summary Reorder FAQ entries
// @Description Apply a new display order to FAQ entries. All positions are written in a single transaction: either the whole ordering applies or none of it does.
// @Tags Admin - FAQs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param positions body models.ReorderFAQsRequest true "New positions"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid request or unknown FAQ ID"
// @Failure 500 {object} models.ApiResponse
// @Router /admin/faqs/reorder [post]
func ReorderFAQs(c *gin.Context) {
	var req models.ReorderFAQsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	err := config.Gorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, pos := range req.Positions {
			result := tx.Model(&models.FAQ{}).
				Where("id = ?", pos.ID).
				Update("display_order", pos.DisplayOrder)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}
		return nil
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "One or more FAQ IDs do not exist"))
			return
		}
		log.Printf("[admin.faqs.reorder] ERROR transaction failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to reorder FAQs"))
		return
	}

	log.Printf("[admin.faqs.reorder] ✅ reordered count=%d", len(req.Positions))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "FAQs reordered successfully", map[string]int{
		"updated": len(req.Positions),
	}))
}
