package event_controller

import (
	"log"
	"net/http"

	"github.com/Savoria-Hospitality/savoria-admin-backend/config"
	"github.com/Savoria-Hospitality/savoria-admin-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeleteEventInquiry godoc
// @Summary Delete an event inquiry
// @Description Remove an event inquiry. Intended for spam and duplicates; declined inquiries should keep their record instead.
// @Tags Admin - Events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event inquiry ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Event inquiry not found"
// @Failure 500 {object} models.ApiResponse
// @Router /admin/events/{id} [delete]
func DeleteEventInquiry(c *gin.Context) {
	inquiryID := c.Param("id")

	if _, err := uuid.Parse(inquiryID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid event inquiry ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var inquiry models.EventInquiry
	if err := config.Gorm.WithContext(ctx).
		First(&inquiry, "id = ?", inquiryID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Event inquiry not found"))
			return
		}
		log.Printf("[admin.events.delete] ERROR database err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch event inquiry"))
		return
	}

	if err := config.Gorm.WithContext(ctx).Delete(&inquiry).Error; err != nil {
		log.Printf("[admin.events.delete] ERROR delete failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete event inquiry"))
		return
	}

	c.Set("activityResourceName", inquiry.ContactName)
	c.Set("activityResourceID", inquiry.ID.String())

	log.Printf("[admin.events.delete] ✅ deleted id=%s contact=%s", inquiryID, inquiry.ContactName)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Event inquiry deleted successfully", nil))
}
