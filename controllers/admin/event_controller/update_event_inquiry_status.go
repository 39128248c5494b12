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

// UpdateEventInquiryStatus godoc
// @Summary Update event inquiry status
// @Description Move an event inquiry through its pipeline (new, contacted, booked, declined)
// @Tags Admin - Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event inquiry ID"
// @Param status body models.UpdateEventStatusRequest true "New status"
// @Success 200 {object} models.ApiResponse{data=models.EventInquiry}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Event inquiry not found"
// @Failure 500 {object} models.ApiResponse
// @Router /admin/events/{id}/status [patch]
func UpdateEventInquiryStatus(c *gin.Context) {
	inquiryID := c.Param("id")

	if _, err := uuid.Parse(inquiryID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid event inquiry ID"))
		return
	}

	var req models.UpdateEventStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
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
		log.Printf("[admin.events.status] ERROR database err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch event inquiry"))
		return
	}

	previousStatus := inquiry.Status
	if err := config.Gorm.WithContext(ctx).
		Model(&inquiry).
		Update("status", req.Status).Error; err != nil {
		log.Printf("[admin.events.status] ERROR update failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update event inquiry"))
		return
	}

	inquiry.Status = req.Status

	c.Set("activityResourceName", inquiry.ContactName)
	c.Set("activityResourceID", inquiry.ID.String())

	log.Printf("[admin.events.status] ✅ id=%s %s -> %s", inquiryID, previousStatus, req.Status)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Event inquiry status updated successfully", inquiry))
}
