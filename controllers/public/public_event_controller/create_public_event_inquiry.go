package public_event_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/Savoria-Hospitality/savoria-admin-backend/config"
	"github.com/Savoria-Hospitality/savoria-admin-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreatePublicEventInquiry godoc
// @Summary Submit a private-event inquiry
// @Description Submit an inquiry for a birthday, corporate booking, wedding or other private event
// @Tags Public - Events
// @Accept json
// @Produce json
// @Param inquiry body models.EventInquiryRequest true "Inquiry details"
// @Success 201 {object} models.ApiResponse{data=models.EventInquiry}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Branch not found"
// @Failure 500 {object} models.ApiResponse
// @Router /public/events [post]
func CreatePublicEventInquiry(c *gin.Context) {
	var req models.EventInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	if req.PreferredDate.Before(time.Now()) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Preferred date must be in the future"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Branch is optional: some inquiries are venue-agnostic until staff follow up.
	if req.BranchID != nil {
		var branch models.Branch
		if err := config.Gorm.WithContext(ctx).
			First(&branch, "id = ? AND is_active = ?", *req.BranchID, true).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Branch not found"))
				return
			}
			log.Printf("[public.events] ERROR branch lookup err=%v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
			return
		}
	}

	inquiry := models.EventInquiry{
		BranchID:      req.BranchID,
		ContactName:   req.ContactName,
		ContactEmail:  req.ContactEmail,
		ContactPhone:  req.ContactPhone,
		EventType:     req.EventType,
		GuestCount:    req.GuestCount,
		PreferredDate: req.PreferredDate,
		Notes:         req.Notes,
		Status:        "new",
	}

	if err := config.Gorm.WithContext(ctx).Create(&inquiry).Error; err != nil {
		log.Printf("[public.events] ERROR create failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to submit inquiry"))
		return
	}

	log.Printf("[public.events] ✅ created id=%s type=%s guests=%d", inquiry.ID, inquiry.EventType, inquiry.GuestCount)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Inquiry submitted successfully", inquiry))
}
