package public_reservation_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/Savoria-Hospitality/savoria-admin-backend/config"
	"github.com/Savoria-Hospitality/savoria-admin-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreatePublicReservation godoc
// @Summary Request a table reservation
// @Description Submit a reservation request from the public site. Requests start pending and are confirmed by staff.
// @Tags Public - Reservations
// @Accept json
// @Produce json
// @Param reservation body models.ReservationRequest true "Reservation details"
// @Success 201 {object} models.ApiResponse{data=models.Reservation}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Branch not found"
// @Failure 500 {object} models.ApiResponse
// @Router /public/reservations [post]
func CreatePublicReservation(c *gin.Context) {
	var req models.ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	if req.ReservedFor.Before(time.Now()) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Reservation time must be in the future"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var branch models.Branch
	if err := config.Gorm.WithContext(ctx).
		First(&branch, "id = ? AND is_active = ?", req.BranchID, true).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Branch not found"))
			return
		}
		log.Printf("[public.reservations] ERROR branch lookup err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	reservation := models.Reservation{
		BranchID:       req.BranchID,
		CustomerName:   req.CustomerName,
		CustomerEmail:  req.CustomerEmail,
		CustomerPhone:  req.CustomerPhone,
		PartySize:      req.PartySize,
		ReservedFor:    req.ReservedFor,
		Status:         "pending",
		SpecialRequest: req.SpecialRequest,
	}

	if err := config.Gorm.WithContext(ctx).Create(&reservation).Error; err != nil {
		log.Printf("[public.reservations] ERROR create failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create reservation"))
		return
	}

	log.Printf("[public.reservations] ✅ created id=%s branch=%s party=%d for=%s",
		reservation.ID, branch.Slug, reservation.PartySize, reservation.ReservedFor.Format(time.RFC3339))

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Reservation request received", reservation))
}
