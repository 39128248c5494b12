package reservation_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/Savoria-Hospitality/savoria-admin-backend/config"
	"github.com/Savoria-Hospitality/savoria-admin-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateReservation godoc
// @Summary Create a reservation (staff)
// @Description Create a reservation on behalf of a walk-in or phone customer. Staff-created reservations start confirmed.
// @Tags Admin - Reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param reservation body models.ReservationRequest true "Reservation details"
// @Success 201 {object} models.ApiResponse{data=models.Reservation}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/reservations [post]
func CreateReservation(c *gin.Context) {
	log.Printf("[admin.reservations.create] start")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var req models.ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	if req.ReservedFor.Before(time.Now()) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Reservation time must be in the future"))
		return
	}

	var branch models.Branch
	if err := config.Gorm.WithContext(ctx).
		Select("id").
		First(&branch, "id = ? AND is_active = ?", req.BranchID, true).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid branch_id"))
		} else {
			log.Printf("[admin.reservations.create] ERROR database err=%v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	now := time.Now()
	reservation := models.Reservation{
		BranchID:       req.BranchID,
		CustomerName:   req.CustomerName,
		CustomerEmail:  req.CustomerEmail,
		CustomerPhone:  req.CustomerPhone,
		PartySize:      req.PartySize,
		ReservedFor:    req.ReservedFor,
		Status:         "confirmed",
		SpecialRequest: req.SpecialRequest,
		ConfirmedAt:    &now,
	}

	if err := config.Gorm.WithContext(ctx).Create(&reservation).Error; err != nil {
		log.Printf("[admin.reservations.create] ERROR insert failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create reservation"))
		return
	}

	c.Set("activityResourceName", reservation.CustomerName)
	c.Set("activityResourceID", reservation.ID.String())

	log.Printf("[admin.reservations.create] ✅ created id=%s customer=%q party=%d", reservation.ID, reservation.CustomerName, reservation.PartySize)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Reservation created successfully", reservation))
}
