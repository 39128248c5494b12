package reservation_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/Savoria-Hospitality/savoria-admin-backend/config"
	"github.com/Savoria-Hospitality/savoria-admin-backend/models"
	"github.com/Savoria-Hospitality/savoria-admin-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UpdateReservationStatus godoc
// @Summary Update reservation status
// @Description Move a reservation through its lifecycle (pending, confirmed, seated, completed, cancelled). Confirming emails the customer when an address is on file. Cancelling requires admin notes.
// @Tags Admin - Reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param status body models.UpdateReservationStatusRequest true "New status"
// @Success 200 {object} models.ApiResponse{data=models.Reservation}
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 404 {object} models.ApiResponse "Reservation not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/reservations/{id}/status [patch]
func UpdateReservationStatus(c *gin.Context) {
	reservationID := c.Param("id")

	if _, err := uuid.Parse(reservationID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid reservation ID"))
		return
	}

	var req models.UpdateReservationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	if req.Status == "cancelled" && (req.AdminNotes == nil || *req.AdminNotes == "") {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Admin notes are required when cancelling"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var reservation models.Reservation
	if err := config.Gorm.WithContext(ctx).
		First(&reservation, "id = ?", reservationID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Reservation not found"))
			return
		}
		log.Printf("[admin.reservations.status] ERROR database err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch reservation"))
		return
	}

	previousStatus := reservation.Status
	now := time.Now()

	updates := map[string]interface{}{"status": req.Status}
	if req.AdminNotes != nil {
		updates["admin_notes"] = *req.AdminNotes
	}
	if req.Status == "confirmed" && reservation.ConfirmedAt == nil {
		updates["confirmed_at"] = now
	}
	if req.Status == "cancelled" && reservation.CancelledAt == nil {
		updates["cancelled_at"] = now
	}

	if err := config.Gorm.WithContext(ctx).
		Model(&reservation).
		Updates(updates).Error; err != nil {
		log.Printf("[admin.reservations.status] ERROR update failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update reservation"))
		return
	}

	// Email the customer on a fresh confirmation; failures never block the update
	if req.Status == "confirmed" && previousStatus != "confirmed" && reservation.CustomerEmail != "" {
		var branch models.Branch
		if err := config.Gorm.WithContext(ctx).
			Select("name, address").
			First(&branch, "id = ?", reservation.BranchID).Error; err != nil {
			log.Printf("[admin.reservations.status] WARN branch lookup failed err=%v", err)
		}

		go func(data services.ReservationEmailData) {
			resendClient := services.NewResendClient()
			if err := resendClient.SendReservationConfirmationEmail(data); err != nil {
				log.Printf("[admin.reservations.status] ❌ confirmation email failed to=%s err=%v", data.CustomerEmail, err)
			} else {
				log.Printf("[admin.reservations.status] ✅ confirmation email sent to=%s", data.CustomerEmail)
			}
		}(services.ReservationEmailData{
			CustomerName:  reservation.CustomerName,
			CustomerEmail: reservation.CustomerEmail,
			BranchName:    branch.Name,
			BranchAddress: branch.Address,
			PartySize:     reservation.PartySize,
			ReservedFor:   reservation.ReservedFor,
		})
	}

	// Reload for the response
	if err := config.Gorm.WithContext(ctx).
		First(&reservation, "id = ?", reservationID).Error; err != nil {
		log.Printf("[admin.reservations.status] WARN reload failed err=%v", err)
	}

	c.Set("activityResourceName", reservation.CustomerName)
	c.Set("activityResourceID", reservation.ID.String())

	log.Printf("[admin.reservations.status] ✅ id=%s %s -> %s", reservationID, previousStatus, req.Status)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Reservation status updated successfully", reservation))
}
