package reservation_controller

import (
	"log"
	"net/http"

	"github.com/Savoria-Hospitality/savoria-admin-backend/config"
	"github.com/Savoria-Hospitality/savoria-admin-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetReservationByID godoc
// @Summary Get reservation by ID
// @Description Retrieve a single reservation
// @Tags Admin - Reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} models.ApiResponse{data=models.Reservation}
// @Failure 400 {object} models.ApiResponse "Invalid reservation ID"
// @Failure 404 {object} models.ApiResponse "Reservation not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/reservations/{id} [get]
func GetReservationByID(c *gin.Context) {
	reservationID := c.Param("id")

	if _, err := uuid.Parse(reservationID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid reservation ID"))
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
		log.Printf("[admin.reservations.get] ERROR database err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch reservation"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Reservation retrieved successfully", reservation))
}
