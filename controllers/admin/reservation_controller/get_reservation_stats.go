package reservation_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/Savoria-Hospitality/savoria-admin-backend/config"
	"github.com/Savoria-Hospitality/savoria-admin-backend/models"
	"github.com/gin-gonic/gin"
)

// GetReservationStats godoc
// @Summary Get reservation statistics
// @Description Returns reservation counts per status, average party size and month-over-month change
// @Tags Admin - Reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.ReservationStatsResponse}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/reservations/stats [get]
func GetReservationStats(c *gin.Context) {
	log.Printf("[admin.reservation-stats] start")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	lastMonthStart := monthStart.AddDate(0, -1, 0)

	var total int64
	if err := config.Gorm.WithContext(ctx).
		Model(&models.Reservation{}).
		Count(&total).Error; err != nil {
		log.Printf("[admin.reservation-stats] ERROR total err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch reservation stats"))
		return
	}

	// ================================
	// Per-status counts (one grouped query)
	// ================================
	type statusRow struct {
		Status string
		Count  int
	}
	var statusRows []statusRow
	if err := config.Gorm.WithContext(ctx).
		Model(&models.Reservation{}).
		Select("status, COUNT(*)::int AS count").
		Group("status").
		Scan(&statusRows).Error; err != nil {
		log.Printf("[admin.reservation-stats] ERROR status counts err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch reservation stats"))
		return
	}

	countByStatus := make(map[string]int, len(statusRows))
	for _, row := range statusRows {
		countByStatus[row.Status] = row.Count
	}

	// ================================
	// Month-over-month comparison
	// ================================
	var currentMonth int64
	if err := config.Gorm.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("created_at >= ?", monthStart).
		Count(&currentMonth).Error; err != nil {
		log.Printf("[admin.reservation-stats] ERROR current month err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch reservation stats"))
		return
	}

	var lastMonth int64
	if err := config.Gorm.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("created_at >= ? AND created_at < ?", lastMonthStart, monthStart).
		Count(&lastMonth).Error; err != nil {
		log.Printf("[admin.reservation-stats] ERROR last month err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch reservation stats"))
		return
	}

	var changePercent *float64
	if lastMonth > 0 {
		v := ((float64(currentMonth) - float64(lastMonth)) / float64(lastMonth)) * 100
		changePercent = &v
	} else if currentMonth > 0 {
		v := 100.0
		changePercent = &v
	}

	var averagePartySize float64
	if err := config.Gorm.WithContext(ctx).
		Model(&models.Reservation{}).
		Select("COALESCE(AVG(party_size), 0)").
		Scan(&averagePartySize).Error; err != nil {
		log.Printf("[admin.reservation-stats] ERROR average party size err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch reservation stats"))
		return
	}

	stats := models.ReservationStatsResponse{
		TotalReservations:          int(total),
		ChangePercentFromLastMonth: changePercent,
		CurrentMonthTotal:          int(currentMonth),
		LastMonthTotal:             int(lastMonth),
		Pending:                    models.ReservationStatsBreakdown{Count: countByStatus["pending"], Description: "Awaiting staff confirmation"},
		Confirmed:                  models.ReservationStatsBreakdown{Count: countByStatus["confirmed"], Description: "Confirmed, not yet seated"},
		Seated:                     models.ReservationStatsBreakdown{Count: countByStatus["seated"], Description: "Currently at the table"},
		Completed:                  models.ReservationStatsBreakdown{Count: countByStatus["completed"], Description: "Visit finished"},
		Cancelled:                  models.ReservationStatsBreakdown{Count: countByStatus["cancelled"], Description: "Cancelled by customer or staff"},
		AveragePartySize:           averagePartySize,
	}

	log.Printf("[admin.reservation-stats] respond 200 total=%d current_month=%d", total, currentMonth)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Reservation stats retrieved successfully", stats))
}
