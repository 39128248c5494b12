package reservation_controller

import (
	"log"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/Savoria-Hospitality/savoria-admin-backend/config"
	"github.com/Savoria-Hospitality/savoria-admin-backend/models"
	"github.com/gin-gonic/gin"
)

// GetReservations godoc
// @Summary Get reservations
// @Description Retrieve reservations with pagination. Supports filtering by status, branch and date range, plus search by customer name, phone or email.
// @Tags Admin - Reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 50)" default(10)
// @Param status query string false "Filter by status (pending, confirmed, seated, completed, cancelled)"
// @Param branch_id query string false "Filter by branch ID"
// @Param date_from query string false "Reserved-for lower bound (YYYY-MM-DD)"
// @Param date_to query string false "Reserved-for upper bound (YYYY-MM-DD)"
// @Param q query string false "Search by customer name, phone or email"
// @Success 200 {object} models.ApiResponse{data=[]models.Reservation,meta=models.Pagination}
// @Failure 400 {object} models.ApiResponse "Invalid date filter"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/reservations [get]
func GetReservations(c *gin.Context) {
	var query models.AdminReservationSearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid query: "+err.Error()))
		return
	}

	if query.Page < 1 {
		query.Page = 1
	}
	if query.Limit < 1 || query.Limit > 50 {
		query.Limit = 10
	}
	offset := (query.Page - 1) * query.Limit

	log.Printf("[admin.reservations] params page=%d limit=%d status=%q q=%q", query.Page, query.Limit, query.Status, query.Q)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	db := config.Gorm.WithContext(ctx).Model(&models.Reservation{})

	if query.Status != "" {
		db = db.Where("status = ?", query.Status)
	}
	if query.BranchID != nil && *query.BranchID != "" {
		db = db.Where("branch_id = ?", *query.BranchID)
	}
	if query.DateFrom != nil && *query.DateFrom != "" {
		from, err := time.Parse("2006-01-02", *query.DateFrom)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid date_from, expected YYYY-MM-DD"))
			return
		}
		db = db.Where("reserved_for >= ?", from)
	}
	if query.DateTo != nil && *query.DateTo != "" {
		to, err := time.Parse("2006-01-02", *query.DateTo)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid date_to, expected YYYY-MM-DD"))
			return
		}
		// Upper bound is inclusive of the whole day
		db = db.Where("reserved_for < ?", to.AddDate(0, 0, 1))
	}
	if q := strings.TrimSpace(query.Q); q != "" {
		like := "%" + q + "%"
		db = db.Where("customer_name ILIKE ? OR customer_phone ILIKE ? OR customer_email ILIKE ?", like, like, like)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		log.Printf("[admin.reservations] ERROR count failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count reservations"))
		return
	}

	reservations := make([]models.Reservation, 0, query.Limit)
	if err := db.
		Order("reserved_for ASC").
		Limit(query.Limit).
		Offset(offset).
		Find(&reservations).Error; err != nil {
		log.Printf("[admin.reservations] ERROR data query failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch reservations"))
		return
	}

	totalPages := int(math.Ceil(float64(total) / float64(query.Limit)))
	meta := &models.Pagination{
		Page:       query.Page,
		Limit:      query.Limit,
		Total:      int(total),
		TotalPages: totalPages,
	}

	log.Printf("[admin.reservations] respond 200 total=%d page=%d", total, query.Page)

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Reservations retrieved successfully", reservations, meta))
}
