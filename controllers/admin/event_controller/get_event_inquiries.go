package event_controller

import (
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/Savoria-Hospitality/savoria-admin-backend/config"
	"github.com/Savoria-Hospitality/savoria-admin-backend/models"
	"github.com/gin-gonic/gin"
)

// GetEventInquiries godoc
// @Summary Get private event inquiries
// @Description Retrieve event inquiries with pagination. Supports filtering by status, event type and search by contact details.
// @Tags Admin - Events
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 50)" default(10)
// @Param status query string false "Filter by status (new, contacted, booked, declined)"
// @Param event_type query string false "Filter by event type (birthday, corporate, wedding, other)"
// @Param q query string false "Search by contact name, email or phone"
// @Success 200 {object} models.ApiResponse{data=[]models.EventInquiry,meta=models.Pagination}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/events [get]
func GetEventInquiries(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 || limit > 50 {
		limit = 10
	}
	offset := (page - 1) * limit

	status := strings.TrimSpace(c.Query("status"))
	eventType := strings.TrimSpace(c.Query("event_type"))
	q := strings.TrimSpace(c.Query("q"))

	log.Printf("[admin.events] params page=%d limit=%d status=%q type=%q q=%q", page, limit, status, eventType, q)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	db := config.Gorm.WithContext(ctx).Model(&models.EventInquiry{})

	if status != "" {
		db = db.Where("status = ?", status)
	}
	if eventType != "" {
		db = db.Where("event_type = ?", eventType)
	}
	if q != "" {
		like := "%" + q + "%"
		db = db.Where("contact_name ILIKE ? OR contact_email ILIKE ? OR contact_phone ILIKE ?", like, like, like)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		log.Printf("[admin.events] ERROR count failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count event inquiries"))
		return
	}

	inquiries := make([]models.EventInquiry, 0, limit)
	if err := db.
		Order("preferred_date ASC").
		Limit(limit).
		Offset(offset).
		Find(&inquiries).Error; err != nil {
		log.Printf("[admin.events] ERROR data query failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch event inquiries"))
		return
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: totalPages,
	}

	log.Printf("[admin.events] respond 200 total=%d page=%d", total, page)

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Event inquiries retrieved successfully", inquiries, meta))
}
