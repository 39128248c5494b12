package admin_controller

import (
	"log"
	"math"
	"net/http"

	"github.com/Savoria-Hospitality/savoria-admin-backend/config"
	"github.com/Savoria-Hospitality/savoria-admin-backend/models"
	"github.com/gin-gonic/gin"
)

// GetActivityLogs godoc
// @Summary Get activity logs
// @Description Retrieve the admin action audit trail with pagination. Supports filtering by admin, action, resource type and status.
// @Tags Admin - Activity
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 50)" default(20)
// @Param admin_id query string false "Filter by admin ID"
// @Param action query string false "Filter by action (e.g. created_menu_item)"
// @Param resource_type query string false "Filter by resource type"
// @Param status query string false "Filter by outcome (success, failed)"
// @Success 200 {object} models.ApiResponse{data=[]models.ActivityLog,meta=models.Pagination}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/activity-logs [get]
func GetActivityLogs(c *gin.Context) {
	var query models.ActivityLogSearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid query: "+err.Error()))
		return
	}

	if query.Page < 1 {
		query.Page = 1
	}
	if query.Limit < 1 || query.Limit > 50 {
		query.Limit = 20
	}
	offset := (query.Page - 1) * query.Limit

	log.Printf("[admin.activity] params page=%d limit=%d admin=%q action=%q resource=%q status=%q",
		query.Page, query.Limit, query.AdminID, query.Action, query.ResourceType, query.Status)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	db := config.Gorm.WithContext(ctx).Model(&models.ActivityLog{})

	if query.AdminID != "" {
		db = db.Where("admin_id = ?", query.AdminID)
	}
	if query.Action != "" {
		db = db.Where("action = ?", query.Action)
	}
	if query.ResourceType != "" {
		db = db.Where("resource_type = ?", query.ResourceType)
	}
	if query.Status != "" {
		db = db.Where("status = ?", query.Status)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		log.Printf("[admin.activity] ERROR count failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count activity logs"))
		return
	}

	logs := make([]models.ActivityLog, 0, query.Limit)
	if err := db.
		Order("created_at DESC").
		Limit(query.Limit).
		Offset(offset).
		Find(&logs).Error; err != nil {
		log.Printf("[admin.activity] ERROR data query failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch activity logs"))
		return
	}

	totalPages := int(math.Ceil(float64(total) / float64(query.Limit)))
	meta := &models.Pagination{
		Page:       query.Page,
		Limit:      query.Limit,
		Total:      int(total),
		TotalPages: totalPages,
	}

	log.Printf("[admin.activity] respond 200 total=%d page=%d", total, query.Page)

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Activity logs retrieved successfully", logs, meta))
}
