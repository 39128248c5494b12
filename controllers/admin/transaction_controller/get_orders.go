package transaction_controller

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

// GetOrders godoc
// @Summary Get customer orders
// @Description Retrieve food orders with item counts and pagination. Supports optional filtering by status and search by customer name or phone.
// @Tags Admin - Transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 50)" default(10)
// @Param status query string false "Filter by order status (pending, completed, cancelled)"
// @Param q query string false "Search by customer name or phone"
// @Success 200 {object} models.ApiResponse{data=[]models.CustomerOrderListRow,meta=models.Pagination}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/transactions/orders [get]
func GetOrders(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		log.Printf("[admin.customer-orders] WARN invalid page=%q err=%v -> default 1", c.Query("page"), err)
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		log.Printf("[admin.customer-orders] WARN invalid limit=%q err=%v -> default 10", c.Query("limit"), err)
		limit = 10
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}
	offset := (page - 1) * limit

	status := strings.TrimSpace(c.Query("status"))
	q := strings.TrimSpace(c.Query("q"))

	log.Printf("[admin.customer-orders] params page=%d limit=%d offset=%d status=%q q=%q", page, limit, offset, status, q)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	db := config.Gorm.WithContext(ctx).Table("customer_orders")

	if status != "" {
		db = db.Where("status = ?", status)
	}
	if q != "" {
		like := "%" + q + "%"
		db = db.Where("name ILIKE ? OR phone ILIKE ?", like, like)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		log.Printf("[admin.customer-orders] ERROR count failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count orders"))
		return
	}

	dataSQL := `
		SELECT
			id::text AS id,
			COALESCE(NULLIF(name, ''), phone) AS customer_name,
			phone,
			status,
			payment_method,
			total,
			COALESCE(jsonb_array_length(items), 0) AS item_count,
			created_at
		FROM customer_orders
	`

	whereConditions := []string{}
	whereArgs := []interface{}{}

	if status != "" {
		whereConditions = append(whereConditions, "status = ?")
		whereArgs = append(whereArgs, status)
	}
	if q != "" {
		like := "%" + q + "%"
		whereConditions = append(whereConditions, "(name ILIKE ? OR phone ILIKE ?)")
		whereArgs = append(whereArgs, like, like)
	}

	if len(whereConditions) > 0 {
		dataSQL += " WHERE " + strings.Join(whereConditions, " AND ")
	}

	dataSQL += `
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`
	whereArgs = append(whereArgs, limit, offset)

	result := make([]models.CustomerOrderListRow, 0, limit)
	if err := config.Gorm.WithContext(ctx).Raw(dataSQL, whereArgs...).Scan(&result).Error; err != nil {
		log.Printf("[admin.customer-orders] ERROR data query failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch orders"))
		return
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: totalPages,
	}

	log.Printf("[admin.customer-orders] respond 200 meta=%+v", *meta)

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Orders retrieved successfully", result, meta))
}
