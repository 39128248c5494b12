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

// GetPayments godoc
// @Summary Get payments
// @Description Retrieve payment attempts with pagination. Supports optional filtering by status and provider, and search by reference.
// @Tags Admin - Transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 50)" default(10)
// @Param status query string false "Filter by payment status (pending, success, failed)"
// @Param provider query string false "Filter by provider (mpesa, card, cash)"
// @Param q query string false "Search by payment reference"
// @Success 200 {object} models.ApiResponse{data=[]models.PaymentListRow,meta=models.Pagination}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/transactions/payments [get]
func GetPayments(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		log.Printf("[admin.payments] WARN invalid page=%q err=%v -> default 1", c.Query("page"), err)
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		log.Printf("[admin.payments] WARN invalid limit=%q err=%v -> default 10", c.Query("limit"), err)
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
	provider := strings.TrimSpace(c.Query("provider"))
	q := strings.TrimSpace(c.Query("q"))

	log.Printf("[admin.payments] params page=%d limit=%d status=%q provider=%q q=%q", page, limit, status, provider, q)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	where := []string{}
	args := []interface{}{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if status != "" {
		where = append(where, "status = "+arg(status))
	}
	if provider != "" {
		where = append(where, "provider = "+arg(provider))
	}
	if q != "" {
		where = append(where, "reference ILIKE "+arg("%"+q+"%"))
	}

	whereSQL := ""
	if len(where) > 0 {
		whereSQL = " WHERE " + strings.Join(where, " AND ")
	}

	var total int64
	if err := config.DB.QueryRow(ctx, "SELECT COUNT(*) FROM payments"+whereSQL, args...).Scan(&total); err != nil {
		log.Printf("[admin.payments] ERROR count failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count payments"))
		return
	}

	dataSQL := `
		SELECT id::text, order_id::text, amount, status, provider, reference, created_at
		FROM payments` + whereSQL + `
		ORDER BY created_at DESC
		LIMIT ` + arg(limit) + ` OFFSET ` + arg(offset)

	rows, err := config.DB.Query(ctx, dataSQL, args...)
	if err != nil {
		log.Printf("[admin.payments] ERROR data query failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch payments"))
		return
	}
	defer rows.Close()

	result := make([]models.PaymentListRow, 0, limit)
	for rows.Next() {
		var row models.PaymentListRow
		if err := rows.Scan(&row.ID, &row.OrderID, &row.Amount, &row.Status, &row.Provider, &row.Reference, &row.CreatedAt); err != nil {
			log.Printf("[admin.payments] ERROR scan failed err=%v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch payments"))
			return
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		log.Printf("[admin.payments] ERROR rows err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch payments"))
		return
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: totalPages,
	}

	log.Printf("[admin.payments] respond 200 total=%d page=%d", total, page)

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Payments retrieved successfully", result, meta))
}
