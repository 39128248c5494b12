package transaction_controller

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/Savoria-Hospitality/savoria-admin-backend/analytics"
	"github.com/Savoria-Hospitality/savoria-admin-backend/config"
	"github.com/Savoria-Hospitality/savoria-admin-backend/models"
	"github.com/gin-gonic/gin"
)

// GetAnalytics godoc
// @Summary Get transaction analytics
// @Description Aggregate payments and customer orders over a trailing day window into the dashboard report: totals, daily revenue, hourly orders, popular items, status breakdown, payment methods and top customers.
// @Tags Admin - Transactions
// @Produce json
// @Security BearerAuth
// @Param days query int false "Trailing window size in days (1-365)" default(30)
// @Success 200 {object} models.ApiResponse{data=analytics.Report}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/transactions/analytics [get]
func GetAnalytics(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "30"))
	if err != nil {
		log.Printf("[admin.analytics] WARN invalid days=%q err=%v -> default 30", c.Query("days"), err)
		days = 30
	}
	if days < 1 || days > 365 {
		log.Printf("[admin.analytics] WARN days out of range (%d) -> set 30", days)
		days = 30
	}

	now := time.Now()
	// The engine re-filters per bucket; fetch the widest window it can need
	// so the 30-day trailing revenue stays correct even when days < 30.
	fetchDays := days
	if fetchDays < 30 {
		fetchDays = 30
	}
	since := now.AddDate(0, 0, -fetchDays)

	log.Printf("[admin.analytics] params days=%d since=%s", days, since.Format(time.RFC3339))

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var payments []models.Payment
	if err := config.Gorm.WithContext(ctx).
		Where("created_at >= ?", since).
		Order("created_at ASC").
		Find(&payments).Error; err != nil {
		log.Printf("[admin.analytics] ERROR fetch payments err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch analytics"))
		return
	}

	var orders []models.CustomerOrder
	if err := config.Gorm.WithContext(ctx).
		Where("created_at >= ?", since).
		Order("created_at ASC").
		Find(&orders).Error; err != nil {
		log.Printf("[admin.analytics] ERROR fetch orders err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch analytics"))
		return
	}

	report := analytics.Transform(toPaymentEvents(payments), toOrderEvents(orders), now, days)

	log.Printf("[admin.analytics] respond 200 payments=%d orders=%d revenue=%.2f",
		len(payments), len(orders), report.Totals.TotalRevenue)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Analytics retrieved successfully", report))
}

func toPaymentEvents(payments []models.Payment) []analytics.PaymentEvent {
	events := make([]analytics.PaymentEvent, 0, len(payments))
	for _, p := range payments {
		events = append(events, analytics.PaymentEvent{
			ID:        p.ID.String(),
			Amount:    p.Amount,
			Status:    p.Status,
			CreatedAt: p.CreatedAt,
		})
	}
	return events
}

func toOrderEvents(orders []models.CustomerOrder) []analytics.OrderEvent {
	events := make([]analytics.OrderEvent, 0, len(orders))
	for _, o := range orders {
		items := make([]analytics.OrderLineItem, 0, len(o.Items))
		for _, it := range o.Items {
			items = append(items, analytics.OrderLineItem{
				Name:     it.Name,
				Price:    it.Price,
				Quantity: it.Quantity,
			})
		}
		events = append(events, analytics.OrderEvent{
			ID:            o.ID.String(),
			UserID:        o.UserID,
			Phone:         o.Phone,
			Name:          o.Name,
			Status:        o.Status,
			PaymentMethod: o.PaymentMethod,
			Total:         o.Total,
			Items:         items,
			CreatedAt:     o.CreatedAt,
		})
	}
	return events
}
