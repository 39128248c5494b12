package transaction_controller

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/Savoria-Hospitality/savoria-admin-backend/analytics"
	"github.com/Savoria-Hospitality/savoria-admin-backend/config"
	"github.com/Savoria-Hospitality/savoria-admin-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
)

// DownloadTransactionsReportPDF godoc
// @Summary Download transactions report PDF
// @Description Generate and download a PDF report of the trailing window: revenue totals, daily revenue and best-selling items
// @Tags Admin - Transactions
// @Produce octet-stream
// @Security BearerAuth
// @Param days query int false "Trailing window size in days (1-365)" default(30)
// @Success 200 "PDF file"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /admin/transactions/report/pdf [get]
func DownloadTransactionsReportPDF(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "30"))
	if err != nil || days < 1 || days > 365 {
		days = 30
	}

	log.Printf("[admin.transactions-report] request days=%d", days)

	now := time.Now()
	fetchDays := days
	if fetchDays < 30 {
		fetchDays = 30
	}
	since := now.AddDate(0, 0, -fetchDays)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var payments []models.Payment
	if err := config.Gorm.WithContext(ctx).
		Where("created_at >= ?", since).
		Order("created_at ASC").
		Find(&payments).Error; err != nil {
		log.Printf("[admin.transactions-report] ERROR fetch payments err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	var orders []models.CustomerOrder
	if err := config.Gorm.WithContext(ctx).
		Where("created_at >= ?", since).
		Order("created_at ASC").
		Find(&orders).Error; err != nil {
		log.Printf("[admin.transactions-report] ERROR fetch orders err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	report := analytics.Transform(toPaymentEvents(payments), toOrderEvents(orders), now, days)

	pdfBuffer := generateTransactionsReportPDF(report, now, days)

	filename := fmt.Sprintf("transactions-report-%s.pdf", now.Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`, filename, filename))
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Length", fmt.Sprintf("%d", pdfBuffer.Len()))
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Header("Pragma", "no-cache")
	c.Header("Expires", "0")

	c.Data(http.StatusOK, "application/pdf", pdfBuffer.Bytes())

	log.Printf("[admin.transactions-report] report PDF downloaded days=%d bytes=%d", days, pdfBuffer.Len())
}

// generateTransactionsReportPDF lays out the dashboard report as a printable summary
func generateTransactionsReportPDF(report analytics.Report, now time.Time, days int) *bytes.Buffer {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	darkGray := color.Color{Red: 38, Green: 38, Blue: 34}
	mediumGray := color.Color{Red: 121, Green: 119, Blue: 109}

	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("TRANSACTIONS REPORT", props.Text{
				Size:  24,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	m.Row(10, func() {
		m.Col(12, func() {
			m.Text("SAVORIA RESTAURANT GROUP", props.Text{
				Size:  16,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	m.Row(5, func() {
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Trailing %d days", days), props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Generated: %s", now.Format("Jan 02, 2006")), props.Text{
				Size:  9,
				Color: mediumGray,
				Align: consts.Right,
			})
		})
	})

	m.Row(8, func() {})

	// Summary figures
	summaryRows := []struct {
		label string
		value string
	}{
		{"Total revenue", fmt.Sprintf("$%.2f", report.Totals.TotalRevenue)},
		{"Total payments", fmt.Sprintf("%d", report.Totals.TotalPayments)},
		{"Payment success rate", fmt.Sprintf("%.1f%%", report.Totals.SuccessRate)},
		{"Total orders", fmt.Sprintf("%d", report.Totals.TotalOrders)},
		{"Average order value", fmt.Sprintf("$%.2f", report.Totals.AvgOrderValue)},
		{"Revenue last 24h", fmt.Sprintf("$%.2f", report.Totals.Revenue24h)},
		{"Revenue last 7 days", fmt.Sprintf("$%.2f", report.Totals.Revenue7d)},
		{"Revenue last 30 days", fmt.Sprintf("$%.2f", report.Totals.Revenue30d)},
	}

	m.Row(6, func() {
		m.Col(12, func() {
			m.Text("SUMMARY", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	for _, row := range summaryRows {
		row := row
		m.Row(5, func() {
			m.Col(6, func() {
				m.Text(row.label, props.Text{
					Size:  9,
					Color: mediumGray,
				})
			})
			m.Col(6, func() {
				m.Text(row.value, props.Text{
					Size:  9,
					Color: darkGray,
					Align: consts.Right,
				})
			})
		})
	}

	m.Row(8, func() {})

	// Daily revenue table
	m.Row(6, func() {
		m.Col(6, func() {
			m.Text("Day", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
		m.Col(3, func() {
			m.Text("Orders", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
		m.Col(3, func() {
			m.Text("Revenue", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})

	for _, day := range report.Trends.RevenueByDay {
		day := day
		m.Row(6, func() {
			m.Col(6, func() {
				m.Text(day.Date, props.Text{
					Size:  9,
					Color: darkGray,
				})
			})
			m.Col(3, func() {
				m.Text(fmt.Sprintf("%d", day.Orders), props.Text{
					Size:  9,
					Color: darkGray,
					Align: consts.Right,
				})
			})
			m.Col(3, func() {
				m.Text(fmt.Sprintf("$%.2f", day.Revenue), props.Text{
					Size:  9,
					Color: darkGray,
					Align: consts.Right,
				})
			})
		})
	}

	m.Row(8, func() {})

	// Popular items
	m.Row(6, func() {
		m.Col(6, func() {
			m.Text("Best sellers", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
		m.Col(3, func() {
			m.Text("Qty", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
		m.Col(3, func() {
			m.Text("Revenue", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})

	for _, item := range report.Items.PopularItems {
		item := item
		m.Row(6, func() {
			m.Col(6, func() {
				m.Text(item.Name, props.Text{
					Size:  9,
					Color: darkGray,
				})
			})
			m.Col(3, func() {
				m.Text(fmt.Sprintf("%d", item.Quantity), props.Text{
					Size:  9,
					Color: darkGray,
					Align: consts.Right,
				})
			})
			m.Col(3, func() {
				m.Text(fmt.Sprintf("$%.2f", item.Revenue), props.Text{
					Size:  9,
					Color: darkGray,
					Align: consts.Right,
				})
			})
		})
	}

	m.Row(12, func() {})

	m.Row(5, func() {
		m.Col(12, func() {
			m.Text(fmt.Sprintf("© %d Savoria Restaurant Group. All rights reserved.", now.Year()), props.Text{
				Size:  8,
				Color: mediumGray,
			})
		})
	})

	buf, err := m.Output()
	if err != nil {
		log.Printf("[admin.transactions-report] failed to generate PDF: %v", err)
		return bytes.NewBuffer(nil)
	}

	return &buf
}
