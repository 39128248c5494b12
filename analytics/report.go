package analytics

import "time"

// PaymentEvent is a single payment attempt as recorded by the payment
// provider integration. Read-only input, never mutated here.
type PaymentEvent struct {
	ID        string    `json:"id"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"` // pending | success | failed
	CreatedAt time.Time `json:"created_at"`
}

// OrderLineItem is one line of an order's items list.
type OrderLineItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// OrderEvent is a customer order snapshot. Read-only input.
type OrderEvent struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	Phone         string          `json:"phone"`
	Name          string          `json:"name"`
	Status        string          `json:"status"`
	PaymentMethod string          `json:"payment_method"`
	Total         float64         `json:"total"`
	Items         []OrderLineItem `json:"items"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Totals holds the aggregate counters and rates for the dashboard header cards.
type Totals struct {
	TotalPayments      int     `json:"total_payments"`
	SuccessfulPayments int     `json:"successful_payments"`
	FailedPayments     int     `json:"failed_payments"`
	PendingPayments    int     `json:"pending_payments"`
	SuccessRate        float64 `json:"success_rate"` // 0-100
	FailRate           float64 `json:"fail_rate"`    // 0-100
	PendingRate        float64 `json:"pending_rate"` // 0-100
	TotalRevenue       float64 `json:"total_revenue"`
	TotalOrders        int     `json:"total_orders"`
	SuccessfulOrders   int     `json:"successful_orders"`
	PendingOrders      int     `json:"pending_orders"`
	FailedOrders       int     `json:"failed_orders"`
	AvgOrderValue      float64 `json:"avg_order_value"`
	Revenue24h         float64 `json:"revenue_24h"`
	Revenue7d          float64 `json:"revenue_7d"`
	Revenue30d         float64 `json:"revenue_30d"`
}

// DailyRevenue is one calendar-day bucket of successful payment revenue.
type DailyRevenue struct {
	Date    string  `json:"date"` // "02 Jan" label, day+month only
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

// HourlyOrders is one hour-of-day bucket of order counts.
type HourlyOrders struct {
	Hour   string `json:"hour"` // "9:00", not zero-padded
	Orders int    `json:"orders"`
}

type Trends struct {
	RevenueByDay []DailyRevenue `json:"revenue_by_day"`
	HourlyOrders []HourlyOrders `json:"hourly_orders"`
}

// PopularItem is a menu item ranked by accumulated revenue.
type PopularItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

type ItemRankings struct {
	PopularItems []PopularItem `json:"popular_items"`
}

// StatusBucket is one entry of the fixed pending/completed/cancelled breakdown.
type StatusBucket struct {
	Status     string  `json:"status"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"` // 0-100
}

type OrderBreakdown struct {
	OrdersByStatus []StatusBucket `json:"orders_by_status"`
}

// PaymentMethodStat accumulates order count and revenue per payment method label.
type PaymentMethodStat struct {
	Method  string  `json:"method"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

type PaymentBreakdown struct {
	PaymentMethods []PaymentMethodStat `json:"payment_methods"`
}

// TopCustomer is a customer ranked by accumulated order revenue.
type TopCustomer struct {
	Name    string  `json:"name"`
	Phone   string  `json:"phone"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

type CustomerRankings struct {
	TopCustomers []TopCustomer `json:"top_customers"`
}

// Report is one immutable analytics snapshot. It is recomputed on every
// request and is a pure function of the two input collections, the reference
// instant and the day window.
type Report struct {
	Totals    Totals           `json:"totals"`
	Trends    Trends           `json:"trends"`
	Items     ItemRankings     `json:"items"`
	Orders    OrderBreakdown   `json:"orders"`
	Payments  PaymentBreakdown `json:"payments"`
	Customers CustomerRankings `json:"customers"`
}
