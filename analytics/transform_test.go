package analytics

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func payment(amount float64, status string, age time.Duration) PaymentEvent {
	return PaymentEvent{
		ID:        "pay-1",
		Amount:    amount,
		Status:    status,
		CreatedAt: testNow.Add(-age),
	}
}

func order(status string, total float64, age time.Duration) OrderEvent {
	return OrderEvent{
		ID:        "ord-1",
		UserID:    "user-1",
		Phone:     "+254700000001",
		Name:      "Wanjiru",
		Status:    status,
		Total:     total,
		CreatedAt: testNow.Add(-age),
	}
}

func TestTransformEmptyInputs(t *testing.T) {
	r := Transform(nil, nil, testNow, 30)

	assert.Zero(t, r.Totals.TotalPayments)
	assert.Zero(t, r.Totals.TotalOrders)
	assert.Zero(t, r.Totals.TotalRevenue)
	assert.Zero(t, r.Totals.SuccessRate)
	assert.Zero(t, r.Totals.FailRate)
	assert.Zero(t, r.Totals.PendingRate)
	assert.Zero(t, r.Totals.AvgOrderValue)

	assert.Empty(t, r.Trends.RevenueByDay)
	assert.Empty(t, r.Trends.HourlyOrders)
	assert.Empty(t, r.Items.PopularItems)
	assert.Empty(t, r.Payments.PaymentMethods)
	assert.Empty(t, r.Customers.TopCustomers)

	require.Len(t, r.Orders.OrdersByStatus, 3)
	for _, b := range r.Orders.OrdersByStatus {
		assert.Zero(t, b.Count)
		assert.Zero(t, b.Percentage)
	}
	assert.Equal(t, "pending", r.Orders.OrdersByStatus[0].Status)
	assert.Equal(t, "completed", r.Orders.OrdersByStatus[1].Status)
	assert.Equal(t, "cancelled", r.Orders.OrdersByStatus[2].Status)
}

func TestRateZeroGuard(t *testing.T) {
	payments := []PaymentEvent{payment(50, "pending", time.Hour)}

	r := Transform(payments, nil, testNow, 30)

	assert.Equal(t, 0.0, r.Totals.SuccessRate)
	assert.Equal(t, 0.0, r.Totals.FailRate)
	assert.Equal(t, 100.0, r.Totals.PendingRate)
}

func TestRevenueExcludesNonSuccess(t *testing.T) {
	payments := []PaymentEvent{
		payment(100, "success", time.Hour),
		payment(50, "failed", time.Hour),
		payment(25, "pending", time.Hour),
	}

	r := Transform(payments, nil, testNow, 30)

	assert.Equal(t, 100.0, r.Totals.TotalRevenue)
	assert.Equal(t, 3, r.Totals.TotalPayments)
}

func TestTrailingRevenueWindowsAreIndependent(t *testing.T) {
	payments := []PaymentEvent{
		payment(10, "success", 2*time.Hour),     // inside 24h
		payment(20, "success", 3*24*time.Hour),  // inside 7d
		payment(40, "success", 20*24*time.Hour), // inside 30d only
		payment(999, "failed", time.Hour),       // never revenue
	}

	r := Transform(payments, nil, testNow, 30)

	assert.Equal(t, 10.0, r.Totals.Revenue24h)
	assert.Equal(t, 30.0, r.Totals.Revenue7d)
	assert.Equal(t, 70.0, r.Totals.Revenue30d)
}

func TestWindowBoundaryIsInclusive(t *testing.T) {
	onBoundary := PaymentEvent{Amount: 5, Status: "success", CreatedAt: testNow.AddDate(0, 0, -30)}
	outside := PaymentEvent{Amount: 7, Status: "success", CreatedAt: testNow.AddDate(0, 0, -30).Add(-time.Second)}

	r := Transform([]PaymentEvent{onBoundary, outside}, nil, testNow, 30)

	assert.Equal(t, 1, r.Totals.TotalPayments)
	assert.Equal(t, 5.0, r.Totals.TotalRevenue)
}

func TestPopularItemsAggregateAcrossOrders(t *testing.T) {
	burger := OrderLineItem{Name: "Burger", Price: 10, Quantity: 2}
	o1 := order("completed", 20, time.Hour)
	o1.Items = []OrderLineItem{burger}
	o2 := order("cancelled", 20, 2*time.Hour) // cancelled orders still count toward popularity
	o2.Items = []OrderLineItem{burger}

	r := Transform(nil, []OrderEvent{o1, o2}, testNow, 30)

	require.Len(t, r.Items.PopularItems, 1)
	assert.Equal(t, "Burger", r.Items.PopularItems[0].Name)
	assert.Equal(t, 4, r.Items.PopularItems[0].Quantity)
	assert.Equal(t, 40.0, r.Items.PopularItems[0].Revenue)
}

func TestTopCustomersTruncatedToFive(t *testing.T) {
	var orders []OrderEvent
	for i := 0; i < 7; i++ {
		o := order("completed", float64(700-i*100), time.Hour)
		o.Phone = fmt.Sprintf("+2547000000%02d", i)
		o.Name = fmt.Sprintf("Customer %d", i)
		orders = append(orders, o)
	}

	r := Transform(nil, orders, testNow, 30)

	require.Len(t, r.Customers.TopCustomers, 5)
	for i, c := range r.Customers.TopCustomers {
		assert.Equal(t, float64(700-i*100), c.Revenue)
	}
}

func TestTopCustomersKeyFallsBackToUserID(t *testing.T) {
	o1 := order("completed", 30, time.Hour)
	o1.Phone = ""
	o1.UserID = "user-7"
	o2 := order("completed", 20, 2*time.Hour)
	o2.Phone = ""
	o2.UserID = "user-7"
	o2.Name = "Renamed"

	r := Transform(nil, []OrderEvent{o1, o2}, testNow, 30)

	require.Len(t, r.Customers.TopCustomers, 1)
	c := r.Customers.TopCustomers[0]
	assert.Equal(t, 2, c.Orders)
	assert.Equal(t, 50.0, c.Revenue)
	// display name is last-seen-wins
	assert.Equal(t, "Renamed", c.Name)
}

func TestStatusLiteralMismatchIsPreserved(t *testing.T) {
	// An order marked "success" counts toward successful_orders but is
	// invisible to the pending/completed/cancelled breakdown. Do not "fix"
	// one side without the other; dashboards depend on both as-is.
	o := order("success", 42, time.Hour)

	r := Transform(nil, []OrderEvent{o}, testNow, 30)

	assert.Equal(t, 1, r.Totals.SuccessfulOrders)
	require.Len(t, r.Orders.OrdersByStatus, 3)
	for _, b := range r.Orders.OrdersByStatus {
		assert.Zero(t, b.Count, "status %q must not absorb 'success' orders", b.Status)
	}
}

func TestOrdersByStatusPercentages(t *testing.T) {
	orders := []OrderEvent{
		order("pending", 10, time.Hour),
		order("completed", 10, time.Hour),
		order("completed", 10, time.Hour),
		order("cancelled", 10, time.Hour),
	}

	r := Transform(nil, orders, testNow, 30)

	require.Len(t, r.Orders.OrdersByStatus, 3)
	assert.Equal(t, 25.0, r.Orders.OrdersByStatus[0].Percentage)
	assert.Equal(t, 50.0, r.Orders.OrdersByStatus[1].Percentage)
	assert.Equal(t, 25.0, r.Orders.OrdersByStatus[2].Percentage)
}

func TestPaymentMethodsDefaultUnknownAndKeepFirstSeenOrder(t *testing.T) {
	o1 := order("completed", 15, time.Hour)
	o1.PaymentMethod = "mpesa"
	o2 := order("completed", 25, time.Hour)
	o2.PaymentMethod = ""
	o3 := order("pending", 5, time.Hour)
	o3.PaymentMethod = "mpesa"

	r := Transform(nil, []OrderEvent{o1, o2, o3}, testNow, 30)

	require.Len(t, r.Payments.PaymentMethods, 2)
	assert.Equal(t, "mpesa", r.Payments.PaymentMethods[0].Method)
	assert.Equal(t, 2, r.Payments.PaymentMethods[0].Count)
	assert.Equal(t, 20.0, r.Payments.PaymentMethods[0].Revenue)
	assert.Equal(t, "unknown", r.Payments.PaymentMethods[1].Method)
	assert.Equal(t, 25.0, r.Payments.PaymentMethods[1].Revenue)
}

func TestDailyRevenueBucketsFollowFirstSeenLabel(t *testing.T) {
	p1 := PaymentEvent{Amount: 10, Status: "success", CreatedAt: time.Date(2025, time.June, 14, 9, 0, 0, 0, time.UTC)}
	p2 := PaymentEvent{Amount: 20, Status: "success", CreatedAt: time.Date(2025, time.June, 12, 9, 0, 0, 0, time.UTC)}
	p3 := PaymentEvent{Amount: 5, Status: "success", CreatedAt: time.Date(2025, time.June, 14, 20, 0, 0, 0, time.UTC)}
	p4 := PaymentEvent{Amount: 99, Status: "failed", CreatedAt: time.Date(2025, time.June, 14, 21, 0, 0, 0, time.UTC)}

	r := Transform([]PaymentEvent{p1, p2, p3, p4}, nil, testNow, 30)

	require.Len(t, r.Trends.RevenueByDay, 2)
	assert.Equal(t, "14 Jun", r.Trends.RevenueByDay[0].Date)
	assert.Equal(t, 15.0, r.Trends.RevenueByDay[0].Revenue)
	assert.Equal(t, 2, r.Trends.RevenueByDay[0].Orders)
	assert.Equal(t, "12 Jun", r.Trends.RevenueByDay[1].Date)
}

func TestHourlyOrdersSparseUnpaddedLabels(t *testing.T) {
	mk := func(hour int) OrderEvent {
		o := order("completed", 10, 0)
		o.CreatedAt = time.Date(2025, time.June, 14, hour, 30, 0, 0, time.UTC)
		return o
	}

	r := Transform(nil, []OrderEvent{mk(21), mk(9), mk(9)}, testNow, 30)

	require.Len(t, r.Trends.HourlyOrders, 2)
	assert.Equal(t, "9:00", r.Trends.HourlyOrders[0].Hour)
	assert.Equal(t, 2, r.Trends.HourlyOrders[0].Orders)
	assert.Equal(t, "21:00", r.Trends.HourlyOrders[1].Hour)
}

func TestTransformIsIdempotent(t *testing.T) {
	payments := []PaymentEvent{
		payment(100, "success", time.Hour),
		payment(50, "failed", 2*time.Hour),
	}
	o := order("completed", 100, time.Hour)
	o.Items = []OrderLineItem{{Name: "Pilau", Price: 25, Quantity: 4}}
	orders := []OrderEvent{o}

	first := Transform(payments, orders, testNow, 30)
	second := Transform(payments, orders, testNow, 30)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated transforms diverged:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestRatesStayInRange(t *testing.T) {
	payments := []PaymentEvent{
		payment(1, "success", time.Hour),
		payment(1, "success", time.Hour),
		payment(1, "failed", time.Hour),
		payment(1, "pending", time.Hour),
		payment(1, "chargeback", time.Hour), // unrecognised status still counts toward the total
	}

	r := Transform(payments, nil, testNow, 30)

	for _, rate := range []float64{r.Totals.SuccessRate, r.Totals.FailRate, r.Totals.PendingRate} {
		assert.GreaterOrEqual(t, rate, 0.0)
		assert.LessOrEqual(t, rate, 100.0)
	}
	assert.Equal(t, 40.0, r.Totals.SuccessRate)
}
