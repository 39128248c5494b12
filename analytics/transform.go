// Package analytics turns raw payment and order rows into the derived
// metrics, trends and rankings shown on the transactions dashboard.
//
// The whole package is a single synchronous in-memory transform: no I/O, no
// shared state, no clock reads. Callers pass the reference instant explicitly
// so identical inputs always produce identical reports.
package analytics

import (
	"fmt"
	"sort"
	"time"
)

const topCount = 5

// statusBreakdownOrder is the fixed set of order statuses reported by the
// status breakdown chart. Orders carrying any other status (including
// "success"/"failed", which the totals counters use) are excluded from this
// particular breakdown on purpose.
var statusBreakdownOrder = [3]string{"pending", "completed", "cancelled"}

// Transform computes the full analytics report over payments and orders that
// fall inside the trailing window of `days` days ending at `now`. The window
// boundary is inclusive.
func Transform(payments []PaymentEvent, orders []OrderEvent, now time.Time, days int) Report {
	payments = filterPayments(payments, now, days)
	orders = filterOrders(orders, now, days)

	return Report{
		Totals:    computeTotals(payments, orders, now),
		Trends:    computeTrends(payments, orders),
		Items:     ItemRankings{PopularItems: rankItems(orders)},
		Orders:    OrderBreakdown{OrdersByStatus: breakdownByStatus(orders)},
		Payments:  PaymentBreakdown{PaymentMethods: accumulateMethods(orders)},
		Customers: CustomerRankings{TopCustomers: rankCustomers(orders)},
	}
}

// withinWindow reports whether ts is at most `days` days before now. Events
// exactly on the boundary count as inside.
func withinWindow(ts, now time.Time, days int) bool {
	return !ts.Before(now.AddDate(0, 0, -days))
}

func filterPayments(payments []PaymentEvent, now time.Time, days int) []PaymentEvent {
	out := make([]PaymentEvent, 0, len(payments))
	for _, p := range payments {
		if withinWindow(p.CreatedAt, now, days) {
			out = append(out, p)
		}
	}
	return out
}

func filterOrders(orders []OrderEvent, now time.Time, days int) []OrderEvent {
	out := make([]OrderEvent, 0, len(orders))
	for _, o := range orders {
		if withinWindow(o.CreatedAt, now, days) {
			out = append(out, o)
		}
	}
	return out
}

func computeTotals(payments []PaymentEvent, orders []OrderEvent, now time.Time) Totals {
	t := Totals{TotalPayments: len(payments), TotalOrders: len(orders)}

	for _, p := range payments {
		switch p.Status {
		case "success":
			t.SuccessfulPayments++
			t.TotalRevenue += p.Amount
		case "failed":
			t.FailedPayments++
		case "pending":
			t.PendingPayments++
		}
	}

	if t.TotalPayments > 0 {
		t.SuccessRate = float64(t.SuccessfulPayments) / float64(t.TotalPayments) * 100
		t.FailRate = float64(t.FailedPayments) / float64(t.TotalPayments) * 100
		t.PendingRate = float64(t.PendingPayments) / float64(t.TotalPayments) * 100
	}

	for _, o := range orders {
		switch o.Status {
		case "success":
			t.SuccessfulOrders++
		case "failed":
			t.FailedOrders++
		case "pending":
			t.PendingOrders++
		}
	}

	if t.SuccessfulOrders > 0 {
		t.AvgOrderValue = t.TotalRevenue / float64(t.SuccessfulOrders)
	}

	// Each trailing-revenue window is re-filtered from scratch so a bug in
	// one window cannot leak into another.
	t.Revenue24h = revenueWithin(payments, now, 1)
	t.Revenue7d = revenueWithin(payments, now, 7)
	t.Revenue30d = revenueWithin(payments, now, 30)

	return t
}

func revenueWithin(payments []PaymentEvent, now time.Time, days int) float64 {
	var sum float64
	for _, p := range payments {
		if p.Status == "success" && withinWindow(p.CreatedAt, now, days) {
			sum += p.Amount
		}
	}
	return sum
}

func computeTrends(payments []PaymentEvent, orders []OrderEvent) Trends {
	return Trends{
		RevenueByDay: binDailyRevenue(payments),
		HourlyOrders: binHourlyOrders(orders),
	}
}

// binDailyRevenue groups successful payments by the "02 Jan" label of their
// creation date. The label drops the year, so payments a year apart on the
// same calendar date share a bucket. Output order is first occurrence of each
// label, not calendar order.
func binDailyRevenue(payments []PaymentEvent) []DailyRevenue {
	idx := make(map[string]int)
	out := []DailyRevenue{}
	for _, p := range payments {
		if p.Status != "success" {
			continue
		}
		label := p.CreatedAt.Format("02 Jan")
		i, ok := idx[label]
		if !ok {
			i = len(out)
			idx[label] = i
			out = append(out, DailyRevenue{Date: label})
		}
		out[i].Revenue += p.Amount
		out[i].Orders++
	}
	return out
}

// binHourlyOrders counts orders of every status per hour of day. Hours with
// no orders are omitted; labels are not zero-padded.
func binHourlyOrders(orders []OrderEvent) []HourlyOrders {
	idx := make(map[string]int)
	out := []HourlyOrders{}
	for _, o := range orders {
		label := fmt.Sprintf("%d:00", o.CreatedAt.Hour())
		i, ok := idx[label]
		if !ok {
			i = len(out)
			idx[label] = i
			out = append(out, HourlyOrders{Hour: label})
		}
		out[i].Orders++
	}
	sort.SliceStable(out, func(a, b int) bool {
		return hourOf(out[a].Hour) < hourOf(out[b].Hour)
	})
	return out
}

func hourOf(label string) int {
	var h int
	fmt.Sscanf(label, "%d:00", &h)
	return h
}

// rankItems accumulates quantity and revenue per item name across orders of
// every status (item popularity deliberately ignores order outcome, unlike
// revenue totals) and returns the top entries by revenue.
func rankItems(orders []OrderEvent) []PopularItem {
	idx := make(map[string]int)
	acc := []PopularItem{}
	for _, o := range orders {
		for _, it := range o.Items {
			i, ok := idx[it.Name]
			if !ok {
				i = len(acc)
				idx[it.Name] = i
				acc = append(acc, PopularItem{Name: it.Name})
			}
			acc[i].Quantity += it.Quantity
			acc[i].Revenue += float64(it.Quantity) * it.Price
		}
	}
	sort.SliceStable(acc, func(a, b int) bool { return acc[a].Revenue > acc[b].Revenue })
	if len(acc) > topCount {
		acc = acc[:topCount]
	}
	return acc
}

// rankCustomers accumulates order count and revenue per customer, keyed by
// phone with user_id as fallback. The display name is overwritten on every
// matching order (last seen wins). All order statuses count.
func rankCustomers(orders []OrderEvent) []TopCustomer {
	idx := make(map[string]int)
	acc := []TopCustomer{}
	for _, o := range orders {
		key := o.Phone
		if key == "" {
			key = o.UserID
		}
		i, ok := idx[key]
		if !ok {
			i = len(acc)
			idx[key] = i
			acc = append(acc, TopCustomer{Phone: o.Phone})
		}
		acc[i].Name = o.Name
		acc[i].Orders++
		acc[i].Revenue += o.Total
	}
	sort.SliceStable(acc, func(a, b int) bool { return acc[a].Revenue > acc[b].Revenue })
	if len(acc) > topCount {
		acc = acc[:topCount]
	}
	return acc
}

// accumulateMethods counts orders and revenue per payment method label in
// first-occurrence order. Empty labels fold into "unknown". Never truncated.
func accumulateMethods(orders []OrderEvent) []PaymentMethodStat {
	idx := make(map[string]int)
	out := []PaymentMethodStat{}
	for _, o := range orders {
		method := o.PaymentMethod
		if method == "" {
			method = "unknown"
		}
		i, ok := idx[method]
		if !ok {
			i = len(out)
			idx[method] = i
			out = append(out, PaymentMethodStat{Method: method})
		}
		out[i].Count++
		out[i].Revenue += o.Total
	}
	return out
}

// breakdownByStatus always emits exactly three buckets in a fixed order.
func breakdownByStatus(orders []OrderEvent) []StatusBucket {
	total := len(orders)
	out := make([]StatusBucket, 0, len(statusBreakdownOrder))
	for _, status := range statusBreakdownOrder {
		count := 0
		for _, o := range orders {
			if o.Status == status {
				count++
			}
		}
		pct := 0.0
		if total > 0 {
			pct = float64(count) / float64(total) * 100
		}
		out = append(out, StatusBucket{Status: status, Count: count, Percentage: pct})
	}
	return out
}
