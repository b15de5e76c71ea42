package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-orders-api/models"
)

func dineIn(t *testing.T, table int, createdAt time.Time, status models.OrderStatus) models.Order {
	t.Helper()
	order, err := models.NewDineInOrder(table, "1x Coke")
	require.NoError(t, err)
	order.CreatedAt = createdAt
	order.Status = status
	if status == models.StatusDone {
		done := createdAt.Add(10 * time.Minute)
		order.CompletedAt = &done
	}
	return *order
}

func takeOut(t *testing.T, name, pickup string, createdAt time.Time, status models.OrderStatus) models.Order {
	t.Helper()
	order, err := models.NewTakeOutOrder(name, "", pickup, "1x Pad Thai")
	require.NoError(t, err)
	order.CreatedAt = createdAt
	order.Status = status
	if status == models.StatusPickedUp {
		picked := createdAt.Add(20 * time.Minute)
		order.PickedUpAt = &picked
	}
	return *order
}

func at(day, hour, min int) time.Time {
	return time.Date(2026, 8, day, hour, min, 0, 0, time.UTC)
}

func TestBuildReportEmptyInput(t *testing.T) {
	report := BuildReport(nil, nil, nil)

	assert.Equal(t, 0, report.Overview.TotalOrders)
	assert.Equal(t, 0.0, report.Overview.CompletionRate)
	assert.Empty(t, report.Daily)
	assert.Equal(t, [24]int{}, report.Hourly.Buckets)
	assert.Empty(t, report.Hourly.PeakHours)
	assert.Empty(t, report.DineIn.PopularTables)
	assert.Empty(t, report.TakeOut.TopCustomers)
	assert.Equal(t, 0, report.TakeOut.ASAP)
}

func TestOverviewCompletionRate(t *testing.T) {
	orders := []models.Order{
		dineIn(t, 1, at(29, 9, 0), models.StatusDone),
		dineIn(t, 2, at(29, 10, 0), models.StatusPending),
		takeOut(t, "Alice", "ASAP", at(29, 11, 0), models.StatusReady), // not terminal
	}

	report := BuildReport(orders, nil, nil)

	assert.Equal(t, 3, report.Overview.TotalOrders)
	assert.Equal(t, 2, report.Overview.DineIn)
	assert.Equal(t, 1, report.Overview.TakeOut)
	assert.Equal(t, 1, report.Overview.Completed)
	assert.Equal(t, 33.3, report.Overview.CompletionRate, "percentage rounded to one decimal")
}

func TestDailyTrendAscending(t *testing.T) {
	orders := []models.Order{
		dineIn(t, 1, at(28, 12, 0), models.StatusPending),
		takeOut(t, "Alice", "ASAP", at(27, 18, 0), models.StatusPending),
		dineIn(t, 2, at(27, 13, 0), models.StatusPending),
		takeOut(t, "Bob", "ASAP", at(29, 9, 0), models.StatusPending),
	}

	report := BuildReport(orders, nil, nil)

	require.Len(t, report.Daily, 3)
	assert.Equal(t, DailyStat{Date: "2026-08-27", DineIn: 1, TakeOut: 1, Total: 2}, report.Daily[0])
	assert.Equal(t, DailyStat{Date: "2026-08-28", DineIn: 1, Total: 1}, report.Daily[1])
	assert.Equal(t, DailyStat{Date: "2026-08-29", TakeOut: 1, Total: 1}, report.Daily[2])
}

func TestHourlyDistribution(t *testing.T) {
	orders := []models.Order{
		dineIn(t, 1, at(29, 9, 15), models.StatusPending),
		dineIn(t, 2, at(29, 9, 40), models.StatusPending),
		takeOut(t, "Alice", "ASAP", at(29, 14, 2), models.StatusPending),
	}

	report := BuildReport(orders, nil, nil)

	for hour, count := range report.Hourly.Buckets {
		switch hour {
		case 9:
			assert.Equal(t, 2, count)
		case 14:
			assert.Equal(t, 1, count)
		default:
			assert.Zero(t, count, "hour %d must be zero-filled", hour)
		}
	}

	require.Len(t, report.Hourly.PeakHours, 2)
	assert.Equal(t, HourCount{Hour: 9, Count: 2}, report.Hourly.PeakHours[0])
	assert.Equal(t, HourCount{Hour: 14, Count: 1}, report.Hourly.PeakHours[1])
}

func TestPeakHoursTieBreaksOnEarlierHour(t *testing.T) {
	var orders []models.Order
	for _, hour := range []int{20, 8, 11} {
		orders = append(orders, dineIn(t, 1, at(29, hour, 0), models.StatusPending))
	}

	report := BuildReport(orders, nil, nil)

	require.Len(t, report.Hourly.PeakHours, 3)
	assert.Equal(t, 8, report.Hourly.PeakHours[0].Hour)
	assert.Equal(t, 11, report.Hourly.PeakHours[1].Hour)
	assert.Equal(t, 20, report.Hourly.PeakHours[2].Hour)
}

func TestDineInBreakdown(t *testing.T) {
	orders := []models.Order{
		dineIn(t, 4, at(29, 9, 0), models.StatusDone),
		dineIn(t, 4, at(29, 10, 0), models.StatusPending),
		dineIn(t, 7, at(29, 11, 0), models.StatusPending),
		takeOut(t, "Alice", "ASAP", at(29, 12, 0), models.StatusPending),
	}

	report := BuildReport(orders, nil, nil)

	assert.Equal(t, map[models.OrderStatus]int{
		models.StatusDone:    1,
		models.StatusPending: 2,
	}, report.DineIn.StatusCounts)

	require.Len(t, report.DineIn.PopularTables, 2)
	assert.Equal(t, TableCount{Table: 4, Count: 2}, report.DineIn.PopularTables[0])
	assert.Equal(t, TableCount{Table: 7, Count: 1}, report.DineIn.PopularTables[1])
}

func TestTakeOutBreakdown(t *testing.T) {
	orders := []models.Order{
		takeOut(t, "Alice", "ASAP", at(29, 9, 0), models.StatusPickedUp),
		takeOut(t, "Alice", "18:30", at(29, 10, 0), models.StatusPending),
		takeOut(t, "Bob", "ASAP", at(29, 11, 0), models.StatusReady),
		dineIn(t, 1, at(29, 12, 0), models.StatusPending),
	}

	report := BuildReport(orders, nil, nil)

	assert.Equal(t, 2, report.TakeOut.ASAP)
	assert.Equal(t, 1, report.TakeOut.Scheduled)
	assert.Equal(t, map[models.OrderStatus]int{
		models.StatusPickedUp: 1,
		models.StatusPending:  1,
		models.StatusReady:    1,
	}, report.TakeOut.StatusCounts)

	require.Len(t, report.TakeOut.TopCustomers, 2)
	assert.Equal(t, CustomerCount{Name: "Alice", Count: 2}, report.TakeOut.TopCustomers[0])
	assert.Equal(t, CustomerCount{Name: "Bob", Count: 1}, report.TakeOut.TopCustomers[1])
}

func TestTopCustomersTieBreaksOnFirstSeen(t *testing.T) {
	orders := []models.Order{
		takeOut(t, "Zoe", "ASAP", at(29, 9, 0), models.StatusPending),
		takeOut(t, "Amy", "ASAP", at(29, 10, 0), models.StatusPending),
	}

	report := BuildReport(orders, nil, nil)

	require.Len(t, report.TakeOut.TopCustomers, 2)
	assert.Equal(t, "Zoe", report.TakeOut.TopCustomers[0].Name, "earlier first order wins the tie")
	assert.Equal(t, "Amy", report.TakeOut.TopCustomers[1].Name)
}

func TestDateRangeFiltering(t *testing.T) {
	orders := []models.Order{
		dineIn(t, 1, at(26, 12, 0), models.StatusDone),
		dineIn(t, 2, at(28, 12, 0), models.StatusDone),
		dineIn(t, 3, at(29, 12, 0), models.StatusPending),
	}

	from := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	report := BuildReport(orders, &from, &to)

	assert.Equal(t, 1, report.Overview.TotalOrders)
	assert.Equal(t, 100.0, report.Overview.CompletionRate)
	require.Len(t, report.Daily, 1)
	assert.Equal(t, "2026-08-28", report.Daily[0].Date)
}
