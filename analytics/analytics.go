package analytics

import (
	"math"
	"sort"
	"time"

	"restaurant-orders-api/models"
)

// Overview holds the headline dashboard metrics.
type Overview struct {
	TotalOrders    int     `json:"total_orders"`
	DineIn         int     `json:"dine_in"`
	TakeOut        int     `json:"take_out"`
	Completed      int     `json:"completed"`
	CompletionRate float64 `json:"completion_rate"` // percentage, one decimal
}

// DailyStat is one calendar day of order volume.
type DailyStat struct {
	Date    string `json:"date"` // YYYY-MM-DD
	DineIn  int    `json:"dine_in"`
	TakeOut int    `json:"take_out"`
	Total   int    `json:"total"`
}

// HourCount pairs an hour of day with its order count.
type HourCount struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

// HourlyDistribution covers all 24 hours, zero-filled, plus the busiest five.
type HourlyDistribution struct {
	Buckets   [24]int     `json:"buckets"`
	PeakHours []HourCount `json:"peak_hours"`
}

// TableCount pairs a table number with its order count.
type TableCount struct {
	Table int `json:"table"`
	Count int `json:"count"`
}

// CustomerCount pairs a customer name with their order count.
type CustomerCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// DineInBreakdown analyzes the dine-in side of the filtered set.
type DineInBreakdown struct {
	StatusCounts  map[models.OrderStatus]int `json:"status_counts"`
	PopularTables []TableCount               `json:"popular_tables"` // top 10
}

// TakeOutBreakdown analyzes the take-out side of the filtered set.
type TakeOutBreakdown struct {
	StatusCounts map[models.OrderStatus]int `json:"status_counts"`
	ASAP         int                        `json:"asap"`
	Scheduled    int                        `json:"scheduled"`
	TopCustomers []CustomerCount            `json:"top_customers"` // top 5
}

// Report is the complete analytics view over a filtered order set.
type Report struct {
	Overview Overview           `json:"overview"`
	Daily    []DailyStat        `json:"daily_trend"`
	Hourly   HourlyDistribution `json:"hourly_distribution"`
	DineIn   DineInBreakdown    `json:"dine_in"`
	TakeOut  TakeOutBreakdown   `json:"take_out"`
}

const (
	topTables    = 10
	topCustomers = 5
	topHours     = 5
)

// BuildReport aggregates orders created within [from, to] (inclusive calendar
// days; a nil bound is open). Pure and deterministic; an empty input yields a
// zeroed report rather than an error.
func BuildReport(orders []models.Order, from, to *time.Time) Report {
	filtered := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if inDateRange(o.CreatedAt, from, to) {
			filtered = append(filtered, o)
		}
	}
	// First-seen tie-breaks below depend on creation order
	sort.SliceStable(filtered, func(i, j int) bool {
		if !filtered[i].CreatedAt.Equal(filtered[j].CreatedAt) {
			return filtered[i].CreatedAt.Before(filtered[j].CreatedAt)
		}
		return filtered[i].ID < filtered[j].ID
	})

	return Report{
		Overview: buildOverview(filtered),
		Daily:    buildDailyTrend(filtered),
		Hourly:   buildHourlyDistribution(filtered),
		DineIn:   buildDineInBreakdown(filtered),
		TakeOut:  buildTakeOutBreakdown(filtered),
	}
}

func buildOverview(orders []models.Order) Overview {
	ov := Overview{TotalOrders: len(orders)}
	for _, o := range orders {
		if o.Type == models.TypeDineIn {
			ov.DineIn++
		} else {
			ov.TakeOut++
		}
		if o.Terminal() {
			ov.Completed++
		}
	}
	if ov.TotalOrders > 0 {
		rate := float64(ov.Completed) / float64(ov.TotalOrders) * 100
		ov.CompletionRate = math.Round(rate*10) / 10
	}
	return ov
}

func buildDailyTrend(orders []models.Order) []DailyStat {
	byDate := map[string]*DailyStat{}
	for _, o := range orders {
		date := o.CreatedAt.Format("2006-01-02")
		stat, ok := byDate[date]
		if !ok {
			stat = &DailyStat{Date: date}
			byDate[date] = stat
		}
		stat.Total++
		if o.Type == models.TypeDineIn {
			stat.DineIn++
		} else {
			stat.TakeOut++
		}
	}

	trend := make([]DailyStat, 0, len(byDate))
	for _, stat := range byDate {
		trend = append(trend, *stat)
	}
	sort.Slice(trend, func(i, j int) bool { return trend[i].Date < trend[j].Date })
	return trend
}

func buildHourlyDistribution(orders []models.Order) HourlyDistribution {
	var dist HourlyDistribution
	for _, o := range orders {
		dist.Buckets[o.CreatedAt.Hour()]++
	}

	peaks := make([]HourCount, 0, 24)
	for hour, count := range dist.Buckets {
		if count > 0 {
			peaks = append(peaks, HourCount{Hour: hour, Count: count})
		}
	}
	// Busiest first; the earlier hour wins a tie
	sort.SliceStable(peaks, func(i, j int) bool { return peaks[i].Count > peaks[j].Count })
	if len(peaks) > topHours {
		peaks = peaks[:topHours]
	}
	dist.PeakHours = peaks
	return dist
}

func buildDineInBreakdown(orders []models.Order) DineInBreakdown {
	breakdown := DineInBreakdown{
		StatusCounts:  map[models.OrderStatus]int{},
		PopularTables: []TableCount{},
	}
	tableCounts := map[int]int{}
	for _, o := range orders {
		if o.Type != models.TypeDineIn {
			continue
		}
		breakdown.StatusCounts[o.Status]++
		if o.TableNumber != nil {
			tableCounts[*o.TableNumber]++
		}
	}

	for table, count := range tableCounts {
		breakdown.PopularTables = append(breakdown.PopularTables, TableCount{Table: table, Count: count})
	}
	sort.Slice(breakdown.PopularTables, func(i, j int) bool {
		if breakdown.PopularTables[i].Count != breakdown.PopularTables[j].Count {
			return breakdown.PopularTables[i].Count > breakdown.PopularTables[j].Count
		}
		return breakdown.PopularTables[i].Table < breakdown.PopularTables[j].Table
	})
	if len(breakdown.PopularTables) > topTables {
		breakdown.PopularTables = breakdown.PopularTables[:topTables]
	}
	return breakdown
}

func buildTakeOutBreakdown(orders []models.Order) TakeOutBreakdown {
	breakdown := TakeOutBreakdown{
		StatusCounts: map[models.OrderStatus]int{},
		TopCustomers: []CustomerCount{},
	}
	counts := map[string]int{}
	var firstSeen []string
	for _, o := range orders {
		if o.Type != models.TypeTakeOut {
			continue
		}
		breakdown.StatusCounts[o.Status]++
		if o.PickupTime != nil && *o.PickupTime == models.PickupASAP {
			breakdown.ASAP++
		} else {
			breakdown.Scheduled++
		}
		if o.CustomerName != nil {
			if _, ok := counts[*o.CustomerName]; !ok {
				firstSeen = append(firstSeen, *o.CustomerName)
			}
			counts[*o.CustomerName]++
		}
	}

	for _, name := range firstSeen {
		breakdown.TopCustomers = append(breakdown.TopCustomers, CustomerCount{Name: name, Count: counts[name]})
	}
	// Stable over first-seen order, so ties go to the earlier customer
	sort.SliceStable(breakdown.TopCustomers, func(i, j int) bool {
		return breakdown.TopCustomers[i].Count > breakdown.TopCustomers[j].Count
	})
	if len(breakdown.TopCustomers) > topCustomers {
		breakdown.TopCustomers = breakdown.TopCustomers[:topCustomers]
	}
	return breakdown
}

func inDateRange(ts time.Time, from, to *time.Time) bool {
	day := dateOnly(ts)
	if from != nil && day.Before(dateOnly(*from)) {
		return false
	}
	if to != nil && day.After(dateOnly(*to)) {
		return false
	}
	return true
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
