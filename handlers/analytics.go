package handlers

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"
	"strings"
	"time"

	"restaurant-orders-api/analytics"
	"restaurant-orders-api/models"
	"restaurant-orders-api/repository"

	"github.com/gin-gonic/gin"
)

// GetAnalytics computes the full report over an optional inclusive date range
func GetAnalytics(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		respondError(c, err)
		return
	}

	matched, err := queries.List(repository.Filter{Type: filter.Type, Status: filter.Status})
	if err != nil {
		respondError(c, err)
		return
	}

	report := analytics.BuildReport(matched, filter.From, filter.To)
	c.JSON(http.StatusOK, report)
}

const timestampLayout = "2006-01-02 15:04:05"

// ExportOrdersCSV streams the filtered order set as a CSV download
func ExportOrdersCSV(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		respondError(c, err)
		return
	}

	matched, err := queries.List(filter)
	if err != nil {
		respondError(c, err)
		return
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Write([]string{"Type", "Table/Customer", "Phone", "Items", "Status", "Timestamp", "Completed At", "Pickup Time"})
	for _, o := range matched {
		w.Write([]string{
			string(o.Type),
			tableOrCustomer(o),
			orBlank(o.CustomerPhone),
			strings.ReplaceAll(o.Items, "\n", "; "),
			string(o.Status),
			o.CreatedAt.Format(timestampLayout),
			formatOptionalTime(o.CompletedAt),
			orBlank(o.PickupTime),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build CSV"})
		return
	}

	filename := "restaurant_orders_" + time.Now().Format("20060102") + ".csv"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

func tableOrCustomer(o models.Order) string {
	if o.TableNumber != nil {
		return strconv.Itoa(*o.TableNumber)
	}
	return orBlank(o.CustomerName)
}

func orBlank(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(timestampLayout)
}
