package handlers

import (
	"net/http"
	"strconv"

	"restaurant-orders-api/models"

	"github.com/gin-gonic/gin"
)

// KitchenDashboard returns the live kitchen view: headline counts, FIFO work
// queues per type, and the most recent completions (default window of 5).
func KitchenDashboard(c *gin.Context) {
	completedWindow := 5
	if raw := c.Query("completed_limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "completed_limit must be a positive integer"})
			return
		}
		completedWindow = n
	}

	pendingDineIn, err := queries.Pending(models.TypeDineIn)
	if err != nil {
		respondError(c, err)
		return
	}
	pendingTakeOut, err := queries.Pending(models.TypeTakeOut)
	if err != nil {
		respondError(c, err)
		return
	}
	readyTakeOut, err := queries.Ready(models.TypeTakeOut)
	if err != nil {
		respondError(c, err)
		return
	}
	completedDineIn, err := queries.Completed(models.TypeDineIn, completedWindow)
	if err != nil {
		respondError(c, err)
		return
	}
	pickedUpTakeOut, err := queries.Completed(models.TypeTakeOut, completedWindow)
	if err != nil {
		respondError(c, err)
		return
	}
	all, err := queries.Snapshot()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"metrics": gin.H{
			"dine_in_pending":  len(pendingDineIn),
			"take_out_pending": len(pendingTakeOut),
			"take_out_ready":   len(readyTakeOut),
			"total_orders":     len(all),
		},
		"dine_in": gin.H{
			"pending":   pendingDineIn,
			"completed": completedDineIn,
		},
		"take_out": gin.H{
			"pending":   pendingTakeOut,
			"ready":     readyTakeOut,
			"picked_up": pickedUpTakeOut,
		},
	})
}
