package handlers

import (
	"net/http"
	"strconv"

	"restaurant-orders-api/models"

	"github.com/gin-gonic/gin"
)

type DineInOrderRequest struct {
	TableNumber int    `json:"table_number" binding:"required,min=1,max=100"`
	Items       string `json:"items" binding:"required"`
}

// SubmitDineIn creates a new dine-in order for a table
func SubmitDineIn(c *gin.Context) {
	var req DineInOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := orders.SubmitDineIn(req.TableNumber, req.Items)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order sent to kitchen",
		"order":   order,
	})
}

type TakeOutOrderRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone"`
	PickupTime    string `json:"pickup_time"` // "ASAP" (default) or "HH:MM"
	Items         string `json:"items" binding:"required"`
}

// SubmitTakeOut creates a new take-out order for a customer
func SubmitTakeOut(c *gin.Context) {
	var req TakeOutOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := orders.SubmitTakeOut(req.CustomerName, req.CustomerPhone, req.PickupTime, req.Items)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order sent to kitchen",
		"order":   order,
	})
}

type AdvanceStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// AdvanceOrderStatus moves an order along its workflow
func AdvanceOrderStatus(c *gin.Context) {
	var req AdvanceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := orders.Advance(c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order status updated",
		"order":   order,
	})
}

// DeleteOrder removes an order outright, whatever its status
func DeleteOrder(c *gin.Context) {
	if err := orders.Remove(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
}

// ListOrders returns orders matching type/status/date filters, oldest first
func ListOrders(c *gin.Context) {
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

	c.JSON(http.StatusOK, gin.H{
		"count":  len(matched),
		"orders": matched,
	})
}

// RecentOrders returns the latest orders of a type, newest first
func RecentOrders(c *gin.Context) {
	orderType := models.OrderType(c.Query("type"))
	if orderType != models.TypeDineIn && orderType != models.TypeTakeOut {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be Dine-In or Take-Out"})
		return
	}

	limit := 5
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}

	recent, err := queries.Recent(orderType, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":  len(recent),
		"orders": recent,
	})
}
