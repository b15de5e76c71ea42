package handlers

import (
	"errors"
	"net/http"
	"time"

	"restaurant-orders-api/models"
	"restaurant-orders-api/repository"
	"restaurant-orders-api/service"
	"restaurant-orders-api/store"

	"github.com/gin-gonic/gin"
)

var (
	orders  *service.OrderService
	queries *repository.Repository
)

// Init wires the handler package to a store. Call once at startup.
func Init(st store.OrderStore) {
	orders = service.NewOrderService(st)
	queries = repository.NewRepository(st)
}

// respondError maps the typed error taxonomy onto HTTP status codes.
func respondError(c *gin.Context, err error) {
	var validationErr *models.ValidationError
	var transitionErr *models.InvalidTransitionError
	var notFoundErr *models.NotFoundError
	var storeErr *models.StoreUnavailableError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	case errors.As(err, &transitionErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":             "Invalid state transition",
			"current_status":    transitionErr.From,
			"requested":         transitionErr.To,
			"reason":            transitionErr.Error(),
			"valid_next_states": transitionErr.Valid,
		})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
	case errors.As(err, &storeErr):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Order store unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// parseFilter builds a repository filter from query params.
// Dates are YYYY-MM-DD, inclusive.
func parseFilter(c *gin.Context) (repository.Filter, error) {
	var f repository.Filter
	if t := c.Query("type"); t != "" {
		orderType := models.OrderType(t)
		if orderType != models.TypeDineIn && orderType != models.TypeTakeOut {
			return f, &models.ValidationError{Field: "type", Reason: "order type must be Dine-In or Take-Out"}
		}
		f.Type = &orderType
	}
	if s := c.Query("status"); s != "" {
		status := models.OrderStatus(s)
		f.Status = &status
	}
	if from := c.Query("from"); from != "" {
		ts, err := time.ParseInLocation("2006-01-02", from, time.Local)
		if err != nil {
			return f, &models.ValidationError{Field: "from", Reason: "date must be YYYY-MM-DD"}
		}
		f.From = &ts
	}
	if to := c.Query("to"); to != "" {
		ts, err := time.ParseInLocation("2006-01-02", to, time.Local)
		if err != nil {
			return f, &models.ValidationError{Field: "to", Reason: "date must be YYYY-MM-DD"}
		}
		f.To = &ts
	}
	return f, nil
}
