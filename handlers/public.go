package handlers

import (
	"net/http"

	"restaurant-orders-api/statemachine"

	"github.com/gin-gonic/gin"
)

// GetStateMachineInfo returns the full state machine for informational purposes
func GetStateMachineInfo(c *gin.Context) {
	var info []gin.H
	for _, t := range statemachine.GetAllTransitions() {
		info = append(info, gin.H{
			"type": t.Type,
			"from": t.From,
			"to":   t.To,
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"state_machine":   info,
		"terminal_states": gin.H{"Dine-In": "Done", "Take-Out": "Picked-Up"},
		"description":     "Restaurant Order Lifecycle State Machine",
	})
}
