package models

import (
	"strings"
	"time"
)

// OrderType distinguishes the two order workflows
type OrderType string

const (
	TypeDineIn  OrderType = "Dine-In"
	TypeTakeOut OrderType = "Take-Out"
)

// OrderStatus represents all possible states of an order.
// The valid subset depends on the order type (see statemachine package).
type OrderStatus string

const (
	StatusPending  OrderStatus = "Pending"
	StatusDone     OrderStatus = "Done"      // dine-in terminal
	StatusReady    OrderStatus = "Ready"     // take-out intermediate
	StatusPickedUp OrderStatus = "Picked-Up" // take-out terminal
)

// PickupASAP is the literal pickup_time value for unscheduled take-out orders.
const PickupASAP = "ASAP"

// Order is the central entity. Exactly one variant field set is populated,
// determined by Type: TableNumber for dine-in, or CustomerName/CustomerPhone/
// PickupTime for take-out.
type Order struct {
	ID            string      `json:"id" gorm:"primaryKey"`
	Type          OrderType   `json:"type" gorm:"not null"`
	TableNumber   *int        `json:"table_number,omitempty"`
	CustomerName  *string     `json:"customer_name,omitempty"`
	CustomerPhone *string     `json:"customer_phone,omitempty"`
	PickupTime    *string     `json:"pickup_time,omitempty"`
	Items         string      `json:"items" gorm:"not null"`
	Status        OrderStatus `json:"status" gorm:"not null;default:'Pending'"`
	CreatedAt     time.Time   `json:"created_at"`
	CompletedAt   *time.Time  `json:"completed_at,omitempty"`
	PickedUpAt    *time.Time  `json:"picked_up_at,omitempty"`
}

// NewDineInOrder builds a pending dine-in order for a table.
func NewDineInOrder(tableNumber int, items string) (*Order, error) {
	order := &Order{
		Type:        TypeDineIn,
		TableNumber: &tableNumber,
		Items:       strings.TrimSpace(items),
		Status:      StatusPending,
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	return order, nil
}

// NewTakeOutOrder builds a pending take-out order. An empty pickup time
// defaults to ASAP; phone is optional.
func NewTakeOutOrder(customerName, customerPhone, pickupTime, items string) (*Order, error) {
	customerName = strings.TrimSpace(customerName)
	if pickupTime = strings.TrimSpace(pickupTime); pickupTime == "" {
		pickupTime = PickupASAP
	}
	order := &Order{
		Type:         TypeTakeOut,
		CustomerName: &customerName,
		PickupTime:   &pickupTime,
		Items:        strings.TrimSpace(items),
		Status:       StatusPending,
	}
	if phone := strings.TrimSpace(customerPhone); phone != "" {
		order.CustomerPhone = &phone
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	return order, nil
}

// Validate applies the per-type field invariants.
func (o *Order) Validate() error {
	if strings.TrimSpace(o.Items) == "" {
		return &ValidationError{Field: "items", Reason: "order items must not be empty"}
	}

	switch o.Type {
	case TypeDineIn:
		if o.TableNumber == nil {
			return &ValidationError{Field: "table_number", Reason: "table number required for dine-in orders"}
		}
		if *o.TableNumber < 1 || *o.TableNumber > 100 {
			return &ValidationError{Field: "table_number", Reason: "table number must be between 1 and 100"}
		}
		if o.CustomerName != nil || o.CustomerPhone != nil || o.PickupTime != nil {
			return &ValidationError{Field: "customer", Reason: "customer fields are not allowed on dine-in orders"}
		}

	case TypeTakeOut:
		if o.CustomerName == nil || *o.CustomerName == "" {
			return &ValidationError{Field: "customer_name", Reason: "customer name required for take-out orders"}
		}
		if o.TableNumber != nil {
			return &ValidationError{Field: "table_number", Reason: "table number is not allowed on take-out orders"}
		}
		if o.PickupTime == nil {
			return &ValidationError{Field: "pickup_time", Reason: "pickup time required for take-out orders"}
		}
		if err := validatePickupTime(*o.PickupTime); err != nil {
			return err
		}

	default:
		return &ValidationError{Field: "type", Reason: "order type must be Dine-In or Take-Out"}
	}

	return nil
}

// IsTakeOut reports whether the order follows the take-out workflow.
func (o *Order) IsTakeOut() bool {
	return o.Type == TypeTakeOut
}

// Terminal reports whether the order has reached its final status
// (Done for dine-in, Picked-Up for take-out).
func (o *Order) Terminal() bool {
	if o.Type == TypeDineIn {
		return o.Status == StatusDone
	}
	return o.Status == StatusPickedUp
}

// TerminalAt returns the timestamp of the terminal transition, if any.
func (o *Order) TerminalAt() *time.Time {
	if o.Type == TypeDineIn {
		return o.CompletedAt
	}
	return o.PickedUpAt
}

func validatePickupTime(v string) error {
	if v == PickupASAP {
		return nil
	}
	if _, err := time.Parse("15:04", v); err != nil {
		return &ValidationError{Field: "pickup_time", Reason: "pickup time must be ASAP or HH:MM"}
	}
	return nil
}
