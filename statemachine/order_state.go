package statemachine

import "restaurant-orders-api/models"

// Transition defines a valid state change for one order type
type Transition struct {
	Type models.OrderType
	From models.OrderStatus
	To   models.OrderStatus
}

// validTransitions is the authoritative state machine definition.
// Each workflow is linear: every status has at most one successor.
// Dine-in deliberately has no intermediate "ready" state.
var validTransitions = []Transition{
	// Kitchen finishes a dine-in order
	{Type: models.TypeDineIn, From: models.StatusPending, To: models.StatusDone},
	// Kitchen finishes a take-out order, then the customer collects it
	{Type: models.TypeTakeOut, From: models.StatusPending, To: models.StatusReady},
	{Type: models.TypeTakeOut, From: models.StatusReady, To: models.StatusPickedUp},
}

type transitionKey struct {
	Type models.OrderType
	From models.OrderStatus
}

// Build a successor lookup for O(1) validation
var successorMap = func() map[transitionKey]models.OrderStatus {
	m := make(map[transitionKey]models.OrderStatus)
	for _, t := range validTransitions {
		m[transitionKey{t.Type, t.From}] = t.To
	}
	return m
}()

// Next returns the single legal successor status, if one exists.
func Next(orderType models.OrderType, from models.OrderStatus) (models.OrderStatus, bool) {
	to, ok := successorMap[transitionKey{orderType, from}]
	return to, ok
}

// IsTerminal reports whether a status has no further legal transition.
func IsTerminal(orderType models.OrderType, status models.OrderStatus) bool {
	_, ok := successorMap[transitionKey{orderType, status}]
	return !ok
}

// ValidTransitionsFrom returns all valid next states from a given state.
func ValidTransitionsFrom(orderType models.OrderType, from models.OrderStatus) []models.OrderStatus {
	if to, ok := Next(orderType, from); ok {
		return []models.OrderStatus{to}
	}
	return nil
}

// CanTransition checks whether an order of the given type may move
// from one status to another.
func CanTransition(orderType models.OrderType, from, to models.OrderStatus) error {
	if next, ok := Next(orderType, from); ok && next == to {
		return nil
	}
	return &models.InvalidTransitionError{
		Type:  orderType,
		From:  from,
		To:    to,
		Valid: ValidTransitionsFrom(orderType, from),
	}
}

// Statuses returns the full status domain for an order type, in workflow order.
func Statuses(orderType models.OrderType) []models.OrderStatus {
	if orderType == models.TypeDineIn {
		return []models.OrderStatus{models.StatusPending, models.StatusDone}
	}
	return []models.OrderStatus{models.StatusPending, models.StatusReady, models.StatusPickedUp}
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}
