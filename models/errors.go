package models

import "fmt"

// ValidationError means a submission violated a domain invariant.
// It is returned before anything reaches the store.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid " + e.Field + ": " + e.Reason
}

// InvalidTransitionError means a requested status change is not the legal
// successor for the order's type and current status.
type InvalidTransitionError struct {
	Type  OrderType
	From  OrderStatus
	To    OrderStatus
	Valid []OrderStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition: %s → %s is not allowed for %s orders (valid: %s)",
		e.From, e.To, e.Type, e.describeValid())
}

func (e *InvalidTransitionError) describeValid() string {
	if len(e.Valid) == 0 {
		return "none, terminal state"
	}
	s := ""
	for i, v := range e.Valid {
		if i > 0 {
			s += ", "
		}
		s += string(v)
	}
	return s
}

// NotFoundError means the targeted order id is absent from the store,
// e.g. deleted by another staff member.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return "order not found: " + e.ID
}

// StoreUnavailableError wraps a failure of the storage collaborator.
type StoreUnavailableError struct {
	Op  string
	Err error
}

func (e *StoreUnavailableError) Error() string {
	return "order store unavailable during " + e.Op + ": " + e.Err.Error()
}

func (e *StoreUnavailableError) Unwrap() error {
	return e.Err
}
