package models

// OrderState enum - shared by Order and ServiceOrder
type OrderState string

const (
	OrderStatePending    OrderState = "PENDING"
	OrderStateProcessing OrderState = "PROCESSING"
	OrderStateCompleted  OrderState = "COMPLETED"
	OrderStateCancelled  OrderState = "CANCELLED"
)

// allowedTransitions maps each state to the states reachable from it.
// COMPLETED and CANCELLED are terminal.
var allowedTransitions = map[OrderState][]OrderState{
	OrderStatePending:    {OrderStateProcessing, OrderStateCompleted, OrderStateCancelled},
	OrderStateProcessing: {OrderStateCompleted, OrderStateCancelled},
	OrderStateCompleted:  {},
	OrderStateCancelled:  {},
}

// IsValidOrderState reports whether s is one of the four known states
func IsValidOrderState(s OrderState) bool {
	_, ok := allowedTransitions[s]
	return ok
}

// CanTransition reports whether moving from one state to another is allowed.
// A same-state update is always allowed (treated as a no-op by callers).
func CanTransition(from, to OrderState) bool {
	if !IsValidOrderState(from) || !IsValidOrderState(to) {
		return false
	}
	if from == to {
		return true
	}
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
