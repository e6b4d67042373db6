package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidOrderState(t *testing.T) {
	assert.True(t, IsValidOrderState(OrderStatePending))
	assert.True(t, IsValidOrderState(OrderStateProcessing))
	assert.True(t, IsValidOrderState(OrderStateCompleted))
	assert.True(t, IsValidOrderState(OrderStateCancelled))

	assert.False(t, IsValidOrderState("SHIPPED"))
	assert.False(t, IsValidOrderState(""))
	assert.False(t, IsValidOrderState("pending"))
}

func TestCanTransitionForwardOnly(t *testing.T) {
	assert.True(t, CanTransition(OrderStatePending, OrderStateProcessing))
	assert.True(t, CanTransition(OrderStatePending, OrderStateCompleted))
	assert.True(t, CanTransition(OrderStatePending, OrderStateCancelled))
	assert.True(t, CanTransition(OrderStateProcessing, OrderStateCompleted))
	assert.True(t, CanTransition(OrderStateProcessing, OrderStateCancelled))

	assert.False(t, CanTransition(OrderStateProcessing, OrderStatePending))
	assert.False(t, CanTransition(OrderStateCompleted, OrderStatePending))
	assert.False(t, CanTransition(OrderStateCompleted, OrderStateProcessing))
	assert.False(t, CanTransition(OrderStateCancelled, OrderStateProcessing))
}

func TestCanTransitionTerminalStates(t *testing.T) {
	// Terminal states only allow the same-state no-op
	assert.True(t, CanTransition(OrderStateCompleted, OrderStateCompleted))
	assert.True(t, CanTransition(OrderStateCancelled, OrderStateCancelled))
	assert.False(t, CanTransition(OrderStateCompleted, OrderStateCancelled))
	assert.False(t, CanTransition(OrderStateCancelled, OrderStateCompleted))
}

func TestCanTransitionSameStateNoOp(t *testing.T) {
	assert.True(t, CanTransition(OrderStatePending, OrderStatePending))
	assert.True(t, CanTransition(OrderStateProcessing, OrderStateProcessing))
}

func TestCanTransitionUnknownStates(t *testing.T) {
	assert.False(t, CanTransition("SHIPPED", OrderStateCompleted))
	assert.False(t, CanTransition(OrderStatePending, "SHIPPED"))
	assert.False(t, CanTransition("", ""))
}
