package model_test

import (
	"testing"

	"app/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

func TestParseOrderStatus(t *testing.T) {
	for _, v := range []string{"pending", "shipping", "completed", "cancelled"} {
		s, ok := model.ParseOrderStatus(v)
		assert.True(t, ok, v)
		assert.Equal(t, v, string(s))
	}

	_, ok := model.ParseOrderStatus("paid")
	assert.False(t, ok)

	_, ok = model.ParseOrderStatus("")
	assert.False(t, ok)
}

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from model.OrderStatus
		to   model.OrderStatus
		want bool
	}{
		{model.OrderStatusPending, model.OrderStatusShipping, true},
		{model.OrderStatusPending, model.OrderStatusCancelled, true},
		{model.OrderStatusPending, model.OrderStatusCompleted, false},
		{model.OrderStatusShipping, model.OrderStatusCompleted, true},
		{model.OrderStatusShipping, model.OrderStatusCancelled, true},
		{model.OrderStatusShipping, model.OrderStatusPending, false},

		//終端からはどこにも動けない
		{model.OrderStatusCompleted, model.OrderStatusPending, false},
		{model.OrderStatusCompleted, model.OrderStatusShipping, false},
		{model.OrderStatusCancelled, model.OrderStatusPending, false},
		{model.OrderStatusCancelled, model.OrderStatusCompleted, false},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, c.from.CanTransitionTo(c.to), "%s -> %s", c.from, c.to)
	}
}
