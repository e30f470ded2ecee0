package model

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderItemsCascadeConstraint(t *testing.T) {
	// gorm đọc constraint từ field association, không phải từ cột FK;
	// dòng đơn không được sống lâu hơn đơn
	field, ok := reflect.TypeOf(Order{}).FieldByName("Items")
	require.True(t, ok)

	tag := field.Tag.Get("gorm")
	assert.Contains(t, tag, "foreignKey:OrderID")
	assert.Contains(t, tag, "constraint:OnDelete:CASCADE")

	itemField, ok := reflect.TypeOf(OrderItem{}).FieldByName("OrderID")
	require.True(t, ok)
	assert.NotContains(t, itemField.Tag.Get("gorm"), "constraint")
}

func TestOrderFinalTotal(t *testing.T) {
	order := Order{TotalAmount: 15.00, TaxAmount: 1.50, DiscountAmount: 2.00}
	assert.Equal(t, 14.50, order.FinalTotal())
}

func TestOrderIsTerminal(t *testing.T) {
	assert.True(t, (&Order{Status: "served"}).IsTerminal())
	assert.True(t, (&Order{Status: "cancelled"}).IsTerminal())
	assert.False(t, (&Order{Status: "pending"}).IsTerminal())
	assert.False(t, (&Order{Status: "ready"}).IsTerminal())
}
