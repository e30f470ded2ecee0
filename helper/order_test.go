package helper

import (
	"regexp"
	"sync"
	"testing"

	"restaurant_pos/constants"
	"restaurant_pos/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOrderNumberFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^ORD-\d{14}-[0-9A-F-]{4}$`)

	for i := 0; i < 20; i++ {
		number := GenerateOrderNumber()
		assert.True(t, pattern.MatchString(number), "unexpected format: %s", number)
	}
}

func TestGenerateOrderNumberBurst(t *testing.T) {
	// 200 goroutine sinh mã cùng lúc, trùng trong cùng giây gần như không
	// xảy ra nhờ suffix ngẫu nhiên
	const n = 200
	var wg sync.WaitGroup
	results := make([]string, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx] = GenerateOrderNumber()
		}(i)
	}
	wg.Wait()

	seen := make(map[string]bool, n)
	dupes := 0
	for _, number := range results {
		if seen[number] {
			dupes++
		}
		seen[number] = true
	}
	assert.LessOrEqual(t, dupes, 2, "too many collisions in a burst")
}

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to string }{
		{constants.ORDER_STATUS_PENDING, constants.ORDER_STATUS_CONFIRMED},
		{constants.ORDER_STATUS_PENDING, constants.ORDER_STATUS_CANCELLED},
		{constants.ORDER_STATUS_CONFIRMED, constants.ORDER_STATUS_PREPARING},
		{constants.ORDER_STATUS_CONFIRMED, constants.ORDER_STATUS_CANCELLED},
		{constants.ORDER_STATUS_PREPARING, constants.ORDER_STATUS_READY},
		{constants.ORDER_STATUS_PREPARING, constants.ORDER_STATUS_CANCELLED},
		{constants.ORDER_STATUS_READY, constants.ORDER_STATUS_SERVED},
		{constants.ORDER_STATUS_READY, constants.ORDER_STATUS_CANCELLED},
	}
	for _, tr := range allowed {
		assert.True(t, CanTransition(tr.from, tr.to), "%s -> %s should be allowed", tr.from, tr.to)
	}

	denied := []struct{ from, to string }{
		{constants.ORDER_STATUS_PENDING, constants.ORDER_STATUS_PREPARING},
		{constants.ORDER_STATUS_PENDING, constants.ORDER_STATUS_SERVED},
		{constants.ORDER_STATUS_CONFIRMED, constants.ORDER_STATUS_READY},
		{constants.ORDER_STATUS_READY, constants.ORDER_STATUS_PREPARING},
		{constants.ORDER_STATUS_SERVED, constants.ORDER_STATUS_PENDING},
		{constants.ORDER_STATUS_SERVED, constants.ORDER_STATUS_CANCELLED},
		{constants.ORDER_STATUS_CANCELLED, constants.ORDER_STATUS_PENDING},
		{constants.ORDER_STATUS_CANCELLED, constants.ORDER_STATUS_CONFIRMED},
	}
	for _, tr := range denied {
		assert.False(t, CanTransition(tr.from, tr.to), "%s -> %s should be denied", tr.from, tr.to)
	}
}

func TestIsValidOrderStatus(t *testing.T) {
	for _, status := range []string{
		constants.ORDER_STATUS_PENDING, constants.ORDER_STATUS_CONFIRMED,
		constants.ORDER_STATUS_PREPARING, constants.ORDER_STATUS_READY,
		constants.ORDER_STATUS_SERVED, constants.ORDER_STATUS_CANCELLED,
	} {
		assert.True(t, IsValidOrderStatus(status))
	}
	assert.False(t, IsValidOrderStatus("delivered"))
	assert.False(t, IsValidOrderStatus(""))
}

func TestCanModifyItems(t *testing.T) {
	assert.True(t, CanModifyItems(constants.ORDER_STATUS_PENDING))
	assert.True(t, CanModifyItems(constants.ORDER_STATUS_CONFIRMED))
	assert.False(t, CanModifyItems(constants.ORDER_STATUS_PREPARING))
	assert.False(t, CanModifyItems(constants.ORDER_STATUS_READY))
	assert.False(t, CanModifyItems(constants.ORDER_STATUS_SERVED))
	assert.False(t, CanModifyItems(constants.ORDER_STATUS_CANCELLED))
}

func TestRecalculateTotals(t *testing.T) {
	order := &model.Order{DiscountAmount: 2.00}
	items := []model.OrderItem{
		{TotalPrice: 10.00},
		{TotalPrice: 5.00},
	}

	RecalculateTotals(order, items, 0.10)

	assert.Equal(t, 15.00, order.Subtotal)
	assert.Equal(t, 15.00, order.TotalAmount)
	assert.Equal(t, 1.50, order.TaxAmount)
	assert.Equal(t, 14.50, order.FinalTotal())
}

func TestRecalculateTotalsEmpty(t *testing.T) {
	order := &model.Order{Subtotal: 99, TaxAmount: 9.9, TotalAmount: 99}

	RecalculateTotals(order, nil, 0.10)

	assert.Zero(t, order.Subtotal)
	assert.Zero(t, order.TaxAmount)
	assert.Zero(t, order.TotalAmount)
}

func TestRecalculateTotalsRounding(t *testing.T) {
	order := &model.Order{}
	items := []model.OrderItem{
		{TotalPrice: 3.33},
		{TotalPrice: 3.33},
		{TotalPrice: 3.33},
	}

	RecalculateTotals(order, items, 0.10)

	require.Equal(t, 9.99, order.Subtotal)
	assert.Equal(t, 1.00, order.TaxAmount)
}
