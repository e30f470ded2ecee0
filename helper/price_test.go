package helper

import (
	"testing"

	"restaurant_pos/constants"
	"restaurant_pos/model"
	"restaurant_pos/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveUnitPrice(t *testing.T) {
	item := &model.MenuItem{
		Name:          "Pad Thai",
		Price:         5.00,
		TakeawayPrice: utils.Ptr(4.00),
		BeachBarPrice: utils.Ptr(5.50),
	}

	tests := []struct {
		name     string
		item     *model.MenuItem
		orderType string
		location string
		override *float64
		want     float64
	}{
		{"dine-in shop dùng giá gốc", item, constants.ORDER_TYPE_DINE_IN, constants.LOCATION_SHOP, nil, 5.00},
		{"takeaway dùng giá takeaway", item, constants.ORDER_TYPE_TAKEAWAY, constants.LOCATION_SHOP, nil, 4.00},
		{"dine-in beach bar dùng giá beach bar", item, constants.ORDER_TYPE_DINE_IN, constants.LOCATION_BEACH_BAR, nil, 5.50},
		{"override thắng mọi tier", item, constants.ORDER_TYPE_TAKEAWAY, constants.LOCATION_BEACH_BAR, utils.Ptr(3.25), 3.25},
		{"takeaway thắng beach bar khi cả hai áp dụng", item, constants.ORDER_TYPE_TAKEAWAY, constants.LOCATION_BEACH_BAR, nil, 4.00},
		{
			"takeaway không có giá riêng rơi về giá gốc",
			&model.MenuItem{Price: 7.00},
			constants.ORDER_TYPE_TAKEAWAY, constants.LOCATION_SHOP, nil, 7.00,
		},
		{
			"beach bar không có giá riêng rơi về giá gốc",
			&model.MenuItem{Price: 7.00},
			constants.ORDER_TYPE_DINE_IN, constants.LOCATION_BEACH_BAR, nil, 7.00,
		},
		{"delivery không dính giá takeaway", item, constants.ORDER_TYPE_DELIVERY, constants.LOCATION_SHOP, nil, 5.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveUnitPrice(tt.item, tt.orderType, tt.location, tt.override)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveUnitPriceZeroOverride(t *testing.T) {
	// Override 0 là chủ ý (món tặng kèm), không rơi về giá tier
	item := &model.MenuItem{Price: 5.00, TakeawayPrice: utils.Ptr(4.00)}

	got, err := ResolveUnitPrice(item, constants.ORDER_TYPE_TAKEAWAY, constants.LOCATION_SHOP, utils.Ptr(0.0))
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestResolveUnitPriceNegative(t *testing.T) {
	item := &model.MenuItem{Price: 5.00}

	_, err := ResolveUnitPrice(item, constants.ORDER_TYPE_DINE_IN, constants.LOCATION_SHOP, utils.Ptr(-1.00))
	assert.ErrorIs(t, err, ErrInvalidPrice)

	bad := &model.MenuItem{Price: 9.00, TakeawayPrice: utils.Ptr(-0.50)}
	_, err = ResolveUnitPrice(bad, constants.ORDER_TYPE_TAKEAWAY, constants.LOCATION_SHOP, nil)
	assert.ErrorIs(t, err, ErrInvalidPrice)
}

func TestCheckItemAvailability(t *testing.T) {
	tests := []struct {
		name      string
		item      model.MenuItem
		orderType string
		want      bool
	}{
		{"dine-in món đang bán", model.MenuItem{Available: true}, constants.ORDER_TYPE_DINE_IN, true},
		{"dine-in món đã tắt", model.MenuItem{Available: false}, constants.ORDER_TYPE_DINE_IN, false},
		{"dine-in món chỉ mang về", model.MenuItem{Available: true, TakeawayOnly: true}, constants.ORDER_TYPE_DINE_IN, false},
		{"takeaway món bán mang về", model.MenuItem{AvailableTakeaway: true}, constants.ORDER_TYPE_TAKEAWAY, true},
		{"takeaway món chỉ mang về dù tắt cờ takeaway", model.MenuItem{AvailableTakeaway: false, TakeawayOnly: true}, constants.ORDER_TYPE_TAKEAWAY, true},
		{"takeaway món không bán mang về", model.MenuItem{Available: true, AvailableTakeaway: false}, constants.ORDER_TYPE_TAKEAWAY, false},
		{"delivery áp luật dine-in", model.MenuItem{Available: true}, constants.ORDER_TYPE_DELIVERY, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckItemAvailability(&tt.item, tt.orderType))
		})
	}
}
