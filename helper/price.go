package helper

import (
	"errors"

	"restaurant_pos/constants"
	"restaurant_pos/model"
)

var ErrInvalidPrice = errors.New("resolved unit price is negative")

// ResolveUnitPrice chọn giá theo thứ tự: override thủ công → giá takeaway →
// giá beach bar → giá gốc. Không side effect.
func ResolveUnitPrice(item *model.MenuItem, orderType string, locationName string, override *float64) (float64, error) {
	var price float64

	switch {
	case override != nil:
		price = *override
	case orderType == constants.ORDER_TYPE_TAKEAWAY:
		if item.TakeawayPrice != nil {
			price = *item.TakeawayPrice
		} else {
			price = item.Price
		}
	case locationName == constants.LOCATION_BEACH_BAR:
		if item.BeachBarPrice != nil {
			price = *item.BeachBarPrice
		} else {
			price = item.Price
		}
	default:
		price = item.Price
	}

	if price < 0 {
		return 0, ErrInvalidPrice
	}
	return price, nil
}

// CheckItemAvailability kiểm tra món có bán được cho loại đơn hay không.
// Takeaway: cho phép khi bán mang về hoặc là món chỉ-mang-về.
// Dine-in: phải đang mở bán và không phải món chỉ-mang-về.
func CheckItemAvailability(item *model.MenuItem, orderType string) bool {
	if orderType == constants.ORDER_TYPE_TAKEAWAY {
		return item.AvailableTakeaway || item.TakeawayOnly
	}
	return item.Available && !item.TakeawayOnly
}
