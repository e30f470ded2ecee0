package helper

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"restaurant_pos/config"
	"restaurant_pos/constants"
	"restaurant_pos/model"
	"restaurant_pos/utils"

	"github.com/google/uuid"
)

// TaxRate đọc từ config, mặc định 10%
func TaxRate() float64 {
	if v, err := strconv.ParseFloat(config.Config("TAX_RATE"), 64); err == nil && v >= 0 {
		return v
	}
	return constants.DEFAULT_TAX_RATE
}

// DefaultLocationID dùng cho takeaway/delivery khi không truyền location
func DefaultLocationID() uint {
	if v, err := strconv.ParseUint(config.Config("DEFAULT_LOCATION_ID"), 10, 32); err == nil && v > 0 {
		return uint(v)
	}
	return 1
}

// GenerateOrderNumber sinh mã đơn dạng ORD-20060102150405-ABCD.
// Uniqueness cuối cùng do unique index trên orders.order_number đảm bảo,
// caller phải retry khi gặp gorm.ErrDuplicatedKey.
func GenerateOrderNumber() string {
	timestamp := time.Now().Format("20060102150405")
	suffix := strings.ToUpper(uuid.NewString()[:4])
	return fmt.Sprintf("ORD-%s-%s", timestamp, suffix)
}

// allowedTransitions: tiến từng bước một, cancelled đi được từ mọi trạng thái
// chưa kết thúc. served và cancelled là trạng thái cuối.
var allowedTransitions = map[string][]string{
	constants.ORDER_STATUS_PENDING:   {constants.ORDER_STATUS_CONFIRMED, constants.ORDER_STATUS_CANCELLED},
	constants.ORDER_STATUS_CONFIRMED: {constants.ORDER_STATUS_PREPARING, constants.ORDER_STATUS_CANCELLED},
	constants.ORDER_STATUS_PREPARING: {constants.ORDER_STATUS_READY, constants.ORDER_STATUS_CANCELLED},
	constants.ORDER_STATUS_READY:     {constants.ORDER_STATUS_SERVED, constants.ORDER_STATUS_CANCELLED},
	constants.ORDER_STATUS_SERVED:    {},
	constants.ORDER_STATUS_CANCELLED: {},
}

func IsValidOrderStatus(status string) bool {
	_, ok := allowedTransitions[status]
	return ok
}

func CanTransition(from, to string) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// CanModifyItems: chỉ thêm/bớt món khi đơn còn ở pending hoặc confirmed
func CanModifyItems(status string) bool {
	return status == constants.ORDER_STATUS_PENDING || status == constants.ORDER_STATUS_CONFIRMED
}

// RecalculateTotals tính lại toàn bộ từ các dòng còn lại, không cộng dồn
// incremental để tránh lệch số.
func RecalculateTotals(order *model.Order, items []model.OrderItem, taxRate float64) {
	var subtotal float64
	for _, item := range items {
		subtotal += item.TotalPrice
	}
	order.Subtotal = utils.Round2(subtotal)
	order.TotalAmount = order.Subtotal
	order.TaxAmount = utils.Round2(subtotal * taxRate)
}
