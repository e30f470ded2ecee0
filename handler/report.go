package handler

import (
	"time"

	"restaurant_pos/constants"
	"restaurant_pos/database"
	"restaurant_pos/model"
	"restaurant_pos/utils"

	"github.com/gofiber/fiber/v2"
)

func reportRange(c *fiber.Ctx) (time.Time, time.Time) {
	now := time.Now()
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)

	var start time.Time
	switch c.Query("period", "daily") {
	case "weekly":
		start = end.AddDate(0, 0, -7)
	case "monthly":
		start = end.AddDate(0, -1, 0)
	default:
		start = end.AddDate(0, 0, -1)
	}

	if from := c.Query("date_from"); from != "" {
		if t, err := time.Parse("2006-01-02", from); err == nil {
			start = t
		}
	}
	if to := c.Query("date_to"); to != "" {
		if t, err := time.Parse("2006-01-02", to); err == nil {
			end = t.AddDate(0, 0, 1)
		}
	}
	return start, end
}

// GetSalesReport doanh số theo khoảng thời gian, gộp theo location
func GetSalesReport(c *fiber.Ctx) error {
	start, end := reportRange(c)

	type row struct {
		LocationID  *uint   `json:"locationId"`
		TotalSales  float64 `json:"totalSales"`
		TotalOrders int     `json:"totalOrders"`
	}
	var rows []row
	query := database.DB.Model(&model.Order{}).
		Select("location_id, COALESCE(SUM(total_amount), 0) as total_sales, COUNT(*) as total_orders").
		Where("created_at >= ? AND created_at < ? AND status <> ?", start, end, constants.ORDER_STATUS_CANCELLED).
		Group("location_id")
	if locationId := c.Query("location_id"); locationId != "" {
		query = query.Where("location_id = ?", locationId)
	}
	if err := query.Scan(&rows).Error; err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusInternalServerError, constants.CODE_PERSISTENCE_ERROR, constants.ERROR_INTERNAL_ERROR, err)
	}

	var totalSales float64
	var totalOrders int
	byLocation := make([]fiber.Map, 0, len(rows))
	for _, r := range rows {
		totalSales += r.TotalSales
		totalOrders += r.TotalOrders
		avg := 0.0
		if r.TotalOrders > 0 {
			avg = utils.Round2(r.TotalSales / float64(r.TotalOrders))
		}
		byLocation = append(byLocation, fiber.Map{
			"locationId":        r.LocationID,
			"totalSales":        utils.Round2(r.TotalSales),
			"totalOrders":       r.TotalOrders,
			"averageOrderValue": avg,
		})
	}

	avg := 0.0
	if totalOrders > 0 {
		avg = utils.Round2(totalSales / float64(totalOrders))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"dateFrom":          start,
		"dateTo":            end,
		"totalSales":        utils.Round2(totalSales),
		"totalOrders":       totalOrders,
		"averageOrderValue": avg,
		"byLocation":        byLocation,
	})
}

// GetDailySalesReports các dòng đã được job đêm tổng hợp sẵn
func GetDailySalesReports(c *fiber.Ctx) error {
	start, end := reportRange(c)
	var reports []model.SalesReport
	if err := database.DB.
		Where("date >= ? AND date < ?", start, end).
		Order("date desc").
		Find(&reports).Error; err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusInternalServerError, constants.CODE_PERSISTENCE_ERROR, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, reports)
}

// GetMenuPerformance món bán chạy trong khoảng thời gian
func GetMenuPerformance(c *fiber.Ctx) error {
	start, end := reportRange(c)

	type row struct {
		MenuItemID   uint    `json:"menuItemId"`
		Name         string  `json:"name"`
		QuantitySold int     `json:"quantitySold"`
		Revenue      float64 `json:"revenue"`
	}
	var rows []row
	err := database.DB.Model(&model.OrderItem{}).
		Select("order_items.menu_item_id, menu_items.name, SUM(order_items.quantity) as quantity_sold, COALESCE(SUM(order_items.total_price), 0) as revenue").
		Joins("JOIN menu_items ON menu_items.id = order_items.menu_item_id").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.created_at >= ? AND orders.created_at < ? AND orders.status <> ?", start, end, constants.ORDER_STATUS_CANCELLED).
		Group("order_items.menu_item_id, menu_items.name").
		Order("quantity_sold desc").
		Limit(50).
		Scan(&rows).Error
	if err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusInternalServerError, constants.CODE_PERSISTENCE_ERROR, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"dateFrom": start,
		"dateTo":   end,
		"items":    rows,
	})
}

// GetOrderHistory lịch sử đơn có phân trang cho màn hình quản lý
func GetOrderHistory(c *fiber.Ctx) error {
	start, end := reportRange(c)
	query := database.DB.Model(&model.Order{}).
		Where("created_at >= ? AND created_at < ?", start, end)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var totalCount int64
	query.Count(&totalCount)

	var pagination model.Pagination
	if err := c.QueryParser(&pagination); err == nil {
		query = utils.ApplyPagination(query, pagination.Limit, pagination.Page)
	}

	var orders []model.Order
	if err := query.Preload("Items").Preload("Items.MenuItem").Preload("Items.MenuItem.Category").
		Preload("Table").Preload("Waiter").Preload("Location").
		Order("created_at desc").Find(&orders).Error; err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusInternalServerError, constants.CODE_PERSISTENCE_ERROR, constants.ERROR_INTERNAL_ERROR, err)
	}

	rows := make([]fiber.Map, 0, len(orders))
	for i := range orders {
		rows = append(rows, orderResponse(&orders[i]))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       rows,
		Limit:      pagination.Limit,
		Page:       pagination.Page,
		TotalCount: totalCount,
	})
}
