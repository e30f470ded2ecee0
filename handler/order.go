package handler

import (
	"errors"
	"fmt"
	"log"
	"time"

	"restaurant_pos/constants"
	"restaurant_pos/database"
	"restaurant_pos/helper"
	"restaurant_pos/model"
	"restaurant_pos/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetOrders(c *fiber.Ctx) error {
	claim, user, isAdmin, isManager := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", nil)
	}

	query := database.DB.
		Preload("Items").
		Preload("Items.MenuItem").
		Preload("Items.MenuItem.Category").
		Preload("Table").
		Preload("Waiter").
		Preload("Location")

	// Waiter chỉ xem đơn của mình
	if !isAdmin && !isManager {
		query = query.Where("user_id = ?", claim.UserId)
	}

	if tableId := c.Query("table_id"); tableId != "" {
		query = query.Where("table_id = ?", tableId)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if orderType := c.Query("order_type"); orderType != "" {
		query = query.Where("order_type = ?", orderType)
	}
	switch c.Query("takeaway") {
	case "true":
		query = query.Where("table_id IS NULL")
	case "false":
		query = query.Where("table_id IS NOT NULL")
	}
	if dateFrom := c.Query("date_from"); dateFrom != "" {
		if t, err := time.Parse(time.RFC3339, dateFrom); err == nil {
			query = query.Where("created_at >= ?", t)
		}
	}
	if dateTo := c.Query("date_to"); dateTo != "" {
		if t, err := time.Parse(time.RFC3339, dateTo); err == nil {
			query = query.Where("created_at <= ?", t)
		}
	}

	var orders []model.Order
	if err := query.Order("created_at desc").Find(&orders).Error; err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusInternalServerError, constants.CODE_PERSISTENCE_ERROR, constants.ERROR_INTERNAL_ERROR, err)
	}

	response := make([]fiber.Map, 0, len(orders))
	for i := range orders {
		response = append(response, orderResponse(&orders[i]))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetOrderById(c *fiber.Ctx) error {
	claim, user, isAdmin, isManager := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", nil)
	}

	var order model.Order
	if err := database.DB.
		Preload("Items").
		Preload("Items.MenuItem").
		Preload("Items.MenuItem.Category").
		Preload("Table").
		Preload("Waiter").
		Preload("Location").
		First(&order, c.Params("orderId")).Error; err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusNotFound, constants.CODE_NOT_FOUND, constants.ORDER_NOT_FOUND, err)
	}

	if !isAdmin && !isManager && order.UserID != claim.UserId {
		return utils.ErrorResponseCode(c, fiber.StatusForbidden, constants.CODE_PERMISSION_ERROR, constants.NOT_ADMIN_OR_MANAGER, nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, orderResponse(&order))
}

func CreateOrder(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateOrder").(model.CreateOrderInput)
	if !ok {
		return utils.ErrorResponseCode(c, fiber.StatusBadRequest, constants.CODE_VALIDATION_ERROR, "Invalid input", nil)
	}

	claim, user, _, _ := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", nil)
	}

	db := database.DB
	orderType := input.OrderType

	// Resolve location: truyền tường minh thì phải tồn tại, không thì lấy
	// location của nhân viên (dine-in) hoặc location mặc định
	var location model.Location
	if input.LocationID != nil {
		if err := db.First(&location, *input.LocationID).Error; err != nil {
			return utils.ErrorResponseCode(c, fiber.StatusBadRequest, constants.CODE_VALIDATION_ERROR, constants.LOCATION_NOT_FOUND, err)
		}
	} else if orderType == constants.ORDER_TYPE_DINE_IN && user.LocationID != nil {
		if err := db.First(&location, *user.LocationID).Error; err != nil {
			return utils.ErrorResponseCode(c, fiber.StatusBadRequest, constants.CODE_VALIDATION_ERROR, constants.LOCATION_NOT_FOUND, err)
		}
	} else {
		if err := db.First(&location, helper.DefaultLocationID()).Error; err != nil {
			return utils.ErrorResponseCode(c, fiber.StatusBadRequest, constants.CODE_VALIDATION_ERROR, constants.LOCATION_NOT_FOUND, err)
		}
	}

	tableId := input.TableID
	var table *model.Table

	if orderType == constants.ORDER_TYPE_DINE_IN {
		if tableId == nil {
			return utils.ErrorResponseCode(c, fiber.StatusBadRequest, constants.CODE_VALIDATION_ERROR, constants.TABLE_REQUIRED_DINE_IN, nil)
		}
		table = &model.Table{}
		if err := db.First(table, *tableId).Error; err != nil {
			return utils.ErrorResponseCode(c, fiber.StatusNotFound, constants.CODE_NOT_FOUND, constants.TABLE_NOT_FOUND, err)
		}
	} else {
		// Takeaway/delivery không gắn bàn
		tableId = nil
	}

	var customerName *string
	var customerPhone *string
	var estimatedReadyTime *time.Time
	if orderType == constants.ORDER_TYPE_TAKEAWAY || orderType == constants.ORDER_TYPE_DELIVERY {
		name := input.CustomerName
		if name == "" {
			name = constants.DEFAULT_CUSTOMER_NAME
		}
		customerName = &name
		customerPhone = utils.StringPtr(input.CustomerPhone)
		ready := time.Now().Add(constants.TAKEAWAY_READY_MINUTES * time.Minute)
		estimatedReadyTime = &ready
	}

	// Dựng toàn bộ dòng và kiểm tra trước khi mở transaction: lỗi ở bất kỳ
	// món nào thì không ghi gì xuống DB
	taxRate := helper.TaxRate()
	items := make([]model.OrderItem, 0, len(input.Items))
	var subtotal float64

	for _, itemInput := range input.Items {
		var menuItem model.MenuItem
		if err := db.Preload("Category").First(&menuItem, itemInput.MenuItemID).Error; err != nil {
			return utils.ErrorResponseCode(c, fiber.StatusNotFound, constants.CODE_NOT_FOUND,
				fmt.Sprintf("Menu item %d not found", itemInput.MenuItemID), err)
		}

		if !helper.CheckItemAvailability(&menuItem, orderType) {
			kind := "dine-in"
			if orderType == constants.ORDER_TYPE_TAKEAWAY {
				kind = "takeaway"
			}
			return utils.ErrorResponseCode(c, fiber.StatusBadRequest, constants.CODE_AVAILABILITY_ERROR,
				fmt.Sprintf("Menu item %s is not available for %s", menuItem.Name, kind), nil)
		}

		unitPrice, err := helper.ResolveUnitPrice(&menuItem, orderType, location.Name, itemInput.UnitPrice)
		if err != nil {
			return utils.ErrorResponseCode(c, fiber.StatusBadRequest, constants.CODE_VALIDATION_ERROR,
				fmt.Sprintf("Invalid price for menu item %s", menuItem.Name), err)
		}

		totalPrice := utils.Round2(unitPrice * float64(itemInput.Quantity))
		subtotal += totalPrice

		items = append(items, model.OrderItem{
			MenuItemID:          menuItem.ID,
			Quantity:            itemInput.Quantity,
			UnitPrice:           unitPrice,
			TotalPrice:          totalPrice,
			SpecialInstructions: itemInput.SpecialInstructions,
			Status:              constants.ORDER_STATUS_PENDING,
		})
	}

	subtotal = utils.Round2(subtotal)
	order := model.Order{
		OrderType:          orderType,
		Status:             constants.ORDER_STATUS_PENDING,
		TableID:            tableId,
		UserID:             claim.UserId,
		LocationID:         location.ID,
		Subtotal:           subtotal,
		TaxAmount:          utils.Round2(subtotal * taxRate),
		DiscountAmount:     input.DiscountAmount,
		TotalAmount:        subtotal,
		Notes:              input.Notes,
		CustomerName:       customerName,
		CustomerPhone:      customerPhone,
		EstimatedReadyTime: estimatedReadyTime,
	}

	// Một transaction cho cả đơn + các dòng. Trùng order number thì sinh mã
	// mới và chạy lại từ đầu, unique index là chốt chặn cuối.
	var txErr error
	for attempt := 0; attempt < constants.ORDER_NUMBER_MAX_ATTEMPTS; attempt++ {
		order.ID = 0
		order.OrderNumber = helper.GenerateOrderNumber()

		txErr = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Omit("Items", "Table", "Waiter", "Location").Create(&order).Error; err != nil {
				return err
			}
			for i := range items {
				items[i].ID = 0
				items[i].OrderID = order.ID
			}
			if err := tx.Omit("MenuItem").Create(&items).Error; err != nil {
				return err
			}
			return nil
		})

		if txErr == nil || !errors.Is(txErr, gorm.ErrDuplicatedKey) {
			break
		}
		log.Printf("Order number collision on %s, retrying", order.OrderNumber)
	}
	if txErr != nil {
		return utils.ErrorResponseCode(c, fiber.StatusInternalServerError, constants.CODE_PERSISTENCE_ERROR, "Order creation failed", txErr)
	}

	if table != nil {
		database.DB.Model(table).Update("status", constants.TABLE_OCCUPIED)
	}

	// Sau commit: in phiếu và phát realtime, best-effort, không ảnh hưởng
	// đơn đã ghi
	var full model.Order
	if err := db.
		Preload("Items").
		Preload("Items.MenuItem").
		Preload("Items.MenuItem.Category").
		Preload("Table").
		Preload("Waiter").
		Preload("Location").
		First(&full, order.ID).Error; err != nil {
		log.Printf("Order %s reload for dispatch failed: %v", order.OrderNumber, err)
	} else {
		go func() {
			results := DispatchPrintJobs(&full, "all")
			for _, r := range results {
				if !r.Success {
					log.Printf("Print to %s failed: %s", r.PrinterName, r.Message)
				}
			}
		}()
		go broadcastNewOrder(&full)
	}

	tableNumber := ""
	if table != nil {
		tableNumber = table.TableNumber
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"id":          order.ID,
		"orderNumber": order.OrderNumber,
		"tableNumber": tableNumber,
		"subtotal":    order.Subtotal,
		"taxAmount":   order.TaxAmount,
		"totalAmount": order.TotalAmount,
		"finalTotal":  order.FinalTotal(),
		"status":      order.Status,
	})
}

func broadcastNewOrder(order *model.Order) {
	var tableNumber *string
	if order.Table != nil {
		tableNumber = &order.Table.TableNumber
	}
	helper.Broadcast(constants.EVENT_NEW_ORDER, fiber.Map{
		"orderId":      order.ID,
		"orderNumber":  order.OrderNumber,
		"tableNumber":  tableNumber,
		"customerName": order.CustomerName,
		"waiterName":   order.Waiter.FullName(),
		"totalAmount":  order.TotalAmount,
	}, constants.ROOM_RESTAURANT)
}

func UpdateOrderStatus(c *fiber.Ctx) error {
	input, ok := c.Locals("inputUpdateOrderStatus").(model.UpdateOrderStatusInput)
	if !ok {
		return utils.ErrorResponseCode(c, fiber.StatusBadRequest, constants.CODE_VALIDATION_ERROR, "Invalid input", nil)
	}

	claim, user, isAdmin, isManager := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", nil)
	}

	db := database.DB
	var order model.Order
	if err := db.Preload("Table").First(&order, c.Params("orderId")).Error; err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusNotFound, constants.CODE_NOT_FOUND, constants.ORDER_NOT_FOUND, err)
	}

	if !isAdmin && !isManager && order.UserID != claim.UserId {
		return utils.ErrorResponseCode(c, fiber.StatusForbidden, constants.CODE_PERMISSION_ERROR, constants.NOT_ADMIN_OR_MANAGER, nil)
	}

	if !helper.IsValidOrderStatus(input.Status) {
		return utils.ErrorResponseCode(c, fiber.StatusBadRequest, constants.CODE_VALIDATION_ERROR, constants.INVALID_ORDER_STATUS, nil)
	}

	oldStatus := order.Status
	if !helper.CanTransition(oldStatus, input.Status) {
		return utils.ErrorResponseCode(c, fiber.StatusBadRequest, constants.CODE_INVALID_STATE, constants.INVALID_STATUS_TRANSITION,
			fmt.Errorf("cannot transition from %s to %s", oldStatus, input.Status))
	}

	order.Status = input.Status
	if err := db.Omit("Items", "Table", "Waiter", "Location").Save(&order).Error; err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusInternalServerError, constants.CODE_PERSISTENCE_ERROR, constants.ERROR_INTERNAL_ERROR, err)
	}

	// Đơn kết thúc thì trả bàn nếu bàn không còn đơn nào đang mở
	if order.IsTerminal() && order.TableID != nil {
		var open int64
		db.Model(&model.Order{}).
			Where("table_id = ? AND status NOT IN ?", *order.TableID,
				[]string{constants.ORDER_STATUS_SERVED, constants.ORDER_STATUS_CANCELLED}).
			Count(&open)
		if open == 0 {
			db.Model(&model.Table{}).Where("id = ?", *order.TableID).Update("status", constants.TABLE_AVAILABLE)
		}
	}

	var tableNumber *string
	if order.Table != nil {
		tableNumber = &order.Table.TableNumber
	}
	go helper.Broadcast(constants.EVENT_ORDER_STATUS_CHANGED, fiber.Map{
		"orderId":     order.ID,
		"orderNumber": order.OrderNumber,
		"oldStatus":   oldStatus,
		"newStatus":   order.Status,
		"tableNumber": tableNumber,
	}, constants.ROOM_RESTAURANT)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"id":          order.ID,
		"orderNumber": order.OrderNumber,
		"status":      order.Status,
		"updatedAt":   order.UpdatedAt,
	})
}

func AddOrderItem(c *fiber.Ctx) error {
	input, ok := c.Locals("inputAddOrderItem").(model.OrderItemInput)
	if !ok {
		return utils.ErrorResponseCode(c, fiber.StatusBadRequest, constants.CODE_VALIDATION_ERROR, "Invalid input", nil)
	}

	claim, user, isAdmin, isManager := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", nil)
	}

	db := database.DB
	var order model.Order
	if err := db.Preload("Location").First(&order, c.Params("orderId")).Error; err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusNotFound, constants.CODE_NOT_FOUND, constants.ORDER_NOT_FOUND, err)
	}

	if !isAdmin && !isManager && order.UserID != claim.UserId {
		return utils.ErrorResponseCode(c, fiber.StatusForbidden, constants.CODE_PERMISSION_ERROR, constants.NOT_ADMIN_OR_MANAGER, nil)
	}

	if !helper.CanModifyItems(order.Status) {
		return utils.ErrorResponseCode(c, fiber.StatusBadRequest, constants.CODE_INVALID_STATE, constants.ORDER_NOT_EDITABLE, nil)
	}

	var menuItem model.MenuItem
	if err := db.Preload("Category").First(&menuItem, input.MenuItemID).Error; err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusNotFound, constants.CODE_NOT_FOUND, constants.MENU_ITEM_NOT_FOUND, err)
	}

	if !helper.CheckItemAvailability(&menuItem, order.OrderType) {
		return utils.ErrorResponseCode(c, fiber.StatusBadRequest, constants.CODE_AVAILABILITY_ERROR,
			fmt.Sprintf("Menu item %s is not available", menuItem.Name), nil)
	}

	// Giá dòng mới đi qua resolver với đúng ngữ cảnh của đơn, không lấy giá
	// gốc mặc định
	unitPrice, err := helper.ResolveUnitPrice(&menuItem, order.OrderType, order.Location.Name, input.UnitPrice)
	if err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusBadRequest, constants.CODE_VALIDATION_ERROR, "Invalid price", err)
	}

	orderItem := model.OrderItem{
		OrderID:             order.ID,
		MenuItemID:          menuItem.ID,
		Quantity:            input.Quantity,
		UnitPrice:           unitPrice,
		TotalPrice:          utils.Round2(unitPrice * float64(input.Quantity)),
		SpecialInstructions: input.SpecialInstructions,
		Status:              constants.ORDER_STATUS_PENDING,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("MenuItem").Create(&orderItem).Error; err != nil {
			return err
		}
		var items []model.OrderItem
		if err := tx.Where("order_id = ?", order.ID).Find(&items).Error; err != nil {
			return err
		}
		helper.RecalculateTotals(&order, items, helper.TaxRate())
		return tx.Omit("Items", "Table", "Waiter", "Location").Save(&order).Error
	})
	if err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusInternalServerError, constants.CODE_PERSISTENCE_ERROR, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"orderItem": fiber.Map{
			"id":           orderItem.ID,
			"menuItemName": menuItem.Name,
			"quantity":     orderItem.Quantity,
			"unitPrice":    orderItem.UnitPrice,
			"totalPrice":   orderItem.TotalPrice,
		},
		"orderTotal": order.TotalAmount,
	})
}

func RemoveOrderItem(c *fiber.Ctx) error {
	claim, user, isAdmin, isManager := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", nil)
	}

	db := database.DB
	var order model.Order
	if err := db.First(&order, c.Params("orderId")).Error; err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusNotFound, constants.CODE_NOT_FOUND, constants.ORDER_NOT_FOUND, err)
	}

	if !isAdmin && !isManager && order.UserID != claim.UserId {
		return utils.ErrorResponseCode(c, fiber.StatusForbidden, constants.CODE_PERMISSION_ERROR, constants.NOT_ADMIN_OR_MANAGER, nil)
	}

	if !helper.CanModifyItems(order.Status) {
		return utils.ErrorResponseCode(c, fiber.StatusBadRequest, constants.CODE_INVALID_STATE, constants.ORDER_NOT_EDITABLE, nil)
	}

	var orderItem model.OrderItem
	if err := db.Where("id = ? AND order_id = ?", c.Params("itemId"), order.ID).First(&orderItem).Error; err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusNotFound, constants.CODE_NOT_FOUND, "Order item not found", err)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&orderItem).Error; err != nil {
			return err
		}
		var items []model.OrderItem
		if err := tx.Where("order_id = ?", order.ID).Find(&items).Error; err != nil {
			return err
		}
		helper.RecalculateTotals(&order, items, helper.TaxRate())
		return tx.Omit("Items", "Table", "Waiter", "Location").Save(&order).Error
	})
	if err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusInternalServerError, constants.CODE_PERSISTENCE_ERROR, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"orderTotal": order.TotalAmount,
	})
}

func orderResponse(order *model.Order) fiber.Map {
	items := make([]fiber.Map, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, fiber.Map{
			"id": item.ID,
			"menuItem": fiber.Map{
				"id":                 item.MenuItem.ID,
				"name":               item.MenuItem.Name,
				"category":           item.MenuItem.Category.Name,
				"printerDestination": item.MenuItem.Category.PrinterDestination,
			},
			"quantity":            item.Quantity,
			"unitPrice":           item.UnitPrice,
			"totalPrice":          item.TotalPrice,
			"specialInstructions": item.SpecialInstructions,
			"status":              item.Status,
		})
	}

	data := fiber.Map{
		"id":          order.ID,
		"orderNumber": order.OrderNumber,
		"orderType":   order.OrderType,
		"status":      order.Status,
		"waiter": fiber.Map{
			"id":   order.Waiter.ID,
			"name": order.Waiter.FullName(),
		},
		"locationId":     order.LocationID,
		"subtotal":       order.Subtotal,
		"taxAmount":      order.TaxAmount,
		"discountAmount": order.DiscountAmount,
		"totalAmount":    order.TotalAmount,
		"finalTotal":     order.FinalTotal(),
		"notes":          order.Notes,
		"items":          items,
		"createdAt":      order.CreatedAt,
		"updatedAt":      order.UpdatedAt,
	}

	if order.Table != nil {
		data["table"] = fiber.Map{
			"id":          order.Table.ID,
			"tableNumber": order.Table.TableNumber,
		}
	} else {
		data["table"] = nil
	}

	if order.OrderType == constants.ORDER_TYPE_TAKEAWAY || order.OrderType == constants.ORDER_TYPE_DELIVERY {
		data["customerName"] = order.CustomerName
		data["customerPhone"] = order.CustomerPhone
		data["estimatedReadyTime"] = order.EstimatedReadyTime
	}

	return data
}
