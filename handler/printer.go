package handler

import (
	"fmt"
	"log"

	"restaurant_pos/constants"
	"restaurant_pos/database"
	"restaurant_pos/helper"
	"restaurant_pos/model"
	"restaurant_pos/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetPrinters(c *fiber.Ctx) error {
	var printers []model.PrinterConfig
	query := database.DB
	if printerType := c.Query("type"); printerType != "" {
		query = query.Where("printer_type = ?", printerType)
	}
	if err := query.Order("id asc").Find(&printers).Error; err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusInternalServerError, constants.CODE_PERSISTENCE_ERROR, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, printers)
}

func CreatePrinter(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreatePrinter").(model.CreatePrinterInput)
	if !ok {
		return utils.ErrorResponseCode(c, fiber.StatusBadRequest, constants.CODE_VALIDATION_ERROR, "Invalid input", nil)
	}

	printer := model.PrinterConfig{
		Name:        input.Name,
		PrinterType: input.PrinterType,
		IPAddress:   input.IPAddress,
		Port:        input.Port,
		Active:      true,
		LocationID:  input.LocationID,
	}
	if printer.Port == 0 {
		printer.Port = constants.DEFAULT_PRINTER_PORT
	}

	if err := database.DB.Create(&printer).Error; err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusInternalServerError, constants.CODE_PERSISTENCE_ERROR, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, printer)
}

func UpdatePrinter(c *fiber.Ctx) error {
	input, ok := c.Locals("inputUpdatePrinter").(model.UpdatePrinterInput)
	if !ok {
		return utils.ErrorResponseCode(c, fiber.StatusBadRequest, constants.CODE_VALIDATION_ERROR, "Invalid input", nil)
	}

	var printer model.PrinterConfig
	if err := database.DB.First(&printer, c.Params("printerId")).Error; err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusNotFound, constants.CODE_NOT_FOUND, constants.PRINTER_NOT_FOUND, err)
	}

	// copier bỏ qua field nil, chỉ ghi đè phần client gửi lên
	if err := copier.CopyWithOption(&printer, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusInternalServerError, constants.CODE_PERSISTENCE_ERROR, constants.ERROR_INTERNAL_ERROR, err)
	}
	if input.Active != nil {
		printer.Active = *input.Active
	}

	if err := database.DB.Save(&printer).Error; err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusInternalServerError, constants.CODE_PERSISTENCE_ERROR, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, printer)
}

func DeletePrinter(c *fiber.Ctx) error {
	_, _, isAdmin, isManager := helper.GetInfoUserFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponseCode(c, fiber.StatusForbidden, constants.CODE_PERMISSION_ERROR, constants.NOT_ADMIN_OR_MANAGER, nil)
	}

	var printer model.PrinterConfig
	if err := database.DB.First(&printer, c.Params("printerId")).Error; err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusNotFound, constants.CODE_NOT_FOUND, constants.PRINTER_NOT_FOUND, err)
	}

	if err := database.DB.Delete(&printer).Error; err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusInternalServerError, constants.CODE_PERSISTENCE_ERROR, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": printer.ID})
}

// DispatchPrintJobs gửi đơn tới mọi máy in đang bật khớp loại yêu cầu
func DispatchPrintJobs(order *model.Order, printerType string) []model.PrintResult {
	query := database.DB.Where("active = ?", true)
	if printerType != "all" {
		query = query.Where("printer_type = ?", printerType)
	}

	var printers []model.PrinterConfig
	if err := query.Find(&printers).Error; err != nil {
		log.Printf("Printer lookup failed: %v", err)
		return nil
	}

	return helper.DispatchToPrinters(order, printers)
}

// PrintOrder in lại đơn theo yêu cầu. Luôn trả 200 kèm kết quả từng máy,
// máy in hỏng là chuyện vận hành chứ không phải lỗi request.
func PrintOrder(c *fiber.Ctx) error {
	input, ok := c.Locals("inputPrintOrder").(model.PrintOrderInput)
	if !ok {
		input = model.PrintOrderInput{PrinterType: "all"}
	}

	var order model.Order
	if err := database.DB.
		Preload("Items").
		Preload("Items.MenuItem").
		Preload("Items.MenuItem.Category").
		Preload("Table").
		Preload("Waiter").
		First(&order, c.Params("orderId")).Error; err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusNotFound, constants.CODE_NOT_FOUND, constants.ORDER_NOT_FOUND, err)
	}

	results := DispatchPrintJobs(&order, input.PrinterType)

	successCount := 0
	for _, r := range results {
		if r.Success {
			successCount++
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"orderNumber": order.OrderNumber,
		"message":     fmt.Sprintf("%d/%d printers successful", successCount, len(results)),
		"results":     results,
	})
}

// TestPrinter gửi một phiếu test ngắn để kiểm tra kết nối
func TestPrinter(c *fiber.Ctx) error {
	_, _, isAdmin, isManager := helper.GetInfoUserFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponseCode(c, fiber.StatusForbidden, constants.CODE_PERMISSION_ERROR, constants.NOT_ADMIN_OR_MANAGER, nil)
	}

	var printer model.PrinterConfig
	if err := database.DB.First(&printer, c.Params("printerId")).Error; err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusNotFound, constants.CODE_NOT_FOUND, constants.PRINTER_NOT_FOUND, err)
	}

	content := fmt.Sprintf("\n================================\nTEST PRINT\nPrinter: %s\nType: %s\n================================\n\n\n",
		printer.Name, printer.PrinterType)

	if helper.IsVirtualPrinter(&printer) {
		log.Printf("=== VIRTUAL PRINTER %s ===\n%s", printer.Name, content)
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"success": true, "message": "Printed to virtual printer"})
	}

	if err := helper.SendToPrinter(printer.IPAddress, printer.Port, content); err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusBadGateway, constants.CODE_PRINT_DELIVERY, "Printer unreachable", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"success": true, "message": "Printed successfully"})
}
