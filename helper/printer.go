package helper

import (
	"fmt"
	"log"
	"net"
	"strings"
	"time"

	"restaurant_pos/constants"
	"restaurant_pos/model"
)

const printerTimeout = 5 * time.Second

var virtualAddresses = map[string]bool{
	"":        true,
	"console": true,
	"stdout":  true,
	"virtual": true,
}

// IsVirtualPrinter: địa chỉ sentinel → không gửi qua mạng, đẩy output lên
// kênh realtime để quan sát/test
func IsVirtualPrinter(p *model.PrinterConfig) bool {
	return virtualAddresses[strings.ToLower(strings.TrimSpace(p.IPAddress))]
}

// SendToPrinter gửi tài liệu đã format tới máy in nhiệt qua TCP.
// Timeout ngắn để máy in treo không kéo dài response.
func SendToPrinter(ip string, port int, content string) error {
	addr := fmt.Sprintf("%s:%d", ip, port)
	conn, err := net.DialTimeout("tcp", addr, printerTimeout)
	if err != nil {
		return err
	}
	defer conn.Close()

	conn.SetWriteDeadline(time.Now().Add(printerTimeout))
	if _, err := conn.Write([]byte(content)); err != nil {
		return err
	}
	return nil
}

// FilterItemsByDestination lọc dòng theo nơi in của danh mục món
func FilterItemsByDestination(items []model.OrderItem, destination string) []model.OrderItem {
	filtered := make([]model.OrderItem, 0, len(items))
	for _, item := range items {
		if item.MenuItem.Category.PrinterDestination == destination {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

func formatHeader(b *strings.Builder, title string, order *model.Order) {
	b.WriteString("\n" + strings.Repeat("=", 32) + "\n")
	b.WriteString(title + "\n")
	b.WriteString(fmt.Sprintf("Order: %s\n", order.OrderNumber))
	if order.Table != nil {
		b.WriteString(fmt.Sprintf("Table: %s\n", order.Table.TableNumber))
	} else {
		b.WriteString("TAKEAWAY ORDER\n")
		if order.CustomerName != nil && *order.CustomerName != "" {
			b.WriteString(fmt.Sprintf("Customer: %s\n", *order.CustomerName))
		}
	}
	b.WriteString(fmt.Sprintf("Waiter: %s\n", order.Waiter.FullName()))
}

// FormatStationOrder format phiếu bếp hoặc quầy bar, chỉ chứa món thuộc
// destination tương ứng
func FormatStationOrder(order *model.Order, destination string) string {
	var b strings.Builder
	title := "KITCHEN ORDER"
	if destination == constants.PRINTER_BAR {
		title = "BAR ORDER"
	}
	formatHeader(&b, title, order)
	b.WriteString(fmt.Sprintf("Time: %s\n", order.CreatedAt.Format("15:04:05")))
	b.WriteString(strings.Repeat("=", 32) + "\n\n")

	items := FilterItemsByDestination(order.Items, destination)
	for _, item := range items {
		b.WriteString(fmt.Sprintf("%dx %s\n", item.Quantity, item.MenuItem.Name))
		if item.SpecialInstructions != "" {
			b.WriteString(fmt.Sprintf("   Note: %s\n", item.SpecialInstructions))
		}
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat("=", 32) + "\n")
	b.WriteString(fmt.Sprintf("Total Items: %d\n", len(items)))
	b.WriteString(strings.Repeat("=", 32) + "\n\n\n")
	return b.String()
}

// FormatReceipt hóa đơn đầy đủ mọi dòng kèm tổng tiền
func FormatReceipt(order *model.Order) string {
	var b strings.Builder
	b.WriteString("\n" + strings.Repeat("=", 32) + "\n")
	b.WriteString("RESTAURANT RECEIPT\n")
	b.WriteString(strings.Repeat("=", 32) + "\n")
	b.WriteString(fmt.Sprintf("Order: %s\n", order.OrderNumber))
	if order.Table != nil {
		b.WriteString(fmt.Sprintf("Table: %s\n", order.Table.TableNumber))
	} else {
		b.WriteString("TAKEAWAY ORDER\n")
		if order.CustomerName != nil && *order.CustomerName != "" {
			b.WriteString(fmt.Sprintf("Customer: %s\n", *order.CustomerName))
		}
	}
	b.WriteString(fmt.Sprintf("Waiter: %s\n", order.Waiter.FullName()))
	b.WriteString(fmt.Sprintf("Date: %s\n", order.CreatedAt.Format("2006-01-02 15:04:05")))
	b.WriteString(strings.Repeat("=", 32) + "\n\n")

	for _, item := range order.Items {
		b.WriteString(fmt.Sprintf("%dx %s\n", item.Quantity, item.MenuItem.Name))
		b.WriteString(fmt.Sprintf("   %.2f each\n", item.UnitPrice))
		b.WriteString(fmt.Sprintf("   Subtotal: %.2f\n", item.TotalPrice))
		if item.SpecialInstructions != "" {
			b.WriteString(fmt.Sprintf("   Note: %s\n", item.SpecialInstructions))
		}
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat("-", 32) + "\n")
	b.WriteString(fmt.Sprintf("Subtotal: %.2f\n", order.Subtotal))
	b.WriteString(fmt.Sprintf("Tax: %.2f\n", order.TaxAmount))
	if order.DiscountAmount > 0 {
		b.WriteString(fmt.Sprintf("Discount: -%.2f\n", order.DiscountAmount))
	}
	b.WriteString(fmt.Sprintf("TOTAL: %.2f\n", order.FinalTotal()))
	b.WriteString(strings.Repeat("=", 32) + "\n")
	b.WriteString("Thank you for dining with us!\n")
	b.WriteString(strings.Repeat("=", 32) + "\n\n\n")
	return b.String()
}

// FormatForPrinter chọn format theo loại máy in
func FormatForPrinter(order *model.Order, printerType string) (string, bool) {
	switch printerType {
	case constants.PRINTER_KITCHEN, constants.PRINTER_BAR:
		return FormatStationOrder(order, printerType), true
	case constants.PRINTER_RECEIPT:
		return FormatReceipt(order), true
	}
	return "", false
}

// dispatchToPrinter gửi một tài liệu đã format tới một máy in cụ thể.
// Máy in ảo không đi qua mạng, output đẩy lên kênh realtime.
func dispatchToPrinter(printer *model.PrinterConfig, order *model.Order, content string) model.PrintResult {
	result := model.PrintResult{
		PrinterName: printer.Name,
		PrinterType: printer.PrinterType,
	}

	if IsVirtualPrinter(printer) {
		log.Printf("=== VIRTUAL PRINTER %s ===\n%s", printer.Name, content)
		Broadcast(constants.EVENT_PRINT_OUTPUT, map[string]any{
			"printerName": printer.Name,
			"printerType": printer.PrinterType,
			"orderNumber": order.OrderNumber,
			"content":     content,
		}, constants.ROOM_RESTAURANT)
		result.Success = true
		result.Message = "Printed to virtual printer"
		return result
	}

	if err := SendToPrinter(printer.IPAddress, printer.Port, content); err != nil {
		result.Success = false
		result.Message = err.Error()
		return result
	}
	result.Success = true
	result.Message = "Printed successfully"
	return result
}

// DispatchToPrinters gửi đơn tới danh sách máy in. Mỗi máy độc lập, máy
// hỏng không chặn các máy còn lại, kết quả trả về theo từng máy.
func DispatchToPrinters(order *model.Order, printers []model.PrinterConfig) []model.PrintResult {
	results := make([]model.PrintResult, 0, len(printers))
	for i := range printers {
		printer := &printers[i]

		// Phiếu bếp/bar không có món thuộc khu đó thì bỏ qua máy in đó
		if printer.PrinterType == constants.PRINTER_KITCHEN || printer.PrinterType == constants.PRINTER_BAR {
			if len(FilterItemsByDestination(order.Items, printer.PrinterType)) == 0 {
				continue
			}
		}

		content, ok := FormatForPrinter(order, printer.PrinterType)
		if !ok {
			continue
		}

		results = append(results, dispatchToPrinter(printer, order, content))
	}
	return results
}
