package helper

import (
	"io"
	"net"
	"strconv"
	"strings"
	"testing"
	"time"

	"restaurant_pos/constants"
	"restaurant_pos/model"
	"restaurant_pos/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrder() *model.Order {
	tableNumber := "12"
	order := &model.Order{
		OrderNumber: "ORD-20250101120000-AB12",
		Table:       &model.Table{TableNumber: tableNumber},
		Waiter:      model.User{FirstName: "Linh", LastName: "Tran"},
		Subtotal:    15.00,
		TaxAmount:   1.50,
		TotalAmount: 15.00,
		Items: []model.OrderItem{
			{
				Quantity:   2,
				UnitPrice:  5.00,
				TotalPrice: 10.00,
				MenuItem: model.MenuItem{
					Name:     "Pad Thai",
					Category: model.Category{Name: "Mains", PrinterDestination: constants.PRINTER_KITCHEN},
				},
				SpecialInstructions: "no peanuts",
			},
			{
				Quantity:   1,
				UnitPrice:  5.00,
				TotalPrice: 5.00,
				MenuItem: model.MenuItem{
					Name:     "Mojito",
					Category: model.Category{Name: "Cocktails", PrinterDestination: constants.PRINTER_BAR},
				},
			},
		},
	}
	order.CreatedAt = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	return order
}

func TestFilterItemsByDestination(t *testing.T) {
	order := sampleOrder()

	kitchen := FilterItemsByDestination(order.Items, constants.PRINTER_KITCHEN)
	require.Len(t, kitchen, 1)
	assert.Equal(t, "Pad Thai", kitchen[0].MenuItem.Name)

	bar := FilterItemsByDestination(order.Items, constants.PRINTER_BAR)
	require.Len(t, bar, 1)
	assert.Equal(t, "Mojito", bar[0].MenuItem.Name)

	assert.Empty(t, FilterItemsByDestination(order.Items, "none"))
}

func TestFormatStationOrder(t *testing.T) {
	order := sampleOrder()

	kitchen := FormatStationOrder(order, constants.PRINTER_KITCHEN)
	assert.Contains(t, kitchen, "KITCHEN ORDER")
	assert.Contains(t, kitchen, "Order: ORD-20250101120000-AB12")
	assert.Contains(t, kitchen, "Table: 12")
	assert.Contains(t, kitchen, "2x Pad Thai")
	assert.Contains(t, kitchen, "Note: no peanuts")
	assert.Contains(t, kitchen, "Total Items: 1")
	assert.NotContains(t, kitchen, "Mojito")

	bar := FormatStationOrder(order, constants.PRINTER_BAR)
	assert.Contains(t, bar, "BAR ORDER")
	assert.Contains(t, bar, "1x Mojito")
	assert.NotContains(t, bar, "Pad Thai")
}

func TestFormatStationOrderTakeaway(t *testing.T) {
	order := sampleOrder()
	order.Table = nil
	order.CustomerName = utils.Ptr("Anna")

	doc := FormatStationOrder(order, constants.PRINTER_KITCHEN)
	assert.Contains(t, doc, "TAKEAWAY ORDER")
	assert.Contains(t, doc, "Customer: Anna")
	assert.NotContains(t, doc, "Table:")
}

func TestFormatReceipt(t *testing.T) {
	order := sampleOrder()
	order.DiscountAmount = 2.00

	receipt := FormatReceipt(order)
	assert.Contains(t, receipt, "RESTAURANT RECEIPT")
	assert.Contains(t, receipt, "2x Pad Thai")
	assert.Contains(t, receipt, "1x Mojito")
	assert.Contains(t, receipt, "Subtotal: 15.00")
	assert.Contains(t, receipt, "Tax: 1.50")
	assert.Contains(t, receipt, "Discount: -2.00")
	assert.Contains(t, receipt, "TOTAL: 14.50")

	// Không giảm giá thì không in dòng giảm giá
	order.DiscountAmount = 0
	receipt = FormatReceipt(order)
	assert.NotContains(t, receipt, "Discount")
	assert.Contains(t, receipt, "TOTAL: 16.50")
}

func TestFormatForPrinter(t *testing.T) {
	order := sampleOrder()

	_, ok := FormatForPrinter(order, constants.PRINTER_KITCHEN)
	assert.True(t, ok)
	_, ok = FormatForPrinter(order, constants.PRINTER_RECEIPT)
	assert.True(t, ok)
	_, ok = FormatForPrinter(order, "label")
	assert.False(t, ok)
}

func TestIsVirtualPrinter(t *testing.T) {
	for _, addr := range []string{"", "console", "stdout", "virtual", " Console "} {
		assert.True(t, IsVirtualPrinter(&model.PrinterConfig{IPAddress: addr}), "addr %q", addr)
	}
	assert.False(t, IsVirtualPrinter(&model.PrinterConfig{IPAddress: "192.168.1.50"}))
}

func TestSendToPrinter(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()

	received := make(chan string, 1)
	go func() {
		conn, err := listener.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		data, _ := io.ReadAll(conn)
		received <- string(data)
	}()

	host, portStr, err := net.SplitHostPort(listener.Addr().String())
	require.NoError(t, err)
	port, _ := strconv.Atoi(portStr)

	require.NoError(t, SendToPrinter(host, port, "hello printer"))

	select {
	case data := <-received:
		assert.Equal(t, "hello printer", data)
	case <-time.After(2 * time.Second):
		t.Fatal("printer listener did not receive data")
	}
}

func TestSendToPrinterUnreachable(t *testing.T) {
	// Chiếm một port rồi đóng ngay để chắc chắn không ai lắng nghe
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	listener.Close()

	host, portStr, _ := net.SplitHostPort(addr)
	port, _ := strconv.Atoi(portStr)

	err = SendToPrinter(host, port, "hello")
	assert.Error(t, err)
}

// startPrinterListener mở một listener TCP giả làm máy in, nhận và bỏ dữ liệu
func startPrinterListener(t *testing.T) (string, int) {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { listener.Close() })

	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				return
			}
			go func(c net.Conn) {
				defer c.Close()
				io.Copy(io.Discard, c)
			}(conn)
		}
	}()

	host, portStr, err := net.SplitHostPort(listener.Addr().String())
	require.NoError(t, err)
	port, _ := strconv.Atoi(portStr)
	return host, port
}

// closedPort trả về một port chắc chắn không ai lắng nghe
func closedPort(t *testing.T) (string, int) {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	host, portStr, _ := net.SplitHostPort(listener.Addr().String())
	listener.Close()
	port, _ := strconv.Atoi(portStr)
	return host, port
}

func TestDispatchToPrintersPartialFailure(t *testing.T) {
	order := sampleOrder()

	kitchenHost, kitchenPort := startPrinterListener(t)
	barHost, barPort := startPrinterListener(t)
	deadHost, deadPort := closedPort(t)

	printers := []model.PrinterConfig{
		{Name: "Kitchen", PrinterType: constants.PRINTER_KITCHEN, IPAddress: kitchenHost, Port: kitchenPort},
		{Name: "Bar", PrinterType: constants.PRINTER_BAR, IPAddress: barHost, Port: barPort},
		{Name: "Receipt", PrinterType: constants.PRINTER_RECEIPT, IPAddress: deadHost, Port: deadPort},
	}

	results := DispatchToPrinters(order, printers)
	require.Len(t, results, 3)

	byName := make(map[string]model.PrintResult, len(results))
	successes := 0
	for _, r := range results {
		byName[r.PrinterName] = r
		if r.Success {
			successes++
		}
	}

	// Máy hỏng không kéo các máy còn lại theo
	assert.Equal(t, 2, successes)
	assert.True(t, byName["Kitchen"].Success)
	assert.True(t, byName["Bar"].Success)
	assert.False(t, byName["Receipt"].Success)
	assert.NotEmpty(t, byName["Receipt"].Message)
}

func TestDispatchToPrintersSkipsEmptyStation(t *testing.T) {
	order := sampleOrder()
	// Chỉ còn món bếp, máy bar phải bị bỏ qua chứ không in phiếu rỗng
	order.Items = FilterItemsByDestination(order.Items, constants.PRINTER_KITCHEN)

	kitchenHost, kitchenPort := startPrinterListener(t)
	barHost, barPort := startPrinterListener(t)

	printers := []model.PrinterConfig{
		{Name: "Kitchen", PrinterType: constants.PRINTER_KITCHEN, IPAddress: kitchenHost, Port: kitchenPort},
		{Name: "Bar", PrinterType: constants.PRINTER_BAR, IPAddress: barHost, Port: barPort},
	}

	results := DispatchToPrinters(order, printers)
	require.Len(t, results, 1)
	assert.Equal(t, "Kitchen", results[0].PrinterName)
	assert.True(t, results[0].Success)
}

func TestStationOrderWidth(t *testing.T) {
	doc := FormatStationOrder(sampleOrder(), constants.PRINTER_KITCHEN)
	for _, line := range strings.Split(doc, "\n") {
		if strings.HasPrefix(line, "=") {
			assert.Len(t, line, 32)
		}
	}
}
