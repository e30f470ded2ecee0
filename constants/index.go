package constants

// Roles
const (
	ROLE_ADMIN   = "admin"
	ROLE_MANAGER = "manager"
	ROLE_WAITER  = "waiter"
)

// Order types
const (
	ORDER_TYPE_DINE_IN  = "dine_in"
	ORDER_TYPE_TAKEAWAY = "takeaway"
	ORDER_TYPE_DELIVERY = "delivery"
)

// Order / order item statuses
const (
	ORDER_STATUS_PENDING   = "pending"
	ORDER_STATUS_CONFIRMED = "confirmed"
	ORDER_STATUS_PREPARING = "preparing"
	ORDER_STATUS_READY     = "ready"
	ORDER_STATUS_SERVED    = "served"
	ORDER_STATUS_CANCELLED = "cancelled"
)

// Table statuses
const (
	TABLE_AVAILABLE = "available"
	TABLE_OCCUPIED  = "occupied"
	TABLE_RESERVED  = "reserved"
	TABLE_CLEANING  = "cleaning"
)

// Reservation statuses
const (
	RESERVATION_CONFIRMED = "confirmed"
	RESERVATION_COMPLETED = "completed"
	RESERVATION_CANCELLED = "cancelled"
	RESERVATION_NO_SHOW   = "no_show"
)

// Printer destinations
const (
	PRINTER_KITCHEN = "kitchen"
	PRINTER_BAR     = "bar"
	PRINTER_RECEIPT = "receipt"
)

// Locations
const (
	LOCATION_SHOP      = "shop"
	LOCATION_BEACH_BAR = "beach_bar"
)

// Realtime events, room "restaurant" dùng chung cho mọi màn hình bếp/sảnh
const (
	ROOM_RESTAURANT            = "restaurant"
	EVENT_NEW_ORDER            = "new_order"
	EVENT_ORDER_STATUS_CHANGED = "order_status_changed"
	EVENT_PRINT_OUTPUT         = "print_output"
)

// Machine-readable error codes trả về cho client
const (
	CODE_VALIDATION_ERROR   = "VALIDATION_ERROR"
	CODE_NOT_FOUND          = "NOT_FOUND"
	CODE_AVAILABILITY_ERROR = "AVAILABILITY_ERROR"
	CODE_PERMISSION_ERROR   = "PERMISSION_ERROR"
	CODE_INVALID_STATE      = "INVALID_STATE"
	CODE_PERSISTENCE_ERROR  = "PERSISTENCE_ERROR"
	CODE_PRINT_DELIVERY     = "PRINT_DELIVERY_ERROR"
)

// Common messages
const (
	ERROR_INTERNAL_ERROR     = "Internal server error"
	MISSING_LOGIN_INPUT      = "Username and password are required"
	INVALID_USERNAME         = "Invalid username"
	INVALID_PASSWORD         = "Invalid password"
	ACCOUNT_NOT_ACTIVE       = "Account is deactivated"
	ACCOUNT_LOCKED           = "Account is temporarily locked"
	NOT_ADMIN                = "Admin role required"
	NOT_ADMIN_OR_MANAGER     = "Insufficient permissions"
	ORDER_NOT_FOUND          = "Order not found"
	TABLE_NOT_FOUND          = "Table not found"
	MENU_ITEM_NOT_FOUND      = "Menu item not found"
	LOCATION_NOT_FOUND       = "Invalid location ID"
	PRINTER_NOT_FOUND        = "Printer not found"
	RESERVATION_NOT_FOUND    = "Reservation not found"
	ORDER_ITEMS_REQUIRED     = "Order items are required"
	TABLE_REQUIRED_DINE_IN   = "Table ID is required for dine-in orders"
	ORDER_NOT_EDITABLE       = "Order can no longer be modified"
	INVALID_ORDER_STATUS     = "Invalid status"
	INVALID_STATUS_TRANSITION = "Status transition not allowed"
)

// Defaults
const (
	DEFAULT_TAX_RATE          = 0.10
	DEFAULT_PRINTER_PORT      = 9100
	DEFAULT_CUSTOMER_NAME     = "Guest"
	TAKEAWAY_READY_MINUTES    = 30
	ORDER_NUMBER_MAX_ATTEMPTS = 3
)
