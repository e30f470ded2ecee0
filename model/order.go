package model

import "time"

type Order struct {
	DTO
	OrderNumber       string      `gorm:"unique;size:30;not null" json:"orderNumber"`
	OrderType         string      `gorm:"size:20;default:dine_in;index" json:"orderType"`
	Status            string      `gorm:"size:20;default:pending;index" json:"status"`
	TableID           *uint       `gorm:"index" json:"tableId"`
	Table             *Table      `json:"table,omitempty"`
	UserID            uint        `gorm:"index" json:"userId"`
	Waiter            User        `gorm:"foreignKey:UserID" json:"waiter"`
	LocationID        uint        `gorm:"index" json:"locationId"`
	Location          Location    `json:"location"`
	Subtotal          float64     `gorm:"default:0" json:"subtotal"`
	TaxAmount         float64     `gorm:"default:0" json:"taxAmount"`
	DiscountAmount    float64     `gorm:"default:0" json:"discountAmount"`
	TotalAmount       float64     `gorm:"default:0;index" json:"totalAmount"`
	Notes             string      `json:"notes"`
	CustomerName      *string     `gorm:"size:100" json:"customerName"`
	CustomerPhone     *string     `gorm:"size:30" json:"customerPhone"`
	EstimatedReadyTime *time.Time `json:"estimatedReadyTime"`
	Items             []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}

// FinalTotal là số tiền khách phải trả khi in hóa đơn
func (o *Order) FinalTotal() float64 {
	return o.TotalAmount + o.TaxAmount - o.DiscountAmount
}

func (o *Order) IsTerminal() bool {
	return o.Status == "served" || o.Status == "cancelled"
}

type OrderItem struct {
	DTO
	OrderID             uint     `gorm:"not null;index" json:"orderId"`
	MenuItemID          uint     `gorm:"not null;index" json:"menuItemId"`
	MenuItem            MenuItem `json:"menuItem"`
	Quantity            int      `gorm:"not null;default:1" json:"quantity"`
	UnitPrice           float64  `gorm:"not null" json:"unitPrice"`
	TotalPrice          float64  `gorm:"not null" json:"totalPrice"`
	SpecialInstructions string   `json:"specialInstructions"`
	Status              string   `gorm:"size:20;default:pending;index" json:"status"`
}

type OrderItemInput struct {
	MenuItemID          uint     `json:"menuItemId" validate:"required"`
	Quantity            int      `json:"quantity" validate:"required,min=1"`
	UnitPrice           *float64 `json:"unitPrice" validate:"omitempty,gte=0"`
	SpecialInstructions string   `json:"specialInstructions"`
}

type CreateOrderInput struct {
	OrderType      string           `json:"orderType" validate:"omitempty,oneof=dine_in takeaway delivery"`
	TableID        *uint            `json:"tableId"`
	LocationID     *uint            `json:"locationId"`
	Items          []OrderItemInput `json:"items" validate:"required,min=1,dive"`
	Notes          string           `json:"notes"`
	CustomerName   string           `json:"customerName"`
	CustomerPhone  string           `json:"customerPhone"`
	DiscountAmount float64          `json:"discountAmount" validate:"omitempty,gte=0"`
}

type UpdateOrderStatusInput struct {
	Status string `json:"status" validate:"required"`
}
