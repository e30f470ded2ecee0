package model

import "time"

type Table struct {
	DTO
	TableNumber string   `gorm:"size:10;not null;index:idx_table_number_location" json:"tableNumber"`
	LocationID  uint     `gorm:"not null;index:idx_table_number_location" json:"locationId"`
	Location    Location `json:"location"`
	Capacity    int      `gorm:"default:4" json:"capacity"`
	Status      string   `gorm:"size:20;default:available;index" json:"status"`
	QRCode      string   `gorm:"size:255" json:"qrCode"`
	XPosition   int      `gorm:"default:0" json:"xPosition"`
	YPosition   int      `gorm:"default:0" json:"yPosition"`
	Active      bool     `gorm:"default:true" json:"isActive"`
}

// TableAssignment gán bàn cho nhân viên phục vụ
type TableAssignment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	TableID    uint      `gorm:"not null;index" json:"tableId"`
	Table      Table     `json:"table"`
	UserID     uint      `gorm:"not null;index" json:"userId"`
	User       User      `json:"user"`
	AssignedAt time.Time `json:"assignedAt"`
	Active     bool      `gorm:"default:true" json:"isActive"`
}

type CreateTableInput struct {
	TableNumber string `json:"tableNumber" validate:"required,max=10"`
	LocationID  uint   `json:"locationId" validate:"required"`
	Capacity    int    `json:"capacity" validate:"omitempty,min=1,max=50"`
	XPosition   int    `json:"xPosition"`
	YPosition   int    `json:"yPosition"`
}

type UpdateTableInput struct {
	TableNumber *string `json:"tableNumber"`
	Capacity    *int    `json:"capacity" validate:"omitempty,min=1,max=50"`
	Status      *string `json:"status" validate:"omitempty,oneof=available occupied reserved cleaning"`
	XPosition   *int    `json:"xPosition"`
	YPosition   *int    `json:"yPosition"`
	Active      *bool   `json:"isActive"`
}

type AssignTableInput struct {
	TableID uint `json:"tableId" validate:"required"`
	UserID  uint `json:"userId" validate:"required"`
}
