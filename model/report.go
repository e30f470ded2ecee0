package model

import "time"

// SalesReport dòng tổng hợp theo ngày, job gocron ghi mỗi đêm
type SalesReport struct {
	DTO
	Date              time.Time `gorm:"not null;index:idx_sales_date_location" json:"date"`
	LocationID        *uint     `gorm:"index:idx_sales_date_location" json:"locationId"`
	TotalSales        float64   `gorm:"default:0" json:"totalSales"`
	TotalOrders       int       `gorm:"default:0" json:"totalOrders"`
	AverageOrderValue float64   `gorm:"default:0" json:"averageOrderValue"`
}
