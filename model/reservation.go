package model

import "time"

type Reservation struct {
	DTO
	TableID         uint      `gorm:"not null;index" json:"tableId"`
	Table           Table     `json:"table"`
	CustomerName    string    `gorm:"size:100;not null" json:"customerName"`
	CustomerPhone   string    `gorm:"size:30" json:"customerPhone"`
	CustomerEmail   string    `gorm:"size:120" json:"customerEmail"`
	PartySize       int       `gorm:"not null" json:"partySize"`
	ReservationDate time.Time `gorm:"not null;index" json:"reservationDate"`
	Status          string    `gorm:"size:20;default:confirmed;index" json:"status"`
	Notes           string    `json:"notes"`
	CreatedBy       uint      `json:"createdBy"`
}

type CreateReservationInput struct {
	TableID         uint   `json:"tableId" validate:"required"`
	CustomerName    string `json:"customerName" validate:"required,max=100"`
	CustomerPhone   string `json:"customerPhone"`
	CustomerEmail   string `json:"customerEmail" validate:"omitempty,email"`
	PartySize       int    `json:"partySize" validate:"required,min=1"`
	ReservationDate string `json:"reservationDate" validate:"required"`
	Notes           string `json:"notes"`
}

type UpdateReservationInput struct {
	CustomerName    *string `json:"customerName"`
	CustomerPhone   *string `json:"customerPhone"`
	CustomerEmail   *string `json:"customerEmail" validate:"omitempty,email"`
	PartySize       *int    `json:"partySize" validate:"omitempty,min=1"`
	ReservationDate *string `json:"reservationDate"`
	Status          *string `json:"status" validate:"omitempty,oneof=confirmed completed cancelled no_show"`
	Notes           *string `json:"notes"`
}
