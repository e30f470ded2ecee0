package model

import "time"

type RefreshToken struct {
	DTO
	UserID    uint      `gorm:"not null;index" json:"userId"`
	User      User      `json:"-"`
	Token     string    `gorm:"unique;size:255;not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expiresAt"`
	Revoked   bool      `gorm:"default:false;index" json:"isRevoked"`
}

func (t *RefreshToken) IsExpired() bool {
	return time.Now().After(t.ExpiresAt)
}
