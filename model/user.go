package model

import "time"

type User struct {
	DTO
	Username            string     `gorm:"unique;size:80;not null" json:"username"`
	Email               string     `gorm:"unique;size:120;not null" json:"email"`
	Password            string     `gorm:"size:255;not null" json:"-"`
	FirstName           string     `gorm:"size:50" json:"firstName"`
	LastName            string     `gorm:"size:50" json:"lastName"`
	Role                string     `gorm:"size:20;default:waiter;index" json:"role"`
	LocationID          *uint      `gorm:"index" json:"locationId"`
	Location            *Location  `json:"location,omitempty"`
	Active              bool       `gorm:"default:true" json:"isActive"`
	FailedLoginAttempts int        `gorm:"default:0" json:"-"`
	LockedUntil         *time.Time `json:"-"`
	LastLogin           *time.Time `json:"lastLogin,omitempty"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

func (u *User) IsLocked() bool {
	return u.LockedUntil != nil && u.LockedUntil.After(time.Now())
}

type CreateUserInput struct {
	Username   string `json:"username" validate:"required,min=3,max=80"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	FirstName  string `json:"firstName" validate:"required"`
	LastName   string `json:"lastName" validate:"required"`
	Role       string `json:"role" validate:"required,oneof=admin manager waiter"`
	LocationID *uint  `json:"locationId"`
}

type UpdateUserInput struct {
	Email      *string `json:"email" validate:"omitempty,email"`
	FirstName  *string `json:"firstName"`
	LastName   *string `json:"lastName"`
	Role       *string `json:"role" validate:"omitempty,oneof=admin manager waiter"`
	LocationID *uint   `json:"locationId"`
	Active     *bool   `json:"isActive"`
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
	RepeatPassword  string `json:"repeatPassword" validate:"required"`
}
