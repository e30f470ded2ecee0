package model

type Location struct {
	DTO
	Name        string `gorm:"unique;size:50;not null" json:"name"`
	DisplayName string `gorm:"size:100;not null" json:"displayName"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Active      bool   `gorm:"default:true" json:"isActive"`
}

type CreateLocationInput struct {
	Name        string `json:"name" validate:"required,min=2,max=50"`
	DisplayName string `json:"displayName" validate:"required"`
	Description string `json:"description"`
	Address     string `json:"address"`
}

type UpdateLocationInput struct {
	DisplayName *string `json:"displayName"`
	Description *string `json:"description"`
	Address     *string `json:"address"`
	Active      *bool   `json:"isActive"`
}
