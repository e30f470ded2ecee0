package model

type Category struct {
	DTO
	Name               string `gorm:"size:100;not null" json:"name"`
	Description        string `json:"description"`
	ImageURL           string `gorm:"size:255" json:"imageUrl"`
	SortOrder          int    `gorm:"default:0;index" json:"sortOrder"`
	PrinterDestination string `gorm:"size:50;default:kitchen;index" json:"printerDestination"`
	Active             bool   `gorm:"default:true" json:"isActive"`
}

type MenuItem struct {
	DTO
	Name               string   `gorm:"size:100;not null;index" json:"name"`
	Slug               string   `gorm:"size:120;index" json:"slug"`
	Barcode            *string  `gorm:"unique;size:50" json:"barcode"`
	Description        string   `json:"description"`
	Price              float64  `gorm:"not null" json:"price"`
	TakeawayPrice      *float64 `json:"takeawayPrice"`
	BeachBarPrice      *float64 `json:"beachBarPrice"`
	CategoryID         uint     `gorm:"not null;index" json:"categoryId"`
	Category           Category `json:"category"`
	ImageURL           string   `gorm:"size:255" json:"imageUrl"`
	Available          bool     `gorm:"default:true" json:"isAvailable"`
	AvailableTakeaway  bool     `gorm:"default:true" json:"isAvailableTakeaway"`
	TakeawayOnly       bool     `gorm:"default:false" json:"isTakeawayOnly"`
	Active             bool     `gorm:"default:true" json:"isActive"`
	PreparationTime    int      `gorm:"default:15" json:"preparationTime"`
	Allergens          string   `json:"allergens"`
	SortOrder          int      `gorm:"default:0;index" json:"sortOrder"`
}

type CreateCategoryInput struct {
	Name               string `json:"name" validate:"required,max=100"`
	Description        string `json:"description"`
	ImageURL           string `json:"imageUrl"`
	SortOrder          int    `json:"sortOrder"`
	PrinterDestination string `json:"printerDestination" validate:"omitempty,oneof=kitchen bar none"`
}

type CreateMenuItemInput struct {
	Name              string   `json:"name" validate:"required,max=100"`
	Barcode           *string  `json:"barcode"`
	Description       string   `json:"description"`
	Price             float64  `json:"price" validate:"required,gte=0"`
	TakeawayPrice     *float64 `json:"takeawayPrice" validate:"omitempty,gte=0"`
	BeachBarPrice     *float64 `json:"beachBarPrice" validate:"omitempty,gte=0"`
	CategoryID        uint     `json:"categoryId" validate:"required"`
	ImageURL          string   `json:"imageUrl"`
	Available         *bool    `json:"isAvailable"`
	AvailableTakeaway *bool    `json:"isAvailableTakeaway"`
	TakeawayOnly      *bool    `json:"isTakeawayOnly"`
	PreparationTime   int      `json:"preparationTime"`
	Allergens         string   `json:"allergens"`
	SortOrder         int      `json:"sortOrder"`
}

type UpdateMenuItemInput struct {
	Name              *string  `json:"name" validate:"omitempty,max=100"`
	Barcode           *string  `json:"barcode"`
	Description       *string  `json:"description"`
	Price             *float64 `json:"price" validate:"omitempty,gte=0"`
	TakeawayPrice     *float64 `json:"takeawayPrice" validate:"omitempty,gte=0"`
	BeachBarPrice     *float64 `json:"beachBarPrice" validate:"omitempty,gte=0"`
	CategoryID        *uint    `json:"categoryId"`
	ImageURL          *string  `json:"imageUrl"`
	Available         *bool    `json:"isAvailable"`
	AvailableTakeaway *bool    `json:"isAvailableTakeaway"`
	TakeawayOnly      *bool    `json:"isTakeawayOnly"`
	PreparationTime   *int     `json:"preparationTime"`
	Allergens         *string  `json:"allergens"`
	SortOrder         *int     `json:"sortOrder"`
	Active            *bool    `json:"isActive"`
}
