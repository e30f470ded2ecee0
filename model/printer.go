package model

type PrinterConfig struct {
	DTO
	Name        string `gorm:"size:100;not null" json:"name"`
	PrinterType string `gorm:"size:20;not null;index" json:"printerType"`
	IPAddress   string `gorm:"size:64" json:"ipAddress"`
	Port        int    `gorm:"default:9100" json:"port"`
	Active      bool   `gorm:"default:true;index" json:"isActive"`
	LocationID  *uint  `gorm:"index" json:"locationId"`
}

// PrintResult kết quả gửi từng máy in, không phải bản ghi DB
type PrintResult struct {
	PrinterName string `json:"printerName"`
	PrinterType string `json:"printerType"`
	Success     bool   `json:"success"`
	Message     string `json:"message"`
}

type CreatePrinterInput struct {
	Name        string `json:"name" validate:"required,max=100"`
	PrinterType string `json:"printerType" validate:"required,oneof=kitchen bar receipt"`
	IPAddress   string `json:"ipAddress" validate:"required"`
	Port        int    `json:"port" validate:"omitempty,min=1,max=65535"`
	LocationID  *uint  `json:"locationId"`
}

type UpdatePrinterInput struct {
	Name        *string `json:"name"`
	PrinterType *string `json:"printerType" validate:"omitempty,oneof=kitchen bar receipt"`
	IPAddress   *string `json:"ipAddress"`
	Port        *int    `json:"port" validate:"omitempty,min=1,max=65535"`
	Active      *bool   `json:"isActive"`
	LocationID  *uint   `json:"locationId"`
}

type PrintOrderInput struct {
	PrinterType string `json:"printerType" validate:"omitempty,oneof=kitchen bar receipt all"`
}
