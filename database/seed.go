package database

import (
	"log"
	"restaurant_pos/constants"
	"restaurant_pos/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	seedLocations(db)
	seedAdmin(db)
	seedPrinters(db)
}

func seedLocations(db *gorm.DB) {
	var count int64
	db.Model(&model.Location{}).Count(&count)
	if count > 0 {
		return
	}

	locations := []model.Location{
		{Name: constants.LOCATION_SHOP, DisplayName: "Main Shop", Active: true},
		{Name: constants.LOCATION_BEACH_BAR, DisplayName: "Beach Bar", Active: true},
	}
	if err := db.Create(&locations).Error; err != nil {
		log.Printf("Seed locations failed: %v", err)
	}
}

func seedAdmin(db *gorm.DB) {
	var admin model.User
	if err := db.Where("username = ?", "admin").First(&admin).Error; err == nil {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), 10)
	if err != nil {
		log.Printf("Seed admin failed: %v", err)
		return
	}
	admin = model.User{
		Username:  "admin",
		Email:     "admin@restaurant.com",
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "User",
		Role:      constants.ROLE_ADMIN,
		Active:    true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("Seed admin failed: %v", err)
		return
	}
	log.Println("Default admin user created: admin/admin123")
}

func seedPrinters(db *gorm.DB) {
	var count int64
	db.Model(&model.PrinterConfig{}).Count(&count)
	if count > 0 {
		return
	}

	// Máy in ảo để chạy môi trường dev, output đẩy qua kênh realtime
	printers := []model.PrinterConfig{
		{Name: "Virtual Kitchen", PrinterType: constants.PRINTER_KITCHEN, IPAddress: "virtual", Port: constants.DEFAULT_PRINTER_PORT, Active: true},
		{Name: "Virtual Bar", PrinterType: constants.PRINTER_BAR, IPAddress: "virtual", Port: constants.DEFAULT_PRINTER_PORT, Active: true},
		{Name: "Virtual Receipt", PrinterType: constants.PRINTER_RECEIPT, IPAddress: "virtual", Port: constants.DEFAULT_PRINTER_PORT, Active: true},
	}
	if err := db.Create(&printers).Error; err != nil {
		log.Printf("Seed printers failed: %v", err)
	}
}
