package main

import (
	"log"
	"time"

	"restaurant_pos/config"
	"restaurant_pos/constants"
	"restaurant_pos/database"
	"restaurant_pos/helper"
	"restaurant_pos/middleware"
	"restaurant_pos/model"
	"restaurant_pos/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/robfig/cron/v3"
)

// startMaintenanceJobs chạy các việc dọn dẹp định kỳ: đặt bàn quá giờ và
// bàn giữ chỗ không còn đặt bàn sắp tới
func startMaintenanceJobs() *cron.Cron {
	c := cron.New()

	c.AddFunc("@every 1m", func() {
		// Đặt bàn confirmed đã qua giờ hơn 2 tiếng → no_show
		cutoff := time.Now().Add(-2 * time.Hour)
		database.DB.Model(&model.Reservation{}).
			Where("status = ? AND reservation_date < ?", constants.RESERVATION_CONFIRMED, cutoff).
			Update("status", constants.RESERVATION_NO_SHOW)

		// Bàn đang reserved mà không còn đặt bàn confirmed nào trong 2 tiếng
		// tới → trả về available
		database.DB.Model(&model.Table{}).
			Where("status = ?", constants.TABLE_RESERVED).
			Where("id NOT IN (?)", database.DB.Model(&model.Reservation{}).
				Select("table_id").
				Where("status = ? AND reservation_date BETWEEN ? AND ?",
					constants.RESERVATION_CONFIRMED, time.Now().Add(-2*time.Hour), time.Now().Add(2*time.Hour))).
			Update("status", constants.TABLE_AVAILABLE)
	})

	c.Start()
	return c
}

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigDefault("FRONTEND_URL", "http://localhost:3000"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))
	app.Use(middleware.RateLimiter())

	database.ConnectDB()

	helper.StartReportScheduler()
	defer helper.StopReportScheduler()

	maintenance := startMaintenanceJobs()
	defer maintenance.Stop()

	router.SetupRoutes(app)

	port := config.ConfigDefault("PORT", "8000")
	log.Fatal(app.Listen(":" + port))
}
