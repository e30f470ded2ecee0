package helper

import (
	"log"
	"time"

	"restaurant_pos/constants"
	"restaurant_pos/database"
	"restaurant_pos/model"
	"restaurant_pos/utils"

	"github.com/go-co-op/gocron/v2"
)

var reportScheduler gocron.Scheduler

// AggregateDailySales tổng hợp doanh số một ngày theo từng location và
// upsert vào sales_reports
func AggregateDailySales(date time.Time) error {
	db := database.DB
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	type row struct {
		LocationID  *uint
		TotalSales  float64
		TotalOrders int
	}
	var rows []row
	err := db.Model(&model.Order{}).
		Select("location_id, COALESCE(SUM(total_amount), 0) as total_sales, COUNT(*) as total_orders").
		Where("created_at >= ? AND created_at < ? AND status <> ?", dayStart, dayEnd, constants.ORDER_STATUS_CANCELLED).
		Group("location_id").
		Scan(&rows).Error
	if err != nil {
		return err
	}

	for _, r := range rows {
		avg := 0.0
		if r.TotalOrders > 0 {
			avg = utils.Round2(r.TotalSales / float64(r.TotalOrders))
		}

		var report model.SalesReport
		query := db.Where("date = ?", dayStart)
		if r.LocationID != nil {
			query = query.Where("location_id = ?", *r.LocationID)
		} else {
			query = query.Where("location_id IS NULL")
		}
		if err := query.First(&report).Error; err != nil {
			report = model.SalesReport{
				Date:              dayStart,
				LocationID:        r.LocationID,
				TotalSales:        utils.Round2(r.TotalSales),
				TotalOrders:       r.TotalOrders,
				AverageOrderValue: avg,
			}
			if err := db.Create(&report).Error; err != nil {
				log.Printf("Sales report insert failed: %v", err)
			}
			continue
		}

		report.TotalSales = utils.Round2(r.TotalSales)
		report.TotalOrders = r.TotalOrders
		report.AverageOrderValue = avg
		if err := db.Save(&report).Error; err != nil {
			log.Printf("Sales report update failed: %v", err)
		}
	}
	return nil
}

// StartReportScheduler chạy job tổng hợp doanh số ngày hôm trước lúc 00:05
func StartReportScheduler() {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Printf("Report scheduler init failed: %v", err)
		return
	}

	_, err = s.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(0, 5, 0))),
		gocron.NewTask(func() {
			yesterday := time.Now().AddDate(0, 0, -1)
			if err := AggregateDailySales(yesterday); err != nil {
				log.Printf("Daily sales aggregation failed: %v", err)
			}
		}),
	)
	if err != nil {
		log.Printf("Report job registration failed: %v", err)
		return
	}

	s.Start()
	reportScheduler = s
}

func StopReportScheduler() {
	if reportScheduler != nil {
		_ = reportScheduler.Shutdown()
	}
}
