package helper

import (
	"log"
	"strconv"

	"restaurant_pos/config"

	"gopkg.in/gomail.v2"
)

// SendMail gửi qua SMTP cấu hình trong env, dùng cho email xác nhận đặt bàn
func SendMail(to, subject, body string) error {
	host := config.Config("SMTP_HOST")
	if host == "" {
		log.Printf("SMTP not configured, skipping mail to %s", to)
		return nil
	}

	port, err := strconv.Atoi(config.ConfigDefault("SMTP_PORT", "587"))
	if err != nil {
		port = 587
	}

	m := gomail.NewMessage()
	m.SetHeader("From", config.ConfigDefault("SMTP_FROM", "noreply@restaurant.local"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(host, port, config.Config("SMTP_USER"), config.Config("SMTP_PASSWORD"))
	return d.DialAndSend(m)
}
