package handler

import (
	"fmt"
	"log"
	"time"

	"restaurant_pos/constants"
	"restaurant_pos/database"
	"restaurant_pos/helper"
	"restaurant_pos/model"
	"restaurant_pos/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

// Hai đặt bàn cùng bàn cách nhau dưới 2 tiếng coi là trùng
const reservationWindow = 2 * time.Hour

func parseReservationDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02 15:04", raw)
}

func findConflictingReservation(tableId uint, date time.Time, excludeId uint) *model.Reservation {
	var conflict model.Reservation
	err := database.DB.
		Where("table_id = ? AND status = ?", tableId, constants.RESERVATION_CONFIRMED).
		Where("id <> ?", excludeId).
		Where("reservation_date BETWEEN ? AND ?", date.Add(-reservationWindow), date.Add(reservationWindow)).
		First(&conflict).Error
	if err != nil {
		return nil
	}
	return &conflict
}

func GetReservations(c *fiber.Ctx) error {
	query := database.DB.Preload("Table").Preload("Table.Location")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if tableId := c.Query("table_id"); tableId != "" {
		query = query.Where("table_id = ?", tableId)
	}
	if date := c.Query("date"); date != "" {
		if day, err := time.Parse("2006-01-02", date); err == nil {
			query = query.Where("reservation_date >= ? AND reservation_date < ?", day, day.AddDate(0, 0, 1))
		}
	}

	var reservations []model.Reservation
	if err := query.Order("reservation_date asc").Find(&reservations).Error; err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusInternalServerError, constants.CODE_PERSISTENCE_ERROR, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, reservations)
}

func CreateReservation(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateReservation").(model.CreateReservationInput)
	if !ok {
		return utils.ErrorResponseCode(c, fiber.StatusBadRequest, constants.CODE_VALIDATION_ERROR, "Invalid input", nil)
	}

	claim, user, _, _ := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", nil)
	}

	reservationDate, err := parseReservationDate(input.ReservationDate)
	if err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusBadRequest, constants.CODE_VALIDATION_ERROR, "Invalid reservation date format", err)
	}
	if reservationDate.Before(time.Now()) {
		return utils.ErrorResponseCode(c, fiber.StatusBadRequest, constants.CODE_VALIDATION_ERROR, "Reservation date must be in the future", nil)
	}

	var table model.Table
	if err := database.DB.First(&table, input.TableID).Error; err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusNotFound, constants.CODE_NOT_FOUND, constants.TABLE_NOT_FOUND, err)
	}
	if input.PartySize > table.Capacity {
		return utils.ErrorResponseCode(c, fiber.StatusBadRequest, constants.CODE_VALIDATION_ERROR,
			fmt.Sprintf("Party size exceeds table capacity of %d", table.Capacity), nil)
	}

	if conflict := findConflictingReservation(table.ID, reservationDate, 0); conflict != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"status":  "error",
			"code":    constants.CODE_INVALID_STATE,
			"message": "Table already reserved around this time",
			"conflictingReservation": fiber.Map{
				"id":              conflict.ID,
				"customerName":    conflict.CustomerName,
				"reservationDate": conflict.ReservationDate,
			},
		})
	}

	reservation := model.Reservation{
		TableID:         table.ID,
		CustomerName:    input.CustomerName,
		CustomerPhone:   input.CustomerPhone,
		CustomerEmail:   input.CustomerEmail,
		PartySize:       input.PartySize,
		ReservationDate: reservationDate,
		Status:          constants.RESERVATION_CONFIRMED,
		Notes:           input.Notes,
		CreatedBy:       claim.UserId,
	}
	if err := database.DB.Omit("Table").Create(&reservation).Error; err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusInternalServerError, constants.CODE_PERSISTENCE_ERROR, constants.ERROR_INTERNAL_ERROR, err)
	}

	// Đánh dấu bàn đã giữ chỗ nếu giờ đặt sát giờ hiện tại
	if reservationDate.Sub(time.Now()) <= reservationWindow {
		database.DB.Model(&table).Update("status", constants.TABLE_RESERVED)
	}

	// Email xác nhận gửi nền, lỗi mail không chặn đặt bàn
	if reservation.CustomerEmail != "" {
		go func(r model.Reservation, tableNumber string) {
			body := fmt.Sprintf(
				"<p>Dear %s,</p><p>Your reservation is confirmed.</p><p>Table: %s<br>Date: %s<br>Party size: %d</p>",
				r.CustomerName, tableNumber, r.ReservationDate.Format("2006-01-02 15:04"), r.PartySize)
			if err := helper.SendMail(r.CustomerEmail, "Reservation Confirmation", body); err != nil {
				log.Printf("Reservation confirmation mail failed: %v", err)
			}
		}(reservation, table.TableNumber)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, reservation)
}

func UpdateReservation(c *fiber.Ctx) error {
	input, ok := c.Locals("inputUpdateReservation").(model.UpdateReservationInput)
	if !ok {
		return utils.ErrorResponseCode(c, fiber.StatusBadRequest, constants.CODE_VALIDATION_ERROR, "Invalid input", nil)
	}

	var reservation model.Reservation
	if err := database.DB.Preload("Table").First(&reservation, c.Params("reservationId")).Error; err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusNotFound, constants.CODE_NOT_FOUND, constants.RESERVATION_NOT_FOUND, err)
	}

	if input.ReservationDate != nil {
		newDate, err := parseReservationDate(*input.ReservationDate)
		if err != nil {
			return utils.ErrorResponseCode(c, fiber.StatusBadRequest, constants.CODE_VALIDATION_ERROR, "Invalid reservation date format", err)
		}
		if conflict := findConflictingReservation(reservation.TableID, newDate, reservation.ID); conflict != nil {
			return utils.ErrorResponseCode(c, fiber.StatusConflict, constants.CODE_INVALID_STATE, "Table already reserved around this time", nil)
		}
		reservation.ReservationDate = newDate
	}

	if err := copier.CopyWithOption(&reservation, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusInternalServerError, constants.CODE_PERSISTENCE_ERROR, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := database.DB.Omit("Table").Save(&reservation).Error; err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusInternalServerError, constants.CODE_PERSISTENCE_ERROR, constants.ERROR_INTERNAL_ERROR, err)
	}

	// Huỷ hoặc hoàn tất thì trả bàn về available
	if input.Status != nil && (*input.Status == constants.RESERVATION_CANCELLED || *input.Status == constants.RESERVATION_COMPLETED || *input.Status == constants.RESERVATION_NO_SHOW) {
		database.DB.Model(&model.Table{}).
			Where("id = ? AND status = ?", reservation.TableID, constants.TABLE_RESERVED).
			Update("status", constants.TABLE_AVAILABLE)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, reservation)
}

func DeleteReservation(c *fiber.Ctx) error {
	_, _, isAdmin, isManager := helper.GetInfoUserFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponseCode(c, fiber.StatusForbidden, constants.CODE_PERMISSION_ERROR, constants.NOT_ADMIN_OR_MANAGER, nil)
	}

	var reservation model.Reservation
	if err := database.DB.First(&reservation, c.Params("reservationId")).Error; err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusNotFound, constants.CODE_NOT_FOUND, constants.RESERVATION_NOT_FOUND, err)
	}

	if err := database.DB.Delete(&reservation).Error; err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusInternalServerError, constants.CODE_PERSISTENCE_ERROR, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": reservation.ID})
}
