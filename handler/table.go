package handler

import (
	"fmt"
	"time"

	"restaurant_pos/config"
	"restaurant_pos/constants"
	"restaurant_pos/database"
	"restaurant_pos/helper"
	"restaurant_pos/model"
	"restaurant_pos/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	qrcode "github.com/skip2/go-qrcode"
)

func GetTables(c *fiber.Ctx) error {
	query := database.DB.Preload("Location").Where("active = ?", true)
	if locationId := c.Query("location_id"); locationId != "" {
		query = query.Where("location_id = ?", locationId)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var tables []model.Table
	if err := query.Order("table_number asc").Find(&tables).Error; err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusInternalServerError, constants.CODE_PERSISTENCE_ERROR, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, tables)
}

func CreateTable(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateTable").(model.CreateTableInput)
	if !ok {
		return utils.ErrorResponseCode(c, fiber.StatusBadRequest, constants.CODE_VALIDATION_ERROR, "Invalid input", nil)
	}

	table := model.Table{
		TableNumber: input.TableNumber,
		LocationID:  input.LocationID,
		Capacity:    input.Capacity,
		Status:      constants.TABLE_AVAILABLE,
		XPosition:   input.XPosition,
		YPosition:   input.YPosition,
		Active:      true,
	}
	if table.Capacity == 0 {
		table.Capacity = 4
	}

	if err := database.DB.Omit("Location").Create(&table).Error; err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusInternalServerError, constants.CODE_PERSISTENCE_ERROR, constants.ERROR_INTERNAL_ERROR, err)
	}

	// Mã QR trỏ tới menu của bàn, frontend render khi khách quét
	table.QRCode = fmt.Sprintf("%s/menu?table=%d", config.ConfigDefault("FRONTEND_URL", "http://localhost:3000"), table.ID)
	database.DB.Model(&table).Update("qr_code", table.QRCode)

	return utils.SuccessResponse(c, fiber.StatusCreated, table)
}

func UpdateTable(c *fiber.Ctx) error {
	input, ok := c.Locals("inputUpdateTable").(model.UpdateTableInput)
	if !ok {
		return utils.ErrorResponseCode(c, fiber.StatusBadRequest, constants.CODE_VALIDATION_ERROR, "Invalid input", nil)
	}

	var table model.Table
	if err := database.DB.First(&table, c.Params("tableId")).Error; err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusNotFound, constants.CODE_NOT_FOUND, constants.TABLE_NOT_FOUND, err)
	}

	if err := copier.CopyWithOption(&table, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusInternalServerError, constants.CODE_PERSISTENCE_ERROR, constants.ERROR_INTERNAL_ERROR, err)
	}
	if input.Active != nil {
		table.Active = *input.Active
	}

	if err := database.DB.Omit("Location").Save(&table).Error; err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusInternalServerError, constants.CODE_PERSISTENCE_ERROR, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, table)
}

// GetTableQRCode trả PNG để in dán lên bàn
func GetTableQRCode(c *fiber.Ctx) error {
	var table model.Table
	if err := database.DB.First(&table, c.Params("tableId")).Error; err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusNotFound, constants.CODE_NOT_FOUND, constants.TABLE_NOT_FOUND, err)
	}

	content := table.QRCode
	if content == "" {
		content = fmt.Sprintf("%s/menu?table=%d", config.ConfigDefault("FRONTEND_URL", "http://localhost:3000"), table.ID)
	}

	png, err := qrcode.Encode(content, qrcode.Medium, 256)
	if err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusInternalServerError, constants.CODE_PERSISTENCE_ERROR, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Set("Content-Type", "image/png")
	c.Set("Content-Disposition", fmt.Sprintf(`inline; filename="table_%s_qr.png"`, table.TableNumber))
	return c.Send(png)
}

func AssignTable(c *fiber.Ctx) error {
	input, ok := c.Locals("inputAssignTable").(model.AssignTableInput)
	if !ok {
		return utils.ErrorResponseCode(c, fiber.StatusBadRequest, constants.CODE_VALIDATION_ERROR, "Invalid input", nil)
	}

	var table model.Table
	if err := database.DB.First(&table, input.TableID).Error; err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusNotFound, constants.CODE_NOT_FOUND, constants.TABLE_NOT_FOUND, err)
	}
	var user model.User
	if err := database.DB.First(&user, input.UserID).Error; err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusNotFound, constants.CODE_NOT_FOUND, "User not found", err)
	}

	// Một bàn một người phụ trách, gán mới thì gỡ gán cũ
	database.DB.Model(&model.TableAssignment{}).
		Where("table_id = ? AND active = ?", table.ID, true).
		Update("active", false)

	assignment := model.TableAssignment{
		TableID:    table.ID,
		UserID:     user.ID,
		AssignedAt: time.Now(),
		Active:     true,
	}
	if err := database.DB.Omit("Table", "User").Create(&assignment).Error; err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusInternalServerError, constants.CODE_PERSISTENCE_ERROR, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"id":         assignment.ID,
		"tableId":    table.ID,
		"userId":     user.ID,
		"waiterName": user.FullName(),
		"assignedAt": assignment.AssignedAt,
	})
}

// UnassignTable gỡ gán bàn, giữ lại bản ghi để tra lịch sử
func UnassignTable(c *fiber.Ctx) error {
	_, _, isAdmin, isManager := helper.GetInfoUserFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponseCode(c, fiber.StatusForbidden, constants.CODE_PERMISSION_ERROR, constants.NOT_ADMIN_OR_MANAGER, nil)
	}

	var assignment model.TableAssignment
	if err := database.DB.First(&assignment, c.Params("assignmentId")).Error; err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusNotFound, constants.CODE_NOT_FOUND, "Assignment not found", err)
	}

	if err := database.DB.Model(&assignment).Update("active", false).Error; err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusInternalServerError, constants.CODE_PERSISTENCE_ERROR, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": assignment.ID})
}

func GetTableAssignments(c *fiber.Ctx) error {
	var assignments []model.TableAssignment
	query := database.DB.Preload("Table").Preload("User").Where("active = ?", true)
	if userId := c.Query("user_id"); userId != "" {
		query = query.Where("user_id = ?", userId)
	}
	if err := query.Find(&assignments).Error; err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusInternalServerError, constants.CODE_PERSISTENCE_ERROR, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, assignments)
}
