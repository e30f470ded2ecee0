package handler

import (
	"restaurant_pos/constants"
	"restaurant_pos/database"
	"restaurant_pos/helper"
	"restaurant_pos/model"
	"restaurant_pos/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetLocations(c *fiber.Ctx) error {
	var locations []model.Location
	query := database.DB
	if c.Query("all") != "true" {
		query = query.Where("active = ?", true)
	}
	if err := query.Order("id asc").Find(&locations).Error; err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusInternalServerError, constants.CODE_PERSISTENCE_ERROR, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, locations)
}

func CreateLocation(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateLocation").(model.CreateLocationInput)
	if !ok {
		return utils.ErrorResponseCode(c, fiber.StatusBadRequest, constants.CODE_VALIDATION_ERROR, "Invalid input", nil)
	}

	location := model.Location{
		Name:        input.Name,
		DisplayName: input.DisplayName,
		Description: input.Description,
		Address:     input.Address,
		Active:      true,
	}
	if err := database.DB.Create(&location).Error; err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusInternalServerError, constants.CODE_PERSISTENCE_ERROR, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, location)
}

func UpdateLocation(c *fiber.Ctx) error {
	input, ok := c.Locals("inputUpdateLocation").(model.UpdateLocationInput)
	if !ok {
		return utils.ErrorResponseCode(c, fiber.StatusBadRequest, constants.CODE_VALIDATION_ERROR, "Invalid input", nil)
	}

	var location model.Location
	if err := database.DB.First(&location, c.Params("locationId")).Error; err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusNotFound, constants.CODE_NOT_FOUND, constants.LOCATION_NOT_FOUND, err)
	}

	if err := copier.CopyWithOption(&location, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusInternalServerError, constants.CODE_PERSISTENCE_ERROR, constants.ERROR_INTERNAL_ERROR, err)
	}
	if input.Active != nil {
		location.Active = *input.Active
	}

	if err := database.DB.Save(&location).Error; err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusInternalServerError, constants.CODE_PERSISTENCE_ERROR, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, location)
}

// DeleteLocation vô hiệu hoá location, chặn khi còn bàn đang hoạt động
func DeleteLocation(c *fiber.Ctx) error {
	_, _, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponseCode(c, fiber.StatusForbidden, constants.CODE_PERMISSION_ERROR, constants.NOT_ADMIN, nil)
	}

	var location model.Location
	if err := database.DB.First(&location, c.Params("locationId")).Error; err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusNotFound, constants.CODE_NOT_FOUND, constants.LOCATION_NOT_FOUND, err)
	}

	var count int64
	database.DB.Model(&model.Table{}).Where("location_id = ? AND active = ?", location.ID, true).Count(&count)
	if count > 0 {
		return utils.ErrorResponseCode(c, fiber.StatusConflict, constants.CODE_INVALID_STATE, "Location still has active tables", nil)
	}

	if err := database.DB.Model(&location).Update("active", false).Error; err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusInternalServerError, constants.CODE_PERSISTENCE_ERROR, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": location.ID})
}
