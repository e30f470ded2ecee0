package handler

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"

	"restaurant_pos/constants"
	"restaurant_pos/database"
	"restaurant_pos/helper"
	"restaurant_pos/model"
	"restaurant_pos/utils"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
	"github.com/gosimple/slug"
	"github.com/jinzhu/copier"
)

func GetCategories(c *fiber.Ctx) error {
	var categories []model.Category
	query := database.DB
	if c.Query("all") != "true" {
		query = query.Where("active = ?", true)
	}
	if err := query.Order("sort_order asc, id asc").Find(&categories).Error; err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusInternalServerError, constants.CODE_PERSISTENCE_ERROR, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, categories)
}

func CreateCategory(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateCategory").(model.CreateCategoryInput)
	if !ok {
		return utils.ErrorResponseCode(c, fiber.StatusBadRequest, constants.CODE_VALIDATION_ERROR, "Invalid input", nil)
	}

	category := model.Category{
		Name:               input.Name,
		Description:        input.Description,
		ImageURL:           input.ImageURL,
		SortOrder:          input.SortOrder,
		PrinterDestination: input.PrinterDestination,
		Active:             true,
	}
	if category.PrinterDestination == "" {
		category.PrinterDestination = constants.PRINTER_KITCHEN
	}

	if err := database.DB.Create(&category).Error; err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusInternalServerError, constants.CODE_PERSISTENCE_ERROR, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, category)
}

func DeleteCategory(c *fiber.Ctx) error {
	_, _, isAdmin, isManager := helper.GetInfoUserFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponseCode(c, fiber.StatusForbidden, constants.CODE_PERMISSION_ERROR, constants.NOT_ADMIN_OR_MANAGER, nil)
	}

	var category model.Category
	if err := database.DB.First(&category, c.Params("categoryId")).Error; err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusNotFound, constants.CODE_NOT_FOUND, "Category not found", err)
	}

	// Danh mục còn món thì không xoá được
	var count int64
	database.DB.Model(&model.MenuItem{}).Where("category_id = ?", category.ID).Count(&count)
	if count > 0 {
		return utils.ErrorResponseCode(c, fiber.StatusConflict, constants.CODE_INVALID_STATE, "Category still has menu items", nil)
	}

	if err := database.DB.Delete(&category).Error; err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusInternalServerError, constants.CODE_PERSISTENCE_ERROR, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": category.ID})
}

func GetMenuItems(c *fiber.Ctx) error {
	query := database.DB.Preload("Category").Where("active = ?", true)

	if categoryId := c.Query("category_id"); categoryId != "" {
		query = query.Where("category_id = ?", categoryId)
	}
	// Lọc theo bối cảnh đặt món để frontend khỏi tự suy luận cờ
	switch c.Query("order_type") {
	case constants.ORDER_TYPE_TAKEAWAY:
		query = query.Where("available_takeaway = ? OR takeaway_only = ?", true, true)
	case constants.ORDER_TYPE_DINE_IN:
		query = query.Where("available = ? AND takeaway_only = ?", true, false)
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	var items []model.MenuItem
	if err := query.Order("sort_order asc, name asc").Find(&items).Error; err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusInternalServerError, constants.CODE_PERSISTENCE_ERROR, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, items)
}

func GetMenuItemByBarcode(c *fiber.Ctx) error {
	barcode := c.Params("barcode")
	var item model.MenuItem
	if err := database.DB.Preload("Category").Where("barcode = ? AND active = ?", barcode, true).First(&item).Error; err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusNotFound, constants.CODE_NOT_FOUND, constants.MENU_ITEM_NOT_FOUND, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, item)
}

func CreateMenuItem(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateMenuItem").(model.CreateMenuItemInput)
	if !ok {
		return utils.ErrorResponseCode(c, fiber.StatusBadRequest, constants.CODE_VALIDATION_ERROR, "Invalid input", nil)
	}

	item := model.MenuItem{
		Name:            input.Name,
		Slug:            slug.Make(input.Name),
		Barcode:         input.Barcode,
		Description:     input.Description,
		Price:           input.Price,
		TakeawayPrice:   input.TakeawayPrice,
		BeachBarPrice:   input.BeachBarPrice,
		CategoryID:      input.CategoryID,
		ImageURL:        input.ImageURL,
		Available:       true,
		AvailableTakeaway: true,
		PreparationTime: input.PreparationTime,
		Allergens:       input.Allergens,
		SortOrder:       input.SortOrder,
		Active:          true,
	}
	if input.Available != nil {
		item.Available = *input.Available
	}
	if input.AvailableTakeaway != nil {
		item.AvailableTakeaway = *input.AvailableTakeaway
	}
	if input.TakeawayOnly != nil {
		item.TakeawayOnly = *input.TakeawayOnly
	}
	if item.PreparationTime == 0 {
		item.PreparationTime = 15
	}

	if err := database.DB.Omit("Category").Create(&item).Error; err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusInternalServerError, constants.CODE_PERSISTENCE_ERROR, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, item)
}

func UpdateMenuItem(c *fiber.Ctx) error {
	input, ok := c.Locals("inputUpdateMenuItem").(model.UpdateMenuItemInput)
	if !ok {
		return utils.ErrorResponseCode(c, fiber.StatusBadRequest, constants.CODE_VALIDATION_ERROR, "Invalid input", nil)
	}

	var item model.MenuItem
	if err := database.DB.First(&item, c.Params("itemId")).Error; err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusNotFound, constants.CODE_NOT_FOUND, constants.MENU_ITEM_NOT_FOUND, err)
	}

	if err := copier.CopyWithOption(&item, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusInternalServerError, constants.CODE_PERSISTENCE_ERROR, constants.ERROR_INTERNAL_ERROR, err)
	}
	// copier bỏ qua false/0, các cờ boolean phải gán tay
	if input.Available != nil {
		item.Available = *input.Available
	}
	if input.AvailableTakeaway != nil {
		item.AvailableTakeaway = *input.AvailableTakeaway
	}
	if input.TakeawayOnly != nil {
		item.TakeawayOnly = *input.TakeawayOnly
	}
	if input.Active != nil {
		item.Active = *input.Active
	}
	if input.Name != nil {
		item.Slug = slug.Make(*input.Name)
	}

	if err := database.DB.Omit("Category").Save(&item).Error; err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusInternalServerError, constants.CODE_PERSISTENCE_ERROR, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, item)
}

func DeleteMenuItem(c *fiber.Ctx) error {
	_, _, isAdmin, isManager := helper.GetInfoUserFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponseCode(c, fiber.StatusForbidden, constants.CODE_PERMISSION_ERROR, constants.NOT_ADMIN_OR_MANAGER, nil)
	}

	var item model.MenuItem
	if err := database.DB.First(&item, c.Params("itemId")).Error; err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusNotFound, constants.CODE_NOT_FOUND, constants.MENU_ITEM_NOT_FOUND, err)
	}

	// Soft delete để giữ lịch sử đơn cũ
	if err := database.DB.Model(&item).Update("active", false).Error; err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusInternalServerError, constants.CODE_PERSISTENCE_ERROR, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": item.ID})
}

// UploadMenuItemImage đẩy ảnh món lên Cloudinary rồi lưu URL
func UploadMenuItemImage(c *fiber.Ctx) error {
	_, _, isAdmin, isManager := helper.GetInfoUserFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponseCode(c, fiber.StatusForbidden, constants.CODE_PERMISSION_ERROR, constants.NOT_ADMIN_OR_MANAGER, nil)
	}

	var item model.MenuItem
	if err := database.DB.First(&item, c.Params("itemId")).Error; err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusNotFound, constants.CODE_NOT_FOUND, constants.MENU_ITEM_NOT_FOUND, err)
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusBadRequest, constants.CODE_VALIDATION_ERROR, "Image file is required", err)
	}
	file, err := fileHeader.Open()
	if err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusBadRequest, constants.CODE_VALIDATION_ERROR, "Cannot read image file", err)
	}
	defer file.Close()

	cld := helper.InitCloudinary()
	result, err := cld.Upload.Upload(context.Background(), file, uploader.UploadParams{
		Folder:   "menu_items",
		PublicID: fmt.Sprintf("menu_item_%d", item.ID),
	})
	if err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusBadGateway, constants.CODE_PERSISTENCE_ERROR, "Image upload failed", err)
	}

	if err := database.DB.Model(&item).Update("image_url", result.SecureURL).Error; err != nil {
		return utils.ErrorResponseCode(c, fiber.StatusInternalServerError, constants.CODE_PERSISTENCE_ERROR, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"imageUrl": result.SecureURL,
	})
}

// GenerateSignature ký tham số upload để client đẩy thẳng lên Cloudinary
func GenerateSignature(c *fiber.Ctx) error {
	_, _, isAdmin, isManager := helper.GetInfoUserFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponseCode(c, fiber.StatusForbidden, constants.CODE_PERMISSION_ERROR, constants.NOT_ADMIN_OR_MANAGER, nil)
	}

	var body map[string]string
	if err := c.BodyParser(&body); err != nil {
		body = map[string]string{}
	}

	params := map[string]string{
		"timestamp": fmt.Sprintf("%d", time.Now().Unix()),
		"folder":    "menu_items",
	}
	for k, v := range body {
		if v != "" {
			params[k] = v
		}
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%s", k, params[k]))
	}
	toSign := strings.Join(parts, "&") + helper.CloudinaryAPISecret()

	hash := sha1.Sum([]byte(toSign))
	signature := hex.EncodeToString(hash[:])

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"signature": signature,
		"timestamp": params["timestamp"],
		"folder":    params["folder"],
	})
}
