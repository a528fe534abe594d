package adminapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/powerfitbr/powerfit/internal/domain"
)

var productCategories = map[string]bool{
	"supplement": true,
	"apparel":    true,
	"accessory":  true,
}

type productPayload struct {
	Name     string   `json:"name" form:"name"`
	Price    *float64 `json:"price" form:"price"`
	Image    string   `json:"image" form:"image"`
	Category string   `json:"category" form:"category"`
	Stock    *int     `json:"stock" form:"stock"`
	Status   string   `json:"status" form:"status"`
}

func (h *handler) listProducts(c echo.Context) error {
	page, pageSize := parsePagination(c)

	db := h.app.DB().Model(&domain.Product{})
	if q := strings.TrimSpace(c.QueryParam("q")); q != "" {
		db = db.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(q)+"%")
	}
	if category := strings.TrimSpace(c.QueryParam("category")); category != "" {
		db = db.Where("category = ?", category)
	}
	if status := strings.TrimSpace(c.QueryParam("status")); status != "" {
		db = db.Where("status = ?", status)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query products", err.Error())
	}
	var rows []domain.Product
	if err := db.Order("id").Offset((page - 1) * pageSize).Limit(pageSize).Find(&rows).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query products", err.Error())
	}
	return paged(c, rows, total, page, pageSize)
}

func (h *handler) getProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}
	var p domain.Product
	if err := h.app.DB().Where("id = ?", id).First(&p).Error; err != nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Product not found", nil)
	}
	return ok(c, p)
}

func (h *handler) createProduct(c echo.Context) error {
	var payload productPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse product", nil)
	}
	payload.Name = strings.TrimSpace(payload.Name)
	if payload.Name == "" {
		return fail(c, http.StatusBadRequest, "MISSING_NAME", "Product name is required", nil)
	}
	if payload.Price == nil || *payload.Price < 0 {
		return fail(c, http.StatusBadRequest, "INVALID_PRICE", "Price must be zero or positive", nil)
	}
	category := strings.ToLower(strings.TrimSpace(payload.Category))
	if !productCategories[category] {
		return fail(c, http.StatusBadRequest, "INVALID_CATEGORY",
			"Category must be one of supplement, apparel, accessory", payload.Category)
	}

	p := domain.Product{
		Name:      payload.Name,
		Price:     *payload.Price,
		Image:     payload.Image,
		Category:  category,
		Stock:     payload.Stock,
		Status:    defaultStatus(payload.Status),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := h.app.DB().Create(&p).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create product", err.Error())
	}
	return ok(c, p)
}

func (h *handler) updateProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}
	var p domain.Product
	if err := h.app.DB().Where("id = ?", id).First(&p).Error; err != nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Product not found", nil)
	}
	var payload productPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse product", nil)
	}

	updates := map[string]interface{}{"updated_at": time.Now()}
	if payload.Name != "" {
		updates["name"] = strings.TrimSpace(payload.Name)
	}
	if payload.Price != nil {
		if *payload.Price < 0 {
			return fail(c, http.StatusBadRequest, "INVALID_PRICE", "Price must be zero or positive", nil)
		}
		updates["price"] = *payload.Price
	}
	if payload.Image != "" {
		updates["image"] = payload.Image
	}
	if payload.Category != "" {
		category := strings.ToLower(strings.TrimSpace(payload.Category))
		if !productCategories[category] {
			return fail(c, http.StatusBadRequest, "INVALID_CATEGORY",
				"Category must be one of supplement, apparel, accessory", payload.Category)
		}
		updates["category"] = category
	}
	if payload.Stock != nil {
		updates["stock"] = *payload.Stock
	}
	if payload.Status != "" {
		updates["status"] = payload.Status
	}

	if err := h.app.DB().Model(&p).Updates(updates).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update product", err.Error())
	}
	h.app.DB().Where("id = ?", id).First(&p)
	return ok(c, p)
}

func (h *handler) deleteProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}
	if err := h.app.DB().Where("id = ?", id).Delete(&domain.Product{}).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete product", err.Error())
	}
	return ok(c, map[string]interface{}{"id": id})
}
