package adminapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/powerfitbr/powerfit/internal/domain"
	"github.com/powerfitbr/powerfit/pkg/common"
)

type planPayload struct {
	Name         string  `json:"name" form:"name"`
	Price        float64 `json:"price" form:"price"`
	DurationDays int     `json:"duration_days" form:"duration_days"`
	Description  string  `json:"description" form:"description"`
	Features     string  `json:"features" form:"features"`
	Highlight    *bool   `json:"highlight" form:"highlight"`
	Status       string  `json:"status" form:"status"`
}

func (h *handler) listPlans(c echo.Context) error {
	page, pageSize := parsePagination(c)
	q := strings.TrimSpace(c.QueryParam("q"))

	db := h.app.DB().Model(&domain.MembershipPlan{})
	if q != "" {
		db = db.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(q)+"%")
	}
	if status := strings.TrimSpace(c.QueryParam("status")); status != "" {
		db = db.Where("status = ?", status)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query plans", err.Error())
	}
	var rows []domain.MembershipPlan
	if err := db.Order("price ASC").Offset((page - 1) * pageSize).Limit(pageSize).Find(&rows).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query plans", err.Error())
	}
	return paged(c, rows, total, page, pageSize)
}

func (h *handler) getPlan(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid plan ID", nil)
	}
	var plan domain.MembershipPlan
	if err := h.app.DB().Where("id = ?", id).First(&plan).Error; err != nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Plan not found", nil)
	}
	return ok(c, plan)
}

func (h *handler) createPlan(c echo.Context) error {
	var payload planPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse plan", nil)
	}
	payload.Name = strings.TrimSpace(payload.Name)
	if payload.Name == "" {
		return fail(c, http.StatusBadRequest, "MISSING_NAME", "Plan name is required", nil)
	}
	if payload.Price < 0 {
		return fail(c, http.StatusBadRequest, "INVALID_PRICE", "Price must not be negative", nil)
	}

	plan := domain.MembershipPlan{
		ID:           common.UUIDint64(),
		Name:         payload.Name,
		Price:        payload.Price,
		DurationDays: payload.DurationDays,
		Description:  payload.Description,
		Features:     payload.Features,
		Status:       defaultStatus(payload.Status),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if payload.Highlight != nil {
		plan.Highlight = *payload.Highlight
	}
	if err := h.app.DB().Create(&plan).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create plan", err.Error())
	}
	return ok(c, plan)
}

func (h *handler) updatePlan(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid plan ID", nil)
	}
	var plan domain.MembershipPlan
	if err := h.app.DB().Where("id = ?", id).First(&plan).Error; err != nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Plan not found", nil)
	}
	var payload planPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse plan", nil)
	}

	updates := map[string]interface{}{"updated_at": time.Now()}
	if payload.Name != "" {
		updates["name"] = strings.TrimSpace(payload.Name)
	}
	if payload.Price > 0 {
		updates["price"] = payload.Price
	}
	if payload.DurationDays > 0 {
		updates["duration_days"] = payload.DurationDays
	}
	if payload.Description != "" {
		updates["description"] = payload.Description
	}
	if payload.Features != "" {
		updates["features"] = payload.Features
	}
	if payload.Highlight != nil {
		updates["highlight"] = *payload.Highlight
	}
	if payload.Status != "" {
		updates["status"] = payload.Status
	}

	if err := h.app.DB().Model(&plan).Updates(updates).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update plan", err.Error())
	}
	h.app.DB().Where("id = ?", id).First(&plan)
	return ok(c, plan)
}

func (h *handler) deletePlan(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid plan ID", nil)
	}
	if err := h.app.DB().Where("id = ?", id).Delete(&domain.MembershipPlan{}).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete plan", err.Error())
	}
	return ok(c, map[string]interface{}{"id": id})
}
