package adminapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/powerfitbr/powerfit/internal/domain"
	"github.com/powerfitbr/powerfit/pkg/common"
)

var weekdays = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
}

type classPayload struct {
	Name       string `json:"name" form:"name"`
	Instructor string `json:"instructor" form:"instructor"`
	Weekday    string `json:"weekday" form:"weekday"`
	StartTime  string `json:"start_time" form:"start_time"`
	EndTime    string `json:"end_time" form:"end_time"`
	Capacity   int    `json:"capacity" form:"capacity"`
	Room       string `json:"room" form:"room"`
	Status     string `json:"status" form:"status"`
}

func (h *handler) listClasses(c echo.Context) error {
	page, pageSize := parsePagination(c)

	db := h.app.DB().Model(&domain.GymClass{})
	if weekday := strings.ToLower(strings.TrimSpace(c.QueryParam("weekday"))); weekday != "" {
		db = db.Where("weekday = ?", weekday)
	}
	if instructor := strings.TrimSpace(c.QueryParam("instructor")); instructor != "" {
		db = db.Where("instructor = ?", instructor)
	}
	if status := strings.TrimSpace(c.QueryParam("status")); status != "" {
		db = db.Where("status = ?", status)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query classes", err.Error())
	}
	var rows []domain.GymClass
	if err := db.Order("weekday, start_time").Offset((page - 1) * pageSize).Limit(pageSize).Find(&rows).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query classes", err.Error())
	}
	return paged(c, rows, total, page, pageSize)
}

func (h *handler) getClass(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid class ID", nil)
	}
	var gc domain.GymClass
	if err := h.app.DB().Where("id = ?", id).First(&gc).Error; err != nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Class not found", nil)
	}
	return ok(c, gc)
}

func (h *handler) createClass(c echo.Context) error {
	var payload classPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse class", nil)
	}
	payload.Name = strings.TrimSpace(payload.Name)
	if payload.Name == "" {
		return fail(c, http.StatusBadRequest, "MISSING_NAME", "Class name is required", nil)
	}
	payload.Weekday = strings.ToLower(strings.TrimSpace(payload.Weekday))
	if !weekdays[payload.Weekday] {
		return fail(c, http.StatusBadRequest, "INVALID_WEEKDAY", "Weekday must be monday through sunday", payload.Weekday)
	}

	gc := domain.GymClass{
		ID:         common.UUIDint64(),
		Name:       payload.Name,
		Instructor: payload.Instructor,
		Weekday:    payload.Weekday,
		StartTime:  payload.StartTime,
		EndTime:    payload.EndTime,
		Capacity:   payload.Capacity,
		Room:       payload.Room,
		Status:     defaultStatus(payload.Status),
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	if err := h.app.DB().Create(&gc).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create class", err.Error())
	}
	return ok(c, gc)
}

func (h *handler) updateClass(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid class ID", nil)
	}
	var gc domain.GymClass
	if err := h.app.DB().Where("id = ?", id).First(&gc).Error; err != nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Class not found", nil)
	}
	var payload classPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse class", nil)
	}

	updates := map[string]interface{}{"updated_at": time.Now()}
	if payload.Name != "" {
		updates["name"] = strings.TrimSpace(payload.Name)
	}
	if payload.Instructor != "" {
		updates["instructor"] = payload.Instructor
	}
	if payload.Weekday != "" {
		weekday := strings.ToLower(strings.TrimSpace(payload.Weekday))
		if !weekdays[weekday] {
			return fail(c, http.StatusBadRequest, "INVALID_WEEKDAY", "Weekday must be monday through sunday", payload.Weekday)
		}
		updates["weekday"] = weekday
	}
	if payload.StartTime != "" {
		updates["start_time"] = payload.StartTime
	}
	if payload.EndTime != "" {
		updates["end_time"] = payload.EndTime
	}
	if payload.Capacity > 0 {
		updates["capacity"] = payload.Capacity
	}
	if payload.Room != "" {
		updates["room"] = payload.Room
	}
	if payload.Status != "" {
		updates["status"] = payload.Status
	}

	if err := h.app.DB().Model(&gc).Updates(updates).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update class", err.Error())
	}
	h.app.DB().Where("id = ?", id).First(&gc)
	return ok(c, gc)
}

func (h *handler) deleteClass(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid class ID", nil)
	}
	if err := h.app.DB().Where("id = ?", id).Delete(&domain.GymClass{}).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete class", err.Error())
	}
	return ok(c, map[string]interface{}{"id": id})
}
