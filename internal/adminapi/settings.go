package adminapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cast"
	"go.uber.org/zap"
)

// SiteSettings is the typed view of the 'site' settings category shown on
// the storefront footer and contact page.
type SiteSettings struct {
	Name         string `json:"name" mapstructure:"Name"`
	Slogan       string `json:"slogan" mapstructure:"Slogan"`
	ContactEmail string `json:"contact_email" mapstructure:"ContactEmail"`
	ContactPhone string `json:"contact_phone" mapstructure:"ContactPhone"`
	Address      string `json:"address" mapstructure:"Address"`
	OpeningHours string `json:"opening_hours" mapstructure:"OpeningHours"`
	Instagram    string `json:"instagram" mapstructure:"Instagram"`
}

func (h *handler) getSettings(c echo.Context) error {
	category := strings.TrimSpace(c.Param("category"))
	rows, err := h.app.ConfigMgr().ListByCategory(category)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query settings", err.Error())
	}
	if len(rows) == 0 {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Unknown settings category", category)
	}

	values := map[string]string{}
	for _, row := range rows {
		values[row.Name] = row.Value
	}

	if category == "site" {
		var site SiteSettings
		if derr := mapstructure.Decode(values, &site); derr == nil {
			return ok(c, site)
		} else {
			zap.L().Warn("site settings decode failed", zap.Error(derr))
		}
	}
	return ok(c, values)
}

// saveSettings accepts a flat name/value object and writes each known
// setting of the category. Unknown names are ignored.
func (h *handler) saveSettings(c echo.Context) error {
	category := strings.TrimSpace(c.Param("category"))
	rows, err := h.app.ConfigMgr().ListByCategory(category)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query settings", err.Error())
	}
	if len(rows) == 0 {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Unknown settings category", category)
	}

	var payload map[string]interface{}
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse settings", nil)
	}

	known := map[string]bool{}
	for _, row := range rows {
		known[row.Name] = true
	}

	var saved int
	for name, value := range payload {
		if !known[name] {
			continue
		}
		if err := h.app.ConfigMgr().SetValue(category, name, cast.ToString(value)); err != nil {
			return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to save setting", name)
		}
		saved++
	}
	h.app.ConfigMgr().Reload()
	return ok(c, map[string]interface{}{"saved": saved})
}
