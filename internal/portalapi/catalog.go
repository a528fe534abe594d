package portalapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/powerfitbr/powerfit/internal/domain"
	"github.com/powerfitbr/powerfit/pkg/common"
)

// listProducts serves the storefront catalog. Only enabled products are
// visible here; the admin console sees everything.
func (h *handler) listProducts(c echo.Context) error {
	page, pageSize := parsePagination(c)

	db := h.app.DB().Model(&domain.Product{}).Where("status = ?", common.ENABLED)
	if category := strings.TrimSpace(c.QueryParam("category")); category != "" {
		db = db.Where("category = ?", category)
	}
	if q := strings.TrimSpace(c.QueryParam("q")); q != "" {
		db = db.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(q)+"%")
	}

	sortCol := "id"
	switch c.QueryParam("sort") {
	case "name":
		sortCol = "name"
	case "price":
		sortCol = "price"
	}
	order := "ASC"
	if strings.EqualFold(c.QueryParam("order"), "desc") {
		order = "DESC"
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query products", nil)
	}
	var rows []domain.Product
	if err := db.Order(sortCol + " " + order).Offset((page - 1) * pageSize).Limit(pageSize).Find(&rows).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query products", nil)
	}
	return paged(c, rows, total, page, pageSize)
}

func (h *handler) listPlans(c echo.Context) error {
	var rows []domain.MembershipPlan
	err := h.app.DB().Where("status = ?", common.ENABLED).Order("price ASC").Find(&rows).Error
	if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query plans", nil)
	}
	return ok(c, rows)
}

func (h *handler) listClasses(c echo.Context) error {
	db := h.app.DB().Where("status = ?", common.ENABLED)
	if weekday := strings.ToLower(strings.TrimSpace(c.QueryParam("weekday"))); weekday != "" {
		db = db.Where("weekday = ?", weekday)
	}
	var rows []domain.GymClass
	if err := db.Order("weekday, start_time").Find(&rows).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query classes", nil)
	}
	return ok(c, rows)
}

// siteInfo exposes the public site settings used by the storefront footer.
func (h *handler) siteInfo(c echo.Context) error {
	return ok(c, map[string]interface{}{
		"name":          h.app.GetSettingsStringValue("site", "Name"),
		"slogan":        h.app.GetSettingsStringValue("site", "Slogan"),
		"contact_email": h.app.GetSettingsStringValue("site", "ContactEmail"),
		"contact_phone": h.app.GetSettingsStringValue("site", "ContactPhone"),
		"address":       h.app.GetSettingsStringValue("site", "Address"),
		"opening_hours": h.app.GetSettingsStringValue("site", "OpeningHours"),
		"instagram":     h.app.GetSettingsStringValue("site", "Instagram"),
	})
}
