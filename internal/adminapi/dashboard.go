package adminapi

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/powerfitbr/powerfit/internal/domain"
	"github.com/powerfitbr/powerfit/pkg/common"
	"github.com/powerfitbr/powerfit/pkg/metrics"
)

// dashboard aggregates the counters shown on the console landing page.
// Database counts are live; cpu and memory come from the metrics store
// sampled by the monitor job.
func (h *handler) dashboard(c echo.Context) error {
	db := h.app.DB()

	var memberTotal, memberActive, planTotal, classTotal, productTotal int64
	db.Model(&domain.Member{}).Count(&memberTotal)
	db.Model(&domain.Member{}).Where("status = ?", common.ENABLED).Count(&memberActive)
	db.Model(&domain.MembershipPlan{}).Count(&planTotal)
	db.Model(&domain.GymClass{}).Count(&classTotal)
	db.Model(&domain.Product{}).Count(&productTotal)

	contacts := h.app.Contacts()
	cart := h.app.Cart()
	hourAgo := time.Now().Add(-time.Hour)

	return ok(c, map[string]interface{}{
		"members": map[string]interface{}{
			"total":  memberTotal,
			"active": memberActive,
		},
		"catalog": map[string]interface{}{
			"plans":    planTotal,
			"classes":  classTotal,
			"products": productTotal,
		},
		"contacts": map[string]interface{}{
			"total":       contacts.CountByStatus(""),
			"new":         contacts.CountByStatus(domain.ContactStatusNew),
			"in_progress": contacts.CountByStatus(domain.ContactStatusInProgress),
			"resolved":    contacts.CountByStatus(domain.ContactStatusResolved),
		},
		"cart": map[string]interface{}{
			"items": cart.ItemCount(),
			"total": cart.Total(),
		},
		"system": map[string]interface{}{
			"cpu_use":      metrics.Latest(metrics.SystemCpuUse),
			"mem_use":      metrics.Latest(metrics.SystemMemUse),
			"cpu_use_avg":  metrics.Mean(metrics.SystemCpuUse, hourAgo),
			"mem_use_avg":  metrics.Mean(metrics.SystemMemUse, hourAgo),
			"contacts_avg": metrics.Mean(metrics.ContactsTotal, hourAgo),
		},
	})
}
