package adminapi

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/araddon/dateparse"
	"github.com/gocarina/gocsv"
	"github.com/labstack/echo/v4"
	"github.com/powerfitbr/powerfit/internal/domain"
	"github.com/powerfitbr/powerfit/pkg/common"
	"go.uber.org/zap"
)

type memberPayload struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	BirthDate string `json:"birth_date"`
	Plan      string `json:"plan"`
	PlanStart string `json:"plan_start"`
	PlanEnd   string `json:"plan_end"`
	Status    string `json:"status"`
	Remark    string `json:"remark"`
}

func (h *handler) listMembers(c echo.Context) error {
	page, pageSize := parsePagination(c)

	q := strings.TrimSpace(c.QueryParam("q"))
	status := strings.TrimSpace(c.QueryParam("status"))
	plan := strings.TrimSpace(c.QueryParam("plan"))

	sortField := strings.TrimSpace(c.QueryParam("sort"))
	order := strings.ToUpper(strings.TrimSpace(c.QueryParam("order")))
	if order != "ASC" && order != "DESC" {
		order = "DESC"
	}
	allowed := map[string]string{
		"id":         "id",
		"name":       "name",
		"email":      "email",
		"plan":       "plan",
		"created_at": "created_at",
	}
	sortCol, okCol := allowed[sortField]
	if !okCol {
		sortCol = "id"
	}

	db := h.app.DB().Model(&domain.Member{})
	if q != "" {
		db = db.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?",
			"%"+strings.ToLower(q)+"%", "%"+strings.ToLower(q)+"%")
	}
	if status != "" {
		db = db.Where("status = ?", status)
	}
	if plan != "" {
		db = db.Where("plan = ?", plan)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query members", err.Error())
	}

	var rows []domain.Member
	if err := db.Order(sortCol + " " + order).Offset((page - 1) * pageSize).Limit(pageSize).Find(&rows).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query members", err.Error())
	}
	return paged(c, rows, total, page, pageSize)
}

func (h *handler) getMember(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid member ID", nil)
	}
	var m domain.Member
	if err := h.app.DB().Where("id = ?", id).First(&m).Error; err != nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Member not found", nil)
	}
	return ok(c, m)
}

func (h *handler) createMember(c echo.Context) error {
	var payload memberPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse member", nil)
	}
	payload.Name = strings.TrimSpace(payload.Name)
	if payload.Name == "" {
		return fail(c, http.StatusBadRequest, "MISSING_NAME", "Member name is required", nil)
	}
	if payload.Email != "" {
		var dup domain.Member
		if err := h.app.DB().Where("email = ?", payload.Email).First(&dup).Error; err == nil {
			return fail(c, http.StatusConflict, "DUPLICATE_MEMBER", "Member with this email already exists", nil)
		}
	}

	m := domain.Member{
		ID:        common.UUIDint64(),
		Name:      payload.Name,
		Email:     payload.Email,
		Phone:     payload.Phone,
		Plan:      payload.Plan,
		Status:    defaultStatus(payload.Status),
		Remark:    payload.Remark,
		BirthDate: parseDateField(payload.BirthDate),
		PlanStart: parseDateField(payload.PlanStart),
		PlanEnd:   parseDateField(payload.PlanEnd),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := h.app.DB().Create(&m).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create member", err.Error())
	}
	return ok(c, m)
}

func (h *handler) updateMember(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid member ID", nil)
	}
	var m domain.Member
	if err := h.app.DB().Where("id = ?", id).First(&m).Error; err != nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Member not found", nil)
	}
	var payload memberPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse member", nil)
	}

	updates := map[string]interface{}{"updated_at": time.Now()}
	if payload.Name != "" {
		updates["name"] = strings.TrimSpace(payload.Name)
	}
	if payload.Email != "" {
		var dup domain.Member
		if err := h.app.DB().Where("email = ? AND id != ?", payload.Email, id).First(&dup).Error; err == nil {
			return fail(c, http.StatusConflict, "DUPLICATE_MEMBER", "Another member with this email already exists", nil)
		}
		updates["email"] = payload.Email
	}
	if payload.Phone != "" {
		updates["phone"] = payload.Phone
	}
	if payload.Plan != "" {
		updates["plan"] = payload.Plan
	}
	if payload.Status != "" {
		updates["status"] = payload.Status
	}
	if payload.Remark != "" {
		updates["remark"] = payload.Remark
	}
	if t := parseDateField(payload.BirthDate); t != nil {
		updates["birth_date"] = t
	}
	if t := parseDateField(payload.PlanStart); t != nil {
		updates["plan_start"] = t
	}
	if t := parseDateField(payload.PlanEnd); t != nil {
		updates["plan_end"] = t
	}

	if err := h.app.DB().Model(&m).Updates(updates).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update member", err.Error())
	}
	h.app.DB().Where("id = ?", id).First(&m)
	return ok(c, m)
}

func (h *handler) deleteMember(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid member ID", nil)
	}
	if err := h.app.DB().Where("id = ?", id).Delete(&domain.Member{}).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete member", err.Error())
	}
	return ok(c, map[string]interface{}{"id": id})
}

// importMembers accepts a CSV upload (name,email,phone,birth_date,plan,status)
// and creates missing members. Rows with a known email are skipped.
func (h *handler) importMembers(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return fail(c, http.StatusBadRequest, "MISSING_FILE", "CSV file is required", nil)
	}
	src, err := file.Open()
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_FILE", "Unable to open upload", err.Error())
	}
	defer src.Close()

	var rows []domain.MemberImportRow
	if err := gocsv.Unmarshal(src, &rows); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_CSV", "Unable to parse CSV", err.Error())
	}

	var created, skipped int
	for _, row := range rows {
		name := strings.TrimSpace(row.Name)
		if name == "" {
			skipped++
			continue
		}
		if row.Email != "" {
			var dup domain.Member
			if err := h.app.DB().Where("email = ?", row.Email).First(&dup).Error; err == nil {
				skipped++
				continue
			}
		}
		m := domain.Member{
			ID:        common.UUIDint64(),
			Name:      name,
			Email:     row.Email,
			Phone:     row.Phone,
			Plan:      row.Plan,
			Status:    defaultStatus(row.Status),
			BirthDate: parseDateField(row.BirthDate),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := h.app.DB().Create(&m).Error; err != nil {
			zap.L().Warn("member import row failed", zap.String("name", name), zap.Error(err))
			skipped++
			continue
		}
		created++
	}
	return ok(c, map[string]interface{}{"created": created, "skipped": skipped})
}

func (h *handler) exportMembers(c echo.Context) error {
	var members []domain.Member
	if err := h.app.DB().Order("id").Find(&members).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query members", err.Error())
	}

	xlsx := excelize.NewFile()
	headers := []string{"ID", "Name", "Email", "Phone", "Plan", "Status", "Created At"}
	for col, header := range headers {
		xlsx.SetCellValue("Sheet1", fmt.Sprintf("%c1", 'A'+col), header)
	}
	for i, m := range members {
		row := i + 2
		xlsx.SetCellValue("Sheet1", fmt.Sprintf("A%d", row), m.ID)
		xlsx.SetCellValue("Sheet1", fmt.Sprintf("B%d", row), m.Name)
		xlsx.SetCellValue("Sheet1", fmt.Sprintf("C%d", row), m.Email)
		xlsx.SetCellValue("Sheet1", fmt.Sprintf("D%d", row), m.Phone)
		xlsx.SetCellValue("Sheet1", fmt.Sprintf("E%d", row), m.Plan)
		xlsx.SetCellValue("Sheet1", fmt.Sprintf("F%d", row), m.Status)
		xlsx.SetCellValue("Sheet1", fmt.Sprintf("G%d", row), m.CreatedAt.Format(time.RFC3339))
	}

	var buf bytes.Buffer
	if err := xlsx.Write(&buf); err != nil {
		return fail(c, http.StatusInternalServerError, "EXPORT_ERROR", "Failed to export members", err.Error())
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="members.xlsx"`)
	return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func defaultStatus(status string) string {
	if status == "" {
		return common.ENABLED
	}
	return status
}

// parseDateField accepts loose date formats ("1995-06-15", "15/06/1995",
// "Jun 15 1995") and returns nil for blank or unparseable input.
func parseDateField(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return nil
	}
	return &t
}
