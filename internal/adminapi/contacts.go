package adminapi

import (
	"net/http"
	"sort"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/powerfitbr/powerfit/internal/store"
)

// listContacts pages through the inbox, most recent first. Filtering and
// ordering happen here: the container keeps insertion order only.
func (h *handler) listContacts(c echo.Context) error {
	page, pageSize := parsePagination(c)
	status := strings.TrimSpace(c.QueryParam("status"))
	q := strings.ToLower(strings.TrimSpace(c.QueryParam("q")))

	contacts := h.app.Contacts().List()

	filtered := contacts[:0]
	for _, msg := range contacts {
		if status != "" && msg.Status != status {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(msg.Name), q) &&
			!strings.Contains(strings.ToLower(msg.Email), q) &&
			!strings.Contains(strings.ToLower(msg.Subject), q) {
			continue
		}
		filtered = append(filtered, msg)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date > filtered[j].Date
	})

	total := int64(len(filtered))
	start := (page - 1) * pageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + pageSize
	if end > len(filtered) {
		end = len(filtered)
	}

	return paged(c, filtered[start:end], total, page, pageSize)
}

type contactStatusPayload struct {
	Status string `json:"status" form:"status"`
}

func (h *handler) updateContactStatus(c echo.Context) error {
	id := c.Param("id")
	var payload contactStatusPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse status", nil)
	}

	if err := h.app.Contacts().UpdateStatus(id, payload.Status); err != nil {
		if errors.Is(err, store.ErrInvalidStatus) {
			return fail(c, http.StatusBadRequest, "INVALID_STATUS",
				"Status must be one of novo, em andamento, resolvido", payload.Status)
		}
		return fail(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to update contact", err.Error())
	}

	msg, found := h.app.Contacts().Get(id)
	if !found {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Contact not found", nil)
	}
	return ok(c, msg)
}

func (h *handler) deleteContact(c echo.Context) error {
	id := c.Param("id")
	h.app.Contacts().Delete(id)
	return ok(c, map[string]interface{}{"id": id})
}

// clearContacts wipes the inbox. The confirmation dialog lives in the
// console UI; the API call is unconditional.
func (h *handler) clearContacts(c echo.Context) error {
	h.app.Contacts().Clear()
	return ok(c, nil)
}

func (h *handler) exportContacts(c echo.Context) error {
	contacts := h.app.Contacts().List()
	sort.SliceStable(contacts, func(i, j int) bool {
		return contacts[i].Date > contacts[j].Date
	})

	out, err := gocsv.MarshalString(&contacts)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "EXPORT_ERROR", "Failed to export contacts", err.Error())
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="contacts.csv"`)
	return c.Blob(http.StatusOK, "text/csv", []byte(out))
}
