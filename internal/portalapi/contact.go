package portalapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/powerfitbr/powerfit/internal/domain"
)

type contactPayload struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Phone   string `json:"phone" form:"phone"`
	Subject string `json:"subject" form:"subject"`
	Message string `json:"message" form:"message"`
}

// submitContact accepts a contact-form submission. Id, date and status are
// assigned by the container; the form never supplies them.
func (h *handler) submitContact(c echo.Context) error {
	var payload contactPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse contact form", nil)
	}

	payload.Name = strings.TrimSpace(payload.Name)
	payload.Email = strings.TrimSpace(payload.Email)
	payload.Subject = strings.TrimSpace(payload.Subject)
	payload.Message = strings.TrimSpace(payload.Message)
	if payload.Name == "" || payload.Email == "" || payload.Subject == "" || payload.Message == "" {
		return fail(c, http.StatusBadRequest, "MISSING_FIELDS", "Name, email, subject and message are required", nil)
	}
	if !strings.Contains(payload.Email, "@") {
		return fail(c, http.StatusBadRequest, "INVALID_EMAIL", "Email address is not valid", nil)
	}

	msg, err := h.app.Contacts().Add(domain.ContactMessage{
		Name:    payload.Name,
		Email:   payload.Email,
		Phone:   strings.TrimSpace(payload.Phone),
		Subject: payload.Subject,
		Message: payload.Message,
	})
	if err != nil {
		return fail(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to store message", nil)
	}
	return ok(c, msg)
}
