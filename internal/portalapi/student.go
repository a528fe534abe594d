package portalapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/powerfitbr/powerfit/internal/domain"
	"github.com/powerfitbr/powerfit/internal/webserver"
)

const studentTokenTTL = 24 * time.Hour

type loginPayload struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

func (h *handler) login(c echo.Context) error {
	var payload loginPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse credentials", nil)
	}

	sess := h.app.StudentSession()
	if !sess.Login(payload.Username, payload.Password) {
		state := sess.State()
		msg := "invalid credentials"
		if state.Error != nil {
			msg = *state.Error
		}
		return fail(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", msg, nil)
	}

	token, err := h.ws.IssueToken(payload.Username, webserver.RoleStudent, studentTokenTTL)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "TOKEN_ERROR", "Failed to issue token", nil)
	}

	state := sess.State()
	return ok(c, map[string]interface{}{
		"token":   token,
		"student": state.Identity,
	})
}

func (h *handler) logout(c echo.Context) error {
	h.app.StudentSession().Logout()
	return ok(c, nil)
}

func (h *handler) session(c echo.Context) error {
	return ok(c, h.app.StudentSession().State())
}

func (h *handler) clearError(c echo.Context) error {
	h.app.StudentSession().ClearError()
	return ok(c, nil)
}

func (h *handler) profile(c echo.Context) error {
	state := h.app.StudentSession().State()
	if state.Identity == nil {
		return fail(c, http.StatusConflict, "NOT_AUTHENTICATED", "No active student session", nil)
	}
	return ok(c, state.Identity)
}

type studentProfilePayload struct {
	Name    *string         `json:"name"`
	Email   *string         `json:"email"`
	Phone   *string         `json:"phone"`
	Photo   *string         `json:"photo"`
	Address *domain.Address `json:"address"`
}

// updateProfile applies a typed partial update onto the student identity.
// Plan dates, measurements and workouts are read-only from this endpoint.
func (h *handler) updateProfile(c echo.Context) error {
	var payload studentProfilePayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse profile", nil)
	}

	applied := h.app.StudentSession().Update(func(identity *domain.StudentIdentity) {
		if payload.Name != nil {
			identity.Name = *payload.Name
		}
		if payload.Email != nil {
			identity.Email = *payload.Email
		}
		if payload.Phone != nil {
			identity.Phone = *payload.Phone
		}
		if payload.Photo != nil {
			identity.Photo = *payload.Photo
		}
		if payload.Address != nil {
			identity.Address = *payload.Address
		}
	})
	if !applied {
		return fail(c, http.StatusConflict, "NOT_AUTHENTICATED", "No active student session", nil)
	}
	return ok(c, h.app.StudentSession().State().Identity)
}

func (h *handler) workouts(c echo.Context) error {
	state := h.app.StudentSession().State()
	if state.Identity == nil {
		return fail(c, http.StatusConflict, "NOT_AUTHENTICATED", "No active student session", nil)
	}
	return ok(c, state.Identity.Workouts)
}

func (h *handler) measurements(c echo.Context) error {
	state := h.app.StudentSession().State()
	if state.Identity == nil {
		return fail(c, http.StatusConflict, "NOT_AUTHENTICATED", "No active student session", nil)
	}
	return ok(c, state.Identity.Measurements)
}
