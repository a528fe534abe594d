package adminapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/powerfitbr/powerfit/internal/domain"
	"github.com/powerfitbr/powerfit/internal/webserver"
	"github.com/powerfitbr/powerfit/pkg/common"
)

const adminTokenTTL = 8 * time.Hour

type loginPayload struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

func (h *handler) login(c echo.Context) error {
	var payload loginPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse credentials", nil)
	}

	sess := h.app.AdminSession()
	if !sess.Login(payload.Username, payload.Password) {
		state := sess.State()
		msg := "invalid credentials"
		if state.Error != nil {
			msg = *state.Error
		}
		return fail(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", msg, nil)
	}

	token, err := h.ws.IssueToken(payload.Username, webserver.RoleAdmin, adminTokenTTL)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "TOKEN_ERROR", "Failed to issue token", err.Error())
	}

	h.app.DB().Create(&domain.SysOprLog{
		ID:        common.UUIDint64(),
		OprName:   payload.Username,
		OprIp:     c.RealIP(),
		OptAction: "login",
		OptDesc:   "admin console login",
		OptTime:   time.Now(),
	})

	state := sess.State()
	return ok(c, map[string]interface{}{
		"token": token,
		"admin": state.Identity,
	})
}

func (h *handler) logout(c echo.Context) error {
	h.app.AdminSession().Logout()
	return ok(c, nil)
}

func (h *handler) session(c echo.Context) error {
	return ok(c, h.app.AdminSession().State())
}

func (h *handler) clearError(c echo.Context) error {
	h.app.AdminSession().ClearError()
	return ok(c, nil)
}

type adminProfilePayload struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Photo *string `json:"photo"`
}

// updateProfile applies a typed partial update onto the admin identity.
// Unknown fields are rejected at the payload level instead of being merged.
func (h *handler) updateProfile(c echo.Context) error {
	var payload adminProfilePayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse profile", nil)
	}

	applied := h.app.AdminSession().Update(func(identity *domain.AdminIdentity) {
		if payload.Name != nil {
			identity.Name = *payload.Name
		}
		if payload.Email != nil {
			identity.Email = *payload.Email
		}
		if payload.Photo != nil {
			identity.Photo = *payload.Photo
		}
	})
	if !applied {
		return fail(c, http.StatusConflict, "NOT_AUTHENTICATED", "No active admin session", nil)
	}
	return ok(c, h.app.AdminSession().State().Identity)
}
