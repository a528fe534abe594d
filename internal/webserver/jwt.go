package webserver

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

// Portal roles carried in the token subject claims.
const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

// IssueToken signs a short-lived access token for the given subject/role.
func (ws *WebServer) IssueToken(subject, role string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"iss":  ws.cfg.System.Appid,
		"exp":  time.Now().Add(ttl).Unix(),
		"iat":  time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(ws.cfg.Web.JwtSecret))
}

// JWTMiddleware guards a route group, requiring a valid token with the
// given role.
func (ws *WebServer) JWTMiddleware(role string) echo.MiddlewareFunc {
	verify := echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(ws.cfg.Web.JwtSecret),
	})
	requireRole := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return echo.ErrUnauthorized
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok || claims["role"] != role {
				return echo.ErrForbidden
			}
			return next(c)
		}
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return verify(requireRole(next))
	}
}
