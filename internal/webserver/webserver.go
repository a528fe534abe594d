// Package webserver hosts the echo HTTP server shared by the storefront,
// the student portal and the admin console APIs.
package webserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/powerfitbr/powerfit/config"
	"go.uber.org/zap"
)

// VisitorSessionName is the cookie session carrying storefront visitor
// state (last order number).
const VisitorSessionName = "powerfit_session"

type WebServer struct {
	cfg  *config.AppConfig
	root *echo.Echo
}

func New(cfg *config.AppConfig) *WebServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(session.Middleware(sessions.NewCookieStore([]byte(cfg.Web.SessionSecret))))
	e.Use(requestLogger())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{"status": "ok", "appid": cfg.System.Appid})
	})

	return &WebServer{cfg: cfg, root: e}
}

// Echo exposes the underlying router for route registration.
func (ws *WebServer) Echo() *echo.Echo {
	return ws.root
}

func (ws *WebServer) Config() *config.AppConfig {
	return ws.cfg
}

// Start serves until ctx is canceled, then shuts down gracefully.
func (ws *WebServer) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", ws.cfg.Web.Host, ws.cfg.Web.Port)
	errCh := make(chan error, 1)
	go func() {
		zap.S().Infof("webserver listening on %s", addr)
		errCh <- ws.root.Start(addr)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return ws.root.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

func requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			zap.L().Debug("http request",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", c.Response().Status),
				zap.Duration("latency", time.Since(start)),
			)
			return err
		}
	}
}
