// Package adminapi exposes the back-office REST endpoints consumed by the
// admin console: session, contacts inbox, members, plans, class schedule,
// products, settings and the dashboard.
package adminapi

import (
	"github.com/powerfitbr/powerfit/internal/app"
	"github.com/powerfitbr/powerfit/internal/webserver"
)

type handler struct {
	app app.AppContext
	ws  *webserver.WebServer
}

// Register mounts all admin routes. Everything except login and the session
// state endpoints requires an admin JWT.
func Register(ws *webserver.WebServer, actx app.AppContext) {
	h := &handler{app: actx, ws: ws}
	e := ws.Echo()

	// reachable from the login page
	e.POST("/admin/api/login", h.login)
	e.GET("/admin/api/session", h.session)
	e.POST("/admin/api/clear-error", h.clearError)

	g := e.Group("/admin/api", ws.JWTMiddleware(webserver.RoleAdmin))
	g.POST("/logout", h.logout)
	g.PUT("/profile", h.updateProfile)

	g.GET("/contacts", h.listContacts)
	g.GET("/contacts/export", h.exportContacts)
	g.PUT("/contacts/:id/status", h.updateContactStatus)
	g.DELETE("/contacts/:id", h.deleteContact)
	g.DELETE("/contacts", h.clearContacts)

	g.GET("/members", h.listMembers)
	g.GET("/members/export", h.exportMembers)
	g.POST("/members/import", h.importMembers)
	g.GET("/members/:id", h.getMember)
	g.POST("/members", h.createMember)
	g.PUT("/members/:id", h.updateMember)
	g.DELETE("/members/:id", h.deleteMember)

	g.GET("/plans", h.listPlans)
	g.GET("/plans/:id", h.getPlan)
	g.POST("/plans", h.createPlan)
	g.PUT("/plans/:id", h.updatePlan)
	g.DELETE("/plans/:id", h.deletePlan)

	g.GET("/classes", h.listClasses)
	g.GET("/classes/:id", h.getClass)
	g.POST("/classes", h.createClass)
	g.PUT("/classes/:id", h.updateClass)
	g.DELETE("/classes/:id", h.deleteClass)

	g.GET("/products", h.listProducts)
	g.GET("/products/:id", h.getProduct)
	g.POST("/products", h.createProduct)
	g.PUT("/products/:id", h.updateProduct)
	g.DELETE("/products/:id", h.deleteProduct)

	g.GET("/settings/:category", h.getSettings)
	g.PUT("/settings/:category", h.saveSettings)

	g.GET("/dashboard", h.dashboard)
}
