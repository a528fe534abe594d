// Package portalapi exposes the public storefront endpoints (catalog, cart,
// checkout, contact form) and the student portal API.
package portalapi

import (
	"github.com/powerfitbr/powerfit/internal/app"
	"github.com/powerfitbr/powerfit/internal/webserver"
)

type handler struct {
	app app.AppContext
	ws  *webserver.WebServer
}

// Register mounts the storefront and student routes. Catalog, cart and the
// contact form are anonymous; the student area past login requires a
// student JWT.
func Register(ws *webserver.WebServer, actx app.AppContext) {
	h := &handler{app: actx, ws: ws}
	e := ws.Echo()

	e.GET("/api/products", h.listProducts)
	e.GET("/api/plans", h.listPlans)
	e.GET("/api/classes", h.listClasses)
	e.GET("/api/site", h.siteInfo)

	e.GET("/api/cart", h.getCart)
	e.POST("/api/cart/items", h.addCartItem)
	e.PUT("/api/cart/items/:id", h.updateCartItem)
	e.DELETE("/api/cart/items/:id", h.removeCartItem)
	e.DELETE("/api/cart", h.clearCart)
	e.POST("/api/checkout", h.checkout)

	e.POST("/api/contact", h.submitContact)

	e.POST("/student/api/login", h.login)
	e.GET("/student/api/session", h.session)
	e.POST("/student/api/clear-error", h.clearError)

	g := e.Group("/student/api", ws.JWTMiddleware(webserver.RoleStudent))
	g.POST("/logout", h.logout)
	g.GET("/profile", h.profile)
	g.PUT("/profile", h.updateProfile)
	g.GET("/workouts", h.workouts)
	g.GET("/measurements", h.measurements)
}
