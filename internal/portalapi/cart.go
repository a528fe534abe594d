package portalapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/powerfitbr/powerfit/internal/domain"
	"github.com/powerfitbr/powerfit/internal/webserver"
	"github.com/powerfitbr/powerfit/pkg/common"
	"go.uber.org/zap"
)

func (h *handler) cartSnapshot() map[string]interface{} {
	cart := h.app.Cart()
	total := cart.Total()
	return map[string]interface{}{
		"items":          cart.Items(),
		"count":          cart.ItemCount(),
		"total":          total,
		"totalFormatted": common.FormatBRL(total),
	}
}

func (h *handler) getCart(c echo.Context) error {
	return ok(c, h.cartSnapshot())
}

func (h *handler) addCartItem(c echo.Context) error {
	var item domain.CartItem
	if err := c.Bind(&item); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse cart item", nil)
	}
	if strings.TrimSpace(item.ID) == "" && strings.TrimSpace(item.Name) == "" {
		return fail(c, http.StatusBadRequest, "MISSING_IDENTITY", "Cart item needs an id or a name", nil)
	}
	h.app.Cart().AddItem(item)
	return ok(c, h.cartSnapshot())
}

type quantityPayload struct {
	Quantity int `json:"quantity" form:"quantity"`
}

func (h *handler) updateCartItem(c echo.Context) error {
	var payload quantityPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse quantity", nil)
	}
	h.app.Cart().UpdateQuantity(c.Param("id"), payload.Quantity)
	return ok(c, h.cartSnapshot())
}

func (h *handler) removeCartItem(c echo.Context) error {
	h.app.Cart().RemoveItem(c.Param("id"))
	return ok(c, h.cartSnapshot())
}

func (h *handler) clearCart(c echo.Context) error {
	h.app.Cart().Clear()
	return ok(c, h.cartSnapshot())
}

// checkout turns the current cart into an order number and empties the
// cart. There is no payment backend: the number is generated locally and
// remembered in the visitor cookie session for the confirmation page.
func (h *handler) checkout(c echo.Context) error {
	cart := h.app.Cart()
	items := cart.Items()
	if len(items) == 0 {
		return fail(c, http.StatusBadRequest, "EMPTY_CART", "Cannot check out an empty cart", nil)
	}

	prefix := h.app.GetSettingsStringValue("checkout", "OrderPrefix")
	if prefix == "" {
		prefix = "PF"
	}
	orderNumber := fmt.Sprintf("%s%d", prefix, common.UUIDint64())
	total := cart.Total()

	// the confirmation page reads the order number back from the cookie
	if sess, err := session.Get(webserver.VisitorSessionName, c); err == nil {
		sess.Values["last_order"] = orderNumber
		if err := sess.Save(c.Request(), c.Response()); err != nil {
			zap.L().Warn("visitor session save failed", zap.Error(err))
		}
	}

	cart.Clear()
	return ok(c, map[string]interface{}{
		"orderNumber":    orderNumber,
		"items":          items,
		"total":          total,
		"totalFormatted": common.FormatBRL(total),
	})
}
