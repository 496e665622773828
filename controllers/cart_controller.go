package controllers

import (
	"errors"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"qr-dine/models"
	"qr-dine/stores"
)

const sessionCookie = "qr_dine_session"

// CartController owns one CartStore per browsing session. The session id
// travels in a cookie (or the X-Session-ID header for non-browser clients);
// the store itself writes through to Redis so a reload finds the cart again.
type CartController struct {
	mu         sync.Mutex
	carts      map[string]*stores.CartStore
	persister  stores.CartPersister
	menuStore  *stores.MenuStore
	orderStore *stores.OrderStore
}

func NewCartController(persister stores.CartPersister, menuStore *stores.MenuStore, orderStore *stores.OrderStore) *CartController {
	return &CartController{
		carts:      map[string]*stores.CartStore{},
		persister:  persister,
		menuStore:  menuStore,
		orderStore: orderStore,
	}
}

func (ctrl *CartController) sessionCart(c *gin.Context) *stores.CartStore {
	sessionID := c.GetHeader("X-Session-ID")
	if sessionID == "" {
		if cookie, err := c.Cookie(sessionCookie); err == nil {
			sessionID = cookie
		}
	}
	if sessionID == "" {
		sessionID = uuid.NewString()
		c.SetCookie(sessionCookie, sessionID, 3600*24*3, "/", "", false, true)
	}
	c.Header("X-Session-ID", sessionID)

	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()

	cart, ok := ctrl.carts[sessionID]
	if !ok {
		cart = stores.NewCartStore(sessionID, ctrl.persister)
		ctrl.carts[sessionID] = cart
	}
	return cart
}

func cartView(cart *stores.CartStore) gin.H {
	return gin.H{
		"items":        cart.Lines(),
		"table_number": cart.TableNumber(),
		"total":        cart.Total(),
		"item_count":   cart.ItemCount(),
	}
}

// @Summary Get cart
// @Description Get the session's cart contents
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	cart := ctrl.sessionCart(c)
	c.JSON(200, gin.H{"success": true, "message": "Cart retrieved", "data": cartView(cart)})
}

// @Summary Add item to cart
// @Description Add a menu item to the cart; an existing line's quantity grows
// @Tags Cart
// @Accept json
// @Produce json
// @Param item body models.AddCartItemRequest true "Item and quantity"
// @Success 200 {object} models.Response
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "menu_item_id and quantity (min 1) are required"})
		return
	}

	item, ok := ctrl.menuStore.GetMenuItemByID(req.MenuItemID)
	if !ok {
		// Cold cache after a restart: refresh once before giving up.
		if err := ctrl.menuStore.FetchMenuItems(c.Request.Context()); err == nil {
			item, ok = ctrl.menuStore.GetMenuItemByID(req.MenuItemID)
		}
		if !ok {
			c.JSON(404, gin.H{"success": false, "message": "Menu item not found"})
			return
		}
	}

	cart := ctrl.sessionCart(c)
	cart.AddItem(item, req.Quantity)

	c.JSON(200, gin.H{"success": true, "message": "Item added to cart", "data": cartView(cart)})
}

// @Summary Update cart line quantity
// @Description Set a line's quantity; 0 or less removes the line
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path string true "Menu item ID"
// @Param quantity body models.UpdateCartItemRequest true "New quantity"
// @Success 200 {object} models.Response
// @Router /cart/items/{id} [patch]
func (ctrl *CartController) UpdateQuantity(c *gin.Context) {
	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "quantity is required"})
		return
	}

	cart := ctrl.sessionCart(c)
	cart.UpdateQuantity(c.Param("id"), req.Quantity)

	c.JSON(200, gin.H{"success": true, "message": "Cart updated", "data": cartView(cart)})
}

// @Summary Remove cart line
// @Description Remove a line from the cart
// @Tags Cart
// @Produce json
// @Param id path string true "Menu item ID"
// @Success 200 {object} models.Response
// @Router /cart/items/{id} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	cart := ctrl.sessionCart(c)
	cart.RemoveItem(c.Param("id"))

	c.JSON(200, gin.H{"success": true, "message": "Item removed from cart", "data": cartView(cart)})
}

// @Summary Clear cart
// @Description Empty the cart; the table number is kept
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	cart := ctrl.sessionCart(c)
	cart.ClearCart()

	c.JSON(200, gin.H{"success": true, "message": "Cart cleared", "data": cartView(cart)})
}

// @Summary Set table number
// @Description Record the table the session is ordering from
// @Tags Cart
// @Accept json
// @Produce json
// @Param table body models.SetTableRequest true "Table number"
// @Success 200 {object} models.Response
// @Router /cart/table [put]
func (ctrl *CartController) SetTableNumber(c *gin.Context) {
	var req models.SetTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "table_number is required"})
		return
	}

	cart := ctrl.sessionCart(c)
	cart.SetTableNumber(req.TableNumber)

	c.JSON(200, gin.H{"success": true, "message": "Table number set", "data": cartView(cart)})
}

// @Summary Checkout
// @Description Submit the cart as a new order; the cart is cleared only after the store returns a real order id
// @Tags Cart
// @Produce json
// @Success 201 {object} models.Response
// @Router /cart/checkout [post]
func (ctrl *CartController) Checkout(c *gin.Context) {
	cart := ctrl.sessionCart(c)

	orderID, err := ctrl.orderStore.AddOrder(c.Request.Context(), cart.TableNumber(), cart.Lines(), cart.Total())
	if err != nil {
		switch {
		case errors.Is(err, stores.ErrTableNumberRequired):
			c.JSON(400, gin.H{"success": false, "message": "Please scan your table's QR code first"})
		case errors.Is(err, stores.ErrEmptyOrder):
			c.JSON(400, gin.H{"success": false, "message": "Cart is empty"})
		default:
			c.JSON(500, gin.H{"success": false, "message": "Failed to place order: " + err.Error()})
		}
		return
	}

	cart.ClearCart()

	c.JSON(201, gin.H{
		"success": true,
		"message": "Order placed successfully",
		"data":    gin.H{"order_id": orderID},
	})
}
