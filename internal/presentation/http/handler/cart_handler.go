package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/famfam123/emspramitrarjawaliadikarya/internal/application/service"
	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/enum"
	"github.com/famfam123/emspramitrarjawaliadikarya/internal/presentation/http/dto/request"
	"github.com/famfam123/emspramitrarjawaliadikarya/internal/presentation/http/dto/response"
)

// CartHandler handles cart-related HTTP requests
type CartHandler struct {
	cartService *service.CartService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// View handles listing the principal's cart with its running total
func (h *CartHandler) View(c *gin.Context) {
	principal := GetPrincipal(c)
	if principal == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	view, err := h.cartService.View(c.Request.Context(), *principal)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cart retrieved successfully", view)
}

// AddItem handles adding a product to the cart
func (h *CartHandler) AddItem(c *gin.Context) {
	principal := GetPrincipal(c)
	if principal == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	var productID uuid.UUID
	if req.ProductID != "" {
		var err error
		if productID, err = uuid.Parse(req.ProductID); err != nil {
			response.BadRequest(c, "Invalid product ID")
			return
		}
	}

	item, err := h.cartService.AddItem(c.Request.Context(), *principal, &service.AddItemInput{
		ProductID:   productID,
		ProductCode: req.ProductCode,
		Quantity:    req.Quantity,
		Tier:        enum.PriceTier(req.Tier),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Item added to cart", item)
}

// UpdateItem handles changing a cart entry's quantity. Quantity zero removes
// the entry.
func (h *CartHandler) UpdateItem(c *gin.Context) {
	principal := GetPrincipal(c)
	if principal == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	itemID, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid cart item ID")
		return
	}

	var req request.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	item, err := h.cartService.UpdateQuantity(c.Request.Context(), *principal, itemID, *req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}
	if item == nil {
		response.OK(c, "Item removed from cart", nil)
		return
	}

	response.OK(c, "Cart item updated", item)
}

// RemoveItem handles removing one entry from the cart
func (h *CartHandler) RemoveItem(c *gin.Context) {
	principal := GetPrincipal(c)
	if principal == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	itemID, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid cart item ID")
		return
	}

	if err := h.cartService.RemoveItem(c.Request.Context(), *principal, itemID); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Clear handles emptying the cart
func (h *CartHandler) Clear(c *gin.Context) {
	principal := GetPrincipal(c)
	if principal == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	if err := h.cartService.Clear(c.Request.Context(), *principal); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
