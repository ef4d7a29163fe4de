package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/famfam123/emspramitrarjawaliadikarya/internal/application/service"
	"github.com/famfam123/emspramitrarjawaliadikarya/internal/presentation/http/dto/request"
	"github.com/famfam123/emspramitrarjawaliadikarya/internal/presentation/http/dto/response"
)

// CheckoutHandler handles the cart-to-transaction conversion endpoint
type CheckoutHandler struct {
	checkoutService *service.CheckoutService
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// Checkout converts the principal's cart into a completed transaction
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	principal := GetPrincipal(c)
	if principal == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	transaction, err := h.checkoutService.Checkout(c.Request.Context(), *principal, &service.CheckoutInput{
		CustomerName:  req.CustomerName,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Checkout completed successfully", transaction)
}
