package request

// AddCartItemRequest represents the add-to-cart payload. Exactly one of
// product_id and product_code identifies the product.
type AddCartItemRequest struct {
	ProductID   string `json:"product_id" binding:"omitempty,uuid"`
	ProductCode string `json:"product_code" binding:"omitempty,max=100"`
	Quantity    int    `json:"quantity" binding:"required,min=1"`
	Tier        string `json:"tier" binding:"omitempty,oneof=general special"`
}

// UpdateCartItemRequest represents the cart quantity update payload.
// A quantity of zero removes the entry.
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// CheckoutRequest represents the checkout payload
type CheckoutRequest struct {
	CustomerName  string `json:"customer_name" binding:"required,max=255"`
	PaymentMethod string `json:"payment_method" binding:"omitempty,max=50"`
}

// GenerateInvoiceRequest represents the invoice generation payload
type GenerateInvoiceRequest struct {
	TransactionID string `json:"transaction_id" binding:"required,uuid"`
}

// UpdateInvoiceStatusRequest represents the invoice status update payload
type UpdateInvoiceStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=unpaid paid cancelled"`
}
