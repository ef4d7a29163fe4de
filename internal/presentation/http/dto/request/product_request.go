package request

// CreateProductRequest represents the product creation payload
type CreateProductRequest struct {
	Code         string  `json:"code" binding:"required,max=50"`
	Barcode      *string `json:"barcode" binding:"omitempty,max=100"`
	Name         string  `json:"name" binding:"required,max=255"`
	Description  *string `json:"description"`
	PriceGeneral int64   `json:"price_general" binding:"min=0"`
	PriceSpecial int64   `json:"price_special" binding:"min=0"`
	Stock        int     `json:"stock" binding:"min=0"`
	CategoryID   string  `json:"category_id" binding:"required,uuid"`
}

// UpdateProductRequest represents the product update payload
type UpdateProductRequest struct {
	Barcode      *string `json:"barcode" binding:"omitempty,max=100"`
	Name         *string `json:"name" binding:"omitempty,max=255"`
	Description  *string `json:"description"`
	PriceGeneral *int64  `json:"price_general" binding:"omitempty,min=0"`
	PriceSpecial *int64  `json:"price_special" binding:"omitempty,min=0"`
	CategoryID   *string `json:"category_id" binding:"omitempty,uuid"`
}

// AdjustStockRequest represents the manual stock adjustment payload
type AdjustStockRequest struct {
	Delta  int    `json:"delta" binding:"required"`
	Reason string `json:"reason" binding:"omitempty,max=255"`
}

// ProductFilterRequest represents product listing query parameters
type ProductFilterRequest struct {
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
	Search     string `form:"search"`
	CategoryID string `form:"category_id"`
}

// CategoryRequest represents the category create/update payload
type CategoryRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Description *string `json:"description"`
}
