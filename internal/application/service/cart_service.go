package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/entity"
	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/enum"
	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/repository"
	"github.com/famfam123/emspramitrarjawaliadikarya/pkg/apperror"
)

// CartService manages the per-user staging area for a sale. Entries are
// advisory until checkout; prices shown here can drift from the catalog and
// are re-resolved by the checkout engine.
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService creates a new cart service
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// AddItemInput represents the add-to-cart input. The product may be
// addressed by id or by catalog code; scanner-driven clients send the code.
type AddItemInput struct {
	ProductID   uuid.UUID
	ProductCode string
	Quantity    int
	Tier        enum.PriceTier
}

// AddItem puts a product in the principal's cart. Adding a product already
// in the cart increments the existing entry's quantity; the tier of the
// existing entry is kept.
func (s *CartService) AddItem(ctx context.Context, principal entity.Principal, input *AddItemInput) (*entity.CartItem, error) {
	if input.Quantity <= 0 {
		return nil, apperror.NewValidationError("quantity must be positive")
	}
	if input.Tier == "" {
		input.Tier = enum.TierGeneral
	}
	if !input.Tier.Valid() {
		return nil, apperror.NewValidationError("invalid price tier")
	}

	var product *entity.Product
	var err error
	switch {
	case input.ProductID != uuid.Nil:
		product, err = s.productRepo.GetByID(ctx, input.ProductID)
	case input.ProductCode != "":
		product, err = s.productRepo.GetByCode(ctx, input.ProductCode)
	default:
		return nil, apperror.NewValidationError("product_id or product_code is required")
	}
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("product")
	}

	existing, err := s.cartRepo.GetByUserAndProduct(ctx, principal.ID, product.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		existing.Quantity += input.Quantity
		if err := s.cartRepo.Update(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	item := &entity.CartItem{
		UserID:    principal.ID,
		ProductID: product.ID,
		Quantity:  input.Quantity,
		Tier:      input.Tier,
		Product:   *product,
	}
	if err := s.cartRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// UnavailableItem flags a cart entry whose quantity exceeds live stock.
type UnavailableItem struct {
	CartItemID uuid.UUID `json:"cart_item_id"`
	Product    string    `json:"product"`
	Requested  int       `json:"requested"`
	Available  int       `json:"available"`
}

// CartView is the cart listing with its advisory total. Unavailable entries
// are flagged but not removed; checkout is where stock becomes binding.
type CartView struct {
	Items       []entity.CartItem `json:"items"`
	Total       int64             `json:"total"`
	Unavailable []UnavailableItem `json:"unavailable_items,omitempty"`
}

// View returns the principal's cart entries and running total
func (s *CartService) View(ctx context.Context, principal entity.Principal) (*CartView, error) {
	items, err := s.cartRepo.ListByUser(ctx, principal.ID)
	if err != nil {
		return nil, err
	}

	view := &CartView{Items: items}
	if view.Items == nil {
		view.Items = []entity.CartItem{}
	}
	for i := range items {
		view.Total += items[i].Subtotal()
		if items[i].Quantity > items[i].Product.Stock {
			view.Unavailable = append(view.Unavailable, UnavailableItem{
				CartItemID: items[i].ID,
				Product:    items[i].Product.Name,
				Requested:  items[i].Quantity,
				Available:  items[i].Product.Stock,
			})
		}
	}
	return view, nil
}

// UpdateQuantity sets an entry's quantity. A quantity of zero or less
// removes the entry.
func (s *CartService) UpdateQuantity(ctx context.Context, principal entity.Principal, itemID uuid.UUID, quantity int) (*entity.CartItem, error) {
	item, err := s.cartRepo.GetByID(ctx, principal.ID, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("cart item")
	}

	if quantity <= 0 {
		if err := s.cartRepo.Delete(ctx, principal.ID, itemID); err != nil {
			return nil, err
		}
		return nil, nil
	}

	item.Quantity = quantity
	if err := s.cartRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// RemoveItem deletes one entry from the principal's cart
func (s *CartService) RemoveItem(ctx context.Context, principal entity.Principal, itemID uuid.UUID) error {
	item, err := s.cartRepo.GetByID(ctx, principal.ID, itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("cart item")
	}
	return s.cartRepo.Delete(ctx, principal.ID, itemID)
}

// Clear empties the principal's cart. Clearing an empty cart is a no-op.
func (s *CartService) Clear(ctx context.Context, principal entity.Principal) error {
	return s.cartRepo.DeleteByUser(ctx, principal.ID)
}
