package usecase

import (
	"context"
	"net/http"
	"time"

	repo "urban/internal/repository"
)

// CartUsecase is the business logic behind /cart. Lines carry no
// price of their own: every response is priced against the live
// catalog, and lines whose item has vanished are skipped, not errors.
type CartUsecase struct {
	cartItems   repo.CartItemRepository
	menuItems   repo.MenuItemRepository
	deliveryFee int64
}

func NewCartUsecase(
	cartItems repo.CartItemRepository,
	menuItems repo.MenuItemRepository,
	deliveryFee int64,
) *CartUsecase {
	return &CartUsecase{
		cartItems:   cartItems,
		menuItems:   menuItems,
		deliveryFee: deliveryFee,
	}
}

type CartLineResponse struct {
	ID         int64     `json:"id"`
	MenuItemID int64     `json:"menu_item_id"`
	Name       string    `json:"name"`
	UnitPrice  int64     `json:"unit_price"`
	Quantity   int64     `json:"quantity"`
	LineTotal  int64     `json:"line_total"`
	AddedAt    time.Time `json:"added_at"`
}

type CartResponse struct {
	Items       []CartLineResponse `json:"items"`
	Subtotal    int64              `json:"subtotal"`
	DeliveryFee int64              `json:"delivery_fee"`
	Total       int64              `json:"total"`
	Count       int64              `json:"count"`
}

type AddToCartInput struct {
	MenuItemID int64
	Quantity   int64
}

type AddToCartResult struct {
	Line      CartLineResponse `json:"line"`
	CartCount int64            `json:"cart_count"`
}

func (u *CartUsecase) GetCart(ctx context.Context, userID int64) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	return u.buildCartResponse(ctx, userID)
}

// AddToCart adds an item or bumps the existing line's quantity.
func (u *CartUsecase) AddToCart(ctx context.Context, userID int64, in AddToCartInput) (AddToCartResult, error) {
	if userID <= 0 {
		return AddToCartResult{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.MenuItemID <= 0 {
		return AddToCartResult{}, NewHTTPError(http.StatusBadRequest, "invalid menu_item_id")
	}
	if in.Quantity == 0 {
		in.Quantity = 1
	}
	if in.Quantity < 0 {
		return AddToCartResult{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	// 商品チェック：存在し、かつ公開中のものだけカートに入る
	item, err := u.menuItems.FindByID(ctx, in.MenuItemID)
	if err == repo.ErrNotFound {
		return AddToCartResult{}, NewHTTPError(http.StatusBadRequest, "item unavailable")
	}
	if err != nil {
		return AddToCartResult{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !item.IsAvailable {
		return AddToCartResult{}, NewHTTPError(http.StatusBadRequest, "item unavailable")
	}

	line, err := u.cartItems.AddQuantity(ctx, userID, in.MenuItemID, in.Quantity)
	if err != nil {
		return AddToCartResult{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	count, err := u.cartItems.TotalQuantityByUserID(ctx, userID)
	if err != nil {
		return AddToCartResult{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return AddToCartResult{
		Line: CartLineResponse{
			ID:         line.ID,
			MenuItemID: line.MenuItemID,
			Name:       item.Name,
			UnitPrice:  item.Price,
			Quantity:   line.Quantity,
			LineTotal:  item.Price * line.Quantity,
			AddedAt:    line.CreatedAt,
		},
		CartCount: count,
	}, nil
}

// UpdateItemQuantity overwrites one line's quantity. Zero deletes the
// line, negative values are rejected without touching it.
func (u *CartUsecase) UpdateItemQuantity(ctx context.Context, userID int64, menuItemID int64, qty int64) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if menuItemID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid menu_item_id")
	}
	if qty < 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	if qty == 0 {
		err := u.cartItems.DeleteByUserAndItem(ctx, userID, menuItemID)
		if err == repo.ErrNotFound {
			return CartResponse{}, NewHTTPError(http.StatusNotFound, "item not in cart")
		}
		if err != nil {
			return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return u.buildCartResponse(ctx, userID)
	}

	err := u.cartItems.SetQuantity(ctx, userID, menuItemID, qty)
	if err == repo.ErrNotFound {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "item not in cart")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, userID)
}

// RemoveLine deletes one cart row by id. Other users' rows read as
// not found.
func (u *CartUsecase) RemoveLine(ctx context.Context, userID int64, cartItemID int64) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if cartItemID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.cartItems.DeleteByIDForUser(ctx, cartItemID, userID)
	if err == repo.ErrNotFound {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, userID)
}

func (u *CartUsecase) ClearCart(ctx context.Context, userID int64) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	if err := u.cartItems.DeleteAllByUserID(ctx, userID); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, userID)
}

// buildCartResponse prices the cart against the live catalog.
func (u *CartUsecase) buildCartResponse(ctx context.Context, userID int64) (CartResponse, error) {
	lines, err := u.cartItems.ListByUserID(ctx, userID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	respItems := make([]CartLineResponse, 0, len(lines))
	var subtotal int64 = 0
	var count int64 = 0

	for _, l := range lines {
		item, err := u.menuItems.FindByID(ctx, l.MenuItemID)
		if err != nil {
			// deleted from the catalog: leave it out of the sum
			continue
		}

		respItems = append(respItems, CartLineResponse{
			ID:         l.ID,
			MenuItemID: l.MenuItemID,
			Name:       item.Name,
			UnitPrice:  item.Price,
			Quantity:   l.Quantity,
			LineTotal:  item.Price * l.Quantity,
			AddedAt:    l.CreatedAt,
		})

		subtotal += item.Price * l.Quantity
		count += l.Quantity
	}

	return CartResponse{
		Items:       respItems,
		Subtotal:    subtotal,
		DeliveryFee: u.deliveryFee,
		Total:       subtotal + u.deliveryFee,
		Count:       count,
	}, nil
}
