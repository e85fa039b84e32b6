package usecase

import (
	"context"
	"net/http"
	"regexp"
	"strings"
	"time"

	"urban/internal/domain/model"
	repo "urban/internal/repository"

	"github.com/go-playground/validator/v10"
)

// 07xxxxxxxx / 01xxxxxxxx / +2547xxxxxxxx
var kenyanPhonePattern = regexp.MustCompile(`^(\+254[17]\d{8}|0[17]\d{8})$`)

// CheckoutUsecase converts a cart into an order inside one database
// transaction: snapshot prices, write the order and its lines, empty
// the cart. Either all of it commits or none of it does. It performs
// no network calls; payment initiation happens after commit.
type CheckoutUsecase struct {
	tx          repo.TransactionManager
	validate    *validator.Validate
	deliveryFee int64
}

func NewCheckoutUsecase(tx repo.TransactionManager, deliveryFee int64) *CheckoutUsecase {
	v := validator.New()
	_ = v.RegisterValidation("kenyan_phone", func(fl validator.FieldLevel) bool {
		return kenyanPhonePattern.MatchString(strings.TrimSpace(fl.Field().String()))
	})
	return &CheckoutUsecase{
		tx:          tx,
		validate:    v,
		deliveryFee: deliveryFee,
	}
}

type CheckoutInput struct {
	CustomerName        string `json:"customer_name" validate:"required,max=100"`
	CustomerPhone       string `json:"customer_phone" validate:"required,kenyan_phone"`
	DeliveryAddress     string `json:"delivery_address" validate:"required"`
	DeliveryCity        string `json:"delivery_city" validate:"required,max=100"`
	DeliveryPostalCode  string `json:"delivery_postal_code" validate:"omitempty,max=20"`
	SpecialInstructions string `json:"special_instructions"`
	PaymentMethod       string `json:"payment_method" validate:"required,oneof=mpesa card cash_on_delivery"`
}

type OrderItemOutput struct {
	MenuItemID   *int64 `json:"menu_item_id"`
	Name         string `json:"name"`
	PricePerUnit int64  `json:"price_per_unit"`
	Quantity     int64  `json:"quantity"`
	LineTotal    int64  `json:"line_total"`
}

type OrderOutput struct {
	ID                  int64             `json:"id"`
	Status              string            `json:"status"`
	CustomerName        string            `json:"customer_name"`
	CustomerPhone       string            `json:"customer_phone"`
	DeliveryAddress     string            `json:"delivery_address"`
	DeliveryCity        string            `json:"delivery_city"`
	DeliveryPostalCode  string            `json:"delivery_postal_code"`
	SpecialInstructions string            `json:"special_instructions"`
	Subtotal            int64             `json:"subtotal"`
	DeliveryFee         int64             `json:"delivery_fee"`
	TotalPrice          int64             `json:"total_price"`
	PaymentMethod       string            `json:"payment_method"`
	CreatedAt           time.Time         `json:"created_at"`
	Items               []OrderItemOutput `json:"items"`
}

// Checkout is the cart-to-order conversion.
func (u *CheckoutUsecase) Checkout(ctx context.Context, userID int64, in CheckoutInput) (OrderOutput, error) {
	if userID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	// all validation happens before any write
	if fields := u.validateInput(in); len(fields) > 0 {
		return OrderOutput{}, NewValidationError(http.StatusBadRequest, "invalid checkout input", fields)
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		// Lock the cart rows first. A concurrent checkout or cart edit
		// queues behind this; a double submit then finds the cart
		// already emptied and fails cleanly below.
		lines, err := r.CartItems().ListByUserIDForUpdate(ctx, userID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if len(lines) == 0 {
			return NewHTTPError(http.StatusBadRequest, "cart empty")
		}

		// Price snapshot. This is the last read of live catalog data:
		// items turned unavailable since they were added still go
		// through at their current price, only a hard-deleted item
		// aborts the whole conversion.
		orderItems := make([]model.OrderItem, 0, len(lines))
		var subtotal int64 = 0
		now := time.Now()

		for _, l := range lines {
			item, err := r.MenuItems().FindByID(ctx, l.MenuItemID)
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusConflict, "catalog item missing")
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			itemID := item.ID
			orderItems = append(orderItems, model.OrderItem{
				MenuItemID:       &itemID,
				ItemNameSnapshot: item.Name,
				PricePerUnit:     item.Price,
				Quantity:         l.Quantity,
				CreatedAt:        now,
			})

			subtotal += item.Price * l.Quantity
		}

		total := subtotal + u.deliveryFee

		orderID, err := r.Orders().Create(ctx, model.Order{
			UserID:              &userID,
			CustomerName:        strings.TrimSpace(in.CustomerName),
			CustomerPhone:       strings.TrimSpace(in.CustomerPhone),
			DeliveryAddress:     strings.TrimSpace(in.DeliveryAddress),
			DeliveryCity:        strings.TrimSpace(in.DeliveryCity),
			DeliveryPostalCode:  strings.TrimSpace(in.DeliveryPostalCode),
			SpecialInstructions: strings.TrimSpace(in.SpecialInstructions),
			Subtotal:            subtotal,
			DeliveryFee:         u.deliveryFee,
			TotalPrice:          total,
			PaymentMethod:       in.PaymentMethod,
			Status:              model.OrderStatusPending,
			CreatedAt:           now,
			UpdatedAt:           now,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.OrderItems().CreateBulk(ctx, orderID, orderItems); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		// consume the cart
		if err := r.CartItems().DeleteAllByUserID(ctx, userID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = toOrderOutput(model.Order{
			ID:                  orderID,
			UserID:              &userID,
			CustomerName:        strings.TrimSpace(in.CustomerName),
			CustomerPhone:       strings.TrimSpace(in.CustomerPhone),
			DeliveryAddress:     strings.TrimSpace(in.DeliveryAddress),
			DeliveryCity:        strings.TrimSpace(in.DeliveryCity),
			DeliveryPostalCode:  strings.TrimSpace(in.DeliveryPostalCode),
			SpecialInstructions: strings.TrimSpace(in.SpecialInstructions),
			Subtotal:            subtotal,
			DeliveryFee:         u.deliveryFee,
			TotalPrice:          total,
			PaymentMethod:       in.PaymentMethod,
			Status:              model.OrderStatusPending,
			CreatedAt:           now,
		}, orderItems)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// validateInput returns a non-empty field->message map on failure.
func (u *CheckoutUsecase) validateInput(in CheckoutInput) map[string]string {
	err := u.validate.Struct(in)
	if err == nil {
		return nil
	}

	fields := map[string]string{}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		fields["input"] = "invalid input"
		return fields
	}

	for _, fe := range verrs {
		switch fe.Field() {
		case "CustomerName":
			fields["customer_name"] = "name is required"
		case "CustomerPhone":
			fields["customer_phone"] = "enter a valid Kenyan phone number (07… or +254…)"
		case "DeliveryAddress":
			fields["delivery_address"] = "delivery address is required"
		case "DeliveryCity":
			fields["delivery_city"] = "delivery city is required"
		case "DeliveryPostalCode":
			fields["delivery_postal_code"] = "postal code is too long"
		case "PaymentMethod":
			fields["payment_method"] = "choose mpesa, card or cash_on_delivery"
		}
	}
	return fields
}

func toOrderOutput(o model.Order, items []model.OrderItem) OrderOutput {
	outItems := make([]OrderItemOutput, 0, len(items))
	for _, it := range items {
		outItems = append(outItems, OrderItemOutput{
			MenuItemID:   it.MenuItemID,
			Name:         it.ItemNameSnapshot,
			PricePerUnit: it.PricePerUnit,
			Quantity:     it.Quantity,
			LineTotal:    it.PricePerUnit * it.Quantity,
		})
	}

	return OrderOutput{
		ID:                  o.ID,
		Status:              string(o.Status),
		CustomerName:        o.CustomerName,
		CustomerPhone:       o.CustomerPhone,
		DeliveryAddress:     o.DeliveryAddress,
		DeliveryCity:        o.DeliveryCity,
		DeliveryPostalCode:  o.DeliveryPostalCode,
		SpecialInstructions: o.SpecialInstructions,
		Subtotal:            o.Subtotal,
		DeliveryFee:         o.DeliveryFee,
		TotalPrice:          o.TotalPrice,
		PaymentMethod:       o.PaymentMethod,
		CreatedAt:           o.CreatedAt,
		Items:               outItems,
	}
}
