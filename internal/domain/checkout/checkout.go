// Package checkout validates the shipping and payment form and turns a cart
// into a placed order.
package checkout

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/alexisbeaulieu97/shopmate/internal/domain/cart"
	"github.com/alexisbeaulieu97/shopmate/internal/validation"
	shoperrors "github.com/alexisbeaulieu97/shopmate/pkg/errors"
)

// PaymentMethod selects which payment fields are collected.
type PaymentMethod string

const (
	PaymentCard PaymentMethod = "card"
	PaymentUPI  PaymentMethod = "upi"
	PaymentCOD  PaymentMethod = "cod"
)

// PaymentMethods lists the methods in display order.
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{PaymentCard, PaymentUPI, PaymentCOD}
}

// Label is the human name of a payment method.
func (p PaymentMethod) Label() string {
	switch p {
	case PaymentCard:
		return "Credit/Debit Card"
	case PaymentUPI:
		return "UPI"
	case PaymentCOD:
		return "Cash on Delivery"
	default:
		return string(p)
	}
}

// Next cycles through the payment methods.
func (p PaymentMethod) Next() PaymentMethod {
	methods := PaymentMethods()
	for i, m := range methods {
		if m == p {
			return methods[(i+1)%len(methods)]
		}
	}
	return PaymentCard
}

// EmptyCartMessage is returned when an order is placed with nothing in the cart.
const EmptyCartMessage = "Your cart is empty"

// Form is the shipping and payment form.
type Form struct {
	Name          string        `json:"name" label:"Full name" validate:"notblank"`
	Email         string        `json:"email" label:"Email" validate:"notblank,email"`
	Address       string        `json:"address" label:"Address" validate:"notblank"`
	City          string        `json:"city" label:"City" validate:"notblank"`
	State         string        `json:"state" label:"State" validate:"notblank"`
	ZipCode       string        `json:"zipCode" label:"ZIP code" validate:"notblank,zipcode"`
	PaymentMethod PaymentMethod `json:"paymentMethod" label:"Payment method" validate:"oneof=card upi cod"`
	CardNumber    string        `json:"cardNumber"`
	ExpiryDate    string        `json:"expiryDate"`
	CVV           string        `json:"cvv"`
	UPIID         string        `json:"upiId"`
}

// NewForm returns an empty form with card payment selected.
func NewForm() Form {
	return Form{PaymentMethod: PaymentCard}
}

type cardDetails struct {
	CardNumber string `label:"Card number" validate:"required,cardnumber"`
	ExpiryDate string `label:"Expiry date" validate:"required,expiry"`
	CVV        string `label:"CVV" validate:"required,numeric,min=3,max=4"`
}

type upiDetails struct {
	UPIID string `label:"UPI ID" validate:"required,upi"`
}

// Normalize trims every text field and defaults the payment method.
func (f Form) Normalize() Form {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Address = strings.TrimSpace(f.Address)
	f.City = strings.TrimSpace(f.City)
	f.State = strings.TrimSpace(f.State)
	f.ZipCode = strings.TrimSpace(f.ZipCode)
	f.CardNumber = strings.TrimSpace(f.CardNumber)
	f.ExpiryDate = strings.TrimSpace(f.ExpiryDate)
	f.CVV = strings.TrimSpace(f.CVV)
	f.UPIID = strings.TrimSpace(f.UPIID)
	if f.PaymentMethod == "" {
		f.PaymentMethod = PaymentCard
	}
	return f
}

// Validate checks the shipping fields, then the fields of the selected
// payment method only.
func (f Form) Validate() error {
	f = f.Normalize()
	if err := validation.Struct(f); err != nil {
		return err
	}

	switch f.PaymentMethod {
	case PaymentCard:
		return validation.Struct(cardDetails{CardNumber: f.CardNumber, ExpiryDate: f.ExpiryDate, CVV: f.CVV})
	case PaymentUPI:
		return validation.Struct(upiDetails{UPIID: f.UPIID})
	default:
		return nil
	}
}

// Order is a placed order.
type Order struct {
	Number        string
	Lines         []cart.Line
	Total         decimal.Decimal
	PaymentMethod PaymentMethod
	ShipTo        string
	PlacedAt      time.Time
}

// ItemCount sums the quantities of the order.
func (o Order) ItemCount() int {
	count := 0
	for _, line := range o.Lines {
		count += line.Quantity
	}
	return count
}

// Place validates the form against a non-empty cart, records the order and
// clears the cart. Nothing is sent anywhere.
func Place(c *cart.Cart, form Form, now time.Time) (Order, error) {
	if c == nil || c.IsEmpty() {
		return Order{}, shoperrors.NewValidationError("cart", EmptyCartMessage, nil)
	}
	if err := form.Validate(); err != nil {
		return Order{}, err
	}

	form = form.Normalize()
	order := Order{
		Number:        uuid.NewString(),
		Lines:         c.Lines(),
		Total:         c.Total(),
		PaymentMethod: form.PaymentMethod,
		ShipTo:        fmt.Sprintf("%s, %s, %s %s", form.Address, form.City, form.State, form.ZipCode),
		PlacedAt:      now,
	}
	c.Clear()
	return order, nil
}
