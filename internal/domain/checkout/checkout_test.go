package checkout

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/shopmate/internal/domain/cart"
	shoperrors "github.com/alexisbeaulieu97/shopmate/pkg/errors"
)

func shippingForm() Form {
	f := NewForm()
	f.Name = "Ada Lovelace"
	f.Email = "ada@example.com"
	f.Address = "12 Analytical Way"
	f.City = "London"
	f.State = "LDN"
	f.ZipCode = "10001"
	return f
}

func cardForm() Form {
	f := shippingForm()
	f.CardNumber = "4242 4242 4242 4242"
	f.ExpiryDate = "09/29"
	f.CVV = "123"
	return f
}

func field(t *testing.T, err error) string {
	t.Helper()
	ve, ok := shoperrors.AsValidationError(err)
	require.True(t, ok, "expected validation error, got %v", err)
	return ve.Field
}

func TestNewForm_DefaultsToCard(t *testing.T) {
	assert.Equal(t, PaymentCard, NewForm().PaymentMethod)
}

func TestValidate_RequiresShippingFields(t *testing.T) {
	f := cardForm()
	f.City = "   "
	assert.Equal(t, "City", field(t, f.Validate()))
}

func TestValidate_CardFieldsOnlyForCard(t *testing.T) {
	f := shippingForm()
	assert.Equal(t, "Card number", field(t, f.Validate()))

	f.PaymentMethod = PaymentCOD
	require.NoError(t, f.Validate())

	require.NoError(t, cardForm().Validate())

	bad := cardForm()
	bad.CVV = "12"
	assert.Equal(t, "CVV", field(t, bad.Validate()))
}

func TestValidate_UPIIDOnlyForUPI(t *testing.T) {
	f := shippingForm()
	f.PaymentMethod = PaymentUPI
	assert.Equal(t, "UPI ID", field(t, f.Validate()))

	f.UPIID = "ada@okbank"
	require.NoError(t, f.Validate())

	f.PaymentMethod = PaymentCard
	f.UPIID = ""
	f.CardNumber = "4242424242424242"
	f.ExpiryDate = "01/30"
	f.CVV = "999"
	require.NoError(t, f.Validate())
}

func TestValidate_UnknownPaymentMethod(t *testing.T) {
	f := cardForm()
	f.PaymentMethod = "barter"
	assert.Equal(t, "Payment method", field(t, f.Validate()))
}

func TestPlace_RejectsEmptyCart(t *testing.T) {
	_, err := Place(cart.New(), cardForm(), time.Now())
	ve, ok := shoperrors.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, EmptyCartMessage, ve.Message)
}

func TestPlace_InvalidFormKeepsCart(t *testing.T) {
	c := cart.New()
	c.Add(cart.Item{ProductID: "p1", Title: "Lamp", Price: decimal.RequireFromString("10.00")})

	_, err := Place(c, shippingForm(), time.Now())
	require.Error(t, err)
	assert.Equal(t, 1, c.Count())
}

func TestPlace_ClearsCartAndSnapshotsLines(t *testing.T) {
	c := cart.New()
	c.AddN(cart.Item{ProductID: "p1", Title: "Lamp", Price: decimal.RequireFromString("10.00")}, 2)
	c.Add(cart.Item{ProductID: "p2", Title: "Mug", Price: decimal.RequireFromString("5.50")})

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	order, err := Place(c, cardForm(), now)
	require.NoError(t, err)

	assert.True(t, c.IsEmpty())
	assert.Len(t, order.Lines, 2)
	assert.Equal(t, 3, order.ItemCount())
	assert.Equal(t, "25.50", order.Total.StringFixed(2))
	assert.Equal(t, PaymentCard, order.PaymentMethod)
	assert.Equal(t, now, order.PlacedAt)
	assert.Contains(t, order.ShipTo, "London")
	_, err = uuid.Parse(order.Number)
	assert.NoError(t, err)
}

func TestPaymentMethodCycle(t *testing.T) {
	assert.Equal(t, PaymentUPI, PaymentCard.Next())
	assert.Equal(t, PaymentCOD, PaymentUPI.Next())
	assert.Equal(t, PaymentCard, PaymentCOD.Next())
	assert.Equal(t, "Cash on Delivery", PaymentCOD.Label())
}
