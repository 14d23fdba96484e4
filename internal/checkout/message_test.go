package checkout

import (
	"net/url"
	"strings"
	"testing"

	"github.com/Tilak630Devi/shop-webpage/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() *model.User {
	return &model.User{
		Phone: "9876543210",
		Name:  "Asha",
	}
}

func TestBuildMessage_WithSavings(t *testing.T) {
	items := []model.OrderItem{
		{ProductID: uuid.New(), Name: "Rose Serum", Qty: 2, Price: 400},
	}
	address := &model.Address{
		Label:   "Primary",
		Line1:   "12 MG Road",
		City:    "Pune",
		State:   "MH",
		Pincode: "411001",
	}

	message := BuildMessage(testUser(), items, 800, 1000, address)

	lines := strings.Split(message, "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "Hi! I'd like to order:", lines[0])
	assert.Equal(t, "1) Rose Serum x2 = ₹800", lines[1])
	assert.Equal(t, "Subtotal: ₹800", lines[2])
	assert.Equal(t, "(MRP: ₹1000, You save: ₹200)", lines[3])
	assert.Equal(t, "Name: Asha", lines[4])
	assert.Equal(t, "Phone: 9876543210", lines[5])
	assert.Equal(t, "Address: Primary, 12 MG Road, Pune, MH, 411001", lines[6])
}

func TestBuildMessage_NoSavingsLineWhenPricesEqual(t *testing.T) {
	items := []model.OrderItem{
		{ProductID: uuid.New(), Name: "Aloe Gel", Qty: 1, Price: 250},
	}

	message := BuildMessage(testUser(), items, 250, 250, nil)

	assert.NotContains(t, message, "You save")
	assert.NotContains(t, message, "MRP")
	assert.Contains(t, message, "Subtotal: ₹250")
}

func TestBuildMessage_NoAddressLineWhenNil(t *testing.T) {
	items := []model.OrderItem{
		{ProductID: uuid.New(), Name: "Aloe Gel", Qty: 1, Price: 250},
	}

	message := BuildMessage(testUser(), items, 250, 300, nil)

	assert.NotContains(t, message, "Address:")
}

func TestBuildMessage_MultipleItemsNumbered(t *testing.T) {
	items := []model.OrderItem{
		{ProductID: uuid.New(), Name: "Rose Serum", Qty: 2, Price: 400},
		{ProductID: uuid.New(), Name: "Aloe Gel", Qty: 1, Price: 250},
		{ProductID: uuid.New(), Name: "Night Cream", Qty: 3, Price: 199.5},
	}

	message := BuildMessage(testUser(), items, 1648.5, 1648.5, nil)

	assert.Contains(t, message, "1) Rose Serum x2 = ₹800")
	assert.Contains(t, message, "2) Aloe Gel x1 = ₹250")
	assert.Contains(t, message, "3) Night Cream x3 = ₹598.5")
	assert.Contains(t, message, "Subtotal: ₹1648.5")
}

func TestLink_EncodesMessage(t *testing.T) {
	link := Link("911234567890", "Hi! I'd like to order:\n1) Rose Serum x2 = ₹800")

	assert.True(t, strings.HasPrefix(link, "https://wa.me/911234567890?text="))
	// The raw message must not leak into the URL unencoded.
	assert.NotContains(t, link, " ")
	assert.NotContains(t, link, "\n")

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "Hi! I'd like to order:\n1) Rose Serum x2 = ₹800", parsed.Query().Get("text"))
}

func TestAmount_NoTrailingZeros(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{800, "800"},
		{800.5, "800.5"},
		{0.01, "0.01"},
		{199.99, "199.99"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, amount(tt.value))
	}
}
