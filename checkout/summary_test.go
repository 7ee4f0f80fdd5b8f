package checkout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"goflare.io/storefront/models"
)

func line(name string, price float64, qty int) models.CartLine {
	return models.CartLine{
		Product:  models.Product{ID: models.ProductID(name), Name: name, Price: price},
		Quantity: qty,
	}
}

func TestShippingFee(t *testing.T) {
	require.Equal(t, 0.0, ShippingFee(0))
	require.Equal(t, 25.0, ShippingFee(0.01))
	require.Equal(t, 25.0, ShippingFee(499.99))
	require.Equal(t, 0.0, ShippingFee(500))
	require.Equal(t, 0.0, ShippingFee(1199.99))
}

func TestBuildSummary(t *testing.T) {
	s := BuildSummary([]models.CartLine{
		line("Galaxy Buds3 Pro", 229.99, 2),
		line("Galaxy Watch6 Classic", 429.99, 1),
	})

	require.Len(t, s.Lines, 2)
	require.Equal(t, 3, s.ItemCount)
	require.InDelta(t, 889.97, s.Subtotal, 0.001)
	require.Equal(t, 0.0, s.Shipping)
	require.InDelta(t, 889.97, s.Total, 0.001)
}

func TestBuildSummaryAddsFlatShippingUnderThreshold(t *testing.T) {
	s := BuildSummary([]models.CartLine{line("Galaxy Buds3 Pro", 229.99, 1)})

	require.Equal(t, 25.0, s.Shipping)
	require.InDelta(t, 254.99, s.Total, 0.001)
}

func TestBuildSummaryEmptyCart(t *testing.T) {
	s := BuildSummary(nil)

	require.Empty(t, s.Lines)
	require.Equal(t, 0.0, s.Shipping)
	require.Equal(t, 0.0, s.Total)
	require.Equal(t, "The cart is empty.", s.Text())
}

func TestSummaryText(t *testing.T) {
	text := BuildSummary([]models.CartLine{line("Galaxy Buds3 Pro", 229.99, 2)}).Text()

	require.True(t, strings.HasPrefix(text, "Order Summary:\n\n"))
	require.Contains(t, text, "Galaxy Buds3 Pro\n")
	require.Contains(t, text, "  Quantity: 2\n")
	require.Contains(t, text, "  Unit Price: $229.99\n")
	require.Contains(t, text, "  Subtotal: $459.98\n")
	require.Contains(t, text, "Shipping: $25.00\n")
	require.Contains(t, text, "ORDER TOTAL: $484.98\n")
	require.Contains(t, text, "Thank you for your order!")
}

func TestWhatsAppURLEscapesText(t *testing.T) {
	u := WhatsAppURL("15551234567", "Order Summary:\n\nGalaxy Buds3 Pro")

	require.True(t, strings.HasPrefix(u, "https://wa.me/15551234567?text="))
	require.NotContains(t, u, "\n")
	require.Contains(t, u, "Order+Summary%3A%0A%0AGalaxy+Buds3+Pro")
}

func TestMailtoURL(t *testing.T) {
	u := MailtoURL("orders@example.com", "New order", "line one\nline two")

	require.Equal(t, "mailto:orders@example.com?subject=New+order&body=line+one%0Aline+two", u)
}
