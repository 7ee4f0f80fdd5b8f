package storefront_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"goflare.io/storefront"
	"goflare.io/storefront/catalog"
	"goflare.io/storefront/contact"
	"goflare.io/storefront/kv"
	"goflare.io/storefront/models"
	"goflare.io/storefront/models/enum"
)

func newService(t *testing.T, storage kv.Store) storefront.Service {
	t.Helper()

	logger := zap.NewNop()
	return storefront.NewService(
		storefront.Config{WhatsAppNumber: "15551234567", StoreEmail: "orders@example.com"},
		catalog.NewStatic(catalog.SampleProducts()),
		storage,
		nil, nil,
		contact.NewSubmitter(enum.ContactSubmitModeIntercept, "", nil, logger),
		nil,
		logger,
	)
}

func TestAddToCartUnknownProduct(t *testing.T) {
	svc := newService(t, kv.NewMemory())

	err := svc.AddToCart(context.Background(), "999", 1)
	require.ErrorIs(t, err, catalog.ErrProductNotFound)
}

func TestAddToCartMergesAndSnapshotsPrice(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, kv.NewMemory())

	require.NoError(t, svc.AddToCart(ctx, "5", 1))
	require.NoError(t, svc.AddToCart(ctx, "5", 2))

	items := svc.CartItems()
	require.Len(t, items, 1)
	require.Equal(t, 3, items[0].Quantity)
	require.InDelta(t, 229.99, items[0].Price, 0.001)
}

func TestAddToCartStopsAtStockCeiling(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, kv.NewMemory())

	// Product 4 has 15 units in stock.
	require.NoError(t, svc.AddToCart(ctx, "4", 10))
	require.NoError(t, svc.AddToCart(ctx, "4", 10))
	require.Equal(t, 15, svc.CartSummary().ItemCount)

	// At the ceiling further adds are a no-op.
	require.NoError(t, svc.AddToCart(ctx, "4", 1))
	require.Equal(t, 15, svc.CartSummary().ItemCount)
}

func TestUpdateCartQuantityClampsToStock(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, kv.NewMemory())

	require.NoError(t, svc.AddToCart(ctx, "4", 1))
	require.NoError(t, svc.UpdateCartQuantity(ctx, "4", 400))
	require.Equal(t, 15, svc.CartSummary().ItemCount)
}

func TestUpdateCartQuantityZeroRemoves(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, kv.NewMemory())

	require.NoError(t, svc.AddToCart(ctx, "1", 2))
	require.NoError(t, svc.UpdateCartQuantity(ctx, "1", 0))
	require.Empty(t, svc.CartItems())
}

func TestCartSurvivesServiceRestart(t *testing.T) {
	ctx := context.Background()
	storage := kv.NewMemory()

	svc := newService(t, storage)
	require.NoError(t, svc.AddToCart(ctx, "1", 2))
	require.NoError(t, svc.AddToCart(ctx, "5", 1))

	restarted := newService(t, storage)
	require.Equal(t, 3, restarted.CartSummary().ItemCount)
	require.Len(t, restarted.CartItems(), 2)
}

func TestCheckoutEmptyCartHasNoLinks(t *testing.T) {
	svc := newService(t, kv.NewMemory())

	handoff := svc.Checkout()
	require.Equal(t, "The cart is empty.", handoff.Text)
	require.Empty(t, handoff.WhatsAppURL)
	require.Empty(t, handoff.MailtoURL)
}

func TestCheckoutBuildsHandoffLinks(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, kv.NewMemory())

	require.NoError(t, svc.AddToCart(ctx, "3", 1))

	handoff := svc.Checkout()
	require.Contains(t, handoff.Text, "Galaxy Watch6 Classic")
	require.InDelta(t, 429.99+25, handoff.Summary.Total, 0.001)
	require.Contains(t, handoff.WhatsAppURL, "https://wa.me/15551234567?text=")
	require.Contains(t, handoff.MailtoURL, "mailto:orders@example.com?subject=")
}

func TestSubmitContactAcknowledges(t *testing.T) {
	svc := newService(t, kv.NewMemory())

	ack, err := svc.SubmitContact(context.Background(), models.ContactMessage{
		Name:    "Ada",
		Email:   "ada@example.com",
		Message: "hi",
	})
	require.NoError(t, err)
	require.NotEmpty(t, ack)
}
