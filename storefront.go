package storefront

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/nats-io/nats.go"
	"github.com/stripe/stripe-go/v79"
	"go.uber.org/zap"

	"goflare.io/storefront/cart"
	"goflare.io/storefront/catalog"
	"goflare.io/storefront/checkout"
	"goflare.io/storefront/contact"
	"goflare.io/storefront/driver"
	"goflare.io/storefront/event"
	"goflare.io/storefront/kv"
	"goflare.io/storefront/models"
	"goflare.io/storefront/models/enum"
	"goflare.io/storefront/prefs"
)

// maxLineQuantity caps any single cart line regardless of tracked stock.
const maxLineQuantity = 99

type Service interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id models.ProductID) (*models.Product, error)

	AddToCart(ctx context.Context, id models.ProductID, quantity int) error
	RemoveFromCart(ctx context.Context, id models.ProductID) error
	UpdateCartQuantity(ctx context.Context, id models.ProductID, quantity int) error
	EmptyCart(ctx context.Context) error
	CartItems() []models.CartLine
	CartSummary() models.CartSummary
	Checkout() CheckoutHandoff

	ResolveTheme(ctx context.Context, systemPrefersDark bool) enum.ThemeMode
	SetTheme(ctx context.Context, mode enum.ThemeMode) error

	SubmitContact(ctx context.Context, msg models.ContactMessage) (string, error)
}

// CheckoutHandoff is the simulated checkout payload: the order summary plus
// the pre-filled hand-off links.
type CheckoutHandoff struct {
	Summary     checkout.Summary `json:"summary"`
	Text        string           `json:"text"`
	WhatsAppURL string           `json:"whatsappUrl,omitempty"`
	MailtoURL   string           `json:"mailtoUrl,omitempty"`
}

// Config carries the storefront-level settings that are not wiring.
type Config struct {
	Currency       stripe.Currency
	WhatsAppNumber string
	StoreEmail     string
}

type service struct {
	cfg     Config
	catalog catalog.Repository
	cart    *cart.Store
	prefs   *prefs.Store
	contact contact.Submitter
	events  event.Repository

	transactionManager *driver.TransactionManager
	eventManager       *EventManager
	workerPool         *WorkerPool

	logger *zap.Logger
}

// NewService wires the storefront. events and tm may be nil when no event
// database is configured; natsConn may be nil when running without a broker.
func NewService(
	cfg Config,
	catalogRepo catalog.Repository, storage kv.Store, events event.Repository, tm *driver.TransactionManager,
	submitter contact.Submitter,
	natsConn *nats.Conn,
	logger *zap.Logger) Service {

	if cfg.Currency == "" {
		cfg.Currency = stripe.CurrencyUSD
	}

	s := &service{
		cfg:                cfg,
		catalog:            catalogRepo,
		contact:            submitter,
		events:             events,
		transactionManager: tm,
		logger:             logger,
	}
	s.eventManager = NewEventManager(natsConn, logger)
	s.cart = cart.NewStore(storage, cfg.Currency, s.eventManager, logger)
	s.prefs = prefs.NewStore(storage, logger)
	s.workerPool = NewWorkerPool(10, s, logger)
	s.registerEventHandlers()

	if err := s.eventManager.SubscribeToEvents(s.workerPool); err != nil {
		logger.Error("Failed to subscribe to cart events", zap.Error(err))
	}

	return s
}

func (s *service) ListProducts(ctx context.Context) ([]models.Product, error) {
	products, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (s *service) GetProduct(ctx context.Context, id models.ProductID) (*models.Product, error) {
	return s.catalog.GetByID(ctx, id)
}

// AddToCart resolves the product, clamps the requested quantity to the stock
// ceiling (when tracked) and the per-line maximum, and adds the remainder.
// Lines already at their ceiling are left untouched.
func (s *service) AddToCart(ctx context.Context, id models.ProductID, quantity int) error {
	product, err := s.catalog.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if quantity < 1 {
		quantity = 1
	}

	ceiling := maxLineQuantity
	if product.Stock != nil && *product.Stock < ceiling {
		ceiling = *product.Stock
	}

	existing := 0
	if line, ok := s.cart.Line(id); ok {
		existing = line.Quantity
	}
	if existing >= ceiling {
		return nil
	}
	if existing+quantity > ceiling {
		quantity = ceiling - existing
	}

	s.cart.AddItem(ctx, *product, quantity)
	return nil
}

func (s *service) RemoveFromCart(ctx context.Context, id models.ProductID) error {
	s.cart.RemoveItem(ctx, id)
	return nil
}

// UpdateCartQuantity sets an absolute quantity for a line. Zero or below
// removes the line; values above the line's stock ceiling are clamped using
// the stock captured in the line snapshot.
func (s *service) UpdateCartQuantity(ctx context.Context, id models.ProductID, quantity int) error {
	if quantity > 0 {
		if line, ok := s.cart.Line(id); ok {
			ceiling := maxLineQuantity
			if line.Stock != nil && *line.Stock < ceiling {
				ceiling = *line.Stock
			}
			if quantity > ceiling {
				quantity = ceiling
			}
		}
	}

	s.cart.UpdateQuantity(ctx, id, quantity)
	return nil
}

func (s *service) EmptyCart(ctx context.Context) error {
	s.cart.ClearCart(ctx)
	return nil
}

func (s *service) CartItems() []models.CartLine {
	return s.cart.Items()
}

func (s *service) CartSummary() models.CartSummary {
	return s.cart.Summary()
}

func (s *service) Checkout() CheckoutHandoff {
	summary := checkout.BuildSummary(s.cart.Items())
	handoff := CheckoutHandoff{
		Summary: summary,
		Text:    summary.Text(),
	}
	if len(summary.Lines) == 0 {
		return handoff
	}

	if s.cfg.WhatsAppNumber != "" {
		handoff.WhatsAppURL = checkout.WhatsAppURL(s.cfg.WhatsAppNumber, handoff.Text)
	}
	if s.cfg.StoreEmail != "" {
		handoff.MailtoURL = checkout.MailtoURL(s.cfg.StoreEmail, "New order from the web store", handoff.Text)
	}
	return handoff
}

func (s *service) ResolveTheme(ctx context.Context, systemPrefersDark bool) enum.ThemeMode {
	return s.prefs.Resolve(ctx, systemPrefersDark)
}

func (s *service) SetTheme(ctx context.Context, mode enum.ThemeMode) error {
	return s.prefs.Set(ctx, mode)
}

func (s *service) SubmitContact(ctx context.Context, msg models.ContactMessage) (string, error) {
	return s.contact.Submit(ctx, msg)
}

// ProcessEvent handles one consumed cart event: dedup against the event log
// when one is configured, dispatch to the registered handler, then mark the
// event processed.
func (s *service) ProcessEvent(ctx context.Context, ev *models.CartEvent) error {
	if s.events != nil {
		if _, err := s.events.GetByID(ctx, nil, ev.ID); err == nil {
			s.logger.Info("Event already processed", zap.String("event_id", ev.ID))
			return nil
		} else if !errors.Is(err, pgx.ErrNoRows) {
			s.logger.Error("Failed to look up cart event", zap.Error(err))
			return err
		}

		if err := s.events.Create(ctx, nil, ev); err != nil {
			return err
		}
	}

	handler, exists := s.eventManager.GetHandler(ev.Type)
	if !exists {
		return fmt.Errorf("no handler registered for event type: %s", ev.Type)
	}

	if err := handler(ctx, ev); err != nil {
		s.logger.Error("Failed to process cart event",
			zap.String("event_id", ev.ID),
			zap.String("event_type", string(ev.Type)),
			zap.Error(err),
		)
		return err
	}

	if s.events != nil && s.transactionManager != nil {
		err := s.transactionManager.ExecuteTransaction(ctx, func(tx pgx.Tx) error {
			return s.events.MarkAsProcessed(ctx, tx, ev.ID)
		})
		if err != nil {
			s.logger.Error("Failed to mark cart event as processed", zap.String("event_id", ev.ID), zap.Error(err))
		}
	}

	s.logger.Info("Cart event processed", zap.String("event_id", ev.ID))
	return nil
}
