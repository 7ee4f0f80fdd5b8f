// Package cart owns the shopping-cart state. The Store is the single writer
// of cart state and the only reader and writer of its persisted form; page
// consumers call its operations and derived queries and never touch the
// storage key themselves.
package cart

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v79"
	"go.uber.org/zap"

	"goflare.io/storefront/kv"
	"goflare.io/storefront/models"
	"goflare.io/storefront/models/enum"
)

// storageKey is the fixed namespace the cart state persists under.
const storageKey = "cartState"

// EventSink receives a CartEvent after every completed mutation. The sink
// must not block for long; the store calls it while holding its lock so
// observers always see mutations in order.
type EventSink interface {
	CartChanged(ctx context.Context, event *models.CartEvent)
}

// Store is the cart state container. It is constructed once at process
// start, restores itself from the injected kv.Store, and persists after
// every mutation before the mutation call returns.
type Store struct {
	mu       sync.Mutex
	state    State
	storage  kv.Store
	currency stripe.Currency
	sink     EventSink
	logger   *zap.Logger
}

// NewStore restores the persisted cart, falling back to an empty cart on a
// missing key, malformed payload, or storage failure. Restore failures are
// logged and never surfaced to the caller. sink may be nil.
func NewStore(storage kv.Store, currency stripe.Currency, sink EventSink, logger *zap.Logger) *Store {
	s := &Store{
		storage:  storage,
		currency: currency,
		sink:     sink,
		logger:   logger,
	}
	s.state = s.restore()
	return s
}

func (s *Store) restore() State {
	empty := State{Items: []models.CartLine{}}

	data, found, err := s.storage.Load(context.Background(), storageKey)
	if err != nil {
		s.logger.Warn("Failed to load cart state, starting empty", zap.Error(err))
		return empty
	}
	if !found {
		return empty
	}

	var state State
	if err = json.Unmarshal(data, &state); err != nil {
		s.logger.Warn("Discarding malformed cart state", zap.Error(err))
		return empty
	}
	if err = state.validate(); err != nil {
		s.logger.Warn("Discarding corrupt cart state", zap.Error(err))
		return empty
	}
	if state.Items == nil {
		state.Items = []models.CartLine{}
	}

	return state
}

// AddItem adds quantity units of product, merging into an existing line for
// the same product id. Quantities below one are treated as one.
func (s *Store) AddItem(ctx context.Context, product models.Product, quantity int) {
	s.apply(ctx, AddItem{Product: product, Quantity: quantity}, enum.CartEventTypeItemAdded, product.ID, quantity)
}

// RemoveItem drops the line with the given product id, if present.
func (s *Store) RemoveItem(ctx context.Context, id models.ProductID) {
	s.apply(ctx, RemoveItem{ID: id}, enum.CartEventTypeItemRemoved, id, 0)
}

// UpdateQuantity sets the line's quantity to an absolute value; zero or
// below removes the line. Unknown ids are a no-op.
func (s *Store) UpdateQuantity(ctx context.Context, id models.ProductID, quantity int) {
	s.apply(ctx, UpdateQuantity{ID: id, Quantity: quantity}, enum.CartEventTypeQuantityUpdated, id, quantity)
}

// ClearCart empties the cart. The store stays alive and usable.
func (s *Store) ClearCart(ctx context.Context) {
	s.apply(ctx, ClearCart{}, enum.CartEventTypeCartCleared, "", 0)
}

// apply runs the transition, persists the result, and notifies the sink.
// The persistence write completes (or fails and is logged) before apply
// returns, so no consumer can observe unpersisted in-memory state.
func (s *Store) apply(ctx context.Context, cmd Command, eventType enum.CartEventType, id models.ProductID, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = reduce(s.state, cmd)
	s.persistLocked(ctx)

	if s.sink != nil {
		s.sink.CartChanged(ctx, &models.CartEvent{
			ID:         uuid.NewString(),
			Type:       eventType,
			ProductID:  id,
			Quantity:   quantity,
			ItemCount:  s.state.itemCount(),
			Total:      s.state.total(),
			Currency:   s.currency,
			OccurredAt: time.Now(),
		})
	}
}

// persistLocked serializes {items} under the fixed key. A write failure is
// logged and otherwise ignored: the in-memory state stays authoritative for
// the session, durability is lost.
func (s *Store) persistLocked(ctx context.Context) {
	data, err := json.Marshal(s.state)
	if err != nil {
		s.logger.Error("Failed to serialize cart state", zap.Error(err))
		return
	}

	if err = s.storage.Save(ctx, storageKey, data); err != nil {
		s.logger.Warn("Failed to persist cart state, continuing in memory", zap.Error(err))
	}
}

// Items returns the cart lines in insertion order. The slice is a copy;
// callers must treat lines as immutable snapshots.
func (s *Store) Items() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneLines(s.state.Items)
}

// Line returns the line for a product id, if present.
func (s *Store) Line(id models.ProductID) (models.CartLine, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.find(id)
}

// ItemCount is the sum of all line quantities, not the line count.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.itemCount()
}

// Total sums price times quantity over all lines, using the price captured
// when each line was added.
func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.total()
}

// Summary bundles the derived values for the header badge.
func (s *Store) Summary() models.CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.CartSummary{
		ItemCount: s.state.itemCount(),
		Total:     s.state.total(),
		Currency:  s.currency,
	}
}
