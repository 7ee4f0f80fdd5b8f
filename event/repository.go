// Package event persists the processed-event log. Consumed cart events are
// recorded here so redelivered messages are handled at most once.
package event

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stripe/stripe-go/v79"
	"go.uber.org/zap"

	"goflare.io/storefront/driver"
	"goflare.io/storefront/models"
	"goflare.io/storefront/models/enum"
)

var _ Repository = (*repository)(nil)

type Repository interface {
	Create(ctx context.Context, tx pgx.Tx, event *models.CartEvent) error
	GetByID(ctx context.Context, tx pgx.Tx, id string) (*models.CartEvent, error)
	MarkAsProcessed(ctx context.Context, tx pgx.Tx, id string) error
}

type repository struct {
	conn   driver.PostgresPool
	logger *zap.Logger
}

func NewRepository(conn driver.PostgresPool, logger *zap.Logger) Repository {
	return &repository{
		conn:   conn,
		logger: logger,
	}
}

// querier is satisfied by both the pool and a transaction; repository
// methods run against the transaction when one is supplied.
type querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func (r *repository) db(tx pgx.Tx) querier {
	if tx != nil {
		return tx
	}
	return r.conn
}

func (r *repository) Create(ctx context.Context, tx pgx.Tx, event *models.CartEvent) error {
	_, err := r.db(tx).Exec(ctx,
		`INSERT INTO cart_events (id, type, product_id, quantity, item_count, total, currency, processed, occurred_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		event.ID, string(event.Type), string(event.ProductID), event.Quantity,
		event.ItemCount, event.Total, string(event.Currency), event.Processed, event.OccurredAt)
	if err != nil {
		r.logger.Error("Failed to create cart event", zap.String("event_id", event.ID), zap.Error(err))
		return err
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, tx pgx.Tx, id string) (*models.CartEvent, error) {
	var (
		event               models.CartEvent
		eventType           string
		productID, currency string
	)

	err := r.db(tx).QueryRow(ctx,
		`SELECT id, type, product_id, quantity, item_count, total, currency, processed, occurred_at
		 FROM cart_events WHERE id = $1`, id).
		Scan(&event.ID, &eventType, &productID, &event.Quantity, &event.ItemCount,
			&event.Total, &currency, &event.Processed, &event.OccurredAt)
	if err != nil {
		return nil, err
	}

	event.Type = enum.CartEventType(eventType)
	event.ProductID = models.ProductID(productID)
	event.Currency = stripe.Currency(currency)
	return &event, nil
}

func (r *repository) MarkAsProcessed(ctx context.Context, tx pgx.Tx, id string) error {
	_, err := r.db(tx).Exec(ctx,
		`UPDATE cart_events SET processed = true, processed_at = $2 WHERE id = $1`,
		id, time.Now())
	if err != nil {
		r.logger.Error("Failed to mark cart event as processed", zap.String("event_id", id), zap.Error(err))
		return err
	}
	return nil
}
