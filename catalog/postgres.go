package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"goflare.io/ember"

	"goflare.io/storefront/driver"
	"goflare.io/storefront/models"
)

var _ Repository = (*postgres)(nil)

const cacheTTL = 30 * time.Minute

// postgres reads the catalog from a products table. cache may be nil, in
// which case every read goes to the database.
type postgres struct {
	conn   driver.PostgresPool
	cache  *ember.Ember
	logger *zap.Logger
}

func NewPostgres(conn driver.PostgresPool, cache *ember.Ember, logger *zap.Logger) Repository {
	return &postgres{
		conn:   conn,
		cache:  cache,
		logger: logger,
	}
}

const productColumns = `id, name, description, long_description, price, image, images, category, brand, stock, rating, num_reviews, specs, features`

func (r *postgres) List(ctx context.Context) ([]models.Product, error) {
	cacheKey := "catalog:products"
	var products []models.Product

	if r.cache != nil {
		found, err := r.cache.Get(ctx, cacheKey, &products)
		if err != nil {
			r.logger.Warn("Failed to get products from cache", zap.Error(err))
		}
		if found {
			return products, nil
		}
	}

	rows, err := r.conn.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY id`)
	if err != nil {
		r.logger.Error("Failed to list products", zap.Error(err))
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	products = make([]models.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			r.logger.Error("Failed to scan product", zap.Error(err))
			return nil, err
		}
		products = append(products, *product)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	if r.cache != nil {
		if err = r.cache.Set(ctx, cacheKey, products, cacheTTL); err != nil {
			r.logger.Warn("Failed to cache products", zap.Error(err))
		}
	}

	return products, nil
}

func (r *postgres) GetByID(ctx context.Context, id models.ProductID) (*models.Product, error) {
	cacheKey := fmt.Sprintf("catalog:product:%s", id)
	var product models.Product

	if r.cache != nil {
		found, err := r.cache.Get(ctx, cacheKey, &product)
		if err != nil {
			r.logger.Warn("Failed to get product from cache", zap.Error(err))
		}
		if found {
			return &product, nil
		}
	}

	row := r.conn.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, string(id))
	scanned, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		r.logger.Error("Failed to get product", zap.String("product_id", string(id)), zap.Error(err))
		return nil, fmt.Errorf("get product %s: %w", id, err)
	}

	if r.cache != nil {
		if err = r.cache.Set(ctx, cacheKey, *scanned, cacheTTL); err != nil {
			r.logger.Warn("Failed to cache product", zap.Error(err))
		}
	}

	return scanned, nil
}

// scanProduct maps one row to a Product. images, specs, and features are
// stored as jsonb.
func scanProduct(row pgx.Row) (*models.Product, error) {
	var (
		p                     models.Product
		id                    string
		longDescription       *string
		category, brand       *string
		stock                 *int
		rating                *float64
		numReviews            *int
		images, specs, featrs []byte
	)

	err := row.Scan(&id, &p.Name, &p.Description, &longDescription, &p.Price, &p.Image,
		&images, &category, &brand, &stock, &rating, &numReviews, &specs, &featrs)
	if err != nil {
		return nil, err
	}

	p.ID = models.ProductID(id)
	if longDescription != nil {
		p.LongDescription = *longDescription
	}
	if category != nil {
		p.Category = *category
	}
	if brand != nil {
		p.Brand = *brand
	}
	p.Stock = stock
	if rating != nil {
		p.Rating = *rating
	}
	if numReviews != nil {
		p.NumReviews = *numReviews
	}

	if len(images) > 0 {
		if err = json.Unmarshal(images, &p.Images); err != nil {
			return nil, fmt.Errorf("decode images for product %s: %w", id, err)
		}
	}
	if len(specs) > 0 {
		if err = json.Unmarshal(specs, &p.Specs); err != nil {
			return nil, fmt.Errorf("decode specs for product %s: %w", id, err)
		}
	}
	if len(featrs) > 0 {
		if err = json.Unmarshal(featrs, &p.Features); err != nil {
			return nil, fmt.Errorf("decode features for product %s: %w", id, err)
		}
	}

	return &p, nil
}
