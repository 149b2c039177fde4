package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"portal-api/app/domain"
	"portal-api/app/port"
)

// ProductRepository implements port.ProductRepository for PostgreSQL
type ProductRepository struct {
	db     Querier
	logger *slog.Logger
}

// NewProductRepository creates a new PostgreSQL product repository
func NewProductRepository(db Querier, logger *slog.Logger) port.ProductRepository {
	return &ProductRepository{
		db:     db,
		logger: logger.With("component", "product_repository"),
	}
}

const productColumns = `id, identity_id, product_type, name, status, plan, storage_gb, expires_at, created_at`

// ListByIdentity returns the product subscriptions owned by an identity
func (r *ProductRepository) ListByIdentity(ctx context.Context, identityID uuid.UUID) ([]*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE identity_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, identityID)
	if err != nil {
		r.logger.Error("failed to list identity products", "identity_id", identityID, "error", err)
		return nil, fmt.Errorf("failed to list identity products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// ListAll returns every product subscription; used by analytics
func (r *ProductRepository) ListAll(ctx context.Context) ([]*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.Error("failed to list all products", "error", err)
		return nil, fmt.Errorf("failed to list all products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

func scanProducts(rows pgx.Rows) ([]*domain.Product, error) {
	products := []*domain.Product{}
	for rows.Next() {
		product := &domain.Product{}
		var productType, status string

		err := rows.Scan(
			&product.ID,
			&product.IdentityID,
			&productType,
			&product.Name,
			&status,
			&product.Plan,
			&product.StorageGB,
			&product.ExpiresAt,
			&product.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}

		product.Type = domain.ProductType(productType)
		product.Status = domain.ProductStatus(status)
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate product rows: %w", err)
	}

	return products, nil
}
