package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProductType distinguishes the product catalogs the portal tracks
type ProductType string

const (
	ProductTypeDomain  ProductType = "domain"
	ProductTypeHosting ProductType = "hosting"
)

// ProductStatus represents a product subscription state
type ProductStatus string

const (
	ProductStatusActive  ProductStatus = "active"
	ProductStatusExpired ProductStatus = "expired"
	ProductStatusPending ProductStatus = "pending"
)

// Product is a domain or hosting subscription attached to an identity.
type Product struct {
	ID         uuid.UUID     `json:"id"`
	IdentityID uuid.UUID     `json:"identity_id"`
	Type       ProductType   `json:"type"`
	Name       string        `json:"name"`
	Status     ProductStatus `json:"status"`
	Plan       string        `json:"plan,omitempty"`
	StorageGB  int           `json:"storage_gb,omitempty"`
	ExpiresAt  *time.Time    `json:"expires_at,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
}

// IsActive returns true if the subscription is active
func (p *Product) IsActive() bool {
	return p.Status == ProductStatusActive
}
