package ports

import (
	"context"

	"github.com/123fakturera/pricelist-system/internal/core/domain"
)

// PricelistRepository defines the interface for price-item persistence.
type PricelistRepository interface {
	// List returns all items owned by userID, optionally filtered by a
	// free-text search over article number and product name.
	List(ctx context.Context, userID, search string) ([]domain.PriceItem, error)
	FindByArticleNo(ctx context.Context, userID, articleNo string) (*domain.PriceItem, error)
	Create(ctx context.Context, userID string, item *domain.PriceItem) (*domain.PriceItem, error)
	Update(ctx context.Context, userID string, item *domain.PriceItem) (*domain.PriceItem, error)
	Delete(ctx context.Context, userID, id string) error
}
