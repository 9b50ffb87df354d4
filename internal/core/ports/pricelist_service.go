package ports

import (
	"context"

	"github.com/123fakturera/pricelist-system/internal/core/domain"
)

// PriceItemInput carries all writable fields of a price item. Numeric
// fields are nil when the submitting form left them blank.
type PriceItemInput struct {
	ArticleNo      string
	ProductService string
	InPrice        *float64
	Price          *float64
	Unit           *string
	InStock        *int64
	Description    *string
}

// PricelistService defines use-case operations over the price list.
// Every operation is scoped to the authenticated user.
type PricelistService interface {
	List(ctx context.Context, userID, search string) ([]domain.PriceItem, error)
	Create(ctx context.Context, userID string, input PriceItemInput) (*domain.PriceItem, error)
	Update(ctx context.Context, userID, id string, input PriceItemInput) (*domain.PriceItem, error)
	Delete(ctx context.Context, userID, id string) error
}
