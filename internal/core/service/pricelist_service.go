package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/123fakturera/pricelist-system/internal/api/metrics"
	"github.com/123fakturera/pricelist-system/internal/core/domain"
	"github.com/123fakturera/pricelist-system/internal/core/ports"
)

type pricelistService struct {
	repo ports.PricelistRepository
	log  zerolog.Logger
}

// NewPricelistService returns a PricelistService implementation.
func NewPricelistService(repo ports.PricelistRepository, log zerolog.Logger) ports.PricelistService {
	return &pricelistService{repo: repo, log: log}
}

func (s *pricelistService) List(ctx context.Context, userID, search string) ([]domain.PriceItem, error) {
	items, err := s.repo.List(ctx, userID, strings.TrimSpace(search))
	if err != nil {
		return nil, fmt.Errorf("list price items: %w", err)
	}
	return items, nil
}

func (s *pricelistService) Create(ctx context.Context, userID string, input ports.PriceItemInput) (*domain.PriceItem, error) {
	// Uniqueness of the article number is enforced both here and by the
	// repository index; the pre-check gives the caller a clean domain
	// error instead of a storage one.
	if existing, err := s.repo.FindByArticleNo(ctx, userID, input.ArticleNo); err == nil && existing != nil {
		return nil, domain.ErrDuplicateArticle
	}

	now := time.Now().UTC()
	item := &domain.PriceItem{
		ID:             uuid.NewString(),
		ArticleNo:      input.ArticleNo,
		ProductService: input.ProductService,
		InPrice:        input.InPrice,
		Price:          input.Price,
		Unit:           input.Unit,
		InStock:        input.InStock,
		Description:    input.Description,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := s.repo.Create(ctx, userID, item)
	if err != nil {
		return nil, fmt.Errorf("create price item: %w", err)
	}

	metrics.ItemMutationsTotal.WithLabelValues("create").Inc()
	s.log.Info().Str("item_id", created.ID).Str("article_no", created.ArticleNo).Msg("price item created")
	return created, nil
}

func (s *pricelistService) Update(ctx context.Context, userID, id string, input ports.PriceItemInput) (*domain.PriceItem, error) {
	// A changed article number must not collide with another item.
	if existing, err := s.repo.FindByArticleNo(ctx, userID, input.ArticleNo); err == nil && existing != nil && existing.ID != id {
		return nil, domain.ErrDuplicateArticle
	}

	item := &domain.PriceItem{
		ID:             id,
		ArticleNo:      input.ArticleNo,
		ProductService: input.ProductService,
		InPrice:        input.InPrice,
		Price:          input.Price,
		Unit:           input.Unit,
		InStock:        input.InStock,
		Description:    input.Description,
		UpdatedAt:      time.Now().UTC(),
	}

	updated, err := s.repo.Update(ctx, userID, item)
	if err != nil {
		return nil, fmt.Errorf("update price item: %w", err)
	}

	metrics.ItemMutationsTotal.WithLabelValues("update").Inc()
	return updated, nil
}

func (s *pricelistService) Delete(ctx context.Context, userID, id string) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("delete price item: %w", err)
	}
	metrics.ItemMutationsTotal.WithLabelValues("delete").Inc()
	return nil
}
