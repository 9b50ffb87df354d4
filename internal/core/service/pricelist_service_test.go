package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/123fakturera/pricelist-system/internal/core/domain"
	"github.com/123fakturera/pricelist-system/internal/core/ports"
)

type stubPricelistRepo struct {
	ListFn            func(ctx context.Context, userID, search string) ([]domain.PriceItem, error)
	FindByArticleNoFn func(ctx context.Context, userID, articleNo string) (*domain.PriceItem, error)
	CreateFn          func(ctx context.Context, userID string, item *domain.PriceItem) (*domain.PriceItem, error)
	UpdateFn          func(ctx context.Context, userID string, item *domain.PriceItem) (*domain.PriceItem, error)
	DeleteFn          func(ctx context.Context, userID, id string) error
}

func (s *stubPricelistRepo) List(ctx context.Context, userID, search string) ([]domain.PriceItem, error) {
	return s.ListFn(ctx, userID, search)
}

func (s *stubPricelistRepo) FindByArticleNo(ctx context.Context, userID, articleNo string) (*domain.PriceItem, error) {
	return s.FindByArticleNoFn(ctx, userID, articleNo)
}

func (s *stubPricelistRepo) Create(ctx context.Context, userID string, item *domain.PriceItem) (*domain.PriceItem, error) {
	return s.CreateFn(ctx, userID, item)
}

func (s *stubPricelistRepo) Update(ctx context.Context, userID string, item *domain.PriceItem) (*domain.PriceItem, error) {
	return s.UpdateFn(ctx, userID, item)
}

func (s *stubPricelistRepo) Delete(ctx context.Context, userID, id string) error {
	return s.DeleteFn(ctx, userID, id)
}

func noItem(context.Context, string, string) (*domain.PriceItem, error) {
	return nil, domain.ErrItemNotFound
}

func TestPricelistServiceCreate(t *testing.T) {
	var stored *domain.PriceItem
	repo := &stubPricelistRepo{
		FindByArticleNoFn: noItem,
		CreateFn: func(_ context.Context, userID string, item *domain.PriceItem) (*domain.PriceItem, error) {
			if userID != "user-1" {
				t.Errorf("userID = %q, want user-1", userID)
			}
			stored = item
			return item, nil
		},
	}
	svc := NewPricelistService(repo, zerolog.Nop())

	price := 199.0
	created, err := svc.Create(context.Background(), "user-1", ports.PriceItemInput{
		ArticleNo:      "A1",
		ProductService: "Gold ring",
		Price:          &price,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.ID == "" {
		t.Error("created item has no id")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("timestamps not set")
	}
	if stored.InPrice != nil {
		t.Errorf("inPrice = %v, want nil preserved", *stored.InPrice)
	}
}

func TestPricelistServiceCreateDuplicateArticle(t *testing.T) {
	repo := &stubPricelistRepo{
		FindByArticleNoFn: func(context.Context, string, string) (*domain.PriceItem, error) {
			return &domain.PriceItem{ID: "existing", ArticleNo: "A1"}, nil
		},
		CreateFn: func(context.Context, string, *domain.PriceItem) (*domain.PriceItem, error) {
			t.Fatal("Create reached the repository despite duplicate")
			return nil, nil
		},
	}
	svc := NewPricelistService(repo, zerolog.Nop())

	_, err := svc.Create(context.Background(), "user-1", ports.PriceItemInput{ArticleNo: "A1", ProductService: "Thing"})
	if !errors.Is(err, domain.ErrDuplicateArticle) {
		t.Errorf("Create() error = %v, want ErrDuplicateArticle", err)
	}
}

func TestPricelistServiceUpdateKeepsOwnArticleNo(t *testing.T) {
	repo := &stubPricelistRepo{
		// The item being updated already owns this article number.
		FindByArticleNoFn: func(context.Context, string, string) (*domain.PriceItem, error) {
			return &domain.PriceItem{ID: "item-1", ArticleNo: "A1"}, nil
		},
		UpdateFn: func(_ context.Context, _ string, item *domain.PriceItem) (*domain.PriceItem, error) {
			return item, nil
		},
	}
	svc := NewPricelistService(repo, zerolog.Nop())

	updated, err := svc.Update(context.Background(), "user-1", "item-1", ports.PriceItemInput{ArticleNo: "A1", ProductService: "Renamed"})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.ProductService != "Renamed" {
		t.Errorf("productService = %q, want Renamed", updated.ProductService)
	}
}

func TestPricelistServiceUpdateCollidingArticleNo(t *testing.T) {
	repo := &stubPricelistRepo{
		FindByArticleNoFn: func(context.Context, string, string) (*domain.PriceItem, error) {
			return &domain.PriceItem{ID: "other-item", ArticleNo: "A1"}, nil
		},
	}
	svc := NewPricelistService(repo, zerolog.Nop())

	_, err := svc.Update(context.Background(), "user-1", "item-1", ports.PriceItemInput{ArticleNo: "A1", ProductService: "Thing"})
	if !errors.Is(err, domain.ErrDuplicateArticle) {
		t.Errorf("Update() error = %v, want ErrDuplicateArticle", err)
	}
}

func TestPricelistServiceListTrimsSearch(t *testing.T) {
	repo := &stubPricelistRepo{
		ListFn: func(_ context.Context, userID, search string) ([]domain.PriceItem, error) {
			if search != "gold" {
				t.Errorf("search = %q, want trimmed gold", search)
			}
			return []domain.PriceItem{{ID: "1"}}, nil
		},
	}
	svc := NewPricelistService(repo, zerolog.Nop())

	items, err := svc.List(context.Background(), "user-1", "  gold  ")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(items) != 1 {
		t.Errorf("items = %d, want 1", len(items))
	}
}

func TestPricelistServiceDeleteNotFound(t *testing.T) {
	repo := &stubPricelistRepo{
		DeleteFn: func(context.Context, string, string) error {
			return domain.ErrItemNotFound
		},
	}
	svc := NewPricelistService(repo, zerolog.Nop())

	err := svc.Delete(context.Background(), "user-1", "missing")
	if !errors.Is(err, domain.ErrItemNotFound) {
		t.Errorf("Delete() error = %v, want ErrItemNotFound", err)
	}
}
