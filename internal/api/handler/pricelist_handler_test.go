package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/123fakturera/pricelist-system/internal/core/domain"
	"github.com/123fakturera/pricelist-system/internal/core/ports"
)

type stubPricelistService struct {
	ListFn   func(ctx context.Context, userID, search string) ([]domain.PriceItem, error)
	CreateFn func(ctx context.Context, userID string, input ports.PriceItemInput) (*domain.PriceItem, error)
	UpdateFn func(ctx context.Context, userID, id string, input ports.PriceItemInput) (*domain.PriceItem, error)
	DeleteFn func(ctx context.Context, userID, id string) error
}

func (s *stubPricelistService) List(ctx context.Context, userID, search string) ([]domain.PriceItem, error) {
	return s.ListFn(ctx, userID, search)
}

func (s *stubPricelistService) Create(ctx context.Context, userID string, input ports.PriceItemInput) (*domain.PriceItem, error) {
	return s.CreateFn(ctx, userID, input)
}

func (s *stubPricelistService) Update(ctx context.Context, userID, id string, input ports.PriceItemInput) (*domain.PriceItem, error) {
	return s.UpdateFn(ctx, userID, id, input)
}

func (s *stubPricelistService) Delete(ctx context.Context, userID, id string) error {
	return s.DeleteFn(ctx, userID, id)
}

func TestPricelistHandlerList(t *testing.T) {
	price := 199.0
	svc := &stubPricelistService{
		ListFn: func(_ context.Context, userID, search string) ([]domain.PriceItem, error) {
			if userID != "user-1" {
				t.Errorf("userID = %q, want user-1", userID)
			}
			if search != "gold" {
				t.Errorf("search = %q, want gold", search)
			}
			return []domain.PriceItem{{ID: "item-1", ArticleNo: "A1", ProductService: "Gold ring", Price: &price}}, nil
		},
	}
	h := NewPricelistHandler(svc)

	c, rec := newEchoContext(t, http.MethodGet, "/pricelist?search=gold", "")
	c.Set("user_id", "user-1")
	if err := h.List(c); err != nil {
		t.Fatalf("List() error = %v", err)
	}

	var resp listPricelistResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Returncode != domain.CodeOK {
		t.Errorf("returncode = %q, want 200", resp.Returncode)
	}
	if len(resp.Data) != 1 || resp.Data[0].ArticleNo != "A1" {
		t.Errorf("data = %+v, want one A1 item", resp.Data)
	}
	if resp.Data[0].InPrice != nil {
		t.Error("absent inPrice rendered non-nil")
	}
}

func TestPricelistHandlerListEmpty(t *testing.T) {
	svc := &stubPricelistService{
		ListFn: func(context.Context, string, string) ([]domain.PriceItem, error) {
			return nil, nil
		},
	}
	h := NewPricelistHandler(svc)

	c, rec := newEchoContext(t, http.MethodGet, "/pricelist", "")
	c.Set("user_id", "user-1")
	if err := h.List(c); err != nil {
		t.Fatalf("List() error = %v", err)
	}

	// Clients distinguish "no rows" from "failed to load" by getting a
	// success envelope with an empty array, never null.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if string(raw["data"]) != "[]" {
		t.Errorf("data = %s, want []", raw["data"])
	}
}

func TestPricelistHandlerRequiresUser(t *testing.T) {
	h := NewPricelistHandler(&stubPricelistService{})

	c, _ := newEchoContext(t, http.MethodGet, "/pricelist", "")
	err := h.List(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Errorf("List() without identity error = %v, want 401", err)
	}
}

func TestPricelistHandlerCreate(t *testing.T) {
	svc := &stubPricelistService{
		CreateFn: func(_ context.Context, userID string, input ports.PriceItemInput) (*domain.PriceItem, error) {
			if input.ArticleNo != "A1" || input.ProductService != "Gold ring" {
				t.Errorf("input = %+v", input)
			}
			if input.InPrice != nil {
				t.Errorf("inPrice = %v, want nil from JSON null", *input.InPrice)
			}
			if input.Price == nil || *input.Price != 199 {
				t.Errorf("price = %v, want 199", input.Price)
			}
			return &domain.PriceItem{ID: "item-1", ArticleNo: input.ArticleNo, ProductService: input.ProductService, Price: input.Price}, nil
		},
	}
	h := NewPricelistHandler(svc)

	body := `{"articleNo":"A1","productService":"Gold ring","inPrice":null,"price":199}`
	c, rec := newEchoContext(t, http.MethodPost, "/pricelist", body)
	c.Set("user_id", "user-1")
	if err := h.Create(c); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	var resp priceItemEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Returncode != domain.CodeOK || resp.Data.ID != "item-1" {
		t.Errorf("response = %+v", resp)
	}
}

func TestPricelistHandlerCreateValidation(t *testing.T) {
	h := NewPricelistHandler(&stubPricelistService{
		CreateFn: func(context.Context, string, ports.PriceItemInput) (*domain.PriceItem, error) {
			t.Fatal("service reached with invalid input")
			return nil, nil
		},
	})

	c, _ := newEchoContext(t, http.MethodPost, "/pricelist", `{"productService":"No article"}`)
	c.Set("user_id", "user-1")
	err := h.Create(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Errorf("Create() error = %v, want 400", err)
	}
}

func TestPricelistHandlerCreateDuplicate(t *testing.T) {
	h := NewPricelistHandler(&stubPricelistService{
		CreateFn: func(context.Context, string, ports.PriceItemInput) (*domain.PriceItem, error) {
			return nil, domain.ErrDuplicateArticle
		},
	})

	c, _ := newEchoContext(t, http.MethodPost, "/pricelist", `{"articleNo":"A1","productService":"Thing"}`)
	c.Set("user_id", "user-1")
	err := h.Create(c)
	if !errors.Is(err, domain.ErrDuplicateArticle) {
		t.Errorf("Create() error = %v, want ErrDuplicateArticle passed through", err)
	}
}

func TestPricelistHandlerUpdate(t *testing.T) {
	svc := &stubPricelistService{
		UpdateFn: func(_ context.Context, userID, id string, input ports.PriceItemInput) (*domain.PriceItem, error) {
			if id != "item-1" {
				t.Errorf("id = %q, want item-1", id)
			}
			return &domain.PriceItem{ID: id, ArticleNo: input.ArticleNo, ProductService: input.ProductService}, nil
		},
	}
	h := NewPricelistHandler(svc)

	c, rec := newEchoContext(t, http.MethodPut, "/pricelist/item-1", `{"articleNo":"A1","productService":"Renamed"}`)
	c.SetParamNames("id")
	c.SetParamValues("item-1")
	c.Set("user_id", "user-1")
	if err := h.Update(c); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestPricelistHandlerDelete(t *testing.T) {
	deleted := ""
	svc := &stubPricelistService{
		DeleteFn: func(_ context.Context, userID, id string) error {
			deleted = id
			return nil
		},
	}
	h := NewPricelistHandler(svc)

	c, rec := newEchoContext(t, http.MethodDelete, "/pricelist/item-1", "")
	c.SetParamNames("id")
	c.SetParamValues("item-1")
	c.Set("user_id", "user-1")
	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if deleted != "item-1" {
		t.Errorf("deleted = %q, want item-1", deleted)
	}

	var resp deleteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Returncode != domain.CodeOK {
		t.Errorf("returncode = %q, want 200", resp.Returncode)
	}
}
