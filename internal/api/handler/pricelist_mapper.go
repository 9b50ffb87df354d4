package handler

import (
	"github.com/123fakturera/pricelist-system/internal/core/domain"
	"github.com/123fakturera/pricelist-system/internal/core/ports"
)

// --- Request → Service input ---

func toItemInput(req priceItemRequest) ports.PriceItemInput {
	return ports.PriceItemInput{
		ArticleNo:      req.ArticleNo,
		ProductService: req.ProductService,
		InPrice:        req.InPrice,
		Price:          req.Price,
		Unit:           req.Unit,
		InStock:        req.InStock,
		Description:    req.Description,
	}
}

// --- Domain → HTTP response ---

func toItemResponse(item domain.PriceItem) priceItemResponse {
	return priceItemResponse{
		ID:             item.ID,
		ArticleNo:      item.ArticleNo,
		ProductService: item.ProductService,
		InPrice:        item.InPrice,
		Price:          item.Price,
		Unit:           item.Unit,
		InStock:        item.InStock,
		Description:    item.Description,
	}
}

func toListResponse(items []domain.PriceItem) listPricelistResponse {
	out := make([]priceItemResponse, len(items))
	for i, item := range items {
		out[i] = toItemResponse(item)
	}
	return listPricelistResponse{Returncode: domain.CodeOK, Data: out}
}
