package domain

import (
	"errors"
	"time"
)

var ErrItemNotFound = errors.New("price item not found")
var ErrDuplicateArticle = errors.New("article number already exists")

// PriceItem is a single row of the invoicing price list. The numeric
// fields are pointers because the source of truth is a form where a
// blank field means "no value", not zero.
type PriceItem struct {
	ID             string   `json:"id"`
	ArticleNo      string   `json:"articleNo"`
	ProductService string   `json:"productService"`
	InPrice        *float64 `json:"inPrice"`
	Price          *float64 `json:"price"`
	Unit           *string  `json:"unit"`
	InStock        *int64   `json:"inStock"`
	Description    *string  `json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
