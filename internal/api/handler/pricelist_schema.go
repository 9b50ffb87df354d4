package handler

// --- Request / Response types ---

// priceItemRequest is shared by create and update. The numeric fields
// are pointers so a blank form field survives as JSON null instead of
// collapsing to zero.
type priceItemRequest struct {
	ArticleNo      string   `json:"articleNo"      validate:"required"`
	ProductService string   `json:"productService" validate:"required"`
	InPrice        *float64 `json:"inPrice"`
	Price          *float64 `json:"price"`
	Unit           *string  `json:"unit"`
	InStock        *int64   `json:"inStock"`
	Description    *string  `json:"description"`
}

// priceItemResponse mirrors the stored item. Kept separate from the
// domain type so the JSON contract is not coupled to internal changes.
type priceItemResponse struct {
	ID             string   `json:"id"`
	ArticleNo      string   `json:"articleNo"`
	ProductService string   `json:"productService"`
	InPrice        *float64 `json:"inPrice"`
	Price          *float64 `json:"price"`
	Unit           *string  `json:"unit"`
	InStock        *int64   `json:"inStock"`
	Description    *string  `json:"description"`
}

type listPricelistResponse struct {
	Returncode string              `json:"returncode"`
	Data       []priceItemResponse `json:"data"`
}

type priceItemEnvelope struct {
	Returncode string            `json:"returncode"`
	Data       priceItemResponse `json:"data"`
}

type deleteResponse struct {
	Returncode string `json:"returncode"`
}
