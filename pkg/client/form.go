package client

import (
	"strconv"
	"strings"
)

// ItemForm holds raw form input for a price item, everything still a
// string the way a form field delivers it. Input validates and coerces
// it client-side so bad submissions never reach the network layer.
type ItemForm struct {
	ArticleNo      string
	ProductService string
	InPrice        string
	Price          string
	Unit           string
	InStock        string
	Description    string
}

// FieldError describes a single invalid form field. Message is a
// translation key, rendered inline next to the field.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string { return e.Field + ": " + e.Message }

// FieldErrors is the full set of per-field failures for one submission.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Error()
	}
	return strings.Join(parts, "; ")
}

// Input validates the form and coerces it into a request input:
// required fields must be present, numeric fields become numbers, and
// blank optional fields become nil (JSON null) rather than zero.
func (f ItemForm) Input() (PriceItemInput, FieldErrors) {
	var errs FieldErrors

	articleNo := strings.TrimSpace(f.ArticleNo)
	if articleNo == "" {
		errs = append(errs, FieldError{Field: "articleNo", Message: "pricelist.error_required_articleNo"})
	}
	productService := strings.TrimSpace(f.ProductService)
	if productService == "" {
		errs = append(errs, FieldError{Field: "productService", Message: "pricelist.error_required_productService"})
	}

	inPrice, err := parseOptionalFloat(f.InPrice)
	if err != nil {
		errs = append(errs, FieldError{Field: "inPrice", Message: "pricelist.error_invalid_number"})
	}
	price, err := parseOptionalFloat(f.Price)
	if err != nil {
		errs = append(errs, FieldError{Field: "price", Message: "pricelist.error_invalid_number"})
	}
	inStock, err := parseOptionalInt(f.InStock)
	if err != nil {
		errs = append(errs, FieldError{Field: "inStock", Message: "pricelist.error_invalid_number"})
	}

	if errs != nil {
		return PriceItemInput{}, errs
	}

	return PriceItemInput{
		ArticleNo:      articleNo,
		ProductService: productService,
		InPrice:        inPrice,
		Price:          price,
		Unit:           optionalString(f.Unit),
		InStock:        inStock,
		Description:    optionalString(f.Description),
	}, nil
}

func parseOptionalFloat(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func parseOptionalInt(s string) (*int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
