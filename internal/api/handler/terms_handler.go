package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/123fakturera/pricelist-system/internal/core/domain"
	"github.com/123fakturera/pricelist-system/internal/core/ports"
)

type TermsHandler struct {
	service ports.TermsService
}

func NewTermsHandler(service ports.TermsService) *TermsHandler {
	return &TermsHandler{service: service}
}

type termsResponse struct {
	Returncode string        `json:"returncode"`
	Terms      *domain.Terms `json:"terms"`
}

// Get serves the legal terms in the language from the accept-language
// header, set by the Locale middleware.
//
// @Summary      Fetch legal terms
// @Tags         terms
// @Produce      json
// @Param        Accept-Language  header    string  false  "Display language code"
// @Success      200              {object}  termsResponse
// @Failure      404              {object}  map[string]string
// @Router       /terms [get]
func (h *TermsHandler) Get(c echo.Context) error {
	lang, _ := c.Get("lang").(string)

	terms, err := h.service.Terms(c.Request().Context(), lang)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, termsResponse{
		Returncode: domain.CodeOK,
		Terms:      terms,
	})
}
