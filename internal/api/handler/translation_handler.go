package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/123fakturera/pricelist-system/internal/core/domain"
	"github.com/123fakturera/pricelist-system/internal/core/ports"
)

type TranslationHandler struct {
	service ports.TranslationService
}

func NewTranslationHandler(service ports.TranslationService) *TranslationHandler {
	return &TranslationHandler{service: service}
}

type changeLanguageRequest struct {
	Lang string `json:"lang" validate:"required"`
}

type changeLanguageResponse struct {
	Returncode      string            `json:"returncode"`
	CurrentLanguage string            `json:"currentLanguage"`
	Translations    map[string]string `json:"translations"`
}

type languageResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Flag string `json:"flag"`
}

type supportedLanguagesResponse struct {
	Returncode string             `json:"returncode"`
	Languages  []languageResponse `json:"languages"`
}

// Change resolves the full translation table for a language.
//
// @Summary      Switch the active display language
// @Tags         translation
// @Accept       json
// @Produce      json
// @Param        body  body      changeLanguageRequest  true  "Language code"
// @Success      200   {object}  changeLanguageResponse
// @Failure      400   {object}  map[string]string
// @Router       /translation/change [post]
func (h *TranslationHandler) Change(c echo.Context) error {
	var req changeLanguageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "language.error_invalid")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.ChangeLanguage(c.Request().Context(), req.Lang)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, changeLanguageResponse{
		Returncode:      domain.CodeOK,
		CurrentLanguage: result.CurrentLanguage,
		Translations:    result.Translations,
	})
}

// Support lists the supported-language catalog.
//
// @Summary      List supported languages
// @Tags         translation
// @Produce      json
// @Success      200  {object}  supportedLanguagesResponse
// @Router       /translation/support [get]
func (h *TranslationHandler) Support(c echo.Context) error {
	langs, err := h.service.SupportedLanguages(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]languageResponse, len(langs))
	for i, l := range langs {
		out[i] = languageResponse{Code: l.Code, Name: l.Name, Flag: l.Flag}
	}

	return c.JSON(http.StatusOK, supportedLanguagesResponse{
		Returncode: domain.CodeOK,
		Languages:  out,
	})
}
