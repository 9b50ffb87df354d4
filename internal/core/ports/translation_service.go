package ports

import (
	"context"

	"github.com/123fakturera/pricelist-system/internal/core/domain"
)

// ChangeLanguageResult is returned when a client switches language.
type ChangeLanguageResult struct {
	CurrentLanguage string
	Translations    map[string]string
}

// TranslationService defines use-case operations for localization.
type TranslationService interface {
	SupportedLanguages(ctx context.Context) ([]domain.Language, error)
	ChangeLanguage(ctx context.Context, lang string) (*ChangeLanguageResult, error)
}

// TermsService serves localized legal terms with an "en" fallback.
type TermsService interface {
	Terms(ctx context.Context, lang string) (*domain.Terms, error)
}
