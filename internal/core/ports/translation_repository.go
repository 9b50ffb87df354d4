package ports

import (
	"context"

	"github.com/123fakturera/pricelist-system/internal/core/domain"
)

// TranslationRepository defines the interface for localization data.
type TranslationRepository interface {
	SupportedLanguages(ctx context.Context) ([]domain.Language, error)
	FindTable(ctx context.Context, lang string) (*domain.TranslationTable, error)
}

// TermsRepository defines the interface for legal terms content.
type TermsRepository interface {
	FindByLanguage(ctx context.Context, lang string) (*domain.Terms, error)
}
