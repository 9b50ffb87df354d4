package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/123fakturera/pricelist-system/internal/api/metrics"
	"github.com/123fakturera/pricelist-system/internal/core/domain"
	"github.com/123fakturera/pricelist-system/internal/core/ports"
)

// TranslationCache abstracts the Redis-backed translation-table cache.
type TranslationCache interface {
	Get(ctx context.Context, lang string) (map[string]string, error)
	Set(ctx context.Context, lang string, messages map[string]string) error
}

type translationService struct {
	repo  ports.TranslationRepository
	cache TranslationCache
	log   zerolog.Logger
}

// NewTranslationService returns a TranslationService implementation.
// cache may be nil, in which case every lookup hits the repository.
func NewTranslationService(repo ports.TranslationRepository, cache TranslationCache, log zerolog.Logger) ports.TranslationService {
	return &translationService{repo: repo, cache: cache, log: log}
}

func (s *translationService) SupportedLanguages(ctx context.Context) ([]domain.Language, error) {
	langs, err := s.repo.SupportedLanguages(ctx)
	if err != nil {
		return nil, fmt.Errorf("supported languages: %w", err)
	}
	return langs, nil
}

// ChangeLanguage resolves the full translation table for lang,
// cache-aside: Redis first, MongoDB on a miss.
func (s *translationService) ChangeLanguage(ctx context.Context, lang string) (*ports.ChangeLanguageResult, error) {
	if lang == "" {
		lang = domain.DefaultLanguage
	}

	if s.cache != nil {
		msgs, err := s.cache.Get(ctx, lang)
		if err != nil {
			s.log.Warn().Err(err).Str("lang", lang).Msg("translation cache read failed, falling back to store")
		} else if msgs != nil {
			metrics.TranslationCacheTotal.WithLabelValues("hit").Inc()
			return &ports.ChangeLanguageResult{CurrentLanguage: lang, Translations: msgs}, nil
		}
		metrics.TranslationCacheTotal.WithLabelValues("miss").Inc()
	}

	table, err := s.repo.FindTable(ctx, lang)
	if err != nil {
		return nil, fmt.Errorf("change language: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, lang, table.Messages); err != nil {
			s.log.Warn().Err(err).Str("lang", lang).Msg("failed to cache translation table")
		}
	}

	return &ports.ChangeLanguageResult{CurrentLanguage: table.Language, Translations: table.Messages}, nil
}
