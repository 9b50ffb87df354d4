package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/123fakturera/pricelist-system/internal/core/domain"
	"github.com/123fakturera/pricelist-system/internal/core/ports"
)

type termsService struct {
	repo ports.TermsRepository
}

// NewTermsService returns a TermsService implementation.
func NewTermsService(repo ports.TermsRepository) ports.TermsService {
	return &termsService{repo: repo}
}

// Terms returns the legal terms for lang, falling back to the default
// language when no localized version exists.
func (s *termsService) Terms(ctx context.Context, lang string) (*domain.Terms, error) {
	if lang == "" {
		lang = domain.DefaultLanguage
	}

	terms, err := s.repo.FindByLanguage(ctx, lang)
	if errors.Is(err, domain.ErrTermsNotFound) && lang != domain.DefaultLanguage {
		terms, err = s.repo.FindByLanguage(ctx, domain.DefaultLanguage)
	}
	if err != nil {
		return nil, fmt.Errorf("fetch terms: %w", err)
	}
	return terms, nil
}
