package service

import (
	"context"
	"errors"
	"testing"

	"github.com/123fakturera/pricelist-system/internal/core/domain"
)

type stubTermsRepo struct {
	FindByLanguageFn func(ctx context.Context, lang string) (*domain.Terms, error)
}

func (s *stubTermsRepo) FindByLanguage(ctx context.Context, lang string) (*domain.Terms, error) {
	return s.FindByLanguageFn(ctx, lang)
}

func TestTermsServiceLocalized(t *testing.T) {
	repo := &stubTermsRepo{
		FindByLanguageFn: func(_ context.Context, lang string) (*domain.Terms, error) {
			return &domain.Terms{Language: lang, Introduction: "Villkor"}, nil
		},
	}
	svc := NewTermsService(repo)

	terms, err := svc.Terms(context.Background(), "sv")
	if err != nil {
		t.Fatalf("Terms() error = %v", err)
	}
	if terms.Language != "sv" || terms.Introduction != "Villkor" {
		t.Errorf("terms = %+v, want sv content", terms)
	}
}

func TestTermsServiceFallsBackToDefault(t *testing.T) {
	var asked []string
	repo := &stubTermsRepo{
		FindByLanguageFn: func(_ context.Context, lang string) (*domain.Terms, error) {
			asked = append(asked, lang)
			if lang != domain.DefaultLanguage {
				return nil, domain.ErrTermsNotFound
			}
			return &domain.Terms{Language: lang, Introduction: "Terms"}, nil
		},
	}
	svc := NewTermsService(repo)

	terms, err := svc.Terms(context.Background(), "de")
	if err != nil {
		t.Fatalf("Terms() error = %v", err)
	}
	if terms.Language != domain.DefaultLanguage {
		t.Errorf("language = %q, want default fallback", terms.Language)
	}
	if len(asked) != 2 || asked[0] != "de" || asked[1] != "en" {
		t.Errorf("lookups = %v, want [de en]", asked)
	}
}

func TestTermsServiceMissingEverywhere(t *testing.T) {
	repo := &stubTermsRepo{
		FindByLanguageFn: func(context.Context, string) (*domain.Terms, error) {
			return nil, domain.ErrTermsNotFound
		},
	}
	svc := NewTermsService(repo)

	_, err := svc.Terms(context.Background(), "de")
	if !errors.Is(err, domain.ErrTermsNotFound) {
		t.Errorf("Terms() error = %v, want ErrTermsNotFound", err)
	}
}
