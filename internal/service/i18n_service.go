package service

import (
	"context"
	"encoding/json"
	"fmt"

	"investpro/internal/errors"
	"investpro/internal/repository"
	"investpro/internal/validation"
)

// TranslationService manages the language-keyed translation documents served
// to the frontend.
type TranslationService interface {
	Translations(ctx context.Context, lang string) (json.RawMessage, error)
	UpdateLanguage(ctx context.Context, lang string, doc json.RawMessage) error
	AddLanguage(ctx context.Context, lang string, doc json.RawMessage) error
	DeleteLanguage(ctx context.Context, lang string) error
	Languages(ctx context.Context) ([]string, error)
}

type translationService struct {
	repo repository.TranslationRepository
}

// NewTranslationService creates a new translation service.
func NewTranslationService(repo repository.TranslationRepository) TranslationService {
	return &translationService{repo: repo}
}

func (s *translationService) Translations(ctx context.Context, lang string) (json.RawMessage, error) {
	doc, err := s.repo.Get(ctx, lang)
	if err != nil {
		return nil, s.mapError(err)
	}
	return doc, nil
}

func (s *translationService) UpdateLanguage(ctx context.Context, lang string, doc json.RawMessage) error {
	if err := validDocument(doc); err != nil {
		return err
	}
	if err := s.repo.Set(ctx, lang, doc); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *translationService) AddLanguage(ctx context.Context, lang string, doc json.RawMessage) error {
	if lang == "" {
		return validation.FieldErrors{{Field: "lang", Message: "is required"}}
	}
	return s.UpdateLanguage(ctx, lang, doc)
}

func (s *translationService) DeleteLanguage(ctx context.Context, lang string) error {
	if err := s.repo.Delete(ctx, lang); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *translationService) Languages(ctx context.Context) ([]string, error) {
	langs, err := s.repo.Languages(ctx)
	if err != nil {
		return nil, s.mapError(err)
	}
	return langs, nil
}

func (s *translationService) mapError(err error) error {
	if err == repository.ErrTranslationNotFound {
		return errors.ErrLanguageNotFound
	}
	if errors.IsUnavailable(err) {
		return errors.ErrStoreUnavailable
	}
	return fmt.Errorf("translation store: %w", err)
}

func validDocument(doc json.RawMessage) error {
	if len(doc) == 0 || !json.Valid(doc) {
		return validation.FieldErrors{{Field: "translations", Message: "must be a valid JSON document"}}
	}
	return nil
}
