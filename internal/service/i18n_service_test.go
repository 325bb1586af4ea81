package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"investpro/internal/errors"
	"investpro/internal/repository"
	"investpro/internal/validation"
)

func newTestTranslationService(t *testing.T) TranslationService {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewTranslationService(repository.NewTranslationRepository(rdb))
}

func TestTranslationService_AddAndFetch(t *testing.T) {
	svc := newTestTranslationService(t)
	ctx := context.Background()

	doc := json.RawMessage(`{"home":{"title":"Bienvenido"}}`)
	assert.NoError(t, svc.AddLanguage(ctx, "es", doc))

	got, err := svc.Translations(ctx, "es")
	assert.NoError(t, err)
	assert.JSONEq(t, string(doc), string(got))

	langs, err := svc.Languages(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []string{"es"}, langs)
}

func TestTranslationService_UnknownLanguage(t *testing.T) {
	svc := newTestTranslationService(t)

	_, err := svc.Translations(context.Background(), "de")
	assert.ErrorIs(t, err, errors.ErrLanguageNotFound)
}

func TestTranslationService_RejectsInvalidDocuments(t *testing.T) {
	svc := newTestTranslationService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		lang string
		doc  json.RawMessage
	}{
		{"malformed json", "es", json.RawMessage(`{"home":`)},
		{"empty document", "es", nil},
		{"missing lang", "", json.RawMessage(`{}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.AddLanguage(ctx, tt.lang, tt.doc)
			var ferrs validation.FieldErrors
			assert.ErrorAs(t, err, &ferrs)
		})
	}
}

func TestTranslationService_UpdateReplacesDocument(t *testing.T) {
	svc := newTestTranslationService(t)
	ctx := context.Background()

	assert.NoError(t, svc.AddLanguage(ctx, "pt", json.RawMessage(`{"v":1}`)))
	assert.NoError(t, svc.UpdateLanguage(ctx, "pt", json.RawMessage(`{"v":2}`)))

	got, err := svc.Translations(ctx, "pt")
	assert.NoError(t, err)
	assert.JSONEq(t, `{"v":2}`, string(got))
}

func TestTranslationService_DeleteLanguage(t *testing.T) {
	svc := newTestTranslationService(t)
	ctx := context.Background()

	assert.NoError(t, svc.AddLanguage(ctx, "es", json.RawMessage(`{}`)))
	assert.NoError(t, svc.DeleteLanguage(ctx, "es"))

	_, err := svc.Translations(ctx, "es")
	assert.ErrorIs(t, err, errors.ErrLanguageNotFound)
}
