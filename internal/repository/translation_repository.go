package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/redis/go-redis/v9"
)

const i18nKeyPrefix = "i18n:"

// ErrTranslationNotFound is returned when no document exists for a language.
var ErrTranslationNotFound = redis.Nil

// TranslationRepository stores translation documents as JSON values keyed by
// language code. Unlike the cache wrapper, redis here is the source of truth,
// so connectivity errors are surfaced to the caller.
type TranslationRepository interface {
	Get(ctx context.Context, lang string) (json.RawMessage, error)
	Set(ctx context.Context, lang string, doc json.RawMessage) error
	Delete(ctx context.Context, lang string) error
	Languages(ctx context.Context) ([]string, error)
	// SeedDefaults loads the bundled en/pt documents unless translations
	// already exist.
	SeedDefaults(ctx context.Context) error
}

type translationRepository struct {
	rdb *redis.Client
}

// NewTranslationRepository builds a redis-backed translation store.
func NewTranslationRepository(rdb *redis.Client) TranslationRepository {
	return &translationRepository{rdb: rdb}
}

func (r *translationRepository) key(lang string) string {
	return i18nKeyPrefix + lang
}

func (r *translationRepository) Get(ctx context.Context, lang string) (json.RawMessage, error) {
	data, err := r.rdb.Get(ctx, r.key(lang)).Bytes()
	if err == redis.Nil {
		return nil, ErrTranslationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get translations %q: %w", lang, err)
	}
	return json.RawMessage(data), nil
}

func (r *translationRepository) Set(ctx context.Context, lang string, doc json.RawMessage) error {
	if err := r.rdb.Set(ctx, r.key(lang), []byte(doc), 0).Err(); err != nil {
		return fmt.Errorf("set translations %q: %w", lang, err)
	}
	return nil
}

func (r *translationRepository) Delete(ctx context.Context, lang string) error {
	if err := r.rdb.Del(ctx, r.key(lang)).Err(); err != nil {
		return fmt.Errorf("delete translations %q: %w", lang, err)
	}
	return nil
}

func (r *translationRepository) Languages(ctx context.Context) ([]string, error) {
	var langs []string
	iter := r.rdb.Scan(ctx, 0, i18nKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		langs = append(langs, strings.TrimPrefix(iter.Val(), i18nKeyPrefix))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("list languages: %w", err)
	}
	sort.Strings(langs)
	return langs, nil
}

func (r *translationRepository) SeedDefaults(ctx context.Context) error {
	exists, err := r.rdb.Exists(ctx, r.key("en")).Result()
	if err != nil {
		return fmt.Errorf("check seed marker: %w", err)
	}
	if exists > 0 {
		return nil
	}
	for lang, doc := range defaultTranslations {
		if err := r.Set(ctx, lang, doc); err != nil {
			return err
		}
	}
	return nil
}
