// Package translation is the resolution orchestrator of the smart
// translation pipeline. It renders user-facing text in a requested locale by
// consulting, in strict order, the static catalog, the durable translation
// store (for record-bound fields) or the ephemeral cache (for free-form
// text), and finally the external provider, writing fetched translations
// back so later requests stay off the network.
//
// Translation is an enhancement, not a requirement: both entry points always
// return a renderable string, falling back to the source text when every
// strategy misses.
package translation

import (
	"context"
	"errors"
	"log"
)

// ErrUnsavedRecord reports an attempt to translate a record that has no
// identifier yet. This is a caller bug, not a translation miss, and fails
// loudly instead of writing an orphan row.
var ErrUnsavedRecord = errors.New("translation: record has no identifier")

// ErrUnknownField reports a field with no registered accessor.
var ErrUnknownField = errors.New("translation: field not registered")

// Store is the durable translation store consumed by the orchestrator.
type Store interface {
	GetTranslation(ctx context.Context, locale, objectClass, field, foreignKey string) (string, bool, error)
	UpsertTranslation(ctx context.Context, locale, objectClass, field, foreignKey, content string) error
}

// Catalog is the static catalog lookup.
type Catalog interface {
	Lookup(text, locale string) (string, bool)
}

// Cache is the ephemeral cache for free-form text.
type Cache interface {
	Get(ctx context.Context, text, locale string) (string, bool, error)
	Set(ctx context.Context, text, locale, content string) error
}

// Translator is the external provider client.
type Translator interface {
	Translate(ctx context.Context, text, sourceLocale, targetLocale string) (string, error)
}

// Service implements the resolution chain.
type Service struct {
	store    Store
	cache    Cache
	catalog  Catalog
	client   Translator
	registry *Registry
}

// NewService creates the orchestrator over its four strategies.
func NewService(store Store, c Cache, catalog Catalog, client Translator, registry *Registry) *Service {
	return &Service{
		store:    store,
		cache:    c,
		catalog:  catalog,
		client:   client,
		registry: registry,
	}
}

// ResolveField renders one field of a record in the target locale. It never
// fails: any error is logged and the source-locale value is returned.
func (s *Service) ResolveField(ctx context.Context, rec Record, field, targetLocale, sourceLocale string) string {
	content, err := s.resolveField(ctx, rec, field, targetLocale, sourceLocale)
	if err != nil {
		log.Printf("ERROR: Field resolution failed for %s.%s#%s (%s): %v",
			rec.ObjectClass(), field, rec.RecordKey(), targetLocale, err)
	}
	return content
}

// ResolveFieldErr is ResolveField for callers that must see the precondition
// errors (unsaved record, unregistered field) instead of a silent fallback.
func (s *Service) ResolveFieldErr(ctx context.Context, rec Record, field, targetLocale, sourceLocale string) (string, error) {
	return s.resolveField(ctx, rec, field, targetLocale, sourceLocale)
}

func (s *Service) resolveField(ctx context.Context, rec Record, field, targetLocale, sourceLocale string) (string, error) {
	access, ok := s.registry.Lookup(rec.ObjectClass(), field)
	if !ok {
		return "", ErrUnknownField
	}

	// Same locale: the entity already carries the text, no store interaction.
	if targetLocale == sourceLocale {
		return access.Get(rec), nil
	}

	// Translating an unsaved record would key rows by an empty identifier.
	if rec.RecordKey() == "" {
		return access.Get(rec), ErrUnsavedRecord
	}

	stored, hit, err := s.store.GetTranslation(ctx, targetLocale, rec.ObjectClass(), field, rec.RecordKey())
	if err == nil && hit {
		return stored, nil
	}
	// A store read error is a miss; the chain continues.

	original := access.Get(rec)
	if original == "" {
		return original, nil
	}

	translated, err := s.client.Translate(ctx, original, sourceLocale, targetLocale)
	if err != nil {
		// Best effort: the caller gets the untranslated source text and no
		// store write happens.
		return original, nil
	}

	if err := s.store.UpsertTranslation(ctx, targetLocale, rec.ObjectClass(), field, rec.RecordKey(), translated); err != nil {
		// The translation itself succeeded; only the write-back is lost.
		log.Printf("ERROR: Failed to persist translation for %s.%s#%s (%s): %v",
			rec.ObjectClass(), field, rec.RecordKey(), targetLocale, err)
	}
	return translated, nil
}

// ResolveText renders a free-form string in the target locale: catalog, then
// cache, then the external provider with a cache write-through. Every miss
// or failure falls back to the input text.
func (s *Service) ResolveText(ctx context.Context, text, targetLocale, sourceLocale string) string {
	if targetLocale == sourceLocale {
		return text
	}

	if translated, ok := s.catalog.Lookup(text, targetLocale); ok {
		return translated
	}

	cached, hit, err := s.cache.Get(ctx, text, targetLocale)
	if err != nil {
		log.Printf("ERROR: Translation cache read failed (%s, %d chars): %v", targetLocale, len(text), err)
	} else if hit {
		return cached
	}

	translated, err := s.client.Translate(ctx, text, sourceLocale, targetLocale)
	if err == nil && translated != text {
		if err := s.cache.Set(ctx, text, targetLocale, translated); err != nil {
			log.Printf("ERROR: Translation cache write failed (%s, %d chars): %v", targetLocale, len(text), err)
		}
		return translated
	}

	return text
}

// ResolveFields resolves several fields of one record, continuing past
// per-field failures, and returns field name -> rendered text.
func (s *Service) ResolveFields(ctx context.Context, rec Record, fields []string, targetLocale, sourceLocale string) map[string]string {
	resolved := make(map[string]string, len(fields))
	for _, field := range fields {
		resolved[field] = s.ResolveField(ctx, rec, field, targetLocale, sourceLocale)
	}
	return resolved
}

// LocalizeRecord writes the resolved text of every given field back onto the
// record through the registered mutators. Callers pass a copy when the
// original must keep its source-locale values.
func (s *Service) LocalizeRecord(ctx context.Context, rec Record, fields []string, targetLocale, sourceLocale string) {
	for _, field := range fields {
		access, ok := s.registry.Lookup(rec.ObjectClass(), field)
		if !ok {
			log.Printf("ERROR: Cannot localize unregistered field %s.%s", rec.ObjectClass(), field)
			continue
		}
		access.Set(rec, s.ResolveField(ctx, rec, field, targetLocale, sourceLocale))
	}
}
