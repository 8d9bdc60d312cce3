package translation_test

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockStore is a testify mock of the translation.Store interface.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) GetTranslation(ctx context.Context, locale, objectClass, field, foreignKey string) (string, bool, error) {
	args := m.Called(locale, objectClass, field, foreignKey)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockStore) UpsertTranslation(ctx context.Context, locale, objectClass, field, foreignKey, content string) error {
	args := m.Called(locale, objectClass, field, foreignKey, content)
	return args.Error(0)
}

// MockCache is a testify mock of the translation.Cache interface.
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, text, locale string) (string, bool, error) {
	args := m.Called(text, locale)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockCache) Set(ctx context.Context, text, locale, content string) error {
	args := m.Called(text, locale, content)
	return args.Error(0)
}

// MockCatalog is a testify mock of the translation.Catalog interface.
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) Lookup(text, locale string) (string, bool) {
	args := m.Called(text, locale)
	return args.String(0), args.Bool(1)
}

// MockTranslator is a testify mock of the translation.Translator interface.
type MockTranslator struct {
	mock.Mock
}

func (m *MockTranslator) Translate(ctx context.Context, text, sourceLocale, targetLocale string) (string, error) {
	args := m.Called(text, sourceLocale, targetLocale)
	return args.String(0), args.Error(1)
}
