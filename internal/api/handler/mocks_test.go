package handler_test

import (
	"context"

	"marketgogo/backend/internal/models"
	"marketgogo/backend/internal/translator"

	"github.com/stretchr/testify/mock"
)

// MockStorage is a testify mock of the storage.Storage interface.
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) GetTranslation(ctx context.Context, locale, objectClass, field, foreignKey string) (string, bool, error) {
	args := m.Called(locale, objectClass, field, foreignKey)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockStorage) UpsertTranslation(ctx context.Context, locale, objectClass, field, foreignKey, content string) error {
	args := m.Called(locale, objectClass, field, foreignKey, content)
	return args.Error(0)
}

func (m *MockStorage) CountTranslationsByLocale(ctx context.Context) (map[string]int64, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

func (m *MockStorage) PurgeOrphanTranslations(ctx context.Context, objectClass, table, keyColumn string) (int64, error) {
	args := m.Called(objectClass, table, keyColumn)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStorage) GetSessionLocale(ctx context.Context, sessionID string) (string, error) {
	args := m.Called(sessionID)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) SetSessionLocale(ctx context.Context, sessionID, locale string) error {
	args := m.Called(sessionID, locale)
	return args.Error(0)
}

func (m *MockStorage) SaveProduct(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockStorage) GetProductByPublicID(publicID string) (*models.Product, error) {
	args := m.Called(publicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockStorage) ListProducts(limit, offset int) ([]models.Product, error) {
	args := m.Called(limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockStorage) SaveCompany(company *models.Company) error {
	args := m.Called(company)
	return args.Error(0)
}

func (m *MockStorage) GetCompanyByPublicID(publicID string) (*models.Company, error) {
	args := m.Called(publicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Company), args.Error(1)
}

// stubCatalog is a catalog that always misses; handler tests drive
// resolution through the store instead.
type stubCatalog struct{}

func (stubCatalog) Lookup(text, locale string) (string, bool) { return "", false }

// stubTranslator simulates an unavailable provider so handler tests exercise
// the fallback path whenever the store misses.
type stubTranslator struct{}

func (stubTranslator) Translate(ctx context.Context, text, sourceLocale, targetLocale string) (string, error) {
	return "", translator.ErrNotConfigured
}

// MockUsageClient is a testify mock of the handler.UsageClient interface.
type MockUsageClient struct {
	mock.Mock
}

func (m *MockUsageClient) Usage(ctx context.Context) (*translator.UsageInfo, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*translator.UsageInfo), args.Error(1)
}
