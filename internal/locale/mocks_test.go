package locale_test

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockSessionStore is a testify mock of the locale.SessionStore interface.
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) GetSessionLocale(ctx context.Context, sessionID string) (string, error) {
	args := m.Called(sessionID)
	return args.String(0), args.Error(1)
}

func (m *MockSessionStore) SetSessionLocale(ctx context.Context, sessionID, locale string) error {
	args := m.Called(sessionID, locale)
	return args.Error(0)
}

// MockGeoClient is a testify mock of the locale.GeoClient interface.
type MockGeoClient struct {
	mock.Mock
}

func (m *MockGeoClient) CountryForIP(ctx context.Context, ip string) (string, error) {
	args := m.Called(ip)
	return args.String(0), args.Error(1)
}
