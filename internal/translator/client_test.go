package translator_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"marketgogo/backend/internal/translator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newProvider spins up a fake provider returning the given translations for
// every /translate call and counts the requests it receives.
func newProvider(t *testing.T, status int, body string, calls *atomic.Int64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "DeepL-Auth-Key test-key", r.Header.Get("Authorization"))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

// TestTranslate_Success verifies a single-text translation round trip.
func TestTranslate_Success(t *testing.T) {
	// Arrange
	var calls atomic.Int64
	server := newProvider(t, http.StatusOK, `{"translations":[{"text":"Hello World!"}]}`, &calls)
	defer server.Close()
	client := translator.NewClient("test-key", server.URL)

	// Act
	got, err := client.Translate(context.Background(), "Merhaba Dünya!", "tr", "en")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Hello World!", got)
	assert.Equal(t, int64(1), calls.Load())
}

// TestTranslate_SameLocaleNoNetwork verifies that identical source and
// target locales short-circuit with zero network calls.
func TestTranslate_SameLocaleNoNetwork(t *testing.T) {
	// Arrange
	var calls atomic.Int64
	server := newProvider(t, http.StatusOK, `{}`, &calls)
	defer server.Close()
	client := translator.NewClient("test-key", server.URL)

	// Act
	got, err := client.Translate(context.Background(), "Merhaba", "tr", "tr")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Merhaba", got)
	assert.Equal(t, int64(0), calls.Load(), "Same-locale translation must not call the provider")
}

// TestTranslate_WhitespaceOnlyNoNetwork verifies that empty and
// whitespace-only text is returned unchanged without a network call.
func TestTranslate_WhitespaceOnlyNoNetwork(t *testing.T) {
	// Arrange
	var calls atomic.Int64
	server := newProvider(t, http.StatusOK, `{}`, &calls)
	defer server.Close()
	client := translator.NewClient("test-key", server.URL)

	// Act
	got, err := client.Translate(context.Background(), "   ", "tr", "en")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "   ", got)
	assert.Equal(t, int64(0), calls.Load())
}

// TestTranslate_NotConfigured verifies the missing-key degradation.
func TestTranslate_NotConfigured(t *testing.T) {
	client := translator.NewClient("", "http://unused.invalid")

	_, err := client.Translate(context.Background(), "Merhaba", "tr", "en")

	assert.ErrorIs(t, err, translator.ErrNotConfigured)
}

// TestTranslate_ProviderError verifies that a non-success status surfaces as
// an error, never a panic.
func TestTranslate_ProviderError(t *testing.T) {
	// Arrange
	var calls atomic.Int64
	server := newProvider(t, http.StatusServiceUnavailable, `upstream down`, &calls)
	defer server.Close()
	client := translator.NewClient("test-key", server.URL)

	// Act
	_, err := client.Translate(context.Background(), "Merhaba", "tr", "en")

	// Assert
	assert.Error(t, err)
}

// TestTranslate_MalformedResponse verifies that undecodable provider output
// is an error.
func TestTranslate_MalformedResponse(t *testing.T) {
	var calls atomic.Int64
	server := newProvider(t, http.StatusOK, `{"translations": "nope"`, &calls)
	defer server.Close()
	client := translator.NewClient("test-key", server.URL)

	_, err := client.Translate(context.Background(), "Merhaba", "tr", "en")

	assert.Error(t, err)
}

// TestTranslateBatch_Success verifies that batch results map back to the
// caller's keys.
func TestTranslateBatch_Success(t *testing.T) {
	// Arrange - the fake provider echoes each text with a marker, preserving
	// request order, so key pairing can be asserted.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		w.WriteHeader(http.StatusOK)
		body := `{"translations":[`
		for i, text := range r.PostForm["text"] {
			if i > 0 {
				body += ","
			}
			body += `{"text":"<` + text + `>"}`
		}
		body += `]}`
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()
	client := translator.NewClient("test-key", server.URL)

	// Act
	results := client.TranslateBatch(context.Background(), map[string]string{
		"name":        "Merhaba",
		"description": "Dünya",
	}, "tr", "en")

	// Assert
	require.Len(t, results, 2)
	require.NotNil(t, results["name"])
	require.NotNil(t, results["description"])
	assert.Equal(t, "<Merhaba>", *results["name"])
	assert.Equal(t, "<Dünya>", *results["description"])
}

// TestTranslateBatch_TotalFailure verifies that a provider failure yields a
// same-shaped map with every value nil.
func TestTranslateBatch_TotalFailure(t *testing.T) {
	// Arrange
	var calls atomic.Int64
	server := newProvider(t, http.StatusInternalServerError, `boom`, &calls)
	defer server.Close()
	client := translator.NewClient("test-key", server.URL)

	// Act
	results := client.TranslateBatch(context.Background(), map[string]string{
		"name":        "Merhaba",
		"description": "Dünya",
	}, "tr", "en")

	// Assert
	require.Len(t, results, 2)
	assert.Nil(t, results["name"])
	assert.Nil(t, results["description"])
}

// TestTranslateBatch_SameLocalePassthrough verifies the zero-network
// same-locale shape for batches.
func TestTranslateBatch_SameLocalePassthrough(t *testing.T) {
	client := translator.NewClient("test-key", "http://unused.invalid")

	results := client.TranslateBatch(context.Background(), map[string]string{"name": "Merhaba"}, "tr", "tr")

	require.NotNil(t, results["name"])
	assert.Equal(t, "Merhaba", *results["name"])
}

// TestUsage_Success verifies the quota endpoint decoding.
func TestUsage_Success(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/usage", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"character_count":12345,"character_limit":500000}`))
	}))
	defer server.Close()
	client := translator.NewClient("test-key", server.URL)

	// Act
	usage, err := client.Usage(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(12345), usage.CharacterCount)
	assert.Equal(t, int64(500000), usage.CharacterLimit)
}

// TestUsage_NotConfigured verifies the missing-key behavior of the quota
// endpoint.
func TestUsage_NotConfigured(t *testing.T) {
	client := translator.NewClient("", "http://unused.invalid")

	_, err := client.Usage(context.Background())

	assert.ErrorIs(t, err, translator.ErrNotConfigured)
}
