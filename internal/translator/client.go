// Package translator wraps the external machine-translation provider
// (DeepL API shape). It is the last-resort path of the translation pipeline:
// callers treat every error as a miss and fall back to the source text, so
// no method here ever panics, and failures carry only locale and length
// metadata into the logs, never the text itself.
package translator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"

	"marketgogo/backend/internal/config"
)

// ErrNotConfigured is returned when no API key is set. The pipeline degrades
// to a permanent miss in this state.
var ErrNotConfigured = errors.New("translator: API key not configured")

// Client calls the translation provider.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
}

// UsageInfo reports the provider's quota consumption counters.
type UsageInfo struct {
	CharacterCount int64 `json:"character_count"`
	CharacterLimit int64 `json:"character_limit"`
}

type translateResponse struct {
	Translations []struct {
		Text string `json:"text"`
	} `json:"translations"`
}

// NewClient creates a provider client. An empty apiKey is allowed; every
// network method then returns ErrNotConfigured.
func NewClient(apiKey, baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{},
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// Translate translates a single text. Same source and target locale, or
// empty/whitespace-only text, short-circuits to the input with no network
// call.
func (c *Client) Translate(ctx context.Context, text, sourceLocale, targetLocale string) (string, error) {
	if sourceLocale == targetLocale {
		return text, nil
	}
	if strings.TrimSpace(text) == "" {
		return text, nil
	}
	if c.apiKey == "" {
		log.Printf("WARN: Translation API key not configured")
		return "", ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, config.TranslateTimeout)
	defer cancel()

	translations, err := c.request(ctx, []string{text}, sourceLocale, targetLocale)
	if err != nil {
		log.Printf("ERROR: Translation failed (%s -> %s, %d chars): %v",
			sourceLocale, targetLocale, len(text), err)
		return "", err
	}
	if len(translations) != 1 {
		log.Printf("ERROR: Translation returned %d results for one text (%s -> %s)",
			len(translations), sourceLocale, targetLocale)
		return "", fmt.Errorf("translator: unexpected result count %d", len(translations))
	}

	log.Printf("INFO: Text translated %s -> %s (%d -> %d chars)",
		sourceLocale, targetLocale, len(text), len(translations[0]))
	return translations[0], nil
}

// TranslateBatch translates many texts keyed by caller-supplied keys and
// returns a same-shaped map. A nil value marks a failed translation; on
// total failure every value is nil. The method never returns an error to
// keep batch callers on the collect-and-continue path.
func (c *Client) TranslateBatch(ctx context.Context, texts map[string]string, sourceLocale, targetLocale string) map[string]*string {
	results := make(map[string]*string, len(texts))

	if sourceLocale == targetLocale {
		for key := range texts {
			value := texts[key]
			results[key] = &value
		}
		return results
	}

	for key := range texts {
		results[key] = nil
	}
	if c.apiKey == "" || len(texts) == 0 {
		return results
	}

	// Key order must pair request texts with response entries, so the keys
	// are frozen into a slice before the call.
	keys := make([]string, 0, len(texts))
	values := make([]string, 0, len(texts))
	for key, value := range texts {
		keys = append(keys, key)
		values = append(values, value)
	}

	ctx, cancel := context.WithTimeout(ctx, config.TranslateBatchTimeout)
	defer cancel()

	translations, err := c.request(ctx, values, sourceLocale, targetLocale)
	if err != nil {
		log.Printf("ERROR: Batch translation failed (%s -> %s, %d texts): %v",
			sourceLocale, targetLocale, len(texts), err)
		return results
	}

	for i, translated := range translations {
		if i >= len(keys) {
			break
		}
		value := translated
		results[keys[i]] = &value
	}
	return results
}

// Usage fetches the provider's quota counters.
func (c *Client) Usage(ctx context.Context) (*UsageInfo, error) {
	if c.apiKey == "" {
		return nil, ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, config.UsageTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/usage", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "DeepL-Auth-Key "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("ERROR: Failed to get translation usage info: %v", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("translator: usage endpoint returned status %d", resp.StatusCode)
	}

	var usage UsageInfo
	if err := json.NewDecoder(resp.Body).Decode(&usage); err != nil {
		return nil, fmt.Errorf("translator: failed to decode usage response: %w", err)
	}
	return &usage, nil
}

// request issues one /translate call with the given texts and returns the
// translated texts in request order.
func (c *Client) request(ctx context.Context, texts []string, sourceLocale, targetLocale string) ([]string, error) {
	form := url.Values{}
	for _, text := range texts {
		form.Add("text", text)
	}
	form.Set("source_lang", providerCode(sourceLocale, config.FallbackSourceCode))
	form.Set("target_lang", providerCode(targetLocale, config.FallbackTargetCode))
	form.Set("preserve_formatting", "1")
	form.Set("formality", "default")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/translate", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "DeepL-Auth-Key "+c.apiKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("translator: provider returned status %d", resp.StatusCode)
	}

	var decoded translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("translator: failed to decode response: %w", err)
	}

	translations := make([]string, len(decoded.Translations))
	for i, t := range decoded.Translations {
		translations[i] = t.Text
	}
	return translations, nil
}

// providerCode maps an internal locale code to the provider's language code,
// defaulting to the configured fallback for unknown locales.
func providerCode(locale, fallback string) string {
	if code, ok := config.LocaleToProvider[locale]; ok {
		return code
	}
	return fallback
}
