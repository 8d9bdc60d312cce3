// Package locale resolves the active locale for an inbound request from a
// fixed precedence of signals: explicit query override, session preference,
// geo-IP country, browser Accept-Language, default. Whatever is resolved is
// written back to the session so later requests short-circuit on the session
// check.
package locale

import (
	"context"
	"log"
	"net"
	"strings"

	"marketgogo/backend/internal/config"
)

// SessionStore is the narrow session surface the detector needs.
type SessionStore interface {
	GetSessionLocale(ctx context.Context, sessionID string) (string, error)
	SetSessionLocale(ctx context.Context, sessionID, locale string) error
}

// GeoClient resolves an IP address to a two-letter country code.
type GeoClient interface {
	CountryForIP(ctx context.Context, ip string) (string, error)
}

// Request carries the locale-relevant attributes of an inbound HTTP request.
type Request struct {
	SessionID      string
	QueryLocale    string
	ClientIP       string
	AcceptLanguage string
}

// Detector implements the locale resolution chain.
type Detector struct {
	sessions      SessionStore
	geo           GeoClient
	supported     map[string]bool
	supportedList []string
	defaultLocale string
}

// NewDetector creates a detector for the given supported locale set. The
// first precedence signals always win over later ones; the default locale
// is the terminal fallback.
func NewDetector(sessions SessionStore, geo GeoClient, supported []string, defaultLocale string) *Detector {
	set := make(map[string]bool, len(supported))
	for _, code := range supported {
		set[code] = true
	}
	return &Detector{
		sessions:      sessions,
		geo:           geo,
		supported:     set,
		supportedList: supported,
		defaultLocale: defaultLocale,
	}
}

// Detect resolves the active locale for a request. It never fails: external
// signals that error out are logged and skipped, and the default locale is
// always available as the last step. Every resolution except a session hit
// persists the result back to the session.
func (d *Detector) Detect(ctx context.Context, req Request) string {
	// 1. Explicit query override wins over everything, including session.
	if req.QueryLocale != "" && d.supported[req.QueryLocale] {
		d.persist(ctx, req.SessionID, req.QueryLocale)
		return req.QueryLocale
	}

	// 2. Session-stored preference.
	if req.SessionID != "" {
		sessionLocale, err := d.sessions.GetSessionLocale(ctx, req.SessionID)
		if err != nil {
			log.Printf("ERROR: Failed to read session locale for %s: %v", req.SessionID, err)
		} else if d.supported[sessionLocale] {
			return sessionLocale
		}
	}

	// 3. Geo-IP, skipped for loopback callers.
	if ipLocale := d.detectFromIP(ctx, req.ClientIP); ipLocale != "" {
		d.persist(ctx, req.SessionID, ipLocale)
		return ipLocale
	}

	// 4. Browser Accept-Language. The default locale is deliberately skipped
	// here so a generic browser default never outranks the geo signal.
	if browserLocale := d.detectFromAcceptLanguage(req.AcceptLanguage); browserLocale != "" && browserLocale != d.defaultLocale {
		d.persist(ctx, req.SessionID, browserLocale)
		return browserLocale
	}

	// 5. Default locale.
	d.persist(ctx, req.SessionID, d.defaultLocale)
	return d.defaultLocale
}

func (d *Detector) detectFromIP(ctx context.Context, clientIP string) string {
	if clientIP == "" || isLoopback(clientIP) {
		return ""
	}
	if d.geo == nil {
		return ""
	}

	country, err := d.geo.CountryForIP(ctx, clientIP)
	if err != nil {
		log.Printf("WARN: IP locale detection failed for %s: %v", clientIP, err)
		return ""
	}

	locale, ok := config.CountryToLocale[country]
	if !ok || !d.supported[locale] {
		return ""
	}

	log.Printf("INFO: Locale %s detected from IP %s (country %s)", locale, clientIP, country)
	return locale
}

// detectFromAcceptLanguage extracts the primary 2-letter language tags from
// an Accept-Language header in header order and returns the first supported
// one.
func (d *Detector) detectFromAcceptLanguage(header string) string {
	if header == "" {
		return ""
	}

	for _, part := range strings.Split(header, ",") {
		lang := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if len(lang) < 2 {
			continue
		}
		code := strings.ToLower(lang[:2])
		if d.supported[code] {
			return code
		}
	}
	return ""
}

func (d *Detector) persist(ctx context.Context, sessionID, locale string) {
	if sessionID == "" {
		return
	}
	if err := d.sessions.SetSessionLocale(ctx, sessionID, locale); err != nil {
		log.Printf("ERROR: Failed to persist session locale %s for %s: %v", locale, sessionID, err)
	}
}

// Supported returns the supported locale codes in configuration order.
func (d *Detector) Supported() []string {
	return d.supportedList
}

// Default returns the default locale code.
func (d *Detector) Default() string {
	return d.defaultLocale
}

// DisplayName returns the native display name of a locale code, or the code
// itself when unknown.
func DisplayName(code string) string {
	if name, ok := config.LocaleDisplayNames[code]; ok {
		return name
	}
	return code
}

func isLoopback(ip string) bool {
	parsed := net.ParseIP(ip)
	return parsed != nil && parsed.IsLoopback()
}
