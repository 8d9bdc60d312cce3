// Package handler exposes the HTTP surface: localized product reads, the
// locale switcher data, and the translation quota report. A middleware
// resolves the active locale once per request and hands it to the handlers
// through the Gin context.
package handler

import (
	"context"

	"marketgogo/backend/internal/locale"
	"marketgogo/backend/internal/storage"
	"marketgogo/backend/internal/translation"
	"marketgogo/backend/internal/translator"
)

const (
	// localeContextKey is where the middleware stores the resolved locale.
	localeContextKey = "active_locale"
	// sessionCookie carries the anonymous session identifier.
	sessionCookie = "sid"
)

// UsageClient is the narrow provider surface the quota endpoint needs.
type UsageClient interface {
	Usage(ctx context.Context) (*translator.UsageInfo, error)
}

type Handler struct {
	Storage      storage.Storage
	Detector     *locale.Detector
	Translations *translation.Service
	Usage        UsageClient
}

// NewHandler creates the handler set over its collaborators.
func NewHandler(s storage.Storage, d *locale.Detector, t *translation.Service, u UsageClient) *Handler {
	return &Handler{
		Storage:      s,
		Detector:     d,
		Translations: t,
		Usage:        u,
	}
}
