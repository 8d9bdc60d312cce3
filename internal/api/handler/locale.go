package handler

import (
	"net/http"
	"net/url"

	"marketgogo/backend/internal/locale"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LocaleMiddleware resolves the active locale for every request and stores
// it in the Gin context. First-time visitors get an anonymous session cookie
// so their resolved locale sticks across requests.
func (h *Handler) LocaleMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(sessionCookie)
		if err != nil || sessionID == "" {
			sessionID = uuid.New().String()
			c.SetCookie(sessionCookie, sessionID, 3600*24*30, "/", "", false, true)
		}

		resolved := h.Detector.Detect(c.Request.Context(), locale.Request{
			SessionID:      sessionID,
			QueryLocale:    c.Query("_locale"),
			ClientIP:       c.ClientIP(),
			AcceptLanguage: c.GetHeader("Accept-Language"),
		})

		c.Set(localeContextKey, resolved)
		c.Next()
	}
}

// activeLocale returns the locale resolved by the middleware, falling back
// to the default when the middleware did not run.
func (h *Handler) activeLocale(c *gin.Context) string {
	if v, ok := c.Get(localeContextKey); ok {
		if code, ok := v.(string); ok && code != "" {
			return code
		}
	}
	return h.Detector.Default()
}

// GetLocales returns the supported locales with display names, the active
// locale, and per-locale switch URLs for the current page.
func (h *Handler) GetLocales(c *gin.Context) {
	active := h.activeLocale(c)

	type localeInfo struct {
		Code        string `json:"code"`
		DisplayName string `json:"display_name"`
		Active      bool   `json:"active"`
		SwitchURL   string `json:"switch_url"`
	}

	locales := make([]localeInfo, 0, len(h.Detector.Supported()))
	for _, code := range h.Detector.Supported() {
		locales = append(locales, localeInfo{
			Code:        code,
			DisplayName: locale.DisplayName(code),
			Active:      code == active,
			SwitchURL:   switchURL(c.Request.URL, code),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"current": active,
		"locales": locales,
	})
}

// switchURL rebuilds the current URL with the _locale override set to the
// given code.
func switchURL(u *url.URL, code string) string {
	q := u.Query()
	q.Set("_locale", code)
	switched := *u
	switched.RawQuery = q.Encode()
	return switched.String()
}
