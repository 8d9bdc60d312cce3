package config

import "time"

const (
	// Locale detection
	DefaultLocale = "tr"
	SessionTTL    = 30 * 24 * time.Hour

	// Ephemeral translation cache
	CacheTTL = time.Hour

	// External provider timeouts
	TranslateTimeout      = 10 * time.Second
	TranslateBatchTimeout = 30 * time.Second
	UsageTimeout          = 5 * time.Second
	GeoIPTimeout          = 3 * time.Second

	// Provider codes used when a locale is missing from LocaleToProvider
	FallbackSourceCode = "TR"
	FallbackTargetCode = "EN"
)

// LocaleToProvider maps internal locale codes to the codes the translation
// provider expects.
var LocaleToProvider = map[string]string{
	"tr": "TR",
	"en": "EN",
	"de": "DE",
	"ar": "AR",
}

// CountryToLocale maps geo-IP country codes to supported locales.
var CountryToLocale = map[string]string{
	"TR": "tr",
	"US": "en",
	"GB": "en",
	"CA": "en",
	"AU": "en",
	"DE": "de",
	"AT": "de",
	"CH": "de",
	"SA": "ar",
	"AE": "ar",
	"QA": "ar",
	"KW": "ar",
	"EG": "ar",
}

// LocaleDisplayNames maps supported locale codes to their native display names.
var LocaleDisplayNames = map[string]string{
	"tr": "Türkçe",
	"en": "English",
	"de": "Deutsch",
	"ar": "العربية",
}
