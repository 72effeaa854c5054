package isoglot

import "strings"

// LanguageNames maps locale codes to human-readable names for oracle
// prompts.
var LanguageNames = map[string]string{
	"ar_SA": "Classical Arabic",
	"de_DE": "German (Germany)",
	"en_US": "English (United States)",
	"en_GB": "English (United Kingdom)",
	"es_ES": "Spanish (Spain)",
	"es_MX": "Spanish (Mexico)",
	"fa_IR": "Persian (Iran)",
	"fr_FR": "French (France)",
	"he_IL": "Hebrew (Israel)",
	"it_IT": "Italian (Italy)",
	"la_VA": "Latin",
	"pt_BR": "Portuguese (Brazil)",
	"pt_PT": "Portuguese (Portugal)",
	"ur_PK": "Urdu (Pakistan)",
}

// ShortCodeToLocale maps short language codes to full locale codes.
var ShortCodeToLocale = map[string]string{
	"ar": "ar_SA",
	"de": "de_DE",
	"en": "en_US",
	"es": "es_ES",
	"fa": "fa_IR",
	"fr": "fr_FR",
	"he": "he_IL",
	"it": "it_IT",
	"la": "la_VA",
	"pt": "pt_PT",
	"ur": "ur_PK",
}

// RTLLanguages contains language codes that use right-to-left text
// direction.
var RTLLanguages = map[string]bool{
	"ar": true, // Arabic
	"he": true, // Hebrew
	"fa": true, // Persian/Farsi
	"ur": true, // Urdu
	"ps": true, // Pashto
	"sd": true, // Sindhi
	"ug": true, // Uyghur
}

// GetLanguageName returns the human-readable name for a language code.
// Falls back to the code itself if not found.
func GetLanguageName(langCode string) string {
	if name, ok := LanguageNames[langCode]; ok {
		return name
	}
	// Try expanding short code
	if locale, ok := ShortCodeToLocale[langCode]; ok {
		if name, ok := LanguageNames[locale]; ok {
			return name
		}
	}
	return langCode
}

// GetDirection returns "rtl" for right-to-left languages, "ltr" otherwise.
func GetDirection(langCode string) string {
	// Extract base language code (e.g., "ar" from "ar_SA")
	base := strings.Split(langCode, "_")[0]
	base = strings.ToLower(base)

	if RTLLanguages[base] {
		return "rtl"
	}
	return "ltr"
}

// IsRTL returns true if the language uses right-to-left text direction.
func IsRTL(langCode string) bool {
	return GetDirection(langCode) == "rtl"
}

// NormalizeLocale converts a language code to the standard format (e.g.,
// "es-ES" → "es_ES").
func NormalizeLocale(langCode string) string {
	return strings.ReplaceAll(langCode, "-", "_")
}
