package intelligence

import (
	"golang.org/x/text/language"
)

// DefaultLanguage is used when neither the user nor the request names one
const DefaultLanguage = "zh"

// SupportedLanguages are the output languages the prompts are written for
var SupportedLanguages = []string{"zh", "en", "ja", "ko"}

var languageMatcher = language.NewMatcher([]language.Tag{
	language.Chinese, // first entry is the fallback
	language.English,
	language.Japanese,
	language.Korean,
})

// IsSupportedLanguage reports whether lang is one of SupportedLanguages
func IsSupportedLanguage(lang string) bool {
	for _, l := range SupportedLanguages {
		if l == lang {
			return true
		}
	}
	return false
}

// ResolveLanguage picks the output language. The saved user setting wins;
// otherwise the Accept-Language header is matched against the supported set.
func ResolveLanguage(setting, acceptLanguage string) string {
	if IsSupportedLanguage(setting) {
		return setting
	}
	if acceptLanguage == "" {
		return DefaultLanguage
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLanguage
	}

	_, idx, confidence := languageMatcher.Match(tags...)
	if confidence == language.No {
		return DefaultLanguage
	}
	return SupportedLanguages[idx]
}
