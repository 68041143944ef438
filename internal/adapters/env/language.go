package env

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

var localeVars = []string{"LC_ALL", "LC_MESSAGES", "LANG"}

// DetectLanguage reads the POSIX locale variables in precedence order and
// returns fallback when none names a usable language.
func DetectLanguage(fallback language.Tag) language.Tag {
	for _, key := range localeVars {
		value := os.Getenv(key)
		if value == "" {
			continue
		}
		if tag, ok := ParseLocale(value); ok {
			return tag
		}
	}
	return fallback
}

// ParseLocale turns "zh_CN.UTF-8" or "en_US@euro" into a language tag.
func ParseLocale(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if i := strings.IndexAny(value, ".@"); i >= 0 {
		value = value[:i]
	}
	if value == "" || value == "C" || value == "POSIX" {
		return language.Und, false
	}

	tag, err := language.Parse(strings.ReplaceAll(value, "_", "-"))
	if err != nil {
		return language.Und, false
	}
	return tag, true
}
