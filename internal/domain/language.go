package domain

// Language is a selectable source or target language
type Language struct {
	Code string
	Name string
}

var commonLanguages = [...]Language{
	{Code: "en", Name: "English"},
	{Code: "es", Name: "Spanish"},
	{Code: "fr", Name: "French"},
	{Code: "de", Name: "German"},
	{Code: "it", Name: "Italian"},
	{Code: "pt", Name: "Portuguese"},
	{Code: "ru", Name: "Russian"},
	{Code: "zh", Name: "Chinese"},
	{Code: "ja", Name: "Japanese"},
	{Code: "ko", Name: "Korean"},
}

// CommonLanguages returns the supported languages in display order
func CommonLanguages() []Language {
	out := make([]Language, len(commonLanguages))
	copy(out, commonLanguages[:])
	return out
}

// LanguageName returns the display name for a language code.
// Unknown codes are returned unchanged.
func LanguageName(code string) string {
	for _, l := range commonLanguages {
		if l.Code == code {
			return l.Name
		}
	}
	return code
}

// IsSupportedLanguage reports whether code is one of CommonLanguages
func IsSupportedLanguage(code string) bool {
	for _, l := range commonLanguages {
		if l.Code == code {
			return true
		}
	}
	return false
}
