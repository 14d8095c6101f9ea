package azure

// supportedLanguages holds the Translator 3.0 target language codes.
var supportedLanguages = map[string]struct{}{}

func init() {
	codes := []string{
		"af", "ar", "bn", "bs", "bg", "yue", "ca", "zh-Hans", "zh-Hant",
		"hr", "cs", "da", "nl", "en", "et", "fj", "fil", "fi", "fr", "de",
		"el", "gu", "ht", "he", "hi", "mww", "hu", "is", "id", "ga", "it",
		"ja", "kn", "kk", "sw", "tlh-Latn", "tlh-Piqd", "ko", "lv", "lt",
		"mg", "ms", "ml", "mt", "mi", "mr", "nb", "fa", "pl", "pt-br",
		"pt-pt", "pa", "otq", "ro", "ru", "sm", "sr-Cyrl", "sr-Latn", "sk",
		"sl", "es", "sv", "ty", "ta", "te", "th", "to", "tr", "uk", "ur",
		"vi", "cy", "yua",
	}
	for _, code := range codes {
		supportedLanguages[code] = struct{}{}
	}
}

// IsSupportedLanguage reports whether the service accepts the target
// language code.
func IsSupportedLanguage(code string) bool {
	_, ok := supportedLanguages[code]
	return ok
}
