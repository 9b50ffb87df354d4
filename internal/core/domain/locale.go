package domain

import "errors"

var ErrLanguageNotSupported = errors.New("language not supported")

// DefaultLanguage is used whenever no preference is persisted and when
// localized content is missing for the requested language.
const DefaultLanguage = "en"

// Language describes one entry of the supported-language catalog.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Flag string `json:"flag"`
}

// TranslationTable maps message keys ("login.title") to localized text
// for a single language.
type TranslationTable struct {
	Language string            `json:"language"`
	Messages map[string]string `json:"messages"`
}
