package domain

// DefaultLang is the language code attached to every localized text node.
// The target schema requires an explicit xml:lang on all human-readable text.
const DefaultLang = "de"

// LangString is a string tagged with a language code
type LangString struct {
	Lang  string `json:"lang"`
	Value string `json:"value"`
}

// Localized creates a LangString in the default document language
func Localized(value string) LangString {
	return LangString{Lang: DefaultLang, Value: value}
}
