package glossary

// ResolveTranslation picks the displayable value for a locale using the
// term's fallback chain: exact locale match, then the preferred translation,
// then the first stored translation, and finally the term's own name. Pure
// function, no side effects.
func ResolveTranslation(term *Term, locale string) string {
	value, _ := ResolveWithContext(term, locale)
	return value
}

// ResolveWithContext resolves like ResolveTranslation and additionally
// returns the matching locale's context. The context is empty whenever the
// value came from a fallback rather than an exact locale match.
func ResolveWithContext(term *Term, locale string) (string, string) {
	if term == nil {
		return "", ""
	}

	for _, tr := range term.Translations {
		if tr.Locale == locale {
			return tr.Value, tr.Context
		}
	}

	for _, tr := range term.Translations {
		if tr.IsPreferred {
			return tr.Value, ""
		}
	}

	if len(term.Translations) > 0 {
		return term.Translations[0].Value, ""
	}

	return term.Term, ""
}
