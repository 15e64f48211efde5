package catalog

// BuildBundle groups a flat entry list into namespace -> locale -> key ->
// value. Every requested namespace and locale appears in the output even when
// no entries matched, so callers can iterate the structure without presence
// checks.
func BuildBundle(namespaces, locales []string, entries []*Entry) Bundle {
	bundle := make(Bundle, len(namespaces))
	for _, ns := range namespaces {
		inner := make(map[string]map[string]string, len(locales))
		for _, locale := range locales {
			inner[locale] = make(map[string]string)
		}
		bundle[ns] = inner
	}

	for _, entry := range entries {
		byLocale, ok := bundle[string(entry.Namespace)]
		if !ok {
			continue
		}
		byKey, ok := byLocale[entry.Locale]
		if !ok {
			continue
		}
		byKey[entry.Key] = entry.Value
	}
	return bundle
}

// BuildLocaleBundle collapses a single-namespace bundle into locale -> key ->
// value.
func BuildLocaleBundle(namespace string, locales []string, entries []*Entry) LocaleBundle {
	bundle := BuildBundle([]string{namespace}, locales, entries)
	return LocaleBundle(bundle[namespace])
}
