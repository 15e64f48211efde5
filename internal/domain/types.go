package domain

import "strings"

// Namespace partitions translation keys into fixed product areas.
type Namespace string

const (
	NamespaceUI            Namespace = "ui"
	NamespaceEmails        Namespace = "emails"
	NamespaceNotifications Namespace = "notifications"
	NamespaceReports       Namespace = "reports"
	NamespaceForms         Namespace = "forms"
	NamespaceErrors        Namespace = "errors"
	NamespaceValidation    Namespace = "validation"
)

// Namespaces enumerates every valid translation namespace.
var Namespaces = []Namespace{
	NamespaceUI,
	NamespaceEmails,
	NamespaceNotifications,
	NamespaceReports,
	NamespaceForms,
	NamespaceErrors,
	NamespaceValidation,
}

// ParseNamespace normalizes and validates a namespace string.
func ParseNamespace(input string) (Namespace, bool) {
	ns := Namespace(strings.ToLower(strings.TrimSpace(input)))
	for _, known := range Namespaces {
		if ns == known {
			return ns, true
		}
	}
	return "", false
}

// Source identifies where a translation value originated.
type Source string

const (
	SourceManual  Source = "manual"
	SourceMachine Source = "machine"
	SourceImport  Source = "import"
	SourceAPI     Source = "api"
)

// ParseSource normalizes and validates a source string. Empty input defaults
// to manual.
func ParseSource(input string) (Source, bool) {
	source := Source(strings.ToLower(strings.TrimSpace(input)))
	switch source {
	case "":
		return SourceManual, true
	case SourceManual, SourceMachine, SourceImport, SourceAPI:
		return source, true
	default:
		return "", false
	}
}

// VariableType describes the interpolation slot type declared on an entry.
type VariableType string

const (
	VariableString   VariableType = "string"
	VariableNumber   VariableType = "number"
	VariableDate     VariableType = "date"
	VariableCurrency VariableType = "currency"
	VariablePlural   VariableType = "plural"
)

// ParseVariableType normalizes and validates a variable type string.
func ParseVariableType(input string) (VariableType, bool) {
	vt := VariableType(strings.ToLower(strings.TrimSpace(input)))
	switch vt {
	case VariableString, VariableNumber, VariableDate, VariableCurrency, VariablePlural:
		return vt, true
	default:
		return "", false
	}
}

// TermCategory groups glossary terms by business intent.
type TermCategory string

const (
	CategoryBusiness  TermCategory = "business"
	CategoryIndustry  TermCategory = "industry"
	CategoryTechnical TermCategory = "technical"
	CategoryMarketing TermCategory = "marketing"
	CategoryLegal     TermCategory = "legal"
	CategoryCustom    TermCategory = "custom"
)

// ParseTermCategory normalizes and validates a glossary category. Empty input
// defaults to custom.
func ParseTermCategory(input string) (TermCategory, bool) {
	category := TermCategory(strings.ToLower(strings.TrimSpace(input)))
	switch category {
	case "":
		return CategoryCustom, true
	case CategoryBusiness, CategoryIndustry, CategoryTechnical, CategoryMarketing, CategoryLegal, CategoryCustom:
		return category, true
	default:
		return "", false
	}
}
