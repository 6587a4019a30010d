package domain

import "regexp"

// CurrencyPattern is one compiled text pattern for a currency. Symbolic
// patterns contain a currency symbol or prefix (e.g. "S$", "€"); the rest
// rely on a 3-letter code or currency name embedded in text and are only
// consulted after every symbolic pattern has failed.
type CurrencyPattern struct {
	Expr     *regexp.Regexp
	Symbolic bool
}

// CurrencyDefinition describes one currency known to the catalog.
type CurrencyDefinition struct {
	Code     string            `json:"currencyCode"` // e.g. "USD"
	Name     string            `json:"name"`         // e.g. "US Dollar"
	Symbol   string            `json:"symbol"`       // e.g. "$"
	Patterns []CurrencyPattern `json:"-"`
}

// CountryAlias maps one country/nationality word to a currency code.
// Aliases are matched as case-insensitive substrings in list order, so
// overlapping aliases resolve deterministically.
type CountryAlias struct {
	Alias string
	Code  string
}
