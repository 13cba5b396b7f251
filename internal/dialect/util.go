package dialect

import "strings"

// DefaultNormalizeType is a default implementation for type normalization (lowercase).
func DefaultNormalizeType(sqlType string) string {
	return strings.ToLower(sqlType)
}

// DefaultSchemaName is a default implementation for schema name resolution (identity).
func DefaultSchemaName(input string) string {
	return input
}

// quoteWith wraps an identifier in the given delimiters, doubling any
// embedded closing delimiter.
func quoteWith(name, opening, closing string) string {
	return opening + strings.ReplaceAll(name, closing, closing+closing) + closing
}
