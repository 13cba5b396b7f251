// Package gen holds the pure schema-to-class pipeline: type
// classification, identifier transforms, version tracking and artifact
// assembly. Nothing in this package performs I/O.
package gen

import "strings"

// Kind is the target-language primitive category of a column type.
type Kind int

const (
	KindText Kind = iota
	KindInteger
	KindDecimal
	KindBoolean
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindDecimal:
		return "decimal"
	case KindBoolean:
		return "boolean"
	default:
		return "text"
	}
}

// PHPType returns the PHP doc-comment type hint for the kind.
func (k Kind) PHPType() string {
	switch k {
	case KindInteger:
		return "int"
	case KindDecimal:
		return "float"
	case KindBoolean:
		return "bool"
	default:
		return "string"
	}
}

// Classify maps a raw database type to a Kind by case-insensitive
// substring matching in fixed precedence order. The integer family is
// checked before the boolean family, so tinyint(1) classifies as
// Integer; changing that precedence would change the type of every
// boolean-like column in previously generated output, so it stays.
// Temporal types (date, time, year) and anything unrecognized fall
// through to text.
func Classify(rawType string) Kind {
	t := strings.ToLower(rawType)
	switch {
	case strings.Contains(t, "int"):
		// covers tinyint, smallint, mediumint, bigint as well
		return KindInteger
	case strings.Contains(t, "decimal"), strings.Contains(t, "float"),
		strings.Contains(t, "double"), strings.Contains(t, "real"),
		strings.Contains(t, "numeric"):
		return KindDecimal
	case strings.Contains(t, "bool"):
		return KindBoolean
	}
	return KindText
}
