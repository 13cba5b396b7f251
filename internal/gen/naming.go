package gen

import (
	"strings"
	"unicode"
)

// ToPascalCase converts a snake_case database identifier to PascalCase:
// "user_name" -> "UserName", "id" -> "Id". Only the first rune of each
// underscore-delimited segment is touched; the remainder is kept as-is.
func ToPascalCase(identifier string) string {
	var b strings.Builder
	for _, seg := range strings.Split(identifier, "_") {
		if seg == "" {
			continue
		}
		r := []rune(seg)
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}
	return b.String()
}

// RemoveTablePrefix strips a single leading prefix segment from a table
// name: "rv_users" -> "users". Only the first run of non-underscore
// characters plus one underscore is removed, so multi-part prefixes are
// only partially stripped ("app_rv_users" -> "rv_users"). That is a
// known limitation of the heuristic, kept because generated class names
// depend on it.
func RemoveTablePrefix(tableName string) string {
	idx := strings.Index(tableName, "_")
	if idx <= 0 {
		return tableName
	}
	return tableName[idx+1:]
}
