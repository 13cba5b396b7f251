package gen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TabarBaptiste/dao-generation-sub000/internal/gen"
)

func TestToPascalCase(t *testing.T) {
	cases := map[string]string{
		"user_name":       "UserName",
		"id":              "Id",
		"created_at":      "CreatedAt",
		"a_b_c":           "ABC",
		"double__under":   "DoubleUnder",
		"trailing_":       "Trailing",
		"already_Pascal":  "AlreadyPascal",
		"":                "",
	}
	for in, want := range cases {
		assert.Equal(t, want, gen.ToPascalCase(in), "ToPascalCase(%q)", in)
	}
}

func TestRemoveTablePrefix(t *testing.T) {
	cases := map[string]string{
		"rv_users": "users",
		"users":    "users", // no prefix boundary, no-op
		"rv_":      "",
		"_users":   "_users", // empty leading segment, no-op
		"":         "",
	}
	for in, want := range cases {
		assert.Equal(t, want, gen.RemoveTablePrefix(in), "RemoveTablePrefix(%q)", in)
	}
}

// Only one leading segment is stripped; multi-part prefixes are
// partially stripped on purpose, since class names of previously
// generated artifacts depend on it.
func TestRemoveTablePrefixSingleSegmentOnly(t *testing.T) {
	assert.Equal(t, "rv_users", gen.RemoveTablePrefix("app_rv_users"))
}
