package gen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TabarBaptiste/dao-generation-sub000/internal/gen"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		raw  string
		want gen.Kind
	}{
		{"int(11)", gen.KindInteger},
		{"INT", gen.KindInteger},
		{"smallint", gen.KindInteger},
		{"mediumint(9)", gen.KindInteger},
		{"bigint(20) unsigned", gen.KindInteger},
		{"decimal(10,2)", gen.KindDecimal},
		{"float", gen.KindDecimal},
		{"double precision", gen.KindDecimal},
		{"real", gen.KindDecimal},
		{"numeric(6,2)", gen.KindDecimal},
		{"bool", gen.KindBoolean},
		{"boolean", gen.KindBoolean},
		{"varchar(255)", gen.KindText},
		{"text", gen.KindText},
		{"date", gen.KindText},
		{"datetime", gen.KindText},
		{"timestamp", gen.KindText},
		{"year", gen.KindText},
		{"unknown_type", gen.KindText},
		{"", gen.KindText},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, gen.Classify(c.raw), "Classify(%q)", c.raw)
	}
}

// tinyint(1) is the common MySQL boolean idiom, but the integer family
// is matched before the boolean family, so it classifies as Integer.
// Existing generated output depends on that precedence.
func TestClassifyIntegerBeforeBoolean(t *testing.T) {
	assert.Equal(t, gen.KindInteger, gen.Classify("tinyint(1)"))
	assert.Equal(t, gen.KindInteger, gen.Classify("TINYINT(1)"))
	// any type containing "int" wins, even with boolean-like hints
	assert.Equal(t, gen.KindInteger, gen.Classify("int_bool"))
}

func TestKindPHPType(t *testing.T) {
	assert.Equal(t, "int", gen.KindInteger.PHPType())
	assert.Equal(t, "float", gen.KindDecimal.PHPType())
	assert.Equal(t, "bool", gen.KindBoolean.PHPType())
	assert.Equal(t, "string", gen.KindText.PHPType())
}
