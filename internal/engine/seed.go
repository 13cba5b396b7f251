package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/TabarBaptiste/dao-generation-sub000/internal/dialect"
	"github.com/TabarBaptiste/dao-generation-sub000/internal/gen"
	"github.com/TabarBaptiste/dao-generation-sub000/internal/schema"
)

// SeedScript renders an SQL script of INSERT statements with plausible
// fake data, one block per table, in dependency order so the script
// runs against a schema with enforced foreign keys. Auto-increment
// columns are left to the database.
func SeedScript(tables []*schema.Table, d dialect.Dialect, rowsPerTable int) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("-- Seed data generated %s\n", time.Now().Format("2006-01-02 15:04:05")))

	for _, t := range schema.SortByDependencies(tables) {
		var cols []*schema.Column
		var names []string
		for _, c := range t.Columns {
			if c.AutoIncrement() {
				continue
			}
			cols = append(cols, c)
			names = append(names, d.QuoteIdentifier(c.Name))
		}
		if len(cols) == 0 {
			continue
		}

		b.WriteString(fmt.Sprintf("\n-- %s\n", t.Name))
		for i := 0; i < rowsPerTable; i++ {
			vals := make([]string, len(cols))
			for j, c := range cols {
				vals[j] = seedValue(t, c, i)
			}
			b.WriteString(fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s);\n",
				d.QuoteIdentifier(t.Name), strings.Join(names, ", "), strings.Join(vals, ", ")))
		}
	}

	return b.String()
}

// seedValue renders one SQL literal for a column. Foreign key columns
// get sequential ids on the assumption that the referenced table was
// seeded first with the same row count.
func seedValue(t *schema.Table, c *schema.Column, row int) string {
	for _, fk := range t.ForeignKeys {
		if fk.Column == c.Name {
			return fmt.Sprintf("%d", row+1)
		}
	}

	switch gen.Classify(c.Type) {
	case gen.KindInteger:
		return fmt.Sprintf("%d", gofakeit.Number(1, 10000))
	case gen.KindDecimal:
		return fmt.Sprintf("%.2f", gofakeit.Price(1, 1000))
	case gen.KindBoolean:
		if gofakeit.Bool() {
			return "1"
		}
		return "0"
	}
	return quoteLiteral(textValue(c))
}

// textValue picks text content from the column's name and type the same
// way the class fields are typed: light name hints first, temporal
// types rendered as formatted dates, generic words otherwise.
func textValue(c *schema.Column) string {
	name := strings.ToLower(c.Name)
	typ := strings.ToLower(c.Type)

	switch {
	case strings.Contains(typ, "year"):
		return fmt.Sprintf("%d", gofakeit.Year())
	case typ == "date":
		return gofakeit.DateRange(time.Now().AddDate(-1, 0, 0), time.Now()).Format("2006-01-02")
	case typ == "time":
		return gofakeit.DateRange(time.Now().AddDate(-1, 0, 0), time.Now()).Format("15:04:05")
	case strings.Contains(typ, "date"), strings.Contains(typ, "time"):
		return gofakeit.DateRange(time.Now().AddDate(-1, 0, 0), time.Now()).Format("2006-01-02 15:04:05")
	}

	switch {
	case strings.Contains(name, "email"):
		return gofakeit.Email()
	case strings.Contains(name, "phone"), strings.Contains(name, "tel"):
		return gofakeit.Phone()
	case strings.Contains(name, "name"):
		return gofakeit.Name()
	case strings.Contains(name, "city"):
		return gofakeit.City()
	case strings.Contains(name, "address"):
		return gofakeit.Street()
	case strings.Contains(name, "url"):
		return gofakeit.URL()
	}
	return gofakeit.Word()
}

func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
