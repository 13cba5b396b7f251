package schema

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/TabarBaptiste/dao-generation-sub000/internal/dialect"
)

// Catalog is the result of one introspection pass over a schema. It is
// the schema source the batch driver consumes: per-table lookups with
// a real error for unknown names, never a silent empty result.
type Catalog struct {
	tables  map[string]*Table
	ordered []*Table
}

// Tables returns every table in introspection order.
func (c *Catalog) Tables() []*Table {
	return c.ordered
}

// Lookup resolves a requested table name case-insensitively.
func (c *Catalog) Lookup(name string) (*Table, error) {
	t, ok := c.tables[strings.ToUpper(name)]
	if !ok {
		return nil, fmt.Errorf("table %s not found in schema", name)
	}
	return t, nil
}

// Analyze introspects the whole schema through the dialect's metadata
// queries and returns a Catalog. Column order follows the ordinal
// position reported by the database and is preserved from here on.
func Analyze(db *sql.DB, d dialect.Dialect, schemaName string) (*Catalog, error) {
	target := d.SchemaName(schemaName)

	cat := &Catalog{tables: make(map[string]*Table)}

	// --- Step 1: Fetch tables ---
	rows, err := db.Query(d.TablesQuery(target), target)
	if err != nil {
		return nil, fmt.Errorf("failed to query tables: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}
		t := &Table{Name: name}
		// Uppercase keys for case-insensitive lookups (Oracle support)
		cat.tables[strings.ToUpper(name)] = t
		cat.ordered = append(cat.ordered, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tables: %w", err)
	}

	// --- Step 2: Fetch columns ---
	colRows, err := db.Query(d.ColumnsQuery(target), target)
	if err != nil {
		return nil, fmt.Errorf("failed to query columns: %w", err)
	}
	defer colRows.Close()

	for colRows.Next() {
		var tName, cName, cType, isNull, cKey, cDefault, extra sql.NullString
		if err := colRows.Scan(&tName, &cName, &cType, &isNull, &cKey, &cDefault, &extra); err != nil {
			return nil, fmt.Errorf("failed to scan column (table: %s): %w", tName.String, err)
		}
		if !tName.Valid || !cName.Valid {
			continue
		}

		t, ok := cat.tables[strings.ToUpper(tName.String)]
		if !ok {
			continue // column of a view or excluded table
		}

		col := &Column{
			Name:     cName.String,
			Type:     d.NormalizeType(cType.String),
			Nullable: isNull.String == "YES" || isNull.String == "Y",
			Key:      ParseKeyKind(cKey.String),
			Extra:    extra.String,
		}
		if cDefault.Valid {
			def := cDefault.String
			col.Default = &def
		}
		t.Columns = append(t.Columns, col)
	}
	if err := colRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating columns: %w", err)
	}

	// --- Step 3: Fetch foreign keys (used for seed script ordering) ---
	fkRows, err := db.Query(d.ForeignKeysQuery(target), target)
	if err != nil {
		return nil, fmt.Errorf("failed to query foreign keys: %w", err)
	}
	defer fkRows.Close()

	for fkRows.Next() {
		var tName, cConst, cName, rTable, rCol sql.NullString
		if err := fkRows.Scan(&tName, &cConst, &cName, &rTable, &rCol); err != nil {
			return nil, fmt.Errorf("failed to scan foreign key: %w", err)
		}
		if !tName.Valid || !rTable.Valid || tName.String == rTable.String {
			continue
		}

		t, ok := cat.tables[strings.ToUpper(tName.String)]
		if !ok {
			continue
		}
		ref, ok := cat.tables[strings.ToUpper(rTable.String)]
		if !ok {
			continue // reference outside the introspected schema
		}
		t.Dependencies = append(t.Dependencies, ref.Name)
		t.ForeignKeys = append(t.ForeignKeys, &ForeignKey{
			Column:    cName.String,
			RefTable:  ref.Name,
			RefColumn: rCol.String,
		})
	}
	if err := fkRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating foreign keys: %w", err)
	}

	return cat, nil
}

// SortByDependencies orders tables so that referenced tables come
// before their referencing tables. Cycles are broken greedily by
// picking the remaining table with the fewest unsatisfied
// dependencies, name as tie-breaker, so the result is deterministic.
func SortByDependencies(tables []*Table) []*Table {
	var sorted []*Table
	done := make(map[string]bool)

	for len(sorted) < len(tables) {
		added := false

		for _, t := range tables {
			if done[t.Name] {
				continue
			}
			satisfied := true
			for _, dep := range t.Dependencies {
				if !done[dep] {
					satisfied = false
					break
				}
			}
			if satisfied {
				sorted = append(sorted, t)
				done[t.Name] = true
				added = true
			}
		}

		if added {
			continue
		}

		// Cycle: take the table with the fewest unmet dependencies.
		var best *Table
		bestUnmet := 0
		for _, t := range tables {
			if done[t.Name] {
				continue
			}
			unmet := 0
			for _, dep := range t.Dependencies {
				if !done[dep] {
					unmet++
				}
			}
			if best == nil || unmet < bestUnmet || (unmet == bestUnmet && t.Name < best.Name) {
				best = t
				bestUnmet = unmet
			}
		}
		if best == nil {
			break
		}
		sorted = append(sorted, best)
		done[best.Name] = true
	}

	return sorted
}
