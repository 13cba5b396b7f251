package schema

import "strings"

// KeyKind classifies a column's index role as reported by the schema source.
type KeyKind int

const (
	KeyNone KeyKind = iota
	KeyPrimary
	KeyUnique
	KeyMulti
)

func (k KeyKind) String() string {
	switch k {
	case KeyPrimary:
		return "PRIMARY KEY"
	case KeyUnique:
		return "UNIQUE"
	case KeyMulti:
		return "INDEX"
	default:
		return ""
	}
}

// ParseKeyKind maps the raw COLUMN_KEY marker (PRI/UNI/MUL) to a KeyKind.
func ParseKeyKind(raw string) KeyKind {
	switch {
	case strings.Contains(raw, "PRI"):
		return KeyPrimary
	case strings.Contains(raw, "UNI"):
		return KeyUnique
	case strings.Contains(raw, "MUL"):
		return KeyMulti
	default:
		return KeyNone
	}
}

// Column is one column of a table, immutable once fetched.
type Column struct {
	Name     string
	Type     string // raw database type, e.g. "varchar(255)"
	Nullable bool
	Key      KeyKind
	Default  *string // nil when the column has no default
	Extra    string  // auto-increment marker etc.
}

// AutoIncrement reports whether the column value is generated by the
// database (auto_increment on MySQL, identity on MSSQL/Oracle, nextval
// sequences on Postgres).
func (c *Column) AutoIncrement() bool {
	extra := strings.ToLower(c.Extra)
	return strings.Contains(extra, "auto_increment") ||
		strings.Contains(extra, "identity") ||
		strings.Contains(extra, "nextval")
}

// Table holds a table's columns in ordinal order. The order is
// significant: it dictates field declaration order in generated
// classes and first-wins primary key selection.
type Table struct {
	Name         string
	Columns      []*Column
	ForeignKeys  []*ForeignKey
	Dependencies []string
}

// PrimaryKey returns the first column flagged PRIMARY, or nil.
func (t *Table) PrimaryKey() *Column {
	for _, c := range t.Columns {
		if c.Key == KeyPrimary {
			return c
		}
	}
	return nil
}

type ForeignKey struct {
	Column    string
	RefTable  string
	RefColumn string
}

// Outcome is the terminal state of one table's generation attempt.
type Outcome int

const (
	OutcomeGenerated Outcome = iota
	OutcomeSkipped
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeGenerated:
		return "GENERATED"
	case OutcomeSkipped:
		return "SKIPPED"
	default:
		return "FAILED"
	}
}

// GenerationResult reports one table's outcome.
type GenerationResult struct {
	Table      string
	Outcome    Outcome
	Path       string // written artifact path, empty unless generated
	BackupPath string // backup copy path, empty unless one was taken
	Err        string
}

// BatchSummary aggregates a whole generation run.
type BatchSummary struct {
	Generated int
	Skipped   int
	Failed    int
	BackedUp  int
	Errors    []string // ordered, one entry per failing/skipped table
	Written   []string // ordered artifact paths
	Results   []GenerationResult
}

// Add folds a per-table result into the summary counters.
func (s *BatchSummary) Add(r GenerationResult) {
	s.Results = append(s.Results, r)
	switch r.Outcome {
	case OutcomeGenerated:
		s.Generated++
		s.Written = append(s.Written, r.Path)
	case OutcomeSkipped:
		s.Skipped++
	case OutcomeFailed:
		s.Failed++
	}
	if r.BackupPath != "" {
		s.BackedUp++
	}
	if r.Err != "" {
		s.Errors = append(s.Errors, r.Table+": "+r.Err)
	}
}
