package dialect

// Dialect abstracts the engine-specific pieces of schema introspection
// and SQL rendering. Each supported database gets one implementation;
// the rest of the pipeline never branches on driver names.
//
// ColumnsQuery must return rows shaped as
//
//	(TABLE_NAME, COLUMN_NAME, COLUMN_TYPE, IS_NULLABLE, COLUMN_KEY, COLUMN_DEFAULT, EXTRA)
//
// ordered by table name then ordinal position, with COLUMN_KEY using
// the MySQL-style PRI/UNI/MUL markers and EXTRA carrying the
// auto-increment/identity marker when there is one. The single bind
// parameter is the schema name.
type Dialect interface {
	// Metadata queries (schema introspection)
	TablesQuery(schema string) string
	ColumnsQuery(schema string) string
	ForeignKeysQuery(schema string) string

	// Helpers
	NormalizeType(sqlType string) string
	SchemaName(input string) string
	QuoteIdentifier(name string) string
}
