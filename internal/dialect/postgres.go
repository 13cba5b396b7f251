package dialect

type Postgres struct{}

func (d *Postgres) TablesQuery(schema string) string {
	// $1 placeholder
	return `SELECT table_name FROM information_schema.tables WHERE table_schema = $1 AND table_type = 'BASE TABLE' ORDER BY table_name`
}

func (d *Postgres) ColumnsQuery(schema string) string {
	// Constraint roles come from subqueries against table_constraints;
	// serial/identity columns surface through a nextval() default.
	return `SELECT
    c.table_name,
    c.column_name,
    c.data_type || COALESCE('(' || c.character_maximum_length || ')', ''),
    c.is_nullable,
    COALESCE(
      (SELECT 'PRI' FROM information_schema.table_constraints tc
       JOIN information_schema.key_column_usage kcu ON tc.constraint_name = kcu.constraint_name
       WHERE tc.constraint_type = 'PRIMARY KEY'
       AND kcu.table_schema = c.table_schema AND kcu.table_name = c.table_name AND kcu.column_name = c.column_name LIMIT 1),
      (SELECT 'UNI' FROM information_schema.table_constraints tc
       JOIN information_schema.key_column_usage kcu ON tc.constraint_name = kcu.constraint_name
       WHERE tc.constraint_type = 'UNIQUE'
       AND kcu.table_schema = c.table_schema AND kcu.table_name = c.table_name AND kcu.column_name = c.column_name LIMIT 1),
      '') AS column_key,
    c.column_default,
    CASE WHEN c.column_default LIKE 'nextval%' THEN 'nextval' ELSE '' END AS extra
FROM information_schema.columns c
WHERE c.table_schema = $1
ORDER BY c.table_name, c.ordinal_position`
}

func (d *Postgres) ForeignKeysQuery(schema string) string {
	return `SELECT kcu.table_name, kcu.constraint_name, kcu.column_name, ccu.table_name AS referenced_table_name, ccu.column_name AS referenced_column_name FROM information_schema.key_column_usage kcu JOIN information_schema.constraint_column_usage ccu ON kcu.constraint_name = ccu.constraint_name JOIN information_schema.table_constraints tc ON kcu.constraint_name = tc.constraint_name WHERE kcu.table_schema = $1 AND tc.constraint_type = 'FOREIGN KEY'`
}

func (d *Postgres) NormalizeType(sqlType string) string {
	return DefaultNormalizeType(sqlType)
}

func (d *Postgres) SchemaName(input string) string {
	if input == "" {
		return "public"
	}
	return input
}

func (d *Postgres) QuoteIdentifier(name string) string {
	return quoteWith(name, `"`, `"`)
}
