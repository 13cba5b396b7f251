package dialect

type MySQL struct{}

func (d *MySQL) TablesQuery(schema string) string {
	return `SELECT TABLE_NAME FROM information_schema.TABLES WHERE TABLE_SCHEMA = ? AND TABLE_TYPE = 'BASE TABLE' ORDER BY TABLE_NAME`
}

func (d *MySQL) ColumnsQuery(schema string) string {
	// COLUMN_TYPE keeps the full declaration ("varchar(255)", "tinyint(1)")
	// which the type mapper matches against.
	return `SELECT TABLE_NAME, COLUMN_NAME, COLUMN_TYPE, IS_NULLABLE, COLUMN_KEY, COLUMN_DEFAULT, EXTRA FROM information_schema.COLUMNS WHERE TABLE_SCHEMA = ? ORDER BY TABLE_NAME, ORDINAL_POSITION`
}

func (d *MySQL) ForeignKeysQuery(schema string) string {
	return `SELECT TABLE_NAME, CONSTRAINT_NAME, COLUMN_NAME, REFERENCED_TABLE_NAME, REFERENCED_COLUMN_NAME FROM information_schema.KEY_COLUMN_USAGE WHERE TABLE_SCHEMA = ? AND REFERENCED_TABLE_NAME IS NOT NULL`
}

func (d *MySQL) NormalizeType(sqlType string) string {
	return DefaultNormalizeType(sqlType)
}

func (d *MySQL) SchemaName(input string) string {
	return DefaultSchemaName(input)
}

func (d *MySQL) QuoteIdentifier(name string) string {
	return quoteWith(name, "`", "`")
}
