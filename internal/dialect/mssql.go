package dialect

type MSSQL struct{}

// The go-mssqldb driver binds positional parameters as @p1, @p2, ...

func (d *MSSQL) TablesQuery(schema string) string {
	return `SELECT TABLE_NAME FROM INFORMATION_SCHEMA.TABLES WHERE TABLE_SCHEMA = @p1 AND TABLE_TYPE = 'BASE TABLE' ORDER BY TABLE_NAME`
}

func (d *MSSQL) ColumnsQuery(schema string) string {
	// PK and UNIQUE roles via constraint joins, identity via COLUMNPROPERTY.
	return `SELECT
    c.TABLE_NAME,
    c.COLUMN_NAME,
    c.DATA_TYPE + CASE WHEN c.CHARACTER_MAXIMUM_LENGTH IS NOT NULL AND c.CHARACTER_MAXIMUM_LENGTH > 0
        THEN '(' + CAST(c.CHARACTER_MAXIMUM_LENGTH AS VARCHAR(10)) + ')' ELSE '' END,
    c.IS_NULLABLE,
    CASE WHEN pk.COLUMN_NAME IS NOT NULL THEN 'PRI'
         WHEN uq.COLUMN_NAME IS NOT NULL THEN 'UNI'
         ELSE '' END AS COLUMN_KEY,
    c.COLUMN_DEFAULT,
    CASE WHEN COLUMNPROPERTY(OBJECT_ID(c.TABLE_SCHEMA + '.' + c.TABLE_NAME), c.COLUMN_NAME, 'IsIdentity') = 1
         THEN 'identity' ELSE '' END AS EXTRA
FROM INFORMATION_SCHEMA.COLUMNS c
LEFT JOIN (
    SELECT kcu.TABLE_NAME, kcu.COLUMN_NAME
    FROM INFORMATION_SCHEMA.TABLE_CONSTRAINTS tc
    JOIN INFORMATION_SCHEMA.KEY_COLUMN_USAGE kcu
        ON tc.CONSTRAINT_NAME = kcu.CONSTRAINT_NAME
    WHERE tc.CONSTRAINT_TYPE = 'PRIMARY KEY' AND tc.TABLE_SCHEMA = @p1
) pk ON c.TABLE_NAME = pk.TABLE_NAME AND c.COLUMN_NAME = pk.COLUMN_NAME
LEFT JOIN (
    SELECT kcu.TABLE_NAME, kcu.COLUMN_NAME
    FROM INFORMATION_SCHEMA.TABLE_CONSTRAINTS tc
    JOIN INFORMATION_SCHEMA.KEY_COLUMN_USAGE kcu
        ON tc.CONSTRAINT_NAME = kcu.CONSTRAINT_NAME
    WHERE tc.CONSTRAINT_TYPE = 'UNIQUE' AND tc.TABLE_SCHEMA = @p1
) uq ON c.TABLE_NAME = uq.TABLE_NAME AND c.COLUMN_NAME = uq.COLUMN_NAME
WHERE c.TABLE_SCHEMA = @p1
ORDER BY c.TABLE_NAME, c.ORDINAL_POSITION`
}

func (d *MSSQL) ForeignKeysQuery(schema string) string {
	return `SELECT
    fk_tab.name AS TABLE_NAME,
    fk.name AS CONSTRAINT_NAME,
    fk_col.name AS COLUMN_NAME,
    pk_tab.name AS REFERENCED_TABLE_NAME,
    pk_col.name AS REFERENCED_COLUMN_NAME
FROM sys.foreign_keys fk
JOIN sys.foreign_key_columns fkc ON fk.object_id = fkc.constraint_object_id
JOIN sys.tables fk_tab ON fk_tab.object_id = fkc.parent_object_id
JOIN sys.columns fk_col ON fk_col.object_id = fkc.parent_object_id AND fk_col.column_id = fkc.parent_column_id
JOIN sys.tables pk_tab ON pk_tab.object_id = fkc.referenced_object_id
JOIN sys.columns pk_col ON pk_col.object_id = fkc.referenced_object_id AND pk_col.column_id = fkc.referenced_column_id
JOIN sys.schemas s ON fk_tab.schema_id = s.schema_id
WHERE s.name = @p1`
}

func (d *MSSQL) NormalizeType(sqlType string) string {
	return DefaultNormalizeType(sqlType)
}

func (d *MSSQL) SchemaName(input string) string {
	if input == "" {
		return "dbo"
	}
	return input
}

func (d *MSSQL) QuoteIdentifier(name string) string {
	return quoteWith(name, "[", "]")
}
