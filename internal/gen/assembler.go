package gen

import (
	"strings"
	"text/template"
	"time"

	"github.com/TabarBaptiste/dao-generation-sub000/internal/schema"
)

// timestampLayout is the generation date format in artifact headers.
const timestampLayout = "2006-01-02 15:04:05"

// fallbackKey is used when a table declares no PRIMARY column. The
// generated accessors then reference getId()/an id column that may not
// exist; that inconsistency is inherited from the artifact format and
// deliberately not papered over here.
const fallbackKey = "id"

type fieldView struct {
	Column  string
	Pascal  string
	PHPType string
	Note    string
}

type keyView struct {
	Column string
	Pascal string
}

type classView struct {
	ClassName string
	TableName string
	Version   string
	Generated string
	Fields    []fieldView
	PK        keyView

	InsertColumns    []fieldView
	InsertColumnList string
	InsertValueList  string
	UpdateColumns    []fieldView
	UpdateAssignList string
}

var classTemplate = template.Must(template.New("dao").Parse(`<?php

/**
 * {{.ClassName}} - data access class for table {{.TableName}}.
 *
 * @version {{.Version}}
 * @generated {{.Generated}}
 */
class {{.ClassName}}
{
{{- range .Fields}}
    /** @var {{.PHPType}} {{.Note}} */
    private ${{.Column}};
{{- end}}

    /** Maps column names to setters; load() uses it to hydrate fields. */
    private static $columnSetters = [
{{- range .Fields}}
        '{{.Column}}' => 'set{{.Pascal}}',
{{- end}}
    ];
{{range .Fields}}
    public function get{{.Pascal}}()
    {
        return $this->{{.Column}};
    }

    public function set{{.Pascal}}($value)
    {
        $this->{{.Column}} = $value;
    }
{{end}}
    public function load(PDO $pdo)
    {
        $stmt = $pdo->prepare('SELECT * FROM {{.TableName}} WHERE {{.PK.Column}} = :pk');
        $stmt->execute([':pk' => $this->get{{.PK.Pascal}}()]);
        $row = $stmt->fetch(PDO::FETCH_ASSOC);
        if ($row === false) {
            return false;
        }
        foreach (self::$columnSetters as $column => $setter) {
            $this->$setter($row[$column]);
        }
        return true;
    }

    public function insert(PDO $pdo)
    {
        $stmt = $pdo->prepare('INSERT INTO {{.TableName}} ({{.InsertColumnList}}) VALUES ({{.InsertValueList}})');
        return $stmt->execute([
{{- range .InsertColumns}}
            ':{{.Column}}' => $this->get{{.Pascal}}(),
{{- end}}
        ]);
    }

    public function update(PDO $pdo)
    {
        $stmt = $pdo->prepare('UPDATE {{.TableName}} SET {{.UpdateAssignList}} WHERE {{.PK.Column}} = :pk');
        return $stmt->execute([
{{- range .UpdateColumns}}
            ':{{.Column}}' => $this->get{{.Pascal}}(),
{{- end}}
            ':pk' => $this->get{{.PK.Pascal}}(),
        ]);
    }

    public function delete(PDO $pdo)
    {
        $stmt = $pdo->prepare('DELETE FROM {{.TableName}} WHERE {{.PK.Column}} = :pk');
        return $stmt->execute([':pk' => $this->get{{.PK.Pascal}}()]);
    }
}
`))

// ClassName derives the generated class name from a table name:
// prefix stripped, then PascalCased.
func ClassName(tableName string) string {
	return ToPascalCase(RemoveTablePrefix(tableName))
}

// Assemble renders the complete artifact text for one table. Pure
// function: the existing-artifact version and the timestamp are
// resolved by the caller.
func Assemble(t *schema.Table, version Version, now time.Time) string {
	view := classView{
		ClassName: ClassName(t.Name),
		TableName: t.Name,
		Version:   version.String(),
		Generated: now.Format(timestampLayout),
		PK:        keyView{Column: fallbackKey, Pascal: ToPascalCase(fallbackKey)},
	}

	if pk := t.PrimaryKey(); pk != nil {
		view.PK = keyView{Column: pk.Name, Pascal: ToPascalCase(pk.Name)}
	}

	for _, c := range t.Columns {
		f := fieldView{
			Column:  c.Name,
			Pascal:  ToPascalCase(c.Name),
			PHPType: Classify(c.Type).PHPType(),
			Note:    columnNote(c),
		}
		view.Fields = append(view.Fields, f)

		if !c.AutoIncrement() {
			view.InsertColumns = append(view.InsertColumns, f)
		}
		// Only the resolved key column leaves the SET list; on a
		// composite key the remaining PRIMARY columns stay updatable.
		if c.Name != view.PK.Column {
			view.UpdateColumns = append(view.UpdateColumns, f)
		}
	}

	var insertCols, insertVals, updateAssigns []string
	for _, f := range view.InsertColumns {
		insertCols = append(insertCols, f.Column)
		insertVals = append(insertVals, ":"+f.Column)
	}
	for _, f := range view.UpdateColumns {
		updateAssigns = append(updateAssigns, f.Column+" = :"+f.Column)
	}
	view.InsertColumnList = strings.Join(insertCols, ", ")
	view.InsertValueList = strings.Join(insertVals, ", ")
	view.UpdateAssignList = strings.Join(updateAssigns, ", ")

	var b strings.Builder
	// The template only fails on invalid template text, which is a
	// compile-time constant here.
	_ = classTemplate.Execute(&b, view)
	return b.String()
}

// columnNote summarizes a column's role for the field comment:
// key role, nullability, default value and extra attribute.
func columnNote(c *schema.Column) string {
	parts := []string{c.Type}
	if role := c.Key.String(); role != "" {
		parts = append(parts, role)
	}
	if c.Nullable {
		parts = append(parts, "NULL")
	} else {
		parts = append(parts, "NOT NULL")
	}
	if c.Default != nil {
		parts = append(parts, "default "+*c.Default)
	}
	if c.Extra != "" {
		parts = append(parts, c.Extra)
	}
	return strings.Join(parts, ", ")
}
