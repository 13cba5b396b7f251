package engine_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TabarBaptiste/dao-generation-sub000/internal/engine"
	"github.com/TabarBaptiste/dao-generation-sub000/internal/schema"
)

var testTime = time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)

// memFS is an in-memory engine.FS so batch behavior is testable
// without a real filesystem.
type memFS struct {
	files     map[string][]byte
	reads     map[string]int
	failWrite func(path string) bool
	failMkdir func(path string) bool
}

func newMemFS() *memFS {
	return &memFS{files: make(map[string][]byte), reads: make(map[string]int)}
}

func (m *memFS) Exists(path string) bool {
	_, ok := m.files[path]
	return ok
}

func (m *memFS) ReadFile(path string) ([]byte, error) {
	m.reads[path]++
	data, ok := m.files[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return data, nil
}

func (m *memFS) WriteFile(path string, data []byte) error {
	if m.failWrite != nil && m.failWrite(path) {
		return errors.New("disk full")
	}
	m.files[path] = data
	return nil
}

func (m *memFS) MkdirAll(path string) error {
	if m.failMkdir != nil && m.failMkdir(path) {
		return errors.New("permission denied")
	}
	return nil
}

func fetcherFor(tables ...*schema.Table) engine.Fetcher {
	byName := make(map[string]*schema.Table)
	for _, t := range tables {
		byName[t.Name] = t
	}
	return func(name string) (*schema.Table, error) {
		t, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("table %s not found in schema", name)
		}
		return t, nil
	}
}

func usersTable() *schema.Table {
	return &schema.Table{
		Name: "rv_users",
		Columns: []*schema.Column{
			{Name: "user_id", Type: "int(11)", Key: schema.KeyPrimary, Extra: "auto_increment"},
			{Name: "user_name", Type: "varchar(255)"},
		},
	}
}

func TestRunFreshGeneration(t *testing.T) {
	fs := newMemFS()
	fetch := fetcherFor(usersTable())

	summary, err := engine.Run([]string{"rv_users"}, engine.ModeSave, fetch, "out", fs, testTime, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Generated)
	assert.Equal(t, 0, summary.BackedUp)
	assert.Empty(t, summary.Errors)

	path := filepath.Join("out", "Users.php")
	require.Equal(t, []string{path}, summary.Written)
	content, err := fs.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "@version 1.00")
	assert.Contains(t, string(content), "class Users")
}

func TestRunOverwriteBumpsVersionWithoutBackup(t *testing.T) {
	fs := newMemFS()
	path := filepath.Join("out", "Users.php")
	fs.files[path] = []byte("<?php\n/**\n * @version 1.20\n */\nclass Users {}\n")

	summary, err := engine.Run([]string{"rv_users"}, engine.ModeOverwrite, fetcherFor(usersTable()), "out", fs, testTime, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Generated)
	assert.Equal(t, 0, summary.BackedUp)

	content, _ := fs.ReadFile(path)
	assert.Contains(t, string(content), "@version 1.30")
	for f := range fs.files {
		assert.NotContains(t, f, "backup", "overwrite mode must not write backups")
	}
}

func TestRunSaveModeBacksUpBeforeOverwrite(t *testing.T) {
	fs := newMemFS()
	path := filepath.Join("out", "Users.php")
	original := "<?php\n/**\n * @version 1.00\n */\nclass Users {}\n"
	fs.files[path] = []byte(original)

	summary, err := engine.Run([]string{"rv_users"}, engine.ModeSave, fetcherFor(usersTable()), "out", fs, testTime, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Generated)
	assert.Equal(t, 1, summary.BackedUp)

	backupPath := filepath.Join("out", "backup", "Users_backup_2024-03-01_10-30-00.php")
	backup, err := fs.ReadFile(backupPath)
	require.NoError(t, err, "expected backup at %s, have files: %v", backupPath, fs.files)

	// comment block first, then the original content verbatim
	assert.True(t, strings.HasPrefix(string(backup), "/*"))
	assert.True(t, strings.HasSuffix(string(backup), original))

	content, _ := fs.ReadFile(path)
	assert.Contains(t, string(content), "@version 1.10")
}

// The version bump and the backup must work from the same bytes, so an
// existing artifact is read exactly once per table.
func TestRunSaveModeReadsExistingArtifactOnce(t *testing.T) {
	fs := newMemFS()
	path := filepath.Join("out", "Users.php")
	fs.files[path] = []byte("<?php\n/**\n * @version 1.00\n */\nclass Users {}\n")

	_, err := engine.Run([]string{"rv_users"}, engine.ModeSave, fetcherFor(usersTable()), "out", fs, testTime, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, fs.reads[path])
}

func TestRunBackupFailureSkipsTableAndKeepsOriginal(t *testing.T) {
	fs := newMemFS()
	path := filepath.Join("out", "Users.php")
	original := "<?php\n/**\n * @version 1.50\n */\nclass Users {}\n"
	fs.files[path] = []byte(original)
	fs.failWrite = func(p string) bool {
		return strings.Contains(p, "backup")
	}

	summary, err := engine.Run([]string{"rv_users"}, engine.ModeSave, fetcherFor(usersTable()), "out", fs, testTime, nil)
	require.NoError(t, err)

	assert.Equal(t, 0, summary.Generated)
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, 0, summary.BackedUp)
	require.Len(t, summary.Errors, 1)
	assert.Contains(t, summary.Errors[0], "rv_users")

	// no partial overwrite: original artifact untouched
	content, _ := fs.ReadFile(path)
	assert.Equal(t, original, string(content))
}

func TestRunIsolatesPerTableFetchFailures(t *testing.T) {
	fs := newMemFS()
	first := usersTable()
	third := &schema.Table{
		Name:    "rv_orders",
		Columns: []*schema.Column{{Name: "order_id", Type: "int", Key: schema.KeyPrimary}},
	}

	summary, err := engine.Run([]string{"rv_users", "rv_missing", "rv_orders"}, engine.ModeSave, fetcherFor(first, third), "out", fs, testTime, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Generated)
	assert.Equal(t, 1, summary.Failed)
	require.Len(t, summary.Errors, 1)
	assert.Contains(t, summary.Errors[0], "rv_missing")

	assert.True(t, fs.Exists(filepath.Join("out", "Users.php")))
	assert.True(t, fs.Exists(filepath.Join("out", "Orders.php")))
}

func TestRunAbortsWhenOutputDirUnusable(t *testing.T) {
	fs := newMemFS()
	fs.failMkdir = func(p string) bool { return p == "out" }

	_, err := engine.Run([]string{"rv_users"}, engine.ModeSave, fetcherFor(usersTable()), "out", fs, testTime, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output directory")
}

func TestRunWriteFailureRecordedAndBatchContinues(t *testing.T) {
	fs := newMemFS()
	fs.failWrite = func(p string) bool {
		return strings.HasSuffix(p, "Users.php")
	}
	third := &schema.Table{
		Name:    "rv_orders",
		Columns: []*schema.Column{{Name: "order_id", Type: "int", Key: schema.KeyPrimary}},
	}

	summary, err := engine.Run([]string{"rv_users", "rv_orders"}, engine.ModeSave, fetcherFor(usersTable(), third), "out", fs, testTime, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Generated)
	assert.Equal(t, 1, summary.Failed)
	require.Len(t, summary.Errors, 1)
	assert.Contains(t, summary.Errors[0], "rv_users")
}

// Two batch runs against the same output directory share no lock: with
// identical timestamps they compute the same backup name and the later
// run overwrites the earlier backup. Known gap of the artifact
// convention, documented rather than fixed.
func TestConcurrentRunsRaceOnBackupNaming(t *testing.T) {
	fs := newMemFS()
	path := filepath.Join("out", "Users.php")
	fs.files[path] = []byte("<?php // @version 1.00\n")

	_, err := engine.Run([]string{"rv_users"}, engine.ModeSave, fetcherFor(usersTable()), "out", fs, testTime, nil)
	require.NoError(t, err)
	_, err = engine.Run([]string{"rv_users"}, engine.ModeSave, fetcherFor(usersTable()), "out", fs, testTime, nil)
	require.NoError(t, err)

	backups := 0
	for f := range fs.files {
		if strings.Contains(f, "backup") {
			backups++
		}
	}
	assert.Equal(t, 1, backups, "same-second runs collide on one backup name")
}

func TestParseMode(t *testing.T) {
	m, err := engine.ParseMode("save")
	require.NoError(t, err)
	assert.Equal(t, engine.ModeSave, m)

	m, err = engine.ParseMode("OVERWRITE")
	require.NoError(t, err)
	assert.Equal(t, engine.ModeOverwrite, m)

	m, err = engine.ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, engine.ModeSave, m)

	_, err = engine.ParseMode("archive")
	assert.Error(t, err)
}

func TestRunProgressCallback(t *testing.T) {
	fs := newMemFS()
	calls := 0

	_, err := engine.Run([]string{"rv_users", "rv_missing"}, engine.ModeSave, fetcherFor(usersTable()), "out", fs, testTime, func() { calls++ })
	require.NoError(t, err)
	assert.Equal(t, 2, calls, "progress ticks once per table, failures included")
}
