// Package engine drives artifact generation against the filesystem:
// backup policy, per-table isolation and batch summary aggregation.
package engine

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/TabarBaptiste/dao-generation-sub000/internal/gen"
	"github.com/TabarBaptiste/dao-generation-sub000/internal/schema"
)

// Mode decides what happens when an artifact already exists.
type Mode int

const (
	// ModeSave archives the existing artifact into backup/ before
	// overwriting it.
	ModeSave Mode = iota
	// ModeOverwrite replaces the existing artifact in place.
	ModeOverwrite
)

func (m Mode) String() string {
	if m == ModeOverwrite {
		return "overwrite"
	}
	return "save"
}

// ParseMode resolves the user-facing mode flag value.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "save", "":
		return ModeSave, nil
	case "overwrite":
		return ModeOverwrite, nil
	default:
		return ModeSave, fmt.Errorf("unknown mode %q (want save or overwrite)", s)
	}
}

// Fetcher supplies the column metadata for one requested table. A
// fetch failure must come back as an error, never a nil table.
type Fetcher func(name string) (*schema.Table, error)

// Run generates one artifact per requested table, in the order given,
// strictly one table at a time: the version bump and backup decision
// for a table read the same file that is overwritten right after, so
// no step may interleave. Per-table failures are recorded in the
// summary and the batch continues; only an unusable output directory
// aborts the whole run. There is no locking against a concurrent run
// on the same directory - two runs can race on backup names and
// version reads, a known gap of the artifact convention.
func Run(names []string, mode Mode, fetch Fetcher, outDir string, fs FS, now time.Time, onProgress func()) (*schema.BatchSummary, error) {
	if err := fs.MkdirAll(outDir); err != nil {
		return nil, fmt.Errorf("cannot prepare output directory %s: %w", outDir, err)
	}

	summary := &schema.BatchSummary{}
	for _, name := range names {
		summary.Add(generateOne(name, mode, fetch, outDir, fs, now))
		if onProgress != nil {
			onProgress()
		}
	}
	return summary, nil
}

func generateOne(name string, mode Mode, fetch Fetcher, outDir string, fs FS, now time.Time) schema.GenerationResult {
	table, err := fetch(name)
	if err != nil {
		return schema.GenerationResult{Table: name, Outcome: schema.OutcomeFailed, Err: err.Error()}
	}

	path := filepath.Join(outDir, gen.ClassName(table.Name)+".php")

	version := gen.InitialVersion()
	backupPath := ""

	if fs.Exists(path) {
		existing, err := fs.ReadFile(path)
		if err != nil {
			return schema.GenerationResult{Table: name, Outcome: schema.OutcomeFailed, Err: fmt.Sprintf("failed to read existing artifact: %v", err)}
		}

		if mode == ModeSave {
			// No overwrite unless the backup landed.
			backupPath, err = backupArtifact(fs, path, existing, now)
			if err != nil {
				return schema.GenerationResult{Table: name, Outcome: schema.OutcomeSkipped, Err: err.Error()}
			}
		}

		version = gen.ParseVersion(string(existing)).Next()
	}

	text := gen.Assemble(table, version, now)
	if err := fs.WriteFile(path, []byte(text)); err != nil {
		return schema.GenerationResult{Table: name, Outcome: schema.OutcomeFailed, BackupPath: backupPath, Err: fmt.Sprintf("failed to write artifact: %v", err)}
	}

	return schema.GenerationResult{Table: name, Outcome: schema.OutcomeGenerated, Path: path, BackupPath: backupPath}
}
