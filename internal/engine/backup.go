package engine

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

const (
	backupDirName    = "backup"
	backupTimeLayout = "2006-01-02_15-04-05"
)

// backupArtifact archives an existing artifact into a sibling backup
// directory before it gets overwritten. The caller supplies the
// original content it already read, so the backup and the version bump
// see the same bytes. The copy is that content verbatim, preceded by a
// comment block explaining where it came from. Returns the backup path.
//
// Two runs hitting the same artifact within the same second produce the
// same backup name and the later one wins; there is no cross-run
// locking (see the batch driver notes).
func backupArtifact(fs FS, artifactPath string, original []byte, now time.Time) (string, error) {
	dir := filepath.Dir(artifactPath)
	base := filepath.Base(artifactPath)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	backupDir := filepath.Join(dir, backupDirName)
	if err := fs.MkdirAll(backupDir); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	backupPath := filepath.Join(backupDir, fmt.Sprintf("%s_backup_%s%s", stem, now.Format(backupTimeLayout), ext))

	header := fmt.Sprintf("/*\n * Backup of %s taken %s before regeneration.\n * Original content follows unchanged.\n */\n", base, now.Format("2006-01-02 15:04:05"))
	if err := fs.WriteFile(backupPath, append([]byte(header), original...)); err != nil {
		return "", fmt.Errorf("failed to write backup: %w", err)
	}

	return backupPath, nil
}
