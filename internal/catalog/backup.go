package catalog

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"fcd/internal/models"
	"fcd/internal/providers"
	"fcd/internal/structures"
)

const backupTimeLayout = "20060102-150405"

// BackupManager keeps rotating timestamped copies of the films blob in a
// separate directory and prunes copies older than the configured TTL. The
// copies are the raw compressed blobs, so a backup can be restored by
// dropping it in place of films.dat.
type BackupManager struct {
	dir         string
	ttl         time.Duration
	fileManager *FileManager
	logger      providers.Logger
	now         func() time.Time
}

func NewBackupManager(conf *structures.Config, fileManager *FileManager, logger providers.Logger) *BackupManager {
	return &BackupManager{
		dir:         conf.Persistence.BackupDir,
		ttl:         conf.Persistence.BackupTTL,
		fileManager: fileManager,
		logger:      logger,
		now:         time.Now,
	}
}

// Enabled reports whether backups are configured at all.
func (b *BackupManager) Enabled() bool {
	return b.dir != ""
}

// Backup writes a timestamped copy of the current films blob and prunes
// expired copies.
func (b *BackupManager) Backup() error {
	if !b.Enabled() {
		return nil
	}

	data, ok, err := b.fileManager.RawBlob(models.BlobKeyFilms)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if err := os.MkdirAll(b.dir, 0o750); err != nil {
		return err
	}

	name := models.BlobKeyFilms + "-" + b.now().UTC().Format(backupTimeLayout) + ".dat"
	if err := os.WriteFile(filepath.Join(b.dir, name), data, 0o640); err != nil {
		return err
	}

	b.prune()
	return nil
}

func (b *BackupManager) prune() {
	if b.ttl <= 0 {
		return
	}

	entries, err := os.ReadDir(b.dir)
	if err != nil {
		b.logger.Warnf(providers.TypeApp, "Backup prune: %s", err)
		return
	}

	cutoff := b.now().UTC().Add(-b.ttl)
	for _, e := range entries {
		ts, ok := backupTimestamp(e.Name())
		if !ok {
			continue
		}
		if ts.Before(cutoff) {
			if err := os.Remove(filepath.Join(b.dir, e.Name())); err != nil {
				b.logger.Warnf(providers.TypeApp, "Backup prune %s: %s", e.Name(), err)
			}
		}
	}
}

// List returns the backup file names, oldest first.
func (b *BackupManager) List() ([]string, error) {
	if !b.Enabled() {
		return nil, nil
	}
	entries, err := os.ReadDir(b.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if _, ok := backupTimestamp(e.Name()); ok {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

func backupTimestamp(name string) (time.Time, bool) {
	prefix := models.BlobKeyFilms + "-"
	if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, ".dat") {
		return time.Time{}, false
	}
	raw := strings.TrimSuffix(strings.TrimPrefix(name, prefix), ".dat")
	ts, err := time.Parse(backupTimeLayout, raw)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}
