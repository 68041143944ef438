package usecase

import (
	"log/slog"

	"github.com/3-lines-studio/staticpub/internal/core"
	"github.com/3-lines-studio/staticpub/internal/logging"
)

const pageFileMode = 0644

// BackupWriter replaces files while keeping the previous version in a
// sibling .bak file. Only one generation is kept.
type BackupWriter struct {
	fs  FileSystem
	cli CLIOutput
}

func NewBackupWriter(fs FileSystem, cli CLIOutput) *BackupWriter {
	return &BackupWriter{
		fs:  fs,
		cli: cli,
	}
}

// Backup copies path to path.bak when path exists.
func (w *BackupWriter) Backup(path string) (core.WriteResult, error) {
	result := core.WriteResult{Path: path}

	exists, err := w.fs.Exists(path)
	if err != nil {
		return result, core.FilesystemError("stat", path, err)
	}
	if !exists {
		return result, nil
	}

	backupPath := core.BackupPath(path)
	if _, err := w.fs.CopyFile(path, backupPath); err != nil {
		return result, core.FilesystemError("backup", path, err)
	}

	result.BackedUp = true
	result.BackupPath = backupPath
	w.cli.PrintStep("Backed up existing file to: %s", backupPath)
	slog.Debug("backed up file", logging.Path(path), "backup", backupPath)

	return result, nil
}

// WriteFile backs up an existing path and then writes data to it.
func (w *BackupWriter) WriteFile(path string, data []byte) (core.WriteResult, error) {
	result, err := w.Backup(path)
	if err != nil {
		return result, err
	}

	if err := w.fs.WriteFile(path, data, pageFileMode); err != nil {
		return result, core.FilesystemError("write", path, err)
	}
	result.Bytes = int64(len(data))

	return result, nil
}

// PlanCopy decides what CopyFile would do without touching anything.
func (w *BackupWriter) PlanCopy(src, dst string) (core.WriteAction, error) {
	same, err := w.fs.SameFile(src, dst)
	if err != nil {
		return core.ActionWrite, core.FilesystemError("compare", dst, err)
	}

	exists, err := w.fs.Exists(dst)
	if err != nil {
		return core.ActionWrite, core.FilesystemError("stat", dst, err)
	}

	return core.DecideWrite(exists, same), nil
}

// CopyFile copies src over dst with a backup of dst. When both paths resolve
// to the same file nothing is backed up or written.
func (w *BackupWriter) CopyFile(src, dst string) (core.WriteResult, error) {
	action, err := w.PlanCopy(src, dst)
	if err != nil {
		return core.WriteResult{Path: dst}, err
	}

	if action == core.ActionSkipSameFile {
		slog.Debug("source and destination are the same file", logging.Path(dst), "source", src)
		return core.WriteResult{Path: dst, Skipped: true}, nil
	}

	result := core.WriteResult{Path: dst}
	if action == core.ActionBackupAndWrite {
		if result, err = w.Backup(dst); err != nil {
			return result, err
		}
	}

	n, err := w.fs.CopyFile(src, dst)
	if err != nil {
		return result, core.FilesystemError("copy", dst, err)
	}
	result.Bytes = n

	return result, nil
}
