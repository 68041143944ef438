package fs

import (
	"errors"
	"io"
	iofs "io/fs"
	"os"
)

type OSFileSystem struct{}

func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

func (fs *OSFileSystem) Stat(path string) (iofs.FileInfo, error) {
	return os.Stat(path)
}

// Exists reports false only for "does not exist"; any other stat failure is
// returned to the caller.
func (fs *OSFileSystem) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, iofs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// SameFile compares the files a and b resolve to, following symlinks, so
// hardlinks and differently spelled paths to one file compare equal. A
// missing path is never the same as anything.
func (fs *OSFileSystem) SameFile(a, b string) (bool, error) {
	ai, err := os.Stat(a)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}

	bi, err := os.Stat(b)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}

	return os.SameFile(ai, bi), nil
}

func (fs *OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile replaces a symlink at path with a regular file instead of writing
// through it.
func (fs *OSFileSystem) WriteFile(path string, data []byte, perm iofs.FileMode) error {
	if err := removeSymlink(path); err != nil {
		return err
	}
	return os.WriteFile(path, data, perm)
}

func (fs *OSFileSystem) MkdirAll(path string, perm iofs.FileMode) error {
	return os.MkdirAll(path, perm)
}

// CopyFile copies src to dst with the source permissions. Like WriteFile, a
// symlink at dst is replaced, never followed.
func (fs *OSFileSystem) CopyFile(src, dst string) (int64, error) {
	srcFile, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer srcFile.Close()

	srcInfo, err := srcFile.Stat()
	if err != nil {
		return 0, err
	}

	if err := removeSymlink(dst); err != nil {
		return 0, err
	}

	dstFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, srcInfo.Mode().Perm())
	if err != nil {
		return 0, err
	}

	n, err := io.Copy(dstFile, srcFile)
	if err != nil {
		_ = dstFile.Close()
		return n, err
	}

	if err := dstFile.Close(); err != nil {
		return n, err
	}

	return n, os.Chmod(dst, srcInfo.Mode().Perm())
}

func removeSymlink(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil
		}
		return err
	}
	if info.Mode()&iofs.ModeSymlink == 0 {
		return nil
	}
	return os.Remove(path)
}
