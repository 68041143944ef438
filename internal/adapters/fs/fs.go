package fs

import (
	iofs "io/fs"
)

type FileSystem interface {
	Stat(path string) (iofs.FileInfo, error)
	Exists(path string) (bool, error)
	SameFile(a, b string) (bool, error)
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, perm iofs.FileMode) error
	CopyFile(src, dst string) (int64, error)
	MkdirAll(path string, perm iofs.FileMode) error
}
