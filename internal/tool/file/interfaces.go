package file

import "os"

// fileSystem defines the filesystem operations the file tools need.
type fileSystem interface {
	Stat(path string) (os.FileInfo, error)
	ReadFile(path string, maxSize int64) ([]byte, error)
	ReadDir(path string) ([]os.DirEntry, error)
	WriteFileAtomic(path string, content []byte, perm os.FileMode) error
	EnsureDirs(path string) error
}

// pathResolver defines workspace path resolution operations.
type pathResolver interface {
	Abs(path string) (string, error)
	Rel(path string) (string, error)
}

// ignoreMatcher hides gitignored entries from listings.
type ignoreMatcher interface {
	ShouldIgnore(relativePath string, isDir bool) bool
}
