package dataset

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"propfilter/internal/errors"
)

// SourceKey identifies one version of a source file
type SourceKey struct {
	Path    string
	Size    int64
	ModTime time.Time
}

// String is the cache key: the same path with a new size or mtime is a new version
func (k SourceKey) String() string {
	return fmt.Sprintf("%s|%d|%d", k.Path, k.Size, k.ModTime.UnixNano())
}

// Identify stats path and returns its current version key
func Identify(path string) (SourceKey, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return SourceKey{}, errors.Wrap(errors.NotFound(path), "source file missing")
		}
		return SourceKey{}, errors.SourceError(path, err)
	}
	if info.IsDir() {
		return SourceKey{}, errors.InvalidInput(fmt.Sprintf("source %s is a directory", path))
	}
	return SourceKey{Path: abs, Size: info.Size(), ModTime: info.ModTime()}, nil
}

// Digest returns the hex sha256 of the file contents
func Digest(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.SourceError(path, err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", errors.SourceError(path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
