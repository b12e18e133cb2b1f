package path

import (
	"os"
	"path/filepath"
	"runtime"
)

// RootPath returns the absolute path of the project root, derived from this
// file's location (/project/utils/path/path.go → /project).
func RootPath() string {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		panic("cannot resolve caller location")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(filename), "..", ".."))
}

// Exists reports whether a path exists.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
