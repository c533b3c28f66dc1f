package platform

import (
	"fmt"
	"os"
	"runtime"
)

// Chmod sets file permissions. On Windows this is a no-op because Windows
// does not support Unix-style permission bits.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode.Perm())
}

// MatchMode gives dst the permission bits of src, so a rendered script stays
// executable.
func MatchMode(dst, src string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stat %s: %w", src, err)
	}
	if err := Chmod(dst, info.Mode()); err != nil {
		return fmt.Errorf("chmod %s: %w", dst, err)
	}
	return nil
}
