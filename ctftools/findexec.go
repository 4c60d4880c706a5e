//go:build unix

package ctftools

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/pboyd/reclass"
)

// FindExecutable returns the first regular, non-hidden file in dir that the
// current user may execute. Challenge machines often drop the target binary
// in /.
func FindExecutable(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	for _, entry := range entries {
		if !entry.Type().IsRegular() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		if unix.Access(path, unix.X_OK) == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("%w: no executable in %s", reclass.ErrNotFound, dir)
}
