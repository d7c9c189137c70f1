package filex

import (
	"fmt"
	"os"
)

// EnsureDir creates dir (and any missing parents) and returns it. Calling
// it on an existing directory is a no-op.
func EnsureDir(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return dir, nil
}
