package pathguard

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mediagrab/mediagrab/internal/utils/errs"
)

// Resolve validates a user-supplied filename against baseDir and returns the
// absolute path it denotes. It rejects absolute paths, path separators,
// ".." segments and symlinks that escape baseDir. Every handler that turns
// external input into a filesystem path must go through here.
func Resolve(baseDir, name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: empty filename", errs.ErrInvalidPath)
	}
	if filepath.IsAbs(name) || strings.HasPrefix(name, "/") || strings.HasPrefix(name, "\\") {
		return "", fmt.Errorf("%w: absolute path %q", errs.ErrInvalidPath, name)
	}
	for _, segment := range strings.FieldsFunc(name, func(r rune) bool {
		return r == '/' || r == '\\'
	}) {
		if segment == ".." {
			return "", fmt.Errorf("%w: traversal in %q", errs.ErrInvalidPath, name)
		}
	}

	base, err := filepath.Abs(baseDir)
	if err != nil {
		return "", fmt.Errorf("%w: resolve base %q: %v", errs.ErrInvalidPath, baseDir, err)
	}
	if resolved, err := filepath.EvalSymlinks(base); err == nil {
		base = resolved
	}

	candidate := filepath.Join(base, filepath.FromSlash(name))
	if !within(base, candidate) {
		return "", fmt.Errorf("%w: %q escapes base directory", errs.ErrInvalidPath, name)
	}

	// The file itself may be a symlink pointing outside the base.
	if resolved, err := filepath.EvalSymlinks(candidate); err == nil {
		if !within(base, resolved) {
			return "", fmt.Errorf("%w: %q resolves outside base directory", errs.ErrInvalidPath, name)
		}
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("%w: resolve %q: %v", errs.ErrInvalidPath, name, err)
	}

	return candidate, nil
}

func within(base, path string) bool {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
