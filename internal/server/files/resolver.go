// Package files confines all filesystem access to a base directory and
// provides listing, reading, writing, and streaming of entries under it.
package files

import (
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/fileexplorer/internal/common"
)

// Resolver joins user-supplied relative paths against a fixed base
// directory and rejects any result that escapes it.
type Resolver struct {
	base string
}

// NewResolver creates a Resolver rooted at baseDir. The base is made
// absolute once at construction so later prefix checks are stable.
func NewResolver(baseDir string) (*Resolver, error) {
	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, err
	}
	return &Resolver{base: filepath.Clean(abs)}, nil
}

// Base returns the absolute base directory.
func (r *Resolver) Base() string {
	return r.base
}

// Resolve normalizes join(base, rel) and verifies the result is the base
// itself or strictly under it. Any escape ("../" traversal, absolute-path
// tricks surviving the join) yields common.ErrAccessDenied. The check is
// separator-aware so "/srv/data-evil" does not pass for base "/srv/data".
func (r *Resolver) Resolve(rel string) (string, error) {
	full := filepath.Join(r.base, filepath.FromSlash(rel))
	if full != r.base && !strings.HasPrefix(full, r.base+string(filepath.Separator)) {
		return "", common.ErrAccessDenied
	}
	return full, nil
}
