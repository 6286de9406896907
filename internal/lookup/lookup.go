// Package lookup locates executables on the search path.
package lookup

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// ErrNotFound is returned when no directory on the search path holds an
// executable with the requested name.
var ErrNotFound = errors.New("command not found")

// Resolver searches PATH for executables. The path value is re-read on
// every call, so PATH edits take effect immediately.
type Resolver struct {
	// Fs is the filesystem to search. Defaults to the host filesystem;
	// tests inject an afero.MemMapFs with crafted permission bits.
	Fs afero.Fs

	// Getenv reads environment variables. Defaults to os.Getenv.
	Getenv func(key string) string
}

// NewResolver returns a resolver over the host filesystem.
func NewResolver() *Resolver {
	return &Resolver{Fs: afero.NewOsFs(), Getenv: os.Getenv}
}

// Resolve returns the absolute path of the first executable named name on
// PATH, in listed order, or ErrNotFound.
func (r *Resolver) Resolve(name string) (string, error) {
	for _, dir := range r.dirs() {
		candidate := filepath.Join(dir, name)
		if r.isExecutable(candidate) {
			return candidate, nil
		}
	}
	return "", ErrNotFound
}

// Executables returns the names of every executable on PATH whose name
// starts with prefix. Used for tab completion. Directories that cannot be
// read are skipped.
func (r *Resolver) Executables(prefix string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, dir := range r.dirs() {
		entries, err := afero.ReadDir(r.Fs, dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			name := entry.Name()
			if !strings.HasPrefix(name, prefix) || seen[name] {
				continue
			}
			if entry.Mode().IsRegular() && entry.Mode().Perm()&0111 != 0 {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	return names
}

func (r *Resolver) dirs() []string {
	getenv := r.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	return strings.Split(getenv("PATH"), ":")
}

func (r *Resolver) isExecutable(path string) bool {
	info, err := r.Fs.Stat(path)
	return err == nil && info.Mode().IsRegular() && info.Mode().Perm()&0111 != 0
}
