// Package builtin implements the commands that run inside the shell
// process itself. Dispatch goes through a Registry keyed by name so the
// executor resolves a stage's kind once instead of string-matching its way
// through execution.
package builtin

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/gosh-shell/gosh/internal/session"
)

// Builtin is the interface every in-process command implements.
//
// stdin is the upstream byte source when the builtin sits downstream of
// another pipeline stage, and nil otherwise. A builtin that is handed an
// upstream source must read it to EOF even if it ignores the content, so
// the producer is never left blocked on a full pipe; Drain exists for
// exactly that.
type Builtin interface {
	// Name returns the command name used for dispatch and completion.
	Name() string

	// Description returns a one-line summary for `type` and help output.
	Description() string

	// Run executes the builtin synchronously. Errors are I/O-level only;
	// user-visible failures (bad cd target, unknown type operand) are
	// written to stderr and reported as nil.
	Run(sess *session.Session, args []string, stdin io.Reader, stdout, stderr io.Writer) error
}

// Registry maps builtin names to implementations.
type Registry struct {
	mu   sync.RWMutex
	cmds map[string]Builtin
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]Builtin)}
}

// Register adds a builtin to the registry.
func (r *Registry) Register(b Builtin) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cmds[b.Name()] = b
}

// Lookup returns the builtin registered under name, or false.
func (r *Registry) Lookup(name string) (Builtin, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.cmds[name]
	return b, ok
}

// Names returns all registered names sorted alphabetically. The line
// source uses this for tab completion.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.cmds))
	for name := range r.cmds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Drain consumes a reader to EOF, discarding the bytes. Read failures are
// swallowed: a broken upstream is not the builtin's problem.
func Drain(r io.Reader) {
	if r == nil {
		return
	}
	_, _ = io.Copy(io.Discard, r)
}

// fprintln mirrors fmt.Fprintln but drops the error; builtin output going
// to a closed pipe must not fail the shell.
func fprintln(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}
