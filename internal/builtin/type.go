package builtin

import (
	"fmt"
	"io"

	"github.com/gosh-shell/gosh/internal/session"
)

// Type reports how its first argument would be dispatched: as a shell
// builtin, as an executable found on PATH, or not at all.
type Type struct {
	Registry *Registry
	Resolve  func(name string) (string, error)
}

func (t *Type) Name() string        { return "type" }
func (t *Type) Description() string { return "describe how a command would be interpreted" }

func (t *Type) Run(_ *session.Session, args []string, stdin io.Reader, stdout, _ io.Writer) error {
	defer Drain(stdin)
	if len(args) == 0 {
		return nil
	}

	name := args[0]
	if _, ok := t.Registry.Lookup(name); ok {
		fmt.Fprintf(stdout, "%s is a shell builtin\n", name)
		return nil
	}
	if path, err := t.Resolve(name); err == nil {
		fmt.Fprintf(stdout, "%s is %s\n", name, path)
		return nil
	}
	fmt.Fprintf(stdout, "%s: not found\n", name)
	return nil
}
