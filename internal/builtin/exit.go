package builtin

import (
	"io"
	"strconv"

	"github.com/gosh-shell/gosh/internal/session"
)

// Exit terminates the whole shell with the given status. A missing or
// unparseable argument means status 0. It never returns control to the
// pipeline under a real session; tests inject a non-terminating Exit hook.
type Exit struct{}

func (e *Exit) Name() string        { return "exit" }
func (e *Exit) Description() string { return "exit the shell" }

func (e *Exit) Run(sess *session.Session, args []string, stdin io.Reader, _, _ io.Writer) error {
	Drain(stdin)

	code := 0
	if len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil {
			code = n
		}
	}
	sess.Exit(code)
	return nil
}
