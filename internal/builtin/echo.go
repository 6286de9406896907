package builtin

import (
	"io"
	"strings"

	"github.com/gosh-shell/gosh/internal/session"
)

// Echo writes its arguments joined by single spaces, then a newline. It
// never writes to stderr.
type Echo struct{}

func (e *Echo) Name() string        { return "echo" }
func (e *Echo) Description() string { return "display a line of text" }

func (e *Echo) Run(_ *session.Session, args []string, stdin io.Reader, stdout, _ io.Writer) error {
	defer Drain(stdin)
	fprintln(stdout, strings.Join(args, " "))
	return nil
}
