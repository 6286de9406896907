package builtin

import (
	"io"

	"github.com/gosh-shell/gosh/internal/session"
)

// Pwd prints the session working directory.
type Pwd struct{}

func (p *Pwd) Name() string        { return "pwd" }
func (p *Pwd) Description() string { return "print the working directory" }

func (p *Pwd) Run(sess *session.Session, _ []string, stdin io.Reader, stdout, _ io.Writer) error {
	defer Drain(stdin)
	fprintln(stdout, sess.Cwd)
	return nil
}
