package builtin

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gosh-shell/gosh/internal/session"
)

// Cd changes the session working directory. `~` and `~/...` expand using
// HOME; a bare `cd` goes home. Failure is reported on stderr and leaves
// the directory unchanged.
type Cd struct{}

func (c *Cd) Name() string        { return "cd" }
func (c *Cd) Description() string { return "change the working directory" }

func (c *Cd) Run(sess *session.Session, args []string, stdin io.Reader, _, stderr io.Writer) error {
	defer Drain(stdin)

	var target string
	switch {
	case len(args) == 0:
		target = sess.Home()
		if target == "" {
			fmt.Fprintln(stderr, "cd: HOME not set")
			return nil
		}
	case args[0] == "~" || strings.HasPrefix(args[0], "~/"):
		home := sess.Home()
		if home == "" {
			fmt.Fprintln(stderr, "cd: HOME not set")
			return nil
		}
		target = filepath.Join(home, strings.TrimPrefix(args[0], "~"))
	default:
		target = args[0]
	}

	if err := sess.Chdir(target); err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(stderr, "cd: %s: No such file or directory\n", target)
		} else {
			fmt.Fprintf(stderr, "cd: %s: %v\n", target, err)
		}
	}
	return nil
}
