package repl

import (
	"strings"

	"github.com/fatih/color"

	"github.com/gosh-shell/gosh/internal/session"
)

var promptDir = color.New(color.FgCyan, color.Bold)

// renderPrompt expands prompt escapes: `\w` becomes the working
// directory with the home prefix contracted to `~`.
func renderPrompt(format string, sess *session.Session) string {
	if !strings.Contains(format, `\w`) {
		return format
	}

	pwd := sess.Cwd
	if home := sess.Home(); home != "" && strings.HasPrefix(pwd, home) {
		pwd = "~" + strings.TrimPrefix(pwd, home)
	}
	return strings.ReplaceAll(format, `\w`, promptDir.Sprint(pwd))
}
