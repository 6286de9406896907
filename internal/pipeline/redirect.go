package pipeline

import (
	"os"
	"path/filepath"
	"strings"
)

// Redirection operators, checked longest and most specific first so that
// stderr forms are never misread as stdout forms (`2>>` before `2>`
// before the generic `>` family).
var redirectOps = []struct {
	op     string
	stderr bool
	mode   Mode
}{
	{"2>>", true, ModeAppend},
	{"2>", true, ModeTruncate},
	{"1>>", false, ModeAppend},
	{">>", false, ModeAppend},
	{"1>", false, ModeTruncate},
	{">", false, ModeTruncate},
}

// extractRedirects removes redirection operators and their filenames from
// the token list, returning the remaining command tokens in order. An
// operator is either its own token followed by the filename token, or
// fused with the filename (`>out.txt`). A trailing operator with no
// filename is dropped rather than kept as an argument.
func extractRedirects(tokens []string) (cmd []string, stdout, stderr *Redirect) {
	set := func(isStderr bool, mode Mode, target string) {
		r := &Redirect{Mode: mode, Target: target}
		if isStderr {
			stderr = r
		} else {
			stdout = r
		}
	}

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		matched := false
		for _, op := range redirectOps {
			if tok == op.op {
				if i+1 < len(tokens) {
					i++
					set(op.stderr, op.mode, tokens[i])
				}
				matched = true
				break
			}
			if strings.HasPrefix(tok, op.op) {
				set(op.stderr, op.mode, tok[len(op.op):])
				matched = true
				break
			}
		}
		if !matched {
			cmd = append(cmd, tok)
		}
	}
	return cmd, stdout, stderr
}

// open opens the redirect target for writing, creating it if absent.
// Relative targets resolve against the given working directory. The file
// is opened before its stage is spawned so an open failure aborts the
// stage before any process exists for it.
func (r *Redirect) open(cwd string) (*os.File, error) {
	target := r.Target
	if !filepath.IsAbs(target) {
		target = filepath.Join(cwd, target)
	}
	flag := os.O_CREATE | os.O_WRONLY
	if r.Mode == ModeAppend {
		flag |= os.O_APPEND
	} else {
		flag |= os.O_TRUNC
	}
	return os.OpenFile(target, flag, 0644)
}
