package pipeline

// Parse splits a token sequence on the pipe operator and builds a
// Pipeline, extracting redirections independently from each stage. Empty
// stages (from leading, trailing, or doubled pipes) are dropped silently,
// as is a stage whose tokens were all redirection material.
func Parse(tokens []string) *Pipeline {
	p := &Pipeline{}
	var current []string

	flush := func() {
		if len(current) == 0 {
			return
		}
		cmd, stdout, stderr := extractRedirects(current)
		current = nil
		if len(cmd) == 0 {
			return
		}
		p.Stages = append(p.Stages, Stage{
			Command: cmd[0],
			Args:    cmd[1:],
			Stdout:  stdout,
			Stderr:  stderr,
		})
	}

	for _, tok := range tokens {
		if tok == "|" {
			flush()
			continue
		}
		current = append(current, tok)
	}
	flush()

	return p
}
