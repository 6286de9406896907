package pipeline

import "strings"

// Tokenize splits a raw input line into argument tokens.
//
// Whitespace outside quotes separates tokens and is discarded. Single
// quotes make everything up to the closing quote literal, backslash
// included. Inside double quotes a backslash escapes only \ " $ and `;
// before any other character it stays in the output. Outside quotes a
// backslash escapes the next character unconditionally. Quote characters
// are zero-width once matched, so adjacent quoted and unquoted segments
// concatenate into a single token, and an empty pair of quotes is an
// empty argument rather than nothing.
//
// An unterminated quote is not an error: the quote stays open through the
// end of the line and whatever accumulated is flushed as the final token.
func Tokenize(line string) []string {
	var tokens []string
	var cur strings.Builder

	// quoted marks that the current token contains a quoted segment, so
	// an empty one still flushes as an empty argument.
	quoted := false

	flush := func() {
		if cur.Len() > 0 || quoted {
			tokens = append(tokens, cur.String())
			cur.Reset()
			quoted = false
		}
	}

	inSingle, inDouble := false, false
	for i := 0; i < len(line); {
		ch := line[i]
		switch {
		case inSingle:
			if ch == '\'' {
				inSingle = false
			} else {
				cur.WriteByte(ch)
			}
			i++

		case inDouble:
			switch ch {
			case '"':
				inDouble = false
				i++
			case '\\':
				if i+1 < len(line) {
					switch next := line[i+1]; next {
					case '\\', '"', '$', '`':
						cur.WriteByte(next)
						i += 2
						continue
					}
				}
				cur.WriteByte('\\')
				i++
			default:
				cur.WriteByte(ch)
				i++
			}

		case ch == '\'':
			inSingle = true
			quoted = true
			i++

		case ch == '"':
			inDouble = true
			quoted = true
			i++

		case ch == '\\':
			if i+1 < len(line) {
				cur.WriteByte(line[i+1])
				i += 2
			} else {
				cur.WriteByte('\\')
				i++
			}

		case ch == ' ' || ch == '\t':
			flush()
			i++

		default:
			cur.WriteByte(ch)
			i++
		}
	}

	flush()
	return tokens
}
