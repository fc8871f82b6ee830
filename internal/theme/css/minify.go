package css

import "strings"

// Minify strips comments and collapses whitespace. This is a purely textual
// transform over well-formed generated CSS, not a parser; it must not be
// pointed at arbitrary author stylesheets containing strings with braces.
func Minify(input string) string {
	stripped := stripComments(input)

	var b strings.Builder
	b.Grow(len(stripped))

	space := false
	for _, r := range stripped {
		switch r {
		case ' ', '\t', '\n', '\r':
			space = true
		case '{', '}', ':', ';', ',':
			// Whitespace around structural characters is redundant.
			b.WriteRune(r)
			space = false
		default:
			if space && b.Len() > 0 {
				last := b.String()[b.Len()-1]
				if last != '{' && last != '}' && last != ':' && last != ';' && last != ',' {
					b.WriteByte(' ')
				}
			}
			space = false
			b.WriteRune(r)
		}
	}

	return strings.TrimSpace(b.String())
}

func stripComments(input string) string {
	var b strings.Builder
	b.Grow(len(input))

	for i := 0; i < len(input); {
		if i+1 < len(input) && input[i] == '/' && input[i+1] == '*' {
			end := strings.Index(input[i+2:], "*/")
			if end == -1 {
				break
			}
			i += end + 4
			continue
		}
		b.WriteByte(input[i])
		i++
	}

	return b.String()
}
