package postprocess

import "strings"

// DefaultRules returns, in order: newline normalisation, trailing whitespace
// removal, blank line collapsing and final newline enforcement.
func DefaultRules() []Rule {
	return []Rule{
		RuleFunc{RuleName: "normalize-newlines", Fn: NormalizeNewlines},
		RuleFunc{RuleName: "trim-trailing-space", Fn: TrimTrailingSpace},
		RuleFunc{RuleName: "collapse-blank-lines", Fn: CollapseBlankLines},
		RuleFunc{RuleName: "final-newline", Fn: FinalNewline},
	}
}

// NormalizeNewlines rewrites CRLF and lone CR line endings to LF.
func NormalizeNewlines(document string) string {
	if !strings.Contains(document, "\r") {
		return document
	}
	document = strings.ReplaceAll(document, "\r\n", "\n")
	return strings.ReplaceAll(document, "\r", "\n")
}

// TrimTrailingSpace strips spaces and tabs at the end of every line outside
// verbatim elements (pre, textarea, script, style).
func TrimTrailingSpace(document string) string {
	return mapOutside(document, func(text string, last bool) string {
		lines := strings.Split(text, "\n")
		end := len(lines) - 1
		if !last {
			// The final piece runs into a verbatim element on the same line.
			end--
		}
		for idx := 0; idx <= end; idx++ {
			lines[idx] = strings.TrimRight(lines[idx], " \t")
		}
		return strings.Join(lines, "\n")
	})
}

// CollapseBlankLines reduces every run of empty lines outside verbatim
// elements to a single one.
func CollapseBlankLines(document string) string {
	return mapOutside(document, func(text string, _ bool) string {
		if !strings.Contains(text, "\n\n\n") {
			return text
		}
		var b strings.Builder
		b.Grow(len(text))
		run := 0
		for i := 0; i < len(text); i++ {
			if text[i] == '\n' {
				run++
				if run > 2 {
					continue
				}
			} else {
				run = 0
			}
			b.WriteByte(text[i])
		}
		return b.String()
	})
}

// FinalNewline ends a non-empty document with exactly one newline. A document
// holding only newlines becomes empty.
func FinalNewline(document string) string {
	trimmed := strings.TrimRight(document, "\n")
	if trimmed == "" {
		return ""
	}
	return trimmed + "\n"
}
