package postprocess

import "strings"

// verbatimTags are elements whose content is whitespace sensitive. The rules
// never touch anything from the opening `<tag` to the closing `</tag>`.
var verbatimTags = []string{"pre", "textarea", "script", "style"}

// mapOutside applies fn to every run of the document that lies outside a
// verbatim element, in order. last is true for the run that ends the
// document. An opening tag without a matching close is treated as text.
func mapOutside(document string, fn func(text string, last bool) string) string {
	var b strings.Builder
	b.Grow(len(document))

	start := 0
	for pos := 0; pos < len(document); {
		at := strings.IndexByte(document[pos:], '<')
		if at < 0 {
			break
		}
		at += pos
		end := verbatimEnd(document, at)
		if end < 0 {
			pos = at + 1
			continue
		}
		b.WriteString(fn(document[start:at], false))
		b.WriteString(document[at:end])
		start, pos = end, end
	}
	b.WriteString(fn(document[start:], true))
	return b.String()
}

// verbatimEnd returns the index just past the element closing the verbatim
// tag opened at document[at], or -1 when no verbatim element starts there.
func verbatimEnd(document string, at int) int {
	for _, tag := range verbatimTags {
		open := at + 1 + len(tag)
		if open > len(document) || !strings.EqualFold(document[at+1:open], tag) {
			continue
		}
		if open < len(document) && !strings.ContainsRune(" \t\n\r\f/>", rune(document[open])) {
			continue
		}
		closer := indexFold(document[open:], "</"+tag)
		if closer < 0 {
			return -1
		}
		closer += open
		gt := strings.IndexByte(document[closer:], '>')
		if gt < 0 {
			return -1
		}
		return closer + gt + 1
	}
	return -1
}

// indexFold is strings.Index with ASCII case folding on an ASCII needle.
func indexFold(s, needle string) int {
	for i := 0; i+len(needle) <= len(s); i++ {
		if strings.EqualFold(s[i:i+len(needle)], needle) {
			return i
		}
	}
	return -1
}
