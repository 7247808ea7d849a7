package page

import "strings"

const (
	readyOpen  = "\n<script type=\"text/javascript\">\n  $(document).ready(function(){\n"
	readyClose = "\n  });\n</script>\n"
)

// ReadyBlock wraps snippets in one block that runs after the document has
// loaded. No snippets yields an empty string.
func ReadyBlock(snippets []string) string {
	if len(snippets) == 0 {
		return ""
	}
	return readyOpen + strings.Join(snippets, "\n") + readyClose
}
