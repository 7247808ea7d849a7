package template

// Slots returns the placeholder names referenced by blueprint in first-seen
// order.
func Slots(blueprint string) []string {
	var names []string
	seen := make(map[string]struct{})
	_ = scan(blueprint, func(string) {}, func(name string) error {
		if _, ok := seen[name]; !ok {
			seen[name] = struct{}{}
			names = append(names, name)
		}
		return nil
	})
	return names
}

// scan walks blueprint once, handing literal runs to text and placeholder
// names to slot. `%%` collapses to a single `%`; a `%` that does not start a
// well formed `%(name)s` is copied verbatim.
func scan(blueprint string, text func(string), slot func(string) error) error {
	start := 0
	for i := 0; i < len(blueprint); i++ {
		if blueprint[i] != '%' || i+1 >= len(blueprint) {
			continue
		}
		switch blueprint[i+1] {
		case '%':
			text(blueprint[start:i])
			text("%")
			i++
			start = i + 1
		case '(':
			name, end, ok := placeholder(blueprint, i+2)
			if !ok {
				continue
			}
			text(blueprint[start:i])
			if err := slot(name); err != nil {
				return err
			}
			i = end
			start = end + 1
		}
	}
	text(blueprint[start:])
	return nil
}

// placeholder reads `name)s` starting at from. It returns the name and the
// index of the closing `s`.
func placeholder(s string, from int) (string, int, bool) {
	i := from
	for i < len(s) && isNameByte(s[i], i == from) {
		i++
	}
	if i == from || i+1 >= len(s) || s[i] != ')' || s[i+1] != 's' {
		return "", 0, false
	}
	return s[from:i], i + 1, true
}

func isNameByte(c byte, first bool) bool {
	switch {
	case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return !first
	default:
		return false
	}
}
