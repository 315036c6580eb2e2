package parse

import "strings"

// SplitList splits s on commas that are not inside braces, trimming each
// element and dropping empty ones. "equ,angbetween:{a,b},mag" yields three
// elements.
func SplitList(s string) []string {
	var (
		out   []string
		depth int
		start int
	)
	push := func(part string) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	for i, r := range s {
		switch r {
		case '{':
			depth++
		case '}':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				push(s[start:i])
				start = i + 1
			}
		}
	}
	push(s[start:])
	return out
}
