package stub

import "strings"

// Render expands {name} placeholders in tmpl with value(name), where name is
// a run of ASCII letters, digits and underscores. Any other '{' is copied as
// is, so JSON bodies need no escaping. "{{" is a literal '{'.
func Render(tmpl string, value func(name string) string) string {
	if strings.IndexByte(tmpl, '{') < 0 {
		return tmpl
	}
	var b strings.Builder
	b.Grow(len(tmpl))
	for i := 0; i < len(tmpl); {
		c := tmpl[i]
		if c != '{' {
			b.WriteByte(c)
			i++
			continue
		}
		if i+1 < len(tmpl) && tmpl[i+1] == '{' {
			b.WriteByte('{')
			i += 2
			continue
		}
		j := i + 1
		for j < len(tmpl) && isNameByte(tmpl[j]) {
			j++
		}
		if j == i+1 || j == len(tmpl) || tmpl[j] != '}' {
			b.WriteByte('{')
			i++
			continue
		}
		b.WriteString(value(tmpl[i+1 : j]))
		i = j + 1
	}
	return b.String()
}

func isNameByte(c byte) bool {
	return c == '_' ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z') ||
		('0' <= c && c <= '9')
}
