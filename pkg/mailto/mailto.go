package mailto

import "strings"

const scheme = "mailto:"

// Build returns mailto:<to>?cc=..&subject=..&body=.. with empty parameters omitted.
// The recipient is used verbatim.
func Build(to, cc, subject, body string) string {
	var b strings.Builder
	b.WriteString(scheme)
	b.WriteString(to)

	sep := byte('?')
	for _, p := range [...]struct{ key, value string }{
		{"cc", cc},
		{"subject", subject},
		{"body", body},
	} {
		if p.value == "" {
			continue
		}
		b.WriteByte(sep)
		b.WriteString(p.key)
		b.WriteByte('=')
		b.WriteString(Escape(p.value))
		sep = '&'
	}
	return b.String()
}

// Escape percent-encodes every byte of s outside the RFC 3986 unreserved set.
func Escape(s string) string {
	const hex = "0123456789ABCDEF"

	n := 0
	for i := 0; i < len(s); i++ {
		if !unreserved(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	buf := make([]byte, 0, len(s)+2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			buf = append(buf, c)
			continue
		}
		buf = append(buf, '%', hex[c>>4], hex[c&0x0F])
	}
	return string(buf)
}

func unreserved(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	case c == '-', c == '.', c == '_', c == '~':
		return true
	}
	return false
}
