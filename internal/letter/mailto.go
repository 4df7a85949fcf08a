package letter

import "strings"

const upperhex = "0123456789ABCDEF"

// MailtoLink builds mailto:<address>?subject=<enc>&body=<enc>. The address is
// inserted as given. Subject and body are percent-encoded byte-wise over
// UTF-8, leaving only A-Z a-z 0-9 - _ . ~ / unescaped; spaces become %20.
func MailtoLink(address, subject, body string) string {
	var b strings.Builder
	b.Grow(len("mailto:?subject=&body=") + len(address) + 3*(len(subject)+len(body)))
	b.WriteString("mailto:")
	b.WriteString(address)
	b.WriteString("?subject=")
	escape(&b, subject)
	b.WriteString("&body=")
	escape(&b, body)
	return b.String()
}

// Escape percent-encodes s with the same rules as MailtoLink.
func Escape(s string) string {
	var b strings.Builder
	b.Grow(3 * len(s))
	escape(&b, s)
	return b.String()
}

func escape(b *strings.Builder, s string) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
}

func unreserved(c byte) bool {
	switch {
	case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9':
		return true
	case c == '-', c == '_', c == '.', c == '~', c == '/':
		return true
	}
	return false
}
