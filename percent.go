package cookiehead

import "strings"

// Unescape decodes "%XX" escape sequences of s.
//
// The "+" sign is left as is. Malformed sequences (non-hex digits or
// truncated escape at the end of s) are copied literally.
func Unescape(s string) string {
	i := strings.IndexByte(s, '%')
	if i == -1 {
		return s
	}
	dst := make([]byte, i, len(s))
	copy(dst, s[:i])
	return string(AppendUnescape(dst, []byte(s[i:])))
}

// AppendUnescape appends decoded p to dst and returns the extended buffer.
// See Unescape for details.
func AppendUnescape(dst, p []byte) []byte {
	for i := 0; i < len(p); i++ {
		c := p[i]
		if c == '%' && i+2 < len(p) &&
			OctetTypes[p[i+1]].IsHex() &&
			OctetTypes[p[i+2]].IsHex() {
			c = unhex(p[i+1])<<4 | unhex(p[i+2])
			i += 2
		}
		dst = append(dst, c)
	}
	return dst
}

// stripQuotes returns bts without surrounding double quotes, if both first
// and last byte are double quote.
func stripQuotes(bts []byte) []byte {
	if last := len(bts) - 1; last > 0 && bts[0] == '"' && bts[last] == '"' {
		return bts[1:last]
	}
	return bts
}

const upperhex = "0123456789ABCDEF"

// AppendEscape appends s to dst escaping the bytes which Unescape would
// not get back from the Cookie header: "%", ";", DQUOTE, spaces and
// control characters.
func AppendEscape(dst []byte, s string) []byte {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if t := OctetTypes[c]; t.IsControl() || t.IsSpace() || c == '%' || c == ';' || c == '"' {
			dst = append(dst, '%', upperhex[c>>4], upperhex[c&15])
			continue
		}
		dst = append(dst, c)
	}
	return dst
}
