package cookiehead

// OctetType desribes character type.
//
// From the "Basic Rules" chapter of RFC2616
// See https://tools.ietf.org/html/rfc2616#section-2.2
//
// CHAR           = <any US-ASCII character (octets 0 - 127)>
// UPALPHA        = <any US-ASCII uppercase letter "A".."Z">
// LOALPHA        = <any US-ASCII lowercase letter "a".."z">
// CTL            = <any US-ASCII control character (octets 0 - 31) and DEL (127)>
// SP             = <US-ASCII SP, space (32)>
// HT             = <US-ASCII HT, horizontal-tab (9)>
// LWS            = [CRLF] 1*( SP | HT )
//
// token          = 1*<any CHAR except CTLs or separators>
// separators     = "(" | ")" | "<" | ">" | "@"
// | "," | ";" | ":" | "\" | <">
// | "/" | "[" | "]" | "?" | "="
// | "{" | "}" | SP | HT
//
// Percent escapes (RFC3986 section 2.1) additionally need HEXDIG.
type OctetType byte

func (t OctetType) IsControl() bool { return t&octetControl != 0 }
func (t OctetType) IsSpace() bool   { return t&octetSpace != 0 }
func (t OctetType) IsToken() bool   { return t&octetToken != 0 }
func (t OctetType) IsHex() bool     { return t&octetHex != 0 }
func (t OctetType) IsUpper() bool   { return t&octetUpper != 0 }
func (t OctetType) IsLower() bool   { return t&octetLower != 0 }

const (
	octetControl OctetType = 1 << iota
	octetSpace
	octetToken
	octetHex
	octetUpper
	octetLower
)

// OctetTypes is a table of character types for every byte value.
var OctetTypes [256]OctetType

func init() {
	for c := 0; c < 256; c++ {
		var t OctetType
		control := c <= 31 || c == 127
		if control {
			t |= octetControl
		}
		var separator bool
		switch c {
		case '(', ')', '<', '>', '@', ',', ';', ':', '"', '/', '[', ']', '?', '=', '{', '}', '\\':
			separator = true
		case ' ', '\t':
			separator = true
			t |= octetSpace
		}
		switch {
		case '0' <= c && c <= '9':
			t |= octetHex
		case 'a' <= c && c <= 'f':
			t |= octetHex | octetLower
		case 'g' <= c && c <= 'z':
			t |= octetLower
		case 'A' <= c && c <= 'F':
			t |= octetHex | octetUpper
		case 'G' <= c && c <= 'Z':
			t |= octetUpper
		}

		if c <= 127 && !control && !separator {
			t |= octetToken
		}

		OctetTypes[c] = t
	}
}

// IsToken reports whether p is a non-empty RFC2616 token.
func IsToken(p []byte) bool {
	if len(p) == 0 {
		return false
	}
	for _, c := range p {
		if !OctetTypes[c].IsToken() {
			return false
		}
	}
	return true
}

// toLower returns ASCII lower case of c.
func toLower(c byte) byte {
	if OctetTypes[c].IsUpper() {
		return c + 'a' - 'A'
	}
	return c
}

// toUpper returns ASCII upper case of c.
func toUpper(c byte) byte {
	if OctetTypes[c].IsLower() {
		return c - 'a' + 'A'
	}
	return c
}

// unhex returns value of the hex digit c. It must be called only when
// OctetTypes[c].IsHex() is true.
func unhex(c byte) byte {
	switch {
	case c <= '9':
		return c - '0'
	case c >= 'a':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
