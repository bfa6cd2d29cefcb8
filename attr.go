package cookiehead

// Attr describes reserved cookie attribute kind.
type Attr uint8

const (
	// AttrNone means that key is not reserved. That is, it starts a new
	// cookie pair.
	AttrNone Attr = iota
	AttrPath
	AttrDomain
	AttrSecure
	AttrComment
	AttrCommentURL
	AttrMaxAge
	AttrExpires
	AttrVersion
	AttrPort
	AttrDiscard
)

func (a Attr) String() string {
	switch a {
	case AttrPath:
		return "path"
	case AttrDomain:
		return "domain"
	case AttrSecure:
		return "secure"
	case AttrComment:
		return "comment"
	case AttrCommentURL:
		return "commentURL"
	case AttrMaxAge:
		return "max-age"
	case AttrExpires:
		return "expires"
	case AttrVersion:
		return "version"
	case AttrPort:
		return "port"
	case AttrDiscard:
		return "discard"
	default:
		return "none"
	}
}

// maxAttrLen is the length of the longest reserved key ("commenturl").
const maxAttrLen = 10

// Classify returns kind of the reserved attribute named by key. Key is
// matched case-insensitively. It returns AttrNone if key is not reserved.
func Classify(key []byte) Attr {
	if len(key) == 0 || len(key) > maxAttrLen {
		return AttrNone
	}
	var buf [maxAttrLen]byte
	for i, c := range key {
		buf[i] = toLower(c)
	}
	return lookupAttr(string(buf[:len(key)]))
}

func lookupAttr(key string) Attr {
	switch key {
	case "path":
		return AttrPath
	case "domain":
		return AttrDomain
	case "secure":
		return AttrSecure
	case "comment":
		return AttrComment
	case "commenturl":
		return AttrCommentURL
	case "max-age":
		return AttrMaxAge
	case "expires":
		return AttrExpires
	case "version":
		return AttrVersion
	case "port":
		return AttrPort
	case "discard":
		return AttrDiscard
	}
	return AttrNone
}

// attrSet is a bit set of attributes present in a cookie.
type attrSet uint16

func (s attrSet) has(a Attr) bool { return s&(1<<a) != 0 }
func (s *attrSet) add(a Attr)     { *s |= 1 << a }
