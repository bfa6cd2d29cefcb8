package cookiehead

import (
	"slices"
	"strconv"
)

// Cookie versions.
const (
	// VersionNetscape is the original Netscape cookie draft.
	VersionNetscape = 0
	// VersionRFC2109 enables the Comment attribute.
	VersionRFC2109 = 1
	// VersionRFC2965 enables the CommentURL, Discard and Port attributes.
	VersionRFC2965 = 2
)

// Cookie represents one cookie decoded from the Cookie header.
//
// Name and Value are taken verbatim. Domain, Path, Comment and CommentURL are
// percent-decoded. Use Has to distinguish an absent attribute from an empty
// one.
type Cookie struct {
	Name  string
	Value string

	Domain     string
	Path       string
	Comment    string
	CommentURL string

	MaxAge  int
	Secure  bool
	Discard bool
	Version int

	// Ports is sorted and has no duplicates.
	Ports []int

	set attrSet
}

// Has reports whether attribute a was applied to the cookie.
//
// For the version gated attributes it returns false if the cookie version
// is not high enough, even if the attribute was present in the header.
func (c Cookie) Has(a Attr) bool {
	return c.set.has(a)
}

// HasPort reports whether port is listed in the cookie port list.
func (c Cookie) HasPort(port int) bool {
	_, ok := slices.BinarySearch(c.Ports, port)
	return ok
}

// String renders c in the Cookie header syntax. Attribute values are
// percent-escaped, so decoding the result gives back the same attributes.
// Name and value are written as is.
func (c Cookie) String() string {
	buf := make([]byte, 0, len(c.Name)+len(c.Value)+64)
	buf = append(buf, c.Name...)
	buf = append(buf, '=')
	buf = append(buf, c.Value...)
	if c.set.has(AttrVersion) || c.Version != VersionNetscape {
		buf = append(buf, "; version="...)
		buf = strconv.AppendInt(buf, int64(c.Version), 10)
	}
	if c.set.has(AttrMaxAge) || c.set.has(AttrExpires) {
		buf = append(buf, "; max-age="...)
		buf = strconv.AppendInt(buf, int64(c.MaxAge), 10)
	}
	appendString := func(a Attr, v string) {
		if c.set.has(a) {
			buf = append(buf, "; "...)
			buf = append(buf, a.String()...)
			buf = append(buf, '=')
			buf = AppendEscape(buf, v)
		}
	}
	appendString(AttrPath, c.Path)
	appendString(AttrDomain, c.Domain)
	appendString(AttrComment, c.Comment)
	appendString(AttrCommentURL, c.CommentURL)
	if len(c.Ports) > 0 {
		buf = append(buf, "; port="...)
		for i, p := range c.Ports {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf = strconv.AppendInt(buf, int64(p), 10)
		}
	}
	if c.Secure {
		buf = append(buf, "; secure"...)
	}
	if c.Discard {
		buf = append(buf, "; discard"...)
	}
	return string(buf)
}
