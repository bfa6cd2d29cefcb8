package cookiehead

import (
	"slices"
	"strconv"

	"github.com/rs/zerolog"
)

type rawAttr struct {
	kind  Attr
	value []byte
}

// builder accumulates attributes of the cookie being decoded.
//
// Attributes are buffered until finalize, which resolves the version first.
// That is, the version gating does not depend on the order of attributes
// within the cookie.
type builder struct {
	log zerolog.Logger

	name  []byte
	value []byte
	attrs []rawAttr
}

func (b *builder) reset(name, value []byte) {
	b.name = name
	b.value = value
	b.attrs = b.attrs[:0]
}

func (b *builder) apply(kind Attr, value []byte) {
	b.attrs = append(b.attrs, rawAttr{kind, value})
}

func (b *builder) finalize() Cookie {
	c := Cookie{
		Name:  string(b.name),
		Value: string(b.value),
	}
	for _, a := range b.attrs {
		if a.kind != AttrVersion {
			continue
		}
		v, err := strconv.Atoi(string(stripQuotes(a.value)))
		if err != nil || v < VersionNetscape || v > VersionRFC2965 {
			b.trace(c, a, "invalid version ignored")
			continue
		}
		c.Version = v
		c.set.add(AttrVersion)
	}
	for _, a := range b.attrs {
		if c.Version < minVersion(a.kind) {
			b.trace(c, a, "attribute requires higher version")
			continue
		}
		switch a.kind {
		case AttrPath:
			c.Path = unescapeValue(a.value)
		case AttrDomain:
			c.Domain = unescapeValue(a.value)
		case AttrComment:
			c.Comment = unescapeValue(a.value)
		case AttrCommentURL:
			c.CommentURL = unescapeValue(a.value)

		case AttrSecure:
			c.Secure = true
		case AttrDiscard:
			c.Discard = true

		case AttrMaxAge, AttrExpires:
			n, err := strconv.Atoi(string(stripQuotes(a.value)))
			if err != nil {
				b.trace(c, a, "invalid max-age ignored")
				continue
			}
			c.MaxAge = n

		case AttrPort:
			c.Ports = b.appendPorts(c, a, c.Ports)

		case AttrVersion:
			continue
		}
		c.set.add(a.kind)
	}
	if len(c.Ports) > 1 {
		slices.Sort(c.Ports)
		c.Ports = slices.Compact(c.Ports)
	}
	return c
}

func (b *builder) appendPorts(c Cookie, a rawAttr, ports []int) []int {
	ScanList(stripQuotes(a.value), func(p []byte) bool {
		n, err := strconv.Atoi(string(p))
		if err != nil {
			b.log.Trace().
				Str("cookie", c.Name).
				Bytes("port", p).
				Msg("invalid port ignored")
			return true
		}
		ports = append(ports, n)
		return true
	})
	return ports
}

func (b *builder) trace(c Cookie, a rawAttr, msg string) {
	b.log.Trace().
		Str("cookie", c.Name).
		Stringer("attr", a.kind).
		Bytes("value", a.value).
		Int("version", c.Version).
		Msg(msg)
}

// minVersion returns minimal cookie version which honors attribute a.
func minVersion(a Attr) int {
	switch a {
	case AttrComment:
		return VersionRFC2109
	case AttrCommentURL, AttrDiscard, AttrPort:
		return VersionRFC2965
	default:
		return VersionNetscape
	}
}

func unescapeValue(p []byte) string {
	p = stripQuotes(p)
	return string(AppendUnescape(make([]byte, 0, len(p)), p))
}
