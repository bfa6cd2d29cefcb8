package cookiehead

import (
	"github.com/rs/zerolog"
)

// Decoder contains options for the Cookie header decoding.
// Zero value is ready to use.
type Decoder struct {
	// Logger receives trace records about the parts of the header that were
	// dropped during decoding. Logging is disabled if nil.
	Logger *zerolog.Logger

	// CanonicalName makes the first byte of the result mapping key upper
	// case. Cookie.Name is left verbatim.
	CanonicalName bool
}

// Decode decodes the Cookie header value using zero Decoder.
func Decode(header string) map[string]Cookie {
	return Decoder{}.Decode(header)
}

// DecodeBytes decodes the Cookie header value using zero Decoder.
func DecodeBytes(data []byte) map[string]Cookie {
	return Decoder{}.DecodeBytes(data)
}

// Decode decodes the Cookie header value into the cookies mapped by name.
// See DecodeBytes.
func (d Decoder) Decode(header string) map[string]Cookie {
	return d.DecodeBytes([]byte(header))
}

// DecodeBytes decodes the Cookie header value into the cookies mapped by
// name.
//
// Every item of data which key is not a reserved attribute starts a new
// cookie; reserved attributes are applied to the most recent one. Cookie
// with the same name overwrites previous one.
//
// It never fails. Malformed parts of data are skipped, so the result may
// be empty or partial. Returned mapping is never nil.
func (d Decoder) DecodeBytes(data []byte) map[string]Cookie {
	b := builder{log: d.logger()}

	var (
		result = make(map[string]Cookie)
		open   bool
	)
	flush := func() {
		if !open {
			return
		}
		open = false
		c := b.finalize()
		key := c.Name
		if d.CanonicalName {
			key = canonicalName(key)
		}
		if _, dup := result[key]; dup {
			b.log.Debug().Str("cookie", key).Msg("duplicate cookie overwritten")
		}
		result[key] = c
	}
	ScanAttributes(data, func(key, value []byte, ok bool) bool {
		if kind := Classify(key); kind != AttrNone {
			if !open {
				b.log.Trace().
					Stringer("attr", kind).
					Bytes("value", value).
					Msg("attribute without cookie dropped")
				return true
			}
			b.apply(kind, value)
			return true
		}
		flush()
		if len(key) == 0 {
			// Attributes up to the next valid pair are dropped together
			// with the nameless one.
			b.log.Trace().Bytes("value", value).Msg("cookie without name dropped")
			return true
		}
		if !IsToken(key) {
			// Kept as is; browsers send such names anyway.
			b.log.Trace().Bytes("cookie", key).Msg("cookie name is not a token")
		}
		b.reset(key, value)
		open = true
		return true
	})
	flush()

	return result
}

func (d Decoder) logger() zerolog.Logger {
	if d.Logger == nil {
		return zerolog.Nop()
	}
	return *d.Logger
}

func canonicalName(name string) string {
	if name == "" || !OctetTypes[name[0]].IsLower() {
		return name
	}
	return string(toUpper(name[0])) + name[1:]
}
