package cookiehead

import (
	"bytes"
)

// Scanner represents Cookie header attribute scanner.
//
// It splits data into ";"-separated items of the form
//
// item = key [ "=" value ]
//
// Surrounding linear white space of every item, key and value is trimmed.
// Empty items (produced by doubled or trailing separators) are skipped.
type Scanner struct {
	data []byte
	pos  int

	key      []byte
	value    []byte
	hasValue bool
}

func NewScanner(data []byte) *Scanner {
	return &Scanner{data: data}
}

// Next scans for next non-empty item. It returns true on successful scanning,
// and false on EOF. Scanner never fails on malformed input.
func (l *Scanner) Next() bool {
	l.resetItem()
	for l.pos < len(l.data) {
		var item []byte
		if i := bytes.IndexByte(l.data[l.pos:], ';'); i == -1 {
			// Reached the end of data.
			item = l.data[l.pos:]
			l.pos = len(l.data)
		} else {
			item = l.data[l.pos : l.pos+i]
			l.pos += i + 1
		}
		if item = TrimSpace(item); len(item) == 0 {
			continue
		}
		l.fetchItem(item)
		return true
	}
	return false
}

// Key returns key of the current item.
func (l *Scanner) Key() []byte {
	return l.key
}

// Value returns value of the current item and reports whether the item had
// the "=" sign at all. That is, "secure" and "secure=" are distinguishable.
func (l *Scanner) Value() ([]byte, bool) {
	return l.value, l.hasValue
}

func (l *Scanner) resetItem() {
	l.key = nil
	l.value = nil
	l.hasValue = false
}

func (l *Scanner) fetchItem(item []byte) {
	i := bytes.IndexByte(item, '=')
	if i == -1 {
		l.key = item
		return
	}
	l.key = TrimSpace(item[:i])
	l.value = TrimSpace(item[i+1:])
	l.hasValue = true
}

// ScanAttributes calls it for every key[=value] item of the Cookie header
// data. The ok argument reports whether the item has a value part.
// Iteration stops when it returns false.
func ScanAttributes(data []byte, it func(key, value []byte, ok bool) bool) {
	lexer := NewScanner(data)
	for lexer.Next() {
		value, ok := lexer.Value()
		if !it(lexer.Key(), value, ok) {
			return
		}
	}
}

// ScanList parses data in this form:
//
// list = #element
//
// Unlike the strict token list, elements are arbitrary octets except comma.
// Empty elements are skipped.
func ScanList(data []byte, it func([]byte) bool) {
	for len(data) > 0 {
		var elem []byte
		if i := bytes.IndexByte(data, ','); i == -1 {
			elem, data = data, nil
		} else {
			elem, data = data[:i], data[i+1:]
		}
		if elem = TrimSpace(elem); len(elem) == 0 {
			continue
		}
		if !it(elem) {
			return
		}
	}
}

// SkipSpace skips spaces and lws-sequences from p.
// It returns number ob bytes skipped.
func SkipSpace(p []byte) (n int) {
	for len(p) > 0 {
		switch {
		case len(p) >= 3 &&
			p[0] == '\r' &&
			p[1] == '\n' &&
			OctetTypes[p[2]].IsSpace():
			p = p[3:]
			n += 3
		case OctetTypes[p[0]].IsSpace():
			p = p[1:]
			n += 1
		default:
			return
		}
	}
	return
}

// TrimSpace returns p without leading and trailing linear white space.
func TrimSpace(p []byte) []byte {
	p = p[SkipSpace(p):]
	for len(p) > 0 {
		c := p[len(p)-1]
		if OctetTypes[c].IsSpace() || c == '\r' || c == '\n' {
			p = p[:len(p)-1]
			continue
		}
		break
	}
	return p
}
