package main

import (
	"sort"
	"strings"

	"github.com/gobwas/cookiehead"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// renderCookies renders decoded cookies as a JSON document:
//
//	{"cookies":[{"key":"...","name":"...","value":"...",...}]}
//
// Cookies are sorted by key. Absent attributes are omitted.
func renderCookies(cookies map[string]cookiehead.Cookie, indent bool) (string, error) {
	keys := make([]string, 0, len(cookies))
	for key := range cookies {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := `{"cookies":[]}`
	for _, key := range keys {
		obj, err := renderCookie(key, cookies[key])
		if err != nil {
			return "", err
		}
		if out, err = sjson.SetRaw(out, "cookies.-1", obj); err != nil {
			return "", err
		}
	}
	if indent {
		return strings.TrimSuffix(string(pretty.Pretty([]byte(out))), "\n"), nil
	}
	return out, nil
}

func renderCookie(key string, c cookiehead.Cookie) (obj string, err error) {
	obj = `{}`
	set := func(path string, value interface{}) {
		if err != nil {
			return
		}
		obj, err = sjson.Set(obj, path, value)
	}
	set("key", key)
	set("name", c.Name)
	set("value", c.Value)
	set("version", c.Version)
	set("maxAge", c.MaxAge)
	set("secure", c.Secure)
	set("discard", c.Discard)
	if c.Has(cookiehead.AttrDomain) {
		set("domain", c.Domain)
	}
	if c.Has(cookiehead.AttrPath) {
		set("path", c.Path)
	}
	if c.Has(cookiehead.AttrComment) {
		set("comment", c.Comment)
	}
	if c.Has(cookiehead.AttrCommentURL) {
		set("commentURL", c.CommentURL)
	}
	ports := c.Ports
	if ports == nil {
		ports = []int{}
	}
	set("ports", ports)
	return obj, err
}
