package cookiehead

import (
	"reflect"
	"testing"
)

func TestCookieHas(t *testing.T) {
	c := Decode(`n=v; version=1; path=; comment=c; port=80`)["n"]
	for _, test := range []struct {
		attr Attr
		exp  bool
	}{
		{AttrPath, true},
		{AttrVersion, true},
		{AttrComment, true},
		{AttrPort, false},
		{AttrDomain, false},
		{AttrSecure, false},
	} {
		if act := c.Has(test.attr); act != test.exp {
			t.Errorf("Has(%v) = %v; want %v", test.attr, act, test.exp)
		}
	}
}

func TestCookieHasPort(t *testing.T) {
	c := Decode(`n=v; version=2; port="8080,80,443"`)["n"]
	for _, port := range []int{80, 443, 8080} {
		if !c.HasPort(port) {
			t.Errorf("HasPort(%d) = false; want true", port)
		}
	}
	if c.HasPort(81) {
		t.Errorf("HasPort(81) = true; want false")
	}
}

func TestCookieString(t *testing.T) {
	for _, test := range []struct {
		in  string
		exp string
	}{
		{
			in:  `n=v`,
			exp: `n=v`,
		},
		{
			in:  `n=v; comment=a%20b; version=1; domain=a%3Bb`,
			exp: `n=v; version=1; domain=a%3Bb; comment=a%20b`,
		},
		{
			in:  `n=v; path=%2Fa; secure`,
			exp: `n=v; path=/a; secure`,
		},
		{
			in:  `n=v; discard; port=80,8080; commentURL=u; version=2; expires=5`,
			exp: `n=v; version=2; max-age=5; commentURL=u; port=80,8080; discard`,
		},
	} {
		if act := Decode(test.in)["n"].String(); act != test.exp {
			t.Errorf("String() = %s; want %s", act, test.exp)
		}
	}
}

var roundTripCases = []struct {
	label string
	in    string
}{
	{"plain", `n=v`},
	{"empty value", `n=`},
	{"escaped percent", `n=v; path=%2Fa%2541`},
	{"escaped quotes", `n=v; path=%22x%22`},
	{"escaped semicolon", `n=v; domain=a%3Bb`},
	{"spaces", `n=v; path=%20a%20b%20`},
	{"control", `n=v; path=a%00%0D%0Ab%7F`},
	{"empty path", `n=v; path; domain=`},
	{"plus and equality", `n=a=b; path=/a+b=c`},
	{"non ascii", "n=v; domain=\xd0\xb0.example"},
	{"v0", `n=v; max-age=50; path=%2Fa; domain=.example.com; secure`},
	{"v1", `n=v; version=1; comment=this%20is%20a%20comment`},
	{"v2", `n=v; version=2; commentURL=http%2F%3Aaurl.com; port=8080,80; discard; secure`},
	{"gated dropped", `n=v; comment=c; port=80; discard`},
}

func TestCookieStringRoundTrip(t *testing.T) {
	for _, test := range roundTripCases {
		t.Run(test.label, func(t *testing.T) {
			exp, ok := Decode(test.in)["n"]
			if !ok {
				t.Fatalf("no cookie in %q", test.in)
			}
			s := exp.String()
			act, ok := Decode(s)["n"]
			if !ok {
				t.Fatalf("no cookie in %q", s)
			}
			if !reflect.DeepEqual(act, exp) {
				t.Errorf("round trip via %q changed cookie:\n\tact: %#v\n\texp: %#v", s, act, exp)
			}
		})
	}
}
