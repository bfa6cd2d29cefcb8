package cookiehead

import "testing"

var classifyCases = []struct {
	in  string
	exp Attr
}{
	{"path", AttrPath},
	{"Path", AttrPath},
	{"domain", AttrDomain},
	{"DOMAIN", AttrDomain},
	{"secure", AttrSecure},
	{"comment", AttrComment},
	{"commentURL", AttrCommentURL},
	{"commenturl", AttrCommentURL},
	{"max-age", AttrMaxAge},
	{"Max-Age", AttrMaxAge},
	{"expires", AttrExpires},
	{"version", AttrVersion},
	{"port", AttrPort},
	{"discard", AttrDiscard},

	{"", AttrNone},
	{"myCookie", AttrNone},
	{"maxage", AttrNone},
	{"max_age", AttrNone},
	{"paths", AttrNone},
	{"$path", AttrNone},
	{"httponly", AttrNone},
	{"commentURLs", AttrNone},
	{"p\xc1th", AttrNone},
}

func TestClassify(t *testing.T) {
	for _, test := range classifyCases {
		t.Run(test.in, func(t *testing.T) {
			if act := Classify([]byte(test.in)); act != test.exp {
				t.Errorf("Classify(%q) = %v; want %v", test.in, act, test.exp)
			}
		})
	}
}

func TestAttrString(t *testing.T) {
	for a := AttrPath; a <= AttrDiscard; a++ {
		if act := Classify([]byte(a.String())); act != a {
			t.Errorf("Classify(%q) = %v; want %v", a.String(), act, a)
		}
	}
}

func BenchmarkClassify(b *testing.B) {
	for _, bench := range classifyCases {
		b.Run(bench.in, func(b *testing.B) {
			p := []byte(bench.in)
			for i := 0; i < b.N; i++ {
				_ = Classify(p)
			}
		})
	}
}
