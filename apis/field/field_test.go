package field

import "testing"

func TestField_Text(t *testing.T) {
	cases := []struct {
		f    Field
		want string
	}{
		{New("k", "v"), "k:v"},
		{New("k", "two words"), `k:"two words"`},
		{New("two keys", "v"), `"two keys":v`},
		{New("n", 42), "n:42"},
		{New("b", true), "b:true"},
	}
	for _, c := range cases {
		if got := c.f.Text(); got != c.want {
			t.Fatalf("Text(%v) = %q, want %q", c.f, got, c.want)
		}
	}
}

func TestQuote(t *testing.T) {
	if got := Quote("plain"); got != "plain" {
		t.Fatalf("Quote(plain) = %q", got)
	}
	if got := Quote("a b"); got != `"a b"` {
		t.Fatalf("Quote(a b) = %q", got)
	}
}
