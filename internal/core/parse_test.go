package core

import (
	"reflect"
	"testing"
)

func TestTokenizeCommandLine(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"/generate", []string{"/generate"}},
		{"/broadcast hello world", []string{"/broadcast", "hello", "world"}},
		{`/broadcast "hello world"`, []string{"/broadcast", "hello world"}},
		{`/cmd a 'b c' --k=v`, []string{"/cmd", "a", "b c", "--k=v"}},
		{`/cmd a\ b`, []string{"/cmd", "a b"}},
	}
	for _, tc := range cases {
		got := tokenizeCommandLine(tc.in)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("tokenize(%q) = %#v, want %#v", tc.in, got, tc.want)
		}
	}
}

func TestParseFlags(t *testing.T) {
	t.Parallel()

	pos, flags, bools := parseFlags([]string{"5", "--locale", "de", "--json", "-n=3", "-ab"})
	if !reflect.DeepEqual(pos, []string{"5"}) {
		t.Errorf("pos = %#v", pos)
	}
	if flags["locale"] != "de" || flags["n"] != "3" {
		t.Errorf("flags = %#v", flags)
	}
	if !bools["json"] || !bools["a"] || !bools["b"] {
		t.Errorf("bools = %#v", bools)
	}
}

func TestNewReqIDUnique(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := newReqID()
		if id == "" {
			t.Fatal("empty request id")
		}
		if seen[id] {
			t.Fatalf("duplicate request id %q", id)
		}
		seen[id] = true
	}
}
