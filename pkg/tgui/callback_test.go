package tgui

import "testing"

func TestDataRoundTrip(t *testing.T) {
	t.Parallel()

	cases := []struct {
		ns, action, payload string
		want                string
	}{
		{"settings", "gender", "male", "settings:gender:male"},
		{"broadcast", "confirm", "", "broadcast:confirm"},
		{"settings", "nat", "US:GB", "settings:nat:US:GB"},
	}
	for _, tc := range cases {
		got := Data(tc.ns, tc.action, tc.payload)
		if got != tc.want {
			t.Errorf("Data(%q,%q,%q) = %q, want %q", tc.ns, tc.action, tc.payload, got, tc.want)
		}
		ns, action, payload := ParseData(got)
		if ns != tc.ns || action != tc.action || payload != tc.payload {
			t.Errorf("ParseData(%q) = %q,%q,%q", got, ns, action, payload)
		}
	}
}

func TestEsc(t *testing.T) {
	t.Parallel()

	if got := Esc("<b> & 'x'").String(); got != "&lt;b&gt; &amp; &#39;x&#39;" {
		t.Errorf("Esc = %q", got)
	}
	if got := B("a<b").String(); got != "<b>a&lt;b</b>" {
		t.Errorf("B = %q", got)
	}
}
