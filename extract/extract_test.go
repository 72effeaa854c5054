package extract

import (
	"strings"
	"testing"
)

func TestPlain(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  kitab   al-ilm  ", "kitab al-ilm"},
		{"line one\nline two", "line one line two"},
		{"tabs\there", "tabs here"},
		{"", ""},
		{"   \n\t ", ""},
	}

	for _, tt := range tests {
		if got := Plain(tt.in); got != tt.want {
			t.Errorf("Plain(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHTMLText(t *testing.T) {
	html := `<html><head><title>ignored</title></head>
<body><h1>Kitab al-ilm</h1><p>El libro del  conocimiento.</p></body></html>`

	got, err := HTMLText(html)
	if err != nil {
		t.Fatalf("HTMLText failed: %v", err)
	}

	want := "Kitab al-ilm El libro del conocimiento."
	if got != want {
		t.Errorf("Got %q, want %q", got, want)
	}
}

func TestHTMLText_SkipsNonContentTags(t *testing.T) {
	html := `<body>
<script>var hidden = "nope";</script>
<style>.x { color: red }</style>
<pre>preformatted code</pre>
<p>visible</p>
</body>`

	got, err := HTMLText(html)
	if err != nil {
		t.Fatalf("HTMLText failed: %v", err)
	}

	if got != "visible" {
		t.Errorf("Expected only visible content, got %q", got)
	}
	for _, leaked := range []string{"hidden", "color", "preformatted"} {
		if strings.Contains(got, leaked) {
			t.Errorf("Non-content text %q leaked into output", leaked)
		}
	}
}

func TestHTMLText_NestedElements(t *testing.T) {
	html := `<p>El <em>libro</em> del <strong>conocimiento</strong>.</p>`

	got, err := HTMLText(html)
	if err != nil {
		t.Fatalf("HTMLText failed: %v", err)
	}

	want := "El libro del conocimiento ."
	if got != want {
		t.Errorf("Got %q, want %q", got, want)
	}
}

func TestHTMLText_PlainTextPassesThrough(t *testing.T) {
	got, err := HTMLText("just plain words")
	if err != nil {
		t.Fatalf("HTMLText failed: %v", err)
	}
	if got != "just plain words" {
		t.Errorf("Got %q", got)
	}
}
