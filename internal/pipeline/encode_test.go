package pipeline

import (
	"strings"
	"testing"
)

func TestEncodeEntities(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty string", input: "", expected: ""},
		{name: "safe text unchanged", input: "plain text, 100% safe!", expected: "plain text, 100% safe!"},
		{name: "ampersand", input: "a & b", expected: "a &amp; b"},
		{name: "less than", input: "a < b", expected: "a &lt; b"},
		{name: "greater than", input: "a > b", expected: "a &gt; b"},
		{name: "double quote", input: `say "hi"`, expected: "say &quot;hi&quot;"},
		{name: "apostrophe unchanged", input: "it's", expected: "it's"},
		{name: "existing entity is escaped again", input: "&lt;", expected: "&amp;lt;"},
		{name: "tag", input: "<b>bold</b>", expected: "&lt;b&gt;bold&lt;/b&gt;"},
		{name: "newlines and tabs unchanged", input: "a\n\tb\r\n", expected: "a\n\tb\r\n"},
		{name: "utf-8 unchanged", input: "café — ünïcödé", expected: "café — ünïcödé"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := EncodeEntities(tt.input)
			if got != tt.expected {
				t.Errorf("EncodeEntities(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestEncodeEntities_IdempotentOnSafeText(t *testing.T) {
	t.Parallel()

	inputs := []string{"", "hello", "line one\nline two", "http://example.com/?q=1", "it's 'quoted'"}
	for _, in := range inputs {
		once := EncodeEntities(in)
		if once != in {
			t.Errorf("EncodeEntities(%q) = %q, want identity", in, once)
		}
		if twice := EncodeEntities(once); twice != once {
			t.Errorf("EncodeEntities twice on %q = %q, want %q", in, twice, once)
		}
	}
}

func TestEncodeEntities_NotIdempotentWithAmpersand(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"&", "a & b", "<&>", `"&"`} {
		once := EncodeEntities(in)
		twice := EncodeEntities(once)
		if twice == once {
			t.Errorf("EncodeEntities(EncodeEntities(%q)) = %q, expected re-escaping", in, twice)
		}
	}
}

func TestEncodeEntities_NoReservedCharactersLeft(t *testing.T) {
	t.Parallel()

	got := EncodeEntities(`<a href="x">&</a>`)
	if strings.ContainsAny(got, `<>"`) {
		t.Errorf("EncodeEntities left reserved characters: %q", got)
	}
	// Every remaining ampersand must start one of the four entities.
	rest := got
	for {
		i := strings.IndexByte(rest, '&')
		if i < 0 {
			break
		}
		tail := rest[i:]
		if !strings.HasPrefix(tail, "&amp;") && !strings.HasPrefix(tail, "&lt;") &&
			!strings.HasPrefix(tail, "&gt;") && !strings.HasPrefix(tail, "&quot;") {
			t.Fatalf("bare ampersand at %q", tail)
		}
		rest = tail[1:]
	}
}
