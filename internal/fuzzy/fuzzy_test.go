package fuzzy

import (
	"testing"

	"github.com/ricardonunez-io/triage/internal/ingestor"
)

func TestNormalize_Digits(t *testing.T) {
	got := Normalize("connection timed out after 30s")
	want := "connection timed out after <NUM>s"
	if got != want {
		t.Errorf("Normalize digits:\ngot  %q\nwant %q", got, want)
	}
}

func TestNormalize_MaximalDigitRuns(t *testing.T) {
	got := Normalize("retry 12345 of 7")
	want := "retry <NUM> of <NUM>"
	if got != want {
		t.Errorf("Normalize runs:\ngot  %q\nwant %q", got, want)
	}
}

func TestNormalize_CaseAndWhitespace(t *testing.T) {
	got := Normalize("  Database   Connection\tTIMEOUT \n on  shard 3 ")
	want := "database connection timeout on shard <NUM>"
	if got != want {
		t.Errorf("Normalize case/whitespace:\ngot  %q\nwant %q", got, want)
	}
}

func TestNormalize_EmptyString(t *testing.T) {
	if got := Normalize(""); got != "" {
		t.Errorf("Normalize empty: got %q, want empty", got)
	}
}

func TestNormalize_NonASCII(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"ΣΦΑΛΜΑ ΒΑΣΗΣ", "σφαλμα βασης"},
		{"Straße gesperrt seit 5 Minuten", "straße gesperrt seit <NUM> minuten"},
		{"ÉCHEC de connexion", "échec de connexion"},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q):\ngot  %q\nwant %q", c.in, got, c.want)
		}
	}
}

func TestDeriveKey_NumericNoiseInvariant(t *testing.T) {
	a := DeriveKey(ingestor.LogRecord{Service: "orders", Message: "connection timed out after 30s"})
	b := DeriveKey(ingestor.LogRecord{Service: "orders", Message: "connection  timed out   after 45s"})
	if a != b {
		t.Errorf("DeriveKey: %v != %v", a, b)
	}
	if a.String() != "orders::connection timed out after <NUM>s" {
		t.Errorf("Key.String: got %q", a.String())
	}
}

func TestDeriveKey_ServiceMatters(t *testing.T) {
	a := DeriveKey(ingestor.LogRecord{Service: "orders", Message: "boom"})
	b := DeriveKey(ingestor.LogRecord{Service: "payments", Message: "boom"})
	if a == b {
		t.Error("DeriveKey: different services must not share a key")
	}
}

func TestDeriveKey_SeparatorInRawText(t *testing.T) {
	a := DeriveKey(ingestor.LogRecord{Service: "a::b", Message: "c"})
	b := DeriveKey(ingestor.LogRecord{Service: "a", Message: "b::c"})
	if a.String() != b.String() {
		t.Fatalf("rendered keys should collide: %q vs %q", a.String(), b.String())
	}
	if a == b {
		t.Error("structured keys must stay distinct when the rendered form collides")
	}
}
