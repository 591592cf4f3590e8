package colorname

import "testing"

func TestResolve_MaterialShorthand(t *testing.T) {
	if got := Resolve("RedM"); got != "REDM" {
		t.Fatalf("Resolve(RedM) = %q, want REDM", got)
	}
	if got := Resolve("zari m"); got != "ZARI M" {
		t.Fatalf("Resolve(zari m) = %q, want ZARI M", got)
	}
}

func TestResolve_PlainName(t *testing.T) {
	if got := Resolve("blue"); got != "Blue" {
		t.Fatalf("Resolve(blue) = %q, want Blue", got)
	}
	if got := Resolve("PEACOCK GREEN"); got != "Peacock green" {
		t.Fatalf("Resolve = %q, want Peacock green", got)
	}
}

func TestResolve_ExactHex(t *testing.T) {
	if got := Resolve("#FF0000"); got != "red" {
		t.Fatalf("Resolve(#FF0000) = %q, want red", got)
	}
	if got := Resolve("#f00"); got != "red" {
		t.Fatalf("Resolve(#f00) = %q, want red", got)
	}
}

func TestResolve_NearestHex(t *testing.T) {
	// One step off pure red still lands on red.
	if got := Resolve("#fe0101"); got != "red" {
		t.Fatalf("Resolve(#fe0101) = %q, want red", got)
	}
}

func TestResolve_RGBTriple(t *testing.T) {
	if got := Resolve("255,0,0"); got != "red" {
		t.Fatalf("Resolve(255,0,0) = %q, want red", got)
	}
	if got := Resolve(" 0 , 0 , 255 "); got != "blue" {
		t.Fatalf("Resolve(0,0,255) = %q, want blue", got)
	}
}

func TestResolve_OutOfGamutTriple(t *testing.T) {
	// Parseable but out of range: nearest by distance, deterministically.
	got := Resolve("300,0,0")
	if got != "red" {
		t.Fatalf("Resolve(300,0,0) = %q, want red", got)
	}
	if again := Resolve("300,0,0"); again != got {
		t.Fatalf("Resolve not deterministic: %q then %q", got, again)
	}
}

func TestResolve_MalformedInputsUnchanged(t *testing.T) {
	for _, in := range []string{"abc,def", "#zzzzzz", "1,2", "#12345"} {
		if got := Resolve(in); got != in {
			t.Errorf("Resolve(%q) = %q, want input unchanged", in, got)
		}
	}
}

func TestResolve_Empty(t *testing.T) {
	if got := Resolve(""); got != "" {
		t.Fatalf("Resolve(\"\") = %q, want empty", got)
	}
}

func TestTableParsed(t *testing.T) {
	if len(table) != len(cssColors) {
		t.Fatalf("table has %d entries, source list %d", len(table), len(cssColors))
	}
}
