package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"
	"time"
)

func Test_bodyHash(t *testing.T) {
	data := []byte("hello world")
	got := bodyHash(data)

	sum := sha256.Sum256(data)
	want := hex.EncodeToString(sum[:])

	if got != want {
		t.Fatalf("bodyHash mismatch: got %s want %s", got, want)
	}
}

func Test_buildKey(t *testing.T) {
	k := buildKey("POST", "/payments", "7", strings.Repeat("a", 32))
	wantPrefix := "idemp:post:/payments:"
	if !strings.HasPrefix(k, wantPrefix) {
		t.Fatalf("buildKey prefix mismatch: got %q want prefix %q", k, wantPrefix)
	}
	if !strings.Contains(k, ":7:") || !strings.HasSuffix(k, strings.Repeat("a", 32)) {
		t.Fatalf("buildKey missing user/request segments: %q", k)
	}
}

func Test_validReqID(t *testing.T) {
	valid := []string{
		"3f9a6a1b-3d54-4fbe-8b3a-6b3e8d6b2c88",
		strings.Repeat("a", 32),
		"3f9a6a1b3d544fbe8b3a6b3e8d6b2c88",
	}
	for _, s := range valid {
		if !validReqID(s) {
			t.Fatalf("validReqID should accept %q", s)
		}
	}
	invalid := []string{"", "short", strings.Repeat("g", 32), strings.Repeat("a", 31)}
	for _, s := range invalid {
		if validReqID(s) {
			t.Fatalf("validReqID should reject %q", s)
		}
	}
}

func Test_parseRequestAt(t *testing.T) {
	if _, err := parseRequestAt(""); err == nil {
		t.Fatalf("empty value must be rejected")
	}
	if _, err := parseRequestAt("2026-08-29T10:00:00"); err == nil {
		t.Fatalf("naive timestamp must be rejected")
	}
	got, err := parseRequestAt("2026-08-29T10:00:00Z")
	if err != nil {
		t.Fatalf("RFC3339 with zone: %v", err)
	}
	if got.Location() != time.UTC {
		t.Fatalf("parsed time must be UTC")
	}
	sec, err := parseRequestAt("1736123456")
	if err != nil {
		t.Fatalf("epoch seconds: %v", err)
	}
	ms, err := parseRequestAt("1736123456000")
	if err != nil {
		t.Fatalf("epoch ms: %v", err)
	}
	if !sec.Equal(ms) {
		t.Fatalf("seconds and ms forms disagree: %v vs %v", sec, ms)
	}
}
