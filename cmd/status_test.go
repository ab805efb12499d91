package cmd

import (
	"strings"
	"testing"
	"time"

	"github.com/rrenner/lfmkit/internal/store"
	"github.com/rrenner/lfmkit/pkg/lastfm"
)

func TestFormatAccountTable(t *testing.T) {
	created := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	accounts := []store.Account{
		{
			Name:      "default",
			Username:  "alice",
			Record:    lastfm.Record{APIKey: "k", APISecret: "s", SessionKey: "sk"},
			CreatedAt: created,
		},
		{
			Name:      "work",
			Username:  "",
			Record:    lastfm.Record{APIKey: "k", APISecret: "s"},
			CreatedAt: created,
		},
	}

	out := formatAccountTable(accounts, "default")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), out)
	}

	if !strings.HasPrefix(lines[0], "ACCOUNT") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "default *") {
		t.Errorf("default account not marked: %q", lines[1])
	}
	if !strings.Contains(lines[1], "authenticated") {
		t.Errorf("authenticated state missing: %q", lines[1])
	}
	if !strings.Contains(lines[2], "none") {
		t.Errorf("keyless account should show none: %q", lines[2])
	}
	if !strings.Contains(lines[1], "2026-03-14") {
		t.Errorf("created date missing: %q", lines[1])
	}
}

// TestFormatAccountTable_WideRunes verifies columns stay aligned when a
// username contains double-width characters.
func TestFormatAccountTable_WideRunes(t *testing.T) {
	accounts := []store.Account{
		{Name: "jp", Username: "音楽好き", Record: lastfm.Record{APIKey: "k", APISecret: "s"}},
		{Name: "us", Username: "bob", Record: lastfm.Record{APIKey: "k", APISecret: "s"}},
	}

	out := formatAccountTable(accounts, "")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	// The SESSION column should start at the same display offset on
	// every row; with display-width padding both rows read "none" after
	// the username column.
	for _, line := range lines[1:] {
		if !strings.Contains(line, "  none") {
			t.Errorf("session column misaligned: %q", line)
		}
	}
}
