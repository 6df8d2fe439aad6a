package main

import "testing"

func TestParseFlags(t *testing.T) {
	f, err := parseFlags([]string{"notes.md", "--title", "My Notes", "--db", "/tmp/x.db", "--max-cards", "5"})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if len(f.positional) != 1 || f.positional[0] != "notes.md" {
		t.Errorf("positional = %v", f.positional)
	}
	if f.title != "My Notes" {
		t.Errorf("title = %q", f.title)
	}
	if f.dbPath != "/tmp/x.db" {
		t.Errorf("db = %q", f.dbPath)
	}
	if f.maxCards != 5 {
		t.Errorf("maxCards = %d", f.maxCards)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	cases := [][]string{
		{"--title"},
		{"--max-cards", "nope"},
		{"--max-cards", "-1"},
		{"--bogus"},
	}
	for _, args := range cases {
		if _, err := parseFlags(args); err == nil {
			t.Errorf("expected error for %v", args)
		}
	}
}

func TestParseFlags_StdinDashIsPositional(t *testing.T) {
	f, err := parseFlags([]string{"-"})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if len(f.positional) != 1 || f.positional[0] != "-" {
		t.Errorf("positional = %v", f.positional)
	}
}

func TestTitleFromPath(t *testing.T) {
	cases := map[string]string{
		"vpn-basics.md":       "vpn-basics",
		"/tmp/notes/plan.txt": "plan",
		"README":              "README",
	}
	for in, want := range cases {
		if got := titleFromPath(in); got != want {
			t.Errorf("titleFromPath(%q) = %q, want %q", in, got, want)
		}
	}
}
