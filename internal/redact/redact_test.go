package redact

import (
	"strings"
	"testing"
)

func TestRedactEmail(t *testing.T) {
	got := Redact("contact me at a@b.com")
	want := "contact me at [REDACTED_EMAIL]"
	if got != want {
		t.Errorf("Redact() = %q, want %q", got, want)
	}
	if strings.Contains(got, "a@b.com") || strings.Contains(got, "b.com") {
		t.Errorf("fragment of the address survived redaction: %q", got)
	}
}

func TestRedactIPv4(t *testing.T) {
	got := Redact("server 192.168.1.10 is down")
	want := "server [REDACTED_IP] is down"
	if got != want {
		t.Errorf("Redact() = %q, want %q", got, want)
	}
}

func TestRedactIPv4_RejectsOutOfRangeOctets(t *testing.T) {
	// 999 is not a valid octet; the dotted token should be left alone
	// rather than half-redacted.
	got := Redact("version 1.2.3.999 shipped")
	if strings.Contains(got, SentinelIP) {
		t.Errorf("invalid dotted quad was redacted as an IP: %q", got)
	}
}

func TestRedactIPv6(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"full", "host 2001:0db8:85a3:0000:0000:8a2e:0370:7334 up", "host [REDACTED_IP] up"},
		{"compressed", "ping 2001:db8::8a2e:370:7334 failed", "ping [REDACTED_IP] failed"},
		{"link local", "via fe80::1 gateway", "via [REDACTED_IP] gateway"},
		{"loopback", "listening on ::1 only", "listening on [REDACTED_IP] only"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Redact(tt.input); got != tt.want {
				t.Errorf("Redact(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRedactDomain(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare domain", "see example.com for details", "see [REDACTED_DOMAIN] for details"},
		{"www prefix", "visit www.example.org today", "visit [REDACTED_DOMAIN] today"},
		{"full url", "docs at https://example.com/docs/intro", "docs at [REDACTED_DOMAIN]"},
		{"subdomain", "api.internal.corp.net is flaky", "[REDACTED_DOMAIN] is flaky"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Redact(tt.input); got != tt.want {
				t.Errorf("Redact(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRedactCredentials(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"colon", "password: hunter2", "password: [REDACTED_CREDENTIAL]"},
		{"equals", "api_key=abc123XYZ", "api_key=[REDACTED_CREDENTIAL]"},
		{"whitespace", "token ghp_abcdef123456", "token [REDACTED_CREDENTIAL]"},
		{"mixed case label", "Secret: s3cr3t!", "Secret: [REDACTED_CREDENTIAL]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Redact(tt.input); got != tt.want {
				t.Errorf("Redact(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRedactTickets(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"jira style", "ticket: OPS-4521 is blocked", "ticket: [REDACTED_TICKET] is blocked"},
		{"hash number", "see issue #42 for context", "see issue #[REDACTED_TICKET] for context"},
		{"bare number", "incident 20260815 resolved", "incident [REDACTED_TICKET] resolved"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Redact(tt.input); got != tt.want {
				t.Errorf("Redact(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRedactTicket_RequiresIdentifierToken(t *testing.T) {
	// "bug" followed by a plain word is prose, not a reference.
	got := Redact("there is a bug in the parser")
	if strings.Contains(got, SentinelTicket) {
		t.Errorf("prose after ticket keyword was redacted: %q", got)
	}
}

// TestRedactPassOrder pins the pass sequence. Reordering changes output
// (e.g. domains before emails double-redacts addresses), so any change here
// must be deliberate.
func TestRedactPassOrder(t *testing.T) {
	want := []Kind{KindEmail, KindIP, KindIP, KindDomain, KindCredential, KindTicket}
	got := PassOrder()
	if len(got) != len(want) {
		t.Fatalf("expected %d passes, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pass %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

// TestRedactEmailBeforeDomain verifies the ordering contract behaviorally:
// the domain part of an email must not be independently re-matched.
func TestRedactEmailBeforeDomain(t *testing.T) {
	got := Redact("mail ops@corp.example.com about it")
	want := "mail [REDACTED_EMAIL] about it"
	if got != want {
		t.Errorf("Redact() = %q, want %q", got, want)
	}
	if strings.Contains(got, SentinelDomain) {
		t.Errorf("email was double-redacted by the domain pass: %q", got)
	}
}

// TestRedactIdempotent checks redact(redact(x)) == redact(x) for the kinds
// where idempotence is guaranteed. The domain pattern's interaction with its
// own sentinel text is a documented exception and is not exercised here.
func TestRedactIdempotent(t *testing.T) {
	inputs := []string{
		"contact a@b.com or c@d.org",
		"hosts 10.0.0.1 and fe80::1",
		"password: hunter2 token abc apikey=xyz",
		"ticket: OPS-1 issue #2 bug 3",
		"mixed: mail a@b.com from 10.0.0.1 with secret: shh about incident 99",
	}
	for _, in := range inputs {
		once := Redact(in)
		twice := Redact(once)
		if once != twice {
			t.Errorf("not idempotent for %q:\n once: %q\ntwice: %q", in, once, twice)
		}
	}
}

func TestRedactPlainTextUntouched(t *testing.T) {
	in := "A firewall filters traffic between network segments"
	if got := Redact(in); got != in {
		t.Errorf("plain text was modified: %q", got)
	}
}

func TestRedactEmptyInput(t *testing.T) {
	if got := Redact(""); got != "" {
		t.Errorf("Redact(\"\") = %q, want empty", got)
	}
}

func TestEstimateReadingMinutes(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"empty", "", 1},
		{"short", "just a few words", 1},
		{"exactly one minute", strings.Repeat("word ", 200), 1},
		{"rounds up", strings.Repeat("word ", 201), 2},
		{"longer", strings.Repeat("word ", 1000), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EstimateReadingMinutes(tt.content); got != tt.want {
				t.Errorf("EstimateReadingMinutes() = %d, want %d", got, tt.want)
			}
		})
	}
}
