// Package redact strips sensitive data from note content before any
// downstream processing sees it.
//
// The engine replaces matched substrings with fixed sentinel tokens:
// - Email addresses        → [REDACTED_EMAIL]
// - IPv4 / IPv6 addresses  → [REDACTED_IP]
// - Bare domains and URLs  → [REDACTED_DOMAIN]
// - Credential assignments → password: [REDACTED_CREDENTIAL] (label kept)
// - Ticket identifiers     → ticket [REDACTED_TICKET] (label kept)
//
// Redaction is one-way: no mapping back to the original values is retained.
// Every pass is a compiled regexp applied globally, so a call is deterministic,
// never fails, and runs in time linear in the input length.
package redact

import (
	"regexp"
)

// Sentinel tokens substituted for redacted values.
const (
	SentinelEmail      = "[REDACTED_EMAIL]"
	SentinelIP         = "[REDACTED_IP]"
	SentinelDomain     = "[REDACTED_DOMAIN]"
	SentinelCredential = "[REDACTED_CREDENTIAL]"
	SentinelTicket     = "[REDACTED_TICKET]"
)

// Kind identifies one category of sensitive data.
type Kind string

const (
	KindEmail      Kind = "email"
	KindIP         Kind = "ip"
	KindDomain     Kind = "domain"
	KindCredential Kind = "credential"
	KindTicket     Kind = "ticket"
)

// pass is one global find-and-replace step. The replacement may reference
// submatch groups, which is how credential and ticket passes preserve the
// label and separator while replacing only the value.
type pass struct {
	kind    Kind
	re      *regexp.Regexp
	replace string
}

// passes is the ordered redaction pipeline. The order is a correctness
// requirement, not a preference:
//
//  1. Emails must go before domains, or the domain portion of an address
//     would be re-matched and double-redacted.
//  2. IPv4/IPv6 must go before domains, or a dotted quad could be half-eaten
//     by the broad domain pattern.
//  3. Credentials and tickets go last so their value patterns see whatever
//     survived the earlier passes.
//
// Reordering silently changes output; redact_test.go pins the order.
var passes = []pass{
	{
		kind:    KindEmail,
		re:      regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`),
		replace: SentinelEmail,
	},
	{
		kind:    KindIP,
		re:      regexp.MustCompile(`\b(?:(?:25[0-5]|2[0-4]\d|1\d\d|[1-9]?\d)\.){3}(?:25[0-5]|2[0-4]\d|1\d\d|[1-9]?\d)\b`),
		replace: SentinelIP,
	},
	{
		kind:    KindIP,
		// Three shapes: full colon-hex runs, runs containing a "::" gap, and
		// a leading "::" (loopback, unspecified).
		re:      regexp.MustCompile(`\b(?:[0-9A-Fa-f]{1,4}:){2,7}[0-9A-Fa-f]{1,4}\b|\b(?:[0-9A-Fa-f]{1,4}:){1,7}:(?:[0-9A-Fa-f]{1,4}(?::[0-9A-Fa-f]{1,4})*)?|::[0-9A-Fa-f]{1,4}(?::[0-9A-Fa-f]{1,4})*`),
		replace: SentinelIP,
	},
	{
		// Deliberately broad: any word.tld-shaped token counts as a domain,
		// which also catches some abbreviation-plus-punctuation prose. That is
		// a known heuristic limitation; erring toward over-redaction is the
		// conservative choice for a privacy filter.
		kind:    KindDomain,
		re:      regexp.MustCompile(`\b(?:https?://)?(?:www\.)?[A-Za-z0-9](?:[A-Za-z0-9-]*[A-Za-z0-9])?(?:\.[A-Za-z0-9](?:[A-Za-z0-9-]*[A-Za-z0-9])?)*\.[A-Za-z]{2,}(?:/[^\s]*)?`),
		replace: SentinelDomain,
	},
	{
		kind:    KindCredential,
		re:      regexp.MustCompile(`(?i)\b(password|passwd|pwd|secret|key|token|auth|api_key|apikey)(\s*[:=]\s*|\s+)(\S+)`),
		replace: "${1}${2}" + SentinelCredential,
	},
	{
		kind:    KindTicket,
		re:      regexp.MustCompile(`(?i)\b(ticket|issue|bug|incident)(\s*[:#]?\s*)([A-Za-z]+-\d[\w-]*|#?\d[\w-]*)`),
		replace: "${1}${2}" + SentinelTicket,
	},
}

// Redact rewrites raw note content, replacing sensitive substrings with
// sentinel tokens. Total function: never fails, returns the input unchanged
// when nothing matches.
func Redact(raw string) string {
	out := raw
	for _, p := range passes {
		out = p.re.ReplaceAllString(out, p.replace)
	}
	return out
}

// PassOrder returns the kinds of the redaction passes in execution order.
// Exists so the ordering contract can be asserted in tests without exporting
// the pass table itself.
func PassOrder() []Kind {
	kinds := make([]Kind, 0, len(passes))
	for _, p := range passes {
		kinds = append(kinds, p.kind)
	}
	return kinds
}
