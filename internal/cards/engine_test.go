package cards

import (
	"strings"
	"testing"
)

func TestEngineShortContentGuard(t *testing.T) {
	e := NewEngine(DefaultEngineConfig())

	short := "Q: What is X?\nA: Too short overall."
	if len(strings.TrimSpace(short)) >= 50 {
		t.Fatal("test content must trim under the guard threshold")
	}
	if got := e.Generate(short); len(got) != 0 {
		t.Errorf("expected no cards for sub-threshold content, got %d", len(got))
	}

	if got := e.Generate("   \n\t  "); len(got) != 0 {
		t.Errorf("expected no cards for whitespace content, got %d", len(got))
	}
}

func TestEngineStrategyOrder(t *testing.T) {
	e := NewEngine(DefaultEngineConfig())
	want := []string{
		StrategyExplicitQA,
		StrategyDefinition,
		StrategyListQA,
		StrategyHeadingConcept,
		StrategyListSummary,
	}
	got := e.Strategies()
	if len(got) != len(want) {
		t.Fatalf("expected %d strategies, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("strategy %d = %q, want %q", i, got[i], want[i])
		}
	}
}

// TestEngineDedupSurvivorship: when two strategies independently produce the
// same normalized question, the earlier strategy in the documented order wins.
func TestEngineDedupSurvivorship(t *testing.T) {
	content := "Firewall: A security system that filters traffic between network segments.\n" +
		"\n" +
		"## Firewall\n" +
		"A security barrier enforcing rules at the network boundary."

	e := NewEngine(DefaultEngineConfig())
	got := e.Generate(content)

	var firewall []Candidate
	for _, c := range got {
		if strings.EqualFold(strings.TrimSpace(c.Question), "what is firewall?") {
			firewall = append(firewall, c)
		}
	}
	if len(firewall) != 1 {
		t.Fatalf("expected exactly one firewall card, got %d", len(firewall))
	}
	if firewall[0].Strategy != StrategyDefinition {
		t.Errorf("survivor strategy = %q, want %q (definition runs before heading)", firewall[0].Strategy, StrategyDefinition)
	}
}

func TestEngineMixedContent(t *testing.T) {
	content := "## Network Basics\n" +
		"Core concepts every operator should know about packet networks.\n" +
		"\n" +
		"Latency: The time a packet takes to traverse the network path.\n" +
		"\n" +
		"Q: What is a VPN?\n" +
		"A: A Virtual Private Network that creates a secure encrypted connection.\n" +
		"\n" +
		"- Routers forward packets between networks\n" +
		"- Switches forward frames within a network"

	e := NewEngine(DefaultEngineConfig())
	got := e.Generate(content)

	questions := make(map[string]bool, len(got))
	for _, c := range got {
		questions[c.Question] = true
	}

	for _, want := range []string{
		"What is a VPN?",
		"What is Latency?",
		"What is Network Basics?",
		listSummaryQuestion,
	} {
		if !questions[want] {
			t.Errorf("missing expected card %q in %v", want, questions)
		}
	}
}

func TestEngineCapAppliesAcrossStrategies(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 40; i++ {
		b.WriteString("Q: What is concept number ")
		b.WriteString(strings.Repeat("x", i+1))
		b.WriteString("?\nA: An answer with enough substance to pass validation.\n\n")
	}

	e := NewEngine(EngineConfig{MaxCards: 5})
	got := e.Generate(b.String())
	if len(got) != 5 {
		t.Errorf("expected 5 cards, got %d", len(got))
	}
}

func TestEngineGenerateWithTitleFallback(t *testing.T) {
	content := "Plain prose about spanning tree behavior in switched networks.\n" +
		"It converges by electing a root bridge and blocking redundant links."

	e := NewEngine(DefaultEngineConfig())

	if got := e.Generate(content); len(got) != 0 {
		t.Fatalf("expected no cards without a title, got %d", len(got))
	}

	got := e.GenerateWithTitle(content, "Spanning Tree")
	if len(got) != 1 {
		t.Fatalf("expected the title fallback card, got %d", len(got))
	}
	if got[0].Question != "What is Spanning Tree?" {
		t.Errorf("question = %q", got[0].Question)
	}
	if got[0].Strategy != StrategyTitleConcept {
		t.Errorf("strategy = %q", got[0].Strategy)
	}
}
