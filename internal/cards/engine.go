package cards

import "strings"

// Strategy names, in documented execution order. The order matters: it
// determines which strategy's candidate survives when two produce the same
// normalized question.
const (
	StrategyExplicitQA     = "explicit_qa"
	StrategyDefinition     = "definition"
	StrategyListQA         = "list_qa"
	StrategyHeadingConcept = "heading_concept"
	StrategyListSummary    = "list_summary"
	StrategyTitleConcept   = "title_concept"
)

// EngineConfig controls the generation guard and output bound.
type EngineConfig struct {
	// MinContentLength is the guard threshold: content that trims to fewer
	// characters produces no flashcards at all. Default: 50.
	MinContentLength int

	// MaxCards caps the aggregated output per note, bounding generation on
	// pathologically repetitive input. 0 means use the default. Default: 20.
	MaxCards int
}

// DefaultEngineConfig returns the recommended settings.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		MinContentLength: 50,
		MaxCards:         20,
	}
}

// Engine runs the ordered strategy list over content and aggregates the
// results. A zero-value Engine is not usable; construct with NewEngine.
type Engine struct {
	strategies []Strategy
	cfg        EngineConfig
}

// NewEngine creates an engine with the default strategy order and the given
// config (zero fields fall back to defaults).
func NewEngine(cfg EngineConfig) *Engine {
	def := DefaultEngineConfig()
	if cfg.MinContentLength <= 0 {
		cfg.MinContentLength = def.MinContentLength
	}
	if cfg.MaxCards <= 0 {
		cfg.MaxCards = def.MaxCards
	}
	return &Engine{
		strategies: defaultStrategies(),
		cfg:        cfg,
	}
}

// defaultStrategies returns the five extraction strategies in their
// documented order.
func defaultStrategies() []Strategy {
	return []Strategy{
		{Name: StrategyExplicitQA, Extract: extractExplicitQA},
		{Name: StrategyDefinition, Extract: extractDefinitions},
		{Name: StrategyListQA, Extract: extractListQA},
		{Name: StrategyHeadingConcept, Extract: extractHeadingConcepts},
		{Name: StrategyListSummary, Extract: extractListSummary},
	}
}

// Strategies returns the engine's strategy names in execution order.
func (e *Engine) Strategies() []string {
	names := make([]string, 0, len(e.strategies))
	for _, s := range e.strategies {
		names = append(names, s.Name)
	}
	return names
}

// Generate runs every strategy over content and returns the aggregated,
// deduplicated, capped candidate list. Content shorter than the guard
// threshold returns nil immediately — short notes never produce flashcards.
func (e *Engine) Generate(content string) []Candidate {
	return e.GenerateWithTitle(content, "")
}

// GenerateWithTitle is Generate plus an optional note title. A non-empty
// title contributes a fallback "What is <title>?" candidate built from the
// opening lines, ordered after all real strategies so it never displaces an
// extracted card on dedup.
func (e *Engine) GenerateWithTitle(content, title string) []Candidate {
	if len(strings.TrimSpace(content)) < e.cfg.MinContentLength {
		return nil
	}

	lists := make([][]Candidate, 0, len(e.strategies)+1)
	for _, s := range e.strategies {
		lists = append(lists, s.Extract(content))
	}

	if title = strings.TrimSpace(title); title != "" {
		lists = append(lists, titleConcept(content, title))
	}

	return Aggregate(lists, e.cfg.MaxCards)
}

// titleConcept builds the title fallback candidate from the note's opening
// non-heading lines.
func titleConcept(content, title string) []Candidate {
	lines := strings.Split(content, "\n")
	start := 0
	for start < len(lines) {
		trimmed := strings.TrimSpace(lines[start])
		if trimmed != "" && !strings.HasPrefix(trimmed, "#") {
			break
		}
		start++
	}

	answer := collectConceptBody(lines, start)
	if answer == "" {
		return nil
	}

	return []Candidate{{
		Question:   "What is " + title + "?",
		Answer:     answer,
		Difficulty: Classify(answer),
		Strategy:   StrategyTitleConcept,
	}}
}
