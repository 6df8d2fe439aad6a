// Package mcp provides a Model Context Protocol server for notemill.
//
// It exposes the content pipeline (import with redaction, flashcard preview,
// redaction preview) as MCP tools, and store statistics plus recent notes as
// MCP resources. Stdio transport only.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/notemill/notemill/internal/pipeline"
	"github.com/notemill/notemill/internal/store"
)

// ServerConfig holds configuration for the MCP server.
type ServerConfig struct {
	Store    store.Store
	Pipeline *pipeline.Pipeline
	Version  string // version string for MCP server info
}

// dbMu serializes all MCP tool calls that touch the database.
// The mcp-go library dispatches handlers concurrently via goroutines.
// SQLite (even with WAL) supports only one writer at a time; a global mutex
// ensures imports complete before reads see their data.
var dbMu sync.Mutex

// NewServer creates a configured MCP server with all notemill tools and
// resources.
func NewServer(cfg ServerConfig) *server.MCPServer {
	ver := cfg.Version
	if ver == "" {
		ver = "dev"
	}

	p := cfg.Pipeline
	if p == nil {
		p = pipeline.New(pipeline.DefaultConfig())
	}

	s := server.NewMCPServer(
		"notemill",
		ver,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(true, false),
	)

	registerImportTool(s, cfg.Store, p)
	registerGenerateTool(s, p)
	registerRedactTool(s, p)

	registerStatsResource(s, cfg.Store)
	registerRecentResource(s, cfg.Store)

	return s
}

// --- Tools ---

func registerImportTool(s *server.MCPServer, st store.Store, p *pipeline.Pipeline) {
	tool := mcp.NewTool("note_import",
		mcp.WithDescription("Import a note into notemill. Content is redacted (emails, IPs, domains, credentials, ticket IDs) before storage, reading time is estimated, and flashcards are generated and persisted. Duplicate imports are detected by content hash."),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("The raw note text to import"),
		),
		mcp.WithString("title",
			mcp.Description("Note title. Also seeds a fallback flashcard when the content yields none."),
		),
	)

	s.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dbMu.Lock()
		defer dbMu.Unlock()

		content, err := req.RequireString("content")
		if err != nil {
			return mcp.NewToolResultError("content is required"), nil
		}
		if strings.TrimSpace(content) == "" {
			return mcp.NewToolResultError("note content cannot be empty"), nil
		}

		// Strip null bytes before they reach SQLite.
		content = strings.ReplaceAll(content, "\x00", "")

		title := ""
		if v, err := req.RequireString("title"); err == nil {
			title = strings.TrimSpace(v)
		}

		res := p.Process(content, title)

		hash := store.HashNoteContent(title, res.Redacted)
		if existing, err := st.FindNoteByHash(ctx, hash); err == nil {
			out := map[string]interface{}{
				"duplicate": true,
				"note_id":   existing.ID,
				"message":   fmt.Sprintf("Identical note already imported as #%d", existing.ID),
			}
			data, _ := json.MarshalIndent(out, "", "  ")
			return mcp.NewToolResultText(string(data)), nil
		} else if !errors.Is(err, store.ErrNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("checking for duplicate: %v", err)), nil
		}

		note := &store.Note{
			Title:          title,
			Content:        res.Redacted,
			ReadingMinutes: res.ReadingMinutes,
			ContentHash:    hash,
		}
		id, err := st.AddNote(ctx, note)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("import error: %v", err)), nil
		}

		cards := make([]*store.Flashcard, 0, len(res.Cards))
		for _, c := range res.Cards {
			cards = append(cards, &store.Flashcard{
				Question:   c.Question,
				Answer:     c.Answer,
				Difficulty: c.Difficulty.String(),
			})
		}
		if err := st.ReplaceFlashcards(ctx, id, cards); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("storing flashcards: %v", err)), nil
		}

		out := map[string]interface{}{
			"note_id":         id,
			"reading_minutes": res.ReadingMinutes,
			"flashcards":      len(cards),
			"message":         fmt.Sprintf("Imported note #%d with %d flashcard(s)", id, len(cards)),
		}
		data, _ := json.MarshalIndent(out, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	})
}

func registerGenerateTool(s *server.MCPServer, p *pipeline.Pipeline) {
	tool := mcp.NewTool("flashcards_generate",
		mcp.WithDescription("Generate flashcards from note content without storing anything. Content is redacted first. Returns each candidate with the strategy that produced it."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("The note text to extract flashcards from"),
		),
		mcp.WithString("title",
			mcp.Description("Optional note title used for the fallback card"),
		),
	)

	s.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		content, err := req.RequireString("content")
		if err != nil {
			return mcp.NewToolResultError("content is required"), nil
		}

		title := ""
		if v, err := req.RequireString("title"); err == nil {
			title = strings.TrimSpace(v)
		}

		_, candidates := p.Candidates(content, title)

		type cardOut struct {
			Question   string `json:"question"`
			Answer     string `json:"answer"`
			Difficulty string `json:"difficulty"`
			Strategy   string `json:"strategy"`
		}
		cards := make([]cardOut, 0, len(candidates))
		for _, c := range candidates {
			cards = append(cards, cardOut{
				Question:   c.Question,
				Answer:     c.Answer,
				Difficulty: c.Difficulty.String(),
				Strategy:   c.Strategy,
			})
		}

		out := map[string]interface{}{
			"flashcards": cards,
			"count":      len(cards),
		}
		data, _ := json.MarshalIndent(out, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	})
}

func registerRedactTool(s *server.MCPServer, p *pipeline.Pipeline) {
	tool := mcp.NewTool("redact_preview",
		mcp.WithDescription("Preview redaction: returns the content with emails, IP addresses, domains, credential assignments, and ticket IDs replaced by sentinel tokens, plus the estimated reading time. Nothing is stored."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("The text to redact"),
		),
	)

	s.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		content, err := req.RequireString("content")
		if err != nil {
			return mcp.NewToolResultError("content is required"), nil
		}

		res := p.Process(content, "")

		out := map[string]interface{}{
			"redacted":        res.Redacted,
			"reading_minutes": res.ReadingMinutes,
		}
		data, _ := json.MarshalIndent(out, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	})
}
