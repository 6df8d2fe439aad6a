package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/notemill/notemill/internal/store"
)

func registerStatsResource(s *server.MCPServer, st store.Store) {
	resource := mcp.NewResource(
		"notemill://stats",
		"Notemill Statistics",
		mcp.WithResourceDescription("Note and flashcard counts plus the flashcard difficulty distribution."),
		mcp.WithMIMEType("application/json"),
	)

	s.AddResource(resource, func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		dbMu.Lock()
		defer dbMu.Unlock()

		stats, err := st.Stats(ctx)
		if err != nil {
			return nil, fmt.Errorf("reading stats: %w", err)
		}

		payload := map[string]interface{}{
			"notes":         stats.NoteCount,
			"flashcards":    stats.FlashcardCount,
			"by_difficulty": stats.ByDifficulty,
		}
		data, _ := json.MarshalIndent(payload, "", "  ")
		return []mcp.ResourceContents{
			mcp.TextResourceContents{URI: req.Params.URI, MIMEType: "application/json", Text: string(data)},
		}, nil
	})
}

func registerRecentResource(s *server.MCPServer, st store.Store) {
	resource := mcp.NewResource(
		"notemill://notes/recent",
		"Recent Notes",
		mcp.WithResourceDescription("The ten most recently updated notes with reading time."),
		mcp.WithMIMEType("application/json"),
	)

	s.AddResource(resource, func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		dbMu.Lock()
		defer dbMu.Unlock()

		notes, err := st.ListNotes(ctx, store.ListOpts{Limit: 10})
		if err != nil {
			return nil, fmt.Errorf("listing recent notes: %w", err)
		}

		type noteInfo struct {
			ID             int64  `json:"id"`
			Title          string `json:"title"`
			ReadingMinutes int    `json:"reading_minutes"`
			UpdatedAt      string `json:"updated_at"`
		}
		out := make([]noteInfo, 0, len(notes))
		for _, n := range notes {
			out = append(out, noteInfo{
				ID:             n.ID,
				Title:          n.Title,
				ReadingMinutes: n.ReadingMinutes,
				UpdatedAt:      n.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z"),
			})
		}

		payload := map[string]interface{}{
			"notes": out,
			"count": len(out),
		}
		data, _ := json.MarshalIndent(payload, "", "  ")
		return []mcp.ResourceContents{
			mcp.TextResourceContents{URI: req.Params.URI, MIMEType: "application/json", Text: string(data)},
		}, nil
	})
}
