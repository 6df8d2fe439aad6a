// Command notemill imports notes, redacts sensitive content, and generates
// flashcards from them.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/server"
	"github.com/notemill/notemill/internal/config"
	"github.com/notemill/notemill/internal/mcp"
	"github.com/notemill/notemill/internal/pipeline"
	"github.com/notemill/notemill/internal/store"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(0)
	}

	var err error
	switch os.Args[1] {
	case "import":
		err = runImport(os.Args[2:])
	case "generate":
		err = runGenerate(os.Args[2:])
	case "redact":
		err = runRedact(os.Args[2:])
	case "list":
		err = runList(os.Args[2:])
	case "delete":
		err = runDelete(os.Args[2:])
	case "stats":
		err = runStats(os.Args[2:])
	case "config":
		err = runConfig(os.Args[2:])
	case "serve":
		err = runServe(os.Args[2:])
	case "version", "--version", "-v":
		fmt.Printf("notemill %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`notemill — note importer with auto-redaction and flashcard generation

Usage:
  notemill import <file> [--title <t>] [--db <path>] [--max-cards <n>]
  notemill generate <note-id|file> [--db <path>] [--max-cards <n>]
  notemill redact <file|->
  notemill list [--db <path>]
  notemill delete <note-id> [--db <path>]
  notemill stats [--db <path>]
  notemill config [--config <path>]
  notemill serve [--db <path>]
  notemill version

Imported content is redacted before it is stored: emails, IP addresses,
domains, credential assignments, and ticket IDs are replaced with sentinel
tokens. Flashcards are generated from the redacted text only.
`)
}

// cliFlags holds the flags shared across commands.
type cliFlags struct {
	configPath string
	dbPath     string
	maxCards   int
	title      string
	positional []string
}

func parseFlags(args []string) (cliFlags, error) {
	var f cliFlags
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--config":
			if i+1 >= len(args) {
				return f, fmt.Errorf("--config requires a value")
			}
			i++
			f.configPath = args[i]
		case arg == "--db":
			if i+1 >= len(args) {
				return f, fmt.Errorf("--db requires a value")
			}
			i++
			f.dbPath = args[i]
		case arg == "--title":
			if i+1 >= len(args) {
				return f, fmt.Errorf("--title requires a value")
			}
			i++
			f.title = args[i]
		case arg == "--max-cards":
			if i+1 >= len(args) {
				return f, fmt.Errorf("--max-cards requires a value")
			}
			i++
			n, err := strconv.Atoi(args[i])
			if err != nil || n < 0 {
				return f, fmt.Errorf("invalid --max-cards value: %s", args[i])
			}
			f.maxCards = n
		case strings.HasPrefix(arg, "-") && arg != "-":
			return f, fmt.Errorf("unknown flag: %s", arg)
		default:
			f.positional = append(f.positional, arg)
		}
	}
	return f, nil
}

func resolve(f cliFlags) (config.ResolvedConfig, error) {
	return config.ResolveConfig(config.ResolveOptions{
		ConfigPath:  f.configPath,
		CLIDBPath:   f.dbPath,
		CLIMaxCards: f.maxCards,
	})
}

func openStore(cfg config.ResolvedConfig) (store.Store, error) {
	return store.NewStore(store.StoreConfig{DBPath: cfg.DBPath.Value})
}

func newPipeline(cfg config.ResolvedConfig) *pipeline.Pipeline {
	return pipeline.New(pipeline.Config{
		MinContentLength: cfg.MinContent(),
		MaxCards:         cfg.MaxCards(),
	})
}

func readInput(path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(b), nil
}

// titleFromPath derives a title from a filename: "vpn-basics.md" → "vpn-basics".
func titleFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func runImport(args []string) error {
	f, err := parseFlags(args)
	if err != nil {
		return err
	}
	if len(f.positional) != 1 {
		return fmt.Errorf("usage: notemill import <file> [--title <t>]")
	}
	path := f.positional[0]

	cfg, err := resolve(f)
	if err != nil {
		return err
	}

	content, err := readInput(path)
	if err != nil {
		return err
	}

	title := f.title
	if title == "" && path != "-" {
		title = titleFromPath(path)
	}

	s, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer s.Close()

	p := newPipeline(cfg)
	res := p.Process(content, title)
	ctx := context.Background()

	hash := store.HashNoteContent(title, res.Redacted)
	if existing, err := s.FindNoteByHash(ctx, hash); err == nil {
		fmt.Printf("Already imported as note #%d — skipping\n", existing.ID)
		return nil
	} else if !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("checking for duplicate: %w", err)
	}

	note := &store.Note{
		Title:          title,
		Content:        res.Redacted,
		ReadingMinutes: res.ReadingMinutes,
		ContentHash:    hash,
	}
	id, err := s.AddNote(ctx, note)
	if err != nil {
		return fmt.Errorf("storing note: %w", err)
	}

	cards := make([]*store.Flashcard, 0, len(res.Cards))
	for _, c := range res.Cards {
		cards = append(cards, &store.Flashcard{
			Question:   c.Question,
			Answer:     c.Answer,
			Difficulty: c.Difficulty.String(),
		})
	}
	if err := s.ReplaceFlashcards(ctx, id, cards); err != nil {
		return fmt.Errorf("storing flashcards: %w", err)
	}

	fmt.Printf("Imported note #%d (%d min read, %d flashcard(s))\n",
		id, res.ReadingMinutes, len(cards))
	return nil
}

func runGenerate(args []string) error {
	f, err := parseFlags(args)
	if err != nil {
		return err
	}
	if len(f.positional) != 1 {
		return fmt.Errorf("usage: notemill generate <note-id|file>")
	}
	target := f.positional[0]

	cfg, err := resolve(f)
	if err != nil {
		return err
	}
	p := newPipeline(cfg)

	// A numeric target regenerates a stored note's cards; anything else is a
	// file preview that persists nothing.
	if id, convErr := strconv.ParseInt(target, 10, 64); convErr == nil {
		return regenerateNote(cfg, p, id)
	}

	content, err := readInput(target)
	if err != nil {
		return err
	}

	title := ""
	if target != "-" {
		title = titleFromPath(target)
	}

	_, candidates := p.Candidates(content, title)
	if len(candidates) == 0 {
		fmt.Println("No flashcards generated")
		return nil
	}
	for i, c := range candidates {
		fmt.Printf("%d. [%s/%s] %s\n   %s\n", i+1, c.Strategy, c.Difficulty, c.Question, c.Answer)
	}
	return nil
}

func regenerateNote(cfg config.ResolvedConfig, p *pipeline.Pipeline, id int64) error {
	s, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer s.Close()

	ctx := context.Background()
	note, err := s.GetNote(ctx, id)
	if err != nil {
		return fmt.Errorf("loading note %d: %w", id, err)
	}

	// Stored content is already redacted; reprocessing is harmless because
	// redaction is idempotent.
	res := p.Process(note.Content, note.Title)

	cards := make([]*store.Flashcard, 0, len(res.Cards))
	for _, c := range res.Cards {
		cards = append(cards, &store.Flashcard{
			Question:   c.Question,
			Answer:     c.Answer,
			Difficulty: c.Difficulty.String(),
		})
	}
	if err := s.ReplaceFlashcards(ctx, id, cards); err != nil {
		return fmt.Errorf("storing flashcards: %w", err)
	}

	fmt.Printf("Regenerated %d flashcard(s) for note #%d\n", len(cards), id)
	return nil
}

func runRedact(args []string) error {
	f, err := parseFlags(args)
	if err != nil {
		return err
	}
	if len(f.positional) != 1 {
		return fmt.Errorf("usage: notemill redact <file|->")
	}

	content, err := readInput(f.positional[0])
	if err != nil {
		return err
	}

	p := pipeline.New(pipeline.DefaultConfig())
	res := p.Process(content, "")
	fmt.Print(res.Redacted)
	if !strings.HasSuffix(res.Redacted, "\n") {
		fmt.Println()
	}
	return nil
}

func runList(args []string) error {
	f, err := parseFlags(args)
	if err != nil {
		return err
	}
	cfg, err := resolve(f)
	if err != nil {
		return err
	}

	s, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer s.Close()

	notes, err := s.ListNotes(context.Background(), store.ListOpts{Limit: 50})
	if err != nil {
		return fmt.Errorf("listing notes: %w", err)
	}
	if len(notes) == 0 {
		fmt.Println("No notes yet")
		return nil
	}

	for _, n := range notes {
		title := n.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Printf("#%-4d %-40s %d min  %s\n",
			n.ID, title, n.ReadingMinutes, n.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func runDelete(args []string) error {
	f, err := parseFlags(args)
	if err != nil {
		return err
	}
	if len(f.positional) != 1 {
		return fmt.Errorf("usage: notemill delete <note-id>")
	}
	id, err := strconv.ParseInt(f.positional[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid note id: %s", f.positional[0])
	}

	cfg, err := resolve(f)
	if err != nil {
		return err
	}
	s, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer s.Close()

	if err := s.DeleteNote(context.Background(), id); err != nil {
		return err
	}
	fmt.Printf("Deleted note #%d\n", id)
	return nil
}

func runStats(args []string) error {
	f, err := parseFlags(args)
	if err != nil {
		return err
	}
	cfg, err := resolve(f)
	if err != nil {
		return err
	}

	s, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer s.Close()

	st, err := s.Stats(context.Background())
	if err != nil {
		return fmt.Errorf("reading stats: %w", err)
	}

	fmt.Printf("Notes:      %d\n", st.NoteCount)
	fmt.Printf("Flashcards: %d\n", st.FlashcardCount)
	for _, d := range []string{"easy", "medium", "hard"} {
		if n, ok := st.ByDifficulty[d]; ok {
			fmt.Printf("  %-8s %d\n", d, n)
		}
	}
	return nil
}

func runConfig(args []string) error {
	f, err := parseFlags(args)
	if err != nil {
		return err
	}
	cfg, err := resolve(f)
	if err != nil {
		return err
	}

	fmt.Printf("config file:     %s\n", cfg.ConfigPath)
	printResolved("db path", cfg.DBPath)
	printResolved("max cards/note", cfg.MaxCardsPerNote)
	printResolved("min content len", cfg.MinContentLength)
	return nil
}

func printResolved(name string, rv config.ResolvedValue) {
	fmt.Printf("%-16s %s  (%s", name+":", rv.Value, rv.Source)
	if rv.From != "" {
		fmt.Printf(": %s", rv.From)
	}
	fmt.Println(")")
}

func runServe(args []string) error {
	f, err := parseFlags(args)
	if err != nil {
		return err
	}
	cfg, err := resolve(f)
	if err != nil {
		return err
	}

	s, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer s.Close()

	srv := mcp.NewServer(mcp.ServerConfig{
		Store:    s,
		Pipeline: newPipeline(cfg),
		Version:  version,
	})

	fmt.Fprintln(os.Stderr, "notemill MCP server listening on stdio")
	return server.ServeStdio(srv)
}
