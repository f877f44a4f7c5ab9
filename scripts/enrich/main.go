// enrich.go
//
// This script fills in missing commentary summaries offline. For every verse
// commentary that has category items but no summary, it asks the configured
// chat provider to condense the items into one or two German sentences and
// writes the updated database JSON.
//
// Environment variables:
//   STUDY_DATA_PATH   - Path to the study database JSON (default: data/study_bible_database.json)
//   CHAT_PROVIDER     - "anthropic" or "vertex" (default: anthropic)
//   ANTHROPIC_API_KEY - Required for the anthropic provider
//   GCP_PROJECT_ID    - Required for the vertex provider
//
// Usage:
//   go run scripts/enrich/main.go [-dry-run] [-out enriched.json]

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"github.com/video-study-bible-api/internal/config"
	"github.com/video-study-bible-api/internal/models"
	"github.com/video-study-bible-api/pkg/llm"
)

const summaryPrompt = "Du fasst Video-Lehrinhalte zu einem Bibelvers zusammen. " +
	"Antworte mit ein bis zwei deutschen Sätzen, ohne Einleitung und ohne Aufzählung. " +
	"Verwende nur die gegebenen Inhalte."

func main() {
	dryRun := flag.Bool("dry-run", false, "List verses needing a summary without calling the provider")
	out := flag.String("out", "", "Output path (default: overwrite the input)")
	flag.Parse()

	godotenv.Load()
	cfg := config.GetConfig()

	path := os.Getenv("STUDY_DATA_PATH")
	if path == "" {
		path = cfg.StudyDataPath
	}
	if *out == "" {
		*out = path
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read study database: %v", err)
	}
	var db models.StudyDatabase
	if err := json.Unmarshal(raw, &db); err != nil {
		log.Fatalf("Failed to parse study database: %v", err)
	}

	var pending []string
	for ref, c := range db.VerseCommentaries {
		if c.Summary == "" && len(c.Categories) > 0 {
			pending = append(pending, ref)
		}
	}
	sort.Strings(pending)
	log.Printf("%d of %d commentaries need a summary", len(pending), len(db.VerseCommentaries))

	if *dryRun {
		for _, ref := range pending {
			fmt.Println(ref)
		}
		return
	}
	if len(pending) == 0 {
		return
	}

	ctx := context.Background()
	var client llm.Client
	switch cfg.ChatProvider {
	case "vertex":
		vertexClient, err := llm.NewVertexClient(ctx, llm.VertexConfig{
			ProjectID: cfg.GCPProjectID,
			Location:  cfg.GCPLocation,
			Model:     cfg.VertexChatModel,
			MaxTokens: cfg.ChatMaxTokens,
		})
		if err != nil {
			log.Fatalf("Failed to create Vertex AI client: %v", err)
		}
		defer vertexClient.Close()
		client = vertexClient
	default:
		if cfg.AnthropicAPIKey == "" {
			log.Fatal("ANTHROPIC_API_KEY is required")
		}
		client = llm.NewAnthropicClient(cfg.AnthropicBaseURL, cfg.AnthropicAPIKey, cfg.AnthropicModel, cfg.ChatMaxTokens)
	}

	enriched := 0
	for _, ref := range pending {
		c := db.VerseCommentaries[ref]
		summary, err := summarize(ctx, client, ref, c)
		if err != nil {
			log.Printf("Skipping %s: %v", ref, err)
			continue
		}
		c.Summary = summary
		db.VerseCommentaries[ref] = c
		enriched++
		log.Printf("Summarized %s", ref)
	}

	updated, err := json.MarshalIndent(db, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode database: %v", err)
	}
	if err := os.WriteFile(*out, updated, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", *out, err)
	}
	log.Printf("Wrote %s with %d new summaries", *out, enriched)
}

func summarize(ctx context.Context, client llm.Client, ref string, c models.VerseCommentary) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Vers: %s\n\nLehrinhalte:\n", ref)
	for cat, items := range c.Categories {
		for _, item := range items {
			fmt.Fprintf(&b, "[%s] %s: %s\n", strings.ToUpper(string(cat)), item.Source, item.Text)
		}
	}

	reply, err := client.Complete(ctx, summaryPrompt, []llm.Message{
		{Role: "user", Content: b.String()},
	})
	if err != nil {
		return "", err
	}
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return "", fmt.Errorf("empty summary")
	}
	return reply, nil
}
