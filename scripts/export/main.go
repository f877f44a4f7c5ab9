// export.go
//
// This script exports a flat per-verse summary of the study database as
// JSONL, one line per verse, for spreadsheet analysis or diffing between
// database builds.
//
// Environment variables:
//   STUDY_DATA_PATH - Path to the study database JSON (default: data/study_bible_database.json)
//
// Usage:
//   go run scripts/export/main.go -out corpus_summary.jsonl

package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"sort"

	"github.com/joho/godotenv"
	"github.com/video-study-bible-api/internal/store"
	"github.com/video-study-bible-api/internal/verseref"
)

type verseSummary struct {
	Ref             string `json:"ref"`
	VideoCount      int    `json:"video_count"`
	MentionCount    int    `json:"mention_count"`
	ClipCount       int    `json:"clip_count"`
	HasCommentary   bool   `json:"has_commentary"`
	CommentarySrcs  int    `json:"commentary_sources,omitempty"`
	CrossReferences int    `json:"cross_references,omitempty"`
}

func main() {
	out := flag.String("out", "corpus_summary.jsonl", "Output JSONL path")
	flag.Parse()

	godotenv.Load()

	path := os.Getenv("STUDY_DATA_PATH")
	if path == "" {
		path = "data/study_bible_database.json"
	}

	s, err := store.Open(path)
	if err != nil {
		log.Fatalf("Failed to load study database: %v", err)
	}

	chapter := s.ChapterVerses()
	refs := make([]string, 0, len(chapter))
	for ref := range chapter {
		refs = append(refs, ref)
	}
	sort.Slice(refs, func(i, j int) bool {
		return verseref.VerseNumber(refs[i]) < verseref.VerseNumber(refs[j])
	})

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("Failed to create output file: %v", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	commentaries := s.Commentaries()
	for _, ref := range refs {
		summary := verseSummary{Ref: ref, VideoCount: len(chapter[ref])}
		for _, video := range chapter[ref] {
			summary.MentionCount += len(video.Mentions)
			for _, m := range video.Mentions {
				if m.ClipStartMS != nil {
					summary.ClipCount++
				}
			}
		}
		if c, ok := commentaries[ref]; ok {
			summary.HasCommentary = true
			summary.CommentarySrcs = c.SourceCount
			summary.CrossReferences = len(c.CrossReferences)
		}
		if err := enc.Encode(summary); err != nil {
			log.Fatalf("Failed to write summary line: %v", err)
		}
	}

	log.Printf("Exported %d verse summaries to %s", len(refs), *out)
}
