// validate.go
//
// This script audits the study database JSON for structural problems before
// deployment: unparseable verse keys, cross-references pointing at unknown
// verses, commentary entries whose source videos are missing from the video
// list, and topic entries referencing unknown video ids.
//
// Environment variables:
//   STUDY_DATA_PATH - Path to the study database JSON (default: data/study_bible_database.json)
//
// Usage:
//   go run scripts/validate/main.go [-strict]
//
// With -strict the script exits non-zero on warnings too, for CI use.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/video-study-bible-api/internal/store"
	"github.com/video-study-bible-api/internal/verseref"
)

func main() {
	strict := flag.Bool("strict", false, "Exit non-zero on warnings")
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

	verses, videos, commentaries := s.Stats()
	log.Printf("Loaded %s", path)
	log.Printf("  Verses (full corpus):  %d", verses)
	log.Printf("  Chapter verses:        %d", len(s.ChapterVerses()))
	log.Printf("  Videos:                %d", videos)
	log.Printf("  Commentaries:          %d", commentaries)
	log.Printf("  Topics:                %d", len(s.Topics()))

	warnings := 0
	warn := func(format string, args ...any) {
		warnings++
		log.Printf("WARNING: "+format, args...)
	}

	knownVideos := map[string]bool{}
	for _, v := range s.Videos() {
		if v.VideoID == "" {
			warn("video with empty id (title %q)", v.Title)
			continue
		}
		knownVideos[v.VideoID] = true
	}

	for ref := range s.ChapterVerses() {
		if verseref.VerseNumber(ref) == 0 {
			warn("chapter verse key %q has no verse number", ref)
		}
	}

	for ref, c := range s.Commentaries() {
		for _, id := range c.SourceVideos {
			if !knownVideos[id] {
				warn("commentary %q references unknown video %q", ref, id)
			}
		}
		for _, target := range c.CrossReferences {
			if verseref.VerseNumber(target) == 0 {
				warn("commentary %q cross-reference %q is not a verse reference", ref, target)
			}
		}
	}

	// Targets without corpus videos are fine (they render unclickable), but
	// every target must at least parse as a verse reference.
	all := s.AllVerses()
	crossRefTargets, coveredTargets := 0, 0
	for ref, targets := range s.CrossReferences() {
		for _, target := range targets {
			crossRefTargets++
			if verseref.VerseNumber(target) == 0 {
				warn("cross-reference %q -> %q is not a verse reference", ref, target)
				continue
			}
			if _, ok := all[verseref.Translate(target)]; ok {
				coveredTargets++
			} else if _, ok := all[target]; ok {
				coveredTargets++
			}
		}
	}
	log.Printf("  Cross-ref targets:     %d (%d with videos)", crossRefTargets, coveredTargets)

	for topic, topicVideos := range s.Topics() {
		for _, tv := range topicVideos {
			if !knownVideos[tv.VideoID] {
				warn("topic %q references unknown video %q", topic, tv.VideoID)
			}
		}
	}

	if warnings == 0 {
		fmt.Println("OK: no structural problems found")
		return
	}
	log.Printf("%d warning(s)", warnings)
	if *strict {
		os.Exit(1)
	}
}
