package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/video-study-bible-api/internal/models"
	"github.com/video-study-bible-api/internal/repository/studyjson"
	"github.com/video-study-bible-api/internal/store"
	"github.com/video-study-bible-api/pkg/llm"
)

type fakeLLM struct {
	system   string
	messages []llm.Message
	reply    string
	err      error
}

func (f *fakeLLM) Complete(_ context.Context, system string, messages []llm.Message) (string, error) {
	f.system = system
	f.messages = messages
	return f.reply, f.err
}

const longContext = "Im Anfang schuf Gott Himmel und Erde, und der Geist Gottes schwebte auf dem Wasser."

func chatStore() *store.Store {
	return store.New(models.StudyDatabase{
		Verses: models.VerseIndex{
			Genesis1: map[string][]models.Video{
				"Genesis 1:1": {
					{
						VideoID: "vid-1",
						Title:   "Schoepfung_1234567.mp4",
						Speaker: "Roger Liebi",
						Mentions: []models.Mention{
							{Timestamp: "1:15", Type: "ai_parsed", Category: models.CategoryTheologisch, Context: longContext},
							{Timestamp: "2:00", Type: "ai_parsed", Context: "zu kurz"},
							{Timestamp: "3:00", Type: "manual", Context: longContext},
						},
					},
					{
						VideoID:      "vid-2",
						Title:        "Vortrag.mp4",
						Organization: "Bibelbund",
						Mentions: []models.Mention{
							{Timestamp: "4:00", Type: "ai_parsed", Context: longContext},
						},
					},
				},
			},
		},
		VerseCommentaries: map[string]models.VerseCommentary{
			"Genesis 1:1": {
				Categories: map[models.Category][]models.CommentaryItem{
					models.CategoryTheologisch: {
						{Text: "Gott ist der Urheber", Source: "Roger Liebi"},
						{Text: "Schöpfung aus dem Nichts", Source: "Werner Gitt"},
					},
				},
			},
		},
	})
}

func TestBuildContextUnfiltered(t *testing.T) {
	svc := NewChatService(studyjson.NewContentRepository(chatStore()), &fakeLLM{})

	ctx := svc.BuildContext("")
	lines := strings.Split(ctx, "\n")
	// two commentary items plus two qualifying ai_parsed mentions
	require.Len(t, lines, 4)
	assert.Equal(t, "[Genesis 1:1][THEOLOGISCH] (Roger Liebi): Gott ist der Urheber", lines[0])
	assert.Equal(t, "[Genesis 1:1][THEOLOGISCH] (Werner Gitt): Schöpfung aus dem Nichts", lines[1])
	assert.Contains(t, lines[2], "[Genesis 1:1][THEOLOGISCH] (Schoepfung, Roger Liebi, 1:15):")
	assert.Contains(t, lines[3], "(Vortrag, Bibelbund, 4:00):")
}

func TestBuildContextDropsShortAndManualMentions(t *testing.T) {
	svc := NewChatService(studyjson.NewContentRepository(chatStore()), &fakeLLM{})
	ctx := svc.BuildContext("")
	assert.NotContains(t, ctx, "zu kurz")
	assert.NotContains(t, ctx, "3:00")
}

func TestBuildContextSpeakerFilter(t *testing.T) {
	svc := NewChatService(studyjson.NewContentRepository(chatStore()), &fakeLLM{})

	ctx := svc.BuildContext("liebi")
	assert.Contains(t, ctx, "Gott ist der Urheber")
	assert.Contains(t, ctx, "1:15")
	assert.NotContains(t, ctx, "Werner Gitt")
	assert.NotContains(t, ctx, "Bibelbund")

	// organization stands in for a missing speaker
	ctx = svc.BuildContext("Bibelbund")
	assert.Contains(t, ctx, "Vortrag")
	assert.NotContains(t, ctx, "Roger Liebi")
}

func TestAskForwardsSystemPromptAndMessages(t *testing.T) {
	client := &fakeLLM{reply: "Die Antwort."}
	svc := NewChatService(studyjson.NewContentRepository(chatStore()), client)

	reply, err := svc.Ask(context.Background(), models.ChatRequest{
		Verse:   "Genesis 1:1",
		Speaker: "Roger Liebi",
		Messages: []models.ChatMessage{
			{Role: "user", Content: "Was bedeutet bara?"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Die Antwort.", reply)

	assert.Contains(t, client.system, "Bibel-Studienassistent")
	assert.Contains(t, client.system, "Aktuell betrachteter Vers: Genesis 1:1.")
	assert.Contains(t, client.system, "Fokus auf die Lehren von: Roger Liebi.")
	assert.Contains(t, client.system, "LEHRINHALT (Genesis 1, alle Verse):")
	require.Len(t, client.messages, 1)
	assert.Equal(t, "user", client.messages[0].Role)
}

func TestAskNoContext(t *testing.T) {
	svc := NewChatService(studyjson.NewContentRepository(store.Empty()), &fakeLLM{})

	_, err := svc.Ask(context.Background(), models.ChatRequest{
		Messages: []models.ChatMessage{{Role: "user", Content: "Hallo"}},
	})
	assert.ErrorIs(t, err, ErrNoContext)
}

func TestSpeakers(t *testing.T) {
	svc := NewChatService(studyjson.NewContentRepository(chatStore()), &fakeLLM{})

	speakers := svc.Speakers()
	// vid-2 has no speaker, only an organization, so one distinct speaker remains
	require.Len(t, speakers, 1)
	assert.Equal(t, "Roger Liebi", speakers[0].Name)
}
