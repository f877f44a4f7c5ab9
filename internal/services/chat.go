package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/video-study-bible-api/internal/models"
	"github.com/video-study-bible-api/internal/repository"
	"github.com/video-study-bible-api/pkg/llm"
)

// minContextLen is the minimum mention-context length worth feeding into the
// chat context; shorter fragments are usually reading phrases, not teaching.
const minContextLen = 60

// ChatService answers questions about the chapter using only the indexed
// video teaching content: it concatenates the matching commentary items and
// mention contexts into the system prompt and forwards the conversation to
// the LLM provider.
type ChatService struct {
	content repository.ContentRepository
	client  llm.Client
}

// NewChatService creates a new chat service.
func NewChatService(content repository.ContentRepository, client llm.Client) *ChatService {
	return &ChatService{content: content, client: client}
}

// BuildContext assembles the teaching corpus lines: every commentary item of
// every verse, then every ai_parsed mention with substantial context. When
// speakerFilter is set, only lines attributable to that speaker survive.
// Map iteration is sorted so the prompt is deterministic between requests.
func (s *ChatService) BuildContext(speakerFilter string) string {
	filter := strings.ToLower(speakerFilter)
	var lines []string

	commentaries := s.content.Commentaries()
	for _, verseRef := range sortedKeys(commentaries) {
		c := commentaries[verseRef]
		for _, cat := range sortedCategoryKeys(c.Categories) {
			for _, item := range c.Categories[cat] {
				if filter != "" && !strings.Contains(strings.ToLower(item.Source), filter) {
					continue
				}
				lines = append(lines, fmt.Sprintf("[%s][%s] (%s): %s",
					verseRef, strings.ToUpper(string(cat)), item.Source, item.Text))
			}
		}
	}

	chapter := s.content.ChapterVerses()
	for _, verseRef := range sortedKeys(chapter) {
		for _, video := range chapter[verseRef] {
			speaker := video.Speaker
			if speaker == "" {
				speaker = video.Organization
			}
			if filter != "" && !strings.Contains(strings.ToLower(speaker), filter) {
				continue
			}
			title := video.DisplayTitle
			if title == "" {
				title = CleanTitle(video.Title)
			}
			for _, m := range video.Mentions {
				if m.Type != "ai_parsed" || len(m.Context) <= minContextLen {
					continue
				}
				cat := ""
				if m.Category != "" {
					cat = "[" + strings.ToUpper(string(m.Category)) + "]"
				}
				attribution := title
				if speaker != "" {
					attribution += ", " + speaker
				}
				lines = append(lines, fmt.Sprintf("[%s]%s (%s, %s): %s",
					verseRef, cat, attribution, m.Timestamp, m.Context))
			}
		}
	}

	return strings.Join(lines, "\n")
}

// SystemPrompt builds the German study-assistant instruction with the
// teaching corpus attached.
func (s *ChatService) SystemPrompt(verse, speakerFilter, context string) string {
	var b strings.Builder
	b.WriteString("Du bist ein Bibel-Studienassistent für die Video-Studienbibel.\n")
	b.WriteString("Du beantwortest Fragen auf Basis von Video-Lehrinhalten zu Genesis 1.\n")
	fmt.Fprintf(&b, "Aktuell betrachteter Vers: %s.\n", verse)
	if speakerFilter != "" {
		fmt.Fprintf(&b, "Fokus auf die Lehren von: %s.\n", speakerFilter)
	}
	b.WriteString("Verwende KEIN eigenes theologisches Wissen. Wenn die Antwort nicht im Lehrinhalt steht, sage das klar.\n")
	b.WriteString("Nenne bei Aussagen immer Sprecher und Vers als Quelle (in Klammern).\n")
	b.WriteString("Antworte auf Deutsch.\n\n")
	fmt.Fprintf(&b, "LEHRINHALT (Genesis 1, alle Verse):\n%s", context)
	return b.String()
}

// ErrNoContext signals that the corpus has no teaching content matching the
// request; the handler renders a localized fallback message instead of
// calling the LLM.
var ErrNoContext = fmt.Errorf("no teaching content available")

// Ask builds the context and forwards the conversation to the LLM. The whole
// reply comes back as a single message.
func (s *ChatService) Ask(ctx context.Context, req models.ChatRequest) (string, error) {
	context := s.BuildContext(req.Speaker)
	if context == "" {
		return "", ErrNoContext
	}

	messages := make([]llm.Message, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, llm.Message{Role: m.Role, Content: m.Content})
	}

	return s.client.Complete(ctx, s.SystemPrompt(req.Verse, req.Speaker, context), messages)
}

// Speakers collects the distinct speakers of the chapter corpus with their
// avatars, sorted by name.
func (s *ChatService) Speakers() []models.Speaker {
	avatars := map[string]string{}
	for _, videos := range s.content.ChapterVerses() {
		for _, v := range videos {
			if v.Speaker == "" {
				continue
			}
			if _, ok := avatars[v.Speaker]; !ok {
				avatars[v.Speaker] = v.SpeakerAvatar
			}
		}
	}
	speakers := make([]models.Speaker, 0, len(avatars))
	for name, avatar := range avatars {
		speakers = append(speakers, models.Speaker{Name: name, Avatar: avatar})
	}
	sort.Slice(speakers, func(i, j int) bool { return speakers[i].Name < speakers[j].Name })
	return speakers
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedCategoryKeys(m map[models.Category][]models.CommentaryItem) []models.Category {
	keys := make([]models.Category, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
