package llm

import (
	"context"
	"fmt"

	aiplatform "cloud.google.com/go/aiplatform/apiv1"
	"cloud.google.com/go/aiplatform/apiv1/aiplatformpb"
	"google.golang.org/api/option"
)

// VertexClient implements Client using Google Cloud Vertex AI.
type VertexClient struct {
	client    *aiplatform.PredictionClient
	model     string
	maxTokens int32
}

// VertexConfig holds the Vertex AI chat settings.
type VertexConfig struct {
	ProjectID string
	Location  string
	Model     string
	MaxTokens int
}

// NewVertexClient creates a new Vertex AI chat client.
func NewVertexClient(ctx context.Context, cfg VertexConfig) (*VertexClient, error) {
	if cfg.ProjectID == "" {
		return nil, fmt.Errorf("GCP_PROJECT_ID is required for Vertex AI chat")
	}

	clientEndpoint := fmt.Sprintf("%s-aiplatform.googleapis.com:443", cfg.Location)
	client, err := aiplatform.NewPredictionClient(ctx, option.WithEndpoint(clientEndpoint))
	if err != nil {
		return nil, fmt.Errorf("failed to create Vertex AI client: %w", err)
	}

	model := fmt.Sprintf("projects/%s/locations/%s/publishers/google/models/%s",
		cfg.ProjectID, cfg.Location, cfg.Model)

	return &VertexClient{
		client:    client,
		model:     model,
		maxTokens: int32(cfg.MaxTokens),
	}, nil
}

// Close closes the Vertex AI client.
func (c *VertexClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// Complete sends the conversation to the Vertex AI model and returns the
// first candidate's text.
func (c *VertexClient) Complete(ctx context.Context, system string, messages []Message) (string, error) {
	contents := make([]*aiplatformpb.Content, 0, len(messages))
	for _, m := range messages {
		role := "user"
		if m.Role == "assistant" {
			role = "model"
		}
		contents = append(contents, &aiplatformpb.Content{
			Role:  role,
			Parts: []*aiplatformpb.Part{{Data: &aiplatformpb.Part_Text{Text: m.Content}}},
		})
	}

	req := &aiplatformpb.GenerateContentRequest{
		Model:    c.model,
		Contents: contents,
		GenerationConfig: &aiplatformpb.GenerationConfig{
			MaxOutputTokens: &c.maxTokens,
		},
	}
	if system != "" {
		req.SystemInstruction = &aiplatformpb.Content{
			Role:  "system",
			Parts: []*aiplatformpb.Part{{Data: &aiplatformpb.Part_Text{Text: system}}},
		}
	}

	resp, err := c.client.GenerateContent(ctx, req)
	if err != nil {
		return "", fmt.Errorf("vertex AI generation failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty reply from Vertex AI")
	}
	return resp.Candidates[0].Content.Parts[0].GetText(), nil
}
