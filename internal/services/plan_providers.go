package services

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/api/option"
)

func plannerPrompt(location string, duration string, mood string, people int) string {
	return fmt.Sprintf(`
You are planning a short, spontaneous trip. Write a markdown itinerary with
a "## <Mood> Trip to <location>" heading and one "### Day N" section per
day, each with Morning/Afternoon/Evening bullet points.

Destination: %s
Duration: %s
Mood: %s
Group size: %d people

Keep it concrete and realistic for the destination. Markdown only, no
preamble.
`, location, duration, mood, people)
}

// GeminiProvider generates itineraries with Google's Gemini models.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

func NewGeminiProvider(apiKey string, model string) (*GeminiProvider, error) {
	if model == "" {
		model = "gemini-1.5-flash" // free tier model
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{
		client: client,
		model:  model,
	}, nil
}

func (p *GeminiProvider) Generate(ctx context.Context, location string, duration string, mood string, people int) (string, error) {
	m := p.client.GenerativeModel(p.model)
	m.SetTemperature(0.4)

	resp, err := m.GenerateContent(ctx, genai.Text(plannerPrompt(location, duration, mood, people)))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: no content")
	}
	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}

// OpenAIProvider generates itineraries with OpenAI chat models.
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

func NewOpenAIProvider(apiKey string, model string) *OpenAIProvider {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIProvider{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (p *OpenAIProvider) Generate(ctx context.Context, location string, duration string, mood string, people int) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: plannerPrompt(location, duration, mood, people),
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: no content")
	}
	return resp.Choices[0].Message.Content, nil
}
