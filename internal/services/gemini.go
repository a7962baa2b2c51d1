package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// systemInstruction is the fixed persona and safety preamble sent with every
// completion request. It is not parameterizable per call.
const systemInstruction = `You are Shifa AI, a general health information assistant.

Your role:
- Provide clear, evidence-based health information for educational purposes only
- Explain symptoms, conditions, lifestyle, nutrition, fitness, and mental well-being at a general level

Strict safety rules:
- Do NOT diagnose medical conditions
- Do NOT prescribe or recommend medications or dosages
- Do NOT give emergency, urgent, or life-saving instructions
- Do NOT replace a healthcare professional

Response style:
- Keep responses short (2-3 sentences maximum)
- Use simple, clear language
- Be calm, respectful, and supportive
- Avoid lists unless absolutely necessary
- Avoid medical jargon
- Avoid alarming or absolute statements
- Do not use markdown, bold, italics, or bullet points

Guidance:
- Encourage consulting a qualified healthcare professional when appropriate
- If symptoms sound serious or worsening, gently suggest seeking medical care

Always prioritize safety, clarity, and responsible health education.`

type GeminiService struct {
	client   *genai.Client
	model    *genai.GenerativeModel
	rateChan chan struct{} // Token bucket
}

func NewGeminiService(apiKey string, concurrentReqs int) (*GeminiService, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel("gemini-2.0-flash")
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemInstruction)},
	}

	// Token bucket bounding concurrent requests to the API
	rateChan := make(chan struct{}, concurrentReqs)
	for i := 0; i < concurrentReqs; i++ {
		rateChan <- struct{}{}
	}

	return &GeminiService{
		client:   client,
		model:    model,
		rateChan: rateChan,
	}, nil
}

func (s *GeminiService) Close() {
	s.client.Close()
}

// acquireRate blocks until a rate slot is available
func (s *GeminiService) acquireRate(ctx context.Context) error {
	select {
	case <-s.rateChan:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(5 * time.Minute):
		return fmt.Errorf("timeout waiting for Gemini rate slot")
	}
}

func (s *GeminiService) releaseRate() {
	s.rateChan <- struct{}{}
}

// Generate sends the user's message to Gemini under the fixed system
// instruction and returns the reply text, trimmed of surrounding whitespace.
func (s *GeminiService) Generate(ctx context.Context, message string) (string, error) {
	if err := s.acquireRate(ctx); err != nil {
		return "", err
	}
	defer s.releaseRate()

	resp, err := s.model.GenerateContent(ctx, genai.Text(message))
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	text := strings.TrimSpace(extractText(resp))
	if text == "" {
		return "", fmt.Errorf("Gemini returned an empty response")
	}
	return text, nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}
