// README: Gemini-backed Planner; structured JSON output with local re-validation.
package ai

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"lazytrip/internal/trip"
)

// GeminiPlanner implements Planner using Google's Gemini models.
type GeminiPlanner struct {
	client    *genai.Client
	modelName string
}

// NewGeminiPlanner initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiPlanner(ctx context.Context, apiKey, modelName string) (*GeminiPlanner, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("gemini: missing api key")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &GeminiPlanner{client: client, modelName: modelName}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiPlanner) Close() {
	p.client.Close()
}

// GenerateItinerary builds the full-route prompt and decodes the returned
// array. Any transport or contract failure degrades to an empty itinerary.
func (p *GeminiPlanner) GenerateItinerary(ctx context.Context, city, startPoint string, days, budget int, dna trip.UserDNA) []trip.Destination {
	raw, err := p.complete(ctx, itinerarySchema(), buildItineraryPrompt(city, startPoint, days, budget, dna))
	if err != nil {
		log.Printf("generate itinerary for %q: %v", city, err)
		return []trip.Destination{}
	}
	itinerary, err := decodeItinerary(raw)
	if err != nil {
		log.Printf("generate itinerary for %q: bad payload: %v", city, err)
		return []trip.Destination{}
	}
	return itinerary
}

// SwapDestination asks for one replacement stop. Any failure returns current
// unchanged so the caller's merge is always safe to apply.
func (p *GeminiPlanner) SwapDestination(ctx context.Context, current trip.Destination, reason, city string, dna trip.UserDNA) trip.Destination {
	raw, err := p.complete(ctx, destinationSchema(), buildSwapPrompt(current.Name, reason, city))
	if err != nil {
		log.Printf("swap %q in %q: %v", current.Name, city, err)
		return current
	}
	replacement, err := decodeDestination(raw)
	if err != nil {
		log.Printf("swap %q in %q: bad payload: %v", current.Name, city, err)
		return current
	}
	return replacement
}

// complete runs one structured-output generation and returns the raw JSON text.
func (p *GeminiPlanner) complete(ctx context.Context, schema *genai.Schema, prompt string) (string, error) {
	model := p.client.GenerativeModel(p.modelName)

	// Force JSON response matching the declared schema.
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = schema
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(literaryHumorSystem)}}

	// Creative copy, structured shape.
	model.SetTemperature(0.4)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generation error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no response candidates from Gemini")
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text.WriteString(string(txt))
		}
	}

	// JSON mode should not emit markdown fences, but strip them anyway.
	return cleanJSONString(text.String()), nil
}

// cleanJSONString removes markdown code blocks if present (e.g. ```json ... ```)
func cleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
