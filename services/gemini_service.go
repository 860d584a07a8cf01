package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"

	"github.com/aandreu7/iNutriScan/utils"
)

// Instructional prompt for the food extraction call. The bracketed
// list format is what utils.ParseFoodList expects back.
const extractFoodPrompt = "Your task is to return only the specific names of foods that are clearly visible in the image. " +
	"Do not explain. Do not add context. Do not say things like 'It looks like'. " +
	"Just return a clean list of food names, such as: ['Pizza', 'Sushi'].\n" +
	"Using the classical list format: [ 'item1', 'item2', ... ].\n" +
	"If no food is visible, return empty list '[]'."

var estimatePromptParts = []string{
	"You are a fitness expert.",
	"You need to make a realistic estimate of the calories the user burned performing the following activity.",
	"Take their physical data into account if it exists.",
	"Your answer must be solely and exclusively an integer number, with nothing else.",
}

// GeminiService holds the single configured generative client shared
// by every request.
type GeminiService struct {
	llm llms.Model
}

func NewGeminiService(ctx context.Context, apiKey, model string) (*GeminiService, error) {
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("initializing gemini client: %w", err)
	}
	return &GeminiService{llm: llm}, nil
}

// EstimateActivityKcal asks the model for a burnt-calories estimate of
// the described activity. physicalData is appended as context when the
// user has a profile. The reply must be a bare integer.
func (s *GeminiService) EstimateActivityKcal(ctx context.Context, description, physicalData string) (int, error) {
	userInput := description
	if physicalData != "" {
		userInput += " (" + physicalData + ")"
	}
	prompt := strings.Join(estimatePromptParts, "\n") + "\nActivity: " + userInput

	reply, err := llms.GenerateFromSinglePrompt(ctx, s.llm, prompt)
	if err != nil {
		return 0, fmt.Errorf("calling gemini: %w", err)
	}

	answer := strings.TrimSpace(reply)
	if !isDigits(answer) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidModelOutput, answer)
	}
	kcal, err := strconv.Atoi(answer)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidModelOutput, answer)
	}
	return kcal, nil
}

// ExtractFoodItems sends the image to the multimodal model and parses
// the reply as a list of food names. An empty list is a valid answer.
func (s *GeminiService) ExtractFoodItems(ctx context.Context, image []byte, mimeType string) ([]string, error) {
	content := []llms.MessageContent{{
		Role: llms.ChatMessageTypeHuman,
		Parts: []llms.ContentPart{
			llms.TextPart(extractFoodPrompt),
			llms.BinaryPart(mimeType, image),
		},
	}}

	resp, err := s.llm.GenerateContent(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("calling gemini: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty response", ErrMalformedModelOutput)
	}

	items, err := utils.ParseFoodList(resp.Choices[0].Content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedModelOutput, err)
	}
	return items, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
