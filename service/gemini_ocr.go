package service

import (
	"context"

	"github.com/google/generative-ai-go/genai"
	"github.com/tieubaoca/ocr-be/types"
	"google.golang.org/api/option"
)

// GeminiOCRService extracts page text with a Gemini multimodal model.
type GeminiOCRService struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiOCRService(ctx context.Context, apiKey, modelName string) (*GeminiOCRService, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &GeminiOCRService{
		client: client,
		model:  client.GenerativeModel(modelName),
	}, nil
}

func (s *GeminiOCRService) Extract(ctx context.Context, prompt string, img types.PageImage) (string, error) {
	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt), genai.ImageData(img.Format, img.Data))
	if err != nil {
		return "", &types.BackendError{Page: img.Number, Err: err}
	}

	content := ""
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if text, ok := part.(genai.Text); ok {
					content += string(text)
				}
			}
		}
	}

	return content, nil
}

func (s *GeminiOCRService) Close() error {
	return s.client.Close()
}
