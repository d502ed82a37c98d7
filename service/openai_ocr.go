package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"
	"github.com/tieubaoca/ocr-be/types"
)

// OpenAIOCRService extracts page text through the chat completions API of
// any OpenAI-compatible server.
type OpenAIOCRService struct {
	client *openai.Client
	model  string
}

func NewOpenAIOCRService(baseURL string, apiKey, model string) *OpenAIOCRService {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	client := openai.NewClientWithConfig(config)
	return &OpenAIOCRService{
		client: client,
		model:  model,
	}
}

func (s *OpenAIOCRService) Extract(ctx context.Context, prompt string, img types.PageImage) (string, error) {
	imageURL := fmt.Sprintf("data:image/%s;base64,%s", img.Format, base64.StdEncoding.EncodeToString(img.Data))

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: s.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role: openai.ChatMessageRoleUser,
					MultiContent: []openai.ChatMessagePart{
						{
							Type: openai.ChatMessagePartTypeText,
							Text: prompt,
						},
						{
							Type: openai.ChatMessagePartTypeImageURL,
							ImageURL: &openai.ChatMessageImageURL{
								URL:    imageURL,
								Detail: openai.ImageURLDetailHigh,
							},
						},
					},
				},
			},
		},
	)
	if err != nil {
		return "", &types.BackendError{Page: img.Number, Err: err}
	}

	if len(resp.Choices) == 0 {
		return "", &types.BackendError{Page: img.Number, Err: errors.New("no response generated")}
	}

	return resp.Choices[0].Message.Content, nil
}
